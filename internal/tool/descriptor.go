package tool

import (
	"fmt"
	"strings"
)

// Property describes one argument in a tool input schema.
type Property struct {
	Type        string      `json:"type"`
	Enum        []string    `json:"enum,omitempty"`
	Description string      `json:"description"`
	Default     interface{} `json:"default,omitempty"`
}

// InputSchema is the JSON schema of a tool's argument bag.
type InputSchema struct {
	ID         string              `json:"$id"`
	Title      string              `json:"title"`
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required"`
}

// Descriptor is the declarative schema a host uses for form generation and
// validation of tool input.
type Descriptor struct {
	Description string      `json:"description"`
	InputSchema InputSchema `json:"inputSchema"`
}

// RequiredFieldsFor returns the fields the dispatcher demands for an action.
// Exposed so schema/implementation parity is testable.
func RequiredFieldsFor(action Action) []string {
	return requiredFields[action]
}

// actionsRequiring lists the actions whose validation demands the field,
// in descriptor order.
func actionsRequiring(field string) []Action {
	var actions []Action
	for _, action := range Actions() {
		for _, f := range requiredFields[action] {
			if f == field {
				actions = append(actions, action)
			}
		}
	}
	return actions
}

// joinActions renders an action list as prose: "a action", "a and b
// actions", "a, b, and c actions".
func joinActions(actions []Action) string {
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = string(a)
	}
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0] + " action"
	case 2:
		return names[0] + " and " + names[1] + " actions"
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1] + " actions"
	}
}

// DriveDescriptor returns the static schema of the Google Drive tool.
// The action enum and "required for" clauses are generated from the
// dispatcher's own tables so the two cannot drift apart.
func DriveDescriptor() Descriptor {
	actionNames := make([]string, 0, len(Actions()))
	for _, a := range Actions() {
		actionNames = append(actionNames, string(a))
	}
	actionList := strings.Join(actionNames[:len(actionNames)-1], ", ") + ", or " + actionNames[len(actionNames)-1]

	return Descriptor{
		Description: "Interacts with Google Drive to search for files, get file details, and download files",
		InputSchema: InputSchema{
			ID:    "https://github.com/teemow/driveagent/tools/google-drive/input",
			Title: "Input for the Google Drive tool",
			Type:  "object",
			Properties: map[string]Property{
				FieldAction: {
					Type:        "string",
					Enum:        actionNames,
					Description: fmt.Sprintf("The action to perform (%s)", actionList),
				},
				FieldQuery: {
					Type:        "string",
					Description: fmt.Sprintf("Search query for files (required for %s)", joinActions(actionsRequiring(FieldQuery))),
				},
				FieldFileID: {
					Type:        "string",
					Description: fmt.Sprintf("Google Drive file ID (required for %s)", joinActions(actionsRequiring(FieldFileID))),
				},
				FieldMimeType: {
					Type:        "string",
					Description: "MIME type for file download or export (optional for download_file and get_file_content actions)",
				},
				FieldFolderID: {
					Type:        "string",
					Description: "Google Drive folder ID (optional for list_files action)",
				},
				FieldFilePath: {
					Type:        "string",
					Description: fmt.Sprintf("Path to the file (required for %s)", joinActions(actionsRequiring(FieldFilePath))),
				},
				FieldPageSize: {
					Type:        "integer",
					Description: "The maximum number of results to return",
					Default:     DefaultPageSize,
				},
			},
			Required: []string{FieldAction},
		},
	}
}
