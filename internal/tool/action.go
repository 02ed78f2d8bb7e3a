package tool

import (
	"fmt"
)

// Action is the closed set of operations the Google Drive tool performs.
type Action string

const (
	ActionSearchFiles    Action = "search_files"
	ActionGetFileDetails Action = "get_file_details"
	ActionDownloadFile   Action = "download_file"
	ActionListFiles      Action = "list_files"
	ActionUploadFile     Action = "upload_file"
	ActionDeleteFile     Action = "delete_file"
	ActionGetFileContent Action = "get_file_content"
)

// Actions returns the recognized actions in descriptor order.
func Actions() []Action {
	return []Action{
		ActionSearchFiles,
		ActionGetFileDetails,
		ActionDownloadFile,
		ActionListFiles,
		ActionUploadFile,
		ActionDeleteFile,
		ActionGetFileContent,
	}
}

// Argument field names of the action request.
const (
	FieldAction   = "action"
	FieldQuery    = "query"
	FieldFileID   = "file_id"
	FieldMimeType = "mime_type"
	FieldFolderID = "folder_id"
	FieldFilePath = "file_path"
	FieldPageSize = "page_size"
)

// requiredFields maps each action to the argument fields that must be
// present before the delegate is called. The descriptor derives its
// "required for" documentation from this table, keeping schema and
// validation structurally in sync.
var requiredFields = map[Action][]string{
	ActionSearchFiles:    {FieldQuery},
	ActionGetFileDetails: {FieldFileID},
	ActionDownloadFile:   {FieldFileID},
	ActionListFiles:      {},
	ActionUploadFile:     {FieldFilePath},
	ActionDeleteFile:     {FieldFileID},
	ActionGetFileContent: {FieldFileID},
}

// ValidationError reports a request that is rejected locally, before any
// remote call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func missingFieldError(field string) *ValidationError {
	return &ValidationError{Message: "Missing required field: " + field}
}

// ParseAction validates a raw action string against the closed set.
// The offending value is included verbatim in the error.
func ParseAction(raw string) (Action, error) {
	action := Action(raw)
	if _, ok := requiredFields[action]; !ok {
		return "", &ValidationError{Message: fmt.Sprintf("Invalid action: %s", raw)}
	}
	return action, nil
}

// Request is a single-use action request. It is immutable once built; each
// invocation constructs a fresh Request.
type Request struct {
	Action   Action
	Query    string
	FileID   string
	MimeType string
	FolderID string
	FilePath string

	// PageSize is the requested page size for paginated actions.
	// Zero means unset; the default of 10 is applied at dispatch time.
	PageSize int64
}

// ParseRequest builds a Request from a raw argument bag as received from the
// host. Only the action tag is validated here; per-action required fields
// are checked at dispatch time.
func ParseRequest(args map[string]interface{}) (Request, error) {
	raw, ok := args[FieldAction].(string)
	if !ok || raw == "" {
		return Request{}, missingFieldError(FieldAction)
	}

	action, err := ParseAction(raw)
	if err != nil {
		return Request{}, err
	}

	req := Request{
		Action:   action,
		Query:    stringArg(args, FieldQuery),
		FileID:   stringArg(args, FieldFileID),
		MimeType: stringArg(args, FieldMimeType),
		FolderID: stringArg(args, FieldFolderID),
		FilePath: stringArg(args, FieldFilePath),
	}

	// JSON numbers arrive as float64
	switch v := args[FieldPageSize].(type) {
	case float64:
		req.PageSize = int64(v)
	case int:
		req.PageSize = int64(v)
	case int64:
		req.PageSize = v
	}

	return req, nil
}

func stringArg(args map[string]interface{}, key string) string {
	s, _ := args[key].(string)
	return s
}

// fieldValue returns the value of a named request field for required-field
// validation.
func (r Request) fieldValue(field string) string {
	switch field {
	case FieldQuery:
		return r.Query
	case FieldFileID:
		return r.FileID
	case FieldMimeType:
		return r.MimeType
	case FieldFolderID:
		return r.FolderID
	case FieldFilePath:
		return r.FilePath
	default:
		return ""
	}
}
