package tool

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestDriveDescriptor_EnumMatchesActions(t *testing.T) {
	desc := DriveDescriptor()
	enum := desc.InputSchema.Properties[FieldAction].Enum

	actions := Actions()
	if len(enum) != len(actions) {
		t.Fatalf("enum has %d entries, want %d", len(enum), len(actions))
	}
	for i, a := range actions {
		if enum[i] != string(a) {
			t.Errorf("enum[%d] = %q, want %q", i, enum[i], a)
		}
	}
}

func TestDriveDescriptor_RequiredParityWithDispatcher(t *testing.T) {
	desc := DriveDescriptor()

	// Top-level required carries only the action tag; per-action
	// requirements live in the field descriptions.
	if len(desc.InputSchema.Required) != 1 || desc.InputSchema.Required[0] != FieldAction {
		t.Errorf("schema required = %v, want [action]", desc.InputSchema.Required)
	}

	for _, action := range Actions() {
		for _, field := range RequiredFieldsFor(action) {
			prop, ok := desc.InputSchema.Properties[field]
			if !ok {
				t.Errorf("dispatcher requires %q for %s but the schema has no such property", field, action)
				continue
			}
			if !strings.Contains(prop.Description, "required for") {
				t.Errorf("property %q lacks a required-for clause: %q", field, prop.Description)
			}
			if !strings.Contains(prop.Description, string(action)) {
				t.Errorf("property %q description does not name %s: %q", field, action, prop.Description)
			}
		}
	}
}

func TestDriveDescriptor_OptionalFieldsNotMarkedRequired(t *testing.T) {
	desc := DriveDescriptor()

	for _, field := range []string{FieldMimeType, FieldFolderID, FieldPageSize} {
		prop := desc.InputSchema.Properties[field]
		if strings.Contains(prop.Description, "required for") {
			t.Errorf("property %q is optional everywhere but documented as required: %q", field, prop.Description)
		}
	}
}

func TestDriveDescriptor_PageSizeDefault(t *testing.T) {
	desc := DriveDescriptor()

	prop := desc.InputSchema.Properties[FieldPageSize]
	if prop.Type != "integer" {
		t.Errorf("page_size type = %q, want integer", prop.Type)
	}
	if prop.Default != DefaultPageSize {
		t.Errorf("page_size default = %v, want %d", prop.Default, DefaultPageSize)
	}
}

func TestDriveDescriptor_SerializesWithSchemaID(t *testing.T) {
	data, err := json.Marshal(DriveDescriptor())
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var decoded struct {
		InputSchema struct {
			ID string `json:"$id"`
		} `json:"inputSchema"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if decoded.InputSchema.ID == "" {
		t.Error("Expected $id to survive serialization")
	}
}

func TestJoinActions(t *testing.T) {
	tests := []struct {
		actions []Action
		want    string
	}{
		{nil, ""},
		{[]Action{ActionSearchFiles}, "search_files action"},
		{[]Action{ActionSearchFiles, ActionListFiles}, "search_files and list_files actions"},
		{
			[]Action{ActionGetFileDetails, ActionDownloadFile, ActionDeleteFile},
			"get_file_details, download_file, and delete_file actions",
		},
	}

	for _, tt := range tests {
		if got := joinActions(tt.actions); got != tt.want {
			t.Errorf("joinActions(%v) = %q, want %q", tt.actions, got, tt.want)
		}
	}
}
