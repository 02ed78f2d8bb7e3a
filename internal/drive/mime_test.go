package drive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNativeDocument(t *testing.T) {
	tests := []struct {
		mimeType string
		expected bool
	}{
		{DocumentMimeType, true},
		{SpreadsheetMimeType, true},
		{PresentationMimeType, true},
		{DrawingMimeType, true},
		{FolderMimeType, true},
		{"application/pdf", false},
		{"text/plain", false},
		{"image/png", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, IsNativeDocument(tt.mimeType), "IsNativeDocument(%q)", tt.mimeType)
	}
}

func TestIsTextLike(t *testing.T) {
	tests := []struct {
		mimeType string
		expected bool
	}{
		{"text/plain", true},
		{"text/csv", true},
		{"text/markdown", true},
		{"text/html", true},
		{"application/json", true},
		{"application/xml", true},
		{"application/javascript", true},
		{"application/yaml", true},
		{"application/ld+json", true},
		{"image/svg+xml", true},
		{"application/pdf", false},
		{"image/png", false},
		{"application/octet-stream", false},
		{"video/mp4", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, IsTextLike(tt.mimeType), "IsTextLike(%q)", tt.mimeType)
	}
}

func TestDefaultExportMimeType(t *testing.T) {
	tests := []struct {
		mimeType string
		expected string
	}{
		{DocumentMimeType, "text/markdown"},
		{SpreadsheetMimeType, "text/csv"},
		{PresentationMimeType, "text/plain"},
		{"application/vnd.google-apps.form", "text/plain"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, DefaultExportMimeType(tt.mimeType), "DefaultExportMimeType(%q)", tt.mimeType)
	}
}

func TestPlanGetContent_NativeDocumentDefaults(t *testing.T) {
	plan, err := planGetContent(DocumentMimeType, "")
	require.NoError(t, err)

	assert.True(t, plan.Export, "native documents are exported")
	assert.Equal(t, "text/markdown", plan.Resolved)
	// No explicit type requested, so the native type is reported
	assert.Equal(t, DocumentMimeType, plan.Reported)
	assert.True(t, plan.Text, "markdown export decodes as text")
}

func TestPlanGetContent_ExplicitExportType(t *testing.T) {
	plan, err := planGetContent(SpreadsheetMimeType, "application/pdf")
	require.NoError(t, err)

	assert.True(t, plan.Export)
	assert.Equal(t, "application/pdf", plan.Resolved)
	assert.Equal(t, "application/pdf", plan.Reported)
	assert.False(t, plan.Text, "PDF export must stay binary")
}

func TestPlanGetContent_DrawingAlwaysRejected(t *testing.T) {
	for _, requested := range []string{"", "image/png", "text/plain"} {
		_, err := planGetContent(DrawingMimeType, requested)
		require.Error(t, err, "drawing with requested type %q", requested)

		var typeErr *UnsupportedTypeError
		assert.ErrorAs(t, err, &typeErr)
	}
}

func TestPlanGetContent_BinaryRejected(t *testing.T) {
	_, err := planGetContent("image/png", "")

	var typeErr *UnsupportedTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "image/png", typeErr.MimeType)
}

func TestPlanGetContent_TextFilePassesGate(t *testing.T) {
	plan, err := planGetContent("application/json", "")
	require.NoError(t, err)

	assert.False(t, plan.Export, "non-native files are fetched raw, not exported")
	assert.Equal(t, "application/json", plan.Resolved)
	assert.Equal(t, "application/json", plan.Reported)
	assert.True(t, plan.Text, "JSON content decodes as text")
}

func TestPlanDownload_SharesExportDefaults(t *testing.T) {
	// download uses the same default-selection rule as get_content
	plan := planDownload(DocumentMimeType, "")

	assert.True(t, plan.Export)
	assert.Equal(t, "text/markdown", plan.Resolved)
	assert.True(t, plan.Text, "markdown export decodes as text on download too")
}

func TestPlanDownload_NoTypeGate(t *testing.T) {
	// Binary files that get_content rejects are downloadable
	plan := planDownload("image/png", "")
	assert.False(t, plan.Export, "raw binary files are not exported")
	assert.False(t, plan.Text, "PNG content must stay binary")
	assert.Equal(t, "image/png", plan.Reported)

	// Drawings are downloadable as well
	plan = planDownload(DrawingMimeType, "image/svg+xml")
	assert.True(t, plan.Export, "drawings are native documents and must be exported")
	assert.Equal(t, "image/svg+xml", plan.Reported)
}

func TestPlanDownload_NarrowTextRule(t *testing.T) {
	// get_content decodes application/yaml as text, download does not
	require.True(t, IsTextLike("application/yaml"))

	plan := planDownload("application/yaml", "")
	assert.False(t, plan.Text, "download decodes only text/* and application/json")

	plan = planDownload("application/json", "")
	assert.True(t, plan.Text)
}
