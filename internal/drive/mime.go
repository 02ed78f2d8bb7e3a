package drive

import "strings"

// Google Workspace MIME types. Files in this family hold no raw bytes and
// must be exported to a concrete MIME type before their content can be
// retrieved.
const (
	nativeDocumentPrefix = "application/vnd.google-apps."

	DocumentMimeType     = "application/vnd.google-apps.document"
	SpreadsheetMimeType  = "application/vnd.google-apps.spreadsheet"
	PresentationMimeType = "application/vnd.google-apps.presentation"
	DrawingMimeType      = "application/vnd.google-apps.drawing"

	// FolderMimeType is the MIME type for Google Drive folders
	FolderMimeType = "application/vnd.google-apps.folder"
)

// textMimeTypes is the allow-list of structured and text formats that are
// safely decodable as UTF-8, beyond the text/* prefix.
var textMimeTypes = map[string]bool{
	"application/json":         true,
	"application/xml":          true,
	"application/javascript":   true,
	"application/x-javascript": true,
	"application/xhtml+xml":    true,
	"application/x-sh":         true,
	"application/x-python":     true,
	"application/x-httpd-php":  true,
	"application/sql":          true,
	"application/graphql":      true,
	"application/yaml":         true,
	"application/x-yaml":       true,
	"application/toml":         true,
	"application/csv":          true,
	"application/markdown":     true,
	"application/rtf":          true,
}

// IsNativeDocument reports whether the MIME type belongs to the Google
// Workspace family that requires export rather than direct download.
func IsNativeDocument(mimeType string) bool {
	return strings.HasPrefix(mimeType, nativeDocumentPrefix)
}

// IsTextLike reports whether content of the given MIME type can be decoded
// as UTF-8 text.
func IsTextLike(mimeType string) bool {
	if strings.HasPrefix(mimeType, "text/") {
		return true
	}
	if textMimeTypes[mimeType] {
		return true
	}
	// Structured suffixes such as application/ld+json or image/svg+xml
	return strings.HasSuffix(mimeType, "+json") || strings.HasSuffix(mimeType, "+xml")
}

// DefaultExportMimeType returns the export target used when a Google
// Workspace file is retrieved without an explicit MIME type.
func DefaultExportMimeType(mimeType string) string {
	switch mimeType {
	case DocumentMimeType:
		return "text/markdown"
	case SpreadsheetMimeType:
		return "text/csv"
	case PresentationMimeType:
		return "text/plain"
	default:
		return "text/plain"
	}
}

// isPlainDownloadText reports whether a downloaded file's resolved MIME type
// is decoded to text by the download operation. Unlike get_content, download
// only decodes text/* and plain JSON; all other types stay binary.
func isPlainDownloadText(mimeType string) bool {
	return strings.HasPrefix(mimeType, "text/") || mimeType == "application/json"
}

// contentPlan describes how a file's content is to be retrieved and shaped,
// decided purely from the file's native MIME type and the requested export
// type.
type contentPlan struct {
	// Export selects server-side conversion instead of a raw media fetch.
	Export bool

	// Resolved is the concrete MIME type of the retrieved bytes: the
	// requested type, the per-kind export default, or the native type.
	Resolved string

	// Reported is the MIME type surfaced to the caller: the requested
	// type when one was supplied and an export occurs, otherwise the
	// native type.
	Reported string

	// Text selects UTF-8 decoding of the retrieved bytes.
	Text bool
}

// planGetContent applies the get_content policy: drawings and types that are
// neither text-like nor native documents are rejected; native documents are
// exported; text-likeness of the resolved type (broad allow-list) selects
// decoding.
func planGetContent(nativeType, requested string) (contentPlan, error) {
	native := IsNativeDocument(nativeType)
	if nativeType == DrawingMimeType || (!native && !IsTextLike(nativeType)) {
		return contentPlan{}, &UnsupportedTypeError{MimeType: nativeType}
	}

	plan := contentPlan{Export: native, Resolved: nativeType, Reported: nativeType}
	if native {
		plan.Resolved = requested
		if plan.Resolved == "" {
			plan.Resolved = DefaultExportMimeType(nativeType)
		}
		if requested != "" {
			plan.Reported = requested
		}
	}
	plan.Text = IsTextLike(plan.Resolved)
	return plan, nil
}

// planDownload applies the download policy: same export and default-selection
// rule as get_content, but no content-type gate, and decoding uses only the
// narrow text/* and application/json rule.
func planDownload(nativeType, requested string) contentPlan {
	native := IsNativeDocument(nativeType)
	plan := contentPlan{Export: native, Resolved: nativeType, Reported: nativeType}
	if native {
		plan.Resolved = requested
		if plan.Resolved == "" {
			plan.Resolved = DefaultExportMimeType(nativeType)
		}
		if requested != "" {
			plan.Reported = requested
		}
	}
	plan.Text = isPlainDownloadText(plan.Resolved)
	return plan
}
