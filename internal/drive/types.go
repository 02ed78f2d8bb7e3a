package drive

// FileRecord is the normalized projection of a remote Drive file resource.
// Records are produced fresh on every call and never cached; the only
// identity is the remote-assigned ID.
type FileRecord struct {
	// ID is the remote-assigned identifier for the file
	ID string `json:"id"`

	// Name is the name of the file
	Name string `json:"name"`

	// MimeType is the MIME type of the file
	MimeType string `json:"mime_type"`

	// ModifiedTime is when the file was last modified (RFC 3339)
	ModifiedTime string `json:"modified_time"`

	// Size is the size of the file in bytes (not populated for native documents)
	Size int64 `json:"size,omitempty"`

	// Description is a short description of the file (details only)
	Description string `json:"description,omitempty"`

	// WebViewLink is a link for opening the file in a Google editor or viewer (details only)
	WebViewLink string `json:"web_view_link,omitempty"`
}

// ContentResult holds the retrieved content of a single file. It lives for
// one request/response cycle only.
type ContentResult struct {
	// FileName is the remote name of the file
	FileName string

	// MimeType is the requested export MIME type when an export occurred,
	// otherwise the file's native MIME type
	MimeType string

	// Data is the retrieved content
	Data []byte

	// Text reports whether Data is UTF-8 text. When false, Data is raw
	// binary and callers are expected to encode it for transport.
	Text bool
}
