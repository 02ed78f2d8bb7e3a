// Package drive provides a typed client for the Google Drive API used by
// the driveagent tools.
//
// The client isolates all remote-service request/response shaping behind
// operation-named calls:
//   - Search: full-text search, relevance order, bounded by page size
//   - List: list files, optionally within a folder
//   - GetDetails: full metadata for a single file
//   - GetContent: content retrieval with a content-type policy gate
//   - Download: ungated content retrieval for any file type
//   - Upload: local file upload with extension-based type detection
//   - Delete: file removal
//
// Google Workspace files (Docs, Sheets, Slides) hold no raw bytes and are
// exported server-side before transfer. When no export target is given, a
// default is selected per source kind: documents export to Markdown,
// spreadsheets to CSV, presentations to plain text.
//
// The service handle is built once from a raw OAuth access token
// (oauth2.StaticTokenSource); token acquisition and refresh happen outside
// this package. Failures are classified into typed errors (AuthError,
// NotFoundError, UnsupportedTypeError, RemoteError, IOError) from the
// underlying googleapi HTTP status.
package drive
