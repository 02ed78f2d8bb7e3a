// Package drive_tools exposes the Google Drive agent tool over MCP
// (Model Context Protocol).
//
// A single tool, google_drive, carries all Drive operations behind an
// action tag:
//   - search_files: full-text search across the user's Drive
//   - get_file_details: metadata for a single file
//   - download_file: raw or exported file content
//   - list_files: list files, optionally within a folder
//   - upload_file: upload a local file
//   - delete_file: permanently delete a file
//   - get_file_content: text-oriented content retrieval for agents
//
// The tool's input schema is generated from the same descriptor the
// dispatcher validates against, so the advertised schema and the actual
// validation cannot drift apart.
//
// Example tool usage:
//
//	google_drive({
//	  action: "search_files",
//	  query: "quarterly report",
//	  page_size: 25
//	})
//
//	google_drive({
//	  action: "get_file_content",
//	  file_id: "1a2b3c4d",
//	  mime_type: "text/plain"
//	})
package drive_tools
