// Package resources provides MCP resources for exposing tool descriptors.
// Resources are read-only data sources that MCP clients can fetch; here
// they carry the JSON schema documents hosts use for input validation and
// form generation, so clients can introspect the tools without invoking
// them.
package resources
