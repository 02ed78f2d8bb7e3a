// Package hash_tools exposes the string hashing tool over MCP.
//
// The hash_string tool takes a payload string and returns its SHA-1
// digest as lowercase hex. It needs no Drive credentials and is useful
// as a connectivity check for agent runtimes.
package hash_tools
