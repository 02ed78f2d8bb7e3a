// Package tool implements the action dispatcher and descriptors for the
// driveagent tools.
//
// A tool invocation is a single request/response cycle: the host sends an
// argument bag with an action tag, the dispatcher validates the per-action
// required fields, delegates to the Drive service, and wraps the result in
// a fixed {output: {...}} envelope. Failures are returned as errors, never
// as populated envelopes; missing fields and unknown actions are rejected
// before any remote call.
//
// Descriptors are static schema documents the host uses for validation and
// form generation. The Drive descriptor's action enum and required-field
// documentation are generated from the dispatcher's own dispatch table, so
// schema and implementation cannot drift apart.
//
// The package also carries the trivial SHA-1 hashing tool.
package tool
