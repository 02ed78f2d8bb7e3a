package tool

import "encoding/json"

// Envelope is the fixed success wrapper returned to the host. Errors are
// never encoded into an envelope; they are returned as Go errors and
// surfaced by the host.
type Envelope struct {
	Output map[string]interface{} `json:"output"`
}

// JSON renders the envelope as indented JSON for transport to the host.
func (e *Envelope) JSON() (string, error) {
	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
