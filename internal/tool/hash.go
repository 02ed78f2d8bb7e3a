package tool

import (
	"crypto/sha1"
	"encoding/hex"
)

// FieldPayload is the single argument of the hashing tool.
const FieldPayload = "payload"

// HashSource attributes a hash result for the host's tool-call trace.
type HashSource struct {
	ToolCallDescription string `json:"toolCallDescription"`
}

// HashResult is the output shape of the hashing tool. Unlike the Drive
// envelope, output is the bare digest string.
type HashResult struct {
	Output  string       `json:"output"`
	Sources []HashSource `json:"sources"`
}

// HashPayload returns the lowercase hex SHA-1 digest of the payload.
func HashPayload(payload string) string {
	sum := sha1.Sum([]byte(payload))
	return hex.EncodeToString(sum[:])
}

// InvokeHash validates the argument bag and hashes the payload.
func InvokeHash(args map[string]interface{}) (*HashResult, error) {
	payload, ok := args[FieldPayload].(string)
	if !ok {
		return nil, missingFieldError(FieldPayload)
	}

	return &HashResult{
		Output:  HashPayload(payload),
		Sources: []HashSource{{ToolCallDescription: "Payload was hashed"}},
	}, nil
}

// HashDescriptor returns the static schema of the hashing tool.
func HashDescriptor() Descriptor {
	return Descriptor{
		Description: "Hashes a string. Returns the SHA1 hash of the string.",
		InputSchema: InputSchema{
			ID:    "https://github.com/teemow/driveagent/tools/hash/input",
			Title: "Input for the hashing tool",
			Type:  "object",
			Properties: map[string]Property{
				FieldPayload: {
					Type:        "string",
					Description: "The payload to hash",
				},
			},
			Required: []string{FieldPayload},
		},
	}
}
