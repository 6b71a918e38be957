package anime

import (
	"bytes"
	"encoding/json"
)

// Unwrap returns the "results" member of payload when payload is an object
// carrying a non-null results field, and payload itself otherwise.
func Unwrap(payload json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return payload
	}

	var envelope struct {
		Results json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return payload
	}

	results := bytes.TrimSpace(envelope.Results)
	if len(results) == 0 || bytes.Equal(results, []byte("null")) {
		return payload
	}
	return envelope.Results
}
