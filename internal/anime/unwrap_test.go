package anime

import (
	"encoding/json"
	"testing"
)

func TestUnwrap(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{"results object", `{"success":true,"results":{"genres":["Action"]}}`, `{"genres":["Action"]}`},
		{"results array", `{"results":[1,2]}`, `[1,2]`},
		{"results scalar", `{"results":"abc-123"}`, `"abc-123"`},
		{"no results field", `{"other":1}`, `{"other":1}`},
		{"null results", `{"results":null,"other":1}`, `{"results":null,"other":1}`},
		{"top level array", `[{"results":1}]`, `[{"results":1}]`},
		{"top level null", `null`, `null`},
		{"empty", ``, ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Unwrap(json.RawMessage(tt.payload))
			if string(got) != tt.want {
				t.Errorf("Unwrap(%s) = %s, want %s", tt.payload, got, tt.want)
			}
		})
	}
}
