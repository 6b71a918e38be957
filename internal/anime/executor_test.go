package anime

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestExecuteDecodesUnwrappedPayload(t *testing.T) {
	type result struct {
		Title string `json:"title"`
	}

	got, err := Execute[result](context.Background(), zerolog.Nop(), func(context.Context) (json.RawMessage, error) {
		return json.RawMessage(`{"success":true,"results":{"title":"Frieren"}}`), nil
	}, "unused")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if got.Title != "Frieren" {
		t.Errorf("Title = %q, want Frieren", got.Title)
	}
}

func TestExecuteLogsAndReturnsSameError(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	errBoom := errors.New("connection reset")

	_, err := Execute[map[string]any](context.Background(), log, func(context.Context) (json.RawMessage, error) {
		return nil, errBoom
	}, "failed to fetch episodes for id: one-piece-100")

	if err != errBoom {
		t.Fatalf("err = %v, want the original error value", err)
	}
	out := buf.String()
	if !strings.Contains(out, "failed to fetch episodes for id: one-piece-100") {
		t.Errorf("log %q does not contain the context message", out)
	}
	if !strings.Contains(out, "connection reset") {
		t.Errorf("log %q does not contain the error", out)
	}
}

func TestExecuteDecodeFailure(t *testing.T) {
	var buf bytes.Buffer

	_, err := Execute[[]string](context.Background(), zerolog.New(&buf), func(context.Context) (json.RawMessage, error) {
		return json.RawMessage(`{"results":{"not":"a list"}}`), nil
	}, "failed to fetch search suggestions")

	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("err = %v, want *DecodeError", err)
	}
	if !strings.Contains(buf.String(), "failed to fetch search suggestions") {
		t.Errorf("decode failure not logged: %q", buf.String())
	}
}

func TestExecuteNullPayloadIsNotAnError(t *testing.T) {
	got, err := Execute[*struct{}](context.Background(), zerolog.Nop(), func(context.Context) (json.RawMessage, error) {
		return json.RawMessage(`null`), nil
	}, "unused")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if got != nil {
		t.Errorf("got %v, want nil", got)
	}
}
