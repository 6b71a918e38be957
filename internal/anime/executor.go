package anime

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
)

// Call performs exactly one transport request
type Call func(ctx context.Context) (json.RawMessage, error)

// DecodeError reports a payload that does not match the expected result type
type DecodeError struct {
	Type string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.Type, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Execute runs call, unwraps the payload and decodes it into T. Any failure
// is logged together with msg and returned to the caller unchanged.
func Execute[T any](ctx context.Context, log zerolog.Logger, call Call, msg string) (T, error) {
	var out T

	payload, err := call(ctx)
	if err != nil {
		log.Error().Err(err).Msg(msg)
		return out, err
	}

	if err := json.Unmarshal(Unwrap(payload), &out); err != nil {
		decodeErr := &DecodeError{Type: fmt.Sprintf("%T", out), Err: err}
		log.Error().Err(decodeErr).Msg(msg)
		return out, decodeErr
	}

	return out, nil
}
