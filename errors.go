package a2ui

import (
	"encoding/json"
	"errors"
	"fmt"
)

// UnknownMessageTypeError is returned by ParseMessage when a payload
// matches none of the four recognized envelope keys. It is the only typed
// failure in the core: everything past the parse boundary substitutes
// defaults instead of raising. Callers are expected to log and continue
// with the next message.
type UnknownMessageTypeError struct {
	// Payload is the offending envelope, kept for diagnostics.
	Payload map[string]any
}

// Error returns a message naming the unrecognized top-level keys.
func (e *UnknownMessageTypeError) Error() string {
	keys := make([]string, 0, len(e.Payload))
	for k := range e.Payload {
		keys = append(keys, k)
	}
	return fmt.Sprintf("a2ui: unknown message type (top-level keys %v)", keys)
}

// PayloadJSON renders the offending payload for log output. Returns "{}"
// when the payload cannot be serialized.
func (e *UnknownMessageTypeError) PayloadJSON() string {
	data, err := json.Marshal(e.Payload)
	if err != nil {
		return "{}"
	}
	return string(data)
}

// IsUnknownMessageType reports whether err is, or wraps, an
// *UnknownMessageTypeError.
func IsUnknownMessageType(err error) bool {
	var u *UnknownMessageTypeError
	return errors.As(err, &u)
}
