package codec

import (
	"errors"
	"fmt"
)

// FormatError reports a malformed binary or hex chord payload.
type FormatError struct {
	// Byte is the offending byte offset, or -1 when the whole payload is
	// bad (wrong length, non-hex text).
	Byte int

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	if e.Byte >= 0 {
		return fmt.Sprintf("INVALID_FORMAT: %s (byte=%d)", e.Message, e.Byte)
	}
	return fmt.Sprintf("INVALID_FORMAT: %s", e.Message)
}

// IsInvalidFormat reports whether err is a codec format error.
// Uses errors.As to handle wrapped errors.
func IsInvalidFormat(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

func errFormat(byteIdx int, format string, args ...any) *FormatError {
	return &FormatError{Byte: byteIdx, Message: fmt.Sprintf(format, args...)}
}
