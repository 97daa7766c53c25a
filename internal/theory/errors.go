package theory

import (
	"errors"
	"fmt"
)

// Kind categorizes theory errors.
type Kind string

const (
	// KindInvalidConstruction indicates a Chord or ScaleFingerprint
	// invariant was violated at build time.
	KindInvalidConstruction Kind = "INVALID_CONSTRUCTION"

	// KindIncompatibleScale indicates a chord tone or root cannot be
	// placed in the given (or borrowed) scale.
	KindIncompatibleScale Kind = "INCOMPATIBLE_SCALE"
)

// Error is a structured theory error. Field names the offending chord or
// scale field so callers can report which part of the input was bad.
type Error struct {
	Kind    Kind
	Field   string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (field=%s)", e.Kind, e.Message, e.Field)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// IsInvalidConstruction reports whether err is a construction error.
// Uses errors.As to handle wrapped errors.
func IsInvalidConstruction(err error) bool {
	var te *Error
	return errors.As(err, &te) && te.Kind == KindInvalidConstruction
}

// IsIncompatibleScale reports whether err is a scale-placement error.
// Uses errors.As to handle wrapped errors.
func IsIncompatibleScale(err error) bool {
	var te *Error
	return errors.As(err, &te) && te.Kind == KindIncompatibleScale
}

func errConstruction(field, format string, args ...any) *Error {
	return &Error{
		Kind:    KindInvalidConstruction,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

func errScale(field, format string, args ...any) *Error {
	return &Error{
		Kind:    KindIncompatibleScale,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}
