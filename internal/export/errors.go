package export

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrExportFailed      = errors.New("export failed")
	ErrRegionNotFound    = errors.New("printable region not found")
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrInvalidRequest    = errors.New("invalid export request")
)

// Attempt records one failed profile.
type Attempt struct {
	Profile string
	Err     error
}

// Error is returned when every attempt failed. Message is the localized user-facing text.
type Error struct {
	Message  string
	Attempts []Attempt
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		parts = append(parts, fmt.Sprintf("%s: %v", a.Profile, a.Err))
	}
	if len(parts) == 0 {
		return ErrExportFailed.Error()
	}
	return fmt.Sprintf("%s (%s)", ErrExportFailed.Error(), strings.Join(parts, "; "))
}

// Unwrap exposes ErrExportFailed and every attempt cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	out := []error{ErrExportFailed}
	for _, a := range e.Attempts {
		if a.Err != nil {
			out = append(out, a.Err)
		}
	}
	return out
}
