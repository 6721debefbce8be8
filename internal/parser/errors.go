package parser

import (
	"errors"
	"strings"
)

// ErrInvalidFormat is matched by every InvalidFormatError via errors.Is
var ErrInvalidFormat = errors.New("Invalid commit message format.")

// InvalidFormatError is returned when a commit message lacks one or more required fields
type InvalidFormatError struct {
	// Missing names the absent fields, in validation order
	Missing []string
}

func (e *InvalidFormatError) Error() string {
	return ErrInvalidFormat.Error()
}

// Is reports whether target is ErrInvalidFormat
func (e *InvalidFormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}

// Detail returns the error message followed by the missing field names
func (e *InvalidFormatError) Detail() string {
	if len(e.Missing) == 0 {
		return e.Error()
	}
	return e.Error() + " Missing: " + strings.Join(e.Missing, ", ")
}

// IsInvalidFormat reports whether err is, or wraps, an InvalidFormatError
func IsInvalidFormat(err error) bool {
	var target *InvalidFormatError
	return errors.As(err, &target)
}
