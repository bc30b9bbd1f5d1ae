package themer

import (
	"errors"

	"github.com/BrandonKowalski/themer/pkg/themer/codec"
	"github.com/BrandonKowalski/themer/pkg/themer/theme"
)

// Sentinel errors for common conditions.
var (
	// ErrNoActiveTheme indicates an operation needs a theme but SetTheme has
	// not succeeded yet.
	ErrNoActiveTheme = errors.New("no active theme")

	// ErrMalformedValue is wrapped by errors for wire values whose shape does
	// not match the field they are decoded into.
	ErrMalformedValue = codec.ErrMalformedValue
)

// FormatError is returned when a theme file's contents don't match the
// expected structure. The previously active theme is kept.
type FormatError = theme.FormatError

// FileError is returned when a theme file cannot be read or written. The
// previously active theme is kept.
type FileError = theme.FileError

// IsFormatError checks if an error is a theme format error.
func IsFormatError(err error) bool {
	var formatErr *FormatError
	return errors.As(err, &formatErr)
}

// IsFileError checks if an error is a theme file I/O error.
func IsFileError(err error) bool {
	var fileErr *FileError
	return errors.As(err, &fileErr)
}
