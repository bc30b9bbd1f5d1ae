package theme

import (
	"errors"
	"fmt"
)

// ErrNotAnObject is wrapped when a theme document or element is not an object.
var ErrNotAnObject = errors.New("not an object")

// FormatError reports theme file contents that do not match the expected
// structure, including malformed values.
type FormatError struct {
	Path    string // empty when decoding from memory
	Element string // element key, if the error is inside one
	Err     error
}

func (e *FormatError) Error() string {
	where := "theme"
	if e.Path != "" {
		where = e.Path
	}
	if e.Element != "" {
		return fmt.Sprintf("%s: element %s: %v", where, e.Element, e.Err)
	}
	return fmt.Sprintf("%s: %v", where, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// FileError reports a theme file that could not be read or written.
type FileError struct {
	Op   string // "read", "write", "stat"
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s theme file %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
