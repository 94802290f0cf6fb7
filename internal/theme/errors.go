package theme

import (
	"errors"
	"fmt"
)

var (
	// ErrThemeNotFound matches any *NotFoundError via errors.Is.
	ErrThemeNotFound = errors.New("theme not found")

	// ErrNotResolved is returned when materializing a theme before Resolve succeeded.
	ErrNotResolved = errors.New("theme not resolved")

	// ErrInvalidName is returned for empty names or names that are not a single path element.
	ErrInvalidName = errors.New("invalid theme name")
)

// NotFoundError is returned by Resolve when no directory exists for a
// non-builtin theme.
type NotFoundError struct {
	Name string // requested theme name
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("theme not found: %q", e.Name)
}

// Is makes errors.Is(err, ErrThemeNotFound) work.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrThemeNotFound
}

// IOError wraps a filesystem failure while reading or writing a theme file.
type IOError struct {
	Op   string // "stat", "read", "create", "write" or "close"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("theme: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
