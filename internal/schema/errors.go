package schema

import (
	"errors"
	"fmt"
)

// ValidationError reports the first point where a JSON value, or a
// user-supplied input, does not match its declared shape. Path is a
// dotted field path relative to the validated value.
type ValidationError struct {
	Path     string
	Expected string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s: expected %s", e.Path, e.Expected)
}

func errAt(path, expected string) *ValidationError {
	return &ValidationError{Path: path, Expected: expected}
}

// prefixPath rebases a validation error's path under a parent path, so
// errors from nested values read like "media.2.url".
func prefixPath(err error, parent string) error {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return &ValidationError{Path: parent + "." + ve.Path, Expected: ve.Expected}
	}
	return err
}
