package model

import (
	"errors"
	"fmt"
)

// ErrSameLocale is returned when the target locale is the base locale.
var ErrSameLocale = errors.New("locale must be different from the base locale")

// ErrUnknownLocale is returned by catalogs that hold no entries for a locale.
var ErrUnknownLocale = errors.New("unknown locale")

// ParseError reports a source file that could not be parsed.
type ParseError struct {
	File    Path
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse %s:%d:%d: %s", e.File, e.Line, e.Column, e.Message)
	}

	return fmt.Sprintf("parse %s: %s", e.File, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
