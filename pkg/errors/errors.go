// Package errors defines the typed errors reported by tablekit commands.
package errors

import (
	"fmt"
	"strings"
)

// Location points into a table document. Line is zero when unknown and Field
// is empty when the problem is not tied to one field.
type Location struct {
	Path  string
	Line  int
	Field string
}

// String formats the location as "path:line: field", leaving out the parts
// that are unset.
func (l Location) String() string {
	var b strings.Builder
	b.WriteString(l.Path)
	if l.Path != "" && l.Line > 0 {
		fmt.Fprintf(&b, ":%d", l.Line)
	}
	if l.Field != "" {
		if b.Len() > 0 {
			b.WriteString(": ")
		}
		b.WriteString(l.Field)
	}
	return b.String()
}

// ParseError reports a table document that could not be read or decoded.
type ParseError struct {
	Location
	Message string
	Err     error
}

// NewParseError constructs a ParseError for path. line is the YAML line the
// decoder complained about, or zero.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Location: Location{Path: path, Line: line}, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("parse error: %s: %s", e.Location, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError reports a document field that failed validation. Path is
// filled in once the document it came from is known.
type ValidationError struct {
	Location
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError for field.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Location: Location{Field: field}, Message: message, Err: err}
}

// InDocument returns a copy of err located in the document at path when err is
// a *ValidationError without a path. Other errors are returned unchanged.
func InDocument(err error, path string) error {
	ve, ok := err.(*ValidationError)
	if !ok || ve == nil || ve.Path != "" {
		return err
	}
	located := *ve
	located.Path = path
	return &located
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if loc := e.Location.String(); loc != "" {
		return fmt.Sprintf("validation error: %s: %s", loc, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RenderError reports a failure while writing a table in some output format.
type RenderError struct {
	Format string
	Err    error
}

// NewRenderError constructs a RenderError.
func NewRenderError(format string, err error) error {
	return &RenderError{Format: format, Err: err}
}

func (e *RenderError) Error() string {
	if e == nil {
		return ""
	}
	if e.Format != "" {
		return fmt.Sprintf("render error [%s]: %v", e.Format, e.Err)
	}
	return fmt.Sprintf("render error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *RenderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// WatchError reports a failure to observe a document for changes.
type WatchError struct {
	Path    string
	Message string
	Err     error
}

// NewWatchError constructs a WatchError for path.
func NewWatchError(path string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &WatchError{Path: path, Message: message, Err: err}
}

func (e *WatchError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path != "" {
		return fmt.Sprintf("watch error [%s]: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("watch error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *WatchError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
