package errors

import (
	"fmt"
)

// NotFoundError reports a lookup of a name that is not registered, such as a
// navigation target or a theme.
type NotFoundError struct {
	Kind string
	Name string
}

// NewNotFoundError constructs a NotFoundError.
func NewNotFoundError(kind, name string) error {
	return &NotFoundError{Kind: kind, Name: name}
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ""
	}
	if e.Kind == "" {
		return fmt.Sprintf("not found: %q", e.Name)
	}
	return fmt.Sprintf("%s not found: %q", e.Kind, e.Name)
}

// DuplicateRegistrationError is returned by strict registries when a name is
// registered twice.
type DuplicateRegistrationError struct {
	Kind string
	Name string
}

// NewDuplicateRegistrationError constructs a DuplicateRegistrationError.
func NewDuplicateRegistrationError(kind, name string) error {
	return &DuplicateRegistrationError{Kind: kind, Name: name}
}

func (e *DuplicateRegistrationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Kind == "" {
		return fmt.Sprintf("already registered: %q", e.Name)
	}
	return fmt.Sprintf("%s already registered: %q", e.Kind, e.Name)
}

// ParseError represents a YAML or TOML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration and settings validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
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
