package errors

import (
	"fmt"
)

// GeometryError reports a rectangle or path that cannot be built or allocated.
type GeometryError struct {
	Op     string
	Width  float64
	Height float64
	Radius float64
	Reason string
}

// NewGeometryError constructs a GeometryError.
func NewGeometryError(op string, width, height, radius float64, reason string) error {
	return &GeometryError{Op: op, Width: width, Height: height, Radius: radius, Reason: reason}
}

func (e *GeometryError) Error() string {
	if e == nil {
		return ""
	}
	if e.Radius != 0 {
		return fmt.Sprintf("geometry error: %s: %s (w=%g h=%g r=%g)", e.Op, e.Reason, e.Width, e.Height, e.Radius)
	}
	return fmt.Sprintf("geometry error: %s: %s (w=%g h=%g)", e.Op, e.Reason, e.Width, e.Height)
}

// ResourceKind names the collaborator resource that failed to load.
type ResourceKind string

const (
	ResourceTheme  ResourceKind = "theme"
	ResourceFont   ResourceKind = "font"
	ResourceSyntax ResourceKind = "syntax"
	ResourceAsset  ResourceKind = "asset"
)

// ResourceError reports a missing or unreadable theme, font or asset.
type ResourceError struct {
	Kind ResourceKind
	Name string
	Err  error
}

// NewResourceError constructs a ResourceError.
func NewResourceError(kind ResourceKind, name string, err error) error {
	return &ResourceError{Kind: kind, Name: name, Err: err}
}

func (e *ResourceError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("resource error: %s %q: %v", e.Kind, e.Name, e.Err)
	}
	return fmt.Sprintf("resource error: %s %q not found", e.Kind, e.Name)
}

// Unwrap exposes the underlying error.
func (e *ResourceError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ParseError represents a configuration decoding failure with optional line metadata.
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

// ValidationError captures configuration validation issues.
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
