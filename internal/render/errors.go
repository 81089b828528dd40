package render

import "fmt"

// InvalidConstructionError indicates a node was constructed with a
// required attribute missing or invalid. It is raised at construction
// time, never deferred to render.
type InvalidConstructionError struct {
	Kind   string
	Reason string
}

func (e InvalidConstructionError) Error() string {
	return fmt.Sprintf("invalid %s construction: %s", e.Kind, e.Reason)
}

// NewInvalidConstructionError creates a new invalid construction error.
func NewInvalidConstructionError(kind, reason string) error {
	return InvalidConstructionError{Kind: kind, Reason: reason}
}

// MalformedTreeError indicates a required child reference was absent at
// render time. Renderers detect it before emitting any text for the
// offending node; the top-level render returns no output on failure.
type MalformedTreeError struct {
	Kind  string
	Child string
}

func (e MalformedTreeError) Error() string {
	return fmt.Sprintf("malformed statement tree: %s is missing required child %s", e.Kind, e.Child)
}

// NewMalformedTreeError creates a new malformed tree error.
func NewMalformedTreeError(kind, child string) error {
	return MalformedTreeError{Kind: kind, Child: child}
}

// UnsupportedFeatureError indicates a feature not supported by the dialect.
type UnsupportedFeatureError struct {
	Feature string
	Dialect string
	Hint    string
}

func (e UnsupportedFeatureError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s is not supported: %s", e.Dialect, e.Feature, e.Hint)
	}
	return fmt.Sprintf("%s: %s is not supported", e.Dialect, e.Feature)
}

// NewUnsupportedFeatureError creates a new unsupported feature error.
func NewUnsupportedFeatureError(dialect, feature string, hint ...string) error {
	err := UnsupportedFeatureError{Feature: feature, Dialect: dialect}
	if len(hint) > 0 {
		err.Hint = hint[0]
	}
	return err
}
