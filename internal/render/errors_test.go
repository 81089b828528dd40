package render

import (
	"errors"
	"testing"
)

func TestInvalidConstructionError_Error(t *testing.T) {
	err := InvalidConstructionError{Kind: "TABLE", Reason: "name must not be empty"}
	expected := "invalid TABLE construction: name must not be empty"
	if got := err.Error(); got != expected {
		t.Errorf("Error() = %q, want %q", got, expected)
	}
}

func TestNewInvalidConstructionError(t *testing.T) {
	err := NewInvalidConstructionError("PARAM", "unsafe parameter name: x'")
	var icErr InvalidConstructionError
	if !errors.As(err, &icErr) {
		t.Fatal("expected InvalidConstructionError")
	}
	if icErr.Kind != "PARAM" {
		t.Errorf("Kind = %q, want %q", icErr.Kind, "PARAM")
	}
}

func TestMalformedTreeError_Error(t *testing.T) {
	err := MalformedTreeError{Kind: "NUMBER_FLOOR", Child: "Argument"}
	expected := "malformed statement tree: NUMBER_FLOOR is missing required child Argument"
	if got := err.Error(); got != expected {
		t.Errorf("Error() = %q, want %q", got, expected)
	}
}

func TestNewMalformedTreeError(t *testing.T) {
	err := NewMalformedTreeError("EXISTS", "Select")
	var mtErr MalformedTreeError
	if !errors.As(err, &mtErr) {
		t.Fatal("expected MalformedTreeError")
	}
	if mtErr.Child != "Select" {
		t.Errorf("Child = %q, want %q", mtErr.Child, "Select")
	}
}

func TestUnsupportedFeatureError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      UnsupportedFeatureError
		expected string
	}{
		{
			name: "without hint",
			err: UnsupportedFeatureError{
				Feature: "CEILING",
				Dialect: "sqlite",
			},
			expected: "sqlite: CEILING is not supported",
		},
		{
			name: "with hint",
			err: UnsupportedFeatureError{
				Feature: "ROOT expressions",
				Dialect: "sqlite",
				Hint:    "POWER requires the SQLite math extension",
			},
			expected: "sqlite: ROOT expressions is not supported: POWER requires the SQLite math extension",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNewUnsupportedFeatureError(t *testing.T) {
	err := NewUnsupportedFeatureError("sqlserver", "LIMIT without ORDER BY", "add an ORDER BY clause")
	var ufErr UnsupportedFeatureError
	if !errors.As(err, &ufErr) {
		t.Fatal("expected UnsupportedFeatureError")
	}
	if ufErr.Dialect != "sqlserver" {
		t.Errorf("Dialect = %q, want %q", ufErr.Dialect, "sqlserver")
	}
	if ufErr.Hint != "add an ORDER BY clause" {
		t.Errorf("Hint = %q, want %q", ufErr.Hint, "add an ORDER BY clause")
	}
}
