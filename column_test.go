package partsql

import (
	"errors"
	"strings"
	"testing"
)

func TestColumn(t *testing.T) {
	t.Run("Valid column", func(t *testing.T) {
		column := F("username")
		if column.Name != "username" {
			t.Errorf("Expected column name 'username', got '%s'", column.Name)
		}
		if column.Qualifier != "" {
			t.Errorf("Expected empty qualifier, got '%s'", column.Qualifier)
		}
	})

	t.Run("With alias qualifier", func(t *testing.T) {
		column := F("username").WithQualifier("u")
		if column.Qualifier != "u" {
			t.Errorf("Expected qualifier 'u', got '%s'", column.Qualifier)
		}
	})

	t.Run("With table name qualifier", func(t *testing.T) {
		column := F("username").WithQualifier("users")
		if column.Qualifier != "users" {
			t.Errorf("Expected qualifier 'users', got '%s'", column.Qualifier)
		}
	})

	t.Run("WithQualifier copies", func(t *testing.T) {
		base := F("username")
		qualified := base.WithQualifier("u")
		if base.Qualifier != "" {
			t.Errorf("WithQualifier mutated the original: %s", base.Qualifier)
		}
		if qualified.Qualifier != "u" {
			t.Errorf("Expected qualifier 'u', got '%s'", qualified.Qualifier)
		}
	})

	t.Run("Unsafe qualifier panics", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("Expected panic for unsafe qualifier")
			}
		}()
		F("username").WithQualifier("u; DROP TABLE users")
	})
}

func TestTryFInvalidCases(t *testing.T) {
	tests := []struct {
		name    string
		column  string
		wantErr string
	}{
		{"Empty name", "", "name must not be empty"},
		{"Semicolon", "name; --", "unsafe column name"},
		{"Quote", "name'", "unsafe column name"},
		{"Leading digit", "1name", "unsafe column name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TryF(tt.column)
			if err == nil {
				t.Fatal("Expected error")
			}

			var invalid InvalidConstructionError
			if !errors.As(err, &invalid) {
				t.Errorf("Expected InvalidConstructionError, got %T", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing '%s', got '%s'", tt.wantErr, err.Error())
			}
		})
	}
}

func TestTryF_RegistryGuard(t *testing.T) {
	RegisterValidColumns([]string{"balance"})
	t.Cleanup(func() { validColumns.Delete("balance") })

	if _, err := TryF("balance"); err != nil {
		t.Errorf("Expected registered column to construct: %v", err)
	}

	_, err := TryF("overdraft")
	if err == nil {
		t.Fatal("Expected unregistered column to be rejected")
	}
	var invalid InvalidConstructionError
	if !errors.As(err, &invalid) {
		t.Errorf("Expected InvalidConstructionError, got %T", err)
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("Expected registry error, got '%s'", err.Error())
	}
}

func TestRenderQualifiedColumn(t *testing.T) {
	result, err := RenderPart(F("username").WithQualifier("u"))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if result.SQL != "u.username" {
		t.Errorf("Expected 'u.username', got '%s'", result.SQL)
	}
}
