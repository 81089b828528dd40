package partsql

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/zoobzio/pipz"
	"github.com/zoobzio/sentinel"
	"github.com/zoobzio/zlog"
)

// Columns are registered automatically when Sentinel extracts metadata from structs.
var validColumns = sync.Map{}

// Tables are registered automatically when Sentinel extracts metadata from structs.
var validTables = sync.Map{}

// RegisterValidColumns adds column names to the allowed list.
// This is called automatically when Sentinel processes structs with db tags.
func RegisterValidColumns(columns []string) {
	for _, column := range columns {
		validColumns.Store(column, true)
	}
}

// RegisterValidTable adds a table name to the allowed list.
// This is called automatically when Sentinel processes structs.
func RegisterValidTable(tableName string) {
	validTables.Store(tableName, true)
}

// registryHasTables reports whether any table has been registered.
func registryHasTables() bool {
	found := false
	validTables.Range(func(_, _ any) bool {
		found = true
		return false
	})
	return found
}

// registryHasColumns reports whether any column has been registered.
func registryHasColumns() bool {
	found := false
	validColumns.Range(func(_, _ any) bool {
		found = true
		return false
	})
	return found
}

// ValidateColumn returns an error if the column was not found in any
// scanned struct.
func ValidateColumn(column string) error {
	if _, exists := validColumns.Load(column); !exists {
		return fmt.Errorf("column '%s' not found - ensure struct is scanned with sentinel.Inspect[T]()", column)
	}
	return nil
}

// ValidateTable returns an error if the table was not found in any
// scanned struct.
func ValidateTable(table string) error {
	if _, exists := validTables.Load(table); !exists {
		return fmt.Errorf("table '%s' not found - ensure struct is scanned with sentinel.Inspect[T]()", table)
	}
	return nil
}

// extractDBColumns pulls db-tagged column names out of extracted struct
// metadata and registers them as valid column names.
func extractDBColumns(metadata sentinel.ModelMetadata) {
	var dbColumns []string
	for _, field := range metadata.Fields {
		if dbTag, exists := field.Tags["db"]; exists && dbTag != "-" {
			// Validate that the db tag is a safe identifier
			if !isValidSQLIdentifier(dbTag) {
				zlog.Warn("Skipping field with unsafe db tag", zlog.String("field", field.Name), zlog.String("tag", dbTag))
				continue
			}
			dbColumns = append(dbColumns, dbTag)
		}
	}
	if len(dbColumns) > 0 {
		RegisterValidColumns(dbColumns)
	}
}

// isValidSQLIdentifier reports whether a string is safe to embed as an
// identifier. Only alphanumeric characters and underscores are allowed,
// starting with a letter or underscore.
func isValidSQLIdentifier(s string) bool {
	if s == "" {
		return false
	}

	// Must start with letter or underscore
	first := s[0]
	if !((first >= 'a' && first <= 'z') ||
		(first >= 'A' && first <= 'Z') ||
		first == '_') {
		return false
	}

	// Rest must be alphanumeric or underscore
	for i := 1; i < len(s); i++ {
		ch := s[i]
		if !((ch >= 'a' && ch <= 'z') ||
			(ch >= 'A' && ch <= 'Z') ||
			(ch >= '0' && ch <= '9') ||
			ch == '_') {
			return false
		}
	}

	// Look for SQL injection indicators
	lower := strings.ToLower(s)

	suspiciousPatterns := []string{
		";",     // Statement separator
		"--",    // SQL comment
		"/*",    // SQL comment start
		"*/",    // SQL comment end
		"'",     // Single quote
		"\"",    // Double quote
		"`",     // Backtick
		"\\",    // Escape character
		" or ",  // SQL OR with spaces
		" and ", // SQL AND with spaces
		"drop table",
		"delete from",
		"insert into",
		"update set",
		"select ",
		"union all",
		"union select",
	}

	for _, pattern := range suspiciousPatterns {
		if strings.Contains(lower, pattern) {
			return false
		}
	}

	// Reject if it contains spaces
	if strings.Contains(s, " ") {
		return false
	}

	return true
}

// columnExtractionHook feeds Sentinel metadata extraction events into
// the registry so that scanned structs register their tables and
// columns automatically.
var columnExtractionHook = pipz.Apply[zlog.Event[sentinel.ExtractionEvent]]("partsql-columns", func(_ context.Context, event zlog.Event[sentinel.ExtractionEvent]) (zlog.Event[sentinel.ExtractionEvent], error) {
	// Extract column names from the metadata
	extractDBColumns(event.Data.Metadata)

	// Extract and register table name from type name
	tableName := typeNameToTableName(event.Data.TypeName)
	if isValidSQLIdentifier(tableName) {
		RegisterValidTable(tableName)
		zlog.Debug("Registered table", zlog.String("table", tableName), zlog.String("type", event.Data.TypeName))
	} else {
		zlog.Warn("Skipping type - generated unsafe table name", zlog.String("type", event.Data.TypeName), zlog.String("table", tableName))
	}

	return event, nil
})

// typeNameToTableName converts a Go type name to a snake_case plural
// table name, e.g. "User" -> "users", "OrderItem" -> "order_items".
func typeNameToTableName(typeName string) string {
	result := ""
	for i, ch := range typeName {
		if i > 0 && ch >= 'A' && ch <= 'Z' {
			// Add underscore before uppercase letters (except first)
			result += "_"
		}
		result += string(ch)
	}

	// Convert to lowercase and add 's' for simple pluralization
	result = strings.ToLower(result) + "s"

	return result
}

// Hook metadata extraction when structs are scanned.
func init() {
	sentinel.Logger.Extraction.Hook("METADATA_EXTRACTED", columnExtractionHook)
}
