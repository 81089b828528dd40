// Package integration provides integration tests for partsql using real SQL Server.
package integration

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"

	"github.com/testcontainers/testcontainers-go/modules/mssql"
	"github.com/zoobzio/dbml"
	"github.com/zoobzio/partsql"
	msrenderer "github.com/zoobzio/partsql/mssql"
)

// MSSQLContainer wraps a testcontainers SQL Server instance.
type MSSQLContainer struct {
	container *mssql.MSSQLServerContainer
	db        *sql.DB
	connStr   string
}

// Exec executes a SQL statement.
func (mc *MSSQLContainer) Exec(ctx context.Context, t *testing.T, sqlStr string, args ...any) {
	t.Helper()
	_, err := mc.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		t.Fatalf("Failed to execute SQL: %v\nSQL: %s", err, sqlStr)
	}
}

// Query executes a query and returns rows.
func (mc *MSSQLContainer) Query(ctx context.Context, t *testing.T, sqlStr string, args ...any) *sql.Rows {
	t.Helper()
	rows, err := mc.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		t.Fatalf("Failed to execute query: %v\nSQL: %s", err, sqlStr)
	}
	return rows
}

// createMSSQLTestInstance creates a PartQL instance matching the SQL Server test schema.
func createMSSQLTestInstance(t *testing.T) *partsql.PartQL {
	t.Helper()

	project := dbml.NewProject("test")

	users := dbml.NewTable("users")
	users.AddColumn(dbml.NewColumn("id", "bigint"))
	users.AddColumn(dbml.NewColumn("username", "nvarchar"))
	users.AddColumn(dbml.NewColumn("age", "int"))
	project.AddTable(users)

	instance, err := partsql.NewFromDBML(project)
	if err != nil {
		t.Fatalf("Failed to create instance: %v", err)
	}
	return instance
}

// setupMSSQLSchema creates the test database schema.
func setupMSSQLSchema(ctx context.Context, t *testing.T, mc *MSSQLContainer) {
	t.Helper()

	mc.Exec(ctx, t, `
		IF OBJECT_ID('users', 'U') IS NULL
		CREATE TABLE users (
			id BIGINT PRIMARY KEY,
			username NVARCHAR(255) NOT NULL,
			age INT
		)
	`)
}

// seedMSSQLData inserts test data.
func seedMSSQLData(ctx context.Context, t *testing.T, mc *MSSQLContainer) {
	t.Helper()

	mc.Exec(ctx, t, `
		INSERT INTO users (id, username, age) VALUES
		(1, 'alice', 30),
		(2, 'bob', 25),
		(3, 'charlie', 35)
	`)
}

// cleanupMSSQLData removes all test data to ensure test isolation.
func cleanupMSSQLData(ctx context.Context, t *testing.T, mc *MSSQLContainer) {
	t.Helper()
	mc.Exec(ctx, t, `DELETE FROM users`)
}

// convertMSSQLParams converts partsql named parameters to SQL Server positional parameters.
// The SQL Server go driver uses @p1, @p2, etc. for positional params.
// Parameters are extracted in the order they appear in the SQL string.
func convertMSSQLParams(sqlStr string, params map[string]any) (string, []any) {
	args := make([]any, 0)
	result := strings.Builder{}
	paramNum := 1

	i := 0
	for i < len(sqlStr) {
		if sqlStr[i] == ':' {
			// Find end of parameter name
			j := i + 1
			for j < len(sqlStr) && (isAlphaNumeric(sqlStr[j]) || sqlStr[j] == '_') {
				j++
			}
			if j > i+1 {
				paramName := sqlStr[i+1 : j]
				if value, ok := params[paramName]; ok {
					result.WriteString(fmt.Sprintf("@p%d", paramNum))
					args = append(args, value)
					paramNum++
					i = j
					continue
				}
			}
		}
		result.WriteByte(sqlStr[i])
		i++
	}

	return result.String(), args
}

// TestMSSQLIntegration_BasicSelect tests basic SELECT queries against SQL Server.
func TestMSSQLIntegration_BasicSelect(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	mc := getMSSQLContainer(t)
	setupMSSQLSchema(ctx, t, mc)
	seedMSSQLData(ctx, t, mc)
	t.Cleanup(func() { cleanupMSSQLData(ctx, t, mc) })

	instance := createMSSQLTestInstance(t)

	result, err := partsql.Select(instance.T("users")).Render(msrenderer.New())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	rows := mc.Query(ctx, t, result.SQL)
	defer rows.Close()

	count := 0
	for rows.Next() {
		count++
	}
	if count != 3 {
		t.Errorf("Expected 3 users, got %d", count)
	}
}

// TestMSSQLIntegration_Functions tests function parts against SQL Server.
func TestMSSQLIntegration_Functions(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	mc := getMSSQLContainer(t)
	setupMSSQLSchema(ctx, t, mc)
	seedMSSQLData(ctx, t, mc)
	t.Cleanup(func() { cleanupMSSQLData(ctx, t, mc) })

	instance := createMSSQLTestInstance(t)

	result, err := partsql.Select(instance.T("users")).
		Parts(
			partsql.Lower(instance.F("username")),
			partsql.Ceiling(instance.F("age")),
		).
		Where(instance.C(instance.F("id"), partsql.EQ, instance.P("user_id"))).
		Render(msrenderer.New())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	sqlStr, args := convertMSSQLParams(result.SQL, map[string]any{"user_id": 1})
	var username string
	var ceiling int
	if err := mc.db.QueryRowContext(ctx, sqlStr, args...).Scan(&username, &ceiling); err != nil {
		t.Fatalf("Scan failed: %v\nSQL: %s", err, sqlStr)
	}

	if username != "alice" {
		t.Errorf("Expected 'alice', got '%s'", username)
	}
	if ceiling != 30 {
		t.Errorf("Expected CEILING(30) = 30, got %d", ceiling)
	}
}

// TestMSSQLIntegration_Pagination tests OFFSET/FETCH pagination against SQL Server.
func TestMSSQLIntegration_Pagination(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	mc := getMSSQLContainer(t)
	setupMSSQLSchema(ctx, t, mc)
	seedMSSQLData(ctx, t, mc)
	t.Cleanup(func() { cleanupMSSQLData(ctx, t, mc) })

	instance := createMSSQLTestInstance(t)

	result, err := partsql.Select(instance.T("users")).
		Parts(instance.F("username")).
		OrderBy(instance.F("age"), partsql.ASC).
		Limit(1).
		Offset(1).
		Render(msrenderer.New())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	rows := mc.Query(ctx, t, result.SQL)
	defer rows.Close()

	var usernames []string
	for rows.Next() {
		var username string
		if err := rows.Scan(&username); err != nil {
			t.Fatalf("Scan failed: %v", err)
		}
		usernames = append(usernames, username)
	}

	if len(usernames) != 1 || usernames[0] != "alice" {
		t.Errorf("Expected [alice], got %v", usernames)
	}
}
