// Package integration provides integration tests for partsql using real databases.
package integration

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/zoobzio/dbml"
	"github.com/zoobzio/partsql"
	slrenderer "github.com/zoobzio/partsql/sqlite"
)

// SQLiteDB wraps an in-memory SQLite database for testing.
type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB creates a new in-memory SQLite database.
func NewSQLiteDB(t *testing.T) *SQLiteDB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open SQLite: %v", err)
	}

	return &SQLiteDB{db: db}
}

// Close closes the SQLite database.
func (s *SQLiteDB) Close(t *testing.T) {
	t.Helper()
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			t.Logf("Warning: failed to close database: %v", err)
		}
	}
}

// Exec executes a SQL statement.
func (s *SQLiteDB) Exec(t *testing.T, sqlStr string, args ...any) {
	t.Helper()
	_, err := s.db.Exec(sqlStr, args...)
	if err != nil {
		t.Fatalf("Failed to execute SQL: %v\nSQL: %s", err, sqlStr)
	}
}

// Query executes a query and returns rows.
func (s *SQLiteDB) Query(t *testing.T, sqlStr string, args ...any) *sql.Rows {
	t.Helper()
	rows, err := s.db.Query(sqlStr, args...)
	if err != nil {
		t.Fatalf("Failed to execute query: %v\nSQL: %s", err, sqlStr)
	}
	return rows
}

// createSQLiteTestInstance creates a PartQL instance matching the SQLite test schema.
func createSQLiteTestInstance(t *testing.T) *partsql.PartQL {
	t.Helper()

	project := dbml.NewProject("test")

	users := dbml.NewTable("users")
	users.AddColumn(dbml.NewColumn("id", "integer"))
	users.AddColumn(dbml.NewColumn("username", "text"))
	users.AddColumn(dbml.NewColumn("age", "integer"))
	users.AddColumn(dbml.NewColumn("balance", "real"))
	project.AddTable(users)

	instance, err := partsql.NewFromDBML(project)
	if err != nil {
		t.Fatalf("Failed to create instance: %v", err)
	}
	return instance
}

// setupSQLiteSchema creates the test schema and seed data.
func setupSQLiteSchema(t *testing.T, s *SQLiteDB) {
	t.Helper()

	s.Exec(t, `
		CREATE TABLE users (
			id INTEGER PRIMARY KEY,
			username TEXT NOT NULL,
			age INTEGER,
			balance REAL
		)
	`)

	s.Exec(t, `
		INSERT INTO users (id, username, age, balance) VALUES
		(1, 'alice', 30, 12.75),
		(2, 'bob', 25, -3.5),
		(3, 'charlie', 35, 0)
	`)
}

// TestSQLiteIntegration_BasicSelect tests basic SELECT queries against SQLite.
func TestSQLiteIntegration_BasicSelect(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	s := NewSQLiteDB(t)
	defer s.Close(t)
	setupSQLiteSchema(t, s)

	instance := createSQLiteTestInstance(t)

	result, err := partsql.Select(instance.T("users")).Render(slrenderer.New())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	rows := s.Query(t, result.SQL)
	defer rows.Close()

	count := 0
	for rows.Next() {
		count++
	}
	if count != 3 {
		t.Errorf("Expected 3 users, got %d", count)
	}
}

// TestSQLiteIntegration_SupportedFunctions tests the function subset SQLite supports.
func TestSQLiteIntegration_SupportedFunctions(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	s := NewSQLiteDB(t)
	defer s.Close(t)
	setupSQLiteSchema(t, s)

	instance := createSQLiteTestInstance(t)

	result, err := partsql.Select(instance.T("users")).
		Parts(
			partsql.Upper(instance.F("username")),
			partsql.Abs(instance.F("balance")),
			partsql.Floor(instance.F("balance")),
		).
		Where(instance.C(instance.F("id"), partsql.EQ, instance.P("user_id"))).
		Render(slrenderer.New())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	// modernc.org/sqlite supports :name named args via sql.Named.
	var username string
	var abs, floor float64
	row := s.db.QueryRow(result.SQL, sql.Named("user_id", 2))
	if err := row.Scan(&username, &abs, &floor); err != nil {
		t.Fatalf("Scan failed: %v\nSQL: %s", err, result.SQL)
	}

	if username != "BOB" {
		t.Errorf("Expected 'BOB', got '%s'", username)
	}
	if abs != 3.5 {
		t.Errorf("Expected ABS(-3.5) = 3.5, got %v", abs)
	}
	if floor != -4 {
		t.Errorf("Expected FLOOR(-3.5) = -4, got %v", floor)
	}
}

// TestSQLiteIntegration_UnsupportedFeatures verifies the renderer refuses
// features the engine lacks instead of emitting SQL that would fail.
func TestSQLiteIntegration_UnsupportedFeatures(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	instance := createSQLiteTestInstance(t)

	_, err := partsql.Select(instance.T("users")).
		Parts(partsql.Ceiling(instance.F("balance"))).
		Render(slrenderer.New())
	if err == nil {
		t.Fatal("Expected error for CEILING on SQLite")
	}

	_, err = partsql.Select(instance.T("users")).
		Parts(partsql.Root(instance.F("age"), instance.P("n"))).
		Render(slrenderer.New())
	if err == nil {
		t.Fatal("Expected error for ROOT on SQLite")
	}
}

// TestSQLiteIntegration_Pagination tests ORDER BY with LIMIT and OFFSET.
func TestSQLiteIntegration_Pagination(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	s := NewSQLiteDB(t)
	defer s.Close(t)
	setupSQLiteSchema(t, s)

	instance := createSQLiteTestInstance(t)

	result, err := partsql.Select(instance.T("users")).
		Parts(instance.F("username")).
		OrderBy(instance.F("age"), partsql.ASC).
		Limit(1).
		Offset(1).
		Render(slrenderer.New())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	rows := s.Query(t, result.SQL)
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
