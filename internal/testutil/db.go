// Package testutil provides shared fixtures for package tests.
package testutil

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/laststance/gitbox-sub002/internal/database"
)

// SetupTestDB creates an in-memory database with the full schema and the
// seeded default board.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}
	db.SetMaxOpenConns(1)

	if err := database.RunMigrations(ctx, db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	return db
}

// SeededBoardID returns the ID of the board seeded by the migrations.
func SeededBoardID(t *testing.T, db *sql.DB) string {
	t.Helper()

	var id string
	err := db.QueryRowContext(context.Background(),
		"SELECT id FROM boards ORDER BY created_at LIMIT 1").Scan(&id)
	if err != nil {
		t.Fatalf("Failed to find seeded board: %v", err)
	}
	return id
}
