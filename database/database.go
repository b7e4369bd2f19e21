package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // Import the SQLite3 driver
)

// InitDB initializes the local database connection. It takes the database
// path as input and creates the schema when missing.
func InitDB(dbPath string) (*sql.DB, error) {
	// Ensure the directory for the database file exists.
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open the SQLite database. It will be created if it doesn't exist.
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Ping the database to verify the connection.
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := createSessionTable(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create session table: %w", err)
	}
	if err := createJournalTable(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create journal table: %w", err)
	}

	return db, nil
}

func createSessionTable(db *sql.DB) error {
	query := `
    CREATE TABLE IF NOT EXISTS session (
        name TEXT PRIMARY KEY,
        snapshot TEXT NOT NULL,
        updated_at INTEGER
    );`
	_, err := db.Exec(query)
	return err
}

func createJournalTable(db *sql.DB) error {
	query := `
    CREATE TABLE IF NOT EXISTS journals (
        id TEXT PRIMARY KEY,
        user_id INTEGER,
        humor TEXT,
        title TEXT,
        content TEXT,
        is_pinned INTEGER DEFAULT 0,
        color TEXT,
        created_at INTEGER,
        updated_at INTEGER
    );`
	_, err := db.Exec(query)
	return err
}
