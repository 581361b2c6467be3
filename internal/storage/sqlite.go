package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLite stores records in a single table of a SQLite database.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func OpenSQLite(dbPath string) (*SQLite, error) {
	dbPath, err := prepareFile(dbPath)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	// One connection keeps writes from SSH sessions serialized.
	db.SetMaxOpenConns(1)

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return s, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *SQLite) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS records (
			profile TEXT NOT NULL,
			key TEXT NOT NULL,
			value BLOB NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (profile, key)
		);
		CREATE INDEX IF NOT EXISTS idx_records_profile ON records(profile);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Get implements Backend.
func (s *SQLite) Get(ctx context.Context, profile, key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM records WHERE profile = ? AND key = ?",
		profile, key,
	).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("storage: cannot read %s/%s: %w", profile, key, err)
	}
	return value, true, nil
}

// Put implements Backend.
func (s *SQLite) Put(ctx context.Context, profile, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO records (profile, key, value, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(profile, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		profile, key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write %s/%s: %w", profile, key, err)
	}
	return nil
}

// Delete implements Backend.
func (s *SQLite) Delete(ctx context.Context, profile, key string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM records WHERE profile = ? AND key = ?",
		profile, key,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot delete %s/%s: %w", profile, key, err)
	}
	return nil
}

// Profiles implements Backend.
func (s *SQLite) Profiles(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT DISTINCT profile FROM records ORDER BY profile",
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query profiles: %w", err)
	}
	defer rows.Close()

	var profiles []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return profiles, nil
}

var _ Backend = (*SQLite)(nil)
