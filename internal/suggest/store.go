package suggest

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Store provides durable storage for observed chord progressions.
// Uses SQLite with WAL mode for concurrent read access.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path.
//
// The database is configured with:
//   - WAL mode for concurrent reads during writes
//   - NORMAL synchronous mode
//   - 5-second busy timeout for lock contention
//   - Foreign key enforcement
//
// Idempotent: safe to call multiple times on the same path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite supports one writer at a time; a single connection avoids
	// SQLITE_BUSY on concurrent writes.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}
	return nil
}

// EnsureSource returns the id of the named progression source, creating
// it if needed.
func (s *Store) EnsureSource(ctx context.Context, name string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sources (id, name) VALUES (?, ?)
		 ON CONFLICT(name) DO NOTHING`, id, name)
	if err != nil {
		return "", fmt.Errorf("failed to insert source %q: %w", name, err)
	}

	var got string
	err = s.db.QueryRowContext(ctx,
		`SELECT id FROM sources WHERE name = ?`, name).Scan(&got)
	if err != nil {
		return "", fmt.Errorf("failed to look up source %q: %w", name, err)
	}
	return got, nil
}

// AddTransition records one observed from→to pair for a source. Repeated
// observations accumulate weight.
func (s *Store) AddTransition(ctx context.Context, sourceID, fromHex, toHex string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO transitions (source_id, from_hex, to_hex, weight)
		 VALUES (?, ?, ?, 1)
		 ON CONFLICT(source_id, from_hex, to_hex) DO UPDATE SET weight = weight + 1`,
		sourceID, fromHex, toHex)
	if err != nil {
		return fmt.Errorf("failed to record transition %s -> %s: %w", fromHex, toHex, err)
	}
	return nil
}

// Transition is one aggregated continuation of a chord.
type Transition struct {
	ToHex  string
	Weight int64
}

// Continuations returns the continuations of fromHex across all sources,
// ordered by aggregate weight descending (hex ascending on ties, for
// deterministic output). limit <= 0 means no limit.
func (s *Store) Continuations(ctx context.Context, fromHex string, limit int) ([]Transition, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT to_hex, SUM(weight) AS total
		 FROM transitions
		 WHERE from_hex = ?
		 GROUP BY to_hex
		 ORDER BY total DESC, to_hex ASC
		 LIMIT ?`, fromHex, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query continuations of %s: %w", fromHex, err)
	}
	defer rows.Close()

	var out []Transition
	for rows.Next() {
		var tr Transition
		if err := rows.Scan(&tr.ToHex, &tr.Weight); err != nil {
			return nil, fmt.Errorf("failed to scan transition row: %w", err)
		}
		out = append(out, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transition rows: %w", err)
	}
	return out, nil
}
