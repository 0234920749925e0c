package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"codeberg.org/snonux/gallifreyan/internal/transliterate"
)

// ErrNotFound is returned when no record matches a lookup.
var ErrNotFound = errors.New("record not found")

// Record is one rendered word.
type Record struct {
	ID        string
	Word      string
	Spelling  string
	Tokens    []transliterate.Token
	Commands  int
	Format    string
	CreatedAt time.Time
}

// Store is a SQLite backed render history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return s, nil
}

// createTables creates the history schema if it does not exist yet
func (s *Store) createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS renders (
			id text PRIMARY KEY,
			word text NOT NULL,
			spelling text NOT NULL,
			tokens text NOT NULL,
			commands integer NOT NULL,
			format text NOT NULL,
			created_at integer NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS ix_renders_word ON renders (word)`,
		`CREATE INDEX IF NOT EXISTS ix_renders_created ON renders (created_at)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}

	return nil
}

// Save inserts or replaces a record.
func (s *Store) Save(ctx context.Context, r Record) error {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO renders (id, word, spelling, tokens, commands, format, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Word, r.Spelling, transliterate.Join(r.Tokens), r.Commands, r.Format, r.CreatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to save render of %q: %w", r.Word, err)
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, word, spelling, tokens, commands, format, created_at
		 FROM renders ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	return records, rows.Err()
}

// FindByWord returns the newest record for word.
func (s *Store) FindByWord(ctx context.Context, word string) (Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, word, spelling, tokens, commands, format, created_at
		 FROM renders WHERE word = ? ORDER BY created_at DESC LIMIT 1`, word)

	r, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("%w: %s", ErrNotFound, word)
	}
	return r, err
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(sc scanner) (Record, error) {
	var (
		r       Record
		tokens  string
		created int64
	)
	if err := sc.Scan(&r.ID, &r.Word, &r.Spelling, &tokens, &r.Commands, &r.Format, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, err
		}
		return Record{}, fmt.Errorf("failed to read history row: %w", err)
	}

	for _, t := range strings.Fields(tokens) {
		r.Tokens = append(r.Tokens, transliterate.Token(t))
	}
	r.CreatedAt = time.UnixMilli(created)
	return r, nil
}
