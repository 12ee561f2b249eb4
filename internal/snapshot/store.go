// Package snapshot keeps saved verses in a local SQLite database.
package snapshot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

var (
	// ErrEmpty is returned when saving a verse with no text.
	ErrEmpty = errors.New("snapshot text is empty")
	// ErrExists is returned when the same verse is already saved.
	ErrExists = errors.New("snapshot already saved")
	// ErrNotFound is returned when no snapshot has the given ID.
	ErrNotFound = errors.New("snapshot not found")
)

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	id         TEXT PRIMARY KEY,
	text       TEXT NOT NULL UNIQUE,
	syllables  INTEGER NOT NULL,
	rhyme      TEXT NOT NULL DEFAULT '',
	created_at INTEGER NOT NULL
)`

// Snapshot is a saved verse.
type Snapshot struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Syllables int       `json:"syllables"`
	Rhyme     string    `json:"rhyme,omitempty"` // Rhyme ending at save time
	CreatedAt time.Time `json:"created_at"`
}

// Store is a snapshot database.
type Store struct {
	db     *sql.DB
	logger *zap.Logger
	now    func() time.Time
}

// Open opens or creates the snapshot database at path.
func Open(ctx context.Context, path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating snapshot dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating snapshot table: %w", err)
	}

	logger.Debug("snapshot store opened", zap.String("path", path))
	return &Store{db: db, logger: logger, now: time.Now}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add saves a verse. Saving a verse that is already stored returns the
// existing snapshot together with ErrExists.
func (s *Store) Add(ctx context.Context, text string, syllables int, rhyme string) (*Snapshot, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmpty
	}

	existing, err := s.byText(ctx, text)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return existing, ErrExists
	}

	snap := &Snapshot{
		ID:        uuid.NewString(),
		Text:      text,
		Syllables: syllables,
		Rhyme:     rhyme,
		CreatedAt: s.now().UTC().Truncate(time.Millisecond),
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO snapshots (id, text, syllables, rhyme, created_at) VALUES (?, ?, ?, ?, ?)`,
		snap.ID, snap.Text, snap.Syllables, snap.Rhyme, snap.CreatedAt.UnixMilli())
	if err != nil {
		return nil, fmt.Errorf("inserting snapshot: %w", err)
	}

	s.logger.Info("snapshot saved", zap.String("id", snap.ID), zap.Int("syllables", snap.Syllables))
	return snap, nil
}

// List returns every snapshot, newest first.
func (s *Store) List(ctx context.Context) ([]Snapshot, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, text, syllables, rhyme, created_at FROM snapshots ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying snapshots: %w", err)
	}
	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		snap, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading snapshots: %w", err)
	}
	return out, nil
}

// Get returns the snapshot with the given ID.
func (s *Store) Get(ctx context.Context, id string) (*Snapshot, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, text, syllables, rhyme, created_at FROM snapshots WHERE id = ?`, id)
	return scan(row)
}

// Remove deletes the snapshot with the given ID.
func (s *Store) Remove(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting snapshot %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting snapshot %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("deleting snapshot %s: %w", id, ErrNotFound)
	}

	s.logger.Info("snapshot removed", zap.String("id", id))
	return nil
}

func (s *Store) byText(ctx context.Context, text string) (*Snapshot, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, text, syllables, rhyme, created_at FROM snapshots WHERE text = ?`, text)
	return scan(row)
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (*Snapshot, error) {
	var (
		snap    Snapshot
		created int64
	)
	if err := row.Scan(&snap.ID, &snap.Text, &snap.Syllables, &snap.Rhyme, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning snapshot: %w", err)
	}
	snap.CreatedAt = time.UnixMilli(created).UTC()
	return &snap, nil
}
