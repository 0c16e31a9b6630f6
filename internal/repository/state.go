package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// SchemaVersion is written with every record and required on read.
const SchemaVersion = 1

const (
	KeyBookmarks    = "bookmarks"
	KeyQuizSession  = "quiz_session"
	KeyUserProgress = "user_progress"
)

var (
	ErrNotFound          = errors.New("state record not found")
	ErrUnsupportedSchema = errors.New("unsupported schema version")
)

// StateInfo describes a stored record without its payload.
type StateInfo struct {
	Key           string    `db:"key"`
	SchemaVersion int       `db:"schema_version"`
	Size          int       `db:"size"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type stateRecord struct {
	SchemaVersion int    `db:"schema_version"`
	Payload       string `db:"payload"`
}

type StateR struct {
	db  QueryI
	now func() time.Time
}

func NewStateRepository(db QueryI) *StateR {
	return &StateR{
		db:  db,
		now: time.Now,
	}
}

// Load returns the payload stored under key.
func (s *StateR) Load(ctx context.Context, key string) ([]byte, error) {
	query := s.db.Rebind(`SELECT schema_version, payload FROM state_records WHERE key = ?`)

	var rec stateRecord
	err := s.db.GetContext(ctx, &rec, query, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, fmt.Errorf("load %s: %w", key, err)
	}

	if rec.SchemaVersion != SchemaVersion {
		return nil, fmt.Errorf("%w: %s has version %d, want %d", ErrUnsupportedSchema, key, rec.SchemaVersion, SchemaVersion)
	}

	return []byte(rec.Payload), nil
}

// Save upserts payload under key with the current schema version.
func (s *StateR) Save(ctx context.Context, key string, payload []byte) error {
	query := s.db.Rebind(`INSERT INTO state_records (key, schema_version, payload, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (key)
		DO UPDATE SET
			schema_version = EXCLUDED.schema_version,
			payload = EXCLUDED.payload,
			updated_at = EXCLUDED.updated_at`)

	_, err := s.db.ExecContext(ctx, query, key, SchemaVersion, string(payload), s.now().UTC())
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}

	return nil
}

func (s *StateR) Delete(ctx context.Context, key string) error {
	query := s.db.Rebind(`DELETE FROM state_records WHERE key = ?`)

	_, err := s.db.ExecContext(ctx, query, key)
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}

	return nil
}

func (s *StateR) List(ctx context.Context) ([]StateInfo, error) {
	query := `SELECT key, schema_version, LENGTH(payload) AS size, updated_at
		FROM state_records
		ORDER BY key`

	var infos []StateInfo
	if err := s.db.SelectContext(ctx, &infos, query); err != nil {
		return nil, fmt.Errorf("list state records: %w", err)
	}

	return infos, nil
}
