package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
)

// Storage keys, verbatim from the original frontend's local storage.
const (
	KeySubjects    = "subjects"
	KeyXPData      = "xpData"
	KeyCoins       = "coins"
	KeyPetHealth   = "petHealth"
	KeyInventory   = "inventory"
	KeyTaskHistory = "taskHistory"
	KeyPetName     = "petName"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx so store reads/writes can
// participate in a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store is a string-keyed persistent value store backed by SQLite.
// Scalar values are stored as their decimal text form and JSON values as
// their serialized form, matching what the original kept in local storage.
type Store struct {
	db DBTX
}

func NewStore(db DBTX) *Store {
	return &Store{db: db}
}

// Tx returns a view of the store bound to the given transaction.
func (s *Store) Tx(tx *sql.Tx) *Store {
	return &Store{db: tx}
}

// GetString returns the raw value for key. ok is false when the key is absent.
func (s *Store) GetString(ctx context.Context, key string) (value string, ok bool, err error) {
	row := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key)
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("kv get %q: %w", key, err)
	}
	return value, true, nil
}

func (s *Store) SetString(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value)
	if err != nil {
		return fmt.Errorf("kv set %q: %w", key, err)
	}
	return nil
}

// GetInt parses the stored value as an integer. Absent or malformed values
// yield def; corrupt data is never surfaced past this boundary.
func (s *Store) GetInt(ctx context.Context, key string, def int) (int, error) {
	raw, ok, err := s.GetString(ctx, key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def, nil
	}
	return n, nil
}

func (s *Store) SetInt(ctx context.Context, key string, v int) error {
	return s.SetString(ctx, key, strconv.Itoa(v))
}

// GetJSON unmarshals the stored value into dest. ok is false when the key is
// absent or the stored value does not decode; dest is left untouched in both
// cases so callers fall back to their documented default.
func (s *Store) GetJSON(ctx context.Context, key string, dest any) (ok bool, err error) {
	raw, found, err := s.GetString(ctx, key)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, nil
	}
	return true, nil
}

func (s *Store) SetJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("kv marshal %q: %w", key, err)
	}
	return s.SetString(ctx, key, string(data))
}

func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("kv delete %q: %w", key, err)
	}
	return nil
}
