package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	_ "github.com/mattn/go-sqlite3"
)

// Persistence keys shared with anything else that reads the database.
const (
	KeyTaskList  = "todo_list_demo"
	KeyThemeDark = "theme_dark"
)

// KVStore is a durable key-value store with JSON values. Reads and writes
// never surface errors to callers: a failed read yields the caller's
// default, a failed write is logged and dropped. Durability is best-effort
// by contract, so the in-memory state a caller already holds stays
// authoritative.
type KVStore struct {
	db  *sql.DB
	log *slog.Logger
}

func NewKVStore(db *sql.DB, logger *slog.Logger) (*KVStore, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return nil, fmt.Errorf("set journal mode: %w", err)
	}
	return &KVStore{db: db, log: logger}, nil
}

func OpenKVStore(path string, logger *slog.Logger) (*KVStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	store, err := NewKVStore(db, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *KVStore) Close() error {
	return s.db.Close()
}

func (s *KVStore) readRaw(key string) (string, bool) {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.log.Debug("kv key absent", "key", key)
		} else {
			s.log.Warn("kv read failed", "key", key, "error", err)
		}
		return "", false
	}
	return raw, true
}

func (s *KVStore) writeRaw(key, value string) {
	_, err := s.db.Exec(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		s.log.Warn("kv write failed", "key", key, "error", err)
	}
}

// Get returns the stored value for key, or def when the key is absent or
// the stored payload fails to decode.
func Get[T any](s *KVStore, key string, def T) T {
	raw, ok := s.readRaw(key)
	if !ok {
		return def
	}
	var out T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		s.log.Warn("kv value malformed, using default", "key", key, "error", err)
		return def
	}
	return out
}

// Set serializes value and upserts it under key.
func Set[T any](s *KVStore, key string, value T) {
	payload, err := json.Marshal(value)
	if err != nil {
		s.log.Warn("kv marshal failed", "key", key, "error", err)
		return
	}
	s.writeRaw(key, string(payload))
}

// Update is the read-modify-write form of Set; a literal Set is the
// constant-function special case. The applied value is returned.
func Update[T any](s *KVStore, key string, def T, fn func(T) T) T {
	next := fn(Get(s, key, def))
	Set(s, key, next)
	return next
}
