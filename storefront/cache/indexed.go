package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const sqlitePageSize = 4096

// indexedStore is the "naaz-cache" database with a single "cache" table keyed by cache key.
type indexedStore struct {
	db *sql.DB
}

func newIndexedStore(ctx context.Context, path string, maxBytes int64) (*indexedStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	stmts := []string{
		`PRAGMA journal_mode = WAL`,
		`CREATE TABLE IF NOT EXISTS cache (key TEXT PRIMARY KEY, value BLOB NOT NULL)`,
	}
	if maxBytes > 0 {
		pages := maxBytes / sqlitePageSize
		if pages < 1 {
			pages = 1
		}
		stmts = append(stmts, fmt.Sprintf(`PRAGMA max_page_count = %d`, pages))
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("init naaz-cache: %w", err)
		}
	}
	return &indexedStore{db: db}, nil
}

func (s *indexedStore) read(ctx context.Context, key string) ([]byte, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM cache WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errMiss
	}
	return raw, err
}

func (s *indexedStore) write(ctx context.Context, key string, raw []byte, _ time.Duration) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO cache (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, raw)
	if err != nil && isDatabaseFull(err) {
		return errQuotaExceeded
	}
	return err
}

func (s *indexedStore) remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM cache WHERE key = ?`, key)
	return err
}

func (s *indexedStore) clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM cache`)
	return err
}

func (s *indexedStore) sweep(ctx context.Context, evict func(raw []byte) bool) (int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM cache`)
	if err != nil {
		return 0, err
	}
	var stale []string
	for rows.Next() {
		var key string
		var raw []byte
		if err := rows.Scan(&key, &raw); err != nil {
			rows.Close()
			return 0, err
		}
		if evict(raw) {
			stale = append(stale, key)
		}
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return 0, err
	}
	rows.Close()

	removed := 0
	for _, key := range stale {
		if err := s.remove(ctx, key); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

func (s *indexedStore) close() error {
	return s.db.Close()
}

func isDatabaseFull(err error) bool {
	var serr *sqlite.Error
	return errors.As(err, &serr) && serr.Code()&0xff == sqlite3.SQLITE_FULL
}
