package cache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const localExt = ".json"

// localStore keeps one file per entry in a directory, bounded by maxBytes.
type localStore struct {
	dir      string
	maxBytes int64
	mu       sync.Mutex
}

func newLocalStore(dir string, maxBytes int64) (*localStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &localStore{dir: dir, maxBytes: maxBytes}, nil
}

func (s *localStore) path(key string) string {
	sum := md5.Sum([]byte(key))
	return filepath.Join(s.dir, hex.EncodeToString(sum[:])+localExt)
}

func (s *localStore) read(_ context.Context, key string) ([]byte, error) {
	raw, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errMiss
	}
	return raw, err
}

func (s *localStore) write(_ context.Context, key string, raw []byte, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.path(key)
	if s.maxBytes > 0 {
		used, err := s.usage(p)
		if err != nil {
			return err
		}
		if used+int64(len(raw)) > s.maxBytes {
			return errQuotaExceeded
		}
	}

	tmp, err := os.CreateTemp(s.dir, "tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), p)
}

// usage sums entry sizes, not counting the file at skip which is about to be replaced.
func (s *localStore) usage(skip string) (int64, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, de := range entries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), localExt) {
			continue
		}
		if filepath.Join(s.dir, de.Name()) == skip {
			continue
		}
		info, err := de.Info()
		if err != nil {
			continue
		}
		total += info.Size()
	}
	return total, nil
}

func (s *localStore) remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := os.Remove(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (s *localStore) clear(ctx context.Context) error {
	_, err := s.sweep(ctx, func([]byte) bool { return true })
	return err
}

func (s *localStore) sweep(_ context.Context, evict func(raw []byte) bool) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, de := range entries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), localExt) {
			continue
		}
		p := filepath.Join(s.dir, de.Name())
		raw, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if evict(raw) {
			if err := os.Remove(p); err == nil {
				removed++
			}
		}
	}
	return removed, nil
}

func (s *localStore) close() error {
	return nil
}
