package monitor

import (
	"context"
	"encoding/json"
	"io"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

const DefaultLocalCapacity = 100

// LocalStore is the development log store: a rotating JSON-lines file plus
// a bounded ring of recent entries.
type LocalStore struct {
	mu       sync.Mutex
	out      io.WriteCloser
	ring     []LogEntry
	capacity int
}

// NewLocalStore writes to path through lumberjack. An empty path keeps only the ring.
func NewLocalStore(path string, capacity int) *LocalStore {
	if capacity <= 0 {
		capacity = DefaultLocalCapacity
	}
	s := &LocalStore{capacity: capacity}
	if path != "" {
		s.out = &lumberjack.Logger{
			Filename:   path,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     7,
		}
	}
	return s
}

func (s *LocalStore) Write(_ context.Context, e LogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ring = append(s.ring, e)
	if len(s.ring) > s.capacity {
		s.ring = s.ring[len(s.ring)-s.capacity:]
	}

	if s.out == nil {
		return nil
	}
	line, err := json.Marshal(e)
	if err != nil {
		return err
	}
	_, err = s.out.Write(append(line, '\n'))
	return err
}

// Recent returns the buffered entries oldest first.
func (s *LocalStore) Recent() []LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]LogEntry, len(s.ring))
	copy(out, s.ring)
	return out
}

func (s *LocalStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ring = nil
}

func (s *LocalStore) Close(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.out == nil {
		return nil
	}
	return s.out.Close()
}
