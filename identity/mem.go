package identity

import (
	"context"
	"sync"
)

// MemStore is an in-memory [Store] for single-process embedding and
// tests. It never returns [ErrUnavailable].
type MemStore struct {
	mu      sync.RWMutex
	records map[string]string
}

// NewMemStore creates an empty [MemStore].
func NewMemStore() *MemStore {
	return &MemStore{records: make(map[string]string)}
}

func memKey(sessionID string, record Record) string {
	return sessionID + ":" + string(record)
}

// Read fetches a record; absence resolves to ("", false, nil).
func (s *MemStore) Read(ctx context.Context, sessionID string, record Record) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.records[memKey(sessionID, record)]
	return value, ok, nil
}

// Write stores a record.
func (s *MemStore) Write(ctx context.Context, sessionID string, record Record, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[memKey(sessionID, record)] = value
	return nil
}

// Clear removes a record. Clearing an absent record succeeds.
func (s *MemStore) Clear(ctx context.Context, sessionID string, record Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, memKey(sessionID, record))
	return nil
}

// Len returns the number of stored records across all sessions.
func (s *MemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
