package roster

import (
	"context"
	"sync"
)

// Store keeps the roster in memory, in insertion order. It lives as long
// as the process.
type Store struct {
	mu      sync.RWMutex
	order   []string
	records map[string]Record
}

func NewStore() *Store {
	return &Store{records: map[string]Record{}}
}

func (s *Store) Add(ctx context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[rec.ID]; ok {
		return ErrDuplicateID
	}
	s.records[rec.ID] = rec
	s.order = append(s.order, rec.ID)
	return nil
}

func (s *Store) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return ErrEmployeeNotFound
	}
	delete(s.records, id)
	for i, candidate := range s.order {
		if candidate == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Store) Get(ctx context.Context, id string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[id]
	if !ok {
		return Record{}, ErrEmployeeNotFound
	}
	return rec, nil
}

func (s *Store) List(ctx context.Context) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.records[id])
	}
	return out, nil
}

func (s *Store) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order), nil
}
