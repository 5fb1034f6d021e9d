package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"clout/contexts/community/waitlist-service/domain/entities"
	domainerrors "clout/contexts/community/waitlist-service/domain/errors"
)

type Store struct {
	mu sync.RWMutex

	entriesByEmail map[string]entities.Entry
	sequence       int
	now            time.Time
}

func NewStore() *Store {
	return &Store{
		entriesByEmail: make(map[string]entities.Entry),
		now:            time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *Store) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = s.now.Add(time.Second)
	return s.now
}

func (s *Store) NewID(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sequence++
	return fmt.Sprintf("waitlist-%06d", s.sequence), nil
}

func (s *Store) AddEntry(_ context.Context, entry entities.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.entriesByEmail[entry.Email]; exists {
		return domainerrors.ErrAlreadyJoined
	}
	s.entriesByEmail[entry.Email] = entry
	return nil
}

func (s *Store) ListEntries(_ context.Context) ([]entities.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Entry, 0, len(s.entriesByEmail))
	for _, entry := range s.entriesByEmail {
		items = append(items, entry)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}
