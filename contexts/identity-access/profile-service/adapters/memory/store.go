package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"clout/contexts/identity-access/profile-service/domain/entities"
	domainerrors "clout/contexts/identity-access/profile-service/domain/errors"
)

// Store backs the module in tests and local runs.
type Store struct {
	mu sync.RWMutex

	usersByID map[string]entities.User
	randSeq   int
	now       time.Time
}

func NewStore(seed []entities.User) *Store {
	s := &Store{
		usersByID: make(map[string]entities.User),
		now:       time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	for _, item := range seed {
		s.usersByID[item.UserID] = item
	}
	return s
}

func (s *Store) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = s.now.Add(time.Second)
	return s.now
}

// Intn cycles deterministically so suggestion tests are stable.
func (s *Store) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.randSeq++
	return s.randSeq % n
}

func (s *Store) CreateProfile(_ context.Context, user entities.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.usersByID[user.UserID]; exists {
		return domainerrors.ErrProfileExists
	}
	s.usersByID[user.UserID] = user
	return nil
}

func (s *Store) UpdateProfile(_ context.Context, user entities.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.usersByID[user.UserID]; !exists {
		return domainerrors.ErrProfileNotFound
	}
	s.usersByID[user.UserID] = user
	return nil
}

func (s *Store) GetProfile(_ context.Context, userID string) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.usersByID[strings.TrimSpace(userID)]
	if !ok {
		return entities.User{}, domainerrors.ErrProfileNotFound
	}
	return user, nil
}

func (s *Store) ListProfilesByIDs(_ context.Context, userIDs []string) ([]entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.User, 0, len(userIDs))
	for _, id := range userIDs {
		if user, ok := s.usersByID[id]; ok {
			items = append(items, user)
		}
	}
	return items, nil
}

func (s *Store) UsernameExists(_ context.Context, username string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	needle := strings.ToLower(strings.TrimSpace(username))
	for _, user := range s.usersByID {
		if user.Username == needle {
			return true, nil
		}
	}
	return false, nil
}
