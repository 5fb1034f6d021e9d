package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"clout/contexts/campaign-bounty/submission-ledger/domain/entities"
	domainerrors "clout/contexts/campaign-bounty/submission-ledger/domain/errors"
	"clout/contexts/campaign-bounty/submission-ledger/ports"
	"clout/internal/shared/outbox"
)

// Store backs the module in tests and local runs. It implements every port
// the ledger module needs, including the campaign gate.
type Store struct {
	mu sync.RWMutex

	submissionsByID map[string]entities.Submission
	outboxByID      map[string]outbox.Message
	outboxOrder     []string
	campaignOpen    map[string]bool
	sequence        int
	now             time.Time
}

func NewStore(seed []entities.Submission) *Store {
	s := &Store{
		submissionsByID: make(map[string]entities.Submission),
		outboxByID:      make(map[string]outbox.Message),
		campaignOpen:    make(map[string]bool),
		now:             time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	for _, item := range seed {
		s.submissionsByID[item.SubmissionID] = item
	}
	return s
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
	return fmt.Sprintf("submission-%06d", s.sequence), nil
}

// SetCampaignOpen registers a campaign with the gate. Unregistered
// campaigns are treated as missing.
func (s *Store) SetCampaignOpen(campaignID string, open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.campaignOpen[campaignID] = open
}

func (s *Store) CampaignOpen(_ context.Context, campaignID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	open, ok := s.campaignOpen[strings.TrimSpace(campaignID)]
	if !ok {
		return false, domainerrors.ErrCampaignNotFound
	}
	return open, nil
}

func (s *Store) CreateSubmission(_ context.Context, submission entities.Submission, message outbox.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.submissionsByID[submission.SubmissionID]; exists {
		return domainerrors.ErrInvalidSubmissionInput
	}
	s.submissionsByID[submission.SubmissionID] = submission
	s.outboxByID[message.ID] = message
	s.outboxOrder = append(s.outboxOrder, message.ID)
	return nil
}

func (s *Store) UpdateSubmissionStatus(_ context.Context, submission entities.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.submissionsByID[submission.SubmissionID]
	if !ok {
		return domainerrors.ErrSubmissionNotFound
	}
	existing.Status = submission.Status
	existing.UpdatedAt = submission.UpdatedAt
	s.submissionsByID[existing.SubmissionID] = existing
	return nil
}

func (s *Store) GetSubmission(_ context.Context, submissionID string) (entities.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	submission, ok := s.submissionsByID[strings.TrimSpace(submissionID)]
	if !ok {
		return entities.Submission{}, domainerrors.ErrSubmissionNotFound
	}
	return submission, nil
}

func (s *Store) ListSubmissions(_ context.Context, filter ports.SubmissionFilter) ([]entities.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Submission, 0, len(s.submissionsByID))
	for _, submission := range s.submissionsByID {
		if strings.TrimSpace(filter.CampaignID) != "" && submission.CampaignID != strings.TrimSpace(filter.CampaignID) {
			continue
		}
		if strings.TrimSpace(filter.SubmitterID) != "" && submission.SubmitterID != strings.TrimSpace(filter.SubmitterID) {
			continue
		}
		if filter.Status != nil && submission.Status != *filter.Status {
			continue
		}
		if filter.CreatedSince != nil && submission.CreatedAt.Before(*filter.CreatedSince) {
			continue
		}
		items = append(items, submission)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) ListPendingOutbox(_ context.Context, limit int) ([]outbox.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 100
	}
	items := make([]outbox.Message, 0, limit)
	for _, id := range s.outboxOrder {
		if len(items) >= limit {
			break
		}
		message := s.outboxByID[id]
		if message.Status != "pending" {
			continue
		}
		items = append(items, message)
	}
	return items, nil
}

func (s *Store) MarkOutboxPublished(_ context.Context, outboxID string, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	message, ok := s.outboxByID[outboxID]
	if !ok {
		return nil
	}
	message.Status = "published"
	s.outboxByID[outboxID] = message
	return nil
}

func (s *Store) MarkOutboxFailed(_ context.Context, outboxID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	message, ok := s.outboxByID[outboxID]
	if !ok {
		return nil
	}
	message.Status = "failed"
	message.RetryCount++
	s.outboxByID[outboxID] = message
	return nil
}
