package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"clout/contexts/campaign-bounty/campaign-registry/domain/entities"
	domainerrors "clout/contexts/campaign-bounty/campaign-registry/domain/errors"
	"clout/contexts/campaign-bounty/campaign-registry/ports"
)

type dedupRecord struct {
	PayloadHash string
	ExpiresAt   time.Time
}

// Store backs the module in tests and local runs. It implements every port
// the registry module needs.
type Store struct {
	mu sync.RWMutex

	campaignsByID map[string]entities.Campaign
	dedupByID     map[string]dedupRecord
	viewsByID     map[string]int64
	// entryCounts stands in for the submissions table during recounts.
	entryCounts map[string]int
	sequence    int
	now         time.Time
}

func NewStore(seed []entities.Campaign) *Store {
	s := &Store{
		campaignsByID: make(map[string]entities.Campaign),
		dedupByID:     make(map[string]dedupRecord),
		viewsByID:     make(map[string]int64),
		entryCounts:   make(map[string]int),
		now:           time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	for _, item := range seed {
		s.campaignsByID[item.CampaignID] = item
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
	return fmt.Sprintf("campaign-%06d", s.sequence), nil
}

func (s *Store) CreateCampaign(_ context.Context, campaign entities.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.campaignsByID[campaign.CampaignID]; exists {
		return domainerrors.ErrInvalidCampaignInput
	}
	s.campaignsByID[campaign.CampaignID] = campaign
	return nil
}

func (s *Store) UpdateCampaignDetails(_ context.Context, campaign entities.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.campaignsByID[campaign.CampaignID]
	if !ok {
		return domainerrors.ErrCampaignNotFound
	}
	// Aggregates are owned by the counter paths; carry the stored values.
	campaign.Entries = existing.Entries
	campaign.TotalViews = existing.TotalViews
	campaign.Paid = existing.Paid
	campaign.Prize = existing.Prize
	s.campaignsByID[campaign.CampaignID] = campaign
	return nil
}

func (s *Store) GetCampaign(_ context.Context, campaignID string) (entities.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	campaign, ok := s.campaignsByID[strings.TrimSpace(campaignID)]
	if !ok {
		return entities.Campaign{}, domainerrors.ErrCampaignNotFound
	}
	return campaign, nil
}

func (s *Store) ListCampaigns(_ context.Context, filter ports.CampaignFilter) ([]entities.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Campaign, 0, len(s.campaignsByID))
	for _, campaign := range s.campaignsByID {
		if strings.TrimSpace(filter.CreatorID) != "" && campaign.CreatorID != strings.TrimSpace(filter.CreatorID) {
			continue
		}
		if filter.OpenOnly != nil && campaign.Open != *filter.OpenOnly {
			continue
		}
		items = append(items, campaign)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) ApplySubmissionCreated(
	_ context.Context,
	campaignID string,
	_ string,
	occurredAt time.Time,
) (ports.SubmissionCountedResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	campaign, ok := s.campaignsByID[strings.TrimSpace(campaignID)]
	if !ok {
		return ports.SubmissionCountedResult{}, domainerrors.ErrCampaignNotFound
	}
	campaign.Entries++
	if !occurredAt.IsZero() {
		campaign.UpdatedAt = occurredAt.UTC()
	}
	s.campaignsByID[campaign.CampaignID] = campaign
	return ports.SubmissionCountedResult{
		CampaignID: campaign.CampaignID,
		Entries:    campaign.Entries,
		Applied:    true,
	}, nil
}

// SetActualEntries seeds the recount source for a campaign.
func (s *Store) SetActualEntries(campaignID string, count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entryCounts[campaignID] = count
}

func (s *Store) RecountEntries(_ context.Context, limit int) ([]ports.EntryRecount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 {
		limit = 100
	}
	ids := make([]string, 0, len(s.campaignsByID))
	for id := range s.campaignsByID {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	corrections := make([]ports.EntryRecount, 0)
	for _, id := range ids {
		if len(corrections) >= limit {
			break
		}
		campaign := s.campaignsByID[id]
		actual := s.entryCounts[id]
		if actual == campaign.Entries {
			continue
		}
		corrections = append(corrections, ports.EntryRecount{
			CampaignID: id,
			EntriesWas: campaign.Entries,
			EntriesNow: actual,
		})
		campaign.Entries = actual
		s.campaignsByID[id] = campaign
	}
	return corrections, nil
}

func (s *Store) RefreshTotalViews(_ context.Context, campaignID string, totalViews int64, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	campaign, ok := s.campaignsByID[strings.TrimSpace(campaignID)]
	if !ok {
		return domainerrors.ErrCampaignNotFound
	}
	campaign.TotalViews = totalViews
	campaign.UpdatedAt = now.UTC()
	s.campaignsByID[campaign.CampaignID] = campaign
	return nil
}

// SetSourceViews seeds the external view figure returned by TotalViews.
func (s *Store) SetSourceViews(campaignID string, total int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewsByID[campaignID] = total
}

func (s *Store) TotalViews(_ context.Context, campaign entities.Campaign) (int64, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total, ok := s.viewsByID[campaign.CampaignID]
	return total, ok, nil
}

func (s *Store) ReserveEvent(_ context.Context, eventID string, payloadHash string, expiresAt time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.dedupByID[eventID]; ok {
		if existing.ExpiresAt.After(s.now) {
			return true, nil
		}
	}
	s.dedupByID[eventID] = dedupRecord{PayloadHash: payloadHash, ExpiresAt: expiresAt.UTC()}
	return false, nil
}

func (s *Store) SignUploadURL(_ context.Context, assetPath string, contentType string, expiresAt time.Time) (string, error) {
	return fmt.Sprintf("https://storage.test/upload/%s?content_type=%s&expires=%d",
		strings.TrimPrefix(assetPath, "/"), contentType, expiresAt.UTC().Unix()), nil
}

func (s *Store) PublicURL(assetPath string) string {
	return "https://cdn.test/" + strings.TrimPrefix(assetPath, "/")
}
