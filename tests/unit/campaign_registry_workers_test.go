package unit

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	registrymemory "clout/contexts/campaign-bounty/campaign-registry/adapters/memory"
	registryworkers "clout/contexts/campaign-bounty/campaign-registry/application/workers"
	"clout/contexts/campaign-bounty/campaign-registry/domain/entities"
	"clout/contexts/campaign-bounty/campaign-registry/ports"
)

type stubSubscriber struct {
	topic   string
	group   string
	handler func(context.Context, ports.EventEnvelope) error
}

func (s *stubSubscriber) Subscribe(
	_ context.Context,
	topic string,
	group string,
	handler func(context.Context, ports.EventEnvelope) error,
) error {
	s.topic = topic
	s.group = group
	s.handler = handler
	return nil
}

func TestEntriesConsumerIncrementsOncePerEvent(t *testing.T) {
	store := registrymemory.NewStore([]entities.Campaign{
		{
			CampaignID: "campaign-1",
			CreatorID:  "creator-1",
			Title:      "Clip Drive",
			Open:       true,
		},
	})
	sub := &stubSubscriber{}
	consumer := registryworkers.SubmissionCreatedConsumer{
		Subscriber:    sub,
		Counters:      store,
		Dedup:         store,
		Clock:         store,
		ConsumerGroup: "test-entries-cg",
		DedupTTL:      time.Hour,
	}

	if err := consumer.Start(context.Background()); err != nil {
		t.Fatalf("start consumer failed: %v", err)
	}
	if sub.topic != "submission.created" {
		t.Fatalf("expected submission.created subscription, got %s", sub.topic)
	}
	if sub.handler == nil {
		t.Fatalf("expected handler to be registered")
	}

	payload, _ := json.Marshal(map[string]any{
		"submission_id": "submission-1",
		"campaign_id":   "campaign-1",
		"submitter_id":  "clipper-1",
	})
	envelope := ports.EventEnvelope{
		EventID:    "event-1",
		EventType:  "submission.created",
		OccurredAt: time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC),
		Data:       payload,
	}

	if err := sub.handler(context.Background(), envelope); err != nil {
		t.Fatalf("consume failed: %v", err)
	}
	// Redelivery of the same event id must not double count.
	if err := sub.handler(context.Background(), envelope); err != nil {
		t.Fatalf("duplicate consume failed: %v", err)
	}

	campaign, err := store.GetCampaign(context.Background(), "campaign-1")
	if err != nil {
		t.Fatalf("get campaign failed: %v", err)
	}
	if campaign.Entries != 1 {
		t.Fatalf("expected one entry after duplicate delivery, got %d", campaign.Entries)
	}
}

func TestEntriesConsumerSkipsEventsWithoutCampaign(t *testing.T) {
	store := registrymemory.NewStore(nil)
	sub := &stubSubscriber{}
	consumer := registryworkers.SubmissionCreatedConsumer{
		Subscriber:    sub,
		Counters:      store,
		Dedup:         store,
		Clock:         store,
		ConsumerGroup: "test-entries-cg",
		DedupTTL:      time.Hour,
	}
	if err := consumer.Start(context.Background()); err != nil {
		t.Fatalf("start consumer failed: %v", err)
	}

	payload, _ := json.Marshal(map[string]any{"submission_id": "submission-1"})
	err := sub.handler(context.Background(), ports.EventEnvelope{
		EventID:   "event-blank",
		EventType: "submission.created",
		Data:      payload,
	})
	if err != nil {
		t.Fatalf("expected blank campaign id to be skipped, got %v", err)
	}
}

func TestReconciliationCorrectsEntriesAndViews(t *testing.T) {
	store := registrymemory.NewStore([]entities.Campaign{
		{
			CampaignID: "campaign-1",
			CreatorID:  "creator-1",
			Title:      "Drifted",
			Open:       true,
			Entries:    5,
			TotalViews: 100,
		},
	})
	store.SetActualEntries("campaign-1", 3)
	store.SetSourceViews("campaign-1", 1_200_000)

	job := registryworkers.ReconciliationJob{
		Counters:  store,
		Campaigns: store,
		Views:     store,
		Clock:     store,
		Limit:     10,
	}
	if err := job.RunOnce(context.Background()); err != nil {
		t.Fatalf("reconciliation run failed: %v", err)
	}

	campaign, err := store.GetCampaign(context.Background(), "campaign-1")
	if err != nil {
		t.Fatalf("get campaign failed: %v", err)
	}
	if campaign.Entries != 3 {
		t.Fatalf("expected recounted entries 3, got %d", campaign.Entries)
	}
	if campaign.TotalViews != 1_200_000 {
		t.Fatalf("expected refreshed views, got %d", campaign.TotalViews)
	}
}

func TestReconciliationWithoutViewSourceOnlyRecounts(t *testing.T) {
	store := registrymemory.NewStore([]entities.Campaign{
		{
			CampaignID: "campaign-1",
			CreatorID:  "creator-1",
			Title:      "No Scraper",
			Open:       true,
			Entries:    2,
			TotalViews: 500,
		},
	})
	store.SetActualEntries("campaign-1", 4)

	job := registryworkers.ReconciliationJob{
		Counters:  store,
		Campaigns: store,
		Clock:     store,
		Limit:     10,
	}
	if err := job.RunOnce(context.Background()); err != nil {
		t.Fatalf("reconciliation run failed: %v", err)
	}

	campaign, err := store.GetCampaign(context.Background(), "campaign-1")
	if err != nil {
		t.Fatalf("get campaign failed: %v", err)
	}
	if campaign.Entries != 4 {
		t.Fatalf("expected recounted entries 4, got %d", campaign.Entries)
	}
	if campaign.TotalViews != 500 {
		t.Fatalf("expected views untouched without a source, got %d", campaign.TotalViews)
	}
}
