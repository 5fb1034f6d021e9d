package workers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	application "clout/contexts/campaign-bounty/campaign-registry/application"
	"clout/contexts/campaign-bounty/campaign-registry/ports"
)

const TopicSubmissionCreated = "submission.created"

type submissionCreatedPayload struct {
	SubmissionID string `json:"submission_id"`
	CampaignID   string `json:"campaign_id"`
	SubmitterID  string `json:"submitter_id"`
}

// SubmissionCreatedConsumer keeps campaign.entries in step with the ledger:
// every submission.created event increments the owning campaign's counter
// under a row lock. Duplicate deliveries are absorbed by the dedup store.
type SubmissionCreatedConsumer struct {
	Subscriber    ports.EventSubscriber
	Counters      ports.CounterRepository
	Dedup         ports.EventDedupStore
	Clock         ports.Clock
	ConsumerGroup string
	DedupTTL      time.Duration
	Logger        *slog.Logger
}

func (c SubmissionCreatedConsumer) Start(ctx context.Context) error {
	return c.Subscriber.Subscribe(ctx, TopicSubmissionCreated, c.ConsumerGroup, c.handle)
}

func (c SubmissionCreatedConsumer) handle(ctx context.Context, envelope ports.EventEnvelope) error {
	logger := application.ResolveLogger(c.Logger)

	var payload submissionCreatedPayload
	if err := json.Unmarshal(envelope.Data, &payload); err != nil {
		return err
	}
	if strings.TrimSpace(payload.CampaignID) == "" {
		logger.Warn("submission.created event without campaign id",
			"event", "submission_created_skipped",
			"module", "campaign-bounty/campaign-registry",
			"layer", "application",
			"event_id", envelope.EventID,
		)
		return nil
	}

	sum := sha256.Sum256(envelope.Data)
	duplicate, err := c.Dedup.ReserveEvent(ctx, envelope.EventID, hex.EncodeToString(sum[:]), c.Clock.Now().UTC().Add(c.DedupTTL))
	if err != nil {
		return err
	}
	if duplicate {
		return nil
	}

	result, err := c.Counters.ApplySubmissionCreated(ctx, payload.CampaignID, envelope.EventID, envelope.OccurredAt)
	if err != nil {
		return err
	}
	if result.Applied {
		logger.Info("campaign entries incremented",
			"event", "campaign_entries_incremented",
			"module", "campaign-bounty/campaign-registry",
			"layer", "application",
			"campaign_id", result.CampaignID,
			"entries", result.Entries,
		)
	}
	return nil
}
