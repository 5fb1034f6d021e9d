package ports

import (
	"context"
	"time"

	"clout/contexts/campaign-bounty/submission-ledger/domain/entities"
	"clout/internal/shared/events"
	"clout/internal/shared/outbox"
)

type SubmissionFilter struct {
	CampaignID   string
	SubmitterID  string
	Status       *entities.SubmissionStatus
	CreatedSince *time.Time
}

type SubmissionRepository interface {
	// CreateSubmission persists the row and the outbox message in one
	// transaction so the entries counter event cannot be lost or invented.
	CreateSubmission(ctx context.Context, submission entities.Submission, message outbox.Message) error
	UpdateSubmissionStatus(ctx context.Context, submission entities.Submission) error
	GetSubmission(ctx context.Context, submissionID string) (entities.Submission, error)
	ListSubmissions(ctx context.Context, filter SubmissionFilter) ([]entities.Submission, error)
}

type OutboxRepository interface {
	ListPendingOutbox(ctx context.Context, limit int) ([]outbox.Message, error)
	MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error
	MarkOutboxFailed(ctx context.Context, outboxID string) error
}

// CampaignGate answers the only two questions the ledger asks about a
// campaign: does it exist, and does it accept submissions.
type CampaignGate interface {
	CampaignOpen(ctx context.Context, campaignID string) (open bool, err error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type EventEnvelope = events.Envelope

type EventPublisher interface {
	Publish(ctx context.Context, topic string, event EventEnvelope) error
}
