package ports

import (
	"context"
	"time"

	"clout/contexts/campaign-bounty/campaign-registry/domain/entities"
	"clout/internal/shared/events"
)

type CampaignFilter struct {
	CreatorID string
	OpenOnly  *bool
}

type CampaignRepository interface {
	CreateCampaign(ctx context.Context, campaign entities.Campaign) error
	// UpdateCampaignDetails persists editable fields only; the aggregate
	// columns (entries, total_views, paid, prize) are never written here.
	UpdateCampaignDetails(ctx context.Context, campaign entities.Campaign) error
	GetCampaign(ctx context.Context, campaignID string) (entities.Campaign, error)
	ListCampaigns(ctx context.Context, filter CampaignFilter) ([]entities.Campaign, error)
}

type SubmissionCountedResult struct {
	CampaignID string
	Entries    int
	Applied    bool
}

type EntryRecount struct {
	CampaignID string
	EntriesWas int
	EntriesNow int
}

// CounterRepository owns the stored aggregate counters. Mutations happen
// either through the submission.created consumer or the reconciliation job,
// never through the campaign update path.
type CounterRepository interface {
	ApplySubmissionCreated(ctx context.Context, campaignID string, eventID string, occurredAt time.Time) (SubmissionCountedResult, error)
	RecountEntries(ctx context.Context, limit int) ([]EntryRecount, error)
	RefreshTotalViews(ctx context.Context, campaignID string, totalViews int64, now time.Time) error
}

// ViewSource resolves the current aggregate view count for a campaign from
// an external platform reader. found=false means the source has no figure
// and the stored value is left alone.
type ViewSource interface {
	TotalViews(ctx context.Context, campaign entities.Campaign) (total int64, found bool, err error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type EventEnvelope = events.Envelope

type EventSubscriber interface {
	Subscribe(
		ctx context.Context,
		topic string,
		consumerGroup string,
		handler func(context.Context, EventEnvelope) error,
	) error
}

type EventDedupStore interface {
	ReserveEvent(ctx context.Context, eventID string, payloadHash string, expiresAt time.Time) (duplicate bool, err error)
}

// BannerStorage mirrors internal/platform/storage for upload-URL issuance.
type BannerStorage interface {
	SignUploadURL(ctx context.Context, assetPath string, contentType string, expiresAt time.Time) (string, error)
	PublicURL(assetPath string) string
}
