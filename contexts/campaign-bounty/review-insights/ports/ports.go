package ports

import (
	"context"
	"time"

	registryentities "clout/contexts/campaign-bounty/campaign-registry/domain/entities"
	registryports "clout/contexts/campaign-bounty/campaign-registry/ports"
	ledgerentities "clout/contexts/campaign-bounty/submission-ledger/domain/entities"
	ledgerports "clout/contexts/campaign-bounty/submission-ledger/ports"
	profileentities "clout/contexts/identity-access/profile-service/domain/entities"
)

// The review view is read-only composition over the other modules. Its
// source interfaces are shaped so the ledger, registry and profile
// repositories satisfy them directly.

type SubmissionSource interface {
	ListSubmissions(ctx context.Context, filter ledgerports.SubmissionFilter) ([]ledgerentities.Submission, error)
}

type CampaignSource interface {
	ListCampaigns(ctx context.Context, filter registryports.CampaignFilter) ([]registryentities.Campaign, error)
}

type ProfileSource interface {
	ListProfilesByIDs(ctx context.Context, userIDs []string) ([]profileentities.User, error)
}

type Clock interface {
	Now() time.Time
}
