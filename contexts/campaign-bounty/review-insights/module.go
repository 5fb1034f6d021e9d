package reviewinsights

import (
	"log/slog"

	registrymemory "clout/contexts/campaign-bounty/campaign-registry/adapters/memory"
	registryentities "clout/contexts/campaign-bounty/campaign-registry/domain/entities"
	httpadapter "clout/contexts/campaign-bounty/review-insights/adapters/http"
	"clout/contexts/campaign-bounty/review-insights/application/queries"
	"clout/contexts/campaign-bounty/review-insights/ports"
	ledgermemory "clout/contexts/campaign-bounty/submission-ledger/adapters/memory"
	ledgerentities "clout/contexts/campaign-bounty/submission-ledger/domain/entities"
	profilememory "clout/contexts/identity-access/profile-service/adapters/memory"
	profileentities "clout/contexts/identity-access/profile-service/domain/entities"

	"golang.org/x/sync/singleflight"
)

type Module struct {
	Handler httpadapter.Handler
}

type Dependencies struct {
	Submissions ports.SubmissionSource
	Campaigns   ports.CampaignSource
	Profiles    ports.ProfileSource
	Clock       ports.Clock
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	reviewFeed := queries.ReviewFeedUseCase{
		Submissions: deps.Submissions,
		Campaigns:   deps.Campaigns,
		Profiles:    deps.Profiles,
		Clock:       deps.Clock,
		Group:       &singleflight.Group{},
		Logger:      deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			ReviewFeed: reviewFeed,
			Logger:     deps.Logger,
		},
	}
}

// NewInMemoryModule composes the sibling modules' in-memory stores into one
// review view for tests.
func NewInMemoryModule(
	submissions []ledgerentities.Submission,
	campaigns []registryentities.Campaign,
	profiles []profileentities.User,
	logger *slog.Logger,
) Module {
	ledgerStore := ledgermemory.NewStore(submissions)
	registryStore := registrymemory.NewStore(campaigns)
	profileStore := profilememory.NewStore(profiles)
	return NewModule(Dependencies{
		Submissions: ledgerStore,
		Campaigns:   registryStore,
		Profiles:    profileStore,
		Clock:       ledgerStore,
		Logger:      logger,
	})
}
