package submissionledger

import (
	"log/slog"

	httpadapter "clout/contexts/campaign-bounty/submission-ledger/adapters/http"
	"clout/contexts/campaign-bounty/submission-ledger/adapters/memory"
	"clout/contexts/campaign-bounty/submission-ledger/application/commands"
	"clout/contexts/campaign-bounty/submission-ledger/application/queries"
	"clout/contexts/campaign-bounty/submission-ledger/domain/entities"
	"clout/contexts/campaign-bounty/submission-ledger/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Submissions ports.SubmissionRepository
	Campaigns   ports.CampaignGate
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	createSubmission := commands.CreateSubmissionUseCase{
		Submissions: deps.Submissions,
		Campaigns:   deps.Campaigns,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	setStatus := commands.SetStatusUseCase{
		Submissions: deps.Submissions,
		Clock:       deps.Clock,
		Logger:      deps.Logger,
	}

	listSubmissions := queries.ListSubmissionsUseCase{
		Submissions: deps.Submissions,
		Logger:      deps.Logger,
	}
	getSubmission := queries.GetSubmissionUseCase{
		Submissions: deps.Submissions,
		Logger:      deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			CreateSubmission: createSubmission,
			SetStatus:        setStatus,
			ListSubmissions:  listSubmissions,
			GetSubmission:    getSubmission,
			Logger:           deps.Logger,
		},
	}
}

func NewInMemoryModule(seed []entities.Submission, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Submissions: store,
		Campaigns:   store,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
