package campaignregistry

import (
	"log/slog"

	httpadapter "clout/contexts/campaign-bounty/campaign-registry/adapters/http"
	"clout/contexts/campaign-bounty/campaign-registry/adapters/memory"
	"clout/contexts/campaign-bounty/campaign-registry/application/commands"
	"clout/contexts/campaign-bounty/campaign-registry/application/queries"
	"clout/contexts/campaign-bounty/campaign-registry/domain/entities"
	"clout/contexts/campaign-bounty/campaign-registry/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Campaigns   ports.CampaignRepository
	Storage     ports.BannerStorage
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	createCampaign := commands.CreateCampaignUseCase{
		Campaigns:   deps.Campaigns,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	updateCampaign := commands.UpdateCampaignUseCase{
		Campaigns: deps.Campaigns,
		Clock:     deps.Clock,
		Logger:    deps.Logger,
	}
	changeStatus := commands.ChangeStatusUseCase{
		Campaigns: deps.Campaigns,
		Clock:     deps.Clock,
		Logger:    deps.Logger,
	}
	generateBannerUploadURL := commands.GenerateBannerUploadURLUseCase{
		Storage:     deps.Storage,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}

	listCampaigns := queries.ListCampaignsUseCase{
		Campaigns: deps.Campaigns,
		Logger:    deps.Logger,
	}
	getCampaign := queries.GetCampaignUseCase{
		Campaigns: deps.Campaigns,
		Logger:    deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			CreateCampaign:          createCampaign,
			UpdateCampaign:          updateCampaign,
			ChangeStatus:            changeStatus,
			GenerateBannerUploadURL: generateBannerUploadURL,
			ListCampaigns:           listCampaigns,
			GetCampaign:             getCampaign,
			Logger:                  deps.Logger,
		},
	}
}

func NewInMemoryModule(seed []entities.Campaign, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Campaigns:   store,
		Storage:     store,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
