package profileservice

import (
	"log/slog"

	httpadapter "clout/contexts/identity-access/profile-service/adapters/http"
	"clout/contexts/identity-access/profile-service/adapters/memory"
	"clout/contexts/identity-access/profile-service/application"
	"clout/contexts/identity-access/profile-service/domain/entities"
	"clout/contexts/identity-access/profile-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Profiles ports.ProfileRepository
	Clock    ports.Clock
	Random   ports.RandomSource
	Logger   *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:   deps.Profiles,
		Clock:  deps.Clock,
		Random: deps.Random,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}

func NewInMemoryModule(seed []entities.User, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Profiles: store,
		Clock:    store,
		Random:   store,
		Logger:   logger,
	})
	module.Store = store
	return module
}
