package authorizationservice

import (
	"log/slog"

	"clout/contexts/identity-access/authorization-service/application"
	"clout/contexts/identity-access/authorization-service/ports"
)

type Module struct {
	Guard application.Guard
}

type Dependencies struct {
	Roles  ports.RoleResolver
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Guard: application.Guard{
			Roles:  deps.Roles,
			Logger: deps.Logger,
		},
	}
}
