package application

import (
	"context"
	"log/slog"
	"strings"

	domainerrors "clout/contexts/identity-access/authorization-service/domain/errors"
	"clout/contexts/identity-access/authorization-service/ports"
)

// Guard is the single authorization gate. Handlers call Authorize before
// touching any protected resource; there is no per-route policy table.
type Guard struct {
	Roles  ports.RoleResolver
	Logger *slog.Logger
}

func (g Guard) Authorize(ctx context.Context, subjectID string, requiredRole string) error {
	subject := strings.TrimSpace(subjectID)
	if subject == "" {
		return domainerrors.ErrUnauthenticated
	}

	role, err := g.Roles.ResolveRole(ctx, subject)
	if err != nil {
		return err
	}
	if role != requiredRole {
		if g.Logger != nil {
			g.Logger.Warn("authorization denied",
				"event", "authorization_denied",
				"module", "identity-access/authorization-service",
				"layer", "application",
				"subject_id", subject,
				"required_role", requiredRole,
				"actual_role", role,
			)
		}
		return domainerrors.ErrForbidden
	}
	return nil
}
