package ports

import (
	"context"
	"time"

	"clout/contexts/community/waitlist-service/domain/entities"
)

type Repository interface {
	AddEntry(ctx context.Context, entry entities.Entry) error
	ListEntries(ctx context.Context) ([]entities.Entry, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
