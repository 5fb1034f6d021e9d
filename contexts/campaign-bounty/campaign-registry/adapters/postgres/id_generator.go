package postgresadapter

import (
	"context"

	"github.com/google/uuid"
)

// UUIDGenerator creates identifiers for campaigns and banner assets.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
