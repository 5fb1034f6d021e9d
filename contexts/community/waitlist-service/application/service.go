package application

import (
	"context"
	"log/slog"
	"strings"

	"clout/contexts/community/waitlist-service/domain/entities"
	domainerrors "clout/contexts/community/waitlist-service/domain/errors"
	"clout/contexts/community/waitlist-service/ports"
)

type Service struct {
	Repo   ports.Repository
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

func (s Service) Join(ctx context.Context, email string) (entities.Entry, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !entities.ValidEmail(email) {
		return entities.Entry{}, domainerrors.ErrInvalidEmail
	}

	entryID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.Entry{}, err
	}
	entry := entities.Entry{
		EntryID:   entryID,
		Email:     email,
		CreatedAt: s.Clock.Now().UTC(),
	}
	if err := s.Repo.AddEntry(ctx, entry); err != nil {
		return entities.Entry{}, err
	}

	if s.Logger != nil {
		s.Logger.Info("waitlist joined",
			"event", "waitlist_joined",
			"module", "community/waitlist-service",
			"layer", "application",
			"entry_id", entry.EntryID,
		)
	}
	return entry, nil
}

func (s Service) List(ctx context.Context) ([]entities.Entry, error) {
	return s.Repo.ListEntries(ctx)
}
