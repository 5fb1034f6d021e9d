package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"clout/contexts/community/waitlist-service/domain/entities"
	domainerrors "clout/contexts/community/waitlist-service/domain/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) AddEntry(ctx context.Context, entry entities.Entry) error {
	row := entryModel{
		EntryID:   entry.EntryID,
		Email:     entry.Email,
		CreatedAt: entry.CreatedAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyJoined
		}
		return err
	}
	return nil
}

func (r *Repository) ListEntries(ctx context.Context) ([]entities.Entry, error) {
	var rows []entryModel
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]entities.Entry, 0, len(rows))
	for _, row := range rows {
		items = append(items, entities.Entry{
			EntryID:   row.EntryID,
			Email:     row.Email,
			CreatedAt: row.CreatedAt.UTC(),
		})
	}
	return items, nil
}

type entryModel struct {
	EntryID   string    `gorm:"column:id;primaryKey"`
	Email     string    `gorm:"column:email;uniqueIndex"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (entryModel) TableName() string {
	return "waitlist"
}

// SystemClock is the default runtime clock implementation.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// UUIDGenerator creates waitlist entry identifiers.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
