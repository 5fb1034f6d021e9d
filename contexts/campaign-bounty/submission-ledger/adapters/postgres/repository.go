package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"clout/contexts/campaign-bounty/submission-ledger/domain/entities"
	domainerrors "clout/contexts/campaign-bounty/submission-ledger/domain/errors"
	"clout/contexts/campaign-bounty/submission-ledger/ports"
	"clout/internal/shared/outbox"

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

func (r *Repository) CreateSubmission(ctx context.Context, submission entities.Submission, message outbox.Message) error {
	row := submissionModelFromEntity(submission)
	outboxRow := outboxModel{
		OutboxID:   message.ID,
		EventType:  message.EventType,
		Payload:    message.Payload,
		Status:     message.Status,
		RetryCount: message.RetryCount,
		CreatedAt:  submission.CreatedAt.UTC(),
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		return tx.Create(&outboxRow).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrInvalidSubmissionInput
		}
		return err
	}
	return nil
}

func (r *Repository) UpdateSubmissionStatus(ctx context.Context, submission entities.Submission) error {
	row := submissionModelFromEntity(submission)
	result := r.db.WithContext(ctx).
		Model(&submissionModel{}).
		Where("id = ?", row.SubmissionID).
		Updates(map[string]any{
			"status":     row.Status,
			"updated_at": row.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrSubmissionNotFound
	}
	return nil
}

func (r *Repository) GetSubmission(ctx context.Context, submissionID string) (entities.Submission, error) {
	var row submissionModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(submissionID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Submission{}, domainerrors.ErrSubmissionNotFound
		}
		return entities.Submission{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListSubmissions(ctx context.Context, filter ports.SubmissionFilter) ([]entities.Submission, error) {
	tx := r.db.WithContext(ctx).Model(&submissionModel{})
	if strings.TrimSpace(filter.CampaignID) != "" {
		tx = tx.Where("campaign_id = ?", strings.TrimSpace(filter.CampaignID))
	}
	if strings.TrimSpace(filter.SubmitterID) != "" {
		tx = tx.Where("user_id = ?", strings.TrimSpace(filter.SubmitterID))
	}
	if filter.Status != nil {
		if *filter.Status == entities.SubmissionStatusPending {
			tx = tx.Where("status IS NULL")
		} else {
			tx = tx.Where("status = ?", string(*filter.Status))
		}
	}
	if filter.CreatedSince != nil {
		tx = tx.Where("created_at >= ?", filter.CreatedSince.UTC())
	}

	var rows []submissionModel
	if err := tx.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]entities.Submission, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) ListPendingOutbox(ctx context.Context, limit int) ([]outbox.Message, error) {
	if limit <= 0 {
		limit = 100
	}
	var rows []outboxModel
	err := r.db.WithContext(ctx).
		Where("status = ?", "pending").
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	items := make([]outbox.Message, 0, len(rows))
	for _, row := range rows {
		items = append(items, outbox.Message{
			ID:         row.OutboxID,
			EventType:  row.EventType,
			Payload:    row.Payload,
			Status:     row.Status,
			RetryCount: row.RetryCount,
		})
	}
	return items, nil
}

func (r *Repository) MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&outboxModel{}).
		Where("id = ?", strings.TrimSpace(outboxID)).
		Updates(map[string]any{
			"status":       "published",
			"published_at": publishedAt.UTC(),
		}).
		Error
}

func (r *Repository) MarkOutboxFailed(ctx context.Context, outboxID string) error {
	return r.db.WithContext(ctx).
		Model(&outboxModel{}).
		Where("id = ?", strings.TrimSpace(outboxID)).
		Updates(map[string]any{
			"status":      "failed",
			"retry_count": gorm.Expr("retry_count + 1"),
		}).
		Error
}

// CampaignOpen reads the owning campaign's open flag. The ledger never
// writes the campaign table.
func (r *Repository) CampaignOpen(ctx context.Context, campaignID string) (bool, error) {
	var row struct {
		Open bool `gorm:"column:status"`
	}
	err := r.db.WithContext(ctx).
		Table("campaign").
		Select("status").
		Where("id = ?", strings.TrimSpace(campaignID)).
		Take(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, domainerrors.ErrCampaignNotFound
		}
		return false, err
	}
	return row.Open, nil
}

type submissionModel struct {
	SubmissionID string    `gorm:"column:id;primaryKey"`
	CampaignID   string    `gorm:"column:campaign_id"`
	SubmitterID  string    `gorm:"column:user_id"`
	ContentURLs  []string  `gorm:"column:content_url;type:text[]"`
	Status       *string   `gorm:"column:status"`
	Paid         float64   `gorm:"column:paid"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (submissionModel) TableName() string {
	return "submissions"
}

func submissionModelFromEntity(item entities.Submission) submissionModel {
	row := submissionModel{
		SubmissionID: strings.TrimSpace(item.SubmissionID),
		CampaignID:   strings.TrimSpace(item.CampaignID),
		SubmitterID:  strings.TrimSpace(item.SubmitterID),
		ContentURLs:  copyOrEmpty(item.ContentURLs),
		Paid:         item.Paid,
		CreatedAt:    item.CreatedAt.UTC(),
		UpdatedAt:    item.UpdatedAt.UTC(),
	}
	// The store contract keeps pending as NULL; only decided rows carry a
	// status value.
	if item.Status != entities.SubmissionStatusPending {
		value := string(item.Status)
		row.Status = &value
	}
	return row
}

func (m submissionModel) toEntity() entities.Submission {
	status := entities.SubmissionStatusPending
	if m.Status != nil {
		switch entities.SubmissionStatus(*m.Status) {
		case entities.SubmissionStatusApproved:
			status = entities.SubmissionStatusApproved
		case entities.SubmissionStatusRejected:
			status = entities.SubmissionStatusRejected
		}
	}
	return entities.Submission{
		SubmissionID: m.SubmissionID,
		CampaignID:   m.CampaignID,
		SubmitterID:  m.SubmitterID,
		ContentURLs:  copyOrEmpty(m.ContentURLs),
		Status:       status,
		Paid:         m.Paid,
		CreatedAt:    m.CreatedAt.UTC(),
		UpdatedAt:    m.UpdatedAt.UTC(),
	}
}

type outboxModel struct {
	OutboxID    string     `gorm:"column:id;primaryKey"`
	EventType   string     `gorm:"column:event_type"`
	Payload     []byte     `gorm:"column:payload"`
	Status      string     `gorm:"column:status"`
	RetryCount  int        `gorm:"column:retry_count"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	PublishedAt *time.Time `gorm:"column:published_at"`
}

func (outboxModel) TableName() string {
	return "submission_outbox"
}

func copyOrEmpty(items []string) []string {
	if len(items) == 0 {
		return []string{}
	}
	return append([]string(nil), items...)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
