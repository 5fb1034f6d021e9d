package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"clout/contexts/campaign-bounty/campaign-registry/domain/entities"
	domainerrors "clout/contexts/campaign-bounty/campaign-registry/domain/errors"
	"clout/contexts/campaign-bounty/campaign-registry/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
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

func (r *Repository) CreateCampaign(ctx context.Context, campaign entities.Campaign) error {
	row := campaignModelFromEntity(campaign)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrInvalidCampaignInput
		}
		return err
	}
	return nil
}

func (r *Repository) UpdateCampaignDetails(ctx context.Context, campaign entities.Campaign) error {
	row := campaignModelFromEntity(campaign)
	// Aggregate columns (entries, total_views, paid, prize) stay out of the
	// update map; they belong to the counter/reconciliation paths.
	result := r.db.WithContext(ctx).
		Model(&campaignModel{}).
		Where("id = ?", row.CampaignID).
		Updates(map[string]any{
			"title":                   row.Title,
			"description":             row.Description,
			"image":                   row.ImageURL,
			"resource":                row.ExternalURL,
			"money_per_million_views": row.MoneyPerMillionViews,
			"content_type_tags":       row.ContentTypeTags,
			"category_tags":           row.CategoryTags,
			"status":                  row.Open,
			"updated_at":              row.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCampaignNotFound
	}
	return nil
}

func (r *Repository) GetCampaign(ctx context.Context, campaignID string) (entities.Campaign, error) {
	var row campaignModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(campaignID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Campaign{}, domainerrors.ErrCampaignNotFound
		}
		return entities.Campaign{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListCampaigns(ctx context.Context, filter ports.CampaignFilter) ([]entities.Campaign, error) {
	tx := r.db.WithContext(ctx).Model(&campaignModel{})
	if strings.TrimSpace(filter.CreatorID) != "" {
		tx = tx.Where("creator_id = ?", strings.TrimSpace(filter.CreatorID))
	}
	if filter.OpenOnly != nil {
		tx = tx.Where("status = ?", *filter.OpenOnly)
	}

	var rows []campaignModel
	if err := tx.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]entities.Campaign, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) ApplySubmissionCreated(
	ctx context.Context,
	campaignID string,
	eventID string,
	occurredAt time.Time,
) (ports.SubmissionCountedResult, error) {
	_ = eventID
	result := ports.SubmissionCountedResult{}
	now := occurredAt.UTC()
	if now.IsZero() {
		now = time.Now().UTC()
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row campaignModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", strings.TrimSpace(campaignID)).
			First(&row).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrCampaignNotFound
			}
			return err
		}

		result.CampaignID = row.CampaignID
		result.Entries = row.Entries + 1
		result.Applied = true

		return tx.Model(&campaignModel{}).
			Where("id = ?", row.CampaignID).
			Updates(map[string]any{
				"entries":    row.Entries + 1,
				"updated_at": now,
			}).
			Error
	})
	if err != nil {
		return ports.SubmissionCountedResult{}, err
	}
	return result, nil
}

func (r *Repository) RecountEntries(ctx context.Context, limit int) ([]ports.EntryRecount, error) {
	if limit <= 0 {
		limit = 100
	}

	corrections := make([]ports.EntryRecount, 0)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		type countRow struct {
			CampaignID string
			Total      int
		}
		var counts []countRow
		if err := tx.Table("submissions").
			Select("campaign_id AS campaign_id, COUNT(*) AS total").
			Group("campaign_id").
			Scan(&counts).
			Error; err != nil {
			return err
		}
		countByCampaign := make(map[string]int, len(counts))
		for _, item := range counts {
			countByCampaign[item.CampaignID] = item.Total
		}

		var rows []campaignModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Order("created_at ASC").
			Limit(limit).
			Find(&rows).
			Error; err != nil {
			return err
		}

		now := time.Now().UTC()
		for _, row := range rows {
			actual := countByCampaign[row.CampaignID]
			if actual == row.Entries {
				continue
			}
			if err := tx.Model(&campaignModel{}).
				Where("id = ?", row.CampaignID).
				Updates(map[string]any{
					"entries":    actual,
					"updated_at": now,
				}).
				Error; err != nil {
				return err
			}
			corrections = append(corrections, ports.EntryRecount{
				CampaignID: row.CampaignID,
				EntriesWas: row.Entries,
				EntriesNow: actual,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return corrections, nil
}

func (r *Repository) RefreshTotalViews(ctx context.Context, campaignID string, totalViews int64, now time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&campaignModel{}).
		Where("id = ?", strings.TrimSpace(campaignID)).
		Updates(map[string]any{
			"total_views": totalViews,
			"updated_at":  now.UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCampaignNotFound
	}
	return nil
}

func (r *Repository) ReserveEvent(
	ctx context.Context,
	eventID string,
	payloadHash string,
	expiresAt time.Time,
) (bool, error) {
	row := eventDedupModel{
		EventID:     strings.TrimSpace(eventID),
		PayloadHash: strings.TrimSpace(payloadHash),
		ExpiresAt:   expiresAt.UTC(),
		ProcessedAt: time.Now().UTC(),
	}

	createResult := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_id"}},
			DoNothing: true,
		}).
		Create(&row)
	if createResult.Error != nil {
		return false, createResult.Error
	}
	if createResult.RowsAffected > 0 {
		return false, nil
	}
	return true, nil
}

type campaignModel struct {
	CampaignID           string    `gorm:"column:id;primaryKey"`
	CreatorID            string    `gorm:"column:creator_id"`
	Title                string    `gorm:"column:title"`
	Description          string    `gorm:"column:description"`
	ImageURL             string    `gorm:"column:image"`
	ExternalURL          string    `gorm:"column:resource"`
	MoneyPerMillionViews float64   `gorm:"column:money_per_million_views"`
	Prize                float64   `gorm:"column:prize"`
	Paid                 float64   `gorm:"column:paid"`
	TotalViews           int64     `gorm:"column:total_views"`
	ContentTypeTags      []string  `gorm:"column:content_type_tags;type:text[]"`
	CategoryTags         []string  `gorm:"column:category_tags;type:text[]"`
	Open                 bool      `gorm:"column:status"`
	Entries              int       `gorm:"column:entries"`
	CreatedAt            time.Time `gorm:"column:created_at"`
	UpdatedAt            time.Time `gorm:"column:updated_at"`
}

func (campaignModel) TableName() string {
	return "campaign"
}

func campaignModelFromEntity(item entities.Campaign) campaignModel {
	return campaignModel{
		CampaignID:           strings.TrimSpace(item.CampaignID),
		CreatorID:            strings.TrimSpace(item.CreatorID),
		Title:                strings.TrimSpace(item.Title),
		Description:          strings.TrimSpace(item.Description),
		ImageURL:             strings.TrimSpace(item.ImageURL),
		ExternalURL:          strings.TrimSpace(item.ExternalURL),
		MoneyPerMillionViews: item.MoneyPerMillionViews,
		Prize:                item.Prize,
		Paid:                 item.Paid,
		TotalViews:           item.TotalViews,
		ContentTypeTags:      copyOrEmpty(item.ContentTypeTags),
		CategoryTags:         copyOrEmpty(item.CategoryTags),
		Open:                 item.Open,
		Entries:              item.Entries,
		CreatedAt:            item.CreatedAt.UTC(),
		UpdatedAt:            item.UpdatedAt.UTC(),
	}
}

func (m campaignModel) toEntity() entities.Campaign {
	return entities.Campaign{
		CampaignID:           m.CampaignID,
		CreatorID:            m.CreatorID,
		Title:                m.Title,
		Description:          m.Description,
		ImageURL:             m.ImageURL,
		ExternalURL:          m.ExternalURL,
		MoneyPerMillionViews: m.MoneyPerMillionViews,
		Prize:                m.Prize,
		Paid:                 m.Paid,
		TotalViews:           m.TotalViews,
		ContentTypeTags:      copyOrEmpty(m.ContentTypeTags),
		CategoryTags:         copyOrEmpty(m.CategoryTags),
		Open:                 m.Open,
		Entries:              m.Entries,
		CreatedAt:            m.CreatedAt.UTC(),
		UpdatedAt:            m.UpdatedAt.UTC(),
	}
}

type eventDedupModel struct {
	EventID     string    `gorm:"column:event_id;primaryKey"`
	PayloadHash string    `gorm:"column:payload_hash"`
	ExpiresAt   time.Time `gorm:"column:expires_at"`
	ProcessedAt time.Time `gorm:"column:processed_at"`
}

func (eventDedupModel) TableName() string {
	return "campaign_event_dedup"
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
