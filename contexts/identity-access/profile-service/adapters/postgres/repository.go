package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"clout/contexts/identity-access/profile-service/domain/entities"
	domainerrors "clout/contexts/identity-access/profile-service/domain/errors"

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

func (r *Repository) CreateProfile(ctx context.Context, user entities.User) error {
	row := userModelFromEntity(user)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			// Either the identity key or the username collided; the
			// username check runs first, so report the profile.
			return domainerrors.ErrProfileExists
		}
		return err
	}
	return nil
}

func (r *Repository) UpdateProfile(ctx context.Context, user entities.User) error {
	row := userModelFromEntity(user)
	result := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("id = ?", row.UserID).
		Updates(map[string]any{
			"name":       row.Name,
			"username":   row.Username,
			"region":     row.Region,
			"interests":  row.Interests,
			"twitter":    row.Twitter,
			"instagram":  row.Instagram,
			"youtube":    row.YouTube,
			"tiktok":     row.TikTok,
			"avatar":     row.AvatarURL,
			"updated_at": row.UpdatedAt,
		})
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerrors.ErrUsernameTaken
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrProfileNotFound
	}
	return nil
}

func (r *Repository) GetProfile(ctx context.Context, userID string) (entities.User, error) {
	var row userModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(userID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.User{}, domainerrors.ErrProfileNotFound
		}
		return entities.User{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListProfilesByIDs(ctx context.Context, userIDs []string) ([]entities.User, error) {
	if len(userIDs) == 0 {
		return []entities.User{}, nil
	}
	var rows []userModel
	if err := r.db.WithContext(ctx).Where("id IN ?", userIDs).Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]entities.User, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("username = ?", strings.ToLower(strings.TrimSpace(username))).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

type userModel struct {
	UserID    string    `gorm:"column:id;primaryKey"`
	Type      string    `gorm:"column:type"`
	Name      string    `gorm:"column:name"`
	Username  string    `gorm:"column:username;uniqueIndex"`
	Region    string    `gorm:"column:region"`
	Interests []string  `gorm:"column:interests;type:text[]"`
	Twitter   string    `gorm:"column:twitter"`
	Instagram string    `gorm:"column:instagram"`
	YouTube   string    `gorm:"column:youtube"`
	TikTok    string    `gorm:"column:tiktok"`
	AvatarURL string    `gorm:"column:avatar"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string {
	return "users"
}

func userModelFromEntity(item entities.User) userModel {
	return userModel{
		UserID:    strings.TrimSpace(item.UserID),
		Type:      string(item.Type),
		Name:      item.Name,
		Username:  item.Username,
		Region:    item.Region,
		Interests: copyOrEmpty(item.Interests),
		Twitter:   item.Twitter,
		Instagram: item.Instagram,
		YouTube:   item.YouTube,
		TikTok:    item.TikTok,
		AvatarURL: item.AvatarURL,
		CreatedAt: item.CreatedAt.UTC(),
		UpdatedAt: item.UpdatedAt.UTC(),
	}
}

func (m userModel) toEntity() entities.User {
	return entities.User{
		UserID:    m.UserID,
		Type:      entities.UserType(m.Type),
		Name:      m.Name,
		Username:  m.Username,
		Region:    m.Region,
		Interests: copyOrEmpty(m.Interests),
		Twitter:   m.Twitter,
		Instagram: m.Instagram,
		YouTube:   m.YouTube,
		TikTok:    m.TikTok,
		AvatarURL: m.AvatarURL,
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}

// SystemClock is the default runtime clock implementation.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// MathRandom backs the username suggester at runtime.
type MathRandom struct{}

func (MathRandom) Intn(n int) int {
	return rand.Intn(n)
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
