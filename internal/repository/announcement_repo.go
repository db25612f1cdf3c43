package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/school-admin-api/internal/models"
)

// AnnouncementFilter filters announcement list queries.
type AnnouncementFilter struct {
	// Audience limits results to announcements targeting "all" or this role. Empty means no restriction.
	Audience string
	Limit    int
}

// AnnouncementRepository exposes persistence helpers for announcements.
type AnnouncementRepository interface {
	List(ctx context.Context, filter AnnouncementFilter) ([]models.AnnouncementDetail, error)
	Create(ctx context.Context, announcement *models.Announcement) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type announcementRepository struct {
	db *gorm.DB
}

// NewAnnouncementRepository constructs the repository implementation.
func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

// List returns newest first.
func (r *announcementRepository) List(ctx context.Context, filter AnnouncementFilter) ([]models.AnnouncementDetail, error) {
	query := r.db.WithContext(ctx).
		Table("announcements AS a").
		Select("a.id, a.title, a.content, a.author_id, a.target_role, a.created_at, u.name AS author_name").
		Joins("JOIN users u ON a.author_id = u.id")

	if filter.Audience != "" {
		query = query.Where("a.target_role = ? OR a.target_role = ?", models.TargetAll, filter.Audience)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	items := make([]models.AnnouncementDetail, 0)
	if err := query.Order("a.created_at DESC, a.id DESC").Scan(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *announcementRepository) Create(ctx context.Context, announcement *models.Announcement) error {
	return translateError(r.db.WithContext(ctx).Create(announcement).Error)
}

func (r *announcementRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &models.Announcement{}, id)
}

func (r *announcementRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Announcement{}).Count(&count).Error
	return count, err
}
