package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/school-admin-api/internal/models"
)

// SubjectFilter narrows subject list queries.
type SubjectFilter struct {
	ClassID *uint
}

// SubjectRepository exposes persistence helpers for subjects.
type SubjectRepository interface {
	List(ctx context.Context, filter SubjectFilter) ([]models.SubjectDetail, error)
	GetDetail(ctx context.Context, id uint) (models.SubjectDetail, error)
	Create(ctx context.Context, subject *models.Subject) error
	Update(ctx context.Context, id uint, updates map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type subjectRepository struct {
	db *gorm.DB
}

// NewSubjectRepository constructs the subject repository.
func NewSubjectRepository(db *gorm.DB) SubjectRepository {
	return &subjectRepository{db: db}
}

func (r *subjectRepository) detailQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("subjects AS s").
		Select("s.id, s.name, s.code, s.class_id, s.teacher_id, c.name AS class_name, u.name AS teacher_name").
		Joins("LEFT JOIN classes c ON s.class_id = c.id").
		Joins("LEFT JOIN users u ON s.teacher_id = u.id")
}

func (r *subjectRepository) List(ctx context.Context, filter SubjectFilter) ([]models.SubjectDetail, error) {
	query := r.detailQuery(ctx)
	if filter.ClassID != nil {
		query = query.Where("s.class_id = ?", *filter.ClassID)
	}

	subjects := make([]models.SubjectDetail, 0)
	if err := query.Order("s.name, s.id").Scan(&subjects).Error; err != nil {
		return nil, err
	}
	return subjects, nil
}

func (r *subjectRepository) GetDetail(ctx context.Context, id uint) (models.SubjectDetail, error) {
	var subject models.SubjectDetail
	if err := scanOne(r.detailQuery(ctx).Where("s.id = ?", id), &subject); err != nil {
		return models.SubjectDetail{}, err
	}
	return subject, nil
}

func (r *subjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	return translateError(r.db.WithContext(ctx).Create(subject).Error)
}

func (r *subjectRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) error {
	return updateByID(r.db.WithContext(ctx), &models.Subject{}, id, updates)
}

func (r *subjectRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &models.Subject{}, id)
}

func (r *subjectRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Subject{}).Count(&count).Error
	return count, err
}
