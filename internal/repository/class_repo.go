package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/school-admin-api/internal/models"
)

// ClassRepository exposes persistence helpers for classes.
type ClassRepository interface {
	List(ctx context.Context) ([]models.ClassDetail, error)
	GetDetail(ctx context.Context, id uint) (models.ClassDetail, error)
	Create(ctx context.Context, class *models.Class) error
	Update(ctx context.Context, id uint, updates map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type classRepository struct {
	db *gorm.DB
}

// NewClassRepository constructs the class repository.
func NewClassRepository(db *gorm.DB) ClassRepository {
	return &classRepository{db: db}
}

const classColumns = "c.id, c.name, c.grade, c.section, c.teacher_id, c.capacity, c.created_at"

func (r *classRepository) detailQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("classes AS c").
		Select(classColumns + ", u.name AS teacher_name, COUNT(s.id) AS student_count").
		Joins("LEFT JOIN users u ON c.teacher_id = u.id").
		Joins("LEFT JOIN students s ON s.class_id = c.id").
		Group(classColumns + ", u.name")
}

func (r *classRepository) List(ctx context.Context) ([]models.ClassDetail, error) {
	classes := make([]models.ClassDetail, 0)
	if err := r.detailQuery(ctx).Order("c.grade, c.section").Scan(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *classRepository) GetDetail(ctx context.Context, id uint) (models.ClassDetail, error) {
	var class models.ClassDetail
	if err := scanOne(r.detailQuery(ctx).Where("c.id = ?", id), &class); err != nil {
		return models.ClassDetail{}, err
	}
	return class, nil
}

func (r *classRepository) Create(ctx context.Context, class *models.Class) error {
	return translateError(r.db.WithContext(ctx).Create(class).Error)
}

func (r *classRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) error {
	return updateByID(r.db.WithContext(ctx), &models.Class{}, id, updates)
}

// Delete removes only the class row; rows still referencing it make the delete fail.
func (r *classRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &models.Class{}, id)
}

func (r *classRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Class{}).Count(&count).Error
	return count, err
}
