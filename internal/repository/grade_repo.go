package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/school-admin-api/internal/models"
)

// GradeFilter narrows grade list queries.
type GradeFilter struct {
	StudentID *uint
	SubjectID *uint
}

// GradeRepository exposes persistence helpers for grades.
type GradeRepository interface {
	List(ctx context.Context, filter GradeFilter) ([]models.GradeDetail, error)
	GetByID(ctx context.Context, id uint) (models.Grade, error)
	Create(ctx context.Context, grade *models.Grade) error
	Update(ctx context.Context, id uint, updates map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type gradeRepository struct {
	db *gorm.DB
}

// NewGradeRepository constructs the grade repository.
func NewGradeRepository(db *gorm.DB) GradeRepository {
	return &gradeRepository{db: db}
}

func (r *gradeRepository) List(ctx context.Context, filter GradeFilter) ([]models.GradeDetail, error) {
	query := r.db.WithContext(ctx).
		Table("grades AS g").
		Select("g.id, g.student_id, g.subject_id, g.exam_type, g.marks_obtained, g.total_marks, g.grade_letter, " +
			"g.remarks, g.date, u.name AS student_name, sub.name AS subject_name, sub.code AS subject_code").
		Joins("JOIN students st ON g.student_id = st.id").
		Joins("JOIN users u ON st.user_id = u.id").
		Joins("JOIN subjects sub ON g.subject_id = sub.id")

	if filter.StudentID != nil {
		query = query.Where("g.student_id = ?", *filter.StudentID)
	}
	if filter.SubjectID != nil {
		query = query.Where("g.subject_id = ?", *filter.SubjectID)
	}

	grades := make([]models.GradeDetail, 0)
	if err := query.Order("g.date DESC, g.id DESC").Scan(&grades).Error; err != nil {
		return nil, err
	}
	return grades, nil
}

func (r *gradeRepository) GetByID(ctx context.Context, id uint) (models.Grade, error) {
	var grade models.Grade
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&grade).Error; err != nil {
		return models.Grade{}, err
	}
	return grade, nil
}

func (r *gradeRepository) Create(ctx context.Context, grade *models.Grade) error {
	return translateError(r.db.WithContext(ctx).Create(grade).Error)
}

func (r *gradeRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) error {
	return updateByID(r.db.WithContext(ctx), &models.Grade{}, id, updates)
}

func (r *gradeRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &models.Grade{}, id)
}
