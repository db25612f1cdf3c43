package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/school-admin-api/internal/models"
)

// weekdayOrder sorts Monday..Friday first and every other day after them.
const weekdayOrder = "CASE t.day_of_week " +
	"WHEN 'Monday' THEN 1 WHEN 'Tuesday' THEN 2 WHEN 'Wednesday' THEN 3 " +
	"WHEN 'Thursday' THEN 4 WHEN 'Friday' THEN 5 ELSE 6 END"

// TimetableRepository exposes persistence helpers for timetable slots.
type TimetableRepository interface {
	List(ctx context.Context, classID *uint) ([]models.TimetableDetail, error)
	Create(ctx context.Context, entry *models.TimetableEntry) error
	Delete(ctx context.Context, id uint) error
}

type timetableRepository struct {
	db *gorm.DB
}

// NewTimetableRepository constructs the timetable repository.
func NewTimetableRepository(db *gorm.DB) TimetableRepository {
	return &timetableRepository{db: db}
}

func (r *timetableRepository) List(ctx context.Context, classID *uint) ([]models.TimetableDetail, error) {
	query := r.db.WithContext(ctx).
		Table("timetable AS t").
		Select("t.id, t.class_id, t.subject_id, t.day_of_week, t.start_time, t.end_time, " +
			"sub.name AS subject_name, sub.code, c.name AS class_name, u.name AS teacher_name").
		Joins("JOIN subjects sub ON t.subject_id = sub.id").
		Joins("JOIN classes c ON t.class_id = c.id").
		Joins("LEFT JOIN users u ON sub.teacher_id = u.id")

	if classID != nil {
		query = query.Where("t.class_id = ?", *classID)
	}

	entries := make([]models.TimetableDetail, 0)
	if err := query.Order(weekdayOrder).Order("t.start_time").Scan(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *timetableRepository) Create(ctx context.Context, entry *models.TimetableEntry) error {
	return translateError(r.db.WithContext(ctx).Create(entry).Error)
}

func (r *timetableRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &models.TimetableEntry{}, id)
}
