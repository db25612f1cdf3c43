package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/noah-isme/school-admin-api/internal/models"
)

// AttendanceReportFilter narrows attendance report queries. Date bounds are inclusive.
type AttendanceReportFilter struct {
	StudentID *uint
	ClassID   *uint
	Status    string
	From      string
	To        string
	Limit     int
}

// AttendanceRepository exposes persistence helpers for daily attendance.
type AttendanceRepository interface {
	Roster(ctx context.Context, classID uint, date string) ([]models.AttendanceRosterEntry, error)
	UpsertBatch(ctx context.Context, records []models.Attendance) (int64, error)
	Report(ctx context.Context, filter AttendanceReportFilter) ([]models.AttendanceDetail, error)
	CountByDateAndStatus(ctx context.Context, date, status string) (int64, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository constructs the attendance repository.
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Roster lists every student enrolled in the class together with the record for that day, if any.
func (r *attendanceRepository) Roster(ctx context.Context, classID uint, date string) ([]models.AttendanceRosterEntry, error) {
	entries := make([]models.AttendanceRosterEntry, 0)
	err := r.db.WithContext(ctx).
		Table("students AS s").
		Select("a.id, s.id AS student_id, a.class_id, a.date, a.status, s.roll_number, u.name AS student_name").
		Joins("JOIN users u ON s.user_id = u.id").
		Joins("LEFT JOIN attendance a ON a.student_id = s.id AND a.date = ? AND a.class_id = ?", date, classID).
		Where("s.class_id = ?", classID).
		Order("s.roll_number").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// UpsertBatch applies every record inside one transaction. A record whose
// (student_id, date, class_id) already exists has its status overwritten.
// Any failure rolls back the whole batch.
func (r *attendanceRepository) UpsertBatch(ctx context.Context, records []models.Attendance) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}

	upsert := clause.OnConflict{
		Columns:   []clause.Column{{Name: "student_id"}, {Name: "date"}, {Name: "class_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status"}),
	}

	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range records {
			record := records[i]
			record.ID = 0
			result := tx.Clauses(upsert).Create(&record)
			if result.Error != nil {
				return result.Error
			}
			affected += result.RowsAffected
		}
		return nil
	})
	if err != nil {
		return 0, translateError(err)
	}
	return affected, nil
}

func (r *attendanceRepository) Report(ctx context.Context, filter AttendanceReportFilter) ([]models.AttendanceDetail, error) {
	query := r.db.WithContext(ctx).
		Table("attendance AS a").
		Select("a.id, a.student_id, a.class_id, a.date, a.status, u.name AS student_name, c.name AS class_name").
		Joins("JOIN students s ON a.student_id = s.id").
		Joins("JOIN users u ON s.user_id = u.id").
		Joins("JOIN classes c ON a.class_id = c.id")

	if filter.StudentID != nil {
		query = query.Where("a.student_id = ?", *filter.StudentID)
	}
	if filter.ClassID != nil {
		query = query.Where("a.class_id = ?", *filter.ClassID)
	}
	if filter.Status != "" {
		query = query.Where("a.status = ?", filter.Status)
	}
	if filter.From != "" {
		query = query.Where("a.date >= ?", filter.From)
	}
	if filter.To != "" {
		query = query.Where("a.date <= ?", filter.To)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	records := make([]models.AttendanceDetail, 0)
	if err := query.Order("a.date DESC, a.id DESC").Scan(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *attendanceRepository) CountByDateAndStatus(ctx context.Context, date, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Attendance{}).
		Where("date = ? AND status = ?", date, status).
		Count(&count).Error
	return count, err
}
