package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/school-admin-api/internal/models"
)

// StudentFilter narrows student list queries.
type StudentFilter struct {
	Search  string
	ClassID *uint
}

// StudentRepository exposes persistence helpers for student records and their login identities.
type StudentRepository interface {
	List(ctx context.Context, filter StudentFilter) ([]models.StudentDetail, error)
	GetDetail(ctx context.Context, id uint) (models.StudentDetail, error)
	Create(ctx context.Context, user *models.User, student *models.Student) error
	Update(ctx context.Context, id uint, userUpdates, studentUpdates map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository constructs the student repository.
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) detailQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("students AS s").
		Select("s.id, s.user_id, s.roll_number, s.class_id, s.parent_name, s.parent_phone, s.address, " +
			"s.date_of_birth, s.gender, s.admission_date, u.name, u.username, u.email, " +
			"c.name AS class_name, c.grade").
		Joins("JOIN users u ON s.user_id = u.id").
		Joins("LEFT JOIN classes c ON s.class_id = c.id")
}

func (r *studentRepository) List(ctx context.Context, filter StudentFilter) ([]models.StudentDetail, error) {
	query := r.detailQuery(ctx)

	if filter.Search != "" {
		like := likePattern(filter.Search)
		query = query.Where("(LOWER(u.name) LIKE ? OR LOWER(s.roll_number) LIKE ?)", like, like)
	}
	if filter.ClassID != nil {
		query = query.Where("s.class_id = ?", *filter.ClassID)
	}

	students := make([]models.StudentDetail, 0)
	if err := query.Order("s.roll_number").Scan(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepository) GetDetail(ctx context.Context, id uint) (models.StudentDetail, error) {
	var student models.StudentDetail
	if err := scanOne(r.detailQuery(ctx).Where("s.id = ?", id), &student); err != nil {
		return models.StudentDetail{}, err
	}
	return student, nil
}

// Create inserts the login identity and the academic record together; neither survives a failure.
func (r *studentRepository) Create(ctx context.Context, user *models.User, student *models.Student) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		student.UserID = user.ID
		return tx.Create(student).Error
	})
	return translateError(err)
}

func (r *studentRepository) Update(ctx context.Context, id uint, userUpdates, studentUpdates map[string]interface{}) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var student models.Student
		if err := tx.Where("id = ?", id).Take(&student).Error; err != nil {
			return err
		}
		if len(userUpdates) > 0 {
			if err := tx.Model(&models.User{}).Where("id = ?", student.UserID).Updates(userUpdates).Error; err != nil {
				return err
			}
		}
		if len(studentUpdates) > 0 {
			if err := tx.Model(&models.Student{}).Where("id = ?", id).Updates(studentUpdates).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return translateError(err)
}

// Delete removes the student's attendance, grades and fees, then the student row and finally
// the linked login identity, all in one transaction.
func (r *studentRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var student models.Student
		if err := tx.Where("id = ?", id).Take(&student).Error; err != nil {
			return err
		}

		dependents := []interface{}{&models.Attendance{}, &models.Grade{}, &models.Fee{}}
		for _, model := range dependents {
			if err := tx.Where("student_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}

		if err := tx.Delete(&models.Student{}, id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, student.UserID).Error
	})
	return translateError(err)
}

func (r *studentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Student{}).Count(&count).Error
	return count, err
}
