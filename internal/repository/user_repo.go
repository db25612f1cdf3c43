package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/noah-isme/school-admin-api/internal/models"
)

// UserRepository exposes persistence helpers for login identities and teacher accounts.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (models.User, error)
	GetByID(ctx context.Context, id uint) (models.User, error)
	Create(ctx context.Context, user *models.User) error
	CountByRole(ctx context.Context, role models.Role) (int64, error)
	ListTeachers(ctx context.Context) ([]models.TeacherDetail, error)
	UpdateTeacher(ctx context.Context, id uint, updates map[string]interface{}) error
	DeleteTeacher(ctx context.Context, id uint) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository constructs the user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).Take(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return translateError(r.db.WithContext(ctx).Create(user).Error)
}

func (r *userRepository) CountByRole(ctx context.Context, role models.Role) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

func (r *userRepository) ListTeachers(ctx context.Context) ([]models.TeacherDetail, error) {
	teachers := make([]models.TeacherDetail, 0)
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Select("id, username, role, name, email, created_at").
		Where("role = ?", models.RoleTeacher).
		Order("name").
		Scan(&teachers).Error
	if err != nil {
		return nil, err
	}

	var classes []models.Class
	if err := r.db.WithContext(ctx).
		Where("teacher_id IS NOT NULL").
		Order("id").
		Find(&classes).Error; err != nil {
		return nil, err
	}

	names := make(map[uint][]string)
	for _, class := range classes {
		names[*class.TeacherID] = append(names[*class.TeacherID], class.Name)
	}
	for i := range teachers {
		if list, ok := names[teachers[i].ID]; ok {
			joined := strings.Join(list, ", ")
			teachers[i].Classes = &joined
		}
	}

	return teachers, nil
}

func (r *userRepository) UpdateTeacher(ctx context.Context, id uint, updates map[string]interface{}) error {
	db := r.db.WithContext(ctx)
	if _, err := r.findTeacher(db, id); err != nil {
		return err
	}
	if len(updates) == 0 {
		return nil
	}
	return translateError(db.Model(&models.User{}).Where("id = ?", id).Updates(updates).Error)
}

// DeleteTeacher unassigns the teacher from classes and subjects and drops the announcements
// they authored before removing the account.
func (r *userRepository) DeleteTeacher(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := r.findTeacher(tx, id); err != nil {
			return err
		}
		if err := tx.Model(&models.Class{}).Where("teacher_id = ?", id).Update("teacher_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Subject{}).Where("teacher_id = ?", id).Update("teacher_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("author_id = ?", id).Delete(&models.Announcement{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
	return translateError(err)
}

func (r *userRepository) findTeacher(db *gorm.DB, id uint) (models.User, error) {
	var teacher models.User
	err := db.Where("id = ? AND role = ?", id, models.RoleTeacher).Take(&teacher).Error
	return teacher, err
}
