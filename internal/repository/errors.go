package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ErrConstraintViolation indicates a write rejected by a uniqueness, foreign key or check constraint.
var ErrConstraintViolation = errors.New("constraint violation")

// IsNotFound reports whether err means no row matched.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func translateError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, ErrConstraintViolation):
		return err
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: a record with the same unique value already exists", ErrConstraintViolation)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: referenced record is missing or still in use", ErrConstraintViolation)
	}

	message := strings.ToLower(err.Error())
	if strings.Contains(message, "constraint failed") || strings.Contains(message, "violates") {
		return fmt.Errorf("%w: %s", ErrConstraintViolation, err.Error())
	}

	return err
}

// scanOne runs a join query expected to return a single row.
func scanOne(query *gorm.DB, dest interface{}) error {
	result := query.Limit(1).Scan(dest)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// deleteByID removes a single row and reports gorm.ErrRecordNotFound when nothing matched.
func deleteByID(db *gorm.DB, model interface{}, id uint) error {
	result := db.Delete(model, id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// updateByID applies updates to an existing row, reporting gorm.ErrRecordNotFound when it is absent.
func updateByID(db *gorm.DB, model interface{}, id uint, updates map[string]interface{}) error {
	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gorm.ErrRecordNotFound
	}
	if len(updates) == 0 {
		return nil
	}
	return translateError(db.Model(model).Where("id = ?", id).Updates(updates).Error)
}

func likePattern(search string) string {
	return "%" + strings.ToLower(strings.TrimSpace(search)) + "%"
}
