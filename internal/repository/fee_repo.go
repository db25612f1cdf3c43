package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/school-admin-api/internal/models"
)

// FeeFilter narrows fee list queries.
type FeeFilter struct {
	StudentID *uint
	Status    string
}

// FeeRepository exposes persistence helpers for fee records.
type FeeRepository interface {
	List(ctx context.Context, filter FeeFilter) ([]models.FeeDetail, error)
	GetByID(ctx context.Context, id uint) (models.Fee, error)
	Create(ctx context.Context, fee *models.Fee) error
	MarkPaid(ctx context.Context, id uint, paidDate string) error
	Delete(ctx context.Context, id uint) error
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type feeRepository struct {
	db *gorm.DB
}

// NewFeeRepository constructs the fee repository.
func NewFeeRepository(db *gorm.DB) FeeRepository {
	return &feeRepository{db: db}
}

func (r *feeRepository) List(ctx context.Context, filter FeeFilter) ([]models.FeeDetail, error) {
	query := r.db.WithContext(ctx).
		Table("fees AS f").
		Select("f.id, f.student_id, f.fee_type, f.amount, f.due_date, f.paid_date, f.status, " +
			"u.name AS student_name, s.roll_number").
		Joins("JOIN students s ON f.student_id = s.id").
		Joins("JOIN users u ON s.user_id = u.id")

	if filter.StudentID != nil {
		query = query.Where("f.student_id = ?", *filter.StudentID)
	}
	if filter.Status != "" {
		query = query.Where("f.status = ?", filter.Status)
	}

	fees := make([]models.FeeDetail, 0)
	if err := query.Order("f.due_date DESC, f.id DESC").Scan(&fees).Error; err != nil {
		return nil, err
	}
	return fees, nil
}

func (r *feeRepository) GetByID(ctx context.Context, id uint) (models.Fee, error) {
	var fee models.Fee
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&fee).Error; err != nil {
		return models.Fee{}, err
	}
	return fee, nil
}

func (r *feeRepository) Create(ctx context.Context, fee *models.Fee) error {
	return translateError(r.db.WithContext(ctx).Create(fee).Error)
}

// MarkPaid does not check the previous status; paying twice overwrites paid_date.
func (r *feeRepository) MarkPaid(ctx context.Context, id uint, paidDate string) error {
	return updateByID(r.db.WithContext(ctx), &models.Fee{}, id, map[string]interface{}{
		"status":    models.FeeStatusPaid,
		"paid_date": paidDate,
	})
}

func (r *feeRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &models.Fee{}, id)
}

func (r *feeRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Fee{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
