package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/noah-isme/school-admin-api/internal/dto"
	"github.com/noah-isme/school-admin-api/internal/models"
	"github.com/noah-isme/school-admin-api/internal/repository"
)

// FeeService manages billable charges.
type FeeService interface {
	List(ctx context.Context, req dto.FeeListRequest) ([]models.FeeDetail, error)
	Create(ctx context.Context, payload dto.FeeCreateRequest, actor dto.Principal) error
	Pay(ctx context.Context, id uint, actor dto.Principal) error
	Delete(ctx context.Context, id uint, actor dto.Principal) error
}

type feeService struct {
	repo      repository.FeeRepository
	validator *validator.Validate
	activity  ActivityRecorder
	logger    zerolog.Logger
}

// NewFeeService constructs the fee service.
func NewFeeService(repo repository.FeeRepository, validator *validator.Validate, activity ActivityRecorder, logger zerolog.Logger) FeeService {
	return &feeService{
		repo:      repo,
		validator: validator,
		activity:  activity,
		logger:    logger.With().Str("component", "fee_service").Logger(),
	}
}

func (s *feeService) List(ctx context.Context, req dto.FeeListRequest) ([]models.FeeDetail, error) {
	if err := validatePayload(s.validator, req); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, repository.FeeFilter{
		StudentID: optionalID(req.StudentID),
		Status:    req.Status,
	})
}

func (s *feeService) Create(ctx context.Context, payload dto.FeeCreateRequest, actor dto.Principal) error {
	if err := validatePayload(s.validator, payload); err != nil {
		return err
	}

	fee := models.Fee{
		StudentID: payload.StudentID,
		FeeType:   strings.TrimSpace(payload.FeeType),
		Amount:    payload.Amount,
		DueDate:   strings.TrimSpace(payload.DueDate),
		Status:    models.FeeStatusPending,
	}
	if err := s.repo.Create(ctx, &fee); err != nil {
		return err
	}

	recordActivity(ctx, s.activity, s.logger, actor, "fee.created", "fee", &fee.ID, map[string]interface{}{
		"student_id": fee.StudentID,
		"amount":     fee.Amount,
	})
	return nil
}

// Pay marks the fee paid today. Paying an already paid fee overwrites paid_date.
func (s *feeService) Pay(ctx context.Context, id uint, actor dto.Principal) error {
	paidDate := today()
	if err := s.repo.MarkPaid(ctx, id, paidDate); err != nil {
		return notFound("fee", err)
	}

	s.logger.Info().Uint("fee_id", id).Str("paid_date", paidDate).Msg("fee paid")
	recordActivity(ctx, s.activity, s.logger, actor, "fee.paid", "fee", &id, map[string]interface{}{"paid_date": paidDate})
	return nil
}

func (s *feeService) Delete(ctx context.Context, id uint, actor dto.Principal) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound("fee", err)
	}

	recordActivity(ctx, s.activity, s.logger, actor, "fee.deleted", "fee", &id, nil)
	return nil
}
