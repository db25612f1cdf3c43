package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/noah-isme/school-admin-api/internal/dto"
	"github.com/noah-isme/school-admin-api/internal/models"
	"github.com/noah-isme/school-admin-api/internal/repository"
)

// TimetableService manages weekly schedule slots. Overlapping slots are accepted.
type TimetableService interface {
	List(ctx context.Context, classID *uint) ([]models.TimetableDetail, error)
	Create(ctx context.Context, payload dto.TimetableCreateRequest, actor dto.Principal) error
	Delete(ctx context.Context, id uint, actor dto.Principal) error
}

type timetableService struct {
	repo      repository.TimetableRepository
	validator *validator.Validate
	activity  ActivityRecorder
	logger    zerolog.Logger
}

// NewTimetableService constructs the timetable service.
func NewTimetableService(repo repository.TimetableRepository, validator *validator.Validate, activity ActivityRecorder, logger zerolog.Logger) TimetableService {
	return &timetableService{
		repo:      repo,
		validator: validator,
		activity:  activity,
		logger:    logger.With().Str("component", "timetable_service").Logger(),
	}
}

func (s *timetableService) List(ctx context.Context, classID *uint) ([]models.TimetableDetail, error) {
	return s.repo.List(ctx, optionalID(classID))
}

func (s *timetableService) Create(ctx context.Context, payload dto.TimetableCreateRequest, actor dto.Principal) error {
	if err := validatePayload(s.validator, payload); err != nil {
		return err
	}
	if payload.EndTime <= payload.StartTime {
		return &ValidationError{Invalid: []string{"end_time"}}
	}

	entry := models.TimetableEntry{
		ClassID:   payload.ClassID,
		SubjectID: payload.SubjectID,
		DayOfWeek: payload.DayOfWeek,
		StartTime: payload.StartTime,
		EndTime:   payload.EndTime,
	}
	if err := s.repo.Create(ctx, &entry); err != nil {
		return err
	}

	recordActivity(ctx, s.activity, s.logger, actor, "timetable.created", "timetable", &entry.ID, map[string]interface{}{
		"class_id": entry.ClassID,
		"day":      entry.DayOfWeek,
	})
	return nil
}

func (s *timetableService) Delete(ctx context.Context, id uint, actor dto.Principal) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound("timetable entry", err)
	}

	recordActivity(ctx, s.activity, s.logger, actor, "timetable.deleted", "timetable", &id, nil)
	return nil
}
