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

// ClassService manages teaching groups.
type ClassService interface {
	List(ctx context.Context) ([]models.ClassDetail, error)
	Get(ctx context.Context, id uint) (models.ClassDetail, error)
	Create(ctx context.Context, payload dto.ClassCreateRequest, actor dto.Principal) error
	Update(ctx context.Context, id uint, payload dto.ClassUpdateRequest, actor dto.Principal) error
	Delete(ctx context.Context, id uint, actor dto.Principal) error
}

type classService struct {
	repo      repository.ClassRepository
	validator *validator.Validate
	activity  ActivityRecorder
	logger    zerolog.Logger
}

// NewClassService constructs the class service.
func NewClassService(repo repository.ClassRepository, validator *validator.Validate, activity ActivityRecorder, logger zerolog.Logger) ClassService {
	return &classService{
		repo:      repo,
		validator: validator,
		activity:  activity,
		logger:    logger.With().Str("component", "class_service").Logger(),
	}
}

func (s *classService) List(ctx context.Context) ([]models.ClassDetail, error) {
	return s.repo.List(ctx)
}

func (s *classService) Get(ctx context.Context, id uint) (models.ClassDetail, error) {
	class, err := s.repo.GetDetail(ctx, id)
	if err != nil {
		return models.ClassDetail{}, notFound("class", err)
	}
	return class, nil
}

func (s *classService) Create(ctx context.Context, payload dto.ClassCreateRequest, actor dto.Principal) error {
	if err := validatePayload(s.validator, payload); err != nil {
		return err
	}

	capacity := models.DefaultClassCapacity
	if payload.Capacity != nil {
		capacity = *payload.Capacity
	}

	class := models.Class{
		Name:      strings.TrimSpace(payload.Name),
		Grade:     strings.TrimSpace(payload.Grade),
		Section:   strings.TrimSpace(payload.Section),
		TeacherID: optionalID(payload.TeacherID),
		Capacity:  capacity,
	}
	if err := s.repo.Create(ctx, &class); err != nil {
		return err
	}

	recordActivity(ctx, s.activity, s.logger, actor, "class.created", "class", &class.ID, map[string]interface{}{"name": class.Name})
	return nil
}

func (s *classService) Update(ctx context.Context, id uint, payload dto.ClassUpdateRequest, actor dto.Principal) error {
	if err := validatePayload(s.validator, payload); err != nil {
		return err
	}

	updates := make(map[string]interface{})
	setTrimmed(updates, "name", payload.Name)
	setTrimmed(updates, "grade", payload.Grade)
	setTrimmed(updates, "section", payload.Section)
	if payload.TeacherID != nil {
		updates["teacher_id"] = nullableID(payload.TeacherID)
	}
	if payload.Capacity != nil {
		updates["capacity"] = *payload.Capacity
	}

	if err := s.repo.Update(ctx, id, updates); err != nil {
		return notFound("class", err)
	}

	recordActivity(ctx, s.activity, s.logger, actor, "class.updated", "class", &id, map[string]interface{}{"fields": changedColumns(updates)})
	return nil
}

// Delete removes only the class row. Students, subjects or timetable rows still pointing at it
// make the delete fail with a constraint violation.
func (s *classService) Delete(ctx context.Context, id uint, actor dto.Principal) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound("class", err)
	}

	recordActivity(ctx, s.activity, s.logger, actor, "class.deleted", "class", &id, nil)
	return nil
}
