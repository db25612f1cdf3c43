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

// SubjectService manages subjects and their class/teacher assignment.
type SubjectService interface {
	List(ctx context.Context, classID *uint) ([]models.SubjectDetail, error)
	Get(ctx context.Context, id uint) (models.SubjectDetail, error)
	Create(ctx context.Context, payload dto.SubjectCreateRequest, actor dto.Principal) error
	Update(ctx context.Context, id uint, payload dto.SubjectUpdateRequest, actor dto.Principal) error
	Delete(ctx context.Context, id uint, actor dto.Principal) error
}

type subjectService struct {
	repo      repository.SubjectRepository
	validator *validator.Validate
	activity  ActivityRecorder
	logger    zerolog.Logger
}

// NewSubjectService constructs the subject service.
func NewSubjectService(repo repository.SubjectRepository, validator *validator.Validate, activity ActivityRecorder, logger zerolog.Logger) SubjectService {
	return &subjectService{
		repo:      repo,
		validator: validator,
		activity:  activity,
		logger:    logger.With().Str("component", "subject_service").Logger(),
	}
}

func (s *subjectService) List(ctx context.Context, classID *uint) ([]models.SubjectDetail, error) {
	return s.repo.List(ctx, repository.SubjectFilter{ClassID: optionalID(classID)})
}

func (s *subjectService) Get(ctx context.Context, id uint) (models.SubjectDetail, error) {
	subject, err := s.repo.GetDetail(ctx, id)
	if err != nil {
		return models.SubjectDetail{}, notFound("subject", err)
	}
	return subject, nil
}

func (s *subjectService) Create(ctx context.Context, payload dto.SubjectCreateRequest, actor dto.Principal) error {
	if err := validatePayload(s.validator, payload); err != nil {
		return err
	}

	subject := models.Subject{
		Name:      strings.TrimSpace(payload.Name),
		Code:      strings.TrimSpace(payload.Code),
		ClassID:   optionalID(payload.ClassID),
		TeacherID: optionalID(payload.TeacherID),
	}
	if err := s.repo.Create(ctx, &subject); err != nil {
		return err
	}

	recordActivity(ctx, s.activity, s.logger, actor, "subject.created", "subject", &subject.ID, map[string]interface{}{"code": subject.Code})
	return nil
}

func (s *subjectService) Update(ctx context.Context, id uint, payload dto.SubjectUpdateRequest, actor dto.Principal) error {
	if err := validatePayload(s.validator, payload); err != nil {
		return err
	}

	updates := make(map[string]interface{})
	setTrimmed(updates, "name", payload.Name)
	setTrimmed(updates, "code", payload.Code)
	if payload.ClassID != nil {
		updates["class_id"] = nullableID(payload.ClassID)
	}
	if payload.TeacherID != nil {
		updates["teacher_id"] = nullableID(payload.TeacherID)
	}

	if err := s.repo.Update(ctx, id, updates); err != nil {
		return notFound("subject", err)
	}

	recordActivity(ctx, s.activity, s.logger, actor, "subject.updated", "subject", &id, map[string]interface{}{"fields": changedColumns(updates)})
	return nil
}

func (s *subjectService) Delete(ctx context.Context, id uint, actor dto.Principal) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound("subject", err)
	}

	recordActivity(ctx, s.activity, s.logger, actor, "subject.deleted", "subject", &id, nil)
	return nil
}
