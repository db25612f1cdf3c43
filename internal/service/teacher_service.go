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

// TeacherService manages teacher accounts.
type TeacherService interface {
	List(ctx context.Context) ([]models.TeacherDetail, error)
	Create(ctx context.Context, payload dto.TeacherCreateRequest, actor dto.Principal) error
	Update(ctx context.Context, id uint, payload dto.TeacherUpdateRequest, actor dto.Principal) error
	Delete(ctx context.Context, id uint, actor dto.Principal) error
}

type teacherService struct {
	repo      repository.UserRepository
	hasher    PasswordHasher
	validator *validator.Validate
	activity  ActivityRecorder
	logger    zerolog.Logger
}

// NewTeacherService constructs the teacher service.
func NewTeacherService(repo repository.UserRepository, hasher PasswordHasher, validator *validator.Validate, activity ActivityRecorder, logger zerolog.Logger) TeacherService {
	return &teacherService{
		repo:      repo,
		hasher:    hasher,
		validator: validator,
		activity:  activity,
		logger:    logger.With().Str("component", "teacher_service").Logger(),
	}
}

func (s *teacherService) List(ctx context.Context) ([]models.TeacherDetail, error) {
	return s.repo.ListTeachers(ctx)
}

func (s *teacherService) Create(ctx context.Context, payload dto.TeacherCreateRequest, actor dto.Principal) error {
	if err := validatePayload(s.validator, payload); err != nil {
		return err
	}

	hash, err := s.hasher.Hash(payload.Password)
	if err != nil {
		return err
	}

	user := models.User{
		Username: strings.TrimSpace(payload.Username),
		Password: hash,
		Role:     models.RoleTeacher,
		Name:     strings.TrimSpace(payload.Name),
		Email:    strings.TrimSpace(payload.Email),
	}
	if err := s.repo.Create(ctx, &user); err != nil {
		return err
	}

	recordActivity(ctx, s.activity, s.logger, actor, "teacher.created", "teacher", &user.ID, map[string]interface{}{"username": user.Username})
	return nil
}

func (s *teacherService) Update(ctx context.Context, id uint, payload dto.TeacherUpdateRequest, actor dto.Principal) error {
	if err := validatePayload(s.validator, payload); err != nil {
		return err
	}

	updates := make(map[string]interface{})
	setTrimmed(updates, "name", payload.Name)
	setTrimmed(updates, "email", payload.Email)

	if err := s.repo.UpdateTeacher(ctx, id, updates); err != nil {
		return notFound("teacher", err)
	}

	recordActivity(ctx, s.activity, s.logger, actor, "teacher.updated", "teacher", &id, map[string]interface{}{"fields": changedColumns(updates)})
	return nil
}

func (s *teacherService) Delete(ctx context.Context, id uint, actor dto.Principal) error {
	if err := s.repo.DeleteTeacher(ctx, id); err != nil {
		return notFound("teacher", err)
	}

	recordActivity(ctx, s.activity, s.logger, actor, "teacher.deleted", "teacher", &id, nil)
	return nil
}
