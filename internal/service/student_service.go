package service

import (
	"context"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/noah-isme/school-admin-api/internal/dto"
	"github.com/noah-isme/school-admin-api/internal/models"
	"github.com/noah-isme/school-admin-api/internal/repository"
)

// StudentService orchestrates student record use cases.
type StudentService interface {
	List(ctx context.Context, req dto.StudentListRequest) ([]models.StudentDetail, error)
	Get(ctx context.Context, id uint) (models.StudentDetail, error)
	Create(ctx context.Context, payload dto.StudentCreateRequest, actor dto.Principal) error
	Update(ctx context.Context, id uint, payload dto.StudentUpdateRequest, actor dto.Principal) error
	Delete(ctx context.Context, id uint, actor dto.Principal) error
}

type studentService struct {
	repo      repository.StudentRepository
	hasher    PasswordHasher
	validator *validator.Validate
	activity  ActivityRecorder
	logger    zerolog.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo repository.StudentRepository, hasher PasswordHasher, validator *validator.Validate, activity ActivityRecorder, logger zerolog.Logger) StudentService {
	return &studentService{
		repo:      repo,
		hasher:    hasher,
		validator: validator,
		activity:  activity,
		logger:    logger.With().Str("component", "student_service").Logger(),
	}
}

func (s *studentService) List(ctx context.Context, req dto.StudentListRequest) ([]models.StudentDetail, error) {
	return s.repo.List(ctx, repository.StudentFilter{
		Search:  strings.TrimSpace(req.Search),
		ClassID: optionalID(req.ClassID),
	})
}

func (s *studentService) Get(ctx context.Context, id uint) (models.StudentDetail, error) {
	student, err := s.repo.GetDetail(ctx, id)
	if err != nil {
		return models.StudentDetail{}, notFound("student", err)
	}
	return student, nil
}

func (s *studentService) Create(ctx context.Context, payload dto.StudentCreateRequest, actor dto.Principal) error {
	if err := validatePayload(s.validator, payload); err != nil {
		return err
	}

	hash, err := s.hasher.Hash(payload.Password)
	if err != nil {
		return err
	}

	admission := strings.TrimSpace(payload.AdmissionDate)
	if admission == "" {
		admission = today()
	}

	user := models.User{
		Username: strings.TrimSpace(payload.Username),
		Password: hash,
		Role:     models.RoleStudent,
		Name:     strings.TrimSpace(payload.Name),
		Email:    strings.TrimSpace(payload.Email),
	}
	student := models.Student{
		RollNumber:    strings.TrimSpace(payload.RollNumber),
		ClassID:       optionalID(payload.ClassID),
		ParentName:    strings.TrimSpace(payload.ParentName),
		ParentPhone:   strings.TrimSpace(payload.ParentPhone),
		Address:       strings.TrimSpace(payload.Address),
		DateOfBirth:   strings.TrimSpace(payload.DateOfBirth),
		Gender:        strings.TrimSpace(payload.Gender),
		AdmissionDate: admission,
	}

	if err := s.repo.Create(ctx, &user, &student); err != nil {
		return err
	}

	s.logger.Info().Uint("student_id", student.ID).Str("roll_number", student.RollNumber).Msg("student created")
	recordActivity(ctx, s.activity, s.logger, actor, "student.created", "student", &student.ID, map[string]interface{}{
		"roll_number": student.RollNumber,
		"username":    user.Username,
	})
	return nil
}

// Update overwrites the supplied fields. Name and email live on the login identity.
func (s *studentService) Update(ctx context.Context, id uint, payload dto.StudentUpdateRequest, actor dto.Principal) error {
	if err := validatePayload(s.validator, payload); err != nil {
		return err
	}

	userUpdates := make(map[string]interface{})
	setTrimmed(userUpdates, "name", payload.Name)
	setTrimmed(userUpdates, "email", payload.Email)

	studentUpdates := make(map[string]interface{})
	if payload.ClassID != nil {
		studentUpdates["class_id"] = nullableID(payload.ClassID)
	}
	setTrimmed(studentUpdates, "parent_name", payload.ParentName)
	setTrimmed(studentUpdates, "parent_phone", payload.ParentPhone)
	setTrimmed(studentUpdates, "address", payload.Address)
	setTrimmed(studentUpdates, "date_of_birth", payload.DateOfBirth)
	setTrimmed(studentUpdates, "gender", payload.Gender)

	if err := s.repo.Update(ctx, id, userUpdates, studentUpdates); err != nil {
		return notFound("student", err)
	}

	fields := append(changedColumns(userUpdates), changedColumns(studentUpdates)...)
	sort.Strings(fields)
	recordActivity(ctx, s.activity, s.logger, actor, "student.updated", "student", &id, map[string]interface{}{"fields": fields})
	return nil
}

func (s *studentService) Delete(ctx context.Context, id uint, actor dto.Principal) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound("student", err)
	}

	s.logger.Info().Uint("student_id", id).Msg("student deleted with attendance, grades and fees")
	recordActivity(ctx, s.activity, s.logger, actor, "student.deleted", "student", &id, nil)
	return nil
}
