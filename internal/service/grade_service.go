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

// GradeService records assessment results.
type GradeService interface {
	List(ctx context.Context, req dto.GradeListRequest) ([]models.GradeDetail, error)
	Create(ctx context.Context, payload dto.GradeCreateRequest, actor dto.Principal) error
	Update(ctx context.Context, id uint, payload dto.GradeUpdateRequest, actor dto.Principal) error
	Delete(ctx context.Context, id uint, actor dto.Principal) error
}

type gradeService struct {
	repo      repository.GradeRepository
	validator *validator.Validate
	activity  ActivityRecorder
	logger    zerolog.Logger
}

// NewGradeService constructs the grade service.
func NewGradeService(repo repository.GradeRepository, validator *validator.Validate, activity ActivityRecorder, logger zerolog.Logger) GradeService {
	return &gradeService{
		repo:      repo,
		validator: validator,
		activity:  activity,
		logger:    logger.With().Str("component", "grade_service").Logger(),
	}
}

func (s *gradeService) List(ctx context.Context, req dto.GradeListRequest) ([]models.GradeDetail, error) {
	return s.repo.List(ctx, repository.GradeFilter{
		StudentID: optionalID(req.StudentID),
		SubjectID: optionalID(req.SubjectID),
	})
}

func (s *gradeService) Create(ctx context.Context, payload dto.GradeCreateRequest, actor dto.Principal) error {
	if err := validatePayload(s.validator, payload); err != nil {
		return err
	}

	total := float64(models.DefaultTotalMarks)
	if payload.TotalMarks != nil {
		total = *payload.TotalMarks
	}

	letter := strings.TrimSpace(payload.GradeLetter)
	if letter == "" && payload.MarksObtained != nil {
		letter = LetterGrade(*payload.MarksObtained, total)
	}

	date := strings.TrimSpace(payload.Date)
	if date == "" {
		date = today()
	}

	grade := models.Grade{
		StudentID:     payload.StudentID,
		SubjectID:     payload.SubjectID,
		ExamType:      strings.TrimSpace(payload.ExamType),
		MarksObtained: payload.MarksObtained,
		TotalMarks:    total,
		GradeLetter:   letter,
		Remarks:       strings.TrimSpace(payload.Remarks),
		Date:          date,
	}
	if err := s.repo.Create(ctx, &grade); err != nil {
		return err
	}

	recordActivity(ctx, s.activity, s.logger, actor, "grade.created", "grade", &grade.ID, map[string]interface{}{
		"student_id": grade.StudentID,
		"subject_id": grade.SubjectID,
		"exam_type":  grade.ExamType,
	})
	return nil
}

// Update overwrites the supplied fields. When marks change without an explicit letter the
// letter is derived again from the stored totals.
func (s *gradeService) Update(ctx context.Context, id uint, payload dto.GradeUpdateRequest, actor dto.Principal) error {
	if err := validatePayload(s.validator, payload); err != nil {
		return err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return notFound("grade", err)
	}

	updates := make(map[string]interface{})
	setTrimmed(updates, "exam_type", payload.ExamType)
	setTrimmed(updates, "grade_letter", payload.GradeLetter)
	setTrimmed(updates, "remarks", payload.Remarks)
	setTrimmed(updates, "date", payload.Date)

	marks := current.MarksObtained
	total := current.TotalMarks
	if payload.MarksObtained != nil {
		updates["marks_obtained"] = *payload.MarksObtained
		marks = payload.MarksObtained
	}
	if payload.TotalMarks != nil {
		updates["total_marks"] = *payload.TotalMarks
		total = *payload.TotalMarks
	}
	if payload.GradeLetter == nil && marks != nil && (payload.MarksObtained != nil || payload.TotalMarks != nil) {
		updates["grade_letter"] = LetterGrade(*marks, total)
	}

	if err := s.repo.Update(ctx, id, updates); err != nil {
		return notFound("grade", err)
	}

	recordActivity(ctx, s.activity, s.logger, actor, "grade.updated", "grade", &id, map[string]interface{}{"fields": changedColumns(updates)})
	return nil
}

func (s *gradeService) Delete(ctx context.Context, id uint, actor dto.Principal) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound("grade", err)
	}

	recordActivity(ctx, s.activity, s.logger, actor, "grade.deleted", "grade", &id, nil)
	return nil
}

// LetterGrade maps a score to A (>=90%), B (>=80%), C (>=70%), D (>=60%) or F.
func LetterGrade(marks, total float64) string {
	if total <= 0 {
		return ""
	}

	percent := marks / total * 100
	switch {
	case percent >= 90:
		return "A"
	case percent >= 80:
		return "B"
	case percent >= 70:
		return "C"
	case percent >= 60:
		return "D"
	default:
		return "F"
	}
}
