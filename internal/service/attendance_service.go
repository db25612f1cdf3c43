package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/noah-isme/school-admin-api/internal/dto"
	"github.com/noah-isme/school-admin-api/internal/models"
	"github.com/noah-isme/school-admin-api/internal/observability"
	"github.com/noah-isme/school-admin-api/internal/repository"
)

// AttendanceReportLimit caps the number of rows returned by the report.
const AttendanceReportLimit = 200

// AttendanceService records and reports daily attendance.
type AttendanceService interface {
	Roster(ctx context.Context, req dto.AttendanceRosterRequest) ([]models.AttendanceRosterEntry, error)
	Mark(ctx context.Context, req dto.AttendanceMarkRequest, actor dto.Principal) (int, error)
	Report(ctx context.Context, req dto.AttendanceReportRequest) ([]models.AttendanceDetail, error)
}

type attendanceService struct {
	repo      repository.AttendanceRepository
	validator *validator.Validate
	activity  ActivityRecorder
	logger    zerolog.Logger
	tracer    trace.Tracer
}

// NewAttendanceService constructs the attendance service.
func NewAttendanceService(repo repository.AttendanceRepository, validator *validator.Validate, activity ActivityRecorder, logger zerolog.Logger) AttendanceService {
	return &attendanceService{
		repo:      repo,
		validator: validator,
		activity:  activity,
		logger:    logger.With().Str("component", "attendance_service").Logger(),
		tracer:    otel.Tracer("github.com/noah-isme/school-admin-api/internal/service/attendance"),
	}
}

func (s *attendanceService) Roster(ctx context.Context, req dto.AttendanceRosterRequest) ([]models.AttendanceRosterEntry, error) {
	if req.ClassID == 0 || req.Date == "" {
		return nil, NewValidationError("class_id and date required")
	}
	if err := validatePayload(s.validator, req); err != nil {
		return nil, err
	}
	return s.repo.Roster(ctx, req.ClassID, req.Date)
}

// Mark upserts every record in one transaction keyed by (student, date, class).
// The whole batch is validated first and nothing is written if any record is invalid.
func (s *attendanceService) Mark(ctx context.Context, req dto.AttendanceMarkRequest, actor dto.Principal) (int, error) {
	if req.Records == nil {
		return 0, NewValidationError("records array required")
	}
	if err := validatePayload(s.validator, req); err != nil {
		return 0, err
	}

	spanCtx, span := s.tracer.Start(ctx, "attendance.mark", trace.WithAttributes(
		attribute.Int("attendance.records", len(req.Records)),
		attribute.Int64("actor.id", int64(actor.ID)),
	))
	defer span.End()

	records := make([]models.Attendance, 0, len(req.Records))
	for _, record := range req.Records {
		records = append(records, models.Attendance{
			StudentID: record.StudentID,
			ClassID:   record.ClassID,
			Date:      record.Date,
			Status:    record.Status,
		})
	}

	if _, err := s.repo.UpsertBatch(spanCtx, records); err != nil {
		span.RecordError(err)
		s.logger.Warn().Err(err).Int("records", len(records)).Msg("attendance batch rejected")
		return 0, err
	}

	for _, record := range records {
		observability.AttendanceRecords().WithLabelValues(record.Status).Inc()
	}

	if len(records) > 0 {
		recordActivity(spanCtx, s.activity, s.logger, actor, "attendance.marked", "attendance", nil, map[string]interface{}{
			"records":  len(records),
			"class_id": records[0].ClassID,
			"date":     records[0].Date,
		})
	}
	return len(records), nil
}

func (s *attendanceService) Report(ctx context.Context, req dto.AttendanceReportRequest) ([]models.AttendanceDetail, error) {
	if err := validatePayload(s.validator, req); err != nil {
		return nil, err
	}

	return s.repo.Report(ctx, repository.AttendanceReportFilter{
		StudentID: optionalID(req.StudentID),
		ClassID:   optionalID(req.ClassID),
		Status:    req.Status,
		From:      req.From,
		To:        req.To,
		Limit:     AttendanceReportLimit,
	})
}
