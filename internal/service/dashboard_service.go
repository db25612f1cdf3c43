package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/noah-isme/school-admin-api/internal/dto"
	"github.com/noah-isme/school-admin-api/internal/models"
	"github.com/noah-isme/school-admin-api/internal/repository"
)

// RecentAnnouncementsLimit is the number of announcements shown on the dashboard.
const RecentAnnouncementsLimit = 5

// DashboardSources groups the repositories the dashboard aggregates.
type DashboardSources struct {
	Users         repository.UserRepository
	Students      repository.StudentRepository
	Classes       repository.ClassRepository
	Subjects      repository.SubjectRepository
	Attendance    repository.AttendanceRepository
	Fees          repository.FeeRepository
	Announcements repository.AnnouncementRepository
}

// DashboardService computes summary statistics. Results are never cached.
type DashboardService interface {
	Stats(ctx context.Context) (dto.DashboardStats, error)
}

type dashboardService struct {
	sources DashboardSources
	logger  zerolog.Logger
}

// NewDashboardService constructs the dashboard service.
func NewDashboardService(sources DashboardSources, logger zerolog.Logger) DashboardService {
	return &dashboardService{
		sources: sources,
		logger:  logger.With().Str("component", "dashboard_service").Logger(),
	}
}

func (s *dashboardService) Stats(ctx context.Context) (dto.DashboardStats, error) {
	var stats dto.DashboardStats
	date := today()

	counters := []struct {
		name  string
		dest  *int64
		count func() (int64, error)
	}{
		{"students", &stats.TotalStudents, func() (int64, error) { return s.sources.Students.Count(ctx) }},
		{"teachers", &stats.TotalTeachers, func() (int64, error) { return s.sources.Users.CountByRole(ctx, models.RoleTeacher) }},
		{"classes", &stats.TotalClasses, func() (int64, error) { return s.sources.Classes.Count(ctx) }},
		{"subjects", &stats.TotalSubjects, func() (int64, error) { return s.sources.Subjects.Count(ctx) }},
		{"present", &stats.PresentToday, func() (int64, error) {
			return s.sources.Attendance.CountByDateAndStatus(ctx, date, models.AttendancePresent)
		}},
		{"absent", &stats.AbsentToday, func() (int64, error) {
			return s.sources.Attendance.CountByDateAndStatus(ctx, date, models.AttendanceAbsent)
		}},
		{"pending fees", &stats.PendingFees, func() (int64, error) { return s.sources.Fees.CountByStatus(ctx, models.FeeStatusPending) }},
		{"paid fees", &stats.PaidFees, func() (int64, error) { return s.sources.Fees.CountByStatus(ctx, models.FeeStatusPaid) }},
	}

	for _, counter := range counters {
		value, err := counter.count()
		if err != nil {
			return dto.DashboardStats{}, fmt.Errorf("count %s: %w", counter.name, err)
		}
		*counter.dest = value
	}

	recent, err := s.sources.Announcements.List(ctx, repository.AnnouncementFilter{Limit: RecentAnnouncementsLimit})
	if err != nil {
		return dto.DashboardStats{}, fmt.Errorf("recent announcements: %w", err)
	}
	stats.RecentAnnouncements = recent

	return stats, nil
}
