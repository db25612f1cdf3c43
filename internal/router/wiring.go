package router

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/school-admin-api/internal/config"
	"github.com/noah-isme/school-admin-api/internal/handler"
	"github.com/noah-isme/school-admin-api/internal/middleware"
	"github.com/noah-isme/school-admin-api/internal/repository"
	"github.com/noah-isme/school-admin-api/internal/service"
)

// Options carries the process-wide resources the handlers are built from.
type Options struct {
	Config   config.Config
	DB       *gorm.DB
	Sessions *middleware.Sessions
	// LimiterStorage backs the login rate limiter; nil keeps counters in memory.
	LimiterStorage fiber.Storage
	Hasher         service.PasswordHasher
	Logger         zerolog.Logger
}

// NewDependencies builds repositories, services and handlers over one database handle.
func NewDependencies(opts Options) (Dependencies, error) {
	if opts.DB == nil {
		return Dependencies{}, fmt.Errorf("database handle is required")
	}
	if opts.Sessions == nil {
		return Dependencies{}, fmt.Errorf("session store is required")
	}

	sqlDB, err := opts.DB.DB()
	if err != nil {
		return Dependencies{}, fmt.Errorf("resolve sql handle: %w", err)
	}

	hasher := opts.Hasher
	if hasher == nil {
		hasher = service.NewBcryptHasher(opts.Config.BcryptCost)
	}
	logger := opts.Logger
	validate := service.NewValidator()

	userRepo := repository.NewUserRepository(opts.DB)
	studentRepo := repository.NewStudentRepository(opts.DB)
	classRepo := repository.NewClassRepository(opts.DB)
	subjectRepo := repository.NewSubjectRepository(opts.DB)
	attendanceRepo := repository.NewAttendanceRepository(opts.DB)
	gradeRepo := repository.NewGradeRepository(opts.DB)
	feeRepo := repository.NewFeeRepository(opts.DB)
	announcementRepo := repository.NewAnnouncementRepository(opts.DB)
	timetableRepo := repository.NewTimetableRepository(opts.DB)
	activityRepo := repository.NewActivityLogRepository(opts.DB)

	activityService := service.NewActivityService(activityRepo, logger)
	authService := service.NewAuthService(userRepo, hasher, validate, logger)
	studentService := service.NewStudentService(studentRepo, hasher, validate, activityService, logger)
	teacherService := service.NewTeacherService(userRepo, hasher, validate, activityService, logger)
	classService := service.NewClassService(classRepo, validate, activityService, logger)
	subjectService := service.NewSubjectService(subjectRepo, validate, activityService, logger)
	attendanceService := service.NewAttendanceService(attendanceRepo, validate, activityService, logger)
	gradeService := service.NewGradeService(gradeRepo, validate, activityService, logger)
	feeService := service.NewFeeService(feeRepo, validate, activityService, logger)
	announcementService := service.NewAnnouncementService(announcementRepo, validate, activityService, logger)
	timetableService := service.NewTimetableService(timetableRepo, validate, activityService, logger)
	dashboardService := service.NewDashboardService(service.DashboardSources{
		Users:         userRepo,
		Students:      studentRepo,
		Classes:       classRepo,
		Subjects:      subjectRepo,
		Attendance:    attendanceRepo,
		Fees:          feeRepo,
		Announcements: announcementRepo,
	}, logger)

	return Dependencies{
		Sessions:     opts.Sessions,
		LoginLimiter: middleware.RateLimit(middleware.RateLimitConfig{
			Name:    "login",
			Max:     opts.Config.LoginRateLimit,
			Window:  opts.Config.LoginRateWindow,
			Storage: opts.LimiterStorage,
		}),
		Database:     sqlDB,

		AuthHandler:         handler.NewAuthHandler(authService, opts.Sessions, logger),
		DashboardHandler:    handler.NewDashboardHandler(dashboardService, logger),
		StudentHandler:      handler.NewStudentHandler(studentService, logger),
		TeacherHandler:      handler.NewTeacherHandler(teacherService, logger),
		ClassHandler:        handler.NewClassHandler(classService, logger),
		SubjectHandler:      handler.NewSubjectHandler(subjectService, logger),
		AttendanceHandler:   handler.NewAttendanceHandler(attendanceService, logger),
		GradeHandler:        handler.NewGradeHandler(gradeService, logger),
		FeeHandler:          handler.NewFeeHandler(feeService, logger),
		AnnouncementHandler: handler.NewAnnouncementHandler(announcementService, logger),
		TimetableHandler:    handler.NewTimetableHandler(timetableService, logger),
		ActivityHandler:     handler.NewActivityHandler(activityService, logger),
	}, nil
}
