package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/school-admin-api/internal/models"
	"github.com/noah-isme/school-admin-api/internal/repository"
)

// Demo credentials created on first start.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
	demoTeacherPassword  = "teacher123"
	demoStudentPassword  = "student123"
)

// SeedResult reports what a bootstrap run created.
type SeedResult struct {
	Skipped  bool
	Users    int
	Classes  int
	Subjects int
	Students int
}

// SeedService populates an empty database.
type SeedService interface {
	Seed(ctx context.Context) (SeedResult, error)
}

type seedService struct {
	db     *gorm.DB
	hasher PasswordHasher
	demo   bool
	logger zerolog.Logger
}

// NewSeedService constructs the bootstrap seeder. When demo is false only the admin account is created.
func NewSeedService(db *gorm.DB, hasher PasswordHasher, demo bool, logger zerolog.Logger) SeedService {
	return &seedService{
		db:     db,
		hasher: hasher,
		demo:   demo,
		logger: logger.With().Str("component", "seed_service").Logger(),
	}
}

// Seed does nothing when an admin already exists, so repeated starts never duplicate data.
// Everything else is written in one transaction.
func (s *seedService) Seed(ctx context.Context) (SeedResult, error) {
	admins, err := repository.NewUserRepository(s.db).CountByRole(ctx, models.RoleAdmin)
	if err != nil {
		return SeedResult{}, err
	}
	if admins > 0 {
		s.logger.Debug().Msg("admin present, seed skipped")
		return SeedResult{Skipped: true}, nil
	}

	hashes, err := s.hashAll(DefaultAdminPassword, demoTeacherPassword, demoStudentPassword)
	if err != nil {
		return SeedResult{}, err
	}

	var result SeedResult
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seeded, err := seedData(ctx, tx, hashes, s.demo)
		result = seeded
		return err
	})
	if err != nil {
		return SeedResult{}, fmt.Errorf("seed database: %w", err)
	}

	s.logger.Info().
		Int("users", result.Users).
		Int("classes", result.Classes).
		Int("subjects", result.Subjects).
		Int("students", result.Students).
		Bool("demo", s.demo).
		Msg("database seeded")
	return result, nil
}

func (s *seedService) hashAll(passwords ...string) (map[string]string, error) {
	hashes := make(map[string]string, len(passwords))
	for _, password := range passwords {
		hash, err := s.hasher.Hash(password)
		if err != nil {
			return nil, err
		}
		hashes[password] = hash
	}
	return hashes, nil
}

func seedData(ctx context.Context, tx *gorm.DB, hashes map[string]string, demo bool) (SeedResult, error) {
	var result SeedResult
	users := repository.NewUserRepository(tx)

	admin := models.User{Username: DefaultAdminUsername, Password: hashes[DefaultAdminPassword], Role: models.RoleAdmin, Name: "System Administrator", Email: "admin@school.edu"}
	if err := users.Create(ctx, &admin); err != nil {
		return result, err
	}
	result.Users++

	if !demo {
		return result, nil
	}

	teachers := []models.User{
		{Username: "smith", Password: hashes[demoTeacherPassword], Role: models.RoleTeacher, Name: "John Smith", Email: "smith@school.edu"},
		{Username: "johnson", Password: hashes[demoTeacherPassword], Role: models.RoleTeacher, Name: "Mary Johnson", Email: "johnson@school.edu"},
	}
	for i := range teachers {
		if err := users.Create(ctx, &teachers[i]); err != nil {
			return result, err
		}
		result.Users++
	}

	classRepo := repository.NewClassRepository(tx)
	classes := []models.Class{
		{Name: "Class 10-A", Grade: "10", Section: "A", TeacherID: &teachers[0].ID, Capacity: 35},
		{Name: "Class 9-B", Grade: "9", Section: "B", TeacherID: &teachers[1].ID, Capacity: 32},
	}
	for i := range classes {
		if err := classRepo.Create(ctx, &classes[i]); err != nil {
			return result, err
		}
		result.Classes++
	}

	subjectRepo := repository.NewSubjectRepository(tx)
	subjects := []models.Subject{
		{Name: "Mathematics", Code: "MATH10", ClassID: &classes[0].ID, TeacherID: &teachers[0].ID},
		{Name: "English", Code: "ENG10", ClassID: &classes[0].ID, TeacherID: &teachers[1].ID},
		{Name: "Science", Code: "SCI9", ClassID: &classes[1].ID, TeacherID: &teachers[0].ID},
	}
	for i := range subjects {
		if err := subjectRepo.Create(ctx, &subjects[i]); err != nil {
			return result, err
		}
		result.Subjects++
	}

	studentRepo := repository.NewStudentRepository(tx)
	students := []struct {
		username, name, roll, gender string
		class                        *uint
	}{
		{"alice", "Alice Brown", "S001", "Female", &classes[0].ID},
		{"bob", "Bob Davis", "S002", "Male", &classes[0].ID},
		{"carol", "Carol Evans", "S003", "Female", &classes[1].ID},
		{"dave", "Dave Foster", "S004", "Male", &classes[1].ID},
	}
	for _, s := range students {
		user := models.User{Username: s.username, Password: hashes[demoStudentPassword], Role: models.RoleStudent, Name: s.name, Email: s.username + "@school.edu"}
		student := models.Student{
			RollNumber:    s.roll,
			ClassID:       s.class,
			ParentName:    "Parent Name",
			DateOfBirth:   "2008-05-15",
			Gender:        s.gender,
			AdmissionDate: today(),
		}
		if err := studentRepo.Create(ctx, &user, &student); err != nil {
			return result, err
		}
		result.Users++
		result.Students++
	}

	announcements := repository.NewAnnouncementRepository(tx)
	for _, item := range []models.Announcement{
		{Title: "Welcome Back!", Content: "Welcome to the new academic year 2024-25. Wishing everyone a great year ahead!"},
		{Title: "Mid-Term Exams Schedule", Content: "Mid-term examinations will commence from next Monday. Please check the timetable."},
	} {
		item.AuthorID = admin.ID
		item.TargetRole = models.TargetAll
		if err := announcements.Create(ctx, &item); err != nil {
			return result, err
		}
	}

	return result, nil
}
