package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/noah-isme/school-admin-api/internal/database"
	"github.com/noah-isme/school-admin-api/internal/models"
)

type fixture struct {
	teacher  models.User
	class    models.Class
	subject  models.Subject
	students []models.Student
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.ConnectSQLite("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// seedFixture creates one teacher leading one class with one subject and two students.
func seedFixture(t *testing.T, db *gorm.DB) fixture {
	t.Helper()

	teacher := models.User{Username: "smith", Password: "hash", Role: models.RoleTeacher, Name: "John Smith", Email: "smith@school.edu"}
	require.NoError(t, db.Create(&teacher).Error)

	class := models.Class{Name: "Class 10-A", Grade: "10", Section: "A", TeacherID: &teacher.ID, Capacity: 35}
	require.NoError(t, db.Create(&class).Error)

	subject := models.Subject{Name: "Mathematics", Code: "MATH10", ClassID: &class.ID, TeacherID: &teacher.ID}
	require.NoError(t, db.Create(&subject).Error)

	f := fixture{teacher: teacher, class: class, subject: subject}
	for _, s := range []struct{ username, name, roll string }{
		{"alice", "Alice Brown", "S001"},
		{"bob", "Bob Davis", "S002"},
	} {
		user := models.User{Username: s.username, Password: "hash", Role: models.RoleStudent, Name: s.name}
		require.NoError(t, db.Create(&user).Error)
		student := models.Student{UserID: user.ID, RollNumber: s.roll, ClassID: &class.ID, DateOfBirth: "2008-05-15"}
		require.NoError(t, db.Create(&student).Error)
		f.students = append(f.students, student)
	}

	return f
}

func uintPtr(v uint) *uint {
	return &v
}
