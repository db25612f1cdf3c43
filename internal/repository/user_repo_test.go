package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-admin-api/internal/models"
)

func TestUserRepositoryListTeachersJoinsClassNames(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	second := models.Class{Name: "Class 10-B", Grade: "10", Section: "B", TeacherID: &f.teacher.ID, Capacity: 30}
	require.NoError(t, db.Create(&second).Error)

	idle := models.User{Username: "adams", Password: "hash", Role: models.RoleTeacher, Name: "Amy Adams"}
	require.NoError(t, db.Create(&idle).Error)

	teachers, err := repo.ListTeachers(ctx)
	require.NoError(t, err)
	require.Len(t, teachers, 2)

	require.Equal(t, "Amy Adams", teachers[0].Name, "expected name order")
	require.Nil(t, teachers[0].Classes)
	require.NotNil(t, teachers[1].Classes)
	require.Equal(t, "Class 10-A, Class 10-B", *teachers[1].Classes)
}

func TestUserRepositoryDeleteTeacherUnassigns(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.Announcement{Title: "Quiz", Content: "Friday", AuthorID: f.teacher.ID, TargetRole: models.TargetAll}).Error)

	require.NoError(t, repo.DeleteTeacher(ctx, f.teacher.ID))

	var class models.Class
	require.NoError(t, db.Take(&class, f.class.ID).Error)
	require.Nil(t, class.TeacherID)

	var subject models.Subject
	require.NoError(t, db.Take(&subject, f.subject.ID).Error)
	require.Nil(t, subject.TeacherID)

	_, err := repo.GetByID(ctx, f.teacher.ID)
	require.True(t, IsNotFound(err))
}

func TestUserRepositoryTeacherOperationsRejectOtherRoles(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	studentUserID := f.students[0].UserID
	require.True(t, IsNotFound(repo.DeleteTeacher(ctx, studentUserID)))
	require.True(t, IsNotFound(repo.UpdateTeacher(ctx, studentUserID, map[string]interface{}{"name": "x"})))

	require.NoError(t, repo.UpdateTeacher(ctx, f.teacher.ID, map[string]interface{}{"email": "john.smith@school.edu"}))
	updated, err := repo.GetByID(ctx, f.teacher.ID)
	require.NoError(t, err)
	require.Equal(t, "john.smith@school.edu", updated.Email)

	count, err := repo.CountByRole(ctx, models.RoleStudent)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)
}

func TestUserRepositoryFindByUsernameIsExact(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)
	repo := NewUserRepository(db)

	user, err := repo.FindByUsername(context.Background(), "smith")
	require.NoError(t, err)
	require.Equal(t, models.RoleTeacher, user.Role)

	_, err = repo.FindByUsername(context.Background(), "smit")
	require.True(t, IsNotFound(err))
}
