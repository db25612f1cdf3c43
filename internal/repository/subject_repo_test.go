package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-admin-api/internal/models"
)

func TestSubjectRepositoryFiltersByClass(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	repo := NewSubjectRepository(db)
	ctx := context.Background()

	orphan := models.Subject{Name: "Art", Code: "ART"}
	require.NoError(t, repo.Create(ctx, &orphan))

	all, err := repo.List(ctx, SubjectFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "Art", all[0].Name)
	require.Nil(t, all[0].ClassName)

	scoped, err := repo.List(ctx, SubjectFilter{ClassID: &f.class.ID})
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	require.Equal(t, "MATH10", scoped[0].Code)
	require.Equal(t, "Class 10-A", *scoped[0].ClassName)
	require.Equal(t, "John Smith", *scoped[0].TeacherName)
}

func TestSubjectRepositoryRejectsDuplicateCode(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)
	repo := NewSubjectRepository(db)

	err := repo.Create(context.Background(), &models.Subject{Name: "Maths again", Code: "MATH10"})
	require.ErrorIs(t, err, ErrConstraintViolation)
}
