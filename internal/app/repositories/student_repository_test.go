package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/takeo/dojomaster/internal/app/models"
	"github.com/takeo/dojomaster/internal/pkg/apperrors"
	"github.com/takeo/dojomaster/internal/store"
)

func TestStudentRepositoryAppendAndLookup(t *testing.T) {
	ctx := context.Background()
	repo := NewStudentRepository(store.NewMemoryStore())

	require.NoError(t, repo.Append(ctx, models.Student{ID: "a1", UserID: "u2", Name: "João Silva"}))

	student, err := repo.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "João Silva", student.Name)

	student, err = repo.GetByUserID(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, "a1", student.ID)

	_, err = repo.GetByID(ctx, "a2")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	_, err = repo.GetByUserID(ctx, "u9")
	assert.ErrorIs(t, err, apperrors.ErrStudentProfileMissing)
}

func TestStudentRepositoryGetAllMissingKeyIsEmptyNotNil(t *testing.T) {
	ctx := context.Background()
	repo := NewStudentRepository(store.NewMemoryStore())

	// An unseeded collection lists as an empty slice, so the API serializes
	// [] instead of null.
	students, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.NotNil(t, students)
	assert.Empty(t, students)
}

func TestStudentRepositoryDeleteLeavesOtherRecords(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	repo := NewStudentRepository(st)

	require.NoError(t, repo.Append(ctx, models.Student{ID: "a1", UserID: "u2"}))
	require.NoError(t, repo.Append(ctx, models.Student{ID: "a2", UserID: "u3"}))

	require.NoError(t, repo.Delete(ctx, "a1"))

	students, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "a2", students[0].ID)

	assert.ErrorIs(t, repo.Delete(ctx, "a1"), apperrors.ErrStudentNotFound)
}

func TestStudentRepositoryUpdateMissingWritesNothing(t *testing.T) {
	ctx := context.Background()
	repo := NewStudentRepository(store.NewMemoryStore())

	require.NoError(t, repo.Append(ctx, models.Student{ID: "a1", Name: "Maria"}))

	err := repo.Update(ctx, models.Student{ID: "a9", Name: "Ninguém"})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	students, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "Maria", students[0].Name)
}
