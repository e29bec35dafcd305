package seed

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/takeo/dojomaster/internal/app/models"
	"github.com/takeo/dojomaster/internal/app/repositories"
	"github.com/takeo/dojomaster/internal/store"
)

func TestEnsureDefaultsMaterializesMissingCollections(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	require.NoError(t, EnsureDefaults(ctx, st, false, zerolog.Nop()))

	var users []models.User
	raw, err := st.Get(ctx, repositories.KeyUsers)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &users))
	assert.Len(t, users, 3)
	assert.Equal(t, "admin@dojo.com", users[0].Email)
	assert.Equal(t, models.RoleAdministrator, users[0].Role)
	assert.Equal(t, "123", users[0].Password)

	var ranks []models.RankDefinition
	raw, err = st.Get(ctx, repositories.KeyRanks)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &ranks))
	assert.Len(t, ranks, 8)

	var students []models.Student
	raw, err = st.Get(ctx, repositories.KeyStudents)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &students))
	assert.Len(t, students, 2)

	var exams []models.ExamRecord
	raw, err = st.Get(ctx, repositories.KeyExams)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &exams))
	assert.Len(t, exams, 1)
}

func TestEnsureDefaultsLeavesExistingDataAlone(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	custom := []byte(`[{"id":"u9","email":"sensei@dojo.com","password":"s3cret","role":"Administrator"}]`)
	require.NoError(t, st.Set(ctx, repositories.KeyUsers, custom))

	require.NoError(t, EnsureDefaults(ctx, st, false, zerolog.Nop()))

	raw, err := st.Get(ctx, repositories.KeyUsers)
	require.NoError(t, err)
	assert.JSONEq(t, string(custom), string(raw))

	// Missing keys are still filled in.
	_, err = st.Get(ctx, repositories.KeyRanks)
	assert.NoError(t, err)
}

func TestEnsureDefaultsHashesSeedPasswordsInStrictMode(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	require.NoError(t, EnsureDefaults(ctx, st, true, zerolog.Nop()))

	var users []models.User
	raw, err := st.Get(ctx, repositories.KeyUsers)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &users))
	for _, u := range users {
		assert.NotEqual(t, "123", u.Password)
		assert.True(t, len(u.Password) > 50, "expected a bcrypt hash, got %q", u.Password)
	}
}
