package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/takeo/dojomaster/internal/app/models"
	"github.com/takeo/dojomaster/internal/app/repositories"
	"github.com/takeo/dojomaster/internal/seed"
	"github.com/takeo/dojomaster/internal/store"
)

// seededRepos returns repositories over a memory store loaded with the
// default data set.
func seededRepos(t *testing.T) *repositories.Repositories {
	t.Helper()
	st := store.NewMemoryStore()

	seedCollection(t, st, repositories.KeyUsers, seed.DefaultUsers())
	seedCollection(t, st, repositories.KeyStudents, seed.DefaultStudents())
	seedCollection(t, st, repositories.KeyRanks, seed.DefaultRanks())
	seedCollection(t, st, repositories.KeyExams, seed.DefaultExams())

	return repositories.NewRepositories(st)
}

func seedCollection[T any](t *testing.T, st store.Store, key string, items []T) {
	t.Helper()
	raw, err := json.Marshal(items)
	require.NoError(t, err)
	require.NoError(t, st.Set(context.Background(), key, raw))
}

func TestNextRankResolvesImmediateSuccessor(t *testing.T) {
	ctx := context.Background()
	svc := NewRankService(seededRepos(t).RankRepository)

	next, err := svc.NextRank(ctx, "Faixa Amarela")
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, "Faixa Vermelha", next.Name)
}

func TestNextRankOnLastRungIsAbsent(t *testing.T) {
	ctx := context.Background()
	svc := NewRankService(seededRepos(t).RankRepository)

	next, err := svc.NextRank(ctx, "Faixa Preta")
	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestNextRankForUnknownRankIsAbsent(t *testing.T) {
	ctx := context.Background()
	svc := NewRankService(seededRepos(t).RankRepository)

	// A current rank that is not in the ladder is a data-integrity gap the
	// system tolerates: no next rank, no error.
	next, err := svc.NextRank(ctx, "Faixa Azul")
	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestNextRankIgnoresStorageOrder(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	// Ladder persisted shuffled; position is defined by Order alone.
	seedCollection(t, st, repositories.KeyRanks, []models.RankDefinition{
		{ID: "g2", Name: "Faixa Amarela", Order: 2},
		{ID: "g3", Name: "Faixa Vermelha", Order: 3},
		{ID: "g1", Name: "Faixa Branca", Order: 1},
	})

	svc := NewRankService(repositories.NewRankRepository(st))
	next, err := svc.NextRank(ctx, "Faixa Branca")
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, "Faixa Amarela", next.Name)
}

func TestUpdateRankReplacesDefinition(t *testing.T) {
	ctx := context.Background()
	repos := seededRepos(t)
	svc := NewRankService(repos.RankRepository)

	updated, err := svc.UpdateRank(ctx, models.RankDefinition{
		ID: "g2", Name: "Faixa Amarela", Order: 2,
		Requirements: "Kata Heian Shodan. 4 meses de treino.", Color: "#fbbf24",
	})
	require.NoError(t, err)
	assert.Equal(t, "Kata Heian Shodan. 4 meses de treino.", updated.Requirements)

	ladder, err := svc.GetLadder(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Kata Heian Shodan. 4 meses de treino.", ladder[1].Requirements)
}
