package repositories

import (
	"context"
	"sort"

	"github.com/takeo/dojomaster/internal/app/models"
	"github.com/takeo/dojomaster/internal/pkg/apperrors"
	"github.com/takeo/dojomaster/internal/store"
)

// RankRepository provides access to the rank definitions collection.
type RankRepository struct {
	ranks *collection[models.RankDefinition]
}

// NewRankRepository creates a new RankRepository.
func NewRankRepository(s store.Store) *RankRepository {
	return &RankRepository{ranks: newCollection[models.RankDefinition](s, KeyRanks)}
}

// GetAll returns the ladder sorted ascending by Order. The sort is re-applied
// on every read since storage order is not guaranteed.
func (r *RankRepository) GetAll(ctx context.Context) ([]models.RankDefinition, error) {
	ranks, err := r.ranks.load(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Order < ranks[j].Order
	})
	return ranks, nil
}

// GetByName returns the rank definition with the given name, or nil when the
// name does not appear in the ladder.
func (r *RankRepository) GetByName(ctx context.Context, name string) (*models.RankDefinition, error) {
	ranks, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range ranks {
		if ranks[i].Name == name {
			return &ranks[i], nil
		}
	}
	return nil, nil
}

// Update replaces the rank definition matching by id. ErrRankNotFound when
// the id is absent.
func (r *RankRepository) Update(ctx context.Context, rank models.RankDefinition) error {
	return r.ranks.mutate(ctx, func(ranks []models.RankDefinition) ([]models.RankDefinition, error) {
		for i := range ranks {
			if ranks[i].ID == rank.ID {
				ranks[i] = rank
				return ranks, nil
			}
		}
		return nil, apperrors.ErrRankNotFound
	})
}
