package services

import (
	"context"

	"github.com/takeo/dojomaster/internal/app/models"
	"github.com/takeo/dojomaster/internal/app/repositories"
)

// RankService defines the interface for ladder-related operations.
type RankService interface {
	// GetLadder returns all rank definitions sorted ascending by Order.
	GetLadder(ctx context.Context) ([]models.RankDefinition, error)
	// NextRank resolves the rung immediately after currentRank. A nil result
	// with nil error means there is no next rank: the student is on the last
	// rung, or the current rank name is not in the ladder at all.
	NextRank(ctx context.Context, currentRank string) (*models.RankDefinition, error)
	// UpdateRank replaces the definition matching by id.
	UpdateRank(ctx context.Context, rank models.RankDefinition) (*models.RankDefinition, error)
}

type rankServiceImpl struct {
	rankRepo *repositories.RankRepository
}

// NewRankService creates a new rank service instance.
func NewRankService(rankRepo *repositories.RankRepository) RankService {
	return &rankServiceImpl{rankRepo: rankRepo}
}

func (s *rankServiceImpl) GetLadder(ctx context.Context) ([]models.RankDefinition, error) {
	return s.rankRepo.GetAll(ctx)
}

func (s *rankServiceImpl) NextRank(ctx context.Context, currentRank string) (*models.RankDefinition, error) {
	ladder, err := s.rankRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range ladder {
		if ladder[i].Name == currentRank {
			if i+1 < len(ladder) {
				return &ladder[i+1], nil
			}
			return nil, nil
		}
	}
	// Current rank not found in the ladder: tolerated, resolves to no next
	// rank rather than an error.
	return nil, nil
}

func (s *rankServiceImpl) UpdateRank(ctx context.Context, rank models.RankDefinition) (*models.RankDefinition, error) {
	if err := s.rankRepo.Update(ctx, rank); err != nil {
		return nil, err
	}
	return &rank, nil
}
