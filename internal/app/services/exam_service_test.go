package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/takeo/dojomaster/internal/app/models"
	"github.com/takeo/dojomaster/internal/app/models/dto"
	"github.com/takeo/dojomaster/internal/app/repositories"
	"github.com/takeo/dojomaster/internal/pkg/apperrors"
	"github.com/takeo/dojomaster/internal/seed"
	"github.com/takeo/dojomaster/internal/store"
)

func newExamService(repos *repositories.Repositories, cfg ExamServiceConfig) ExamService {
	return NewExamService(
		repos.ExamRepository,
		repos.StudentRepository,
		NewRankService(repos.RankRepository),
		cfg,
		zerolog.Nop(),
	)
}

func TestCreateExamPassedPromotesToExaminedRank(t *testing.T) {
	ctx := context.Background()
	repos := seededRepos(t)
	svc := newExamService(repos, ExamServiceConfig{})

	// a1 currently holds Faixa Amarela.
	exam, err := svc.CreateExam(ctx, dto.CreateExamRequest{
		StudentID:  "a1",
		TargetRank: "Faixa Vermelha",
		Date:       "2024-03-10",
		Outcome:    models.OutcomePassed,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, exam.ID)

	student, err := repos.StudentRepository.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "Faixa Vermelha", student.CurrentRank)
}

func TestCreateExamPassedLowerRankDemotes(t *testing.T) {
	ctx := context.Background()
	repos := seededRepos(t)
	svc := newExamService(repos, ExamServiceConfig{})

	// The promotion rule compares names, not ladder order: passing an exam
	// for a lower rank moves the student down.
	_, err := svc.CreateExam(ctx, dto.CreateExamRequest{
		StudentID:  "a1",
		TargetRank: "Faixa Branca",
		Outcome:    models.OutcomePassed,
	})
	require.NoError(t, err)

	student, err := repos.StudentRepository.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "Faixa Branca", student.CurrentRank)
}

func TestCreateExamFailedNeverChangesRank(t *testing.T) {
	ctx := context.Background()
	repos := seededRepos(t)
	svc := newExamService(repos, ExamServiceConfig{})

	_, err := svc.CreateExam(ctx, dto.CreateExamRequest{
		StudentID:  "a1",
		TargetRank: "Faixa Vermelha",
		Outcome:    models.OutcomeFailed,
	})
	require.NoError(t, err)

	student, err := repos.StudentRepository.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "Faixa Amarela", student.CurrentRank)
}

func TestCreateExamDefaultsDateAndOutcome(t *testing.T) {
	ctx := context.Background()
	repos := seededRepos(t)
	svc := newExamService(repos, ExamServiceConfig{})

	exam, err := svc.CreateExam(ctx, dto.CreateExamRequest{
		StudentID:  "a2",
		TargetRank: "Faixa Amarela",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Now().Format("2006-01-02"), exam.Date)
	assert.Equal(t, models.OutcomePending, exam.Outcome)

	// A Pending exam records the event but promotes nobody.
	student, err := repos.StudentRepository.GetByID(ctx, "a2")
	require.NoError(t, err)
	assert.Equal(t, "Faixa Branca", student.CurrentRank)
}

func TestCreateExamValidation(t *testing.T) {
	ctx := context.Background()
	svc := newExamService(seededRepos(t), ExamServiceConfig{})

	tests := []struct {
		name string
		req  dto.CreateExamRequest
	}{
		{"missing student id", dto.CreateExamRequest{TargetRank: "Faixa Amarela"}},
		{"missing target rank", dto.CreateExamRequest{StudentID: "a1"}},
		{"bad outcome", dto.CreateExamRequest{StudentID: "a1", TargetRank: "Faixa Amarela", Outcome: "Maybe"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateExam(ctx, tt.req)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestCreateExamPassedUnknownStudentRecordsWithoutPromotion(t *testing.T) {
	ctx := context.Background()
	repos := seededRepos(t)
	svc := newExamService(repos, ExamServiceConfig{})

	exam, err := svc.CreateExam(ctx, dto.CreateExamRequest{
		StudentID:  "nobody",
		TargetRank: "Faixa Preta",
		Outcome:    models.OutcomePassed,
	})
	require.NoError(t, err)

	history, err := svc.History(ctx, "nobody")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, exam.ID, history[0].ID)
}

// failingKeyStore fails every read of one key and delegates the rest.
type failingKeyStore struct {
	store.Store
	key string
	err error
}

func (s *failingKeyStore) Get(ctx context.Context, key string) ([]byte, error) {
	if key == s.key {
		return nil, s.err
	}
	return s.Store.Get(ctx, key)
}

func TestCreateExamPassedSurfacesStudentReadFailure(t *testing.T) {
	ctx := context.Background()
	backend := store.NewMemoryStore()
	require.NoError(t, seed.EnsureDefaults(ctx, backend, false, zerolog.Nop()))

	readErr := errors.New("connection reset")
	repos := repositories.NewRepositories(&failingKeyStore{
		Store: backend,
		key:   repositories.KeyStudents,
		err:   readErr,
	})
	svc := newExamService(repos, ExamServiceConfig{})

	// A broken students read is a storage failure, not a missing student:
	// the caller must see the error instead of a silently skipped promotion.
	_, err := svc.CreateExam(ctx, dto.CreateExamRequest{
		StudentID:  "a1",
		TargetRank: "Faixa Vermelha",
		Outcome:    models.OutcomePassed,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrStorage)
	assert.NotErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestCreateExamRequireAdjacentRejectsRankSkip(t *testing.T) {
	ctx := context.Background()
	repos := seededRepos(t)
	svc := newExamService(repos, ExamServiceConfig{RequireAdjacent: true})

	// a1 holds Faixa Amarela; Faixa Preta skips five rungs.
	_, err := svc.CreateExam(ctx, dto.CreateExamRequest{
		StudentID:  "a1",
		TargetRank: "Faixa Preta",
		Outcome:    models.OutcomePassed,
	})
	require.ErrorIs(t, err, apperrors.ErrExamNotAdjacent)

	// Nothing was recorded.
	history, err := svc.History(ctx, "a1")
	require.NoError(t, err)
	assert.Len(t, history, 1) // only the seed exam

	// The immediate next rung is still accepted.
	_, err = svc.CreateExam(ctx, dto.CreateExamRequest{
		StudentID:  "a1",
		TargetRank: "Faixa Vermelha",
		Outcome:    models.OutcomePassed,
	})
	require.NoError(t, err)
}

func TestHistoryMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	repos := seededRepos(t)
	svc := newExamService(repos, ExamServiceConfig{})

	for _, date := range []string{"2024-01-05", "2023-11-30", "2024-06-01"} {
		_, err := svc.CreateExam(ctx, dto.CreateExamRequest{
			StudentID:  "a2",
			TargetRank: "Faixa Amarela",
			Date:       date,
			Outcome:    models.OutcomeFailed,
		})
		require.NoError(t, err)
	}

	history, err := svc.History(ctx, "a2")
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "2024-06-01", history[0].Date)
	assert.Equal(t, "2024-01-05", history[1].Date)
	assert.Equal(t, "2023-11-30", history[2].Date)
}

func TestHistoryFiltersByStudent(t *testing.T) {
	ctx := context.Background()
	svc := newExamService(seededRepos(t), ExamServiceConfig{})

	history, err := svc.History(ctx, "a2")
	require.NoError(t, err)
	assert.Empty(t, history)

	history, err = svc.History(ctx, "a1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "e1", history[0].ID)
}
