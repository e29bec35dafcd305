// Package seed materializes the default collections on first run. Seeding is
// an explicit bootstrap step: a key that already exists is never touched, so
// a second boot leaves user data alone.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/takeo/dojomaster/internal/app/models"
	"github.com/takeo/dojomaster/internal/app/repositories"
	"github.com/takeo/dojomaster/internal/pkg/auth"
	"github.com/takeo/dojomaster/internal/store"
)

// DefaultUsers returns the seed accounts: one administrator and two students.
func DefaultUsers() []models.User {
	return []models.User{
		{ID: "u1", Email: "admin@dojo.com", Password: "123", Role: models.RoleAdministrator},
		{ID: "u2", Email: "joao@dojo.com", Password: "123", Role: models.RoleStudent},
		{ID: "u3", Email: "maria@dojo.com", Password: "123", Role: models.RoleStudent},
	}
}

// DefaultStudents returns the seed student profiles.
func DefaultStudents() []models.Student {
	return []models.Student{
		{
			ID: "a1", UserID: "u2", Name: "João Silva",
			BirthDate: "1995-05-20", Phone: "(11) 99999-9999",
			CurrentRank: "Faixa Amarela", EnrollmentDate: "2023-01-15",
			Notes: "Aluno dedicado.",
		},
		{
			ID: "a2", UserID: "u3", Name: "Maria Oliveira",
			BirthDate: "2000-10-10", Phone: "(11) 98888-8888",
			CurrentRank: "Faixa Branca", EnrollmentDate: "2023-06-01",
			Notes: "Precisa melhorar o kata.",
		},
	}
}

// DefaultRanks returns the fixed 8-rung belt ladder.
func DefaultRanks() []models.RankDefinition {
	return []models.RankDefinition{
		{ID: "g1", Name: "Faixa Branca", Order: 1, Requirements: "Iniciante.", Color: "#f8f9fa"},
		{ID: "g2", Name: "Faixa Amarela", Order: 2, Requirements: "Kata Heian Shodan. 3 meses de treino.", Color: "#fbbf24"},
		{ID: "g3", Name: "Faixa Vermelha", Order: 3, Requirements: "Kata Heian Nidan. 4 meses de treino.", Color: "#ef4444"},
		{ID: "g4", Name: "Faixa Laranja", Order: 4, Requirements: "Kata Heian Sandan. 6 meses de treino.", Color: "#f97316"},
		{ID: "g5", Name: "Faixa Verde", Order: 5, Requirements: "Kata Heian Yondan. 6 meses de treino.", Color: "#22c55e"},
		{ID: "g6", Name: "Faixa Roxa", Order: 6, Requirements: "Kata Heian Godan. 8 meses de treino.", Color: "#a855f7"},
		{ID: "g7", Name: "Faixa Marrom", Order: 7, Requirements: "Kata Tekki Shodan. 1 ano de treino.", Color: "#78350f"},
		{ID: "g8", Name: "Faixa Preta", Order: 8, Requirements: "Todos os Katas básicos. 2 anos de marrom.", Color: "#000000"},
	}
}

// DefaultExams returns the seed exam history.
func DefaultExams() []models.ExamRecord {
	return []models.ExamRecord{
		{
			ID: "e1", StudentID: "a1", TargetRank: "Faixa Amarela",
			Date: "2023-06-20", Outcome: models.OutcomePassed,
			Notes: "Excelente técnica.",
		},
	}
}

// EnsureDefaults writes every missing collection key. hashPasswords controls
// whether seed credentials are stored bcrypt-hashed (strict mode) or as-is.
func EnsureDefaults(ctx context.Context, s store.Store, hashPasswords bool, lgr zerolog.Logger) error {
	users := DefaultUsers()
	if hashPasswords {
		for i := range users {
			hashed, err := auth.HashPassword(users[i].Password)
			if err != nil {
				return fmt.Errorf("failed to hash seed password: %w", err)
			}
			users[i].Password = hashed
		}
	}

	var finalErr error
	finalErr = errors.Join(finalErr, ensureKey(ctx, s, repositories.KeyUsers, users, lgr))
	finalErr = errors.Join(finalErr, ensureKey(ctx, s, repositories.KeyStudents, DefaultStudents(), lgr))
	finalErr = errors.Join(finalErr, ensureKey(ctx, s, repositories.KeyRanks, DefaultRanks(), lgr))
	finalErr = errors.Join(finalErr, ensureKey(ctx, s, repositories.KeyExams, DefaultExams(), lgr))
	return finalErr
}

// ensureKey writes value under key unless the key already holds a document.
func ensureKey[T any](ctx context.Context, s store.Store, key string, value []T, lgr zerolog.Logger) error {
	_, err := s.Get(ctx, key)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrKeyNotFound) {
		lgr.Error().Err(err).Str("key", key).Msg("Error checking seed key")
		return err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode seed data for %s: %w", key, err)
	}
	if err := s.Set(ctx, key, raw); err != nil {
		lgr.Error().Err(err).Str("key", key).Msg("Error writing seed data")
		return err
	}
	lgr.Info().Str("key", key).Int("records", len(value)).Msg("Seeded collection")
	return nil
}
