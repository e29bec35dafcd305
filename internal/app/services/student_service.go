package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/takeo/dojomaster/internal/app/models"
	"github.com/takeo/dojomaster/internal/app/models/dto"
	"github.com/takeo/dojomaster/internal/app/repositories"
	"github.com/takeo/dojomaster/internal/pkg/apperrors"
	"github.com/takeo/dojomaster/internal/pkg/auth"
)

// FallbackRank is assigned at student creation when the ladder is empty and
// no rank was supplied.
const FallbackRank = "Faixa Branca"

// StudentService defines the interface for student-related operations.
type StudentService interface {
	ListStudents(ctx context.Context) ([]models.Student, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	GetStudent(ctx context.Context, id string) (*models.Student, error)
	// CreateStudent appends a Student-role user and its profile in one
	// logical step (two sequential writes, no rollback).
	CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (*models.User, *models.Student, error)
	// UpdateStudent merges non-nil patch fields onto the stored record.
	UpdateStudent(ctx context.Context, id string, patch dto.UpdateStudentRequest) (*models.Student, error)
	// DeleteStudent removes the profile only; the owning user stays behind.
	DeleteStudent(ctx context.Context, id string) error
}

// StudentServiceConfig carries the account synthesis settings.
type StudentServiceConfig struct {
	// DefaultPassword is given to every minted account.
	DefaultPassword string
	// EmailDomain is the suffix of synthesized logins.
	EmailDomain string
	// HashPasswords stores the minted credential bcrypt-hashed.
	HashPasswords bool
}

type studentServiceImpl struct {
	userRepo    *repositories.UserRepository
	studentRepo *repositories.StudentRepository
	rankRepo    *repositories.RankRepository
	cfg         StudentServiceConfig
	logger      zerolog.Logger
}

// NewStudentService creates a new student service instance.
func NewStudentService(
	userRepo *repositories.UserRepository,
	studentRepo *repositories.StudentRepository,
	rankRepo *repositories.RankRepository,
	cfg StudentServiceConfig,
	logger zerolog.Logger,
) StudentService {
	return &studentServiceImpl{
		userRepo:    userRepo,
		studentRepo: studentRepo,
		rankRepo:    rankRepo,
		cfg:         cfg,
		logger:      logger,
	}
}

func (s *studentServiceImpl) ListStudents(ctx context.Context) ([]models.Student, error) {
	return s.studentRepo.GetAll(ctx)
}

func (s *studentServiceImpl) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.GetAll(ctx)
}

func (s *studentServiceImpl) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// loginFromName derives the account login from the first whitespace-delimited
// token of the student's name, lower-cased.
func loginFromName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "user"
	}
	return strings.ToLower(fields[0])
}

func (s *studentServiceImpl) CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (*models.User, *models.Student, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, nil, apperrors.NewValidationError("name is required")
	}

	currentRank := req.CurrentRank
	if currentRank == "" {
		ladder, err := s.rankRepo.GetAll(ctx)
		if err != nil {
			return nil, nil, err
		}
		if len(ladder) > 0 {
			currentRank = ladder[0].Name
		} else {
			currentRank = FallbackRank
		}
	}

	enrollment := req.EnrollmentDate
	if enrollment == "" {
		enrollment = time.Now().Format("2006-01-02")
	}

	password := s.cfg.DefaultPassword
	if s.cfg.HashPasswords {
		hashed, err := auth.HashPassword(password)
		if err != nil {
			return nil, nil, err
		}
		password = hashed
	}

	login := loginFromName(req.Name)
	user := models.User{
		ID:       uuid.NewString(),
		Email:    login + "@" + s.cfg.EmailDomain,
		Password: password,
		Role:     models.RoleStudent,
	}
	student := models.Student{
		ID:             uuid.NewString(),
		UserID:         user.ID,
		Name:           req.Name,
		BirthDate:      req.BirthDate,
		Phone:          req.Phone,
		CurrentRank:    currentRank,
		EnrollmentDate: enrollment,
		Notes:          req.Notes,
	}

	// Two sequential writes with no rollback: a failure between them leaves
	// an orphan user, an accepted risk at this scale.
	if err := s.userRepo.Append(ctx, user); err != nil {
		return nil, nil, err
	}
	if err := s.studentRepo.Append(ctx, student); err != nil {
		return nil, nil, err
	}

	s.logger.Info().
		Str("studentId", student.ID).
		Str("login", user.Email).
		Str("rank", student.CurrentRank).
		Msg("Student created")
	return &user, &student, nil
}

func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id string, patch dto.UpdateStudentRequest) (*models.Student, error) {
	existing, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *existing
	if patch.Name != nil {
		updated.Name = *patch.Name
	}
	if patch.BirthDate != nil {
		updated.BirthDate = *patch.BirthDate
	}
	if patch.Phone != nil {
		updated.Phone = *patch.Phone
	}
	if patch.CurrentRank != nil {
		updated.CurrentRank = *patch.CurrentRank
	}
	if patch.EnrollmentDate != nil {
		updated.EnrollmentDate = *patch.EnrollmentDate
	}
	if patch.Notes != nil {
		updated.Notes = *patch.Notes
	}

	if err := s.studentRepo.Update(ctx, updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id string) error {
	if err := s.studentRepo.Delete(ctx, id); err != nil {
		return err
	}
	// The owning user record is intentionally left in place.
	s.logger.Info().Str("studentId", id).Msg("Student deleted, user account retained")
	return nil
}
