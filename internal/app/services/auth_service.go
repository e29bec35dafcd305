package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/takeo/dojomaster/internal/app/models"
	"github.com/takeo/dojomaster/internal/app/models/dto"
	"github.com/takeo/dojomaster/internal/app/repositories"
	"github.com/takeo/dojomaster/internal/pkg/apperrors"
	"github.com/takeo/dojomaster/internal/pkg/auth"
)

// AuthService defines the interface for login and session routing.
type AuthService interface {
	// Login authenticates a credential pair against the selected role. The
	// three failure modes are distinguishable: ErrInvalidCredentials when no
	// user matches, ErrRoleMismatch when the matched user has a different
	// role, and ErrStudentProfileMissing when a Student-role login has no
	// profile record.
	Login(ctx context.Context, req dto.LoginRequest) (auth.Session, error)
	// Logout drops the session; unknown ids are tolerated.
	Logout(sessionID string)
}

type authServiceImpl struct {
	userRepo      *repositories.UserRepository
	studentRepo   *repositories.StudentRepository
	sessions      *auth.SessionManager
	hashPasswords bool
	logger        zerolog.Logger
}

// NewAuthService creates a new auth service instance.
func NewAuthService(
	userRepo *repositories.UserRepository,
	studentRepo *repositories.StudentRepository,
	sessions *auth.SessionManager,
	hashPasswords bool,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		userRepo:      userRepo,
		studentRepo:   studentRepo,
		sessions:      sessions,
		hashPasswords: hashPasswords,
		logger:        logger,
	}
}

func (s *authServiceImpl) Login(ctx context.Context, req dto.LoginRequest) (auth.Session, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return auth.Session{}, err
	}
	if user == nil || !auth.CheckPassword(user.Password, req.Password, s.hashPasswords) {
		return auth.Session{}, apperrors.ErrInvalidCredentials
	}

	if user.Role != req.Role {
		return auth.Session{}, apperrors.ErrRoleMismatch
	}

	var student *models.Student
	if user.Role == models.RoleStudent {
		student, err = s.studentRepo.GetByUserID(ctx, user.ID)
		if err != nil {
			return auth.Session{}, err
		}
	}

	session := s.sessions.Create(*user, student)
	s.logger.Info().
		Str("userId", user.ID).
		Str("role", string(user.Role)).
		Msg("Login succeeded")
	return session, nil
}

func (s *authServiceImpl) Logout(sessionID string) {
	s.sessions.Delete(sessionID)
}
