package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/takeo/dojomaster/internal/app/models"
	"github.com/takeo/dojomaster/internal/app/models/dto"
	"github.com/takeo/dojomaster/internal/app/repositories"
	"github.com/takeo/dojomaster/internal/pkg/apperrors"
)

// ExamService defines the interface for exam-related operations.
type ExamService interface {
	ListExams(ctx context.Context) ([]models.ExamRecord, error)
	// History returns one student's exams, most recent first.
	History(ctx context.Context, studentID string) ([]models.ExamRecord, error)
	// CreateExam appends an evaluation event. A Passed outcome promotes the
	// referenced student to exactly the examined rank.
	CreateExam(ctx context.Context, req dto.CreateExamRequest) (*models.ExamRecord, error)
}

// ExamServiceConfig carries the promotion policy settings.
type ExamServiceConfig struct {
	// RequireAdjacent rejects passed exams whose target is not the student's
	// immediate next rung. Off by default: the historical rule promotes to
	// whatever rank was examined, a lower one included.
	RequireAdjacent bool
}

type examServiceImpl struct {
	examRepo    *repositories.ExamRepository
	studentRepo *repositories.StudentRepository
	rankService RankService
	cfg         ExamServiceConfig
	logger      zerolog.Logger
}

// NewExamService creates a new exam service instance.
func NewExamService(
	examRepo *repositories.ExamRepository,
	studentRepo *repositories.StudentRepository,
	rankService RankService,
	cfg ExamServiceConfig,
	logger zerolog.Logger,
) ExamService {
	return &examServiceImpl{
		examRepo:    examRepo,
		studentRepo: studentRepo,
		rankService: rankService,
		cfg:         cfg,
		logger:      logger,
	}
}

func (s *examServiceImpl) ListExams(ctx context.Context) ([]models.ExamRecord, error) {
	return s.examRepo.GetAll(ctx)
}

func (s *examServiceImpl) History(ctx context.Context, studentID string) ([]models.ExamRecord, error) {
	return s.examRepo.GetByStudentID(ctx, studentID)
}

func (s *examServiceImpl) validateExam(req dto.CreateExamRequest) error {
	if req.StudentID == "" {
		return apperrors.NewValidationError("studentId is required")
	}
	if req.TargetRank == "" {
		return apperrors.NewValidationError("targetRank is required")
	}
	switch req.Outcome {
	case "", models.OutcomePassed, models.OutcomeFailed, models.OutcomePending:
		return nil
	default:
		return apperrors.NewValidationError("outcome must be Passed, Failed or Pending")
	}
}

func (s *examServiceImpl) CreateExam(ctx context.Context, req dto.CreateExamRequest) (*models.ExamRecord, error) {
	if err := s.validateExam(req); err != nil {
		return nil, err
	}

	exam := models.ExamRecord{
		ID:         uuid.NewString(),
		StudentID:  req.StudentID,
		TargetRank: req.TargetRank,
		Date:       req.Date,
		Outcome:    req.Outcome,
		Notes:      req.Notes,
	}
	if exam.Date == "" {
		exam.Date = time.Now().Format("2006-01-02")
	}
	if exam.Outcome == "" {
		exam.Outcome = models.OutcomePending
	}

	if exam.Outcome == models.OutcomePassed && s.cfg.RequireAdjacent {
		if err := s.checkAdjacent(ctx, exam); err != nil {
			return nil, err
		}
	}

	if err := s.examRepo.Append(ctx, exam); err != nil {
		return nil, err
	}

	if exam.Outcome == models.OutcomePassed {
		if err := s.promote(ctx, exam); err != nil {
			// The exam record is already persisted; the promotion is a
			// follow-up write on the student, reported but not rolled back.
			return nil, err
		}
	}
	return &exam, nil
}

// checkAdjacent enforces the strict promotion policy: the examined rank must
// be the student's immediate next rung.
func (s *examServiceImpl) checkAdjacent(ctx context.Context, exam models.ExamRecord) error {
	student, err := s.studentRepo.GetByID(ctx, exam.StudentID)
	if err != nil {
		return err
	}
	next, err := s.rankService.NextRank(ctx, student.CurrentRank)
	if err != nil {
		return err
	}
	if next == nil || next.Name != exam.TargetRank {
		return apperrors.ErrExamNotAdjacent
	}
	return nil
}

// promote sets the student's current rank to the examined rank when the two
// differ. The comparison is strict inequality, not ladder order: an exam for
// a lower rank moves the student down. That demotion quirk is the documented
// behavior of this system and is kept as-is.
func (s *examServiceImpl) promote(ctx context.Context, exam models.ExamRecord) error {
	student, err := s.studentRepo.GetByID(ctx, exam.StudentID)
	if errors.Is(err, apperrors.ErrStudentNotFound) {
		// An exam may reference a student that no longer exists; the record
		// stands, the promotion just has nobody to apply to.
		s.logger.Warn().
			Str("examId", exam.ID).
			Str("studentId", exam.StudentID).
			Msg("Passed exam references unknown student, no promotion applied")
		return nil
	}
	if err != nil {
		return err
	}
	if student.CurrentRank == exam.TargetRank {
		return nil
	}

	updated := *student
	updated.CurrentRank = exam.TargetRank
	if err := s.studentRepo.Update(ctx, updated); err != nil {
		return err
	}

	s.logger.Info().
		Str("studentId", student.ID).
		Str("from", student.CurrentRank).
		Str("to", exam.TargetRank).
		Msg("Student promoted")
	return nil
}
