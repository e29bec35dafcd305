package repositories

import (
	"context"
	"sort"

	"github.com/takeo/dojomaster/internal/app/models"
	"github.com/takeo/dojomaster/internal/store"
)

// ExamRepository provides access to the exam records collection. Exams are
// append-only; there is no update or delete.
type ExamRepository struct {
	exams *collection[models.ExamRecord]
}

// NewExamRepository creates a new ExamRepository.
func NewExamRepository(s store.Store) *ExamRepository {
	return &ExamRepository{exams: newCollection[models.ExamRecord](s, KeyExams)}
}

// GetAll returns all exam records in storage order.
func (r *ExamRepository) GetAll(ctx context.Context) ([]models.ExamRecord, error) {
	return r.exams.load(ctx)
}

// GetByStudentID returns the exam history for one student, most recent first.
// Dates are ISO-8601 date strings, so lexicographic order is date order; the
// stable sort keeps insertion order for equal dates.
func (r *ExamRepository) GetByStudentID(ctx context.Context, studentID string) ([]models.ExamRecord, error) {
	exams, err := r.exams.load(ctx)
	if err != nil {
		return nil, err
	}

	history := make([]models.ExamRecord, 0, len(exams))
	for _, e := range exams {
		if e.StudentID == studentID {
			history = append(history, e)
		}
	}
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Date > history[j].Date
	})
	return history, nil
}

// Append adds an exam record to the collection.
func (r *ExamRepository) Append(ctx context.Context, exam models.ExamRecord) error {
	return r.exams.mutate(ctx, func(exams []models.ExamRecord) ([]models.ExamRecord, error) {
		return append(exams, exam), nil
	})
}
