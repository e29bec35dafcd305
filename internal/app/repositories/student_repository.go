package repositories

import (
	"context"

	"github.com/takeo/dojomaster/internal/app/models"
	"github.com/takeo/dojomaster/internal/pkg/apperrors"
	"github.com/takeo/dojomaster/internal/store"
)

// StudentRepository provides access to the students collection.
type StudentRepository struct {
	students *collection[models.Student]
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(s store.Store) *StudentRepository {
	return &StudentRepository{students: newCollection[models.Student](s, KeyStudents)}
}

// GetAll returns all students in storage order.
func (r *StudentRepository) GetAll(ctx context.Context) ([]models.Student, error) {
	return r.students.load(ctx)
}

// GetByID returns the student with the given id, or ErrStudentNotFound.
func (r *StudentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	students, err := r.students.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range students {
		if students[i].ID == id {
			return &students[i], nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

// GetByUserID returns the student owned by the given user id, or
// ErrStudentProfileMissing when the user has no profile.
func (r *StudentRepository) GetByUserID(ctx context.Context, userID string) (*models.Student, error) {
	students, err := r.students.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range students {
		if students[i].UserID == userID {
			return &students[i], nil
		}
	}
	return nil, apperrors.ErrStudentProfileMissing
}

// Append adds a student to the collection.
func (r *StudentRepository) Append(ctx context.Context, student models.Student) error {
	return r.students.mutate(ctx, func(students []models.Student) ([]models.Student, error) {
		return append(students, student), nil
	})
}

// Update replaces the student matching by id. ErrStudentNotFound when the id
// is absent; nothing is written in that case.
func (r *StudentRepository) Update(ctx context.Context, student models.Student) error {
	return r.students.mutate(ctx, func(students []models.Student) ([]models.Student, error) {
		for i := range students {
			if students[i].ID == student.ID {
				students[i] = student
				return students, nil
			}
		}
		return nil, apperrors.ErrStudentNotFound
	})
}

// Delete removes the student by id. The owning user is left in place; orphan
// users are an accepted behavior, not an oversight.
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	return r.students.mutate(ctx, func(students []models.Student) ([]models.Student, error) {
		for i := range students {
			if students[i].ID == id {
				return append(students[:i], students[i+1:]...), nil
			}
		}
		return nil, apperrors.ErrStudentNotFound
	})
}
