package dto

import "github.com/takeo/dojomaster/internal/app/models"

// CreateStudentRequest carries the profile for a new student. Every field
// except Name is optional and defaulted by the service.
type CreateStudentRequest struct {
	Name           string `json:"name" binding:"required"`
	BirthDate      string `json:"birthDate"`
	Phone          string `json:"phone"`
	CurrentRank    string `json:"currentRank"`
	EnrollmentDate string `json:"enrollmentDate"`
	Notes          string `json:"notes"`
}

// UpdateStudentRequest is a merge patch: nil fields keep their stored value.
type UpdateStudentRequest struct {
	Name           *string `json:"name"`
	BirthDate      *string `json:"birthDate"`
	Phone          *string `json:"phone"`
	CurrentRank    *string `json:"currentRank"`
	EnrollmentDate *string `json:"enrollmentDate"`
	Notes          *string `json:"notes"`
}

// CreateStudentResponse returns both records appended by student creation.
type CreateStudentResponse struct {
	User    UserResponse   `json:"user"`
	Student models.Student `json:"student"`
}

// NextRankResponse reports the next rung for a student. NextRank is null when
// the student is on the last rung or the current rank is not in the ladder.
type NextRankResponse struct {
	CurrentRank string                 `json:"currentRank"`
	NextRank    *models.RankDefinition `json:"nextRank"`
}
