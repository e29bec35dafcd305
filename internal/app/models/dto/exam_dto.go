package dto

import "github.com/takeo/dojomaster/internal/app/models"

// CreateExamRequest carries a new evaluation event. Date defaults to today
// and Outcome to Pending when omitted.
type CreateExamRequest struct {
	StudentID  string             `json:"studentId" binding:"required"`
	TargetRank string             `json:"targetRank" binding:"required"`
	Date       string             `json:"date"`
	Outcome    models.ExamOutcome `json:"outcome"`
	Notes      string             `json:"notes"`
}
