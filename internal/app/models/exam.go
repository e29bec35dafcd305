package models

// ExamOutcome is the result of an evaluation event.
type ExamOutcome string

const (
	OutcomePassed  ExamOutcome = "Passed"
	OutcomeFailed  ExamOutcome = "Failed"
	OutcomePending ExamOutcome = "Pending"
)

// ExamRecord is one evaluation event. Records are immutable after creation;
// there is no update or delete operation.
type ExamRecord struct {
	ID         string      `json:"id"`
	StudentID  string      `json:"studentId"`
	TargetRank string      `json:"targetRank"`
	Date       string      `json:"date"`
	Outcome    ExamOutcome `json:"outcome"`
	Notes      string      `json:"notes"`
}
