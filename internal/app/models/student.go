package models

// Student defines the dojo profile attached to a Student-role user.
//
// CurrentRank stores a rank name, not a rank id; it must match the Name of
// some RankDefinition for ladder lookups to resolve. Access goes through
// RankService so a later move to id references stays local.
type Student struct {
	ID             string `json:"id"`
	UserID         string `json:"userId"`
	Name           string `json:"name"`
	BirthDate      string `json:"birthDate"`
	Phone          string `json:"phone"`
	CurrentRank    string `json:"currentRank"`
	EnrollmentDate string `json:"enrollmentDate"`
	Notes          string `json:"notes"`
}
