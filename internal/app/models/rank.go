package models

// RankDefinition is one rung of the promotion ladder. Order strictly defines
// the ladder position, lower = earlier. Name doubles as the foreign key used
// by Student.CurrentRank and ExamRecord.TargetRank.
type RankDefinition struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Order        int    `json:"order"`
	Requirements string `json:"requirements"`
	Color        string `json:"color"`
}
