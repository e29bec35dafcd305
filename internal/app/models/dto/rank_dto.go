package dto

// UpdateRankRequest carries an edited rank definition. The whole record is
// replaced by id; in practice only the requirement text changes.
type UpdateRankRequest struct {
	Name         string `json:"name" binding:"required"`
	Order        int    `json:"order" binding:"required"`
	Requirements string `json:"requirements"`
	Color        string `json:"color"`
}
