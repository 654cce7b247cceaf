package dto

// HeatmapResponse is a users-by-skills matrix; matrix rows align with
// the users slice, columns with the skills slice.
type HeatmapResponse struct {
	Skills []string    `json:"skills"`
	Users  []string    `json:"users"`
	Matrix [][]float64 `json:"matrix"`
}
