package models

// Project is one published robotics project as stored in the hosted backend.
// Cost is nil when the backend has no price for it.
type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Difficulty  string   `json:"difficulty"`
	Cost        *float64 `json:"cost"`
}
