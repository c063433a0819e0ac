package model

// swagger:model LearningPath
type LearningPath struct {
	ID          uint     `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Career      string   `json:"career"`
	Courses     []Course `json:"courses"`
}
