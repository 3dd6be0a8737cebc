package models

// Course is the read view of a catalog course.
type Course struct {
	Name          string   `json:"name" example:"CS201"`
	Description   string   `json:"description" example:"Data Structures"`
	Duration      int      `json:"duration" example:"1"`
	Prerequisites []string `json:"prerequisites"`
	References    int      `json:"references" example:"2"` // live holders of the course
}
