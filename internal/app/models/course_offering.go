package models

// OfferingKey identifies an offering. A course can be offered on several dates.
type OfferingKey struct {
	Course string `json:"course" example:"CS201"`
	Date   string `json:"date" example:"2024-01-10"`
}

func (k OfferingKey) String() string {
	return k.Course + "@" + k.Date
}

// CourseOffering is the read view of an offering.
type CourseOffering struct {
	OfferingKey
	Room      string   `json:"room" example:"Room1"`
	Attendees []string `json:"attendees"`
	Capacity  int      `json:"capacity" example:"15"`
}
