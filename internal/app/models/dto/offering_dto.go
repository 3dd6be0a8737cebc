package dto

// CreateOfferingRequest represents the request to schedule a course
type CreateOfferingRequest struct {
	Course string `json:"course" binding:"required" example:"CS201"`
	Room   string `json:"room" binding:"required" example:"Room1"`
	Date   string `json:"date" binding:"required,offeringdate" example:"2024-01-10"`
}

// EnrollStudentRequest names the student to enroll
type EnrollStudentRequest struct {
	Student string `json:"student" binding:"required" example:"Alice"`
}
