package dto

// CreateStudentRequest represents the request to add a student to the roster
type CreateStudentRequest struct {
	Name       string `json:"name" binding:"required" example:"Alice"`
	Identifier string `json:"identifier" binding:"required" example:"111"`
	Age        int    `json:"age" binding:"gte=0,lte=150" example:"20"`
}

// AddCompletedCourseRequest names a course the student has completed
type AddCompletedCourseRequest struct {
	Course string `json:"course" binding:"required" example:"CS101"`
}
