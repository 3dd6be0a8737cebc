package dto

// CreateCourseRequest represents the request to add a course to the catalog
type CreateCourseRequest struct {
	Name        string `json:"name" binding:"required" example:"CS201"`
	Description string `json:"description" example:"Data Structures"`
	Duration    int    `json:"duration" binding:"required,min=1" example:"1"`
}

// AddPrerequisiteRequest names the course that becomes a prerequisite
type AddPrerequisiteRequest struct {
	Prerequisite string `json:"prerequisite" binding:"required" example:"CS101"`
}
