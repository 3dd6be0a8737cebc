package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courseregistry/internal/app/models/dto"
	"github.com/yigit/courseregistry/internal/app/services"
	"github.com/yigit/courseregistry/internal/middleware"
	"github.com/yigit/courseregistry/internal/pkg/helpers"
)

// StudentController handles student roster operations
type StudentController struct {
	registrar services.RegistrarService
}

// NewStudentController creates a new StudentController
func NewStudentController(registrar services.RegistrarService) *StudentController {
	return &StudentController{
		registrar: registrar,
	}
}

// CreateStudent handles student creation
// @Summary Create a new student
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=models.Student}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Student already exists or roster is full"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	student, err := c.registrar.CreateStudent(ctx.Request.Context(), req.Name, req.Identifier, req.Age)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(student))
}

// GetAllStudents lists the roster
// @Summary List students
// @Tags students
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.ListResponse}
// @Router /students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	items, err := c.registrar.ListStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	items, pagination := helpers.Paginate(items, page, size)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewListResponse(items, pagination)))
}

// GetStudent retrieves a student by name
// @Summary Get student by name
// @Tags students
// @Produce json
// @Param name path string true "Student name"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{name} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	student, err := c.registrar.GetStudent(ctx.Request.Context(), ctx.Param("name"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student))
}

// DescribeStudent returns the full description of a student
// @Summary Describe a student
// @Tags students
// @Produce json
// @Param name path string true "Student name"
// @Success 200 {object} dto.APIResponse{data=dto.DescriptionResponse}
// @Router /students/{name}/describe [get]
func (c *StudentController) DescribeStudent(ctx *gin.Context) {
	text, err := c.registrar.DescribeStudent(ctx.Request.Context(), ctx.Param("name"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.DescriptionResponse{Text: text}))
}

// AddCompletedCourse records a completed course for a student
// @Summary Add a completed course
// @Tags students
// @Accept json
// @Produce json
// @Param name path string true "Student name"
// @Param request body dto.AddCompletedCourseRequest true "Completed course"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 404 {object} dto.ErrorResponse "Student or course not found"
// @Failure 409 {object} dto.ErrorResponse "Course already completed or list is full"
// @Router /students/{name}/courses [post]
func (c *StudentController) AddCompletedCourse(ctx *gin.Context) {
	var req dto.AddCompletedCourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	student, err := c.registrar.AddCompletedCourse(ctx.Request.Context(), ctx.Param("name"), req.Course)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student))
}

// DeleteStudent removes a student from the roster
// @Summary Delete a student
// @Tags students
// @Param name path string true "Student name"
// @Success 204 "Student removed from the roster"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{name} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if err := c.registrar.RemoveStudent(ctx.Request.Context(), ctx.Param("name")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
