package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courseregistry/internal/app/models/dto"
	"github.com/yigit/courseregistry/internal/app/services"
	"github.com/yigit/courseregistry/internal/middleware"
	"github.com/yigit/courseregistry/internal/pkg/helpers"
)

// CourseController handles course catalog operations
type CourseController struct {
	registrar services.RegistrarService
}

// NewCourseController creates a new CourseController
func NewCourseController(registrar services.RegistrarService) *CourseController {
	return &CourseController{
		registrar: registrar,
	}
}

// CreateCourse handles course creation
// @Summary Create a new course
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.APIResponse{data=models.Course} "Course created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Course already exists or catalog is full"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	course, err := c.registrar.CreateCourse(ctx.Request.Context(), req.Name, req.Description, req.Duration)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(course))
}

// GetAllCourses lists the catalog
// @Summary List courses
// @Tags courses
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.ListResponse}
// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	items, err := c.registrar.ListCourses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	items, pagination := helpers.Paginate(items, page, size)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewListResponse(items, pagination)))
}

// GetCourse retrieves a course by name
// @Summary Get course by name
// @Tags courses
// @Produce json
// @Param name path string true "Course name"
// @Success 200 {object} dto.APIResponse{data=models.Course}
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{name} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	course, err := c.registrar.GetCourse(ctx.Request.Context(), ctx.Param("name"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(course))
}

// DescribeCourse returns the full description of a course
// @Summary Describe a course
// @Tags courses
// @Produce json
// @Param name path string true "Course name"
// @Success 200 {object} dto.APIResponse{data=dto.DescriptionResponse}
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{name}/describe [get]
func (c *CourseController) DescribeCourse(ctx *gin.Context) {
	text, err := c.registrar.DescribeCourse(ctx.Request.Context(), ctx.Param("name"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.DescriptionResponse{Text: text}))
}

// AddPrerequisite records a prerequisite for a course
// @Summary Add a prerequisite
// @Tags courses
// @Accept json
// @Produce json
// @Param name path string true "Course name"
// @Param request body dto.AddPrerequisiteRequest true "Prerequisite"
// @Success 200 {object} dto.APIResponse{data=models.Course}
// @Failure 400 {object} dto.ErrorResponse "Invalid prerequisite"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 409 {object} dto.ErrorResponse "Prerequisite exists or list is full"
// @Router /courses/{name}/prerequisites [post]
func (c *CourseController) AddPrerequisite(ctx *gin.Context) {
	var req dto.AddPrerequisiteRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	course, err := c.registrar.AddPrerequisite(ctx.Request.Context(), ctx.Param("name"), req.Prerequisite)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(course))
}

// DeleteCourse removes a course from the catalog. Offerings and students holding the
// course keep it alive.
// @Summary Delete a course
// @Tags courses
// @Param name path string true "Course name"
// @Success 204 "Course removed from the catalog"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{name} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	if err := c.registrar.RemoveCourse(ctx.Request.Context(), ctx.Param("name")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
