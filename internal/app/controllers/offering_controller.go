package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courseregistry/internal/app/models"
	"github.com/yigit/courseregistry/internal/app/models/dto"
	"github.com/yigit/courseregistry/internal/app/services"
	"github.com/yigit/courseregistry/internal/middleware"
	"github.com/yigit/courseregistry/internal/pkg/apperrors"
	"github.com/yigit/courseregistry/internal/pkg/helpers"
	"github.com/yigit/courseregistry/internal/pkg/validation"
)

// OfferingController handles course offerings and enrollment
type OfferingController struct {
	registrar services.RegistrarService
}

// NewOfferingController creates a new OfferingController
func NewOfferingController(registrar services.RegistrarService) *OfferingController {
	return &OfferingController{
		registrar: registrar,
	}
}

// offeringKey reads the offering path parameters, writing a 400 response for a malformed date
func offeringKey(ctx *gin.Context) (models.OfferingKey, bool) {
	key := models.OfferingKey{Course: ctx.Param("course"), Date: ctx.Param("date")}
	if !validation.ValidDate(key.Date) {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("date must be in YYYY-MM-DD form: "+key.Date))
		return key, false
	}
	return key, true
}

// CreateOffering schedules a catalog course
// @Summary Create a course offering
// @Tags offerings
// @Accept json
// @Produce json
// @Param request body dto.CreateOfferingRequest true "Offering information"
// @Success 201 {object} dto.APIResponse{data=models.CourseOffering}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 409 {object} dto.ErrorResponse "Offering exists or list is full"
// @Router /offerings [post]
func (c *OfferingController) CreateOffering(ctx *gin.Context) {
	var req dto.CreateOfferingRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	offering, err := c.registrar.CreateOffering(ctx.Request.Context(), req.Course, req.Room, req.Date)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(offering))
}

// GetAllOfferings lists the offerings
// @Summary List offerings
// @Tags offerings
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.ListResponse}
// @Router /offerings [get]
func (c *OfferingController) GetAllOfferings(ctx *gin.Context) {
	items, err := c.registrar.ListOfferings(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	items, pagination := helpers.Paginate(items, page, size)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewListResponse(items, pagination)))
}

// GetOffering retrieves an offering
// @Summary Get an offering
// @Tags offerings
// @Produce json
// @Param course path string true "Course name"
// @Param date path string true "Start date"
// @Success 200 {object} dto.APIResponse{data=models.CourseOffering}
// @Failure 400 {object} dto.ErrorResponse "Malformed date"
// @Failure 404 {object} dto.ErrorResponse "Offering not found"
// @Router /offerings/{course}/{date} [get]
func (c *OfferingController) GetOffering(ctx *gin.Context) {
	key, ok := offeringKey(ctx)
	if !ok {
		return
	}

	offering, err := c.registrar.GetOffering(ctx.Request.Context(), key)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(offering))
}

// DescribeOffering returns the full description of an offering
// @Summary Describe an offering
// @Tags offerings
// @Produce json
// @Param course path string true "Course name"
// @Param date path string true "Start date"
// @Success 200 {object} dto.APIResponse{data=dto.DescriptionResponse}
// @Router /offerings/{course}/{date}/describe [get]
func (c *OfferingController) DescribeOffering(ctx *gin.Context) {
	key, ok := offeringKey(ctx)
	if !ok {
		return
	}

	text, err := c.registrar.DescribeOffering(ctx.Request.Context(), key)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.DescriptionResponse{Text: text}))
}

// EnrollStudent adds a student to an offering
// @Summary Enroll a student
// @Tags offerings
// @Accept json
// @Produce json
// @Param course path string true "Course name"
// @Param date path string true "Start date"
// @Param request body dto.EnrollStudentRequest true "Student"
// @Success 200 {object} dto.APIResponse{data=models.EnrollmentResult}
// @Failure 404 {object} dto.ErrorResponse "Offering or student not found"
// @Failure 409 {object} dto.ErrorResponse "Already enrolled or offering is full"
// @Failure 422 {object} dto.ErrorResponse "Prerequisites not met"
// @Router /offerings/{course}/{date}/students [post]
func (c *OfferingController) EnrollStudent(ctx *gin.Context) {
	key, ok := offeringKey(ctx)
	if !ok {
		return
	}
	var req dto.EnrollStudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	result, err := c.registrar.EnrollStudent(ctx.Request.Context(), key, req.Student)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if result.Status == models.EnrollmentRefused {
		refusal := apperrors.NewCustomError(apperrors.ErrPrerequisiteNotMet,
			req.Student+" is missing "+strings.Join(result.Missing, ", ")).
			WithDetails(map[string]interface{}{"missing": result.Missing})
		middleware.HandleAPIError(ctx, refusal)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result))
}

// DeleteOffering cancels an offering
// @Summary Delete an offering
// @Tags offerings
// @Param course path string true "Course name"
// @Param date path string true "Start date"
// @Success 204 "Offering removed"
// @Failure 400 {object} dto.ErrorResponse "Malformed date"
// @Failure 404 {object} dto.ErrorResponse "Offering not found"
// @Router /offerings/{course}/{date} [delete]
func (c *OfferingController) DeleteOffering(ctx *gin.Context) {
	key, ok := offeringKey(ctx)
	if !ok {
		return
	}

	if err := c.registrar.RemoveOffering(ctx.Request.Context(), key); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
