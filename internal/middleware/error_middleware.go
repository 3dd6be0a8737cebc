package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courseregistry/internal/app/models/dto"
	"github.com/yigit/courseregistry/internal/pkg/apperrors"
)

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	status, detail := classify(err)
	c.JSON(status, dto.NewErrorResponse(detail))
}

// classify maps an application error to a status code and error detail
func classify(err error) (int, *dto.ErrorDetail) {
	var custom *apperrors.CustomError
	hasCustom := errors.As(err, &custom)

	var detail *dto.ErrorDetail
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		status = http.StatusNotFound
		detail = dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())
	case errors.Is(err, apperrors.ErrResourceAlreadyExists):
		status = http.StatusConflict
		detail = dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error())
	case errors.Is(err, apperrors.ErrCapacityExceeded):
		status = http.StatusConflict
		detail = dto.NewErrorDetail(dto.ErrorCodeCapacityExceeded, err.Error())
	case errors.Is(err, apperrors.ErrPrerequisiteNotMet):
		status = http.StatusUnprocessableEntity
		detail = dto.NewErrorDetail(dto.ErrorCodePrerequisiteNotMet, err.Error())
	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrBadRequest):
		status = http.StatusBadRequest
		detail = dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())
	case errors.Is(err, apperrors.ErrRegistrarClosed):
		status = http.StatusServiceUnavailable
		detail = dto.NewErrorDetail(dto.ErrorCodeRegistrarClosed, "Registrar is shutting down")
	default:
		detail = dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
		return status, detail
	}

	if hasCustom && custom.Details != nil {
		detail = detail.WithDetails(custom.Details)
	}
	return status, detail
}

// Recovery turns panics into 500 responses. Reference consistency violations are
// logged by the registrar before they reach this point.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		lgr := RequestLogger(c)
		if err, ok := recovered.(error); ok && errors.Is(err, apperrors.ErrReferenceConsistency) {
			lgr.Error().Err(err).Msg("Request aborted by a reference consistency violation")
		} else {
			lgr.Error().Interface("panic", recovered).Msg("Request panicked")
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	})
}
