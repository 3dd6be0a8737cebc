package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courseregistry/internal/app/models/dto"
	"github.com/yigit/courseregistry/internal/app/services"
	"github.com/yigit/courseregistry/internal/middleware"
)

// RegistryController reports on the registrar as a whole
type RegistryController struct {
	registrar services.RegistrarService
}

// NewRegistryController creates a new RegistryController
func NewRegistryController(registrar services.RegistrarService) *RegistryController {
	return &RegistryController{registrar: registrar}
}

// GetStats reports how full the catalogs are
// @Summary Registry statistics
// @Tags registry
// @Produce json
// @Success 200 {object} dto.APIResponse{data=models.RegistryStats}
// @Router /stats [get]
func (c *RegistryController) GetStats(ctx *gin.Context) {
	stats, err := c.registrar.Stats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats))
}
