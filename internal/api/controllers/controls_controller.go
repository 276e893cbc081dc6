package controllers

import (
	"github.com/gin-gonic/gin"
	"nistq/internal/services"
	"nistq/pkg/utils"
)

type ControlsController struct {
	controlService services.ControlServiceInterface
}

func NewControlsController(controlService services.ControlServiceInterface) *ControlsController {
	return &ControlsController{
		controlService: controlService,
	}
}

func (ctl *ControlsController) ListFamilies(c *gin.Context) {
	families, err := ctl.controlService.ListFamilies(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, families, "Control families fetched successfully")
}

func (ctl *ControlsController) GetFamily(c *gin.Context) {
	family, err := ctl.controlService.GetFamily(c.Request.Context(), c.Param("code"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, family, "Control family fetched successfully")
}
