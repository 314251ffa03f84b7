package controllers

import (
	"github.com/gin-gonic/gin"

	"tourvisto/internal/services"
	"tourvisto/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardService
}

func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

func (d *DashboardController) GetStats(c *gin.Context) {
	stats, err := d.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Dashboard stats fetched successfully")
}

func (d *DashboardController) GetUserGrowth(c *gin.Context) {
	growth, err := d.dashboardService.GetUserGrowth(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, growth, "User growth fetched successfully")
}

func (d *DashboardController) GetTripsByTravelStyle(c *gin.Context) {
	mix, err := d.dashboardService.GetTripsByTravelStyle(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, mix, "Trips by travel style fetched successfully")
}
