package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tourvisto/internal/models/request_models"
	"tourvisto/internal/services"
	"tourvisto/pkg/utils"
)

type TripController struct {
	tripService   services.TripService
	exportService services.ExportService
}

func NewTripController(tripService services.TripService, exportService services.ExportService) *TripController {
	return &TripController{
		tripService:   tripService,
		exportService: exportService,
	}
}

// CreateTrip runs the full generation pipeline and returns the new trip id.
func (t *TripController) CreateTrip(c *gin.Context) {
	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := t.tripService.GenerateTrip(c.Request.Context(), &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Trip created successfully")
}

func (t *TripController) GetTripById(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	trip, err := t.tripService.GetTrip(c.Request.Context(), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip fetched successfully")
}

func (t *TripController) GetAllTrips(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "8")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	trips, err := t.tripService.ListTrips(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

// DownloadTripPDF streams the itinerary as an attachment.
func (t *TripController) DownloadTripPDF(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	trip, err := t.tripService.GetTrip(c.Request.Context(), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	pdfBytes, err := t.exportService.RenderTripPDF(trip)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to render trip PDF")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="trip-%s.pdf"`, tripID))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
