package handlers

import (
	"net/http"

	"vendor_hub_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// ReportHandler holds the report service.
type ReportHandler struct {
	reportService services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(rs services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: rs}
}

// GetDashboardSummary provides a summary of order and stock metrics for the employee home screen.
func (h *ReportHandler) GetDashboardSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.reportService.GetSummary())
}
