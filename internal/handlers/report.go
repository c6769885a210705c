// internal/handlers/report.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/buildflip/pc-inventory-backend/internal/services"
	"github.com/buildflip/pc-inventory-backend/internal/utils"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GET /api/reports/monthly
func (h *ReportHandler) MonthlySummary(c *gin.Context) {
	summary, err := h.reportService.GetMonthlySummary()
	if err != nil {
		logrus.WithError(err).Error("Error fetching monthly summary")
		utils.InternalErrorResponse(c, "Failed to fetch monthly summary")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GET /api/reports/profit-analysis
func (h *ReportHandler) ProfitAnalysis(c *gin.Context) {
	analysis, err := h.reportService.GetProfitAnalysis()
	if err != nil {
		logrus.WithError(err).Error("Error fetching profit analysis")
		utils.InternalErrorResponse(c, "Failed to fetch profit analysis")
		return
	}

	c.JSON(http.StatusOK, analysis)
}
