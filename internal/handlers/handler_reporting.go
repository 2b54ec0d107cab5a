package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/rutasur/tour_backoffice_app/internal/core/ports/services"
	"github.com/rutasur/tour_backoffice_app/internal/dto"
	"github.com/rutasur/tour_backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles the dashboard and export endpoints.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
	defaultCurrency  string
}

func newReportingHandler(rs portssvc.ReportingSvcFacade, defaultCurrency string) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		defaultCurrency:  defaultCurrency,
	}
}

// registerReportingRoutes registers the dashboard and export routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade, defaultCurrency string) {
	h := newReportingHandler(reportingService, defaultCurrency)

	reports := rg.Group("/reports")
	{
		reports.GET("/dashboard", h.getDashboard)
		reports.GET("/records/export.xlsx", h.exportRecordsXLSX)
		reports.GET("/records/export.csv", h.exportRecordsCSV)
	}
}

// getDashboard godoc
// @Summary Get the financial dashboard
// @Description Per-kind summaries (overdue, due today, upcoming, paid) plus the net position, all in one display currency
// @Tags reports
// @Produce  json
// @Param   displayCurrency query string false "Currency to convert all amounts into"
// @Success 200 {object} dto.DashboardResponse
// @Failure 500 {object} map[string]string "Failed to build dashboard"
// @Router /reports/dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	displayCurrency := c.Query("displayCurrency")
	if displayCurrency == "" {
		displayCurrency = h.defaultCurrency
	}

	report, err := h.reportingService.Dashboard(c.Request.Context(), displayCurrency, time.Now())
	if err != nil {
		logger.Error("Failed to build dashboard", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(report))
}

// exportRecordsXLSX godoc
// @Summary Export records as a spreadsheet
// @Description Streams the filtered and sorted record listing as an XLSX file
// @Tags reports
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   kind query string false "Record kind"
// @Param   status query string false "Record status"
// @Param   sortField query string false "Sort column"
// @Param   sortDirection query string false "Sort direction"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 500 {object} map[string]string "Failed to export records"
// @Router /reports/records/export.xlsx [get]
func (h *reportingHandler) exportRecordsXLSX(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.ListRecordsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}

	data, err := h.reportingService.ExportRecordsXLSX(c.Request.Context(), q)
	if err != nil {
		logger.Error("Failed to export records as XLSX", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export records"})
		return
	}

	filename := fmt.Sprintf("records-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// exportRecordsCSV godoc
// @Summary Export records as CSV
// @Description Streams the filtered and sorted record listing as a CSV file
// @Tags reports
// @Produce  text/csv
// @Param   kind query string false "Record kind"
// @Param   status query string false "Record status"
// @Param   sortField query string false "Sort column"
// @Param   sortDirection query string false "Sort direction"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 500 {object} map[string]string "Failed to export records"
// @Router /reports/records/export.csv [get]
func (h *reportingHandler) exportRecordsCSV(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.ListRecordsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}

	data, err := h.reportingService.ExportRecordsCSV(c.Request.Context(), q)
	if err != nil {
		logger.Error("Failed to export records as CSV", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export records"})
		return
	}

	filename := fmt.Sprintf("records-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", data)
}
