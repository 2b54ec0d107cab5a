package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/rutasur/tour_backoffice_app/internal/apperrors"
	"github.com/rutasur/tour_backoffice_app/internal/core/domain"
	portssvc "github.com/rutasur/tour_backoffice_app/internal/core/ports/services"
	"github.com/rutasur/tour_backoffice_app/internal/dto"
	"github.com/rutasur/tour_backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// recordHandler handles HTTP requests related to financial records.
type recordHandler struct {
	recordService portssvc.RecordSvcFacade
}

func newRecordHandler(rs portssvc.RecordSvcFacade) *recordHandler {
	return &recordHandler{
		recordService: rs,
	}
}

// registerRecordRoutes registers routes related to financial records.
func registerRecordRoutes(rg *gin.RouterGroup, recordService portssvc.RecordSvcFacade) {
	h := newRecordHandler(recordService)

	records := rg.Group("/records")
	{
		records.POST("", h.createRecord)
		records.GET("", h.listRecords)
		records.GET("/summary", h.summarizeRecords)
		records.GET("/:id", h.getRecord)
		records.PUT("/:id", h.updateRecord)
		records.DELETE("/:id", h.deleteRecord)
	}
}

// createRecord godoc
// @Summary Create a financial record
// @Description Registers an expense, receivable, bank transaction or commission
// @Tags records
// @Accept  json
// @Produce  json
// @Param   record body dto.CreateRecordRequest true "Record details"
// @Success 201 {object} dto.RecordResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create record"
// @Router /records [post]
func (h *recordHandler) createRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateRecord", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	record, err := h.recordService.CreateRecord(c.Request.Context(), req, creatorUserID)
	if err != nil {
		logger.Error("Failed to create record in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create record"})
		return
	}

	logger.Info("Record created successfully", slog.String("record_id", record.RecordID))
	c.JSON(http.StatusCreated, dto.ToRecordResponse(record))
}

// listRecords godoc
// @Summary List financial records
// @Description Retrieves records with optional filters, a tri-state sort and keyset pagination
// @Tags records
// @Produce  json
// @Param   kind query string false "Record kind" Enums(EXPENSE, RECEIVABLE, BANK_TRANSACTION, COMMISSION)
// @Param   status query string false "Record status"
// @Param   category query string false "Category filter"
// @Param   direction query string false "Direction filter" Enums(INCOMING, OUTGOING)
// @Param   excludeVoided query bool false "Hide cancelled records"
// @Param   sortField query string false "Sort column" Enums(amount, dueDate, status, category, description, currency)
// @Param   sortDirection query string false "Sort direction" Enums(asc, desc)
// @Param   displayCurrency query string false "Currency amounts are compared in when sorting by amount"
// @Param   limit query int false "Page size (max 500)"
// @Param   nextToken query string false "Pagination token from the previous page"
// @Success 200 {object} dto.ListRecordsResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 500 {object} map[string]string "Failed to list records"
// @Router /records [get]
func (h *recordHandler) listRecords(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.ListRecordsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Failed to bind query for ListRecords", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}

	records, nextToken, err := h.recordService.ListRecords(c.Request.Context(), q)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list records", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list records"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListRecordsResponse(records, nextToken))
}

// summarizeRecords godoc
// @Summary Summarize financial records
// @Description Buckets records by due date and status (overdue, due today, upcoming, paid) in one display currency
// @Tags records
// @Produce  json
// @Param   kind query string false "Record kind" Enums(EXPENSE, RECEIVABLE, BANK_TRANSACTION, COMMISSION)
// @Param   displayCurrency query string false "Currency to convert all amounts into"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 500 {object} map[string]string "Failed to summarize records"
// @Router /records/summary [get]
func (h *recordHandler) summarizeRecords(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var kind *domain.RecordKind
	if kindStr := c.Query("kind"); kindStr != "" {
		k := domain.RecordKind(kindStr)
		switch k {
		case domain.KindExpense, domain.KindReceivable, domain.KindTransaction, domain.KindCommission:
			kind = &k
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid record kind: " + kindStr})
			return
		}
	}

	summary, err := h.recordService.SummarizeRecords(c.Request.Context(), kind, c.Query("displayCurrency"), time.Now())
	if err != nil {
		logger.Error("Failed to summarize records", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to summarize records"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}

// getRecord godoc
// @Summary Get a financial record
// @Tags records
// @Produce  json
// @Param   id path string true "Record ID"
// @Success 200 {object} dto.RecordResponse
// @Failure 404 {object} map[string]string "Record not found"
// @Failure 500 {object} map[string]string "Failed to retrieve record"
// @Router /records/{id} [get]
func (h *recordHandler) getRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	recordID := c.Param("id")

	record, err := h.recordService.GetRecord(c.Request.Context(), recordID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		} else {
			logger.Error("Failed to get record", slog.String("error", err.Error()), slog.String("record_id", recordID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve record"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRecordResponse(record))
}

// updateRecord godoc
// @Summary Update a financial record
// @Description Applies the provided fields to an existing record
// @Tags records
// @Accept  json
// @Produce  json
// @Param   id path string true "Record ID"
// @Param   record body dto.UpdateRecordRequest true "Fields to update"
// @Success 200 {object} dto.RecordResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Record not found"
// @Failure 500 {object} map[string]string "Failed to update record"
// @Router /records/{id} [put]
func (h *recordHandler) updateRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	recordID := c.Param("id")

	var req dto.UpdateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateRecord", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	record, err := h.recordService.UpdateRecord(c.Request.Context(), recordID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		} else {
			logger.Error("Failed to update record", slog.String("error", err.Error()), slog.String("record_id", recordID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update record"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRecordResponse(record))
}

// deleteRecord godoc
// @Summary Delete a financial record
// @Tags records
// @Produce  json
// @Param   id path string true "Record ID"
// @Success 204 "Record deleted"
// @Failure 404 {object} map[string]string "Record not found"
// @Failure 500 {object} map[string]string "Failed to delete record"
// @Router /records/{id} [delete]
func (h *recordHandler) deleteRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	recordID := c.Param("id")

	if err := h.recordService.DeleteRecord(c.Request.Context(), recordID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		} else {
			logger.Error("Failed to delete record", slog.String("error", err.Error()), slog.String("record_id", recordID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete record"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
