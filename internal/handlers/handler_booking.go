package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/rutasur/tour_backoffice_app/internal/apperrors"
	portssvc "github.com/rutasur/tour_backoffice_app/internal/core/ports/services"
	"github.com/rutasur/tour_backoffice_app/internal/dto"
	"github.com/rutasur/tour_backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// bookingHandler handles HTTP requests related to bookings and quotations.
type bookingHandler struct {
	bookingService portssvc.BookingSvcFacade
}

func newBookingHandler(bs portssvc.BookingSvcFacade) *bookingHandler {
	return &bookingHandler{
		bookingService: bs,
	}
}

// registerBookingRoutes registers the authenticated booking routes.
func registerBookingRoutes(rg *gin.RouterGroup, bookingService portssvc.BookingSvcFacade) {
	h := newBookingHandler(bookingService)

	bookings := rg.Group("/bookings")
	{
		bookings.POST("", h.createBooking)
		bookings.GET("", h.listBookings)
		bookings.GET("/:id", h.getBooking)
		bookings.PATCH("/:id/status", h.updateBookingStatus)
		bookings.POST("/price-quote", h.priceQuote)
	}
}

// registerShareRoutes registers the public shareable-link route.
func registerShareRoutes(r *gin.Engine, bookingService portssvc.BookingSvcFacade) {
	h := newBookingHandler(bookingService)
	r.GET("/share/:token", h.getBookingByShareToken)
}

// createBooking godoc
// @Summary Create a booking quotation
// @Description Assembles the configuration, customer, tour and payment sections into a priced quotation
// @Tags bookings
// @Accept  json
// @Produce  json
// @Param   booking body dto.CreateBookingRequest true "Quotation submission"
// @Success 201 {object} dto.BookingResponse
// @Failure 400 {object} map[string]string "Validation failed"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create booking"
// @Router /bookings [post]
func (h *bookingHandler) createBooking(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBooking", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Booking validation failed", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create booking in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		}
		return
	}

	logger.Info("Booking created successfully", slog.String("booking_id", booking.BookingID))
	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

// listBookings godoc
// @Summary List bookings
// @Description Retrieves bookings newest first
// @Tags bookings
// @Produce  json
// @Param   limit query int false "Maximum bookings to return"
// @Success 200 {array} dto.BookingResponse
// @Failure 500 {object} map[string]string "Failed to list bookings"
// @Router /bookings [get]
func (h *bookingHandler) listBookings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	bookings, err := h.bookingService.ListBookings(c.Request.Context(), limit)
	if err != nil {
		logger.Error("Failed to list bookings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bookings"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListBookingResponse(bookings))
}

// getBooking godoc
// @Summary Get a booking
// @Tags bookings
// @Produce  json
// @Param   id path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse
// @Failure 404 {object} map[string]string "Booking not found"
// @Failure 500 {object} map[string]string "Failed to retrieve booking"
// @Router /bookings/{id} [get]
func (h *bookingHandler) getBooking(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bookingID := c.Param("id")

	booking, err := h.bookingService.GetBooking(c.Request.Context(), bookingID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		} else {
			logger.Error("Failed to get booking", slog.String("error", err.Error()), slog.String("booking_id", bookingID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve booking"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// getBookingByShareToken godoc
// @Summary View a booking through its shareable link
// @Description Public read-only view of a quotation resolved by its share token
// @Tags bookings
// @Produce  json
// @Param   token path string true "Share token"
// @Success 200 {object} dto.BookingResponse
// @Failure 404 {object} map[string]string "Booking not found"
// @Failure 500 {object} map[string]string "Failed to retrieve booking"
// @Router /share/{token} [get]
func (h *bookingHandler) getBookingByShareToken(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	token := c.Param("token")

	booking, err := h.bookingService.GetBookingByShareToken(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		} else {
			logger.Error("Failed to resolve share token", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve booking"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// updateBookingStatus godoc
// @Summary Update the status of a booking
// @Tags bookings
// @Accept  json
// @Produce  json
// @Param   id path string true "Booking ID"
// @Param   status body object{status=string} true "New status"
// @Success 204 "Status updated"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Booking not found"
// @Failure 500 {object} map[string]string "Failed to update booking"
// @Router /bookings/{id}/status [patch]
func (h *bookingHandler) updateBookingStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bookingID := c.Param("id")

	var body struct {
		Status string `json:"status" binding:"required,oneof=QUOTED CONFIRMED COMPLETED CANCELLED"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.bookingService.UpdateBookingStatus(c.Request.Context(), bookingID, body.Status, updaterUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		} else {
			logger.Error("Failed to update booking status", slog.String("error", err.Error()), slog.String("booking_id", bookingID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// priceQuote godoc
// @Summary Price in-progress form state
// @Description Computes per-tour subtotals, the grand total and the percentage/amount payment split without persisting anything
// @Tags bookings
// @Accept  json
// @Produce  json
// @Param   quote body dto.PriceQuoteRequest true "Tour rows plus the last edited payment field"
// @Success 200 {object} dto.PriceQuoteResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to price quote"
// @Router /bookings/price-quote [post]
func (h *bookingHandler) priceQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PriceQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	quote, err := h.bookingService.PriceQuote(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to price quote", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to price quote"})
		return
	}

	c.JSON(http.StatusOK, quote)
}
