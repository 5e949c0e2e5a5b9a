package handler

import (
	"net/http"

	"github.com/blanklearn/marketplace-backend/internal/model"
	"github.com/blanklearn/marketplace-backend/internal/response"
	"github.com/blanklearn/marketplace-backend/internal/service"
	"github.com/blanklearn/marketplace-backend/internal/validator"
	"github.com/gin-gonic/gin"
)

// BookingHandler serves the public demo booking form.
type BookingHandler struct {
	bookings *service.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookings *service.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// CreateDemoBooking godoc
// POST /api/v1/demo-bookings
// Validates the form and returns the confirmation. Persistence happens in the background.
func (h *BookingHandler) CreateDemoBooking(c *gin.Context) {
	var req model.CreateDemoBookingRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	confirmation, err := h.bookings.Book(c.Request.Context(), req)
	if err != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, map[string]string{
			"preferred_date": err.Error(),
		})
		return
	}

	response.Success(c, http.StatusAccepted, confirmation)
}
