package handler

import (
	"net/http"

	"github.com/blanklearn/marketplace-backend/internal/model"
	"github.com/blanklearn/marketplace-backend/internal/response"
	"github.com/blanklearn/marketplace-backend/internal/service"
	"github.com/blanklearn/marketplace-backend/internal/validator"
	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	payments *service.PaymentService
}

func NewPaymentHandler(payments *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// ProcessPayment godoc
// POST /api/v1/payments
func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	var req model.PaymentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	response.Success(c, http.StatusOK, h.payments.ProcessPayment(c.Request.Context(), req.Amount, req.PaymentMethod))
}
