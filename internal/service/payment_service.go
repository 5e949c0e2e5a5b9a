package service

import (
	"context"

	"github.com/blanklearn/marketplace-backend/internal/model"
	"github.com/rs/zerolog"
)

// PaymentService is a placeholder that accepts every payment.
type PaymentService struct {
	log zerolog.Logger
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(log zerolog.Logger) *PaymentService {
	return &PaymentService{log: log.With().Str("component", "payment_service").Logger()}
}

// ProcessPayment always succeeds with a fixed payment id.
// TODO: call the payment provider once one is chosen.
func (s *PaymentService) ProcessPayment(_ context.Context, amount float64, method string) model.PaymentInfo {
	s.log.Info().Float64("amount", amount).Str("method", method).Msg("Payment accepted by stub")
	return model.PaymentInfo{Status: "success", PaymentID: "1234567890"}
}
