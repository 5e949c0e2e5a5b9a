package model

// PaymentRequest is the payload for the payment endpoint.
type PaymentRequest struct {
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" binding:"required,min=2,max=50"`
}

// PaymentInfo describes the outcome of a payment.
type PaymentInfo struct {
	Status    string `json:"status"`
	PaymentID string `json:"payment_id"`
}

// TeacherVerificationStatus reports whether a teacher's identity was verified.
type TeacherVerificationStatus struct {
	IsVerified bool   `json:"is_verified"`
	Message    string `json:"message,omitempty"`
}
