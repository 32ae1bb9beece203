package request_models

import (
	"github.com/shopspring/decimal"
)

// SubmitPaymentRequest is the payment form posted for a booking.
type SubmitPaymentRequest struct {
	BookingID     string            `json:"booking_id" binding:"required"`
	UserID        string            `json:"user_id" binding:"required"`
	Amount        decimal.Decimal   `json:"amount" binding:"required"`
	Currency      string            `json:"currency" binding:"required,len=3"`
	PaymentMethod string            `json:"payment_method" binding:"required"`
	Metadata      map[string]string `json:"metadata"`
}

// VerifyPaymentRequest resolves a queued transaction. Approved moves it to
// verified, otherwise declined.
type VerifyPaymentRequest struct {
	Approved bool    `json:"approved"`
	Notes    *string `json:"notes"`
}
