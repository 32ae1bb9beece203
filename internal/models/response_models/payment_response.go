package response_models

import (
	"trippay/internal/models/db_models"
)

type PaymentTransactionResponse struct {
	ID                 string            `json:"id"`
	BookingID          string            `json:"booking_id"`
	UserID             string            `json:"user_id"`
	Amount             string            `json:"amount"`
	Currency           string            `json:"currency"`
	PaymentMethod      string            `json:"payment_method"`
	Gateway            string            `json:"gateway"`
	Status             string            `json:"status"`
	VerificationMethod string            `json:"verification_method"`
	GatewayTxnID       string            `json:"gateway_txn_id,omitempty"`
	Metadata           map[string]string `json:"metadata,omitempty"`
	CreatedAt          int64             `json:"created_at"`
	UpdatedAt          int64             `json:"updated_at"`
	ProcessedAt        *int64            `json:"processed_at,omitempty"`
	VerifiedAt         *int64            `json:"verified_at,omitempty"`
	VerifiedBy         *string           `json:"verified_by,omitempty"`
	VerificationNotes  *string           `json:"verification_notes,omitempty"`
	ReceiptURL         *string           `json:"receipt_url,omitempty"`
	RetryCount         int               `json:"retry_count"`
}

func NewPaymentTransactionResponse(t *db_models.PaymentTransaction) PaymentTransactionResponse {
	return PaymentTransactionResponse{
		ID:                 t.ID.String(),
		BookingID:          t.BookingID,
		UserID:             t.UserID,
		Amount:             t.Amount.String(),
		Currency:           t.Currency,
		PaymentMethod:      string(t.PaymentMethod),
		Gateway:            t.Gateway,
		Status:             string(t.Status),
		VerificationMethod: string(t.VerificationMethod),
		GatewayTxnID:       t.GatewayTxnID,
		Metadata:           t.MetadataMap(),
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
		ProcessedAt:        t.ProcessedAt,
		VerifiedAt:         t.VerifiedAt,
		VerifiedBy:         t.VerifiedBy,
		VerificationNotes:  t.VerificationNotes,
		ReceiptURL:         t.ReceiptURL,
		RetryCount:         t.RetryCount,
	}
}

func NewPaymentTransactionResponses(txns []db_models.PaymentTransaction) []PaymentTransactionResponse {
	responses := make([]PaymentTransactionResponse, 0, len(txns))
	for i := range txns {
		responses = append(responses, NewPaymentTransactionResponse(&txns[i]))
	}
	return responses
}

type ReceiptResponse struct {
	TransactionID string `json:"transaction_id"`
	ReceiptURL    string `json:"receipt_url"`
	GeneratedAt   int64  `json:"generated_at"`
}
