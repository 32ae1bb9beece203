package gateways

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"trippay/internal/models/db_models"
)

// ChargeRequest is everything a processor needs to collect a payment. The
// engine never sees card numbers; metadata carries only masked references.
type ChargeRequest struct {
	TransactionID string
	BookingID     string
	Amount        decimal.Decimal
	Currency      string
	Method        db_models.PaymentType
	Metadata      map[string]string
}

type ChargeResult struct {
	GatewayTxnID string
	ProcessedAt  time.Time
}

// PaymentGateway is the external processor collaborator. Implementations
// live outside the engine; only the simulated one ships with it.
type PaymentGateway interface {
	Name() string
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}

// Registry resolves the gateway key stored on a transaction to a processor.
// Manual-path gateways ("manual", "bank_transfer") are typically absent: no
// charge is issued for them.
type Registry struct {
	gateways map[string]PaymentGateway
}

func NewRegistry(gws ...PaymentGateway) *Registry {
	r := &Registry{gateways: make(map[string]PaymentGateway, len(gws))}
	for _, gw := range gws {
		r.gateways[gw.Name()] = gw
	}
	return r
}

func (r *Registry) Resolve(name string) (PaymentGateway, bool) {
	gw, ok := r.gateways[name]
	return gw, ok
}
