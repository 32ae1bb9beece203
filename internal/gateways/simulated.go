package gateways

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"trippay/pkg/utils"
)

// SimulatedGateway stands in for a real processor in development and tests.
// FailureRate is the probability (0.0 - 1.0) that a charge is declined.
type SimulatedGateway struct {
	GatewayName string
	FailureRate float64
}

func NewSimulatedGateway(name string, failureRate float64) *SimulatedGateway {
	return &SimulatedGateway{
		GatewayName: name,
		FailureRate: failureRate,
	}
}

func (g *SimulatedGateway) Name() string {
	return g.GatewayName
}

func (g *SimulatedGateway) Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	select {
	case <-ctx.Done():
		return nil, utils.NewGatewayError(g.GatewayName, "charge cancelled", ctx.Err())
	default:
	}

	if rand.Float64() < g.FailureRate {
		return nil, utils.NewGatewayError(g.GatewayName, "charge declined", nil)
	}

	return &ChargeResult{
		GatewayTxnID: fmt.Sprintf("%s:%s", g.GatewayName, uuid.New().String()[:8]),
		ProcessedAt:  time.Now(),
	}, nil
}
