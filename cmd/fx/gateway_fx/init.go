package gateway_fx

import (
	"os"
	"strconv"

	"go.uber.org/fx"

	"trippay/internal/gateways"
)

var Module = fx.Provide(
	provideRegistry,
)

// provideRegistry wires the simulated processors used outside production.
// Real processor adapters register themselves here under the same keys.
func provideRegistry() *gateways.Registry {
	failureRate := 0.0
	if v := os.Getenv("GATEWAY_FAILURE_RATE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			failureRate = parsed
		}
	}

	return gateways.NewRegistry(
		gateways.NewSimulatedGateway("card_processor", failureRate),
		gateways.NewSimulatedGateway("mobile_money", failureRate),
	)
}
