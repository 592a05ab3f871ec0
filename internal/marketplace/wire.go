//go:build wireinject
// +build wireinject

package marketplace

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
)

// InitializeService initializes the marketplace facade with all
// dependencies.
func InitializeService(reg prometheus.Registerer, publisher EventPublisher) (*Service, error) {
	wire.Build(ServiceSet)
	return nil, nil
}
