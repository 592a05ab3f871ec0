package marketplace

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus instruments for the marketplace engine.
type Metrics struct {
	registrations   prometheus.Counter
	listings        *prometheus.CounterVec
	transactions    *prometheus.CounterVec
	creditsRedeemed prometheus.Counter
	catalogItems    prometheus.Gauge
}

// NewMetrics creates and registers the marketplace metrics. Tests pass
// a private registry so repeated construction does not collide.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		registrations: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "marketplace_registrations_total",
				Help: "Total number of registered users",
			},
		),
		listings: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketplace_listings_total",
				Help: "Total number of uploaded items by kind",
			},
			[]string{"kind"},
		),
		transactions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketplace_transactions_total",
				Help: "Total number of purchase attempts by outcome",
			},
			[]string{"outcome"},
		),
		creditsRedeemed: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "marketplace_credits_redeemed_total",
				Help: "Total credit points redeemed on purchases",
			},
		),
		catalogItems: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "marketplace_catalog_items",
				Help: "Number of items in the catalog",
			},
		),
	}
	reg.MustRegister(m.registrations, m.listings, m.transactions, m.creditsRedeemed, m.catalogItems)
	return m
}
