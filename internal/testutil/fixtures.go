// Package testutil provides test helpers for setting up seeded exchanges,
// recording fixture trades, and making assertions.
package testutil

import (
	"testing"
	"time"

	"gbce/internal/models"
	"gbce/internal/services"
)

// NewTestExchange creates an exchange seeded with the demonstration catalog
// (TEA, POP, ALE, GIN, JOE).
func NewTestExchange(t *testing.T) services.ExchangeServicer {
	t.Helper()

	exchange := services.NewExchangeService("Test Exchange")
	exchange.LoadInstruments()
	return exchange
}

// RecordTestTrade records a trade and fails the test on error.
func RecordTestTrade(t *testing.T, exchange services.ExchangeServicer, symbol string, side models.Side, price float64, quantity int64, timestamp time.Time) *models.Trade {
	t.Helper()

	trade, err := exchange.RecordTrade(symbol, side, price, quantity, timestamp)
	if err != nil {
		t.Fatalf("failed to record test trade for %s: %v", symbol, err)
	}
	return trade
}
