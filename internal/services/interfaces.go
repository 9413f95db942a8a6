package services

import (
	"time"

	"gbce/internal/models"
	"gbce/internal/pagination"
)

// ExchangeServicer defines the contract for the exchange ledger: trade
// recording against the listed catalog and the derived pricing analytics.
type ExchangeServicer interface {
	Name() string
	LoadInstruments()
	ListInstrument(instrument models.Instrument) error
	ListedInstruments() []models.Instrument
	GetInstrument(symbol string) (*models.Instrument, error)
	RecordTrade(symbol string, side models.Side, price float64, quantity int64, timestamp time.Time) (*models.Trade, error)
	ListTrades(symbol string, page pagination.PageRequest) (*pagination.PageResponse[models.Trade], error)
	VolumeWeightedPrice(symbol string, windowMinutes int) (float64, error)
	AllShareIndex() float64
	DividendYield(symbol string, price float64) (float64, error)
	PERatio(symbol string, price float64) (float64, error)
}
