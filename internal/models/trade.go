package models

import (
	"time"

	apperrors "gbce/internal/errors"
	"gbce/internal/uuid"
)

// Side represents the direction of a trade.
type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

// Trade represents a single executed trade. Trades are logically immutable —
// fields are never modified after construction and the ledger never removes
// them.
type Trade struct {
	ID        string    `json:"id"`
	Symbol    string    `json:"symbol"`
	Side      Side      `json:"side"`
	Quantity  int64     `json:"quantity"`
	Price     float64   `json:"price"`
	Timestamp time.Time `json:"timestamp"`

	// Instrument is a read-only back-reference to the listed instrument.
	// Excluded from JSON to keep trade payloads flat.
	Instrument *Instrument `json:"-"`
}

// NewTrade validates and constructs a trade against a listed instrument.
// Returns ErrInvalidTrade when quantity is not positive or price is negative.
func NewTrade(instrument *Instrument, side Side, price float64, quantity int64, timestamp time.Time) (*Trade, error) {
	if quantity <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidTrade, "Quantity must be positive")
	}
	if price < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidTrade, "Price cannot be negative")
	}

	return &Trade{
		ID:         uuid.New(),
		Symbol:     instrument.Symbol,
		Side:       side,
		Quantity:   quantity,
		Price:      price,
		Timestamp:  timestamp,
		Instrument: instrument,
	}, nil
}
