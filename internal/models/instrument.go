package models

import (
	apperrors "gbce/internal/errors"
)

// Category identifies the dividend model of a listed instrument.
type Category string

const (
	CategoryOrdinary  Category = "ordinary"
	CategoryPreferred Category = "preferred"
)

// NoFixedRate is the sentinel fixed dividend rate for instruments that do
// not pay a fixed dividend.
const NoFixedRate float64 = -1

// Instrument describes a tradable security listed on the exchange.
// ParValue and LastDividend are in currency minor units; FixedRate is a
// percentage and only meaningful for preferred instruments. Instruments
// are immutable once listed — the symbol is the unique catalog key.
type Instrument struct {
	Symbol       string   `json:"symbol"`
	Name         string   `json:"name"`
	Category     Category `json:"category"`
	ParValue     int64    `json:"par_value"`
	LastDividend int64    `json:"last_dividend"`
	FixedRate    float64  `json:"fixed_rate"`
}

// dividend returns the dividend used in valuation calculations: the last
// declared dividend for ordinary instruments, the fixed-rate dividend on
// par value for preferred ones.
func (i *Instrument) dividend() float64 {
	if i.Category == CategoryPreferred {
		return i.FixedRate / 100 * float64(i.ParValue)
	}
	return float64(i.LastDividend)
}

// DividendYield calculates the dividend yield at the given market price.
//
// Ordinary: lastDividend / price. Preferred: (fixedRate/100 * parValue) / price.
//
// A non-positive price makes the ratio undefined; this returns
// ErrUndefinedRatio instead of a non-finite float.
func (i *Instrument) DividendYield(price float64) (float64, error) {
	if price <= 0 {
		return 0, apperrors.ErrUndefinedRatio
	}
	return i.dividend() / price, nil
}

// PERatio calculates the price/earnings ratio at the given market price:
// price divided by the current dividend. A zero dividend yields a ratio
// of 0 regardless of price.
func (i *Instrument) PERatio(price float64) float64 {
	dividend := i.dividend()
	if dividend == 0 {
		return 0
	}
	return price / dividend
}
