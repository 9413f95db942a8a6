package services

import (
	"math"
	"sync"
	"time"

	apperrors "gbce/internal/errors"
	"gbce/internal/models"
	"gbce/internal/pagination"
)

// exchangeService owns the instrument catalog, the append-only per-symbol
// trade history, and the latest-price index. All three maps are guarded by
// a single RWMutex so that recording a trade and updating the price index
// are observed atomically by concurrent analytics queries.
type exchangeService struct {
	name string

	mu      sync.RWMutex
	catalog map[string]*models.Instrument
	trades  map[string][]*models.Trade
	latest  map[string]*models.Trade
}

// NewExchangeService creates a new ExchangeServicer with an empty catalog.
func NewExchangeService(name string) ExchangeServicer {
	return &exchangeService{
		name:    name,
		catalog: make(map[string]*models.Instrument),
		trades:  make(map[string][]*models.Trade),
		latest:  make(map[string]*models.Trade),
	}
}

// Name returns the exchange name.
func (s *exchangeService) Name() string {
	return s.name
}

// LoadInstruments seeds the catalog with the fixed demonstration listing
// set. Re-invoking overwrites existing catalog entries in place; recorded
// trade history is left untouched.
func (s *exchangeService) LoadInstruments() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, listing := range demoListings {
		instrument := listing
		s.catalog[instrument.Symbol] = &instrument
	}
}

// ListInstrument adds a single instrument to the catalog.
// Returns ErrDuplicateListing if the symbol is already listed.
func (s *exchangeService) ListInstrument(instrument models.Instrument) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.catalog[instrument.Symbol]; exists {
		return apperrors.ErrDuplicateListing
	}
	s.catalog[instrument.Symbol] = &instrument
	return nil
}

// ListedInstruments returns a snapshot of the catalog. Iteration order is
// not guaranteed.
func (s *exchangeService) ListedInstruments() []models.Instrument {
	s.mu.RLock()
	defer s.mu.RUnlock()

	instruments := make([]models.Instrument, 0, len(s.catalog))
	for _, instrument := range s.catalog {
		instruments = append(instruments, *instrument)
	}
	return instruments
}

// GetInstrument returns the listed instrument for a symbol.
func (s *exchangeService) GetInstrument(symbol string) (*models.Instrument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lookup(symbol)
}

// RecordTrade validates and records a trade for a listed symbol, appending
// it to the symbol's history and updating the latest-price index. The index
// entry is replaced only when the new trade's timestamp is strictly newer
// than the current entry's, so the index always reflects the chronologically
// most recent trade even when trades arrive out of order.
func (s *exchangeService) RecordTrade(symbol string, side models.Side, price float64, quantity int64, timestamp time.Time) (*models.Trade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	instrument, err := s.lookup(symbol)
	if err != nil {
		return nil, err
	}

	trade, err := models.NewTrade(instrument, side, price, quantity, timestamp)
	if err != nil {
		return nil, err
	}

	s.trades[symbol] = append(s.trades[symbol], trade)

	current, ok := s.latest[symbol]
	if !ok || trade.Timestamp.After(current.Timestamp) {
		s.latest[symbol] = trade
	}

	return trade, nil
}

// ListTrades returns a newest-first paginated view of a symbol's trade
// history.
func (s *exchangeService) ListTrades(symbol string, page pagination.PageRequest) (*pagination.PageResponse[models.Trade], error) {
	page.Defaults()

	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, err := s.lookup(symbol); err != nil {
		return nil, err
	}

	history := s.trades[symbol]
	newestFirst := make([]models.Trade, 0, len(history))
	for i := len(history) - 1; i >= 0; i-- {
		newestFirst = append(newestFirst, *history[i])
	}

	result := pagination.NewPageResponse(
		pagination.Window(newestFirst, page),
		page.Page, page.PageSize, int64(len(newestFirst)),
	)
	return &result, nil
}

// VolumeWeightedPrice calculates the volume-weighted price over the trailing
// window: sum(price*quantity) / sum(quantity) for trades with a timestamp at
// or after now minus windowMinutes. Returns 0 when the symbol has no trades
// in the window.
func (s *exchangeService) VolumeWeightedPrice(symbol string, windowMinutes int) (float64, error) {
	if windowMinutes <= 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Window must be positive")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, err := s.lookup(symbol); err != nil {
		return 0, err
	}

	bound := time.Now().Add(-time.Duration(windowMinutes) * time.Minute)

	var totalValue float64
	var totalQuantity int64
	for _, trade := range s.trades[symbol] {
		if !trade.Timestamp.Before(bound) {
			totalValue += trade.Price * float64(trade.Quantity)
			totalQuantity += trade.Quantity
		}
	}

	if totalQuantity == 0 {
		return 0, nil
	}
	return totalValue / float64(totalQuantity), nil
}

// AllShareIndex calculates the geometric mean of the latest traded price of
// every instrument with at least one trade. Instruments that have never
// traded are excluded from both the product and the divisor. Returns 0 when
// nothing has traded yet.
func (s *exchangeService) AllShareIndex() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.latest) == 0 {
		return 0
	}

	product := 1.0
	for _, trade := range s.latest {
		product *= trade.Price
	}
	return math.Pow(product, 1.0/float64(len(s.latest)))
}

// DividendYield calculates the dividend yield for a listed symbol at the
// given market price.
func (s *exchangeService) DividendYield(symbol string, price float64) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	instrument, err := s.lookup(symbol)
	if err != nil {
		return 0, err
	}
	return instrument.DividendYield(price)
}

// PERatio calculates the P/E ratio for a listed symbol at the given market
// price.
func (s *exchangeService) PERatio(symbol string, price float64) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	instrument, err := s.lookup(symbol)
	if err != nil {
		return 0, err
	}
	return instrument.PERatio(price), nil
}

// lookup returns the catalog entry for a symbol. Callers must hold the lock.
func (s *exchangeService) lookup(symbol string) (*models.Instrument, error) {
	instrument, ok := s.catalog[symbol]
	if !ok {
		return nil, apperrors.WithMessage(apperrors.ErrUnknownInstrument, "Unknown instrument: "+symbol)
	}
	return instrument, nil
}
