package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "gbce/internal/errors"
	"gbce/internal/models"
	"gbce/internal/pagination"
	"gbce/internal/services"
)

// ExchangeHandler handles trade recording and pricing analytics requests.
type ExchangeHandler struct {
	exchange          services.ExchangeServicer
	defaultVWAPWindow int
}

// NewExchangeHandler creates a new ExchangeHandler. defaultVWAPWindow is the
// trailing window in minutes used when a request does not specify one.
func NewExchangeHandler(exchange services.ExchangeServicer, defaultVWAPWindow int) *ExchangeHandler {
	return &ExchangeHandler{exchange: exchange, defaultVWAPWindow: defaultVWAPWindow}
}

// RecordTradeRequest represents the request payload for recording a trade.
// Timestamp is optional; when absent the trade is stamped with the time the
// request is handled. The core service itself never defaults timestamps.
type RecordTradeRequest struct {
	Symbol    string      `json:"symbol" binding:"required,instrument_symbol"`
	Side      models.Side `json:"side" binding:"required,trade_side"`
	Price     float64     `json:"price" binding:"omitempty,min=0"`
	Quantity  int64       `json:"quantity" binding:"required,gt=0"`
	Timestamp *time.Time  `json:"timestamp,omitempty"`
}

// RecordTrade handles recording a trade.
// @Summary     Record trade
// @Description Record a buy or sell trade for a listed instrument
// @Tags        trades
// @Accept      json
// @Produce     json
// @Param       request body RecordTradeRequest true "Trade details"
// @Success     201 {object} models.Trade "Trade recorded"
// @Failure     400 {object} ErrorResponse "Invalid trade"
// @Failure     404 {object} ErrorResponse "Unknown instrument"
// @Router      /trades [post]
func (h *ExchangeHandler) RecordTrade(c *gin.Context) {
	var req RecordTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	timestamp := time.Now()
	if req.Timestamp != nil {
		timestamp = *req.Timestamp
	}

	trade, err := h.exchange.RecordTrade(req.Symbol, req.Side, req.Price, req.Quantity, timestamp)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"trade": trade})
}

// ListInstruments handles listing the exchange catalog.
// @Summary     List instruments
// @Description Get all instruments listed on the exchange
// @Tags        instruments
// @Produce     json
// @Success     200 {object} map[string][]models.Instrument "Listed instruments"
// @Router      /instruments [get]
func (h *ExchangeHandler) ListInstruments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"instruments": h.exchange.ListedInstruments()})
}

// GetInstrument handles retrieving a single listed instrument.
// @Summary     Get instrument
// @Description Get a listed instrument by symbol
// @Tags        instruments
// @Produce     json
// @Param       symbol path string true "Instrument symbol"
// @Success     200 {object} models.Instrument "Instrument details"
// @Failure     404 {object} ErrorResponse "Unknown instrument"
// @Router      /instruments/{symbol} [get]
func (h *ExchangeHandler) GetInstrument(c *gin.Context) {
	instrument, err := h.exchange.GetInstrument(c.Param("symbol"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"instrument": instrument})
}

// ListTrades handles listing a symbol's trade history, newest first.
// @Summary     List trades
// @Description Get a paginated, newest-first view of a symbol's trade history
// @Tags        trades
// @Produce     json
// @Param       symbol    path  string true  "Instrument symbol"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Trade] "Paginated trades"
// @Failure     404 {object} ErrorResponse "Unknown instrument"
// @Router      /instruments/{symbol}/trades [get]
func (h *ExchangeHandler) ListTrades(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.exchange.ListTrades(c.Param("symbol"), page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// VolumeWeightedPrice handles the trailing-window volume-weighted price query.
// @Summary     Volume-weighted price
// @Description Get the volume-weighted price over a trailing window
// @Tags        analytics
// @Produce     json
// @Param       symbol path  string true  "Instrument symbol"
// @Param       window query int    false "Trailing window in minutes (default 15)"
// @Success     200 {object} map[string]interface{} "Volume-weighted price"
// @Failure     400 {object} ErrorResponse "Invalid window"
// @Failure     404 {object} ErrorResponse "Unknown instrument"
// @Router      /instruments/{symbol}/vwap [get]
func (h *ExchangeHandler) VolumeWeightedPrice(c *gin.Context) {
	window, err := parseWindowQuery(c, h.defaultVWAPWindow)
	if err != nil {
		respondWithError(c, err)
		return
	}

	symbol := c.Param("symbol")
	price, err := h.exchange.VolumeWeightedPrice(symbol, window)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"symbol":                symbol,
		"window_minutes":        window,
		"volume_weighted_price": price,
	})
}

// DividendYield handles the dividend yield query.
// @Summary     Dividend yield
// @Description Get the dividend yield for an instrument at a given market price
// @Tags        analytics
// @Produce     json
// @Param       symbol path  string true "Instrument symbol"
// @Param       price  query number true "Market price"
// @Success     200 {object} map[string]interface{} "Dividend yield"
// @Failure     400 {object} ErrorResponse "Invalid price"
// @Failure     404 {object} ErrorResponse "Unknown instrument"
// @Failure     422 {object} ErrorResponse "Undefined ratio"
// @Router      /instruments/{symbol}/dividend-yield [get]
func (h *ExchangeHandler) DividendYield(c *gin.Context) {
	price, err := parsePriceQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	symbol := c.Param("symbol")
	yield, err := h.exchange.DividendYield(symbol, price)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"symbol":         symbol,
		"price":          price,
		"dividend_yield": yield,
	})
}

// PERatio handles the price/earnings ratio query.
// @Summary     P/E ratio
// @Description Get the P/E ratio for an instrument at a given market price
// @Tags        analytics
// @Produce     json
// @Param       symbol path  string true "Instrument symbol"
// @Param       price  query number true "Market price"
// @Success     200 {object} map[string]interface{} "P/E ratio"
// @Failure     400 {object} ErrorResponse "Invalid price"
// @Failure     404 {object} ErrorResponse "Unknown instrument"
// @Router      /instruments/{symbol}/pe-ratio [get]
func (h *ExchangeHandler) PERatio(c *gin.Context) {
	price, err := parsePriceQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	symbol := c.Param("symbol")
	ratio, err := h.exchange.PERatio(symbol, price)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"symbol":   symbol,
		"price":    price,
		"pe_ratio": ratio,
	})
}

// AllShareIndex handles the all-share index query.
// @Summary     All-share index
// @Description Get the geometric mean of the latest price of every traded instrument
// @Tags        analytics
// @Produce     json
// @Success     200 {object} map[string]float64 "All-share index"
// @Router      /index [get]
func (h *ExchangeHandler) AllShareIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"all_share_index": h.exchange.AllShareIndex()})
}

// ErrorResponse documents the error payload shape for swagger.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
