package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// OrderRequest is a fully validated order ready for submission.
// Construct it through service.ValidateOrder; hand-built requests
// bypass the enum and positivity checks.
type OrderRequest struct {
	Symbol      string          // Uppercase trading pair, e.g. "BTCUSDT"
	Side        string          // "BUY", "SELL"
	Type        string          // "MARKET", "LIMIT", "STOP_LIMIT"
	Quantity    decimal.Decimal // Strictly positive
	Price       decimal.Decimal // Zero unless LIMIT/STOP_LIMIT
	StopPrice   decimal.Decimal // Zero unless STOP_LIMIT
	TimeInForce string          // "GTC", "IOC"; meaningful for LIMIT only
}

const (
	SideBuy  = "BUY"
	SideSell = "SELL"

	OrderTypeMarket    = "MARKET"
	OrderTypeLimit     = "LIMIT"
	OrderTypeStopLimit = "STOP_LIMIT"

	TimeInForceGTC = "GTC"
	TimeInForceIOC = "IOC"

	OrderStatusNew             = "NEW"
	OrderStatusPartiallyFilled = "PARTIALLY_FILLED"
	OrderStatusFilled          = "FILLED"
	OrderStatusCanceled        = "CANCELED"
	OrderStatusRejected        = "REJECTED"
	OrderStatusExpired         = "EXPIRED"
)

// OrderResult is the normalized outcome of a successful exchange call.
// Immutable once constructed; only the gateway layer builds these.
type OrderResult struct {
	OrderID       int64
	ClientOrderID string
	Symbol        string
	Side          string
	Type          string
	Quantity      decimal.Decimal
	ExecutedQty   decimal.Decimal
	Price         decimal.Decimal
	StopPrice     decimal.Decimal
	TimeInForce   string
	Status        string
	Raw           json.RawMessage // Opaque exchange payload, kept for logging
	TransactTime  time.Time
}

// IsOpen checks if the order is still active on the exchange.
func (r *OrderResult) IsOpen() bool {
	return r.Status == OrderStatusNew || r.Status == OrderStatusPartiallyFilled
}
