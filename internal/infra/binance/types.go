package binance

import (
	"futures_go/internal/domain"

	"github.com/shopspring/decimal"
)

// USDT-M Futures REST endpoints
const (
	orderEndpoint = "/fapi/v1/order"
)

// orderResponse is the exchange's order payload, shared by place,
// query and cancel. Numeric fields arrive as strings.
type orderResponse struct {
	OrderID       int64  `json:"orderId"`
	Symbol        string `json:"symbol"`
	Status        string `json:"status"`
	ClientOrderID string `json:"clientOrderId"`
	Price         string `json:"price"`
	AvgPrice      string `json:"avgPrice"`
	OrigQty       string `json:"origQty"`
	ExecutedQty   string `json:"executedQty"`
	StopPrice     string `json:"stopPrice"`
	TimeInForce   string `json:"timeInForce"`
	Type          string `json:"type"`
	Side          string `json:"side"`
	UpdateTime    int64  `json:"updateTime"`
}

// apiError is the exchange's error envelope, e.g.
// {"code":-1022,"msg":"Signature for this request is not valid."}
type apiError struct {
	Code int64  `json:"code"`
	Msg  string `json:"msg"`
}

// apiOrderType maps the domain order type onto the futures API name.
// The API calls a stop-limit order "STOP".
func apiOrderType(t string) string {
	if t == domain.OrderTypeStopLimit {
		return "STOP"
	}
	return t
}

// domainOrderType is the reverse mapping for responses.
func domainOrderType(t string) string {
	if t == "STOP" {
		return domain.OrderTypeStopLimit
	}
	return t
}

// parseDecimal tolerates the exchange's "0", "0.00000" and empty
// placeholders; anything unparseable folds to zero.
func parseDecimal(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
