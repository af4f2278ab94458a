package service

import (
	"strings"

	"futures_go/internal/domain"

	"github.com/shopspring/decimal"
)

// RawOrder carries the loosely-typed order fields exactly as collected
// from flags or the interactive prompt. Empty string means "not given".
type RawOrder struct {
	Symbol      string
	Side        string
	Type        string
	Quantity    string
	Price       string
	StopPrice   string
	TimeInForce string
}

// ValidateOrder normalizes raw input into a well-formed OrderRequest or
// fails with a VALIDATION error. Pure: no I/O, no network, no state.
//
// Normalization rules:
//   - symbol is trimmed and upper-cased; empty rejected
//   - side/type/time-in-force are case-folded against the fixed enums;
//     "stop-limit" and "stop_limit" are both accepted for STOP_LIMIT
//   - quantity and every present price must be a strictly positive decimal
//   - MARKET ignores price/stop-price; LIMIT requires price and defaults
//     time-in-force to GTC; STOP_LIMIT requires price and stop-price
//
// Stop price and limit price are not cross-checked against side: the
// exchange applies its own trigger-direction rule and rejects the order
// itself when they conflict.
func ValidateOrder(raw RawOrder) (*domain.OrderRequest, error) {
	symbol := strings.ToUpper(strings.TrimSpace(raw.Symbol))
	if symbol == "" {
		return nil, domain.NewValidationError("symbol is required")
	}

	side, err := normalizeSide(raw.Side)
	if err != nil {
		return nil, err
	}

	orderType, err := normalizeType(raw.Type)
	if err != nil {
		return nil, err
	}

	qty, err := parsePositive("quantity", raw.Quantity)
	if err != nil {
		return nil, err
	}

	req := &domain.OrderRequest{
		Symbol:   symbol,
		Side:     side,
		Type:     orderType,
		Quantity: qty,
	}

	switch orderType {
	case domain.OrderTypeMarket:
		// Price fields are ignored for market orders.

	case domain.OrderTypeLimit:
		if strings.TrimSpace(raw.Price) == "" {
			return nil, domain.NewValidationError("price is required for LIMIT orders")
		}
		if req.Price, err = parsePositive("price", raw.Price); err != nil {
			return nil, err
		}
		if req.TimeInForce, err = normalizeTimeInForce(raw.TimeInForce); err != nil {
			return nil, err
		}

	case domain.OrderTypeStopLimit:
		if strings.TrimSpace(raw.Price) == "" {
			return nil, domain.NewValidationError("price is required for STOP_LIMIT orders")
		}
		if strings.TrimSpace(raw.StopPrice) == "" {
			return nil, domain.NewValidationError("stop price is required for STOP_LIMIT orders")
		}
		if req.Price, err = parsePositive("price", raw.Price); err != nil {
			return nil, err
		}
		if req.StopPrice, err = parsePositive("stop price", raw.StopPrice); err != nil {
			return nil, err
		}
	}

	return req, nil
}

func normalizeSide(s string) (string, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case domain.SideBuy:
		return domain.SideBuy, nil
	case domain.SideSell:
		return domain.SideSell, nil
	case "":
		return "", domain.NewValidationError("side is required (buy or sell)")
	default:
		return "", domain.NewValidationError("invalid side %q: must be buy or sell", s)
	}
}

func normalizeType(s string) (string, error) {
	folded := strings.ToUpper(strings.TrimSpace(s))
	folded = strings.ReplaceAll(folded, "-", "_")
	switch folded {
	case domain.OrderTypeMarket:
		return domain.OrderTypeMarket, nil
	case domain.OrderTypeLimit:
		return domain.OrderTypeLimit, nil
	case domain.OrderTypeStopLimit:
		return domain.OrderTypeStopLimit, nil
	case "":
		return "", domain.NewValidationError("order type is required (market, limit or stop-limit)")
	default:
		return "", domain.NewValidationError("invalid order type %q: must be market, limit or stop-limit", s)
	}
}

func normalizeTimeInForce(s string) (string, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", domain.TimeInForceGTC:
		return domain.TimeInForceGTC, nil
	case domain.TimeInForceIOC:
		return domain.TimeInForceIOC, nil
	default:
		return "", domain.NewValidationError("invalid time in force %q: must be GTC or IOC", s)
	}
}

func parsePositive(field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, domain.NewValidationError("invalid %s %q: not a number", field, s)
	}
	if !d.IsPositive() {
		return decimal.Zero, domain.NewValidationError("%s must be positive, got %s", field, d)
	}
	return d, nil
}
