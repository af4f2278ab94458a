package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"futures_go/internal/domain"
	"futures_go/internal/infra"
)

// ExchangeClient is the wire-level client the gateway drives. Satisfied
// by *binance.Client; tests substitute a stub.
type ExchangeClient interface {
	PlaceOrder(ctx context.Context, req domain.OrderRequest) (*domain.OrderResult, error)
	GetOrder(ctx context.Context, symbol string, orderID int64) (*domain.OrderResult, error)
	CancelOrder(ctx context.Context, symbol string, orderID int64) (*domain.OrderResult, error)
}

// Live submits validated orders to the exchange, journals every attempt
// and outcome, and keeps the process counters. It only ever returns
// classified *domain.OrderError values.
type Live struct {
	client  ExchangeClient
	journal domain.Journal // nil when the journal could not be opened
	metrics *infra.Metrics
	logger  *slog.Logger
}

// NewLive wires the gateway. A nil journal disables history recording
// without blocking order flow.
func NewLive(client ExchangeClient, journal domain.Journal, metrics *infra.Metrics) *Live {
	return &Live{
		client:  client,
		journal: journal,
		metrics: metrics,
		logger:  slog.Default().With("module", "gateway"),
	}
}

// Submit sends one validated order and normalizes the outcome.
func (g *Live) Submit(ctx context.Context, req domain.OrderRequest) (*domain.OrderResult, error) {
	detail := fmt.Sprintf("side=%s type=%s qty=%s price=%s stop=%s tif=%s",
		req.Side, req.Type, req.Quantity, req.Price, req.StopPrice, req.TimeInForce)
	g.appendEvent(domain.StageRequest, domain.OpPlace, req.Symbol, 0, detail)

	start := time.Now()
	result, err := g.client.PlaceOrder(ctx, req)
	g.metrics.RecordOperation(time.Since(start))

	return g.finish(domain.OpPlace, req.Symbol, result, err)
}

// Status queries the current state of an order.
func (g *Live) Status(ctx context.Context, symbol string, orderID int64) (*domain.OrderResult, error) {
	g.appendEvent(domain.StageRequest, domain.OpStatus, symbol, orderID, "")

	start := time.Now()
	result, err := g.client.GetOrder(ctx, symbol, orderID)
	g.metrics.RecordOperation(time.Since(start))

	return g.finish(domain.OpStatus, symbol, result, err)
}

// Cancel requests cancellation of an open order.
func (g *Live) Cancel(ctx context.Context, symbol string, orderID int64) (*domain.OrderResult, error) {
	g.appendEvent(domain.StageRequest, domain.OpCancel, symbol, orderID, "")

	start := time.Now()
	result, err := g.client.CancelOrder(ctx, symbol, orderID)
	g.metrics.RecordOperation(time.Since(start))

	return g.finish(domain.OpCancel, symbol, result, err)
}

// finish journals the outcome and guarantees the returned error is a
// classified *domain.OrderError.
func (g *Live) finish(op, symbol string, result *domain.OrderResult, err error) (*domain.OrderResult, error) {
	if err != nil {
		oe := domain.AsOrderError(err)
		switch oe.Kind {
		case domain.KindAPI:
			g.metrics.RecordAPIError()
		case domain.KindNetwork:
			g.metrics.RecordNetworkError()
		default:
			g.metrics.RecordUnknownError()
		}
		g.appendEvent(domain.StageError, op, symbol, 0, oe.Error())
		return nil, oe
	}

	detail := fmt.Sprintf("status=%s executed=%s", result.Status, result.ExecutedQty)
	g.appendEvent(domain.StageResponse, op, symbol, result.OrderID, detail)
	return result, nil
}

// appendEvent writes one journal row. A journal failure is logged and
// swallowed: history must never block an order.
func (g *Live) appendEvent(stage, op, symbol string, orderID int64, detail string) {
	if g.journal == nil {
		return
	}
	ev := &domain.OrderEvent{
		At:        time.Now(),
		Stage:     stage,
		Operation: op,
		Symbol:    symbol,
		OrderID:   orderID,
		Detail:    detail,
	}
	if err := g.journal.AppendEvent(ev); err != nil {
		g.logger.Warn("journal write failed", "stage", stage, "error", err)
	}
}
