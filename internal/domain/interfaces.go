package domain

import "context"

// Gateway defines the order operations exposed to the CLI layer.
// Every method performs exactly one outbound call and returns either a
// result or an *OrderError; nothing escapes the boundary as a panic.
type Gateway interface {
	Submit(ctx context.Context, req OrderRequest) (*OrderResult, error)
	Status(ctx context.Context, symbol string, orderID int64) (*OrderResult, error)
	Cancel(ctx context.Context, symbol string, orderID int64) (*OrderResult, error)
}

// Journal defines the append-only order event stream.
type Journal interface {
	AppendEvent(ev *OrderEvent) error
	RecentEvents(limit int) ([]OrderEvent, error)
}
