package binance

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"futures_go/internal/domain"
	"futures_go/internal/infra"
)

// Client is the Binance USDT-M Futures REST client (Boundary Layer).
// Every method performs exactly one synchronous call and returns either
// a normalized result or a classified *domain.OrderError. No retries.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	signer       *Signer
	recvWindowMS int
	logger       *slog.Logger
}

// NewClient creates a new Binance API client from the loaded config.
func NewClient(cfg *infra.Config) *Client {
	return &Client{
		baseURL: cfg.BaseURL(),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:    10,
				IdleConnTimeout: 30 * time.Second,
			},
		},
		signer:       NewSigner(cfg.API.Binance.APIKey, cfg.API.Binance.APISecret),
		recvWindowMS: cfg.API.Binance.RecvWindowMS,
		logger:       slog.Default().With("module", "binance_client"),
	}
}

// PlaceOrder submits an order. The three order types map onto the same
// endpoint with different parameter sets: MARKET carries no price,
// LIMIT adds price+timeInForce, STOP_LIMIT (API type STOP) adds
// price+stopPrice.
func (c *Client) PlaceOrder(ctx context.Context, req domain.OrderRequest) (*domain.OrderResult, error) {
	params := url.Values{}
	params.Set("symbol", req.Symbol)
	params.Set("side", req.Side)
	params.Set("type", apiOrderType(req.Type))
	params.Set("quantity", req.Quantity.String())

	switch req.Type {
	case domain.OrderTypeLimit:
		params.Set("price", req.Price.String())
		params.Set("timeInForce", req.TimeInForce)
	case domain.OrderTypeStopLimit:
		params.Set("price", req.Price.String())
		params.Set("stopPrice", req.StopPrice.String())
	}

	c.logger.Info("placing order",
		"symbol", req.Symbol,
		"side", req.Side,
		"type", req.Type,
		"quantity", req.Quantity.String(),
		"price", req.Price.String(),
		"stop_price", req.StopPrice.String(),
	)

	body, err := c.signedRequest(ctx, http.MethodPost, orderEndpoint, params)
	if err != nil {
		c.logOutcomeError("place order", err)
		return nil, err
	}

	result, err := c.parseOrderResult(body)
	if err != nil {
		c.logOutcomeError("place order", err)
		return nil, err
	}

	c.logger.Info("order placed",
		"order_id", result.OrderID,
		"symbol", result.Symbol,
		"status", result.Status,
	)
	return result, nil
}

// GetOrder queries the current state of an order.
func (c *Client) GetOrder(ctx context.Context, symbol string, orderID int64) (*domain.OrderResult, error) {
	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("orderId", strconv.FormatInt(orderID, 10))

	c.logger.Info("querying order", "symbol", symbol, "order_id", orderID)

	body, err := c.signedRequest(ctx, http.MethodGet, orderEndpoint, params)
	if err != nil {
		c.logOutcomeError("query order", err)
		return nil, err
	}

	result, err := c.parseOrderResult(body)
	if err != nil {
		c.logOutcomeError("query order", err)
		return nil, err
	}

	c.logger.Info("order state", "order_id", result.OrderID, "status", result.Status)
	return result, nil
}

// CancelOrder requests cancellation of an open order.
func (c *Client) CancelOrder(ctx context.Context, symbol string, orderID int64) (*domain.OrderResult, error) {
	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("orderId", strconv.FormatInt(orderID, 10))

	c.logger.Info("canceling order", "symbol", symbol, "order_id", orderID)

	body, err := c.signedRequest(ctx, http.MethodDelete, orderEndpoint, params)
	if err != nil {
		c.logOutcomeError("cancel order", err)
		return nil, err
	}

	result, err := c.parseOrderResult(body)
	if err != nil {
		c.logOutcomeError("cancel order", err)
		return nil, err
	}

	c.logger.Info("order canceled", "order_id", result.OrderID, "status", result.Status)
	return result, nil
}

// signedRequest signs the params, sends the request and classifies
// every failure. Binance accepts signed-endpoint parameters in the
// query string for all methods, so the body stays empty.
func (c *Client) signedRequest(ctx context.Context, method, path string, params url.Values) ([]byte, error) {
	reqURL := c.baseURL + path + "?" + c.signer.SignedQuery(params, c.recvWindowMS)

	req, err := http.NewRequestWithContext(ctx, method, reqURL, nil)
	if err != nil {
		return nil, domain.NewUnknownError(err)
	}
	req.Header.Set("X-MBX-APIKEY", c.signer.APIKey())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewNetworkError(method+" "+path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewNetworkError("read response", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Code != 0 {
			return nil, domain.NewAPIError(apiErr.Code, apiErr.Msg)
		}
		return nil, domain.NewUnknownError(fmt.Errorf("http %d: %s", resp.StatusCode, string(body)))
	}

	return body, nil
}

func (c *Client) parseOrderResult(body []byte) (*domain.OrderResult, error) {
	var resp orderResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, domain.NewUnknownError(fmt.Errorf("unexpected response payload: %w", err))
	}

	return &domain.OrderResult{
		OrderID:       resp.OrderID,
		ClientOrderID: resp.ClientOrderID,
		Symbol:        resp.Symbol,
		Side:          resp.Side,
		Type:          domainOrderType(resp.Type),
		Quantity:      parseDecimal(resp.OrigQty),
		ExecutedQty:   parseDecimal(resp.ExecutedQty),
		Price:         parseDecimal(resp.Price),
		StopPrice:     parseDecimal(resp.StopPrice),
		TimeInForce:   resp.TimeInForce,
		Status:        resp.Status,
		Raw:           json.RawMessage(body),
		TransactTime:  time.UnixMilli(resp.UpdateTime),
	}, nil
}

func (c *Client) logOutcomeError(op string, err error) {
	oe := domain.AsOrderError(err)
	c.logger.Error(op+" failed",
		"kind", oe.Kind,
		"code", oe.Code,
		"message", oe.Message,
	)
}
