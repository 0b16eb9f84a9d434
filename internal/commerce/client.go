package commerce

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"freshcatch-be/internal/logger"

	"go.uber.org/zap"
)

const publishableKeyHeader = "x-publishable-api-key"

var ErrNotFound = errors.New("resource not found")

// Client is the storefront's view of the hosted commerce platform. All
// persistence, checkout orchestration, payment capture, and inventory
// live behind this interface.
type Client interface {
	GetCart(ctx context.Context, cartID string) (*Cart, error)
	GetOrder(ctx context.Context, orderID string) (*Order, error)
	ListOrders(ctx context.Context, customerID string) ([]Order, error)
	CancelOrder(ctx context.Context, orderID string) (*Order, error)
}

type client struct {
	baseURL        string
	publishableKey string
	httpClient     *http.Client
}

// NewClient builds a store-API client. Every request carries the
// publishable key header and runs under the caller's context with a
// hard client timeout.
func NewClient(baseURL, publishableKey string) Client {
	if publishableKey == "" {
		logger.L().Warn("commerce publishable key is empty")
	}

	return &client{
		baseURL:        baseURL,
		publishableKey: publishableKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *client) GetCart(ctx context.Context, cartID string) (*Cart, error) {
	var env cartEnvelope
	path := fmt.Sprintf("/store/carts/%s", url.PathEscape(cartID))
	if err := c.do(ctx, http.MethodGet, path, &env); err != nil {
		return nil, err
	}
	return &env.Cart, nil
}

func (c *client) GetOrder(ctx context.Context, orderID string) (*Order, error) {
	var env orderEnvelope
	path := fmt.Sprintf("/store/orders/%s", url.PathEscape(orderID))
	if err := c.do(ctx, http.MethodGet, path, &env); err != nil {
		return nil, err
	}
	return &env.Order, nil
}

func (c *client) ListOrders(ctx context.Context, customerID string) ([]Order, error) {
	var env ordersEnvelope
	path := "/store/orders?customer_id=" + url.QueryEscape(customerID)
	if err := c.do(ctx, http.MethodGet, path, &env); err != nil {
		return nil, err
	}
	return env.Orders, nil
}

func (c *client) CancelOrder(ctx context.Context, orderID string) (*Order, error) {
	var env orderEnvelope
	path := fmt.Sprintf("/store/orders/%s/cancel", url.PathEscape(orderID))
	if err := c.do(ctx, http.MethodPost, path, &env); err != nil {
		return nil, err
	}
	return &env.Order, nil
}

func (c *client) do(ctx context.Context, method, path string, out any) error {
	log := logger.FromCtx(ctx).With(
		zap.String("method", method),
		zap.String("path", path),
	)

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		log.Error("failed building commerce request", zap.Error(err))
		return err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set(publishableKeyHeader, c.publishableKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("commerce request failed", zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("failed reading commerce response", zap.Error(err))
		return fmt.Errorf("read commerce response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Error("commerce returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return fmt.Errorf("commerce error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	if err := json.Unmarshal(bodyBytes, out); err != nil {
		log.Error("failed decoding commerce response", zap.Error(err))
		return err
	}

	return nil
}
