// Package razorpay wraps the Razorpay SDK behind a context-aware gateway.
package razorpay

import (
	"context"
	"errors"
	"fmt"
	"time"

	rzp "github.com/razorpay/razorpay-go"
)

//go:generate go run go.uber.org/mock/mockgen -source=razorpay.go -destination=mock/razorpay_mock.go -package=mock github.com/savioruz/culturepay/pkg/razorpay Gateway

var (
	ErrMalformedOrder = errors.New("razorpay: malformed order response")
	ErrTimeout        = errors.New("razorpay: request timed out")
)

type OrderRequest struct {
	Amount   int64
	Currency string
	Receipt  string
	Notes    map[string]string
}

type Order struct {
	ID       string
	Amount   int64
	Currency string
	Receipt  string
	Status   string
}

type Gateway interface {
	CreateOrder(ctx context.Context, req OrderRequest) (Order, error)
}

// OrderCreator is the order resource of the SDK client.
type OrderCreator interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

type client struct {
	orders  OrderCreator
	timeout time.Duration
}

func New(keyID, keySecret string, timeout time.Duration) Gateway {
	return NewWithOrders(rzp.NewClient(keyID, keySecret).Order, timeout)
}

func NewWithOrders(orders OrderCreator, timeout time.Duration) Gateway {
	return &client{
		orders:  orders,
		timeout: timeout,
	}
}

type createResult struct {
	body map[string]interface{}
	err  error
}

// CreateOrder creates an order once. The SDK call is abandoned when the context or the timeout expires first.
func (c *client) CreateOrder(ctx context.Context, req OrderRequest) (Order, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)

		defer cancel()
	}

	notes := make(map[string]interface{}, len(req.Notes))
	for k, v := range req.Notes {
		notes[k] = v
	}

	data := map[string]interface{}{
		"amount":   req.Amount,
		"currency": req.Currency,
		"receipt":  req.Receipt,
		"notes":    notes,
	}

	done := make(chan createResult, 1)

	go func() {
		body, err := c.orders.Create(data, nil)
		done <- createResult{body: body, err: err}
	}()

	select {
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return Order{}, ErrTimeout
		}

		return Order{}, ctx.Err()
	case res := <-done:
		if res.err != nil {
			return Order{}, res.err
		}

		return orderFromResponse(res.body)
	}
}

func orderFromResponse(body map[string]interface{}) (Order, error) {
	id, _ := body["id"].(string)
	if id == "" {
		return Order{}, fmt.Errorf("%w: missing id", ErrMalformedOrder)
	}

	amount, ok := toInt64(body["amount"])
	if !ok {
		return Order{}, fmt.Errorf("%w: missing amount", ErrMalformedOrder)
	}

	currency, _ := body["currency"].(string)
	receipt, _ := body["receipt"].(string)
	status, _ := body["status"].(string)

	return Order{
		ID:       id,
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
		Status:   status,
	}, nil
}

func toInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	default:
		return 0, false
	}
}
