package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/savioruz/culturepay/internal/domains/payments/dto"
	"github.com/savioruz/culturepay/pkg/constant"
	"github.com/savioruz/culturepay/pkg/failure"
	"github.com/savioruz/culturepay/pkg/razorpay"
)

const (
	noteEventName = "eventName"
	noteDonorName = "donorName"
)

// CreateOrder asks the gateway for an order once. Failures are not retried.
func (s *paymentService) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (res dto.CreateOrderResponse, err error) {
	currency := req.Currency
	if currency == "" {
		currency = constant.CurrencyINR
	}

	order, err := s.gateway.CreateOrder(ctx, razorpay.OrderRequest{
		Amount:   req.Amount,
		Currency: currency,
		Receipt:  fmt.Sprintf("receipt_%d", s.now().UnixMilli()),
		Notes: map[string]string{
			noteEventName: strings.TrimSpace(req.EventName),
			noteDonorName: strings.TrimSpace(req.DonorName),
		},
	})
	s.metrics.ObserveOrder(err)

	if err != nil {
		s.logger.Error(identifier, "CreateOrder - gateway error: "+err.Error())

		return res, failure.InternalErrorWithDetails("Failed to create order", err)
	}

	return dto.CreateOrderResponse{
		ID:       order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
	}, nil
}
