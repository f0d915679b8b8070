package service

import (
	"context"
	"time"

	"github.com/savioruz/culturepay/config"
	"github.com/savioruz/culturepay/internal/domains/payments/dto"
	"github.com/savioruz/culturepay/internal/ledger"
	"github.com/savioruz/culturepay/pkg/failure"
	"github.com/savioruz/culturepay/pkg/helper"
	"github.com/savioruz/culturepay/pkg/logger"
	"github.com/savioruz/culturepay/pkg/mail"
	"github.com/savioruz/culturepay/pkg/metrics"
	"github.com/savioruz/culturepay/pkg/razorpay"
	"github.com/savioruz/culturepay/pkg/redis"
	"github.com/savioruz/culturepay/pkg/validation"
)

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=../mock/service_mock.go -package=mock github.com/savioruz/culturepay/internal/domains/payments/service PaymentService

type PaymentService interface {
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (dto.CreateOrderResponse, error)
	VerifyPayment(ctx context.Context, req dto.VerifyPaymentRequest) (dto.VerifyPaymentResponse, error)
	ValidatePayment(ctx context.Context, req dto.FormData) (validation.Result, error)
}

type paymentService struct {
	cfg       *config.Config
	gateway   razorpay.Gateway
	ledger    ledger.Ledger
	validator *validation.Validator
	cache     redis.IRedisCache
	mail      mail.Service
	metrics   *metrics.Metrics
	logger    logger.Interface
	now       func() time.Time
}

// New wires the payment flow. A nil mail service disables receipts.
func New(
	cfg *config.Config,
	g razorpay.Gateway,
	led ledger.Ledger,
	v *validation.Validator,
	c redis.IRedisCache,
	m mail.Service,
	mt *metrics.Metrics,
	l logger.Interface,
) PaymentService {
	return &paymentService{
		cfg:       cfg,
		gateway:   g,
		ledger:    led,
		validator: v,
		cache:     c,
		mail:      m,
		metrics:   mt,
		logger:    l,
		now:       helper.NowInAppTimezone,
	}
}

const (
	identifier = "service - payments - %s"
)

// ValidatePayment runs the whole-form rules for clients that do not bundle them.
func (s *paymentService) ValidatePayment(_ context.Context, req dto.FormData) (res validation.Result, err error) {
	form, err := req.ToForm()
	if err != nil {
		s.logger.Error(identifier, "ValidatePayment - failed to read form: "+err.Error())

		return res, failure.BadRequest(err)
	}

	return s.validator.ValidatePaymentForm(form), nil
}
