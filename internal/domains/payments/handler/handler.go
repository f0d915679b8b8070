package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/culturepay/internal/delivery/http/response"
	"github.com/savioruz/culturepay/internal/domains/payments/dto"
	"github.com/savioruz/culturepay/internal/domains/payments/service"
	"github.com/savioruz/culturepay/pkg/constant"
	"github.com/savioruz/culturepay/pkg/failure"
	"github.com/savioruz/culturepay/pkg/logger"
)

type Handler struct {
	service   service.PaymentService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.PaymentService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

const (
	identifier = "http - payments - %s"
)

func (h *Handler) RegisterRoutes(r fiber.Router) {
	r.Post("/create-order", h.CreateOrder)
	r.Post("/verify-payment", h.VerifyPayment)
	r.Post("/validate-payment", h.ValidatePayment)
}

// CreateOrder godoc
// @Summary Create gateway order
// @Description Create a Razorpay order for a donation. Amount is in paise.
// @Tags payments
// @Accept json
// @Produce json
// @Param order body dto.CreateOrderRequest true "Order request"
// @Success 200 {object} dto.CreateOrderResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /create-order [post]
func (h *Handler) CreateOrder(ctx *fiber.Ctx) error {
	var req dto.CreateOrderRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error(identifier, "CreateOrder - body parser error: "+err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error(identifier, "CreateOrder - validation error: "+err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	res, err := h.service.CreateOrder(ctx.UserContext(), req)
	if err != nil {
		h.logger.Error(identifier, "CreateOrder - request_id: "+requestID(ctx)+" - "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithPayload(ctx, fiber.StatusOK, res)
}

// VerifyPayment godoc
// @Summary Verify payment
// @Description Verify the checkout signature and record the donation
// @Tags payments
// @Accept json
// @Produce json
// @Param callback body dto.VerifyPaymentRequest true "Checkout callback"
// @Success 200 {object} dto.VerifyPaymentResponse
// @Failure 400 {object} response.Unsuccessful
// @Failure 500 {object} response.Unsuccessful
// @Router /verify-payment [post]
func (h *Handler) VerifyPayment(ctx *fiber.Ctx) error {
	var req dto.VerifyPaymentRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error(identifier, "VerifyPayment - body parser error: "+err.Error())

		return response.WithUnsuccessful(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error(identifier, "VerifyPayment - validation error: "+err.Error())

		return response.WithUnsuccessful(ctx, failure.BadRequest(err))
	}

	res, err := h.service.VerifyPayment(ctx.UserContext(), req)
	if err != nil {
		h.logger.Error(identifier, "VerifyPayment - request_id: "+requestID(ctx)+" - "+err.Error())

		return response.WithUnsuccessful(ctx, err)
	}

	return response.WithPayload(ctx, fiber.StatusOK, res)
}

// ValidatePayment godoc
// @Summary Validate donation form
// @Description Run every donation form rule and report the violations in field order
// @Tags payments
// @Accept json
// @Produce json
// @Param form body dto.FormData true "Donation form"
// @Success 200 {object} response.Data[validation.Result]
// @Failure 400 {object} response.Error
// @Router /validate-payment [post]
func (h *Handler) ValidatePayment(ctx *fiber.Ctx) error {
	var req dto.FormData
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error(identifier, "ValidatePayment - body parser error: "+err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	res, err := h.service.ValidatePayment(ctx.UserContext(), req)
	if err != nil {
		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

func requestID(ctx *fiber.Ctx) string {
	if id, ok := ctx.Locals(constant.RequestLocalRequestID).(string); ok {
		return id
	}

	return "unknown"
}
