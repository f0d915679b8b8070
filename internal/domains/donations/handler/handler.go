package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/culturepay/internal/delivery/http/middleware"
	"github.com/savioruz/culturepay/internal/delivery/http/response"
	"github.com/savioruz/culturepay/internal/domains/donations/dto"
	"github.com/savioruz/culturepay/internal/domains/donations/service"
	"github.com/savioruz/culturepay/pkg/failure"
	"github.com/savioruz/culturepay/pkg/jwt"
	"github.com/savioruz/culturepay/pkg/logger"
)

type Handler struct {
	service   service.DonationService
	logger    logger.Interface
	validator *validator.Validate
	jwt       *jwt.JWT
}

func New(s service.DonationService, l logger.Interface, v *validator.Validate, j *jwt.JWT) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
		jwt:       j,
	}
}

const (
	identifier = "http - donations - %s"
)

func (h *Handler) RegisterRoutes(r fiber.Router) {
	donations := r.Group("/donations", middleware.AdminOnly(h.jwt))

	donations.Get("/", h.List)
}

// List godoc
// @Summary List donations
// @Description Recorded donations read back from the ledger, newest first
// @Tags donations
// @Produce json
// @Param request query dto.ListDonationsRequest false "Pagination and event filter"
// @Success 200 {object} response.Data[dto.DonationsResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /donations [get]
// @Security BearerAuth
func (h *Handler) List(ctx *fiber.Ctx) error {
	var req dto.ListDonationsRequest
	if err := ctx.QueryParser(&req); err != nil {
		h.logger.Error(identifier, "List - query parsing error: "+err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error(identifier, "List - validation error: "+err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	res, err := h.service.List(ctx.UserContext(), req)
	if err != nil {
		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}
