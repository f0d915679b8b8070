package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/culturepay/internal/delivery/http/response"
	"github.com/savioruz/culturepay/internal/domains/auth/dto"
	"github.com/savioruz/culturepay/internal/domains/auth/service"
	"github.com/savioruz/culturepay/pkg/failure"
	"github.com/savioruz/culturepay/pkg/logger"
)

type Handler struct {
	service   service.AuthService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.AuthService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	auth := r.Group("/auth")

	auth.Post("/login", h.Login)
	auth.Post("/refresh", h.Refresh)
}

// Login godoc
// @Summary Admin login
// @Description Login as the configured administrator
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login request"
// @Success 200 {object} response.Data[dto.LoginResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /auth/login [post]
func (h *Handler) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error("http - auth - login - body parsing error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - auth - login - validate error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.Login(ctx.UserContext(), req)
	if err != nil {
		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// Refresh godoc
// @Summary Refresh token
// @Description Exchange a refresh token for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshRequest true "Refresh request"
// @Success 200 {object} response.Data[dto.LoginResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /auth/refresh [post]
func (h *Handler) Refresh(ctx *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error("http - auth - refresh - body parsing error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - auth - refresh - validate error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.Refresh(ctx.UserContext(), req)
	if err != nil {
		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}
