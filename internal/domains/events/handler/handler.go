package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/culturepay/internal/delivery/http/response"
	"github.com/savioruz/culturepay/internal/domains/events/dto"
	"github.com/savioruz/culturepay/internal/domains/events/service"
	"github.com/savioruz/culturepay/pkg/failure"
	"github.com/savioruz/culturepay/pkg/logger"
)

type Handler struct {
	service   service.EventService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.EventService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

const (
	identifier = "http - events - %s"

	routepath = "/events"
)

func (h *Handler) RegisterRoutes(r fiber.Router) {
	events := r.Group(routepath)

	events.Get("/", h.List)
	events.Get("/calendar", h.Calendar)
	events.Get("/names", h.Names)
}

// List godoc
// @Summary List events
// @Description List the events scheduled in a year
// @Tags events
// @Produce json
// @Param request query dto.ListEventsRequest false "Year filter"
// @Success 200 {object} response.Data[dto.EventsResponse]
// @Failure 400 {object} response.Error
// @Router /events [get]
func (h *Handler) List(ctx *fiber.Ctx) error {
	var req dto.ListEventsRequest
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

// Calendar godoc
// @Summary Month calendar
// @Description Sunday-first month grid with the events of each day. Month is zero-based.
// @Tags events
// @Produce json
// @Param request query dto.CalendarRequest false "Month selector"
// @Success 200 {object} response.Data[dto.CalendarResponse]
// @Failure 400 {object} response.Error
// @Router /events/calendar [get]
func (h *Handler) Calendar(ctx *fiber.Ctx) error {
	var req dto.CalendarRequest
	if err := ctx.QueryParser(&req); err != nil {
		h.logger.Error(identifier, "Calendar - query parsing error: "+err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error(identifier, "Calendar - validation error: "+err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	res, err := h.service.Calendar(ctx.UserContext(), req)
	if err != nil {
		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// Names godoc
// @Summary Event names
// @Description Names accepted as the event of a donation
// @Tags events
// @Produce json
// @Success 200 {object} response.Data[dto.EventNamesResponse]
// @Router /events/names [get]
func (h *Handler) Names(ctx *fiber.Ctx) error {
	return response.WithJSON(ctx, fiber.StatusOK, h.service.Names(ctx.UserContext()))
}
