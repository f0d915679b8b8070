package service

import (
	"context"
	"time"

	"github.com/savioruz/culturepay/internal/domains/events/catalog"
	"github.com/savioruz/culturepay/internal/domains/events/dto"
	"github.com/savioruz/culturepay/pkg/calendar"
	"github.com/savioruz/culturepay/pkg/failure"
	"github.com/savioruz/culturepay/pkg/helper"
	"github.com/savioruz/culturepay/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=../mock/service_mock.go -package=mock github.com/savioruz/culturepay/internal/domains/events/service EventService

type EventService interface {
	List(ctx context.Context, req dto.ListEventsRequest) (dto.EventsResponse, error)
	Calendar(ctx context.Context, req dto.CalendarRequest) (dto.CalendarResponse, error)
	Names(ctx context.Context) dto.EventNamesResponse
}

type eventService struct {
	logger logger.Interface
	now    func() time.Time
}

func New(l logger.Interface) EventService {
	return NewWithClock(l, helper.NowInAppTimezone)
}

func NewWithClock(l logger.Interface, now func() time.Time) EventService {
	return &eventService{
		logger: l,
		now:    now,
	}
}

const (
	identifier = "service - events - %s"
)

func (s *eventService) List(_ context.Context, req dto.ListEventsRequest) (dto.EventsResponse, error) {
	year := req.Year
	if year == 0 {
		year = s.now().Year()
	}

	return dto.EventsResponse{
		Year:   year,
		Events: catalog.Events(year),
	}, nil
}

func (s *eventService) Calendar(_ context.Context, req dto.CalendarRequest) (res dto.CalendarResponse, err error) {
	now := s.now()

	year, month := req.Year, int(now.Month())-1
	if year == 0 {
		year = now.Year()
	}

	if req.Month != nil {
		month = *req.Month
	}

	if month < 0 || month >= calendar.MonthsPerYear {
		s.logger.Error(identifier, "Calendar - month out of range")

		return res, failure.BadRequestFromString("month must be between 0 and 11")
	}

	prevYear, prevMonth := calendar.Prev(year, month)
	nextYear, nextMonth := calendar.Next(year, month)

	return dto.CalendarResponse{
		Grid: calendar.Build(year, month, catalog.Events(year)),
		Prev: dto.MonthRef{Year: prevYear, Month: prevMonth},
		Next: dto.MonthRef{Year: nextYear, Month: nextMonth},
	}, nil
}

func (s *eventService) Names(context.Context) dto.EventNamesResponse {
	names := make([]string, len(catalog.Names))
	copy(names, catalog.Names)

	return dto.EventNamesResponse{Names: names}
}
