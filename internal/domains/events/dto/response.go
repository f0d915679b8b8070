package dto

import "github.com/savioruz/culturepay/pkg/calendar"

type EventsResponse struct {
	Year   int              `json:"year"`
	Events []calendar.Event `json:"events"`
}

type MonthRef struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

type CalendarResponse struct {
	calendar.Grid
	Prev MonthRef `json:"prev"`
	Next MonthRef `json:"next"`
}

type EventNamesResponse struct {
	Names []string `json:"names"`
}
