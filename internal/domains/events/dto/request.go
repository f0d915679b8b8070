package dto

type ListEventsRequest struct {
	Year int `json:"year" query:"year" validate:"omitempty,min=1970,max=9999" example:"2026"`
}

// CalendarRequest selects a month. Month is zero-based and defaults to the current month.
type CalendarRequest struct {
	Year  int  `json:"year" query:"year" validate:"omitempty,min=1970,max=9999" example:"2026"`
	Month *int `json:"month" query:"month" validate:"omitempty,min=0,max=11" example:"9"`
}
