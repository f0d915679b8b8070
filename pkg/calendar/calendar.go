// Package calendar lays out a month as a Sunday-first grid and places events on it.
// Months are zero-based (0 is January) to match what the clients send.
package calendar

import (
	"sort"
	"time"
)

const (
	MonthsPerYear = 12
	DaysPerWeek   = 7
	MaxCells      = 42
)

var DayNames = [DaysPerWeek]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

var MonthNames = [MonthsPerYear]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time,omitempty"`
	Description string    `json:"description"`
	Location    string    `json:"location,omitempty"`
}

// Cell is one slot of the grid. Day is nil for the leading blanks.
type Cell struct {
	Day    *int    `json:"day"`
	Events []Event `json:"events,omitempty"`
}

type Grid struct {
	Year      int      `json:"year"`
	Month     int      `json:"month"`
	MonthName string   `json:"month_name"`
	Headers   []string `json:"headers"`
	Days      int      `json:"days"`
	Cells     []Cell   `json:"cells"`
	Events    []Event  `json:"events"`
}

func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func DaysInMonth(year, month int) int {
	switch month {
	case 1:
		if IsLeapYear(year) {
			return 29
		}

		return 28
	case 3, 5, 8, 10:
		return 30
	default:
		return 31
	}
}

// FirstWeekday returns the weekday of the 1st, 0 being Sunday.
func FirstWeekday(year, month int) int {
	return int(time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// Month returns the day numbers of the month preceded by one nil per weekday before the 1st.
func Month(year, month int) []*int {
	lead := FirstWeekday(year, month)
	days := DaysInMonth(year, month)

	cells := make([]*int, 0, lead+days)
	for i := 0; i < lead; i++ {
		cells = append(cells, nil)
	}

	for d := 1; d <= days; d++ {
		day := d
		cells = append(cells, &day)
	}

	return cells
}

func Next(year, month int) (int, int) {
	if month == MonthsPerYear-1 {
		return year + 1, 0
	}

	return year, month + 1
}

func Prev(year, month int) (int, int) {
	if month == 0 {
		return year - 1, MonthsPerYear - 1
	}

	return year, month - 1
}

// EventsOn returns the events whose calendar date is exactly (year, month, day).
// Time of day is ignored.
func EventsOn(events []Event, year, month, day int) []Event {
	var out []Event

	for _, e := range events {
		if e.Date.Year() == year && int(e.Date.Month())-1 == month && e.Date.Day() == day {
			out = append(out, e)
		}
	}

	return out
}

func EventsInMonth(events []Event, year, month int) []Event {
	out := make([]Event, 0)

	for _, e := range events {
		if e.Date.Year() == year && int(e.Date.Month())-1 == month {
			out = append(out, e)
		}
	}

	return out
}

func Build(year, month int, events []Event) Grid {
	days := Month(year, month)

	cells := make([]Cell, 0, len(days))
	for _, d := range days {
		cell := Cell{Day: d}
		if d != nil {
			cell.Events = EventsOn(events, year, month, *d)
		}

		cells = append(cells, cell)
	}

	return Grid{
		Year:      year,
		Month:     month,
		MonthName: MonthNames[month],
		Headers:   DayNames[:],
		Days:      DaysInMonth(year, month),
		Cells:     cells,
		Events:    EventsInMonth(events, year, month),
	}
}

// SortByDate orders events chronologically, keeping the given order for equal dates.
func SortByDate(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})
}
