// Package catalog is the organisation's event programme.
package catalog

import (
	"fmt"
	"time"

	"github.com/savioruz/culturepay/pkg/calendar"
)

// Names lists the events donations can be made towards.
var Names = []string{
	"Classical Music Festival",
	"Kathak Dance Workshop",
	"Cultural Food Festival",
	"Art Exhibition",
	"Language & Literature Fest",
	"Summer Cultural Camp",
	"Heritage Preservation Seminar",
	"Community Music Jam",
	"Dussehra Festival Events",
	"Diwali Celebrations",
	"Winter Festival",
	"New Year Eve Extravaganza",
}

// IST is the zone event times are announced in.
var IST = time.FixedZone("IST", 5*60*60+30*60)

type entry struct {
	month    time.Month
	day      int
	name     string
	at       string
	location string
}

// programme repeats every year.
var programme = []entry{
	{time.January, 15, "Classical Music Festival", "6:00 PM", "Auditorium"},
	{time.January, 28, "New Year Cultural Celebration", "5:00 PM", "Main Hall"},
	{time.February, 5, "Kathak Dance Workshop", "4:00 PM", "Dance Studio"},
	{time.February, 20, "Traditional Folk Music Concert", "7:00 PM", "Auditorium"},
	{time.March, 10, "Cultural Food Festival", "11:00 AM", "Outdoor Grounds"},
	{time.March, 25, "Spring Celebration", "6:00 PM", "Outdoor Grounds"},
	{time.April, 8, "Art Exhibition Opening", "2:00 PM", "Gallery"},
	{time.April, 22, "Artist Workshop Masterclass", "3:00 PM", "Gallery"},
	{time.May, 5, "Language & Literature Fest", "5:00 PM", "Library Hall"},
	{time.May, 30, "Poetry Reading & Discussion", "6:30 PM", "Library Hall"},
	{time.June, 15, "Summer Cultural Camp (Begins)", "9:00 AM", "Campus"},
	{time.June, 20, "Youth Dance Showcase", "6:00 PM", "Auditorium"},
	{time.July, 10, "Heritage Preservation Seminar", "4:00 PM", "Seminar Room"},
	{time.July, 25, "Community Music Jam", "5:30 PM", "Outdoor Grounds"},
	{time.August, 5, "Independence Day Cultural Show", "6:00 PM", "Main Hall"},
	{time.August, 18, "Traditional Crafts Exhibition", "2:00 PM", "Gallery"},
	{time.September, 10, "Harvest Festival Celebration", "5:00 PM", "Outdoor Grounds"},
	{time.September, 28, "Autumn Cultural Series", "7:00 PM", "Auditorium"},
	{time.October, 5, "Dussehra Festival Events", "6:00 PM", "Outdoor Grounds"},
	{time.October, 20, "Cultural Art Walk", "4:00 PM", "Old Town"},
	{time.November, 10, "Diwali Celebrations", "5:30 PM", "Main Hall"},
	{time.November, 25, "Year-End Gala", "7:00 PM", "Auditorium"},
	{time.December, 15, "Winter Festival", "6:00 PM", "Outdoor Grounds"},
	{time.December, 31, "New Year Eve Extravaganza", "8:00 PM", "Main Hall"},
}

// featured are one-off events of a specific year.
var featured = []calendar.Event{
	{
		ID:          "featured-1",
		Name:        "Diwali Festival Celebration",
		Date:        time.Date(2026, time.October, 25, 18, 0, 0, 0, IST),
		Description: "Join us for a grand Diwali celebration with traditional performances, food, and festivities.",
		Location:    "Main Hall",
	},
	{
		ID:          "featured-2",
		Name:        "Holi Color Festival",
		Date:        time.Date(2026, time.March, 14, 10, 0, 0, 0, IST),
		Description: "Experience the vibrant colors of Holi with music, dance, and traditional sweets.",
		Location:    "Outdoor Grounds",
	},
	{
		ID:          "featured-3",
		Name:        "Navratri Celebration",
		Date:        time.Date(2026, time.September, 15, 19, 0, 0, 0, IST),
		Description: "Nine-day festival celebrating the divine feminine with cultural performances.",
		Location:    "Main Hall",
	},
	{
		ID:          "featured-4",
		Name:        "New Year Cultural Night",
		Date:        time.Date(2026, time.January, 1, 20, 0, 0, 0, IST),
		Description: "Ring in the new year with traditional music and cultural performances.",
		Location:    "Auditorium",
	},
}

const clockFormat = "3:04 PM"

// Events returns the programme of the given year, ordered by date.
func Events(year int) []calendar.Event {
	events := make([]calendar.Event, 0, len(programme)+len(featured))

	for i, e := range programme {
		hour, minute := 0, 0
		if t, err := time.Parse(clockFormat, e.at); err == nil {
			hour, minute = t.Hour(), t.Minute()
		}

		events = append(events, calendar.Event{
			ID:       fmt.Sprintf("%d-%02d", year, i+1),
			Name:     e.name,
			Date:     time.Date(year, e.month, e.day, hour, minute, 0, 0, IST),
			Time:     e.at,
			Location: e.location,
		})
	}

	for _, e := range featured {
		if e.Date.Year() == year {
			e.Time = e.Date.Format(clockFormat)
			events = append(events, e)
		}
	}

	calendar.SortByDate(events)

	return events
}
