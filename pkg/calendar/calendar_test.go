package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countDays(cells []*int) int {
	n := 0
	for _, c := range cells {
		if c != nil {
			n++
		}
	}

	return n
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		want  int
	}{
		{"leap year divisible by 4", 2024, 1, 29},
		{"common year", 2023, 1, 28},
		{"leap year divisible by 400", 2000, 1, 29},
		{"century is not leap", 1900, 1, 28},
		{"january", 2026, 0, 31},
		{"april", 2026, 3, 30},
		{"december", 2026, 11, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysInMonth(tt.year, tt.month))
			assert.Equal(t, tt.want, countDays(Month(tt.year, tt.month)))
		})
	}
}

func TestMonth(t *testing.T) {
	t.Run("success: every month of a range of years", func(t *testing.T) {
		for year := 1899; year <= 2101; year++ {
			for month := 0; month < MonthsPerYear; month++ {
				cells := Month(year, month)
				days := DaysInMonth(year, month)

				require.GreaterOrEqual(t, len(cells), days)
				require.LessOrEqual(t, len(cells), MaxCells)
				require.Equal(t, days, countDays(cells))

				// days match the standard library calendar
				last := time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC).Day()
				require.Equal(t, last, days)
			}
		}
	})

	t.Run("success: leading blanks before the first", func(t *testing.T) {
		// 1 October 2026 is a Thursday
		cells := Month(2026, 9)

		for i := 0; i < 4; i++ {
			assert.Nil(t, cells[i])
		}

		require.NotNil(t, cells[4])
		assert.Equal(t, 1, *cells[4])
		assert.Equal(t, 31, *cells[len(cells)-1])
	})

	t.Run("success: month starting on sunday has no blanks", func(t *testing.T) {
		// 1 February 2026 is a Sunday
		cells := Month(2026, 1)

		require.NotNil(t, cells[0])
		assert.Equal(t, 1, *cells[0])
		assert.Len(t, cells, 28)
	})
}

func TestNavigation(t *testing.T) {
	t.Run("success: prev from january rolls back a year", func(t *testing.T) {
		y, m := Prev(2026, 0)

		assert.Equal(t, 2025, y)
		assert.Equal(t, 11, m)
	})

	t.Run("success: next from december rolls forward a year", func(t *testing.T) {
		y, m := Next(2026, 11)

		assert.Equal(t, 2027, y)
		assert.Equal(t, 0, m)
	})

	t.Run("success: twelve steps forward returns to the same month next year", func(t *testing.T) {
		for month := 0; month < MonthsPerYear; month++ {
			y, m := 2026, month
			for i := 0; i < MonthsPerYear; i++ {
				y, m = Next(y, m)
			}

			assert.Equal(t, 2027, y)
			assert.Equal(t, month, m)
		}
	})

	t.Run("success: next and prev are inverse", func(t *testing.T) {
		for month := 0; month < MonthsPerYear; month++ {
			y, m := Prev(Next(2026, month))

			assert.Equal(t, 2026, y)
			assert.Equal(t, month, m)

			y, m = Next(Prev(2026, month))

			assert.Equal(t, 2026, y)
			assert.Equal(t, month, m)
		}
	})
}

func TestBuild(t *testing.T) {
	events := []Event{
		{ID: "1", Name: "Diwali Celebrations", Date: time.Date(2026, time.November, 10, 17, 30, 0, 0, time.UTC)},
		{ID: "2", Name: "Year-End Gala", Date: time.Date(2026, time.November, 25, 19, 0, 0, 0, time.UTC)},
		{ID: "3", Name: "Other Year", Date: time.Date(2025, time.November, 10, 0, 0, 0, 0, time.UTC)},
		{ID: "4", Name: "Same Day", Date: time.Date(2026, time.November, 10, 9, 0, 0, 0, time.UTC)},
	}

	grid := Build(2026, 10, events)

	assert.Equal(t, "November", grid.MonthName)
	assert.Equal(t, []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}, grid.Headers)
	assert.Equal(t, 30, grid.Days)
	assert.Len(t, grid.Events, 3)

	var tenth, eleventh *Cell
	for i := range grid.Cells {
		c := &grid.Cells[i]
		if c.Day == nil {
			assert.Empty(t, c.Events)
			continue
		}

		switch *c.Day {
		case 10:
			tenth = c
		case 11:
			eleventh = c
		}
	}

	require.NotNil(t, tenth)
	require.NotNil(t, eleventh)
	require.Len(t, tenth.Events, 2)
	assert.Equal(t, "1", tenth.Events[0].ID)
	assert.Equal(t, "4", tenth.Events[1].ID)
	assert.Empty(t, eleventh.Events)
}
