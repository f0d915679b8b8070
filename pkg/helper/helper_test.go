package helper

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, 0, CalculateOffset(1, 10))
	assert.Equal(t, 20, CalculateOffset(3, 10))
	assert.Equal(t, 0, CalculateOffset(0, 10))
	assert.Equal(t, 0, CalculateOffset(2, 0))
	assert.Equal(t, math.MaxInt, CalculateOffset(math.MaxInt/50, 100))
}

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 1, CalculateTotalPages(0, 10))
	assert.Equal(t, 1, CalculateTotalPages(10, 10))
	assert.Equal(t, 2, CalculateTotalPages(11, 10))
	assert.Equal(t, 1, CalculateTotalPages(5, 0))
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, Paginate(items, 1, 2))
	assert.Equal(t, []int{5}, Paginate(items, 3, 2))
	assert.Empty(t, Paginate(items, 4, 2))
	assert.Empty(t, Paginate(items, 1, 0))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, Paginate(items, 1, math.MaxInt))

	t.Run("success: huge page is empty", func(t *testing.T) {
		assert.NotPanics(t, func() {
			assert.Empty(t, Paginate(items, math.MaxInt/50, 100))
		})
	})
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "culturepay:cache:donations", BuildCacheKey("donations"))
	assert.Equal(t, "culturepay:cache:donations:all", BuildCacheKey("donations", "all"))
	assert.Equal(t, "culturepay:cache:donations", BuildCacheKey("donations", ""))
}

func TestDefaultPagination(t *testing.T) {
	page, limit := DefaultPagination(0, -1)

	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)
}

func TestTimezone(t *testing.T) {
	t.Run("error: unknown zone falls back to UTC", func(t *testing.T) {
		assert.Error(t, InitTimezone("Nowhere/Unknown"))
		assert.Equal(t, time.UTC, AppTimezone)
	})

	t.Run("success: known zone", func(t *testing.T) {
		assert.NoError(t, InitTimezone("UTC"))

		ts := time.Date(2026, time.October, 15, 10, 0, 0, 0, time.FixedZone("IST", 19800))
		assert.Equal(t, 4, ToAppTimezone(ts).Hour())
	})
}
