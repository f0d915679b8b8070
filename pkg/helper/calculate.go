package helper

import "math"

// CalculateOffset saturates at math.MaxInt instead of wrapping on huge pages.
func CalculateOffset(page, limit int) int {
	if page <= 0 || limit <= 0 {
		return 0
	}

	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}

	return (page - 1) * limit
}

func CalculateTotalPages(totalItems, limit int) int {
	if totalItems <= 0 || limit <= 0 {
		return 1
	}

	return (totalItems + limit - 1) / limit
}

// Paginate returns the window of items for the given page, clamped to the slice bounds.
func Paginate[T any](items []T, page, limit int) []T {
	offset := CalculateOffset(page, limit)
	if limit <= 0 || offset < 0 || offset >= len(items) {
		return []T{}
	}

	end := len(items)
	if limit < end-offset {
		end = offset + limit
	}

	return items[offset:end]
}
