// Package paginate provides offset/limit pagination traversal and page math
// for the Detail API list endpoints.
package paginate

import (
	"fmt"
	"math"
)

// DefaultPageSize is the page size used for full traversals; it matches the
// service's per-page maximum.
const DefaultPageSize = 100

// Page is one page of a list endpoint. Total is the authoritative item count
// across all pages. PageItemCount is the number of items the server returned
// for this page; callers that filter Items client-side must keep it at the
// raw count so short-page termination still works.
type Page[T any] struct {
	Items         []T
	Total         int
	PageItemCount int
}

// FetchFunc retrieves one page starting at the given offset.
type FetchFunc[T any] func(offset int) (Page[T], error)

// All fetches every accessible item by walking pages of pageSize from offset
// 0. Items are accumulated in arrival order, never reordered or deduplicated.
// Traversal stops on a short page (fewer items than requested) or once the
// server-reported total has been fetched. Any page failure aborts the whole
// traversal; partial results are discarded.
func All[T any](pageSize int, fetch FetchFunc[T]) ([]T, error) {
	if pageSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPageSize, pageSize)
	}

	var items []T
	fetched := 0

	for offset := 0; ; offset += pageSize {
		page, err := fetch(offset)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch page at offset %d: %w", offset, err)
		}

		items = append(items, page.Items...)
		fetched += page.PageItemCount

		if page.PageItemCount < pageSize {
			break
		}
		if page.Total > 0 && fetched >= page.Total {
			break
		}
	}

	return items, nil
}

// TotalPages computes the number of pages needed to display total items at
// limit per page. An empty result set still displays as one page.
func TotalPages(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 1
	}
	pages := (total + limit - 1) / limit
	if pages < 1 {
		return 1
	}
	return pages
}

// Offset converts a 1-based page number to a 0-based item offset, saturating
// at 0 below and at MaxInt above so pathological page values never wrap to a
// negative offset. Page numbers below 1 are rejected by flag validation
// before reaching this point.
func Offset(page, limit int) int {
	if page < 1 || limit < 1 {
		return 0
	}
	pages := page - 1
	if pages > math.MaxInt/limit {
		return math.MaxInt
	}
	return pages * limit
}
