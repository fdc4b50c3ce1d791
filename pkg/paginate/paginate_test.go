//go:build unit

package paginate

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makePage builds a page of sequential integers starting at offset.
func makePage(offset, count, total int) Page[int] {
	items := make([]int, count)
	for i := range items {
		items[i] = offset + i
	}
	return Page[int]{Items: items, Total: total, PageItemCount: count}
}

func TestAll_StopsAfterShortPage(t *testing.T) {
	// 3 pages of sizes 100, 100, 37 at page size 100.
	pageSizes := map[int]int{0: 100, 100: 100, 200: 37}
	calls := 0

	items, err := All(100, func(offset int) (Page[int], error) {
		calls++
		size, ok := pageSizes[offset]
		require.True(t, ok, "unexpected offset %d", offset)
		return makePage(offset, size, 237), nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	require.Len(t, items, 237)

	// Arrival order is preserved.
	for i, item := range items {
		assert.Equal(t, i, item)
	}
}

func TestAll_StopsWhenTotalReached(t *testing.T) {
	// Full last page: the total, not a short page, terminates traversal.
	calls := 0

	items, err := All(50, func(offset int) (Page[int], error) {
		calls++
		return makePage(offset, 50, 100), nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Len(t, items, 100)
}

func TestAll_SingleShortPage(t *testing.T) {
	items, err := All(100, func(offset int) (Page[int], error) {
		return makePage(offset, 3, 3), nil
	})

	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestAll_EmptyListing(t *testing.T) {
	items, err := All(100, func(int) (Page[int], error) {
		return Page[int]{Total: 0}, nil
	})

	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAll_FilteredItemsStillTerminate(t *testing.T) {
	// A caller that filters client-side returns fewer Items than
	// PageItemCount; termination must rely on the raw per-page count.
	calls := 0

	items, err := All(100, func(offset int) (Page[int], error) {
		calls++
		if offset == 0 {
			// Full page, everything filtered out.
			return Page[int]{Items: nil, Total: 130, PageItemCount: 100}, nil
		}
		// Short page, two items survive the filter.
		return Page[int]{Items: []int{offset, offset + 1}, Total: 130, PageItemCount: 30}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, []int{100, 101}, items)
}

func TestAll_FailurePropagatesWithOffset(t *testing.T) {
	fetchErr := errors.New("boom")

	items, err := All(100, func(offset int) (Page[int], error) {
		if offset == 100 {
			return Page[int]{}, fetchErr
		}
		return makePage(offset, 100, 237), nil
	})

	// Partial results are discarded.
	assert.Nil(t, items)
	require.Error(t, err)
	assert.ErrorIs(t, err, fetchErr)
	assert.Contains(t, err.Error(), "offset 100")
}

func TestAll_RejectsInvalidPageSize(t *testing.T) {
	_, err := All(0, func(int) (Page[int], error) {
		return Page[int]{}, nil
	})
	assert.ErrorIs(t, err, ErrInvalidPageSize)
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total    int
		limit    int
		expected int
	}{
		{total: 100, limit: 50, expected: 2},
		{total: 101, limit: 50, expected: 3},
		{total: 0, limit: 50, expected: 1},
		{total: 5, limit: 1, expected: 5},
		{total: 1, limit: 100, expected: 1},
		{total: 49, limit: 50, expected: 1},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_per_%d", tt.total, tt.limit), func(t *testing.T) {
			assert.Equal(t, tt.expected, TotalPages(tt.total, tt.limit))
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 50))
	assert.Equal(t, 20, Offset(3, 10))
	assert.Equal(t, 0, Offset(0, 50))
	assert.Equal(t, 0, Offset(-5, 50))
}

func TestOffset_SaturatesOnHugePages(t *testing.T) {
	// The product must never wrap negative, whatever the page value.
	assert.Equal(t, math.MaxInt, Offset(math.MaxInt/50+2, 50))
	assert.Equal(t, math.MaxInt, Offset(math.MaxInt, 100))
	assert.GreaterOrEqual(t, Offset(math.MaxInt/50+1, 50), 0)

	// The largest non-saturating page still computes exactly.
	assert.Equal(t, math.MaxInt-1, Offset(math.MaxInt, 1))
}
