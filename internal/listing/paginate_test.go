package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPaginateExactCover(t *testing.T) {
	// Every item appears exactly once across consecutive pages.
	items := seq(47)
	size := 10

	seen := map[int]int{}
	page := 1
	for {
		p := Paginate(items, page, size)
		assert.Equal(t, page, p.Pagination.CurrentPage)
		assert.Equal(t, 47, p.Pagination.TotalItems)
		assert.Equal(t, 5, p.Pagination.TotalPages)
		for _, it := range p.Items {
			seen[it]++
		}
		if page >= p.Pagination.TotalPages {
			break
		}
		page++
	}

	assert.Len(t, seen, 47)
	for it, n := range seen {
		assert.Equalf(t, 1, n, "item %d appeared %d times", it, n)
	}
}

func TestPaginatePastEndIsEmpty(t *testing.T) {
	p := Paginate(seq(5), 99, 10)
	assert.Empty(t, p.Items)
	assert.Equal(t, 99, p.Pagination.CurrentPage)
	assert.Equal(t, 5, p.Pagination.TotalItems)
	assert.Equal(t, 1, p.Pagination.TotalPages)
}

func TestPaginateClampsDegenerateInputs(t *testing.T) {
	p := Paginate(seq(3), 0, 0)
	assert.Equal(t, 1, p.Pagination.CurrentPage)
	assert.Equal(t, 1, p.Pagination.ItemsPerPage)
	assert.Equal(t, []int{1}, p.Items)
}

func TestPaginateEmptySet(t *testing.T) {
	p := Paginate([]int{}, 1, 10)
	assert.Empty(t, p.Items)
	assert.Equal(t, 0, p.Pagination.TotalItems)
	assert.Equal(t, 0, p.Pagination.TotalPages)
}

func TestPaginateAndFilterRederivesTotals(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }

	p := PaginateAndFilter(seq(25), even, 1, 5)
	assert.Equal(t, []int{2, 4, 6, 8, 10}, p.Items)
	assert.Equal(t, 12, p.Pagination.TotalItems)
	assert.Equal(t, 3, p.Pagination.TotalPages)
}

func TestPaginateAndFilterNilPredicate(t *testing.T) {
	p := PaginateAndFilter(seq(4), nil, 1, 10)
	assert.Equal(t, []int{1, 2, 3, 4}, p.Items)
}
