package paging

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlice(t *testing.T) {
	all := []int{1, 2, 3, 4, 5, 6, 7}

	p := Slice(all, NewRequest(2, 5))
	assert.Equal(t, []int{6, 7}, p.Items)
	assert.Equal(t, 2, p.Number)
	assert.Equal(t, 7, p.TotalItems)
	assert.Equal(t, 2, p.TotalPages())

	beyond := Slice(all, NewRequest(4, 5))
	assert.True(t, beyond.Empty())
	assert.Equal(t, 7, beyond.TotalItems)
}

func TestNewRequestDefaults(t *testing.T) {
	r := NewRequest(0, 0)
	assert.Equal(t, 1, r.Page)
	assert.Equal(t, DefaultSize, r.Size)
	assert.Equal(t, 0, r.Offset())
	assert.Equal(t, 10, NewRequest(3, 5).Offset())
}

func TestNewRequestHugePage(t *testing.T) {
	for _, page := range []int{math.MaxInt, math.MaxInt/5 + 1, 1844674407370955163} {
		r := NewRequest(page, 5)
		assert.Equal(t, 1, r.Page, "page %d", page)
		assert.GreaterOrEqual(t, r.Offset(), 0)
	}

	last := NewRequest(math.MaxInt/5, 5)
	assert.Equal(t, math.MaxInt/5, last.Page)
	assert.Positive(t, last.Offset())
	assert.True(t, Slice([]int{1, 2, 3}, last).Empty())

	p := Slice([]int{1, 2, 3}, NewRequest(math.MaxInt, 5))
	assert.Equal(t, []int{1, 2, 3}, p.Items)
	assert.Equal(t, 1, p.Number)
}

func TestParsePage(t *testing.T) {
	assert.Equal(t, 1, ParsePage(""))
	assert.Equal(t, 1, ParsePage("abc"))
	assert.Equal(t, 1, ParsePage("-2"))
	assert.Equal(t, 3, ParsePage("3"))
}

func TestTotalPagesZeroSize(t *testing.T) {
	assert.Equal(t, 0, Page[int]{TotalItems: 4}.TotalPages())
}
