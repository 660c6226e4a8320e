package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		wantOffset uint64
		wantLimit  int
	}{
		{name: "first page", page: 1, size: 10, wantOffset: 0, wantLimit: 10},
		{name: "third page", page: 3, size: 20, wantOffset: 40, wantLimit: 20},
		{name: "zero page defaults to first", page: 0, size: 10, wantOffset: 0, wantLimit: 10},
		{name: "negative page defaults to first", page: -5, size: 10, wantOffset: 0, wantLimit: 10},
		{name: "zero size defaults", page: 2, size: 0, wantOffset: 10, wantLimit: DefaultPageSize},
		{name: "oversized size capped to default", page: 1, size: 1000, wantOffset: 0, wantLimit: DefaultPageSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tt.page, tt.size)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	t.Run("exact division", func(t *testing.T) {
		info := NewPaginationInfo(40, 2, 10)
		assert.Equal(t, 2, info.CurrentPage)
		assert.Equal(t, 4, info.TotalPages)
		assert.Equal(t, 10, info.PageSize)
		assert.Equal(t, int64(40), info.TotalItems)
	})

	t.Run("partial last page", func(t *testing.T) {
		info := NewPaginationInfo(41, 1, 10)
		assert.Equal(t, 5, info.TotalPages)
	})

	t.Run("no items", func(t *testing.T) {
		info := NewPaginationInfo(0, 1, 10)
		assert.Equal(t, 1, info.TotalPages)
		assert.Equal(t, 1, info.CurrentPage)
	})

	t.Run("page beyond range clamps", func(t *testing.T) {
		info := NewPaginationInfo(10, 9, 10)
		assert.Equal(t, 1, info.CurrentPage)
	})
}
