package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		wantOffset int
		wantSize   int
	}{
		{"first page", 1, 10, 0, 10},
		{"third page", 3, 10, 20, 10},
		{"zero page falls back to first", 0, 10, 0, 10},
		{"negative page falls back to first", -5, 25, 0, 25},
		{"zero limit falls back to default", 2, 0, 10, 10},
		{"oversized limit falls back to default", 1, 500, 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, size := CalculateOffsetLimit(tt.page, tt.limit)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantSize, size)
		})
	}
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(25, 1, 10)
	assert.Equal(t, int64(25), p.Total)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, 3, p.TotalPages)
}

func TestNewPaginationEmpty(t *testing.T) {
	p := NewPagination(0, 1, 10)
	assert.Equal(t, 0, p.TotalPages)
}

func TestNewPaginationExactMultiple(t *testing.T) {
	p := NewPagination(30, 2, 10)
	assert.Equal(t, 3, p.TotalPages)
}

func TestParsePaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, 10},
		{"explicit values", "page=4&limit=50", 4, 50},
		{"garbage falls back", "page=abc&limit=xyz", 1, 10},
		{"out of range falls back", "page=-1&limit=9999", 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/?"+tt.query, nil)

			page, limit := ParsePaginationParams(c)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}
