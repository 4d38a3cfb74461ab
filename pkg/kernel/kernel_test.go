package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailIsValid(t *testing.T) {
	assert.True(t, Email("ravi@example.com").IsValid())
	assert.True(t, Email("a@b.co").IsValid())

	assert.False(t, Email("").IsValid())
	assert.False(t, Email("ravi").IsValid())
	assert.False(t, Email("@example.com").IsValid())
	assert.False(t, Email("ravi@").IsValid())
	assert.False(t, Email("ravi@example").IsValid())
}

func TestEmbeddingIsZero(t *testing.T) {
	assert.True(t, Embedding(nil).IsZero())
	assert.True(t, Embedding{}.IsZero())
	assert.False(t, Embedding{0.5}.IsZero())
}

func TestPaginationNormalize(t *testing.T) {
	tests := []struct {
		name     string
		in       PaginationOptions
		wantPage int
		wantSize int
	}{
		{"defaults applied", PaginationOptions{}, 1, 20},
		{"negative page", PaginationOptions{Page: -3, PageSize: 10}, 1, 10},
		{"oversized page size", PaginationOptions{Page: 2, PageSize: 500}, 2, 20},
		{"valid passes through", PaginationOptions{Page: 4, PageSize: 50}, 4, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantSize, got.PageSize)
		})
	}
}

func TestPaginationOffset(t *testing.T) {
	assert.Equal(t, 0, PaginationOptions{Page: 1, PageSize: 20}.Offset())
	assert.Equal(t, 40, PaginationOptions{Page: 3, PageSize: 20}.Offset())
}

func TestPaginatedTotalPages(t *testing.T) {
	assert.Equal(t, 0, NewPaginated([]int{}, 1, 20, 0).TotalPages())
	assert.Equal(t, 1, NewPaginated([]int{1}, 1, 20, 20).TotalPages())
	assert.Equal(t, 2, NewPaginated([]int{1}, 1, 20, 21).TotalPages())
	assert.Equal(t, 5, NewPaginated([]int{1}, 1, 10, 45).TotalPages())
}
