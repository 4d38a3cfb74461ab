package search

import (
	"testing"

	"github.com/hireloop/radar/pkg/kernel"
	"github.com/stretchr/testify/assert"
)

func TestCosineSimilarity(t *testing.T) {
	t.Run("identical vectors", func(t *testing.T) {
		v := kernel.Embedding{0.5, 0.5, 0.5}
		assert.InDelta(t, 1.0, CosineSimilarity(v, v), 0.0001)
	})

	t.Run("orthogonal vectors", func(t *testing.T) {
		a := kernel.Embedding{1, 0}
		b := kernel.Embedding{0, 1}
		assert.InDelta(t, 0.0, CosineSimilarity(a, b), 0.0001)
	})

	t.Run("opposite vectors", func(t *testing.T) {
		a := kernel.Embedding{1, 1}
		b := kernel.Embedding{-1, -1}
		assert.InDelta(t, -1.0, CosineSimilarity(a, b), 0.0001)
	})

	t.Run("length mismatch scores zero", func(t *testing.T) {
		a := kernel.Embedding{1, 2, 3}
		b := kernel.Embedding{1, 2}
		assert.Equal(t, 0.0, CosineSimilarity(a, b))
	})

	t.Run("empty and zero vectors score zero", func(t *testing.T) {
		assert.Equal(t, 0.0, CosineSimilarity(nil, nil))
		assert.Equal(t, 0.0, CosineSimilarity(kernel.Embedding{0, 0}, kernel.Embedding{1, 1}))
	})
}

func TestTextSimilarity(t *testing.T) {
	t.Run("equal titles", func(t *testing.T) {
		assert.Equal(t, 0.9, TextSimilarity("Warehouse Manager", "warehouse manager"))
	})

	t.Run("normalization makes plurals equal", func(t *testing.T) {
		assert.Equal(t, 0.9, TextSimilarity("operations manager", "operation manager"))
	})

	t.Run("containment", func(t *testing.T) {
		assert.Equal(t, 0.75, TextSimilarity("warehouse manager", "senior warehouse manager"))
	})

	t.Run("word overlap", func(t *testing.T) {
		got := TextSimilarity("fleet operations manager", "transport manager")
		assert.InDelta(t, 0.2, got, 0.0001) // one of three query words overlaps
	})

	t.Run("no overlap", func(t *testing.T) {
		assert.Equal(t, 0.0, TextSimilarity("accountant", "chef"))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, 0.0, TextSimilarity("", "warehouse manager"))
		assert.Equal(t, 0.0, TextSimilarity("warehouse manager", ""))
	})
}

func TestSortBySimilarity(t *testing.T) {
	list := []SimilarCandidate{
		{Similarity: 0.4},
		{Similarity: 0.9},
		{Similarity: 0.6},
	}

	SortBySimilarity(list)
	assert.Equal(t, 0.9, list[0].Similarity)
	assert.Equal(t, 0.6, list[1].Similarity)
	assert.Equal(t, 0.4, list[2].Similarity)
}
