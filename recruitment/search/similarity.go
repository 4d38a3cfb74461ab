package search

import (
	"math"
	"sort"
	"strings"

	"github.com/hireloop/radar/pkg/kernel"
)

const (
	// SimilarityThreshold is the minimum similarity for a candidate to be
	// considered related to a job title.
	SimilarityThreshold = 0.3

	// SimilarTopK is the number of similar candidates retained.
	SimilarTopK = 15
)

// CosineSimilarity computes the cosine of the angle between two
// embeddings. Mismatched or empty vectors are a contract failure and
// score 0 rather than erroring.
func CosineSimilarity(a, b kernel.Embedding) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// TextSimilarity is the embedding-free estimate used when embedding
// generation fails for a candidate: normalized title containment first,
// then word overlap.
func TextSimilarity(queryTitle, roleText string) float64 {
	a := normalizeRole(queryTitle)
	b := normalizeRole(roleText)
	if a == "" || b == "" {
		return 0
	}

	if a == b {
		return 0.9
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return 0.75
	}

	aWords := strings.Fields(a)
	bWords := strings.Fields(b)
	if len(aWords) == 0 || len(bWords) == 0 {
		return 0
	}

	bSet := make(map[string]struct{}, len(bWords))
	for _, w := range bWords {
		bSet[w] = struct{}{}
	}
	matched := 0
	for _, w := range aWords {
		if _, ok := bSet[w]; ok {
			matched++
		}
	}

	return 0.6 * float64(matched) / float64(len(aWords))
}

// SortBySimilarity orders similar candidates by descending similarity.
func SortBySimilarity(list []SimilarCandidate) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Similarity > list[j].Similarity
	})
}
