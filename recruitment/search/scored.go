package search

import (
	"math"
	"sort"

	"github.com/hireloop/radar/recruitment/candidate"
)

// MaxRelevance caps the relevance score below 1 to avoid false certainty.
const MaxRelevance = 0.95

// MinRelevance is the cutoff below which candidates are dropped from
// ranked results.
const MinRelevance = 0.15

// ScoredCandidate is an ephemeral per-request projection of a candidate
// with its relevance against one requirement. It never mutates or
// outlives the underlying candidate record.
type ScoredCandidate struct {
	Candidate        candidate.Candidate `json:"candidate"`
	RelevanceScore   float64             `json:"relevance_score"`
	MatchPercentage  int                 `json:"match_percentage"`
	MatchingCriteria []string            `json:"matching_criteria,omitempty"`
	MatchingKeywords []string            `json:"matching_keywords,omitempty"`
}

func NewScoredCandidate(c candidate.Candidate, relevance float64) ScoredCandidate {
	if relevance > MaxRelevance {
		relevance = MaxRelevance
	}
	if relevance < 0 {
		relevance = 0
	}
	return ScoredCandidate{
		Candidate:       c,
		RelevanceScore:  relevance,
		MatchPercentage: int(math.Round(relevance * 100)),
	}
}

// SortByRelevance orders candidates by descending relevance.
func SortByRelevance(list []ScoredCandidate) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].RelevanceScore > list[j].RelevanceScore
	})
}

// SimilarCandidate is a candidate ranked by similarity to a job title,
// used when drafting job descriptions.
type SimilarCandidate struct {
	Candidate  candidate.Candidate `json:"candidate"`
	Similarity float64             `json:"similarity"`
	Basis      SimilarityBasis     `json:"basis"`
}

// SimilarityBasis records how a similarity value was produced.
type SimilarityBasis string

const (
	BasisEmbedding SimilarityBasis = "embedding" // cosine over vectors
	BasisText      SimilarityBasis = "text"      // fuzzy text estimate after an embedding failure
)
