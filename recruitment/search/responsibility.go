package search

import (
	"strings"

	"github.com/hireloop/radar/recruitment/candidate"
)

const (
	// exactPhraseWeight is the contribution of a responsibility phrase
	// found verbatim in the corpus.
	exactPhraseWeight = 1.5

	// keywordMatchRatio is the fraction of a phrase's keywords that must
	// appear in the corpus before partial credit is given.
	keywordMatchRatio = 0.6

	// coverageExpectation discounts the denominator: responsibilities are
	// model-inferred, so a candidate is not expected to evidence all of
	// them explicitly.
	coverageExpectation = 0.7
)

// ResponsibilityScore measures overlap between a list of implied
// responsibilities and the candidate's aggregated free text. Verbatim
// phrase hits weigh more than keyword-level hits; the total is
// normalized against a deliberately reduced coverage expectation and
// capped at 1.
func (s *Scorer) ResponsibilityScore(responsibilities []string, c *candidate.Candidate) float64 {
	if len(responsibilities) == 0 {
		return 0
	}

	corpus := c.FreeTextCorpus()
	if strings.TrimSpace(corpus) == "" {
		return 0
	}

	var total float64
	matchedPhrases := 0
	for _, phrase := range responsibilities {
		phrase = strings.ToLower(strings.TrimSpace(phrase))
		if phrase == "" {
			continue
		}

		if strings.Contains(corpus, phrase) {
			total += exactPhraseWeight
			matchedPhrases++
			continue
		}

		keywords := s.responsibilityKeywords(phrase)
		if len(keywords) == 0 {
			continue
		}
		matched := 0
		for _, kw := range keywords {
			if strings.Contains(corpus, kw) {
				matched++
			}
		}
		ratio := float64(matched) / float64(len(keywords))
		if ratio >= keywordMatchRatio {
			total += ratio
			matchedPhrases++
		}
	}

	// The verbatim boost must not let a partial match saturate: unless
	// every responsibility is evidenced, the total is held to one full
	// credit per matched phrase.
	if matchedPhrases < len(responsibilities) && total > float64(matchedPhrases) {
		total = float64(matchedPhrases)
	}

	score := total / (float64(len(responsibilities)) * coverageExpectation)
	if score > 1 {
		score = 1
	}
	return score
}

// responsibilityKeywords splits a phrase into meaningful keywords,
// dropping short words and stopwords.
func (s *Scorer) responsibilityKeywords(phrase string) []string {
	words := strings.Fields(phrase)
	keywords := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.Trim(w, ".,;:()[]\"'")
		if len(w) <= 3 {
			continue
		}
		if _, stop := s.tables.Stopwords[w]; stop {
			continue
		}
		keywords = append(keywords, w)
	}
	return keywords
}
