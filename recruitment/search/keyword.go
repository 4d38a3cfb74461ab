package search

import (
	"regexp"
	"strings"

	"github.com/hireloop/radar/recruitment/candidate"
)

const (
	// phraseBoost multiplies a field's weight when the whole cleaned
	// query appears in it.
	phraseBoost = 1.2

	// termBase and occurrenceStep shape per-term contributions: a match
	// is worth weight*(termBase + min(occurrenceCap, occurrences*step)).
	termBase          = 0.6
	occurrenceStep    = 0.25
	occurrenceCap     = 1.0
	coverageBonus     = 0.2
	keywordResultsCap = 200
)

// keywordField pairs a candidate field extractor with its weight.
type keywordField struct {
	name   string
	weight float64
	value  func(c *candidate.Candidate) string
}

var keywordFields = []keywordField{
	{"name", 0.2, func(c *candidate.Candidate) string { return c.Name }},
	{"current_role", 0.35, func(c *candidate.Candidate) string { return c.CurrentRole }},
	{"desired_role", 0.2, func(c *candidate.Candidate) string { return c.DesiredRole }},
	{"technical_skills", 0.3, func(c *candidate.Candidate) string { return strings.Join(c.TechnicalSkills, " ") }},
	{"soft_skills", 0.1, func(c *candidate.Candidate) string { return strings.Join(c.SoftSkills, " ") }},
	{"current_company", 0.1, func(c *candidate.Candidate) string { return c.CurrentCompany }},
	{"location", 0.15, func(c *candidate.Candidate) string { return c.Location }},
	{"summary", 0.15, func(c *candidate.Candidate) string { return c.Summary }},
	{"resume_text", 0.1, func(c *candidate.Candidate) string { return c.ResumeText }},
}

// KeywordSearch is the deterministic lexical fallback. It needs no
// external service and no structured parse: phrase containment, per-term
// word-boundary matches with an occurrence boost, and a coverage bonus
// for matching more distinct terms. Scores are clamped to [0,1],
// candidates under MinRelevance are dropped and the result is capped.
func KeywordSearch(query string, candidates []candidate.Candidate) []ScoredCandidate {
	phrase := cleanQuery(query)
	terms := queryTerms(phrase)
	if phrase == "" || len(terms) == 0 {
		return []ScoredCandidate{}
	}

	termPatterns := make([]*regexp.Regexp, len(terms))
	for i, t := range terms {
		termPatterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(t) + `\b`)
	}

	results := make([]ScoredCandidate, 0, len(candidates))
	for i := range candidates {
		c := &candidates[i]

		var score float64
		matchedTerms := make(map[string]struct{})

		for _, field := range keywordFields {
			text := strings.ToLower(field.value(c))
			if text == "" {
				continue
			}

			if strings.Contains(text, phrase) {
				score += field.weight * phraseBoost
			}

			for ti, pattern := range termPatterns {
				occurrences := len(pattern.FindAllStringIndex(text, -1))
				if occurrences == 0 {
					continue
				}
				boost := float64(occurrences) * occurrenceStep
				if boost > occurrenceCap {
					boost = occurrenceCap
				}
				score += field.weight * (termBase + boost)
				matchedTerms[terms[ti]] = struct{}{}
			}
		}

		score += coverageBonus * float64(len(matchedTerms)) / float64(len(terms))

		if score > 1 {
			score = 1
		}
		if score < MinRelevance {
			continue
		}

		scored := NewScoredCandidate(*c, score)
		scored.MatchingKeywords = sortedKeys(matchedTerms, terms)
		results = append(results, scored)
	}

	SortByRelevance(results)
	if len(results) > keywordResultsCap {
		results = results[:keywordResultsCap]
	}
	return results
}

// cleanQuery lower-cases the query and collapses whitespace.
func cleanQuery(query string) string {
	return strings.Join(strings.Fields(strings.ToLower(query)), " ")
}

// queryTerms splits a cleaned query into search terms longer than one rune.
func queryTerms(phrase string) []string {
	fields := strings.Fields(phrase)
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ".,;:()[]\"'")
		if len(f) > 1 {
			terms = append(terms, f)
		}
	}
	return terms
}

// sortedKeys returns the matched terms in original query order.
func sortedKeys(matched map[string]struct{}, order []string) []string {
	out := make([]string, 0, len(matched))
	for _, t := range order {
		if _, ok := matched[t]; ok {
			out = append(out, t)
		}
	}
	return out
}
