package search

import (
	"testing"

	"github.com/hireloop/radar/pkg/kernel"
	"github.com/hireloop/radar/recruitment/candidate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordSearchEmptyQuery(t *testing.T) {
	pool := []candidate.Candidate{{Name: "Asha"}}

	assert.Empty(t, KeywordSearch("", pool))
	assert.Empty(t, KeywordSearch("   ", pool))
	assert.Empty(t, KeywordSearch("a", pool)) // single-rune terms are dropped
}

func TestKeywordSearchMatchesAcrossFields(t *testing.T) {
	pool := []candidate.Candidate{
		{
			ID:          kernel.NewCandidateID("role-hit"),
			CurrentRole: "Fleet Manager",
		},
		{
			ID:         kernel.NewCandidateID("resume-hit"),
			ResumeText: "worked as fleet coordinator managing vehicles",
		},
		{
			ID:   kernel.NewCandidateID("no-hit"),
			Name: "Asha Point",
		},
	}

	results := KeywordSearch("fleet manager", pool)
	require.Len(t, results, 2)

	// current_role carries more weight than resume_text, and the full
	// phrase appears there too.
	assert.Equal(t, kernel.CandidateID("role-hit"), results[0].Candidate.ID)
	assert.Contains(t, results[0].MatchingKeywords, "fleet")
	assert.Contains(t, results[0].MatchingKeywords, "manager")
}

func TestKeywordSearchWordBoundaries(t *testing.T) {
	pool := []candidate.Candidate{
		{
			ID:          kernel.NewCandidateID("whole-word"),
			CurrentRole: "Store Manager",
		},
		{
			// Neither term appears as a whole word, only as substrings.
			ID:          kernel.NewCandidateID("substring-only"),
			CurrentRole: "Storefront Managert",
		},
	}

	results := KeywordSearch("store manager", pool)
	require.Len(t, results, 1)
	assert.Equal(t, kernel.CandidateID("whole-word"), results[0].Candidate.ID)
}

func TestKeywordSearchCoverageRewardsMoreTerms(t *testing.T) {
	both := candidate.Candidate{
		ID:              kernel.NewCandidateID("both"),
		Summary:         "seasoned warehouse professional",
		TechnicalSkills: []string{"inventory"},
	}
	one := candidate.Candidate{
		ID:      kernel.NewCandidateID("one"),
		Summary: "seasoned warehouse professional",
	}

	results := KeywordSearch("warehouse inventory", []candidate.Candidate{one, both})
	require.Len(t, results, 2)
	assert.Equal(t, kernel.CandidateID("both"), results[0].Candidate.ID)
	assert.Greater(t, results[0].RelevanceScore, results[1].RelevanceScore)
}

func TestKeywordSearchScoreBounds(t *testing.T) {
	spammy := candidate.Candidate{
		ID:              kernel.NewCandidateID("spam"),
		Name:            "fleet fleet fleet",
		CurrentRole:     "fleet manager of fleet",
		DesiredRole:     "fleet manager",
		Summary:         "fleet fleet fleet fleet manager",
		ResumeText:      "fleet manager fleet manager fleet",
		TechnicalSkills: []string{"fleet", "manager"},
	}

	results := KeywordSearch("fleet manager", []candidate.Candidate{spammy})
	require.Len(t, results, 1)
	assert.LessOrEqual(t, results[0].RelevanceScore, 1.0)
	assert.Equal(t, MaxRelevance, NewScoredCandidate(spammy, results[0].RelevanceScore+1).RelevanceScore)
}
