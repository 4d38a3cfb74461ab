package search

import (
	"testing"

	"github.com/hireloop/radar/recruitment/candidate"
	"github.com/stretchr/testify/assert"
)

func TestResponsibilityScore(t *testing.T) {
	s := NewScorer(nil)

	t.Run("verbatim phrase outweighs keyword hit", func(t *testing.T) {
		exact := &candidate.Candidate{
			ResumeText: "responsible for inventory audit reconciliation and dispatch",
		}
		partial := &candidate.Candidate{
			ResumeText: "handled audit and reconciliation of warehouse records",
		}

		resp := []string{"inventory audit reconciliation", "staff supervision"}
		assert.Greater(t, s.ResponsibilityScore(resp, exact), s.ResponsibilityScore(resp, partial))
	})

	t.Run("single verbatim hit cannot saturate", func(t *testing.T) {
		c := &candidate.Candidate{
			ResumeText: "performed inventory audit weekly",
		}

		score := s.ResponsibilityScore([]string{"inventory audit", "staff supervision"}, c)
		assert.Greater(t, score, 0.0)
		assert.Less(t, score, 1.0)
	})

	t.Run("full verbatim coverage still reaches one", func(t *testing.T) {
		c := &candidate.Candidate{
			ResumeText: "ran inventory audit and staff supervision across two sites",
		}

		assert.Equal(t, 1.0, s.ResponsibilityScore([]string{"inventory audit", "staff supervision"}, c))
	})

	t.Run("partial keyword coverage gives partial credit", func(t *testing.T) {
		c := &candidate.Candidate{
			ResumeText: "performed audit of inventory weekly and reported shrinkage",
		}

		score := s.ResponsibilityScore([]string{"inventory audit", "staff supervision"}, c)
		assert.Greater(t, score, 0.0)
		assert.Less(t, score, 1.0)
	})

	t.Run("work history and projects feed the corpus", func(t *testing.T) {
		c := &candidate.Candidate{
			WorkHistory: []candidate.WorkHistoryEntry{
				{Role: "Store Keeper", Description: "handled vendor coordination and stock reconciliation"},
			},
			Projects: []string{"fleet route optimization pilot"},
		}

		score := s.ResponsibilityScore([]string{"vendor coordination", "route optimization"}, c)
		assert.Greater(t, score, 0.0)
	})

	t.Run("keyword ratio below threshold contributes nothing", func(t *testing.T) {
		c := &candidate.Candidate{
			ResumeText: "inventory only",
		}

		// one of four keywords present, below the required ratio
		assert.Equal(t, 0.0, s.ResponsibilityScore([]string{"inventory shrinkage reconciliation reporting"}, c))
	})

	t.Run("empty corpus scores zero", func(t *testing.T) {
		assert.Equal(t, 0.0, s.ResponsibilityScore([]string{"inventory audit"}, &candidate.Candidate{}))
	})

	t.Run("capped at one", func(t *testing.T) {
		c := &candidate.Candidate{
			ResumeText: "inventory audit staff supervision dispatch planning vendor management",
		}
		resp := []string{"inventory audit", "staff supervision", "dispatch planning", "vendor management"}
		assert.LessOrEqual(t, s.ResponsibilityScore(resp, c), 1.0)
	})
}
