package search

import (
	"fmt"

	"github.com/hireloop/radar/pkg/logx"
	"github.com/hireloop/radar/recruitment/candidate"
)

// Dimension weights on the 0-100 point scale.
const (
	weightRole             = 45.0
	weightResponsibilities = 30.0
	weightExperience       = 20.0
	weightLocation         = 15.0
	weightSkills           = 15.0
	weightEducation        = 5.0

	// roleMismatchPenalty is subtracted when the role score is at or
	// below roleMismatchThreshold. Responsibilities can partially
	// compensate but rarely enough to overtake a correct-role candidate.
	roleMismatchPenalty   = 20.0
	roleMismatchThreshold = 0.3
)

// Display thresholds: a dimension is explained in MatchingCriteria only
// when its raw score clears these. Presentation filtering, not scoring.
const (
	displayRole             = 0.2
	displayResponsibilities = 0.1
	displayExperience       = 0.2
	displayLocation         = 0.2
	displaySkills           = 0.1
	displayEducation        = 0.1
)

// Ranker combines the field scorers into a single relevance score per
// candidate, filters by the minimum relevance and sorts descending.
type Ranker struct {
	scorer *Scorer
}

// NewRanker creates a ranker over the given scorer. A nil scorer selects
// the default tables.
func NewRanker(scorer *Scorer) *Ranker {
	if scorer == nil {
		scorer = NewScorer(nil)
	}
	return &Ranker{scorer: scorer}
}

// Rank scores every candidate against the requirement. It always
// terminates and never fails the batch: a scoring problem on one
// candidate drops only that candidate's affected dimensions.
func (r *Ranker) Rank(req *Requirement, candidates []candidate.Candidate) []ScoredCandidate {
	if req == nil || !req.HasCriteria() {
		return nil
	}

	results := make([]ScoredCandidate, 0, len(candidates))
	for i := range candidates {
		scored, ok := r.rankOne(req, candidates[i])
		if !ok || scored.RelevanceScore < MinRelevance {
			continue
		}
		results = append(results, scored)
	}

	SortByRelevance(results)
	return results
}

// rankOne scores a single candidate. A panic while scoring is recovered
// so one malformed profile cannot abort the batch.
func (r *Ranker) rankOne(req *Requirement, c candidate.Candidate) (scored ScoredCandidate, ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			logx.Warnf("scoring candidate %s panicked: %v", c.ID, rec)
			ok = false
		}
	}()

	var points float64
	var criteria []string

	// Role first: the mismatch penalty is applied before the
	// responsibility bonus so wrong-role candidates can recover only
	// partially.
	if req.Role != nil {
		score := r.scorer.RoleScore(*req.Role, &c)
		points += weightRole * score
		if score <= roleMismatchThreshold {
			points -= roleMismatchPenalty
		}
		if score > displayRole {
			criteria = append(criteria, fmt.Sprintf("Role matches %q (%.0f%%)", *req.Role, score*100))
		}
	}

	if len(req.ImpliedResponsibilities) > 0 {
		score := r.scorer.ResponsibilityScore(req.ImpliedResponsibilities, &c)
		points += weightResponsibilities * score
		if score > displayResponsibilities {
			criteria = append(criteria, fmt.Sprintf("Profile covers %.0f%% of typical responsibilities", score*100))
		}
	}

	if !req.Experience.IsEmpty() {
		score := r.scorer.ExperienceScore(req.Experience, &c)
		points += weightExperience * score
		if score > displayExperience {
			criteria = append(criteria, fmt.Sprintf("Experience %q fits requirement (%.0f%%)", c.TotalExperience, score*100))
		}
	}

	if req.Location != nil {
		score := r.scorer.LocationScore(*req.Location, &c)
		points += weightLocation * score
		if score > displayLocation {
			criteria = append(criteria, fmt.Sprintf("Location matches %q", *req.Location))
		}
	}

	if len(req.Skills) > 0 {
		score := r.scorer.SkillsScore(req.Skills, &c)
		points += weightSkills * score
		if score > displaySkills {
			criteria = append(criteria, fmt.Sprintf("Has %.0f%% of required skills", score*100))
		}
	}

	if req.Education != nil {
		score := r.scorer.EducationScore(*req.Education, &c)
		points += weightEducation * score
		if score > displayEducation {
			criteria = append(criteria, fmt.Sprintf("Qualification meets %q", *req.Education))
		}
	}

	scored = NewScoredCandidate(c, points/100)
	scored.MatchingCriteria = criteria
	return scored, true
}
