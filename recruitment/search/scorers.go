package search

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/hireloop/radar/recruitment/candidate"
)

// Floor scores. Missing or mismatched data lowers a dimension to its
// floor instead of zero so incomplete profiles stay rankable; the
// aggregation weights still separate strong matches from weak ones.
const (
	roleFloor      = 0.15
	locationFloor  = 0.1
	skillsFloor    = 0.2
	educationFloor = 0.2
)

// Scorer evaluates single requirement dimensions against a candidate.
// All methods are pure, return values in [0,1] and never panic on
// missing or malformed candidate data.
type Scorer struct {
	tables *Tables
}

// NewScorer creates a scorer over the given lookup tables. A nil tables
// argument selects the built-in set.
func NewScorer(tables *Tables) *Scorer {
	if tables == nil {
		tables = DefaultTables()
	}
	return &Scorer{tables: tables}
}

// Tables exposes the lookup data, mainly for the parser and tests.
func (s *Scorer) Tables() *Tables { return s.tables }

// ============================================================================
// Role
// ============================================================================

// RoleScore scores how well the candidate's role matches the required
// one. Exact or containment match scores 1.0, a known synonym 0.8, an
// expected-skill overlap 0.6, anything else the role floor.
func (s *Scorer) RoleScore(required string, c *candidate.Candidate) float64 {
	required = normalizeRole(required)
	if required == "" {
		return 0
	}

	candidateRoles := []string{normalizeRole(c.CurrentRole), normalizeRole(c.DesiredRole)}
	for _, role := range candidateRoles {
		if role == "" {
			continue
		}
		if strings.Contains(role, required) || strings.Contains(required, role) {
			return 1.0
		}
	}

	for _, syn := range s.tables.RoleSynonyms[required] {
		syn = normalizeRole(syn)
		for _, role := range candidateRoles {
			if role == "" {
				continue
			}
			if strings.Contains(role, syn) || strings.Contains(syn, role) {
				return 0.8
			}
		}
	}

	expected := s.tables.RoleExpectedSkills[required]
	if len(expected) > 0 {
		for _, have := range c.AllSkills() {
			have = strings.ToLower(strings.TrimSpace(have))
			for _, want := range expected {
				if have == "" {
					continue
				}
				if strings.Contains(have, want) || strings.Contains(want, have) {
					return 0.6
				}
			}
		}
	}

	return roleFloor
}

// normalizeRole lower-cases a role and strips a trailing "s" from each
// word so "operations" and "operation" compare equal.
func normalizeRole(role string) string {
	role = strings.ToLower(strings.TrimSpace(role))
	if role == "" {
		return ""
	}
	words := strings.Fields(role)
	for i, w := range words {
		if len(w) > 3 && strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss") {
			words[i] = strings.TrimSuffix(w, "s")
		}
	}
	return strings.Join(words, " ")
}

// ============================================================================
// Experience
// ============================================================================

// Experience text patterns, tried in order; the first match wins.
var experiencePatterns = []*regexp.Regexp{
	// "2 years 6 months", "2 yrs and 3 months"
	regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:years?|yrs?)[,\s]*(?:and\s+)?(\d+)\s*months?`),
	// "18 months"
	regexp.MustCompile(`(\d+)\s*months?`),
	// "5 years", "5+ yrs", "5yr"
	regexp.MustCompile(`(\d+(?:\.\d+)?)\s*\+?\s*(?:years?|yrs?)`),
}

// ParseExperienceYears extracts years of experience from free text like
// "5 years" or "2 years 6 months". The second return value is false when
// nothing parses.
func ParseExperienceYears(text string) (float64, bool) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return 0, false
	}

	for i, pattern := range experiencePatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		switch i {
		case 0:
			years, err1 := strconv.ParseFloat(m[1], 64)
			months, err2 := strconv.ParseFloat(m[2], 64)
			if err1 != nil || err2 != nil {
				continue
			}
			return years + months/12, true
		case 1:
			months, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				continue
			}
			return months / 12, true
		default:
			years, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				continue
			}
			return years, true
		}
	}

	return 0, false
}

// ExperienceScore scores the candidate's parsed experience against the
// required range. Exact takes precedence over Min/Max. An unparsable but
// present experience string gets benefit of the doubt at 0.3; a missing
// one 0.2.
func (s *Scorer) ExperienceScore(req *ExperienceRange, c *candidate.Candidate) float64 {
	if req.IsEmpty() {
		return 0
	}

	years, ok := ParseExperienceYears(c.TotalExperience)
	if !ok {
		if strings.TrimSpace(c.TotalExperience) == "" {
			return 0.2
		}
		return 0.3
	}

	if req.Exact != nil {
		if math.Abs(years-*req.Exact) <= 1 {
			return 1.0
		}
		return 0.3
	}

	aboveMin := req.Min == nil || years >= *req.Min
	belowMax := req.Max == nil || years <= *req.Max

	switch {
	case aboveMin && belowMax:
		return 1.0
	case aboveMin:
		// Overqualified still counts positively.
		return 0.8
	default:
		return 0.5
	}
}

// ============================================================================
// Location
// ============================================================================

// LocationScore scores location match: substring either direction 1.0,
// a known alias 0.9, otherwise the location floor.
func (s *Scorer) LocationScore(required string, c *candidate.Candidate) float64 {
	required = strings.ToLower(strings.TrimSpace(required))
	if required == "" {
		return 0
	}

	have := strings.ToLower(strings.TrimSpace(c.Location))
	if have != "" && (strings.Contains(have, required) || strings.Contains(required, have)) {
		return 1.0
	}

	if have != "" {
		for _, alias := range s.tables.CityAliases[required] {
			if strings.Contains(have, alias) || strings.Contains(alias, have) {
				return 0.9
			}
		}
		// Reverse direction: candidate lives in the canonical city, the
		// query names one of its localities.
		for city, aliases := range s.tables.CityAliases {
			if !strings.Contains(have, city) {
				continue
			}
			for _, alias := range aliases {
				if strings.Contains(required, alias) {
					return 0.9
				}
			}
		}
	}

	return locationFloor
}

// ============================================================================
// Skills
// ============================================================================

// SkillsScore returns the fraction of required skills the candidate has,
// counting synonym matches. Either side having no skills at all yields
// the skills floor instead of zero.
func (s *Scorer) SkillsScore(required []string, c *candidate.Candidate) float64 {
	if len(required) == 0 {
		return 0
	}

	have := c.AllSkills()
	if len(have) == 0 {
		return skillsFloor
	}

	lowered := make([]string, 0, len(have))
	for _, h := range have {
		h = strings.ToLower(strings.TrimSpace(h))
		if h != "" {
			lowered = append(lowered, h)
		}
	}
	if len(lowered) == 0 {
		return skillsFloor
	}

	matched := 0
	for _, want := range required {
		want = strings.ToLower(strings.TrimSpace(want))
		if want == "" {
			continue
		}
		if s.skillMatches(want, lowered) {
			matched++
		}
	}

	score := float64(matched) / float64(len(required))
	if score > 1 {
		score = 1
	}
	return score
}

func (s *Scorer) skillMatches(want string, have []string) bool {
	for _, h := range have {
		if strings.Contains(h, want) || strings.Contains(want, h) {
			return true
		}
	}
	for _, syn := range s.tables.SkillSynonyms[want] {
		for _, h := range have {
			if strings.Contains(h, syn) || strings.Contains(syn, h) {
				return true
			}
		}
	}
	return false
}

// ============================================================================
// Education
// ============================================================================

// EducationScore scores the candidate's qualification against the
// required one: direct substring 1.0, at-or-above the required ladder
// level 0.8, below it 0.4, neither side mapping onto the ladder 0.2.
func (s *Scorer) EducationScore(required string, c *candidate.Candidate) float64 {
	required = strings.ToLower(strings.TrimSpace(required))
	if required == "" {
		return 0
	}

	have := strings.ToLower(strings.TrimSpace(c.HighestQualification))
	if have != "" && (strings.Contains(have, required) || strings.Contains(required, have)) {
		return 1.0
	}

	wantLevel, wantOK := s.educationLevel(required)
	haveLevel, haveOK := s.educationLevel(have)
	if !wantOK || !haveOK {
		return educationFloor
	}

	if haveLevel >= wantLevel {
		return 0.8
	}
	return 0.4
}

// educationLevel maps a free-text qualification onto the ladder index.
// The longest matching alias wins, so "post graduate" maps to master even
// though it also contains "graduate".
func (s *Scorer) educationLevel(text string) (int, bool) {
	if text == "" {
		return 0, false
	}

	best := ""
	for alias := range s.tables.EducationAliases {
		if strings.Contains(text, alias) && len(alias) > len(best) {
			best = alias
		}
	}
	if best != "" {
		level := s.tables.EducationAliases[best]
		for i, l := range s.tables.EducationLevels {
			if l == level {
				return i, true
			}
		}
	}

	for i, level := range s.tables.EducationLevels {
		if strings.Contains(text, level) {
			return i, true
		}
	}
	return 0, false
}
