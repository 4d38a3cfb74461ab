package search

import "strings"

// Requirement is the structured form of a recruiter query or job
// description. Every field is optional: an absent field means the
// corresponding dimension is simply not scored. Requirements are built
// per request and never persisted.
type Requirement struct {
	Role                    *string          `json:"role,omitempty"`
	Experience              *ExperienceRange `json:"experience,omitempty"`
	Location                *string          `json:"location,omitempty"`
	Skills                  []string         `json:"skills,omitempty"`
	Education               *string          `json:"education,omitempty"`
	Certifications          []string         `json:"certifications,omitempty"`
	SpecificRequirements    []string         `json:"specific_requirements,omitempty"`    // advisory only, never scored
	ImpliedResponsibilities []string         `json:"implied_responsibilities,omitempty"` // typical duties for the role, matched against free text
}

// ExperienceRange holds required years of experience. Exact takes
// precedence over Min/Max when present.
type ExperienceRange struct {
	Min   *float64 `json:"min,omitempty"`
	Max   *float64 `json:"max,omitempty"`
	Exact *float64 `json:"exact,omitempty"`
}

// IsEmpty reports whether no experience constraint is set.
func (e *ExperienceRange) IsEmpty() bool {
	return e == nil || (e.Min == nil && e.Max == nil && e.Exact == nil)
}

// HasCriteria reports whether the requirement contains anything scorable.
// A requirement with no criteria is a caller input error, not something
// to silently rank against.
func (r *Requirement) HasCriteria() bool {
	if r == nil {
		return false
	}
	if r.Role != nil && strings.TrimSpace(*r.Role) != "" {
		return true
	}
	if !r.Experience.IsEmpty() {
		return true
	}
	if r.Location != nil && strings.TrimSpace(*r.Location) != "" {
		return true
	}
	if len(r.Skills) > 0 || len(r.Certifications) > 0 {
		return true
	}
	if r.Education != nil && strings.TrimSpace(*r.Education) != "" {
		return true
	}
	return len(r.ImpliedResponsibilities) > 0
}

// Normalize lower-cases and trims the comparable fields in place and
// drops blank list entries. Scorers assume normalized input.
func (r *Requirement) Normalize() {
	if r == nil {
		return
	}
	r.Role = normalizePtr(r.Role)
	r.Location = normalizePtr(r.Location)
	r.Education = normalizePtr(r.Education)
	r.Skills = normalizeList(r.Skills)
	r.Certifications = normalizeList(r.Certifications)
	r.ImpliedResponsibilities = normalizeList(r.ImpliedResponsibilities)
}

func normalizePtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.ToLower(strings.TrimSpace(*s))
	if v == "" {
		return nil
	}
	return &v
}

func normalizeList(items []string) []string {
	out := items[:0]
	for _, it := range items {
		v := strings.ToLower(strings.TrimSpace(it))
		if v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
