package search

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/hireloop/radar/pkg/logx"
)

// ParseStrategy turns a free-text query into a structured requirement.
// Strategies are tried in order until one yields a requirement with
// scorable criteria; failures only degrade, never surface.
type ParseStrategy interface {
	Name() string
	Parse(ctx context.Context, query string) (*Requirement, error)
}

// Parser runs a ranked chain of parse strategies. It never fails
// outward: the last chain entry is expected to be deterministic.
type Parser struct {
	strategies []ParseStrategy
}

// NewParser builds a parser over the given strategy chain.
func NewParser(strategies ...ParseStrategy) *Parser {
	return &Parser{strategies: strategies}
}

// Parse returns the first requirement with scorable criteria produced by
// the chain, logging each degradation. When every strategy comes up
// empty the best-effort last result is returned rather than an error.
func (p *Parser) Parse(ctx context.Context, query string) *Requirement {
	var last *Requirement
	for _, strategy := range p.strategies {
		req, err := strategy.Parse(ctx, query)
		if err != nil {
			logx.Warnf("parse strategy %s failed, trying next: %v", strategy.Name(), err)
			continue
		}
		req.Normalize()
		if req.HasCriteria() {
			return req
		}
		logx.Debugf("parse strategy %s produced no criteria for %q", strategy.Name(), query)
		last = req
	}
	if last == nil {
		last = &Requirement{}
	}
	return last
}

// ============================================================================
// LLM strategy
// ============================================================================

// PromptStyle selects the instruction framing for the LLM strategy.
type PromptStyle int

const (
	PromptQuery          PromptStyle = iota // short recruiter query
	PromptJobDescription                    // full job description text
)

// LLMStrategy extracts requirements with a language model. Any transport
// or decoding failure is returned to the chain, which falls back to the
// deterministic strategy.
type LLMStrategy struct {
	generator TextGenerator
	style     PromptStyle
}

// NewLLMStrategy creates the model-backed parse strategy.
func NewLLMStrategy(generator TextGenerator, style PromptStyle) *LLMStrategy {
	return &LLMStrategy{generator: generator, style: style}
}

func (s *LLMStrategy) Name() string {
	if s.style == PromptJobDescription {
		return "llm-jd"
	}
	return "llm-query"
}

// requirementWire is the JSON shape requested from the model.
type requirementWire struct {
	Role       string `json:"role"`
	Experience struct {
		Min   *float64 `json:"min"`
		Max   *float64 `json:"max"`
		Exact *float64 `json:"exact"`
	} `json:"experience"`
	Location                string   `json:"location"`
	Skills                  []string `json:"skills"`
	Education               string   `json:"education"`
	Certifications          []string `json:"certifications"`
	SpecificRequirements    []string `json:"specific_requirements"`
	ImpliedResponsibilities []string `json:"implied_responsibilities"`
}

func (s *LLMStrategy) Parse(ctx context.Context, query string) (*Requirement, error) {
	raw, err := s.generator.Generate(ctx, s.buildPrompt(query))
	if err != nil {
		return nil, fmt.Errorf("generate requirement: %w", err)
	}

	var wire requirementWire
	if err := json.Unmarshal([]byte(StripCodeFences(raw)), &wire); err != nil {
		return nil, fmt.Errorf("decode requirement JSON: %w", err)
	}

	req := &Requirement{
		Skills:                  wire.Skills,
		Certifications:          wire.Certifications,
		SpecificRequirements:    wire.SpecificRequirements,
		ImpliedResponsibilities: wire.ImpliedResponsibilities,
	}
	if strings.TrimSpace(wire.Role) != "" {
		role := wire.Role
		req.Role = &role
	}
	if strings.TrimSpace(wire.Location) != "" {
		loc := wire.Location
		req.Location = &loc
	}
	if strings.TrimSpace(wire.Education) != "" {
		edu := wire.Education
		req.Education = &edu
	}
	if wire.Experience.Min != nil || wire.Experience.Max != nil || wire.Experience.Exact != nil {
		req.Experience = &ExperienceRange{
			Min:   wire.Experience.Min,
			Max:   wire.Experience.Max,
			Exact: wire.Experience.Exact,
		}
	}
	return req, nil
}

func (s *LLMStrategy) buildPrompt(query string) string {
	source := "recruiter search query"
	if s.style == PromptJobDescription {
		source = "job description"
	}

	return fmt.Sprintf(`You are a recruitment search assistant. Extract structured hiring requirements from the %s below.

%s: %q

Return ONLY valid JSON in exactly this structure, no markdown, no explanations:

{
  "role": string or "" (target job title),
  "experience": {"min": number or null, "max": number or null, "exact": number or null} (years),
  "location": string or "",
  "skills": string[] (required technical and soft skills),
  "education": string or "" (minimum qualification),
  "certifications": string[],
  "specific_requirements": string[] (anything else, e.g. salary constraints),
  "implied_responsibilities": string[] (5-8 typical duties for this role, even if not stated)
}

Omit nothing: use "" or null or [] for unknown fields. Lower-case all values.`, source, source, query)
}

// ============================================================================
// Deterministic fallback strategy
// ============================================================================

// FallbackStrategy extracts requirements with regexes and keyword lists.
// It cannot fail and anchors the parse chain.
type FallbackStrategy struct {
	tables *Tables
}

// NewFallbackStrategy creates the deterministic parse strategy. A nil
// tables argument selects the built-in set.
func NewFallbackStrategy(tables *Tables) *FallbackStrategy {
	if tables == nil {
		tables = DefaultTables()
	}
	return &FallbackStrategy{tables: tables}
}

func (s *FallbackStrategy) Name() string { return "deterministic" }

// Experience query patterns in priority order; the first match wins.
var fallbackExperiencePatterns = []struct {
	re    *regexp.Regexp
	build func(m []string) *ExperienceRange
}{
	{
		// "5+ years"
		regexp.MustCompile(`(\d+)\s*\+\s*(?:years?|yrs?)`),
		func(m []string) *ExperienceRange {
			min := mustFloat(m[1])
			return &ExperienceRange{Min: &min}
		},
	},
	{
		// "3-5 years", "3 to 5 years"
		regexp.MustCompile(`(\d+)\s*(?:-|to)\s*(\d+)\s*(?:years?|yrs?)`),
		func(m []string) *ExperienceRange {
			min, max := mustFloat(m[1]), mustFloat(m[2])
			return &ExperienceRange{Min: &min, Max: &max}
		},
	},
	{
		// "minimum 4 years", "minimum of 4 yrs"
		regexp.MustCompile(`minimum\s+(?:of\s+)?(\d+)\s*(?:years?|yrs?)`),
		func(m []string) *ExperienceRange {
			min := mustFloat(m[1])
			return &ExperienceRange{Min: &min}
		},
	},
	{
		// "at least 4 years"
		regexp.MustCompile(`at\s*least\s+(\d+)\s*(?:years?|yrs?)`),
		func(m []string) *ExperienceRange {
			min := mustFloat(m[1])
			return &ExperienceRange{Min: &min}
		},
	},
	{
		// plain "4 years" treated as a minimum
		regexp.MustCompile(`(\d+)\s*(?:years?|yrs?)`),
		func(m []string) *ExperienceRange {
			min := mustFloat(m[1])
			return &ExperienceRange{Min: &min}
		},
	},
}

var salaryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:₹|\brs\.?\s|\binr\s)\s*([\d,]+(?:\.\d+)?)\s*(?:lpa|lakhs?|k)?`),
	regexp.MustCompile(`salary\D{0,20}?([\d,]+(?:\.\d+)?)`),
	regexp.MustCompile(`([\d.]+)\s*lpa`),
}

func (s *FallbackStrategy) Parse(_ context.Context, query string) (*Requirement, error) {
	q := strings.ToLower(query)
	req := &Requirement{}

	for _, p := range fallbackExperiencePatterns {
		if m := p.re.FindStringSubmatch(q); m != nil {
			req.Experience = p.build(m)
			break
		}
	}

	if role := longestSubstringMatch(q, s.tables.KnownTitles); role != "" {
		req.Role = &role
	}
	if city := longestSubstringMatch(q, s.tables.KnownCities); city != "" {
		req.Location = &city
	}

	for _, skill := range s.tables.KnownSkills {
		if containsWord(q, skill) {
			req.Skills = append(req.Skills, skill)
		}
	}
	for _, cert := range s.tables.KnownCertifications {
		if containsWord(q, cert) {
			req.Certifications = append(req.Certifications, cert)
		}
	}

	if edu := s.extractEducation(q); edu != "" {
		req.Education = &edu
	}

	for _, p := range salaryPatterns {
		if m := p.FindStringSubmatch(q); m != nil {
			req.SpecificRequirements = append(req.SpecificRequirements,
				"salary constraint: "+strings.TrimSpace(m[0]))
			break
		}
	}

	return req, nil
}

// extractEducation returns the highest-information qualification mention.
func (s *FallbackStrategy) extractEducation(q string) string {
	best := ""
	for alias := range s.tables.EducationAliases {
		if strings.Contains(q, alias) && len(alias) > len(best) {
			best = alias
		}
	}
	if best == "" {
		return ""
	}
	return s.tables.EducationAliases[best]
}

// longestSubstringMatch returns the longest list entry contained in the
// query, so "new delhi" beats "delhi".
func longestSubstringMatch(q string, list []string) string {
	best := ""
	for _, entry := range list {
		if strings.Contains(q, entry) && len(entry) > len(best) {
			best = entry
		}
	}
	return best
}

// containsWord reports a whole-word occurrence for single-word needles
// and plain containment for phrases.
func containsWord(q, needle string) bool {
	if strings.ContainsRune(needle, ' ') {
		return strings.Contains(q, needle)
	}
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(needle) + `\b`)
	return re.MatchString(q)
}

func mustFloat(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

// StripCodeFences removes Markdown code fences so fenced model output
// still decodes as JSON.
func StripCodeFences(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	return strings.TrimSpace(raw)
}
