package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	output string
	err    error
	calls  int
}

func (g *stubGenerator) Generate(_ context.Context, _ string) (string, error) {
	g.calls++
	if g.err != nil {
		return "", g.err
	}
	return g.output, nil
}

func TestFallbackStrategyParsesQuery(t *testing.T) {
	s := NewFallbackStrategy(nil)

	req, err := s.Parse(context.Background(), "Fleet Manager with 5+ years in Delhi")
	require.NoError(t, err)
	req.Normalize()

	require.NotNil(t, req.Role)
	assert.Equal(t, "fleet manager", *req.Role)

	require.NotNil(t, req.Experience)
	require.NotNil(t, req.Experience.Min)
	assert.Equal(t, 5.0, *req.Experience.Min)
	assert.Nil(t, req.Experience.Max)

	require.NotNil(t, req.Location)
	assert.Equal(t, "delhi", *req.Location)
}

func TestFallbackStrategyExperienceRanges(t *testing.T) {
	s := NewFallbackStrategy(nil)

	t.Run("range", func(t *testing.T) {
		req, err := s.Parse(context.Background(), "accountant 3 to 5 years")
		require.NoError(t, err)
		require.NotNil(t, req.Experience)
		assert.Equal(t, 3.0, *req.Experience.Min)
		assert.Equal(t, 5.0, *req.Experience.Max)
	})

	t.Run("minimum keyword", func(t *testing.T) {
		req, err := s.Parse(context.Background(), "minimum of 4 years in sales")
		require.NoError(t, err)
		require.NotNil(t, req.Experience)
		assert.Equal(t, 4.0, *req.Experience.Min)
		assert.Nil(t, req.Experience.Max)
	})

	t.Run("plain years treated as minimum", func(t *testing.T) {
		req, err := s.Parse(context.Background(), "data analyst 2 years sql")
		require.NoError(t, err)
		require.NotNil(t, req.Experience)
		assert.Equal(t, 2.0, *req.Experience.Min)
	})
}

func TestFallbackStrategyLongestMatchWins(t *testing.T) {
	s := NewFallbackStrategy(nil)

	req, err := s.Parse(context.Background(), "business development manager in new delhi")
	require.NoError(t, err)

	require.NotNil(t, req.Role)
	assert.Equal(t, "business development manager", *req.Role)
	require.NotNil(t, req.Location)
	assert.Equal(t, "new delhi", *req.Location)
}

func TestFallbackStrategySkillsEducationSalary(t *testing.T) {
	s := NewFallbackStrategy(nil)

	req, err := s.Parse(context.Background(), "accountant with tally and gst, mba preferred, salary 6 lpa")
	require.NoError(t, err)

	assert.Contains(t, req.Skills, "tally")
	assert.Contains(t, req.Skills, "gst")
	require.NotNil(t, req.Education)
	assert.Equal(t, "master", *req.Education)
	require.Len(t, req.SpecificRequirements, 1)
	assert.Contains(t, req.SpecificRequirements[0], "salary constraint")
}

func TestParserFallsBackWhenModelFails(t *testing.T) {
	gen := &stubGenerator{err: errors.New("model unavailable")}
	p := NewParser(NewLLMStrategy(gen, PromptQuery), NewFallbackStrategy(nil))

	req := p.Parse(context.Background(), "warehouse manager in pune")
	require.NotNil(t, req)
	assert.Equal(t, 1, gen.calls)
	require.NotNil(t, req.Role)
	assert.Equal(t, "warehouse manager", *req.Role)
}

func TestParserFallsBackOnMalformedJSON(t *testing.T) {
	gen := &stubGenerator{output: "sure! here are the requirements you asked for"}
	p := NewParser(NewLLMStrategy(gen, PromptQuery), NewFallbackStrategy(nil))

	req := p.Parse(context.Background(), "warehouse manager in pune")
	require.NotNil(t, req.Role)
	assert.Equal(t, "warehouse manager", *req.Role)
}

func TestParserUsesModelOutput(t *testing.T) {
	gen := &stubGenerator{output: "```json\n" + `{
		"role": "fleet manager",
		"experience": {"min": 5, "max": null, "exact": null},
		"location": "delhi",
		"skills": ["fleet", "gps"],
		"education": "",
		"certifications": [],
		"specific_requirements": [],
		"implied_responsibilities": ["vehicle maintenance scheduling", "route planning"]
	}` + "\n```"}
	p := NewParser(NewLLMStrategy(gen, PromptQuery), NewFallbackStrategy(nil))

	req := p.Parse(context.Background(), "need a fleet manager, 5+ years, delhi")
	require.NotNil(t, req.Role)
	assert.Equal(t, "fleet manager", *req.Role)
	require.NotNil(t, req.Experience)
	assert.Equal(t, 5.0, *req.Experience.Min)
	assert.Nil(t, req.Education)
	assert.Len(t, req.ImpliedResponsibilities, 2)
	assert.Equal(t, 1, gen.calls)
}

func TestParserNeverReturnsNil(t *testing.T) {
	p := NewParser(NewFallbackStrategy(nil))

	req := p.Parse(context.Background(), "zzzz qqqq")
	require.NotNil(t, req)
	assert.False(t, req.HasCriteria())
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripCodeFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripCodeFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripCodeFences(`{"a":1}`))
}
