package searchsrv

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/hireloop/radar/pkg/errx"
	"github.com/hireloop/radar/pkg/kernel"
	"github.com/hireloop/radar/recruitment/candidate"
	"github.com/hireloop/radar/recruitment/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	candidates []candidate.Candidate
	err        error
}

func (s *stubSource) Snapshot(context.Context) ([]candidate.Candidate, error) {
	return s.candidates, s.err
}

type stubGenerator struct {
	output string
	err    error
	calls  int
}

func (g *stubGenerator) Generate(context.Context, string) (string, error) {
	g.calls++
	return g.output, g.err
}

type stubEmbedder struct {
	vectors map[string]kernel.Embedding
	err     error
}

func (e *stubEmbedder) Embed(_ context.Context, text string) (kernel.Embedding, error) {
	if e.err != nil {
		return nil, e.err
	}
	if v, ok := e.vectors[text]; ok {
		return v, nil
	}
	return kernel.Embedding{0, 1}, nil
}

type memoryCache struct {
	mu      sync.Mutex
	entries map[string]*search.Requirement
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string]*search.Requirement)}
}

func (c *memoryCache) Get(_ context.Context, query string) (*search.Requirement, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	req, ok := c.entries[query]
	return req, ok
}

func (c *memoryCache) Set(_ context.Context, query string, req *search.Requirement) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[query] = req
}

type stubIndex struct {
	candidates []candidate.Candidate
	err        error
}

func (s *stubIndex) NearestByRoleEmbedding(context.Context, kernel.Embedding, int) ([]candidate.Candidate, error) {
	return s.candidates, s.err
}

func testPool() []candidate.Candidate {
	return []candidate.Candidate{
		{
			ID:              kernel.NewCandidateID("wm-pune"),
			Status:          candidate.CandidateStatusActive,
			Name:            "Ravi Kulkarni",
			CurrentRole:     "Warehouse Manager",
			Location:        "Pune",
			TotalExperience: "5 years",
			TechnicalSkills: []string{"inventory", "wms"},
		},
		{
			ID:              kernel.NewCandidateID("sm-mumbai"),
			Status:          candidate.CandidateStatusActive,
			Name:            "Sneha Iyer",
			CurrentRole:     "Store Manager",
			Location:        "Mumbai",
			TotalExperience: "1 year",
			TechnicalSkills: []string{"retail"},
		},
	}
}

func TestIntelligentSearchEmptyQuery(t *testing.T) {
	svc := NewSearchService(&stubSource{}, nil, nil, nil, nil, nil)

	_, err := svc.IntelligentSearch(context.Background(), "   ")
	require.Error(t, err)

	var e *errx.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errx.TypeValidation, e.Type)
}

func TestIntelligentSearchWithoutGenerator(t *testing.T) {
	svc := NewSearchService(&stubSource{candidates: testPool()}, nil, nil, nil, nil, nil)

	resp, err := svc.IntelligentSearch(context.Background(), "warehouse manager with 3+ years in pune")
	require.NoError(t, err)

	assert.Equal(t, search.ModeIntelligent, resp.Mode)
	require.NotNil(t, resp.Requirement)
	require.NotEmpty(t, resp.Results)
	assert.Equal(t, kernel.CandidateID("wm-pune"), resp.Results[0].Candidate.ID)
}

func TestIntelligentSearchUsesGeneratorOutput(t *testing.T) {
	gen := &stubGenerator{output: `{
		"role": "store manager",
		"experience": {"min": null, "max": null, "exact": null},
		"location": "mumbai",
		"skills": ["retail"],
		"education": "",
		"certifications": [],
		"specific_requirements": [],
		"implied_responsibilities": []
	}`}
	svc := NewSearchService(&stubSource{candidates: testPool()}, gen, nil, nil, nil, nil)

	resp, err := svc.IntelligentSearch(context.Background(), "need a store manager in mumbai")
	require.NoError(t, err)

	assert.Equal(t, 1, gen.calls)
	require.NotEmpty(t, resp.Results)
	assert.Equal(t, kernel.CandidateID("sm-mumbai"), resp.Results[0].Candidate.ID)
}

func TestIntelligentSearchCachesRequirement(t *testing.T) {
	gen := &stubGenerator{output: `{
		"role": "warehouse manager",
		"experience": {"min": null, "max": null, "exact": null},
		"location": "",
		"skills": [],
		"education": "",
		"certifications": [],
		"specific_requirements": [],
		"implied_responsibilities": []
	}`}
	cache := newMemoryCache()
	svc := NewSearchService(&stubSource{candidates: testPool()}, gen, nil, cache, nil, nil)

	_, err := svc.IntelligentSearch(context.Background(), "warehouse manager")
	require.NoError(t, err)
	_, err = svc.IntelligentSearch(context.Background(), "warehouse manager")
	require.NoError(t, err)

	assert.Equal(t, 1, gen.calls)
}

func TestIntelligentSearchNoCriteriaFallsBackToKeyword(t *testing.T) {
	// The model yields nothing scorable and the deterministic parser
	// finds no known titles, cities or skills either.
	gen := &stubGenerator{err: errors.New("model down")}
	svc := NewSearchService(&stubSource{candidates: testPool()}, gen, nil, nil, nil, nil)

	resp, err := svc.IntelligentSearch(context.Background(), "ravi kulkarni")
	require.NoError(t, err)

	assert.Equal(t, search.ModeKeyword, resp.Mode)
	assert.Nil(t, resp.Requirement)
	require.NotEmpty(t, resp.Results)
	assert.Equal(t, kernel.CandidateID("wm-pune"), resp.Results[0].Candidate.ID)
}

func TestIntelligentSearchSnapshotFailure(t *testing.T) {
	svc := NewSearchService(&stubSource{err: errors.New("db down")}, nil, nil, nil, nil, nil)

	_, err := svc.IntelligentSearch(context.Background(), "warehouse manager")
	require.Error(t, err)
}

func TestTextSearch(t *testing.T) {
	svc := NewSearchService(&stubSource{candidates: testPool()}, nil, nil, nil, nil, nil)

	resp, err := svc.TextSearch(context.Background(), "store manager retail")
	require.NoError(t, err)

	assert.Equal(t, search.ModeKeyword, resp.Mode)
	require.NotEmpty(t, resp.Results)
	assert.Equal(t, kernel.CandidateID("sm-mumbai"), resp.Results[0].Candidate.ID)

	_, err = svc.TextSearch(context.Background(), "")
	require.Error(t, err)
}

func TestAIRankedSearch(t *testing.T) {
	t.Run("uses model ranking", func(t *testing.T) {
		gen := &stubGenerator{output: `[{"id": "sm-mumbai", "score": 90}, {"id": "wm-pune", "score": 40}]`}
		svc := NewSearchService(&stubSource{candidates: testPool()}, gen, nil, nil, nil, nil)

		resp, err := svc.AIRankedSearch(context.Background(), "manager")
		require.NoError(t, err)

		assert.Equal(t, search.ModeAIRanked, resp.Mode)
		require.Len(t, resp.Results, 2)
		assert.Equal(t, kernel.CandidateID("sm-mumbai"), resp.Results[0].Candidate.ID)
		assert.Equal(t, 0.9, resp.Results[0].RelevanceScore)
	})

	t.Run("orders by score even when the model does not", func(t *testing.T) {
		gen := &stubGenerator{output: `[{"id": "sm-mumbai", "score": 35}, {"id": "wm-pune", "score": 85}]`}
		svc := NewSearchService(&stubSource{candidates: testPool()}, gen, nil, nil, nil, nil)

		resp, err := svc.AIRankedSearch(context.Background(), "manager")
		require.NoError(t, err)

		require.Len(t, resp.Results, 2)
		assert.Equal(t, kernel.CandidateID("wm-pune"), resp.Results[0].Candidate.ID)
		assert.Equal(t, kernel.CandidateID("sm-mumbai"), resp.Results[1].Candidate.ID)
	})

	t.Run("unknown ids are skipped", func(t *testing.T) {
		gen := &stubGenerator{output: `[{"id": "ghost", "score": 99}, {"id": "wm-pune", "score": 80}]`}
		svc := NewSearchService(&stubSource{candidates: testPool()}, gen, nil, nil, nil, nil)

		resp, err := svc.AIRankedSearch(context.Background(), "manager")
		require.NoError(t, err)
		require.Len(t, resp.Results, 1)
		assert.Equal(t, kernel.CandidateID("wm-pune"), resp.Results[0].Candidate.ID)
	})

	t.Run("garbage output falls back to keyword", func(t *testing.T) {
		gen := &stubGenerator{output: "I think the best candidate would be Ravi"}
		svc := NewSearchService(&stubSource{candidates: testPool()}, gen, nil, nil, nil, nil)

		resp, err := svc.AIRankedSearch(context.Background(), "manager")
		require.NoError(t, err)
		assert.Equal(t, search.ModeKeyword, resp.Mode)
	})

	t.Run("no generator falls back to keyword", func(t *testing.T) {
		svc := NewSearchService(&stubSource{candidates: testPool()}, nil, nil, nil, nil, nil)

		resp, err := svc.AIRankedSearch(context.Background(), "manager")
		require.NoError(t, err)
		assert.Equal(t, search.ModeKeyword, resp.Mode)
	})
}

func TestSimilarCandidatesWithEmbeddings(t *testing.T) {
	stored := testPool()
	stored[0].RoleEmbedding = kernel.Embedding{1, 0}
	stored[1].RoleEmbedding = kernel.Embedding{0, 1}

	embedder := &stubEmbedder{vectors: map[string]kernel.Embedding{
		"warehouse manager": {1, 0},
	}}
	index := &stubIndex{candidates: stored}
	svc := NewSearchService(&stubSource{candidates: stored}, nil, embedder, nil, index, nil)

	resp, err := svc.SimilarCandidates(context.Background(), "warehouse manager")
	require.NoError(t, err)

	require.Len(t, resp.Results, 1) // the orthogonal embedding is below threshold
	assert.Equal(t, kernel.CandidateID("wm-pune"), resp.Results[0].Candidate.ID)
	assert.Equal(t, search.BasisEmbedding, resp.Results[0].Basis)
	assert.InDelta(t, 1.0, resp.Results[0].Similarity, 0.0001)
}

func TestSimilarCandidatesTextFallback(t *testing.T) {
	svc := NewSearchService(&stubSource{candidates: testPool()}, nil, nil, nil, nil, nil)

	resp, err := svc.SimilarCandidates(context.Background(), "warehouse manager")
	require.NoError(t, err)

	require.NotEmpty(t, resp.Results)
	assert.Equal(t, search.BasisText, resp.Results[0].Basis)
	assert.Equal(t, kernel.CandidateID("wm-pune"), resp.Results[0].Candidate.ID)
}

func TestSimilarCandidatesMixedScoringPaths(t *testing.T) {
	// More candidates than the per-request embed budget, so fresh embeds
	// run concurrently while the overflow is scored by text similarity
	// on the calling goroutine.
	pool := make([]candidate.Candidate, 0, similarEmbedCap+5)
	for i := 0; i < similarEmbedCap+5; i++ {
		pool = append(pool, candidate.Candidate{
			ID:          kernel.NewCandidateID(string(rune('a'+i%26)) + "-cand"),
			Status:      candidate.CandidateStatusActive,
			CurrentRole: "Warehouse Manager",
		})
	}

	embedder := &stubEmbedder{vectors: map[string]kernel.Embedding{
		"warehouse manager": {1, 0},
		"Warehouse Manager": {0.5, 0.866},
	}}
	svc := NewSearchService(&stubSource{candidates: pool}, nil, embedder, nil, nil, nil)

	resp, err := svc.SimilarCandidates(context.Background(), "warehouse manager")
	require.NoError(t, err)

	require.Len(t, resp.Results, search.SimilarTopK)
	assert.Equal(t, search.BasisText, resp.Results[0].Basis)
	assert.InDelta(t, 0.9, resp.Results[0].Similarity, 0.0001)

	bases := make(map[search.SimilarityBasis]int)
	for _, r := range resp.Results {
		bases[r.Basis]++
	}
	assert.Equal(t, 5, bases[search.BasisText])
	assert.Equal(t, search.SimilarTopK-5, bases[search.BasisEmbedding])
}

func TestSimilarCandidatesEmptyTitle(t *testing.T) {
	svc := NewSearchService(&stubSource{}, nil, nil, nil, nil, nil)

	_, err := svc.SimilarCandidates(context.Background(), "")
	require.Error(t, err)
}
