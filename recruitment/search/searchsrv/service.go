package searchsrv

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/hireloop/radar/pkg/kernel"
	"github.com/hireloop/radar/pkg/logx"
	"github.com/hireloop/radar/recruitment/candidate"
	"github.com/hireloop/radar/recruitment/search"
	"golang.org/x/sync/errgroup"
)

const (
	// aiRankPoolCap bounds how many candidate summaries go into the
	// ranking prompt.
	aiRankPoolCap = 40

	// nearestPrefilterLimit is how many stored-embedding neighbours the
	// vector index returns before threshold filtering.
	nearestPrefilterLimit = 100

	// similarEmbedConcurrency bounds ad-hoc embedding calls for
	// candidates without a stored role embedding.
	similarEmbedConcurrency = 4

	// similarEmbedCap stops a similarity request from embedding an
	// unbounded candidate pool on the fly.
	similarEmbedCap = 25
)

// VectorIndex is the stored-embedding neighbour lookup, satisfied by the
// candidate repository.
type VectorIndex interface {
	NearestByRoleEmbedding(ctx context.Context, embedding kernel.Embedding, limit int) ([]candidate.Candidate, error)
}

// SearchService orchestrates requirement parsing, scoring and the
// fallback chain. Generator, embedder, cache and vector index are all
// optional; every path degrades to a deterministic one.
type SearchService struct {
	source    search.CandidateSource
	generator search.TextGenerator
	embedder  search.Embedder
	cache     search.RequirementCache
	index     VectorIndex

	queryParser *search.Parser
	jdParser    *search.Parser
	ranker      *search.Ranker
}

// NewSearchService creates a new search service instance.
func NewSearchService(
	source search.CandidateSource,
	generator search.TextGenerator,
	embedder search.Embedder,
	cache search.RequirementCache,
	index VectorIndex,
	tables *search.Tables,
) *SearchService {
	if tables == nil {
		tables = search.DefaultTables()
	}

	queryStrategies := []search.ParseStrategy{}
	jdStrategies := []search.ParseStrategy{}
	if generator != nil {
		queryStrategies = append(queryStrategies, search.NewLLMStrategy(generator, search.PromptQuery))
		jdStrategies = append(jdStrategies, search.NewLLMStrategy(generator, search.PromptJobDescription))
	}
	fallback := search.NewFallbackStrategy(tables)
	queryStrategies = append(queryStrategies, fallback)
	jdStrategies = append(jdStrategies, fallback)

	return &SearchService{
		source:      source,
		generator:   generator,
		embedder:    embedder,
		cache:       cache,
		index:       index,
		queryParser: search.NewParser(queryStrategies...),
		jdParser:    search.NewParser(jdStrategies...),
		ranker:      search.NewRanker(search.NewScorer(tables)),
	}
}

// IntelligentSearch parses the query into a structured requirement and
// ranks the active pool against it. Queries that yield no usable
// criteria fall back to lexical search.
func (s *SearchService) IntelligentSearch(ctx context.Context, query string) (*search.SearchResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, search.ErrEmptyQuery()
	}

	req := s.parseWithCache(ctx, s.queryParser, query)

	candidates, err := s.source.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	if !req.HasCriteria() {
		logx.Debugf("no structured criteria in %q, using keyword search", query)
		return s.keywordResponse(query, candidates), nil
	}

	results := s.ranker.Rank(req, candidates)
	return &search.SearchResponse{
		Query:       query,
		Requirement: req,
		Results:     results,
		TotalFound:  len(results),
		Mode:        search.ModeIntelligent,
	}, nil
}

// SearchByJobDescription ranks the active pool against a full job
// description instead of a short query.
func (s *SearchService) SearchByJobDescription(ctx context.Context, jobDescription string) (*search.SearchResponse, error) {
	jobDescription = strings.TrimSpace(jobDescription)
	if jobDescription == "" {
		return nil, search.ErrEmptyQuery()
	}

	req := s.parseWithCache(ctx, s.jdParser, jobDescription)

	candidates, err := s.source.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	if !req.HasCriteria() {
		return s.keywordResponse(jobDescription, candidates), nil
	}

	results := s.ranker.Rank(req, candidates)
	return &search.SearchResponse{
		Query:       jobDescription,
		Requirement: req,
		Results:     results,
		TotalFound:  len(results),
		Mode:        search.ModeIntelligent,
	}, nil
}

// TextSearch runs the lexical pipeline directly, no parsing involved.
func (s *SearchService) TextSearch(ctx context.Context, query string) (*search.SearchResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, search.ErrEmptyQuery()
	}

	candidates, err := s.source.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return s.keywordResponse(query, candidates), nil
}

// aiRankWire is the shape the ranking prompt asks the model for.
type aiRankWire struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

// AIRankedSearch asks the language model to rank candidate summaries
// directly. Any model failure degrades to keyword search.
func (s *SearchService) AIRankedSearch(ctx context.Context, query string) (*search.SearchResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, search.ErrEmptyQuery()
	}

	candidates, err := s.source.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	if s.generator == nil {
		return s.keywordResponse(query, candidates), nil
	}

	pool := s.aiRankPool(query, candidates)
	if len(pool) == 0 {
		return s.keywordResponse(query, candidates), nil
	}

	raw, err := s.generator.Generate(ctx, buildRankPrompt(query, pool))
	if err != nil {
		logx.Warnf("ai ranking failed, falling back to keyword search: %v", err)
		return s.keywordResponse(query, candidates), nil
	}

	var ranked []aiRankWire
	if err := json.Unmarshal([]byte(search.StripCodeFences(raw)), &ranked); err != nil {
		logx.Warnf("ai ranking returned unparsable output, falling back to keyword search: %v", err)
		return s.keywordResponse(query, candidates), nil
	}

	byID := make(map[kernel.CandidateID]candidate.Candidate, len(pool))
	for _, c := range pool {
		byID[c.ID] = c
	}

	results := make([]search.ScoredCandidate, 0, len(ranked))
	seen := make(map[kernel.CandidateID]struct{}, len(ranked))
	for _, entry := range ranked {
		id := kernel.CandidateID(entry.ID)
		c, ok := byID[id]
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		sc := search.NewScoredCandidate(c, entry.Score/100)
		if sc.RelevanceScore < search.MinRelevance {
			continue
		}
		results = append(results, sc)
	}

	if len(results) == 0 {
		return s.keywordResponse(query, candidates), nil
	}

	// The prompt asks for best-first, but the model's ordering is not
	// trusted over its own scores.
	search.SortByRelevance(results)

	return &search.SearchResponse{
		Query:      query,
		Results:    results,
		TotalFound: len(results),
		Mode:       search.ModeAIRanked,
	}, nil
}

// SimilarCandidates finds candidates whose role is close to a job title,
// preferring stored embeddings and degrading to text similarity.
func (s *SearchService) SimilarCandidates(ctx context.Context, jobTitle string) (*search.SimilarCandidatesResponse, error) {
	jobTitle = strings.TrimSpace(jobTitle)
	if jobTitle == "" {
		return nil, search.ErrEmptyQuery()
	}

	var queryEmbedding kernel.Embedding
	if s.embedder != nil {
		emb, err := s.embedder.Embed(ctx, jobTitle)
		if err != nil {
			logx.Warnf("job title embedding failed, using text similarity: %v", err)
		} else {
			queryEmbedding = emb
		}
	}

	var results []search.SimilarCandidate
	matched := make(map[kernel.CandidateID]struct{})

	if !queryEmbedding.IsZero() && s.index != nil {
		nearest, err := s.index.NearestByRoleEmbedding(ctx, queryEmbedding, nearestPrefilterLimit)
		if err != nil {
			logx.Warnf("vector index lookup failed, using text similarity: %v", err)
		} else {
			for i := range nearest {
				c := nearest[i]
				sim := search.CosineSimilarity(queryEmbedding, c.RoleEmbedding)
				matched[c.ID] = struct{}{}
				if sim >= search.SimilarityThreshold {
					results = append(results, search.SimilarCandidate{
						Candidate:  c,
						Similarity: sim,
						Basis:      search.BasisEmbedding,
					})
				}
			}
		}
	}

	// Candidates outside the vector index still take part, scored by
	// ad-hoc embeddings where feasible and text similarity otherwise.
	pool, err := s.source.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	remaining := make([]candidate.Candidate, 0, len(pool))
	for i := range pool {
		if _, ok := matched[pool[i].ID]; ok {
			continue
		}
		if strings.TrimSpace(pool[i].RoleText()) == "" {
			continue
		}
		remaining = append(remaining, pool[i])
	}

	results = append(results, s.scoreRemaining(ctx, jobTitle, queryEmbedding, remaining)...)

	search.SortBySimilarity(results)
	if len(results) > search.SimilarTopK {
		results = results[:search.SimilarTopK]
	}

	return &search.SimilarCandidatesResponse{
		JobTitle:   jobTitle,
		Results:    results,
		TotalFound: len(results),
	}, nil
}

// scoreRemaining scores candidates without a usable stored embedding.
// A small prefix of the pool gets fresh embeddings, the rest fall back
// to text similarity.
func (s *SearchService) scoreRemaining(ctx context.Context, jobTitle string, queryEmbedding kernel.Embedding, pool []candidate.Candidate) []search.SimilarCandidate {
	embedBudget := 0
	if s.embedder != nil && !queryEmbedding.IsZero() {
		embedBudget = similarEmbedCap
	}

	// Embed workers append under mu; the text path stays on this
	// goroutine and keeps its own slice until the workers are done.
	embedded := make([]search.SimilarCandidate, 0, min(len(pool), embedBudget))
	textScored := make([]search.SimilarCandidate, 0, len(pool))

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(similarEmbedConcurrency)

	for i := range pool {
		c := pool[i]

		if i >= embedBudget {
			if sim := search.TextSimilarity(jobTitle, c.RoleText()); sim >= search.SimilarityThreshold {
				textScored = append(textScored, search.SimilarCandidate{
					Candidate:  c,
					Similarity: sim,
					Basis:      search.BasisText,
				})
			}
			continue
		}

		g.Go(func() error {
			sim := 0.0
			basis := search.BasisEmbedding

			emb, err := s.embedder.Embed(gctx, c.RoleText())
			if err != nil {
				sim = search.TextSimilarity(jobTitle, c.RoleText())
				basis = search.BasisText
			} else {
				sim = search.CosineSimilarity(queryEmbedding, emb)
			}

			if sim < search.SimilarityThreshold {
				return nil
			}

			mu.Lock()
			embedded = append(embedded, search.SimilarCandidate{
				Candidate:  c,
				Similarity: sim,
				Basis:      basis,
			})
			mu.Unlock()
			return nil
		})
	}

	// Worker errors are absorbed per candidate, Wait only observes
	// context cancellation.
	_ = g.Wait()

	return append(embedded, textScored...)
}

// parseWithCache consults the requirement cache around the parser chain.
func (s *SearchService) parseWithCache(ctx context.Context, parser *search.Parser, query string) *search.Requirement {
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, query); ok {
			logx.Debugf("requirement cache hit for %q", query)
			return cached
		}
	}

	req := parser.Parse(ctx, query)

	if s.cache != nil && req.HasCriteria() {
		s.cache.Set(ctx, query, req)
	}

	return req
}

func (s *SearchService) keywordResponse(query string, candidates []candidate.Candidate) *search.SearchResponse {
	results := search.KeywordSearch(query, candidates)
	return &search.SearchResponse{
		Query:      query,
		Results:    results,
		TotalFound: len(results),
		Mode:       search.ModeKeyword,
	}
}

// aiRankPool selects the candidates whose summaries go into the ranking
// prompt, lexically prefiltered when the query matches anything.
func (s *SearchService) aiRankPool(query string, candidates []candidate.Candidate) []candidate.Candidate {
	prefiltered := search.KeywordSearch(query, candidates)
	if len(prefiltered) > 0 {
		pool := make([]candidate.Candidate, 0, min(len(prefiltered), aiRankPoolCap))
		for i := range prefiltered {
			if len(pool) == aiRankPoolCap {
				break
			}
			pool = append(pool, prefiltered[i].Candidate)
		}
		return pool
	}

	if len(candidates) > aiRankPoolCap {
		return candidates[:aiRankPoolCap]
	}
	return candidates
}

func buildRankPrompt(query string, pool []candidate.Candidate) string {
	var b strings.Builder
	b.WriteString("You are ranking candidates for a recruiter.\n")
	b.WriteString("Requirement: ")
	b.WriteString(query)
	b.WriteString("\n\nCandidates:\n")

	for i := range pool {
		c := &pool[i]
		fmt.Fprintf(&b, "- id: %s | role: %s | experience: %s | location: %s | skills: %s\n",
			c.ID,
			c.RoleText(),
			c.TotalExperience,
			c.Location,
			strings.Join(c.TechnicalSkills, ", "),
		)
	}

	b.WriteString("\nReturn ONLY a JSON array, best match first, shaped like ")
	b.WriteString(`[{"id": "<candidate id>", "score": <0-100>}]. `)
	b.WriteString("Include only candidates that plausibly fit the requirement. No prose, no markdown fences.")
	return b.String()
}
