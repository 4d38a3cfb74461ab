package search

import (
	"context"

	"github.com/hireloop/radar/pkg/kernel"
	"github.com/hireloop/radar/recruitment/candidate"
)

// CandidateSource provides the read-only candidate snapshot the scoring
// core ranks against.
type CandidateSource interface {
	Snapshot(ctx context.Context) ([]candidate.Candidate, error)
}

// TextGenerator is the language-model capability the parser and the AI
// ranker depend on. Implementations are expected to usually return a
// JSON-shaped string; callers must tolerate fenced or malformed output.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Embedder produces dense vectors for cosine similarity. Vectors for the
// same model are assumed to have the same length; a length mismatch is a
// contract failure handled by returning similarity 0, never by panicking.
type Embedder interface {
	Embed(ctx context.Context, text string) (kernel.Embedding, error)
}

// RequirementCache stores parsed requirements keyed by query so repeated
// searches skip the language-model round trip.
type RequirementCache interface {
	Get(ctx context.Context, query string) (*Requirement, bool)
	Set(ctx context.Context, query string, req *Requirement)
}
