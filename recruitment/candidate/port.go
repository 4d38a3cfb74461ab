package candidate

import (
	"context"

	"github.com/hireloop/radar/pkg/kernel"
)

type Repository interface {
	// Create creates a new candidate
	Create(ctx context.Context, cand *Candidate) error

	// Update updates an existing candidate
	Update(ctx context.Context, id kernel.CandidateID, cand *Candidate) error

	// GetByID retrieves a candidate by ID
	GetByID(ctx context.Context, id kernel.CandidateID) (*Candidate, error)

	// GetByEmail retrieves a candidate by email
	GetByEmail(ctx context.Context, email kernel.Email) (*Candidate, error)

	// List retrieves candidates with pagination
	List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[Candidate], error)

	// ListActive retrieves every active candidate, no pagination. This is
	// the snapshot the scoring core ranks against.
	ListActive(ctx context.Context) ([]Candidate, error)

	// Delete deletes a candidate
	Delete(ctx context.Context, id kernel.CandidateID) error

	// Count counts all candidates
	Count(ctx context.Context) (int64, error)

	// UpdateRoleEmbedding updates only the stored role embedding
	UpdateRoleEmbedding(ctx context.Context, id kernel.CandidateID, embedding kernel.Embedding) error

	// NearestByRoleEmbedding returns active candidates ordered by cosine
	// distance of their stored role embeddings to the given vector.
	NearestByRoleEmbedding(ctx context.Context, embedding kernel.Embedding, limit int) ([]Candidate, error)
}
