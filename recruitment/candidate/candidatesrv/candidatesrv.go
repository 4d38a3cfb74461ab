package candidatesrv

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hireloop/radar/pkg/kernel"
	"github.com/hireloop/radar/pkg/logx"
	"github.com/hireloop/radar/recruitment/candidate"
	"golang.org/x/sync/errgroup"
)

// embedConcurrency bounds parallel embedding calls during bulk runs.
const embedConcurrency = 4

// Embedder produces role embeddings for candidates.
type Embedder interface {
	Embed(ctx context.Context, text string) (kernel.Embedding, error)
}

// CandidateService provides business operations for candidates
type CandidateService struct {
	candidateRepo candidate.Repository
	embedder      Embedder
}

// NewCandidateService creates a new instance of the candidate service.
// The embedder is optional; without it candidates are stored without
// role embeddings and similarity search falls back to text matching.
func NewCandidateService(
	candidateRepo candidate.Repository,
	embedder Embedder,
) *CandidateService {
	return &CandidateService{
		candidateRepo: candidateRepo,
		embedder:      embedder,
	}
}

// CreateCandidate creates a new candidate
func (s *CandidateService) CreateCandidate(ctx context.Context, req candidate.CreateCandidateRequest) (*candidate.CandidateResponse, error) {
	if !req.Email.IsValid() {
		return nil, candidate.ErrInvalidEmail().WithDetail("email", string(req.Email))
	}

	// Check for existing candidate by email
	existing, err := s.candidateRepo.GetByEmail(ctx, req.Email)
	if err == nil && existing != nil {
		return nil, candidate.ErrCandidateAlreadyExists().
			WithDetail("email", string(req.Email)).
			WithDetail("existing_id", existing.ID.String())
	}

	now := time.Now()
	newCandidate := &candidate.Candidate{
		ID:                   kernel.NewCandidateID(uuid.NewString()),
		Status:               candidate.CandidateStatusActive,
		Name:                 req.Name,
		Email:                req.Email,
		Phone:                req.Phone,
		CurrentRole:          req.CurrentRole,
		DesiredRole:          req.DesiredRole,
		CurrentCompany:       req.CurrentCompany,
		Location:             req.Location,
		TotalExperience:      req.TotalExperience,
		TechnicalSkills:      req.TechnicalSkills,
		SoftSkills:           req.SoftSkills,
		Tags:                 req.Tags,
		HighestQualification: req.HighestQualification,
		Certifications:       req.Certifications,
		Summary:              req.Summary,
		ResumeText:           req.ResumeText,
		KeyAchievements:      req.KeyAchievements,
		WorkHistory:          req.WorkHistory,
		Projects:             req.Projects,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := s.candidateRepo.Create(ctx, newCandidate); err != nil {
		return nil, err
	}

	// Embedding failures never fail the create; the candidate is still
	// reachable through lexical search.
	s.upsertRoleEmbedding(ctx, newCandidate)

	return candidate.ToCandidateResponse(newCandidate), nil
}

// GetCandidate retrieves a candidate by ID
func (s *CandidateService) GetCandidate(ctx context.Context, id kernel.CandidateID) (*candidate.CandidateResponse, error) {
	c, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return candidate.ToCandidateResponse(c), nil
}

// GetCandidateByEmail retrieves a candidate by email
func (s *CandidateService) GetCandidateByEmail(ctx context.Context, email kernel.Email) (*candidate.CandidateResponse, error) {
	c, err := s.candidateRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return candidate.ToCandidateResponse(c), nil
}

// ListCandidates retrieves candidates with pagination
func (s *CandidateService) ListCandidates(ctx context.Context, pagination kernel.PaginationOptions) (*candidate.PaginatedCandidatesResponse, error) {
	page, err := s.candidateRepo.List(ctx, pagination)
	if err != nil {
		return nil, err
	}

	responses := make([]candidate.CandidateResponse, 0, len(page.Items))
	for i := range page.Items {
		responses = append(responses, *candidate.ToCandidateResponse(&page.Items[i]))
	}

	return &candidate.PaginatedCandidatesResponse{
		Items: responses,
		Page:  page.Page,
	}, nil
}

// UpdateCandidate applies the non-nil fields of the request
func (s *CandidateService) UpdateCandidate(ctx context.Context, id kernel.CandidateID, req candidate.UpdateCandidateRequest) (*candidate.CandidateResponse, error) {
	c, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := false
	roleChanged := false

	if req.Email != nil && *req.Email != c.Email {
		if !req.Email.IsValid() {
			return nil, candidate.ErrInvalidEmail().WithDetail("email", string(*req.Email))
		}
		existing, err := s.candidateRepo.GetByEmail(ctx, *req.Email)
		if err == nil && existing != nil && existing.ID != id {
			return nil, candidate.ErrCandidateAlreadyExists().
				WithDetail("email", string(*req.Email)).
				WithDetail("existing_id", existing.ID.String())
		}
		c.Email = *req.Email
		updated = true
	}

	if req.Name != nil && *req.Name != c.Name {
		c.Name = *req.Name
		updated = true
	}

	if req.Phone != nil && *req.Phone != c.Phone {
		c.Phone = *req.Phone
		updated = true
	}

	if req.CurrentRole != nil && *req.CurrentRole != c.CurrentRole {
		c.CurrentRole = *req.CurrentRole
		updated = true
		roleChanged = true
	}

	if req.DesiredRole != nil && *req.DesiredRole != c.DesiredRole {
		c.DesiredRole = *req.DesiredRole
		updated = true
		roleChanged = true
	}

	if req.CurrentCompany != nil && *req.CurrentCompany != c.CurrentCompany {
		c.CurrentCompany = *req.CurrentCompany
		updated = true
	}

	if req.Location != nil && *req.Location != c.Location {
		c.Location = *req.Location
		updated = true
	}

	if req.TotalExperience != nil && *req.TotalExperience != c.TotalExperience {
		c.TotalExperience = *req.TotalExperience
		updated = true
	}

	if req.TechnicalSkills != nil {
		c.TechnicalSkills = *req.TechnicalSkills
		updated = true
	}

	if req.SoftSkills != nil {
		c.SoftSkills = *req.SoftSkills
		updated = true
	}

	if req.Tags != nil {
		c.Tags = *req.Tags
		updated = true
	}

	if req.HighestQualification != nil && *req.HighestQualification != c.HighestQualification {
		c.HighestQualification = *req.HighestQualification
		updated = true
	}

	if req.Certifications != nil {
		c.Certifications = *req.Certifications
		updated = true
	}

	if req.Summary != nil && *req.Summary != c.Summary {
		c.Summary = *req.Summary
		updated = true
	}

	if req.ResumeText != nil && *req.ResumeText != c.ResumeText {
		c.ResumeText = *req.ResumeText
		updated = true
	}

	if req.KeyAchievements != nil {
		c.KeyAchievements = *req.KeyAchievements
		updated = true
	}

	if req.WorkHistory != nil {
		c.WorkHistory = *req.WorkHistory
		updated = true
	}

	if req.Projects != nil {
		c.Projects = *req.Projects
		updated = true
	}

	if updated {
		c.UpdatedAt = time.Now()
		if err := s.candidateRepo.Update(ctx, id, c); err != nil {
			return nil, err
		}
	}

	if roleChanged {
		s.upsertRoleEmbedding(ctx, c)
	}

	return candidate.ToCandidateResponse(c), nil
}

// DeleteCandidate deletes a candidate
func (s *CandidateService) DeleteCandidate(ctx context.Context, id kernel.CandidateID) error {
	return s.candidateRepo.Delete(ctx, id)
}

// ArchiveCandidate archives a candidate
func (s *CandidateService) ArchiveCandidate(ctx context.Context, id kernel.CandidateID) error {
	c, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := c.Archive(); err != nil {
		return err
	}

	return s.candidateRepo.Update(ctx, id, c)
}

// UnarchiveCandidate restores an archived candidate
func (s *CandidateService) UnarchiveCandidate(ctx context.Context, id kernel.CandidateID) error {
	c, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := c.Unarchive(); err != nil {
		return err
	}

	return s.candidateRepo.Update(ctx, id, c)
}

// Snapshot returns every active candidate. This is the pool the search
// engine scores against.
func (s *CandidateService) Snapshot(ctx context.Context) ([]candidate.Candidate, error) {
	candidates, err := s.candidateRepo.ListActive(ctx)
	if err != nil {
		return nil, candidate.ErrSnapshotFailed().WithDetail("cause", err.Error())
	}

	return candidates, nil
}

// BulkEmbed (re)generates role embeddings for active candidates.
// Candidates that already have one are skipped unless Force is set.
func (s *CandidateService) BulkEmbed(ctx context.Context, req candidate.BulkEmbedRequest) (*candidate.BulkEmbedResponse, error) {
	if s.embedder == nil {
		return nil, candidate.ErrEmbeddingUpdateFailed().WithDetail("cause", "no embedder configured")
	}

	candidates, err := s.candidateRepo.ListActive(ctx)
	if err != nil {
		return nil, candidate.ErrSnapshotFailed().WithDetail("cause", err.Error())
	}

	start := time.Now()
	resp := &candidate.BulkEmbedResponse{}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(embedConcurrency)

	for i := range candidates {
		c := candidates[i]
		if strings.TrimSpace(c.RoleText()) == "" {
			continue
		}
		if c.HasRoleEmbedding() && !req.Force {
			continue
		}

		mu.Lock()
		resp.TotalProcessed++
		mu.Unlock()

		g.Go(func() error {
			embedding, err := s.embedder.Embed(gctx, c.RoleText())
			if err == nil {
				err = s.candidateRepo.UpdateRoleEmbedding(gctx, c.ID, embedding)
			}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				resp.FailureCount++
				resp.Errors = append(resp.Errors, fmt.Sprintf("%s: %v", c.ID, err))
				logx.Warnf("bulk embed failed for candidate %s: %v", c.ID, err)
				return nil
			}
			resp.SuccessCount++
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, candidate.ErrEmbeddingUpdateFailed().WithDetail("cause", err.Error())
	}

	resp.ExecutionTime = time.Since(start).Round(time.Millisecond).String()
	return resp, nil
}

// upsertRoleEmbedding stores a fresh role embedding, logging failures
// instead of propagating them.
func (s *CandidateService) upsertRoleEmbedding(ctx context.Context, c *candidate.Candidate) {
	if s.embedder == nil {
		return
	}

	roleText := strings.TrimSpace(c.RoleText())
	if roleText == "" {
		return
	}

	embedding, err := s.embedder.Embed(ctx, roleText)
	if err != nil {
		logx.Warnf("role embedding generation failed for candidate %s: %v", c.ID, err)
		return
	}

	if err := s.candidateRepo.UpdateRoleEmbedding(ctx, c.ID, embedding); err != nil {
		logx.Warnf("role embedding update failed for candidate %s: %v", c.ID, err)
		return
	}

	c.RoleEmbedding = embedding
}
