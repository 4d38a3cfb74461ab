package candidateapi

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hireloop/radar/pkg/kernel"
	"github.com/hireloop/radar/recruitment/candidate"
	"github.com/hireloop/radar/recruitment/candidate/candidatesrv"
)

var validate = validator.New()

// Handlers provides HTTP handlers for candidate operations
type Handlers struct {
	service *candidatesrv.CandidateService
}

// NewHandlers creates a new candidate handlers instance
func NewHandlers(service *candidatesrv.CandidateService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// CreateCandidate creates a new candidate
// POST /api/candidates
func (h *Handlers) CreateCandidate(c *fiber.Ctx) error {
	var req candidate.CreateCandidateRequest
	if err := c.BodyParser(&req); err != nil {
		return candidate.ErrInvalidCandidateData().WithDetail("parse_error", err.Error())
	}

	if err := validate.Struct(req); err != nil {
		return candidate.ErrInvalidCandidateData().WithDetail("validation", err.Error())
	}

	resp, err := h.service.CreateCandidate(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetCandidate retrieves a candidate by ID
// GET /api/candidates/:id
func (h *Handlers) GetCandidate(c *fiber.Ctx) error {
	candidateID := kernel.CandidateID(c.Params("id"))
	if candidateID.IsEmpty() {
		return candidate.ErrCandidateNotFound().WithDetail("id", "missing or empty")
	}

	resp, err := h.service.GetCandidate(c.Context(), candidateID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// GetCandidateByEmail retrieves a candidate by email
// GET /api/candidates/by-email/:email
func (h *Handlers) GetCandidateByEmail(c *fiber.Ctx) error {
	email := kernel.Email(c.Params("email"))
	if email == "" {
		return candidate.ErrInvalidEmail().WithDetail("email", "missing or empty")
	}

	resp, err := h.service.GetCandidateByEmail(c.Context(), email)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// ListCandidates retrieves candidates with pagination
// GET /api/candidates
func (h *Handlers) ListCandidates(c *fiber.Ctx) error {
	pagination := parsePaginationOptions(c)

	resp, err := h.service.ListCandidates(c.Context(), pagination)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// UpdateCandidate updates an existing candidate
// PUT /api/candidates/:id
func (h *Handlers) UpdateCandidate(c *fiber.Ctx) error {
	candidateID := kernel.CandidateID(c.Params("id"))
	if candidateID.IsEmpty() {
		return candidate.ErrCandidateNotFound().WithDetail("id", "missing or empty")
	}

	var req candidate.UpdateCandidateRequest
	if err := c.BodyParser(&req); err != nil {
		return candidate.ErrInvalidCandidateData().WithDetail("parse_error", err.Error())
	}

	if err := validate.Struct(req); err != nil {
		return candidate.ErrInvalidCandidateData().WithDetail("validation", err.Error())
	}

	resp, err := h.service.UpdateCandidate(c.Context(), candidateID, req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// DeleteCandidate deletes a candidate
// DELETE /api/candidates/:id
func (h *Handlers) DeleteCandidate(c *fiber.Ctx) error {
	candidateID := kernel.CandidateID(c.Params("id"))
	if candidateID.IsEmpty() {
		return candidate.ErrCandidateNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.DeleteCandidate(c.Context(), candidateID); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}

// ArchiveCandidate archives a candidate
// POST /api/candidates/:id/archive
func (h *Handlers) ArchiveCandidate(c *fiber.Ctx) error {
	candidateID := kernel.CandidateID(c.Params("id"))
	if candidateID.IsEmpty() {
		return candidate.ErrCandidateNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.ArchiveCandidate(c.Context(), candidateID); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Candidate archived successfully",
	})
}

// UnarchiveCandidate restores an archived candidate
// POST /api/candidates/:id/unarchive
func (h *Handlers) UnarchiveCandidate(c *fiber.Ctx) error {
	candidateID := kernel.CandidateID(c.Params("id"))
	if candidateID.IsEmpty() {
		return candidate.ErrCandidateNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.UnarchiveCandidate(c.Context(), candidateID); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Candidate unarchived successfully",
	})
}

// BulkEmbed (re)generates role embeddings for active candidates
// POST /api/candidates/bulk/embed
func (h *Handlers) BulkEmbed(c *fiber.Ctx) error {
	var req candidate.BulkEmbedRequest
	if err := c.BodyParser(&req); err != nil {
		return candidate.ErrInvalidCandidateData().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.BulkEmbed(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// ============================================================================
// Helper Functions
// ============================================================================

// parsePaginationOptions extracts pagination options from query parameters
func parsePaginationOptions(c *fiber.Ctx) kernel.PaginationOptions {
	return kernel.PaginationOptions{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", 20),
	}.Normalize()
}

// RegisterRoutes registers all candidate routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api/candidates")

	api.Get("/", handlers.ListCandidates)
	api.Get("/by-email/:email", handlers.GetCandidateByEmail)
	api.Get("/:id", handlers.GetCandidate)

	api.Post("/", handlers.CreateCandidate)
	api.Put("/:id", handlers.UpdateCandidate)
	api.Delete("/:id", handlers.DeleteCandidate)

	api.Post("/:id/archive", handlers.ArchiveCandidate)
	api.Post("/:id/unarchive", handlers.UnarchiveCandidate)

	api.Post("/bulk/embed", handlers.BulkEmbed)
}
