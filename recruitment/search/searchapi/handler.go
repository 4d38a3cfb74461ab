package searchapi

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hireloop/radar/recruitment/search"
	"github.com/hireloop/radar/recruitment/search/searchsrv"
)

var validate = validator.New()

// Handlers provides HTTP handlers for search operations
type Handlers struct {
	service *searchsrv.SearchService
}

// NewHandlers creates a new search handlers instance
func NewHandlers(service *searchsrv.SearchService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// IntelligentSearch parses the query and ranks the candidate pool
// POST /api/search
func (h *Handlers) IntelligentSearch(c *fiber.Ctx) error {
	var req search.SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return search.ErrEmptyQuery().WithDetail("parse_error", err.Error())
	}

	if err := validate.Struct(req); err != nil {
		return search.ErrEmptyQuery().WithDetail("validation", err.Error())
	}

	resp, err := h.service.IntelligentSearch(c.Context(), req.Query)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// SearchByJobDescription ranks candidates against a full job description
// POST /api/search/jd
func (h *Handlers) SearchByJobDescription(c *fiber.Ctx) error {
	var req search.JobDescriptionSearchRequest
	if err := c.BodyParser(&req); err != nil {
		return search.ErrEmptyQuery().WithDetail("parse_error", err.Error())
	}

	if err := validate.Struct(req); err != nil {
		return search.ErrEmptyQuery().WithDetail("validation", err.Error())
	}

	resp, err := h.service.SearchByJobDescription(c.Context(), req.JobDescription)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// TextSearch runs the lexical pipeline directly
// POST /api/search/text
func (h *Handlers) TextSearch(c *fiber.Ctx) error {
	var req search.SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return search.ErrEmptyQuery().WithDetail("parse_error", err.Error())
	}

	if err := validate.Struct(req); err != nil {
		return search.ErrEmptyQuery().WithDetail("validation", err.Error())
	}

	resp, err := h.service.TextSearch(c.Context(), req.Query)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// AIRankedSearch lets the language model rank candidate summaries
// POST /api/search/ai
func (h *Handlers) AIRankedSearch(c *fiber.Ctx) error {
	var req search.SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return search.ErrEmptyQuery().WithDetail("parse_error", err.Error())
	}

	if err := validate.Struct(req); err != nil {
		return search.ErrEmptyQuery().WithDetail("validation", err.Error())
	}

	resp, err := h.service.AIRankedSearch(c.Context(), req.Query)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// SimilarCandidates finds candidates close to a job title
// POST /api/search/similar
func (h *Handlers) SimilarCandidates(c *fiber.Ctx) error {
	var req search.SimilarCandidatesRequest
	if err := c.BodyParser(&req); err != nil {
		return search.ErrEmptyQuery().WithDetail("parse_error", err.Error())
	}

	if err := validate.Struct(req); err != nil {
		return search.ErrEmptyQuery().WithDetail("validation", err.Error())
	}

	resp, err := h.service.SimilarCandidates(c.Context(), req.JobTitle)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// RegisterRoutes registers all search routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api/search")

	api.Post("/", handlers.IntelligentSearch)
	api.Post("/jd", handlers.SearchByJobDescription)
	api.Post("/text", handlers.TextSearch)
	api.Post("/ai", handlers.AIRankedSearch)
	api.Post("/similar", handlers.SimilarCandidates)
}
