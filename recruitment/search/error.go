package search

import (
	"net/http"

	"github.com/hireloop/radar/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("SEARCH")

// Error codes
var (
	CodeEmptyQuery      = ErrRegistry.Register("EMPTY_QUERY", errx.TypeValidation, http.StatusBadRequest, "Search query is empty")
	CodeNoCriteria      = ErrRegistry.Register("NO_CRITERIA", errx.TypeValidation, http.StatusBadRequest, "No scorable criteria in request")
	CodeSnapshotFailed  = ErrRegistry.Register("SNAPSHOT_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to load candidate snapshot")
	CodeGeneratorFailed = ErrRegistry.Register("GENERATOR_FAILED", errx.TypeExternal, http.StatusBadGateway, "Language model call failed")
	CodeEmbedderFailed  = ErrRegistry.Register("EMBEDDER_FAILED", errx.TypeExternal, http.StatusBadGateway, "Embedding call failed")
)

// Helper functions
func ErrEmptyQuery() *errx.Error {
	return ErrRegistry.New(CodeEmptyQuery)
}

func ErrNoCriteria() *errx.Error {
	return ErrRegistry.New(CodeNoCriteria)
}

func ErrSnapshotFailed() *errx.Error {
	return ErrRegistry.New(CodeSnapshotFailed)
}

func ErrGeneratorFailed() *errx.Error {
	return ErrRegistry.New(CodeGeneratorFailed)
}

func ErrEmbedderFailed() *errx.Error {
	return ErrRegistry.New(CodeEmbedderFailed)
}
