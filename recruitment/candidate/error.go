package candidate

import (
	"net/http"

	"github.com/hireloop/radar/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("CANDIDATE")

// Error codes
var (
	CodeCandidateNotFound        = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Candidate not found")
	CodeCandidateAlreadyExists   = ErrRegistry.Register("ALREADY_EXISTS", errx.TypeConflict, http.StatusConflict, "Candidate already exists")
	CodeInvalidCandidateData     = ErrRegistry.Register("INVALID_DATA", errx.TypeValidation, http.StatusBadRequest, "Invalid candidate data")
	CodeInvalidEmail             = ErrRegistry.Register("INVALID_EMAIL", errx.TypeValidation, http.StatusBadRequest, "Invalid email address")
	CodeCandidateAlreadyArchived = ErrRegistry.Register("ALREADY_ARCHIVED", errx.TypeBusiness, http.StatusUnprocessableEntity, "Candidate is already archived")
	CodeCandidateNotArchived     = ErrRegistry.Register("NOT_ARCHIVED", errx.TypeBusiness, http.StatusUnprocessableEntity, "Candidate is not archived")
	CodeEmbeddingUpdateFailed    = ErrRegistry.Register("EMBEDDING_UPDATE_FAILED", errx.TypeExternal, http.StatusBadGateway, "Failed to update candidate embedding")
	CodeSnapshotFailed           = ErrRegistry.Register("SNAPSHOT_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to load candidate snapshot")
	CodeInsufficientPermissions  = ErrRegistry.Register("INSUFFICIENT_PERMISSIONS", errx.TypeAuthorization, http.StatusForbidden, "Insufficient permissions")
)

// Helper functions
func ErrCandidateNotFound() *errx.Error {
	return ErrRegistry.New(CodeCandidateNotFound)
}

func ErrCandidateAlreadyExists() *errx.Error {
	return ErrRegistry.New(CodeCandidateAlreadyExists)
}

func ErrInvalidCandidateData() *errx.Error {
	return ErrRegistry.New(CodeInvalidCandidateData)
}

func ErrInvalidEmail() *errx.Error {
	return ErrRegistry.New(CodeInvalidEmail)
}

func ErrCandidateAlreadyArchived() *errx.Error {
	return ErrRegistry.New(CodeCandidateAlreadyArchived)
}

func ErrCandidateNotArchived() *errx.Error {
	return ErrRegistry.New(CodeCandidateNotArchived)
}

func ErrEmbeddingUpdateFailed() *errx.Error {
	return ErrRegistry.New(CodeEmbeddingUpdateFailed)
}

func ErrSnapshotFailed() *errx.Error {
	return ErrRegistry.New(CodeSnapshotFailed)
}

func ErrInsufficientPermissions() *errx.Error {
	return ErrRegistry.New(CodeInsufficientPermissions)
}
