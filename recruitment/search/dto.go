package search

// SearchRequest - DTO for structured (parsed) search
type SearchRequest struct {
	Query string `json:"query" validate:"required"`
}

// JobDescriptionSearchRequest - DTO for searching against a full JD
type JobDescriptionSearchRequest struct {
	JobDescription string `json:"job_description" validate:"required"`
}

// SimilarCandidatesRequest - DTO for the JD-drafting similarity path
type SimilarCandidatesRequest struct {
	JobTitle string `json:"job_title" validate:"required"`
}

// SearchResponse - ranked candidates plus the requirement they were
// scored against, so the UI can explain the match.
type SearchResponse struct {
	Query       string            `json:"query"`
	Requirement *Requirement      `json:"requirement,omitempty"`
	Results     []ScoredCandidate `json:"results"`
	TotalFound  int               `json:"total_found"`
	Mode        SearchMode        `json:"mode"`
}

// SearchMode records which pipeline produced a response.
type SearchMode string

const (
	ModeIntelligent SearchMode = "intelligent" // parsed requirement + weighted scoring
	ModeKeyword     SearchMode = "keyword"     // deterministic lexical fallback
	ModeAIRanked    SearchMode = "ai_ranked"   // language model ranked summaries
)

// SimilarCandidatesResponse - result of the similarity path
type SimilarCandidatesResponse struct {
	JobTitle   string             `json:"job_title"`
	Results    []SimilarCandidate `json:"results"`
	TotalFound int                `json:"total_found"`
}
