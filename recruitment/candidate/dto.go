package candidate

import (
	"time"

	"github.com/hireloop/radar/pkg/kernel"
)

// CreateCandidateRequest - DTO for creating a new candidate
type CreateCandidateRequest struct {
	Name                 string             `json:"name" validate:"required"`
	Email                kernel.Email       `json:"email" validate:"required,email"`
	Phone                kernel.Phone       `json:"phone,omitempty"`
	CurrentRole          string             `json:"current_role" validate:"required"`
	DesiredRole          string             `json:"desired_role,omitempty"`
	CurrentCompany       string             `json:"current_company,omitempty"`
	Location             string             `json:"location,omitempty"`
	TotalExperience      string             `json:"total_experience,omitempty"`
	TechnicalSkills      []string           `json:"technical_skills,omitempty"`
	SoftSkills           []string           `json:"soft_skills,omitempty"`
	Tags                 []string           `json:"tags,omitempty"`
	HighestQualification string             `json:"highest_qualification,omitempty"`
	Certifications       []string           `json:"certifications,omitempty"`
	Summary              string             `json:"summary,omitempty"`
	ResumeText           string             `json:"resume_text,omitempty"`
	KeyAchievements      []string           `json:"key_achievements,omitempty"`
	WorkHistory          []WorkHistoryEntry `json:"work_history,omitempty"`
	Projects             []string           `json:"projects,omitempty"`
}

// UpdateCandidateRequest - DTO for updating an existing candidate.
// Nil fields are left untouched.
type UpdateCandidateRequest struct {
	Name                 *string             `json:"name,omitempty"`
	Email                *kernel.Email       `json:"email,omitempty" validate:"omitempty,email"`
	Phone                *kernel.Phone       `json:"phone,omitempty"`
	CurrentRole          *string             `json:"current_role,omitempty"`
	DesiredRole          *string             `json:"desired_role,omitempty"`
	CurrentCompany       *string             `json:"current_company,omitempty"`
	Location             *string             `json:"location,omitempty"`
	TotalExperience      *string             `json:"total_experience,omitempty"`
	TechnicalSkills      *[]string           `json:"technical_skills,omitempty"`
	SoftSkills           *[]string           `json:"soft_skills,omitempty"`
	Tags                 *[]string           `json:"tags,omitempty"`
	HighestQualification *string             `json:"highest_qualification,omitempty"`
	Certifications       *[]string           `json:"certifications,omitempty"`
	Summary              *string             `json:"summary,omitempty"`
	ResumeText           *string             `json:"resume_text,omitempty"`
	KeyAchievements      *[]string           `json:"key_achievements,omitempty"`
	WorkHistory          *[]WorkHistoryEntry `json:"work_history,omitempty"`
	Projects             *[]string           `json:"projects,omitempty"`
}

// ListCandidatesRequest - DTO for listing candidates
type ListCandidatesRequest struct {
	OnlyActive bool                     `json:"only_active"`
	Pagination kernel.PaginationOptions `json:"pagination"`
}

// Response type alias for paginated candidates
type PaginatedCandidatesResponse = kernel.Paginated[CandidateResponse]

// CandidateResponse - DTO for returning candidate data
type CandidateResponse struct {
	ID                   kernel.CandidateID `json:"id"`
	Status               CandidateStatus    `json:"status"`
	Name                 string             `json:"name"`
	Email                kernel.Email       `json:"email"`
	Phone                kernel.Phone       `json:"phone,omitempty"`
	CurrentRole          string             `json:"current_role"`
	DesiredRole          string             `json:"desired_role,omitempty"`
	CurrentCompany       string             `json:"current_company,omitempty"`
	Location             string             `json:"location,omitempty"`
	TotalExperience      string             `json:"total_experience,omitempty"`
	TechnicalSkills      []string           `json:"technical_skills,omitempty"`
	SoftSkills           []string           `json:"soft_skills,omitempty"`
	Tags                 []string           `json:"tags,omitempty"`
	HighestQualification string             `json:"highest_qualification,omitempty"`
	Certifications       []string           `json:"certifications,omitempty"`
	Summary              string             `json:"summary,omitempty"`
	KeyAchievements      []string           `json:"key_achievements,omitempty"`
	WorkHistory          []WorkHistoryEntry `json:"work_history,omitempty"`
	Projects             []string           `json:"projects,omitempty"`
	HasEmbedding         bool               `json:"has_embedding"`
	CreatedAt            time.Time          `json:"created_at"`
	UpdatedAt            time.Time          `json:"updated_at"`
}

// ToCandidateResponse maps a candidate to its response DTO
func ToCandidateResponse(c *Candidate) *CandidateResponse {
	return &CandidateResponse{
		ID:                   c.ID,
		Status:               c.Status,
		Name:                 c.Name,
		Email:                c.Email,
		Phone:                c.Phone,
		CurrentRole:          c.CurrentRole,
		DesiredRole:          c.DesiredRole,
		CurrentCompany:       c.CurrentCompany,
		Location:             c.Location,
		TotalExperience:      c.TotalExperience,
		TechnicalSkills:      c.TechnicalSkills,
		SoftSkills:           c.SoftSkills,
		Tags:                 c.Tags,
		HighestQualification: c.HighestQualification,
		Certifications:       c.Certifications,
		Summary:              c.Summary,
		KeyAchievements:      c.KeyAchievements,
		WorkHistory:          c.WorkHistory,
		Projects:             c.Projects,
		HasEmbedding:         c.HasRoleEmbedding(),
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
	}
}

// BulkEmbedRequest - Request to (re)generate role embeddings
type BulkEmbedRequest struct {
	Force bool `json:"force"` // Regenerate even when an embedding exists
}

// BulkEmbedResponse - Result of a bulk embedding run
type BulkEmbedResponse struct {
	TotalProcessed int      `json:"total_processed"`
	SuccessCount   int      `json:"success_count"`
	FailureCount   int      `json:"failure_count"`
	Errors         []string `json:"errors,omitempty"`
	ExecutionTime  string   `json:"execution_time"`
}
