package candidate

import (
	"strings"
	"time"

	"github.com/hireloop/radar/pkg/kernel"
)

// CandidateStatus represents the status of a candidate
type CandidateStatus string

const (
	CandidateStatusActive   CandidateStatus = "ACTIVE"   // Visible to search and ranking
	CandidateStatusInactive CandidateStatus = "INACTIVE" // Deactivated
	CandidateStatusArchived CandidateStatus = "ARCHIVED" // Archived
)

// Candidate is the profile the scoring core ranks against. The core treats
// it as a read-only snapshot; only the candidate service mutates it.
type Candidate struct {
	ID     kernel.CandidateID `db:"id" json:"id"`
	Status CandidateStatus    `db:"status" json:"status"`

	// Identity
	Name  string       `db:"name" json:"name"`
	Email kernel.Email `db:"email" json:"email"`
	Phone kernel.Phone `db:"phone" json:"phone"`

	// Scored fields
	CurrentRole          string   `db:"current_role" json:"current_role"`
	DesiredRole          string   `db:"desired_role" json:"desired_role,omitempty"`
	CurrentCompany       string   `db:"current_company" json:"current_company,omitempty"`
	Location             string   `db:"location" json:"location,omitempty"`
	TotalExperience      string   `db:"total_experience" json:"total_experience,omitempty"` // free text, e.g. "5 years", "2 years 6 months"
	TechnicalSkills      []string `db:"technical_skills" json:"technical_skills,omitempty"`
	SoftSkills           []string `db:"soft_skills" json:"soft_skills,omitempty"`
	Tags                 []string `db:"tags" json:"tags,omitempty"`
	HighestQualification string   `db:"highest_qualification" json:"highest_qualification,omitempty"`
	Certifications       []string `db:"certifications" json:"certifications,omitempty"`

	// Free-text corpus for responsibility matching
	Summary         string             `db:"summary" json:"summary,omitempty"`
	ResumeText      string             `db:"resume_text" json:"resume_text,omitempty"`
	KeyAchievements []string           `db:"key_achievements" json:"key_achievements,omitempty"`
	WorkHistory     []WorkHistoryEntry `db:"work_history" json:"work_history,omitempty"`
	Projects        []string           `db:"projects" json:"projects,omitempty"`

	// Semantic search support
	RoleEmbedding kernel.Embedding `db:"role_embedding" json:"-"`

	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updated_at"`
	ArchivedAt *time.Time `db:"archived_at" json:"archived_at,omitempty"`
}

// WorkHistoryEntry is one position in the candidate's work history.
type WorkHistoryEntry struct {
	Role        string `json:"role"`
	Company     string `json:"company,omitempty"`
	Description string `json:"description,omitempty"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsActive checks if the candidate is active
func (c *Candidate) IsActive() bool {
	return c.Status == CandidateStatusActive
}

// IsArchived checks if the candidate is archived
func (c *Candidate) IsArchived() bool {
	return c.Status == CandidateStatusArchived
}

// Archive marks the candidate as archived
func (c *Candidate) Archive() error {
	if c.IsArchived() {
		return ErrCandidateAlreadyArchived()
	}

	now := time.Now()
	c.Status = CandidateStatusArchived
	c.ArchivedAt = &now
	c.UpdatedAt = now
	return nil
}

// Unarchive removes archived status
func (c *Candidate) Unarchive() error {
	if !c.IsArchived() {
		return ErrCandidateNotArchived()
	}

	c.Status = CandidateStatusActive
	c.ArchivedAt = nil
	c.UpdatedAt = time.Now()
	return nil
}

// Deactivate marks the candidate as inactive
func (c *Candidate) Deactivate() {
	c.Status = CandidateStatusInactive
	c.UpdatedAt = time.Now()
}

// Activate marks the candidate as active
func (c *Candidate) Activate() {
	c.Status = CandidateStatusActive
	c.UpdatedAt = time.Now()
}

// HasRoleEmbedding reports whether a stored role embedding exists
func (c *Candidate) HasRoleEmbedding() bool {
	return !c.RoleEmbedding.IsZero()
}

// AllSkills returns technical skills, soft skills and tags as one list
func (c *Candidate) AllSkills() []string {
	skills := make([]string, 0, len(c.TechnicalSkills)+len(c.SoftSkills)+len(c.Tags))
	skills = append(skills, c.TechnicalSkills...)
	skills = append(skills, c.SoftSkills...)
	skills = append(skills, c.Tags...)
	return skills
}

// RoleText returns the text used for role comparison and role embeddings.
// The current role wins over the desired role when both are present.
func (c *Candidate) RoleText() string {
	if strings.TrimSpace(c.CurrentRole) != "" {
		return c.CurrentRole
	}
	return c.DesiredRole
}

// FreeTextCorpus aggregates every free-text field into one lower-cased
// blob for responsibility matching.
func (c *Candidate) FreeTextCorpus() string {
	var b strings.Builder
	b.WriteString(c.ResumeText)
	b.WriteString(" ")
	b.WriteString(c.Summary)
	b.WriteString(" ")
	b.WriteString(c.CurrentRole)
	for _, a := range c.KeyAchievements {
		b.WriteString(" ")
		b.WriteString(a)
	}
	for _, w := range c.WorkHistory {
		b.WriteString(" ")
		b.WriteString(w.Role)
		b.WriteString(" ")
		b.WriteString(w.Description)
	}
	for _, p := range c.Projects {
		b.WriteString(" ")
		b.WriteString(p)
	}
	return strings.ToLower(b.String())
}
