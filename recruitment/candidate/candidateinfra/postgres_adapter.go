package candidateinfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/hireloop/radar/pkg/kernel"
	"github.com/hireloop/radar/recruitment/candidate"
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

type PostgresCandidateRepository struct {
	db *sqlx.DB
}

func NewPostgresCandidateRepository(db *sqlx.DB) candidate.Repository {
	return &PostgresCandidateRepository{db: db}
}

const candidateColumns = `
	id, status, name, email, phone,
	current_role, desired_role, current_company, location, total_experience,
	technical_skills, soft_skills, tags, highest_qualification, certifications,
	summary, resume_text, key_achievements, work_history, projects,
	created_at, updated_at, archived_at
`

// candidateRow maps one candidates row. Array columns come back as
// text[], work history as JSONB. The role embedding is excluded here;
// it only travels on the nearest-neighbour query where it is non-null.
type candidateRow struct {
	ID                   string         `db:"id"`
	Status               string         `db:"status"`
	Name                 string         `db:"name"`
	Email                string         `db:"email"`
	Phone                sql.NullString `db:"phone"`
	CurrentRole          sql.NullString `db:"current_role"`
	DesiredRole          sql.NullString `db:"desired_role"`
	CurrentCompany       sql.NullString `db:"current_company"`
	Location             sql.NullString `db:"location"`
	TotalExperience      sql.NullString `db:"total_experience"`
	TechnicalSkills      pq.StringArray `db:"technical_skills"`
	SoftSkills           pq.StringArray `db:"soft_skills"`
	Tags                 pq.StringArray `db:"tags"`
	HighestQualification sql.NullString `db:"highest_qualification"`
	Certifications       pq.StringArray `db:"certifications"`
	Summary              sql.NullString `db:"summary"`
	ResumeText           sql.NullString `db:"resume_text"`
	KeyAchievements      pq.StringArray `db:"key_achievements"`
	WorkHistory          types.JSONText `db:"work_history"`
	Projects             pq.StringArray `db:"projects"`
	CreatedAt            time.Time      `db:"created_at"`
	UpdatedAt            time.Time      `db:"updated_at"`
	ArchivedAt           sql.NullTime   `db:"archived_at"`
}

func (row *candidateRow) toDomain() (*candidate.Candidate, error) {
	c := &candidate.Candidate{
		ID:                   kernel.CandidateID(row.ID),
		Status:               candidate.CandidateStatus(row.Status),
		Name:                 row.Name,
		Email:                kernel.Email(row.Email),
		Phone:                kernel.Phone(row.Phone.String),
		CurrentRole:          row.CurrentRole.String,
		DesiredRole:          row.DesiredRole.String,
		CurrentCompany:       row.CurrentCompany.String,
		Location:             row.Location.String,
		TotalExperience:      row.TotalExperience.String,
		TechnicalSkills:      row.TechnicalSkills,
		SoftSkills:           row.SoftSkills,
		Tags:                 row.Tags,
		HighestQualification: row.HighestQualification.String,
		Certifications:       row.Certifications,
		Summary:              row.Summary.String,
		ResumeText:           row.ResumeText.String,
		KeyAchievements:      row.KeyAchievements,
		Projects:             row.Projects,
		CreatedAt:            row.CreatedAt,
		UpdatedAt:            row.UpdatedAt,
	}

	if len(row.WorkHistory) > 0 {
		if err := json.Unmarshal(row.WorkHistory, &c.WorkHistory); err != nil {
			return nil, err
		}
	}

	if row.ArchivedAt.Valid {
		c.ArchivedAt = &row.ArchivedAt.Time
	}

	return c, nil
}

func marshalWorkHistory(entries []candidate.WorkHistoryEntry) (types.JSONText, error) {
	if len(entries) == 0 {
		return types.JSONText("[]"), nil
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return nil, err
	}
	return types.JSONText(raw), nil
}

// Create inserts a new candidate. The role embedding is written
// separately through UpdateRoleEmbedding.
func (r *PostgresCandidateRepository) Create(ctx context.Context, c *candidate.Candidate) error {
	workHistory, err := marshalWorkHistory(c.WorkHistory)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO candidates (
			id, status, name, email, phone,
			current_role, desired_role, current_company, location, total_experience,
			technical_skills, soft_skills, tags, highest_qualification, certifications,
			summary, resume_text, key_achievements, work_history, projects,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20,
			$21, $22
		)
	`

	_, err = r.db.ExecContext(
		ctx,
		query,
		c.ID,
		c.Status,
		c.Name,
		c.Email,
		c.Phone,
		c.CurrentRole,
		c.DesiredRole,
		c.CurrentCompany,
		c.Location,
		c.TotalExperience,
		pq.Array(c.TechnicalSkills),
		pq.Array(c.SoftSkills),
		pq.Array(c.Tags),
		c.HighestQualification,
		pq.Array(c.Certifications),
		c.Summary,
		c.ResumeText,
		pq.Array(c.KeyAchievements),
		workHistory,
		pq.Array(c.Projects),
		c.CreatedAt,
		c.UpdatedAt,
	)

	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
		return candidate.ErrCandidateAlreadyExists()
	}

	return err
}

// Update updates an existing candidate
func (r *PostgresCandidateRepository) Update(ctx context.Context, id kernel.CandidateID, c *candidate.Candidate) error {
	workHistory, err := marshalWorkHistory(c.WorkHistory)
	if err != nil {
		return err
	}

	query := `
		UPDATE candidates
		SET
			status = $2,
			name = $3,
			email = $4,
			phone = $5,
			current_role = $6,
			desired_role = $7,
			current_company = $8,
			location = $9,
			total_experience = $10,
			technical_skills = $11,
			soft_skills = $12,
			tags = $13,
			highest_qualification = $14,
			certifications = $15,
			summary = $16,
			resume_text = $17,
			key_achievements = $18,
			work_history = $19,
			projects = $20,
			archived_at = $21,
			updated_at = $22
		WHERE id = $1
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		id,
		c.Status,
		c.Name,
		c.Email,
		c.Phone,
		c.CurrentRole,
		c.DesiredRole,
		c.CurrentCompany,
		c.Location,
		c.TotalExperience,
		pq.Array(c.TechnicalSkills),
		pq.Array(c.SoftSkills),
		pq.Array(c.Tags),
		c.HighestQualification,
		pq.Array(c.Certifications),
		c.Summary,
		c.ResumeText,
		pq.Array(c.KeyAchievements),
		workHistory,
		pq.Array(c.Projects),
		c.ArchivedAt,
		c.UpdatedAt,
	)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return candidate.ErrCandidateNotFound()
	}

	return nil
}

// GetByID retrieves a candidate by ID
func (r *PostgresCandidateRepository) GetByID(ctx context.Context, id kernel.CandidateID) (*candidate.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1`

	var row candidateRow
	err := r.db.GetContext(ctx, &row, query, id)
	if err == sql.ErrNoRows {
		return nil, candidate.ErrCandidateNotFound()
	}
	if err != nil {
		return nil, err
	}

	return row.toDomain()
}

// GetByEmail retrieves a candidate by email
func (r *PostgresCandidateRepository) GetByEmail(ctx context.Context, email kernel.Email) (*candidate.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE email = $1`

	var row candidateRow
	err := r.db.GetContext(ctx, &row, query, email)
	if err == sql.ErrNoRows {
		return nil, candidate.ErrCandidateNotFound()
	}
	if err != nil {
		return nil, err
	}

	return row.toDomain()
}

// List retrieves candidates with pagination
func (r *PostgresCandidateRepository) List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[candidate.Candidate], error) {
	pagination = pagination.Normalize()

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM candidates`); err != nil {
		return nil, err
	}

	query := `
		SELECT ` + candidateColumns + `
		FROM candidates
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	var rows []candidateRow
	if err := r.db.SelectContext(ctx, &rows, query, pagination.PageSize, pagination.Offset()); err != nil {
		return nil, err
	}

	candidates := make([]candidate.Candidate, 0, len(rows))
	for i := range rows {
		c, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, *c)
	}

	return kernel.NewPaginated(candidates, pagination.Page, pagination.PageSize, total), nil
}

// ListActive retrieves every active candidate for the scoring snapshot
func (r *PostgresCandidateRepository) ListActive(ctx context.Context) ([]candidate.Candidate, error) {
	query := `
		SELECT ` + candidateColumns + `
		FROM candidates
		WHERE status = $1
		ORDER BY created_at DESC
	`

	var rows []candidateRow
	if err := r.db.SelectContext(ctx, &rows, query, candidate.CandidateStatusActive); err != nil {
		return nil, err
	}

	candidates := make([]candidate.Candidate, 0, len(rows))
	for i := range rows {
		c, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, *c)
	}

	return candidates, nil
}

// Delete deletes a candidate by ID
func (r *PostgresCandidateRepository) Delete(ctx context.Context, id kernel.CandidateID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return candidate.ErrCandidateNotFound()
	}

	return nil
}

// Count counts all candidates
func (r *PostgresCandidateRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM candidates`)
	return count, err
}

// UpdateRoleEmbedding updates only the stored role embedding
func (r *PostgresCandidateRepository) UpdateRoleEmbedding(ctx context.Context, id kernel.CandidateID, embedding kernel.Embedding) error {
	query := `
		UPDATE candidates
		SET role_embedding = $2, updated_at = $3
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id, pgvector.NewVector(embedding), time.Now())
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return candidate.ErrCandidateNotFound()
	}

	return nil
}

// NearestByRoleEmbedding returns active candidates ordered by cosine
// distance to the given vector. Rows without a stored embedding are
// skipped; callers fall back to text similarity for those.
func (r *PostgresCandidateRepository) NearestByRoleEmbedding(ctx context.Context, embedding kernel.Embedding, limit int) ([]candidate.Candidate, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT ` + candidateColumns + `, role_embedding
		FROM candidates
		WHERE status = $1 AND role_embedding IS NOT NULL
		ORDER BY role_embedding <=> $2
		LIMIT $3
	`

	type nearestRow struct {
		candidateRow
		RoleEmbedding pgvector.Vector `db:"role_embedding"`
	}

	var rows []nearestRow
	err := r.db.SelectContext(ctx, &rows, query, candidate.CandidateStatusActive, pgvector.NewVector(embedding), limit)
	if err != nil {
		return nil, err
	}

	candidates := make([]candidate.Candidate, 0, len(rows))
	for i := range rows {
		c, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}
		c.RoleEmbedding = kernel.Embedding(rows[i].RoleEmbedding.Slice())
		candidates = append(candidates, *c)
	}

	return candidates, nil
}
