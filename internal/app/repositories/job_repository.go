package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/burak/campusplace/internal/app/models"
)

// Job error types
var (
	ErrJobNotFound = errors.New("job not found")
)

// JobRepository handles database operations for drive postings
type JobRepository struct {
	db *pgxpool.Pool
}

// NewJobRepository creates a new job repository
func NewJobRepository(db *pgxpool.Pool) *JobRepository {
	return &JobRepository{
		db: db,
	}
}

// Create inserts a new drive posting and fills in its generated id
func (r *JobRepository) Create(ctx context.Context, job *models.Job) error {
	query := `
		INSERT INTO jobs (company_id, college_id, title, description, location, ctc,
			deadline, min_cgpa, branches, rounds, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		job.CompanyID, job.CollegeID, job.Title, job.Description, job.Location, job.Ctc,
		job.Deadline, job.Criteria.MinCgpa, job.Criteria.Branches, job.Rounds, job.Status,
	).Scan(&job.ID, &job.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating job: %w", err)
	}

	return nil
}

const jobColumns = `j.id, j.company_id, j.college_id, j.title, j.description, j.location, j.ctc,
		j.deadline, j.min_cgpa, j.branches, j.rounds, j.status, j.created_at, u.name`

func scanJob(rows pgx.Rows) (models.Job, error) {
	var job models.Job
	err := rows.Scan(
		&job.ID,
		&job.CompanyID,
		&job.CollegeID,
		&job.Title,
		&job.Description,
		&job.Location,
		&job.Ctc,
		&job.Deadline,
		&job.Criteria.MinCgpa,
		&job.Criteria.Branches,
		&job.Rounds,
		&job.Status,
		&job.CreatedAt,
		&job.CompanyName,
	)
	return job, err
}

// GetByID retrieves a drive posting with its company name
func (r *JobRepository) GetByID(ctx context.Context, id int64) (*models.Job, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM jobs j
		JOIN users u ON u.id = j.company_id
		WHERE j.id = $1
	`, jobColumns)

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, ErrJobNotFound
	}

	job, err := scanJob(rows)
	if err != nil {
		return nil, fmt.Errorf("error retrieving job: %w", err)
	}

	return &job, nil
}

func (r *JobRepository) list(ctx context.Context, where string, args ...interface{}) ([]models.Job, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM jobs j
		JOIN users u ON u.id = j.company_id
		%s
		ORDER BY j.created_at DESC
	`, jobColumns, where)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []models.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}

// ListByCompany returns every drive a company has posted, newest first.
func (r *JobRepository) ListByCompany(ctx context.Context, companyID int64) ([]models.Job, error) {
	return r.list(ctx, `WHERE j.company_id = $1`, companyID)
}

// ListByCollege returns every drive posted at a college regardless of status.
// The company rollup folds these in alongside spreadsheet records.
func (r *JobRepository) ListByCollege(ctx context.Context, collegeID int64) ([]models.Job, error) {
	return r.list(ctx, `WHERE j.college_id = $1`, collegeID)
}

// ListOpenByCollege returns the open drives at a college for the student feed.
func (r *JobRepository) ListOpenByCollege(ctx context.Context, collegeID int64) ([]models.Job, error) {
	return r.list(ctx, `WHERE j.college_id = $1 AND j.status = $2`, collegeID, models.JobStatusOpen)
}
