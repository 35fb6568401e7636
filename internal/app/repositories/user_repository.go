package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/burak/campusplace/internal/app/models"
)

// User error types
var (
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository handles database operations for user accounts
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// Create inserts a new user and fills in its generated id
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (name, email, password, role, college_id, branch)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		user.Name, user.Email, user.Password, user.RoleType, user.CollegeID, user.Branch,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves a user by id
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT id, name, email, password, role, college_id, branch, created_at
		FROM users
		WHERE id = $1
	`

	var user models.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
		&user.RoleType,
		&user.CollegeID,
		&user.Branch,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, name, email, password, role, college_id, branch, created_at
		FROM users
		WHERE LOWER(email) = LOWER($1)
	`

	var user models.User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
		&user.RoleType,
		&user.CollegeID,
		&user.Branch,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user by email: %w", err)
	}

	return &user, nil
}

// EmailExists checks whether an email is already registered
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE LOWER(email) = LOWER($1))`,
		email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email existence: %w", err)
	}

	return exists, nil
}

// CountStudentsByBranch groups the college's student accounts by upper-cased
// branch. Students without a branch are counted under UNSPECIFIED. This is
// the eligible-count source for the dashboard and is deliberately not scoped
// by placement-record partitions.
func (r *UserRepository) CountStudentsByBranch(ctx context.Context, collegeID int64) (map[string]int, error) {
	query := `
		SELECT UPPER(COALESCE(NULLIF(TRIM(branch), ''), 'UNSPECIFIED')), COUNT(*)
		FROM users
		WHERE role = $1 AND college_id = $2
		GROUP BY 1
	`

	rows, err := r.db.Query(ctx, query, models.RoleStudent, collegeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var branch string
		var count int
		if err := rows.Scan(&branch, &count); err != nil {
			return nil, err
		}
		counts[branch] = count
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

// ListCompanies returns all company accounts (id and name only), used to
// resolve company identities by name.
func (r *UserRepository) ListCompanies(ctx context.Context) ([]models.User, error) {
	query := `
		SELECT id, name
		FROM users
		WHERE role = $1
	`

	rows, err := r.db.Query(ctx, query, models.RoleCompany)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []models.User
	for rows.Next() {
		var user models.User
		user.RoleType = models.RoleCompany
		if err := rows.Scan(&user.ID, &user.Name); err != nil {
			return nil, err
		}
		companies = append(companies, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return companies, nil
}

// ListColleges returns all college accounts for the partner search.
func (r *UserRepository) ListColleges(ctx context.Context) ([]models.User, error) {
	query := `
		SELECT id, name, email
		FROM users
		WHERE role = $1
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, models.RoleCollege)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var colleges []models.User
	for rows.Next() {
		var user models.User
		user.RoleType = models.RoleCollege
		if err := rows.Scan(&user.ID, &user.Name, &user.Email); err != nil {
			return nil, err
		}
		colleges = append(colleges, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return colleges, nil
}
