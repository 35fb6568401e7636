package services

import (
	"context"

	"github.com/burak/campusplace/internal/app/models"
	"github.com/burak/campusplace/internal/app/repositories"
)

// The store interfaces mirror the repository method sets the services
// actually use, so tests can substitute in-memory implementations.

// UserStore provides user account persistence.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	CountStudentsByBranch(ctx context.Context, collegeID int64) (map[string]int, error)
	ListCompanies(ctx context.Context) ([]models.User, error)
	ListColleges(ctx context.Context) ([]models.User, error)
}

// PlacementStore provides placement record persistence.
type PlacementStore interface {
	CountPartition(ctx context.Context, collegeID int64, classYear, department string) (int, error)
	ReplacePartition(ctx context.Context, collegeID int64, classYear, department string, records []models.PlacementRecord, replace bool) error
	Find(ctx context.Context, q repositories.RecordQuery) ([]models.PlacementRecord, error)
	FindPage(ctx context.Context, q repositories.RecordQuery) ([]models.PlacementRecord, int, error)
	ListPartitions(ctx context.Context, collegeID int64) ([][2]string, error)
}

// JobStore provides drive posting persistence.
type JobStore interface {
	Create(ctx context.Context, job *models.Job) error
	GetByID(ctx context.Context, id int64) (*models.Job, error)
	ListByCompany(ctx context.Context, companyID int64) ([]models.Job, error)
	ListByCollege(ctx context.Context, collegeID int64) ([]models.Job, error)
	ListOpenByCollege(ctx context.Context, collegeID int64) ([]models.Job, error)
}

// PartnershipStore provides partnership persistence.
type PartnershipStore interface {
	Create(ctx context.Context, p *models.Partnership) error
	GetByID(ctx context.Context, id int64) (*models.Partnership, error)
	UpdateStatus(ctx context.Context, id int64, status models.PartnershipStatus) error
	ListByUser(ctx context.Context, userID int64) ([]models.Partnership, error)
	ActivePartnerIDs(ctx context.Context, userID int64) (map[int64]bool, error)
	HasActiveBetween(ctx context.Context, a, b int64) (bool, error)
	PairExists(ctx context.Context, a, b int64) (bool, error)
}
