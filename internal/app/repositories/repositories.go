package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        *UserRepository
	PlacementRepository   *PlacementRepository
	JobRepository         *JobRepository
	PartnershipRepository *PartnershipRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		PlacementRepository:   NewPlacementRepository(db),
		JobRepository:         NewJobRepository(db),
		PartnershipRepository: NewPartnershipRepository(db),
	}
}
