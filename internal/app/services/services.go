// Package services contains the business logic behind the HTTP surface:
// account management, the spreadsheet import pipeline, dashboard analytics,
// the company rollup, drive postings and the partnership network.
package services

import (
	"github.com/burak/campusplace/internal/app/repositories"
	"github.com/burak/campusplace/internal/pkg/auth"
)

// Services holds all the service instances
type Services struct {
	AuthService      *AuthService
	PlacementService *PlacementService
	JobService       *JobService
	NetworkService   *NetworkService
}

// NewServices initializes all services over the given repositories
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService) *Services {
	return &Services{
		AuthService: NewAuthService(repos.UserRepository, jwtService),
		PlacementService: NewPlacementService(
			repos.UserRepository,
			repos.PlacementRepository,
			repos.JobRepository,
			repos.PartnershipRepository,
		),
		JobService:     NewJobService(repos.UserRepository, repos.JobRepository, repos.PartnershipRepository),
		NetworkService: NewNetworkService(repos.UserRepository, repos.PartnershipRepository),
	}
}
