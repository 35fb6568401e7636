package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/burak/campusplace/internal/app/models"
	appRepos "github.com/burak/campusplace/internal/app/repositories"
	"github.com/burak/campusplace/internal/pkg/auth"
)

// defaultAccounts are demo logins created on first startup so a fresh
// install has something to sign in with. The password is only suitable for
// local development.
var defaultAccounts = []struct {
	Name     string
	Email    string
	Role     appModels.RoleType
	Password string
}{
	{"Demo Institute of Technology", "college@campusplace.local", appModels.RoleCollege, "changeme123"},
	{"Acme Software", "company@campusplace.local", appModels.RoleCompany, "changeme123"},
}

// CreateDefaultData creates the demo accounts if they don't exist yet.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default accounts...")
	var finalErr error

	for _, account := range defaultAccounts {
		exists, err := userRepo.EmailExists(ctx, account.Email)
		if err != nil {
			lgr.Error().Err(err).Str("email", account.Email).Msg("Error checking default account")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if exists {
			continue
		}

		hashed, err := auth.HashPassword(account.Password)
		if err != nil {
			finalErr = errors.Join(finalErr, err)
			continue
		}

		user := &appModels.User{
			Name:     account.Name,
			Email:    account.Email,
			Password: hashed,
			RoleType: account.Role,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			lgr.Error().Err(err).Str("email", account.Email).Msg("Error creating default account")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		lgr.Info().Str("email", account.Email).Str("role", string(account.Role)).Msg("Default account created")
	}

	return finalErr
}
