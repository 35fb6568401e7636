package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/burak/campusplace/internal/app/models"
	"github.com/burak/campusplace/internal/app/models/dto"
	"github.com/burak/campusplace/internal/pkg/apperrors"
	"github.com/burak/campusplace/internal/pkg/auth"
)

func newAuthService(users *fakeUserStore) *AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})
	return NewAuthService(users, jwtService)
}

func TestRegisterAndLogin(t *testing.T) {
	users := newFakeUserStore()
	svc := newAuthService(users)

	token, err := svc.Register(context.Background(), dto.RegisterRequest{
		Name:     "NIT Surat",
		Email:    "Placements@NITSurat.ac.in",
		Password: "secret123",
		Role:     "college",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token.Token)
	require.Equal(t, "college", token.User.Role)
	// Emails are stored lower-cased.
	require.Equal(t, "placements@nitsurat.ac.in", token.User.Email)

	login, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "placements@nitsurat.ac.in",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.Equal(t, token.User.ID, login.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := newFakeUserStore()
	svc := newAuthService(users)

	req := dto.RegisterRequest{Name: "NIT", Email: "a@b.c", Password: "secret123", Role: "college"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	require.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegisterMemberRequiresCollege(t *testing.T) {
	users := newFakeUserStore(collegeUser(1, "NIT"), companyUser(2, "Globex"))
	svc := newAuthService(users)

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Name: "Staff", Email: "staff@nit.test", Password: "secret123", Role: "college_member",
	})
	require.ErrorIs(t, err, apperrors.ErrBadRequest)

	// Referencing a non-college account is rejected too.
	_, err = svc.Register(context.Background(), dto.RegisterRequest{
		Name: "Staff", Email: "staff@nit.test", Password: "secret123", Role: "college_member",
		CollegeID: int64Ptr(2),
	})
	require.ErrorIs(t, err, apperrors.ErrBadRequest)

	token, err := svc.Register(context.Background(), dto.RegisterRequest{
		Name: "Staff", Email: "staff@nit.test", Password: "secret123", Role: "college_member",
		CollegeID: int64Ptr(1),
	})
	require.NoError(t, err)
	require.NotNil(t, token.User.CollegeID)
	require.Equal(t, int64(1), *token.User.CollegeID)
}

func TestLoginWrongPassword(t *testing.T) {
	users := newFakeUserStore()
	svc := newAuthService(users)

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Name: "NIT", Email: "a@b.c", Password: "secret123", Role: "college",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Email: "a@b.c", Password: "wrong"})
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Email: "missing@b.c", Password: "x"})
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestGetProfile(t *testing.T) {
	users := newFakeUserStore(collegeUser(1, "NIT"))
	svc := newAuthService(users)

	profile, err := svc.GetProfile(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "NIT", profile.Name)
	require.Equal(t, string(models.RoleCollege), profile.Role)

	_, err = svc.GetProfile(context.Background(), 99)
	require.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
