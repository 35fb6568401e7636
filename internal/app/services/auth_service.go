package services

import (
	"context"
	"errors"
	"strings"

	"github.com/burak/campusplace/internal/app/models"
	"github.com/burak/campusplace/internal/app/models/dto"
	"github.com/burak/campusplace/internal/app/repositories"
	"github.com/burak/campusplace/internal/pkg/apperrors"
	"github.com/burak/campusplace/internal/pkg/auth"
	"github.com/burak/campusplace/internal/pkg/logger"
)

// AuthService handles account registration and login.
type AuthService struct {
	userStore  UserStore
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service
func NewAuthService(userStore UserStore, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		userStore:  userStore,
		jwtService: jwtService,
	}
}

func userResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.RoleType),
		CollegeID: user.CollegeID,
		Branch:    user.Branch,
	}
}

// Register creates a new account and signs it in.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.userStore.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	role := models.RoleType(req.Role)
	if (role == models.RoleCollegeMember || role == models.RoleStudent) && req.CollegeID == nil {
		return nil, apperrors.NewBadRequestError("collegeId is required for this role")
	}
	if req.CollegeID != nil {
		college, err := s.userStore.GetByID(ctx, *req.CollegeID)
		if err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				return nil, apperrors.NewBadRequestError("referenced college does not exist")
			}
			return nil, err
		}
		if college.RoleType != models.RoleCollege {
			return nil, apperrors.NewBadRequestError("referenced account is not a college")
		}
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:      strings.TrimSpace(req.Name),
		Email:     email,
		Password:  hashed,
		RoleType:  role,
		CollegeID: req.CollegeID,
		Branch:    req.Branch,
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info().Int64("userId", user.ID).Str("role", req.Role).Msg("User registered")

	return s.issueToken(user)
}

// Login verifies credentials and issues an access token.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userStore.GetByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueToken(user)
}

// GetProfile returns the public view of the authenticated account.
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	resp := userResponse(user)
	return &resp, nil
}

func (s *AuthService) issueToken(user *models.User) (*dto.TokenResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		User:      userResponse(user),
	}, nil
}
