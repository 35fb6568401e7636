package services

import (
	"context"
	"errors"

	"github.com/burak/campusplace/internal/app/models"
	"github.com/burak/campusplace/internal/app/repositories"
	"github.com/burak/campusplace/internal/pkg/apperrors"
)

// resolveCollegeID maps a requesting user to the college whose placement
// data they may read. College accounts resolve to themselves, college
// members to their parent college; every other role is rejected.
func resolveCollegeID(ctx context.Context, users UserStore, userID int64) (int64, error) {
	user, err := users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return 0, apperrors.ErrUserNotFound
		}
		return 0, err
	}

	switch user.RoleType {
	case models.RoleCollege:
		return user.ID, nil
	case models.RoleCollegeMember:
		if user.CollegeID == nil {
			return 0, apperrors.ErrCollegeMissing
		}
		return *user.CollegeID, nil
	default:
		return 0, apperrors.ErrPermissionDenied
	}
}
