package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/burak/campusplace/internal/app/models"
	"github.com/burak/campusplace/internal/app/models/dto"
	"github.com/burak/campusplace/internal/app/repositories"
	"github.com/burak/campusplace/internal/pkg/apperrors"
	"github.com/burak/campusplace/internal/pkg/logger"
)

// JobService handles drive postings. Companies may only post at colleges
// they hold an active partnership with.
type JobService struct {
	userStore        UserStore
	jobStore         JobStore
	partnershipStore PartnershipStore
}

// NewJobService creates a new job service
func NewJobService(userStore UserStore, jobStore JobStore, partnershipStore PartnershipStore) *JobService {
	return &JobService{
		userStore:        userStore,
		jobStore:         jobStore,
		partnershipStore: partnershipStore,
	}
}

// Create posts a new drive on behalf of a company account.
func (s *JobService) Create(ctx context.Context, companyUserID int64, req dto.CreateJobRequest) (*models.Job, error) {
	company, err := s.userStore.GetByID(ctx, companyUserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	if company.RoleType != models.RoleCompany {
		return nil, apperrors.ErrPermissionDenied
	}

	college, err := s.userStore.GetByID(ctx, req.CollegeID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewBadRequestError("referenced college does not exist")
		}
		return nil, err
	}
	if college.RoleType != models.RoleCollege {
		return nil, apperrors.NewBadRequestError("referenced account is not a college")
	}

	partnered, err := s.partnershipStore.HasActiveBetween(ctx, companyUserID, req.CollegeID)
	if err != nil {
		return nil, err
	}
	if !partnered {
		return nil, apperrors.ErrNotPartnered
	}

	if req.Deadline.Before(time.Now()) {
		return nil, apperrors.NewBadRequestError("deadline must be in the future")
	}

	job := &models.Job{
		CompanyID:   companyUserID,
		CollegeID:   req.CollegeID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Location:    req.Location,
		Ctc:         strings.TrimSpace(req.Ctc),
		Deadline:    req.Deadline,
		Criteria: models.JobCriteria{
			MinCgpa:  req.MinCgpa,
			Branches: req.Branches,
		},
		Rounds: req.Rounds,
		Status: models.JobStatusOpen,
	}
	job.CompanyName = company.Name

	if err := s.jobStore.Create(ctx, job); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("jobId", job.ID).
		Int64("companyId", companyUserID).
		Int64("collegeId", req.CollegeID).
		Msg("Drive posted")

	return job, nil
}

// GetByID retrieves a single drive posting.
func (s *JobService) GetByID(ctx context.Context, id int64) (*models.Job, error) {
	job, err := s.jobStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, err
	}
	return job, nil
}

// ListForUser returns the drives visible to the caller: companies see their
// own postings, students see the open drives at their college, and college
// accounts see everything posted at the college.
func (s *JobService) ListForUser(ctx context.Context, userID int64) ([]models.Job, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	switch user.RoleType {
	case models.RoleCompany:
		return s.jobStore.ListByCompany(ctx, user.ID)
	case models.RoleStudent:
		if user.CollegeID == nil {
			return nil, apperrors.ErrCollegeMissing
		}
		return s.jobStore.ListOpenByCollege(ctx, *user.CollegeID)
	case models.RoleCollege:
		return s.jobStore.ListByCollege(ctx, user.ID)
	case models.RoleCollegeMember:
		if user.CollegeID == nil {
			return nil, apperrors.ErrCollegeMissing
		}
		return s.jobStore.ListByCollege(ctx, *user.CollegeID)
	default:
		return nil, apperrors.ErrPermissionDenied
	}
}
