package services

import (
	"context"
	"errors"

	"github.com/burak/campusplace/internal/app/models"
	"github.com/burak/campusplace/internal/app/models/dto"
	"github.com/burak/campusplace/internal/app/repositories"
	"github.com/burak/campusplace/internal/pkg/apperrors"
	"github.com/burak/campusplace/internal/pkg/dberrors"
	"github.com/burak/campusplace/internal/pkg/logger"
)

// NetworkService manages college-company partnerships.
type NetworkService struct {
	userStore        UserStore
	partnershipStore PartnershipStore
}

// NewNetworkService creates a new network service
func NewNetworkService(userStore UserStore, partnershipStore PartnershipStore) *NetworkService {
	return &NetworkService{
		userStore:        userStore,
		partnershipStore: partnershipStore,
	}
}

// Connect opens a pending partnership from the caller to the recipient.
// One side must be a college and the other a company; a pair that already
// holds any partnership record cannot open another.
func (s *NetworkService) Connect(ctx context.Context, requesterID, recipientID int64) (*models.Partnership, error) {
	if requesterID == recipientID {
		return nil, apperrors.NewBadRequestError("cannot partner with yourself")
	}

	requester, err := s.userStore.GetByID(ctx, requesterID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	recipient, err := s.userStore.GetByID(ctx, recipientID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewBadRequestError("recipient does not exist")
		}
		return nil, err
	}

	valid := (requester.RoleType == models.RoleCollege && recipient.RoleType == models.RoleCompany) ||
		(requester.RoleType == models.RoleCompany && recipient.RoleType == models.RoleCollege)
	if !valid {
		return nil, apperrors.NewBadRequestError("partnerships link a college and a company")
	}

	exists, err := s.partnershipStore.PairExists(ctx, requesterID, recipientID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrPartnershipExists
	}

	partnership := &models.Partnership{
		RequesterID: requesterID,
		RecipientID: recipientID,
		Status:      models.PartnershipPending,
	}
	if err := s.partnershipStore.Create(ctx, partnership); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrPartnershipExists
		}
		return nil, err
	}

	logger.Info().
		Int64("requesterId", requesterID).
		Int64("recipientId", recipientID).
		Msg("Partnership requested")

	return partnership, nil
}

// Respond accepts or rejects a pending partnership. Only the recipient of
// the request may respond, and only while it is pending.
func (s *NetworkService) Respond(ctx context.Context, userID, partnershipID int64, status models.PartnershipStatus) (*models.Partnership, error) {
	if status != models.PartnershipActive && status != models.PartnershipRejected {
		return nil, apperrors.NewBadRequestError("status must be Active or Rejected")
	}

	partnership, err := s.partnershipStore.GetByID(ctx, partnershipID)
	if err != nil {
		if errors.Is(err, repositories.ErrPartnershipNotFound) {
			return nil, apperrors.ErrPartnershipNotFound
		}
		return nil, err
	}

	if partnership.RecipientID != userID {
		return nil, apperrors.ErrPermissionDenied
	}
	if partnership.Status != models.PartnershipPending {
		return nil, apperrors.NewConflictError("partnership has already been resolved")
	}

	if err := s.partnershipStore.UpdateStatus(ctx, partnershipID, status); err != nil {
		return nil, err
	}
	partnership.Status = status

	logger.Info().
		Int64("partnershipId", partnershipID).
		Str("status", string(status)).
		Msg("Partnership resolved")

	return partnership, nil
}

// List returns every partnership the caller appears in, either side.
func (s *NetworkService) List(ctx context.Context, userID int64) ([]models.Partnership, error) {
	return s.partnershipStore.ListByUser(ctx, userID)
}

// Colleges returns all registered colleges for the partner search.
func (s *NetworkService) Colleges(ctx context.Context) ([]dto.CollegeSummary, error) {
	colleges, err := s.userStore.ListColleges(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.CollegeSummary, 0, len(colleges))
	for _, college := range colleges {
		summaries = append(summaries, dto.CollegeSummary{
			ID:    college.ID,
			Name:  college.Name,
			Email: college.Email,
		})
	}

	return summaries, nil
}
