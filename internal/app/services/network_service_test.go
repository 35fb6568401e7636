package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/burak/campusplace/internal/app/models"
	"github.com/burak/campusplace/internal/pkg/apperrors"
)

func TestConnectAndRespondLifecycle(t *testing.T) {
	users := newFakeUserStore(collegeUser(1, "NIT"), companyUser(2, "Globex"))
	partnerships := &fakePartnershipStore{}
	svc := NewNetworkService(users, partnerships)

	p, err := svc.Connect(context.Background(), 2, 1)
	require.NoError(t, err)
	require.Equal(t, models.PartnershipPending, p.Status)
	require.Equal(t, int64(2), p.RequesterID)
	require.Equal(t, int64(1), p.RecipientID)

	// Only the recipient may respond.
	_, err = svc.Respond(context.Background(), 2, p.ID, models.PartnershipActive)
	require.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	resolved, err := svc.Respond(context.Background(), 1, p.ID, models.PartnershipActive)
	require.NoError(t, err)
	require.Equal(t, models.PartnershipActive, resolved.Status)

	// A resolved partnership cannot be resolved again.
	_, err = svc.Respond(context.Background(), 1, p.ID, models.PartnershipRejected)
	require.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestConnectRejectsDuplicatePair(t *testing.T) {
	users := newFakeUserStore(collegeUser(1, "NIT"), companyUser(2, "Globex"))
	partnerships := &fakePartnershipStore{}
	svc := NewNetworkService(users, partnerships)

	_, err := svc.Connect(context.Background(), 1, 2)
	require.NoError(t, err)

	// Same pair from the other direction is still a duplicate.
	_, err = svc.Connect(context.Background(), 2, 1)
	require.ErrorIs(t, err, apperrors.ErrPartnershipExists)
}

func TestConnectRequiresCollegeCompanyPair(t *testing.T) {
	users := newFakeUserStore(
		collegeUser(1, "NIT"),
		collegeUser(2, "IIT"),
		companyUser(3, "Globex"),
		companyUser(4, "Initech"),
	)
	svc := NewNetworkService(users, &fakePartnershipStore{})

	_, err := svc.Connect(context.Background(), 1, 2)
	require.ErrorIs(t, err, apperrors.ErrBadRequest)

	_, err = svc.Connect(context.Background(), 3, 4)
	require.ErrorIs(t, err, apperrors.ErrBadRequest)

	_, err = svc.Connect(context.Background(), 1, 1)
	require.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestRespondValidatesStatus(t *testing.T) {
	users := newFakeUserStore(collegeUser(1, "NIT"), companyUser(2, "Globex"))
	svc := NewNetworkService(users, &fakePartnershipStore{})

	_, err := svc.Respond(context.Background(), 1, 1, models.PartnershipPending)
	require.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestCollegesListing(t *testing.T) {
	users := newFakeUserStore(
		collegeUser(1, "NIT"),
		collegeUser(2, "IIT"),
		companyUser(3, "Globex"),
	)
	svc := NewNetworkService(users, &fakePartnershipStore{})

	colleges, err := svc.Colleges(context.Background())
	require.NoError(t, err)
	require.Len(t, colleges, 2)
	require.Equal(t, "IIT", colleges[0].Name)
	require.Equal(t, "NIT", colleges[1].Name)
}
