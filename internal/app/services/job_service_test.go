package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/burak/campusplace/internal/app/models"
	"github.com/burak/campusplace/internal/app/models/dto"
	"github.com/burak/campusplace/internal/pkg/apperrors"
)

func jobRequest() dto.CreateJobRequest {
	return dto.CreateJobRequest{
		CollegeID: 1,
		Title:     "Graduate SDE",
		Ctc:       "12 LPA",
		Deadline:  time.Now().Add(30 * 24 * time.Hour),
		MinCgpa:   7.0,
		Branches:  []string{"CSE", "ECE"},
		Rounds:    []string{"Online Test", "Interview"},
	}
}

func TestCreateJobRequiresActivePartnership(t *testing.T) {
	users := newFakeUserStore(collegeUser(1, "NIT"), companyUser(2, "Globex"))
	svc := NewJobService(users, &fakeJobStore{}, &fakePartnershipStore{})

	_, err := svc.Create(context.Background(), 2, jobRequest())
	require.ErrorIs(t, err, apperrors.ErrNotPartnered)
}

func TestCreateJobWithPartnership(t *testing.T) {
	users := newFakeUserStore(collegeUser(1, "NIT"), companyUser(2, "Globex"))
	partnerships := &fakePartnershipStore{partnerships: []models.Partnership{
		// The college requested the partnership; the direction must not matter.
		{ID: 1, RequesterID: 1, RecipientID: 2, Status: models.PartnershipActive},
	}}
	jobs := &fakeJobStore{}
	svc := NewJobService(users, jobs, partnerships)

	job, err := svc.Create(context.Background(), 2, jobRequest())
	require.NoError(t, err)
	require.Equal(t, models.JobStatusOpen, job.Status)
	require.Equal(t, int64(2), job.CompanyID)
	require.Equal(t, "Globex", job.CompanyName)
	require.Len(t, jobs.jobs, 1)
}

func TestCreateJobRejectsNonCompany(t *testing.T) {
	users := newFakeUserStore(collegeUser(1, "NIT"))
	svc := NewJobService(users, &fakeJobStore{}, &fakePartnershipStore{})

	_, err := svc.Create(context.Background(), 1, jobRequest())
	require.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestCreateJobRejectsPastDeadline(t *testing.T) {
	users := newFakeUserStore(collegeUser(1, "NIT"), companyUser(2, "Globex"))
	partnerships := &fakePartnershipStore{partnerships: []models.Partnership{
		{ID: 1, RequesterID: 2, RecipientID: 1, Status: models.PartnershipActive},
	}}
	svc := NewJobService(users, &fakeJobStore{}, partnerships)

	req := jobRequest()
	req.Deadline = time.Now().Add(-time.Hour)
	_, err := svc.Create(context.Background(), 2, req)
	require.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestListForUserByRole(t *testing.T) {
	student := studentUser(10, 1, "CSE")
	users := newFakeUserStore(collegeUser(1, "NIT"), companyUser(2, "Globex"), student)
	jobs := &fakeJobStore{jobs: []models.Job{
		{ID: 1, CompanyID: 2, CollegeID: 1, Status: models.JobStatusOpen},
		{ID: 2, CompanyID: 2, CollegeID: 1, Status: models.JobStatusClosed},
		{ID: 3, CompanyID: 9, CollegeID: 5, Status: models.JobStatusOpen},
	}}
	svc := NewJobService(users, jobs, &fakePartnershipStore{})

	// Students only see open drives at their own college.
	visible, err := svc.ListForUser(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	require.Equal(t, int64(1), visible[0].ID)

	// The college sees every drive on campus regardless of status.
	visible, err = svc.ListForUser(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, visible, 2)

	// Companies see their own postings across colleges.
	visible, err = svc.ListForUser(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, visible, 2)
}
