package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/burak/campusplace/internal/app/models"
	"github.com/burak/campusplace/internal/app/models/dto"
)

func companiesFixture() (*fakeUserStore, *fakePlacementStore, *fakeJobStore, *fakePartnershipStore) {
	users := newFakeUserStore(
		collegeUser(1, "NIT"),
		companyUser(2, "Globex"),
		companyUser(3, "Initech"),
	)
	jan := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	records := &fakePlacementStore{records: []models.PlacementRecord{
		// Spreadsheet spelling differs in case from the registered account.
		placedRecord(1, "S001", "CSE", "2025", "GLOBEX ", 12, jan),
		placedRecord(1, "S002", "CSE", "2025", "globex", 18, jan),
		placedRecord(1, "S003", "CSE", "2025", "Hooli", 8, jan),
		unplacedRecord(1, "S004", "CSE", "2025"),
	}}
	jobs := &fakeJobStore{jobs: []models.Job{
		{ID: 1, CompanyID: 2, CollegeID: 1, CompanyName: "Globex", Title: "SDE", Status: models.JobStatusOpen},
		{ID: 2, CompanyID: 3, CollegeID: 1, CompanyName: "Initech", Title: "Analyst", Status: models.JobStatusOpen},
		{ID: 3, CompanyID: 3, CollegeID: 1, CompanyName: "Initech", Title: "Consultant", Status: models.JobStatusClosed},
	}}
	partnerships := &fakePartnershipStore{partnerships: []models.Partnership{
		{ID: 1, RequesterID: 2, RecipientID: 1, Status: models.PartnershipActive},
	}}
	return users, records, jobs, partnerships
}

func rollup(t *testing.T, participation Participation) map[string]dto.CompanySummary {
	t.Helper()

	users, records, jobs, partnerships := companiesFixture()
	svc := newPlacementService(users, records, jobs, partnerships)

	resp, err := svc.Companies(context.Background(), CompaniesRequest{
		UserID:        1,
		Participation: participation,
	})
	require.NoError(t, err)

	byName := make(map[string]dto.CompanySummary)
	for _, c := range resp.Companies {
		byName[c.Name] = c
	}
	return byName
}

func TestCompaniesMergeRecordsAndDrives(t *testing.T) {
	byName := rollup(t, ParticipationAll)

	require.Len(t, byName, 3)
	require.NotContains(t, byName, models.UnplacedSentinel)

	globex := byName["GLOBEX"]
	require.True(t, globex.HasRecords)
	require.True(t, globex.HasDrives)
	require.False(t, globex.IsExternal)
	require.NotNil(t, globex.CompanyID)
	require.Equal(t, int64(2), *globex.CompanyID)
	require.True(t, globex.IsActivePartner)
	require.Equal(t, 2, globex.PlacedStudents)
	require.Equal(t, 2, globex.TotalOffers)
	require.Equal(t, 18.0, globex.MaxCtc)
	require.Equal(t, 15.0, globex.AverageCtc)
	require.Equal(t, 1, globex.DriveCount)
	// The "SDE" drive title merges with the "SDE" record profile.
	require.Equal(t, 1, globex.JobProfiles)

	hooli := byName["Hooli"]
	require.True(t, hooli.IsExternal)
	require.Nil(t, hooli.CompanyID)
	require.True(t, hooli.HasRecords)
	require.False(t, hooli.HasDrives)

	initech := byName["Initech"]
	require.False(t, initech.HasRecords)
	require.True(t, initech.HasDrives)
	require.Equal(t, 2, initech.DriveCount)
	// Drive titles count as job profiles even without placement records.
	require.Equal(t, 2, initech.JobProfiles)
	require.False(t, initech.IsActivePartner)
}

func TestCompaniesSortByDrivesThenName(t *testing.T) {
	users, records, jobs, partnerships := companiesFixture()
	svc := newPlacementService(users, records, jobs, partnerships)

	resp, err := svc.Companies(context.Background(), CompaniesRequest{
		UserID:        1,
		Participation: ParticipationAll,
	})
	require.NoError(t, err)

	var names []string
	for _, c := range resp.Companies {
		names = append(names, c.Name)
	}
	// Initech has two drives, Globex one, Hooli none.
	require.Equal(t, []string{"Initech", "GLOBEX", "Hooli"}, names)
}

func TestCompaniesNameTieBreakIsCaseSensitive(t *testing.T) {
	users := newFakeUserStore(collegeUser(1, "NIT"))
	jan := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	records := &fakePlacementStore{records: []models.PlacementRecord{
		placedRecord(1, "S001", "CSE", "2025", "alpha", 10, jan),
		placedRecord(1, "S002", "CSE", "2025", "Beta", 10, jan),
	}}
	svc := newPlacementService(users, records, &fakeJobStore{}, &fakePartnershipStore{})

	resp, err := svc.Companies(context.Background(), CompaniesRequest{
		UserID:        1,
		Participation: ParticipationAll,
	})
	require.NoError(t, err)

	var names []string
	for _, c := range resp.Companies {
		names = append(names, c.Name)
	}
	// Equal drive counts sort by name as stored, so uppercase leads.
	require.Equal(t, []string{"Beta", "alpha"}, names)
}

func TestCompaniesParticipationFilters(t *testing.T) {
	active := rollup(t, ParticipationActive)
	require.Len(t, active, 1)
	require.Contains(t, active, "GLOBEX")

	drives := rollup(t, ParticipationDrives)
	require.Len(t, drives, 2)
	require.Contains(t, drives, "GLOBEX")
	require.Contains(t, drives, "Initech")
}

func TestParseParticipation(t *testing.T) {
	require.Equal(t, ParticipationActive, ParseParticipation("active"))
	require.Equal(t, ParticipationActive, ParseParticipation(" Active "))
	require.Equal(t, ParticipationDrives, ParseParticipation("drives"))
	require.Equal(t, ParticipationAll, ParseParticipation(""))
	require.Equal(t, ParticipationAll, ParseParticipation("participated"))
	// Only an absent value defaults to participated; anything else falls
	// through to the drives-only view.
	require.Equal(t, ParticipationDrives, ParseParticipation("bogus"))
}
