package services

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/burak/campusplace/internal/app/models"
	"github.com/burak/campusplace/internal/app/models/dto"
	"github.com/burak/campusplace/internal/app/repositories"
)

// Participation selects which companies the rollup returns.
type Participation string

const (
	// ParticipationAll keeps every company that appears in records or drives.
	ParticipationAll Participation = "participated"
	// ParticipationActive keeps only active partners.
	ParticipationActive Participation = "active"
	// ParticipationDrives keeps only companies that posted drives.
	ParticipationDrives Participation = "drives"
)

// ParseParticipation maps a raw query value to a participation mode. Only
// an absent value defaults to the full participated set; any other
// unrecognized value selects the drives-only view.
func ParseParticipation(raw string) Participation {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "active":
		return ParticipationActive
	case "", "participated":
		return ParticipationAll
	default:
		return ParticipationDrives
	}
}

// CompaniesRequest scopes the company rollup.
type CompaniesRequest struct {
	UserID        int64
	Year          Filter
	Department    Filter
	Participation Participation
}

type companyAccumulator struct {
	name       string // display casing from first occurrence
	totalCtc   float64
	ctcCount   int
	maxCtc     float64
	offers     int
	placed     map[string]bool
	profiles   map[string]bool
	driveCount int
	hasRecords bool
}

// companyKey folds a company name for merging. Spreadsheet spellings and
// registered account names differ only in case and padding, never content.
func companyKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Companies merges placement records and posted drives into one company
// summary per distinct name. Records are narrowed by the year and department
// filters; drives always count in full so a company's presence on campus is
// visible regardless of the selected cohort.
func (s *PlacementService) Companies(ctx context.Context, req CompaniesRequest) (*dto.CompaniesResponse, error) {
	collegeID, err := resolveCollegeID(ctx, s.userStore, req.UserID)
	if err != nil {
		return nil, err
	}

	records, err := s.placementStore.Find(ctx, repositories.RecordQuery{
		CollegeID:  collegeID,
		ClassYear:  req.Year.Value(),
		Department: req.Department.Value(),
	})
	if err != nil {
		return nil, err
	}

	jobs, err := s.jobStore.ListByCollege(ctx, collegeID)
	if err != nil {
		return nil, err
	}

	accumulators := make(map[string]*companyAccumulator)
	get := func(name string) *companyAccumulator {
		key := companyKey(name)
		acc, ok := accumulators[key]
		if !ok {
			acc = &companyAccumulator{
				name:     strings.TrimSpace(name),
				placed:   make(map[string]bool),
				profiles: make(map[string]bool),
			}
			accumulators[key] = acc
		}
		return acc
	}

	for _, rec := range records {
		if !rec.Placed() || companyKey(rec.CompanyName) == companyKey(models.UnplacedSentinel) {
			continue
		}
		acc := get(rec.CompanyName)
		acc.hasRecords = true
		acc.offers += rec.OffersReceived
		acc.placed[rec.StudentID] = true
		if rec.JobProfile != "" && rec.JobProfile != models.UnplacedSentinel {
			acc.profiles[rec.JobProfile] = true
		}
		if rec.CtcLpa > 0 {
			acc.totalCtc += rec.CtcLpa
			acc.ctcCount++
			if rec.CtcLpa > acc.maxCtc {
				acc.maxCtc = rec.CtcLpa
			}
		}
	}

	for _, job := range jobs {
		acc := get(job.CompanyName)
		acc.driveCount++
		if job.Title != "" {
			acc.profiles[job.Title] = true
		}
	}

	// Resolve registered accounts by folded name so spreadsheet entries
	// link up with platform companies.
	companyAccounts, err := s.userStore.ListCompanies(ctx)
	if err != nil {
		return nil, err
	}
	accountByKey := make(map[string]int64, len(companyAccounts))
	for _, account := range companyAccounts {
		accountByKey[companyKey(account.Name)] = account.ID
	}

	activePartners, err := s.partnershipStore.ActivePartnerIDs(ctx, collegeID)
	if err != nil {
		return nil, err
	}

	companies := make([]dto.CompanySummary, 0, len(accumulators))
	for key, acc := range accumulators {
		summary := dto.CompanySummary{
			Name:           acc.name,
			IsExternal:     true,
			HasRecords:     acc.hasRecords,
			HasDrives:      acc.driveCount > 0,
			TotalOffers:    acc.offers,
			PlacedStudents: len(acc.placed),
			MaxCtc:         acc.maxCtc,
			DriveCount:     acc.driveCount,
			JobProfiles:    len(acc.profiles),
		}
		if acc.ctcCount > 0 {
			summary.AverageCtc = math.Round(acc.totalCtc/float64(acc.ctcCount)*10) / 10
		}
		if accountID, ok := accountByKey[key]; ok {
			id := accountID
			summary.CompanyID = &id
			summary.IsExternal = false
			summary.IsActivePartner = activePartners[accountID]
		}

		switch req.Participation {
		case ParticipationActive:
			if !summary.IsActivePartner {
				continue
			}
		case ParticipationDrives:
			if !summary.HasDrives {
				continue
			}
		}

		companies = append(companies, summary)
	}

	sort.Slice(companies, func(i, j int) bool {
		if companies[i].DriveCount != companies[j].DriveCount {
			return companies[i].DriveCount > companies[j].DriveCount
		}
		return companies[i].Name < companies[j].Name
	})

	return &dto.CompaniesResponse{Companies: companies}, nil
}
