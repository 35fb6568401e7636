package services

import (
	"context"
	"errors"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/burak/campusplace/internal/app/models/dto"
	"github.com/burak/campusplace/internal/app/repositories"
	"github.com/burak/campusplace/internal/pkg/apperrors"
	"github.com/burak/campusplace/internal/pkg/logger"
	"github.com/burak/campusplace/internal/pkg/spreadsheet"
)

// PlacementService implements the spreadsheet import pipeline and the
// filtered record reads over stored partitions.
type PlacementService struct {
	userStore        UserStore
	placementStore   PlacementStore
	jobStore         JobStore
	partnershipStore PartnershipStore
}

// NewPlacementService creates a new placement service
func NewPlacementService(userStore UserStore, placementStore PlacementStore, jobStore JobStore, partnershipStore PartnershipStore) *PlacementService {
	return &PlacementService{
		userStore:        userStore,
		placementStore:   placementStore,
		jobStore:         jobStore,
		partnershipStore: partnershipStore,
	}
}

// UploadRequest is one spreadsheet upload scoped to a single partition.
type UploadRequest struct {
	UserID     int64
	ClassYear  string
	Department string
	Replace    bool
	File       io.Reader
}

// Upload runs the import pipeline: validate the target partition, reject
// uploads into a partition that already holds data unless Replace is set,
// then parse the workbook, normalize rows and store the survivors. The
// conflict check happens before the file is touched, so a bad workbook
// against an occupied partition still reports the conflict.
func (s *PlacementService) Upload(ctx context.Context, req UploadRequest) (*dto.ImportSummary, error) {
	collegeID, err := resolveCollegeID(ctx, s.userStore, req.UserID)
	if err != nil {
		return nil, err
	}

	classYear := spreadsheet.NormalizeYear(req.ClassYear)
	department := spreadsheet.NormalizeDepartment(req.Department)
	if classYear == "" || department == "" {
		return nil, apperrors.ErrPartitionRequired
	}
	// "all" is a read-side wildcard, never a storage partition.
	if strings.EqualFold(classYear, "all") || department == "ALL" {
		return nil, apperrors.NewBadRequestError("class year and department must be concrete values")
	}

	existingCount, err := s.placementStore.CountPartition(ctx, collegeID, classYear, department)
	if err != nil {
		return nil, err
	}
	if existingCount > 0 && !req.Replace {
		return nil, apperrors.NewCustomError(apperrors.ErrConflict, "data already exists for this class year and department").
			WithDetails(map[string]interface{}{"existingCount": existingCount})
	}

	rows, err := spreadsheet.ParseWorkbook(req.File)
	if err != nil {
		if errors.Is(err, spreadsheet.ErrNoWorksheet) {
			return nil, apperrors.ErrNoWorksheet
		}
		return nil, apperrors.NewBadRequestError("could not read spreadsheet file")
	}

	normalizer := spreadsheet.NewNormalizer(collegeID, classYear, department)
	records := normalizer.NormalizeRows(rows)
	counters := normalizer.Counters()

	if len(records) == 0 {
		return nil, apperrors.NewCustomError(apperrors.ErrNoValidRecords, "no valid records found in the upload").
			WithDetails(map[string]interface{}{
				"skipped":              counters.Skipped,
				"mismatchedDepartment": counters.MismatchedDepartment,
				"mismatchedYear":       counters.MismatchedYear,
				"missingFields":        counters.MissingFields,
			})
	}

	if err := s.placementStore.ReplacePartition(ctx, collegeID, classYear, department, records, req.Replace); err != nil {
		return nil, err
	}

	replaced := req.Replace && existingCount > 0

	logger.Info().
		Int64("collegeId", collegeID).
		Str("classYear", classYear).
		Str("department", department).
		Int("imported", len(records)).
		Int("skipped", counters.Skipped).
		Bool("replaced", replaced).
		Msg("Placement data imported")

	return &dto.ImportSummary{
		Message:        "Placement data imported successfully",
		Imported:       len(records),
		Replaced:       replaced,
		ImportCounters: counters,
	}, nil
}

// compareYearsDesc orders class years newest first. Numeric years compare
// numerically; non-numeric values sort after every numeric one.
func compareYearsDesc(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		return na > nb
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a > b
	}
}

// Filters returns the facet values known for the caller's college.
func (s *PlacementService) Filters(ctx context.Context, userID int64) (*dto.FiltersResponse, error) {
	collegeID, err := resolveCollegeID(ctx, s.userStore, userID)
	if err != nil {
		return nil, err
	}

	partitions, err := s.placementStore.ListPartitions(ctx, collegeID)
	if err != nil {
		return nil, err
	}

	yearSet := make(map[string]bool)
	departmentSet := make(map[string]bool)
	byYear := make(map[string][]string)
	for _, p := range partitions {
		year, department := p[0], p[1]
		yearSet[year] = true
		departmentSet[department] = true
		byYear[year] = append(byYear[year], department)
	}

	years := make([]string, 0, len(yearSet))
	for year := range yearSet {
		years = append(years, year)
	}
	sort.Slice(years, func(i, j int) bool { return compareYearsDesc(years[i], years[j]) })

	departments := make([]string, 0, len(departmentSet))
	for department := range departmentSet {
		departments = append(departments, department)
	}
	sort.Strings(departments)

	for year := range byYear {
		sort.Strings(byYear[year])
	}

	return &dto.FiltersResponse{
		Years:             years,
		Departments:       departments,
		DepartmentsByYear: byYear,
	}, nil
}

// RecordsRequest is a filtered, paginated record listing.
type RecordsRequest struct {
	UserID     int64
	Year       Filter
	Department Filter
	Limit      int
	Skip       int
}

// Records returns a page of stored records ordered by student name.
func (s *PlacementService) Records(ctx context.Context, req RecordsRequest) (*dto.RecordsResponse, error) {
	collegeID, err := resolveCollegeID(ctx, s.userStore, req.UserID)
	if err != nil {
		return nil, err
	}

	records, total, err := s.placementStore.FindPage(ctx, repositories.RecordQuery{
		CollegeID:  collegeID,
		ClassYear:  req.Year.Value(),
		Department: req.Department.Value(),
		Limit:      req.Limit,
		Skip:       req.Skip,
	})
	if err != nil {
		return nil, err
	}

	return &dto.RecordsResponse{
		Total:   total,
		Records: records,
	}, nil
}
