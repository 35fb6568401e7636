package services

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/burak/campusplace/internal/app/models"
	"github.com/burak/campusplace/internal/app/models/dto"
	"github.com/burak/campusplace/internal/app/repositories"
)

// StatsRequest scopes the dashboard aggregation.
type StatsRequest struct {
	UserID     int64
	Year       Filter
	Department Filter
}

// salaryBuckets are the histogram ranges over per-student maximum CTC.
// Values below the first lower bound are not bucketed.
var salaryBuckets = []struct {
	Label string
	Min   float64
	Max   float64 // exclusive, 0 means unbounded
}{
	{"5 - 10 LPA", 5, 10},
	{"10 - 15 LPA", 10, 15},
	{"15 - 20 LPA", 15, 20},
	{"> 20 LPA", 20, 0},
}

// Stats builds the full dashboard payload. The year filter narrows the
// record set before anything is computed; the department filter narrows
// totals, salary and trends but only masks the department chart, so the
// chart keeps one bar per known department with zeroed values outside the
// selection.
func (s *PlacementService) Stats(ctx context.Context, req StatsRequest) (*dto.DashboardStats, error) {
	collegeID, err := resolveCollegeID(ctx, s.userStore, req.UserID)
	if err != nil {
		return nil, err
	}

	yearRecords, err := s.placementStore.Find(ctx, repositories.RecordQuery{
		CollegeID: collegeID,
		ClassYear: req.Year.Value(),
	})
	if err != nil {
		return nil, err
	}

	filtered := yearRecords[:0:0]
	for _, rec := range yearRecords {
		if req.Department.Matches(rec.Department) {
			filtered = append(filtered, rec)
		}
	}

	// The full payload shape is computed even for an empty selection, so
	// the dashboard always receives its salary buckets and department bars.
	stats := &dto.DashboardStats{
		AvailableData: len(filtered) > 0,
	}
	stats.Totals = computeTotals(filtered)

	eligible, err := s.userStore.CountStudentsByBranch(ctx, collegeID)
	if err != nil {
		return nil, err
	}
	stats.Analytics = computeAnalytics(yearRecords, eligible, req.Department)
	stats.Salary = computeSalary(filtered)
	stats.Trends = computeTrends(filtered, stats.Totals.TotalStudents, req.Year.IsUnfiltered())

	return stats, nil
}

// computeTotals derives the headline numbers. Students are counted by
// distinct student id, not by row, so multi-offer students count once.
// Job profiles count every distinct non-empty value across the records,
// whether or not the row is placed.
func computeTotals(records []models.PlacementRecord) dto.StatsTotals {
	students := make(map[string]bool)
	placed := make(map[string]bool)
	profiles := make(map[string]bool)
	totalOffers := 0

	for _, rec := range records {
		students[rec.StudentID] = true
		totalOffers += rec.OffersReceived
		if rec.JobProfile != "" {
			profiles[rec.JobProfile] = true
		}
		if rec.Placed() {
			placed[rec.StudentID] = true
		}
	}

	return dto.StatsTotals{
		TotalStudents:  len(students),
		JobProfiles:    len(profiles),
		TotalOffers:    totalOffers,
		PlacedStudents: len(placed),
	}
}

// computeAnalytics builds the eligible-vs-placed department chart. Eligible
// counts come from registered student accounts grouped by branch; placed
// counts come from the records, keyed by each record's own department. The
// label set is the union of both sources so bars never disappear when a
// department filter is applied, they just drop to zero.
func computeAnalytics(records []models.PlacementRecord, eligible map[string]int, department Filter) dto.StatsAnalytics {
	placedByDept := make(map[string]map[string]bool)
	for _, rec := range records {
		if !rec.Placed() {
			continue
		}
		if placedByDept[rec.Department] == nil {
			placedByDept[rec.Department] = make(map[string]bool)
		}
		placedByDept[rec.Department][rec.StudentID] = true
	}

	labelSet := make(map[string]bool)
	for dept := range eligible {
		labelSet[dept] = true
	}
	for dept := range placedByDept {
		labelSet[dept] = true
	}

	labels := make([]string, 0, len(labelSet))
	for dept := range labelSet {
		labels = append(labels, dept)
	}
	sort.Strings(labels)

	analytics := dto.StatsAnalytics{Departments: make([]dto.DepartmentBar, 0, len(labels))}
	for _, dept := range labels {
		bar := dto.DepartmentBar{Department: dept}
		if department.Matches(dept) {
			bar.Eligible = eligible[dept]
			bar.Placed = len(placedByDept[dept])
		}
		if bar.Eligible > analytics.Max {
			analytics.Max = bar.Eligible
		}
		if bar.Placed > analytics.Max {
			analytics.Max = bar.Placed
		}
		analytics.Departments = append(analytics.Departments, bar)
	}

	return analytics
}

// computeSalary builds the CTC histogram over each placed student's best
// offer. Percentages are of students with a positive CTC and are rounded to
// whole numbers; the average keeps one decimal.
func computeSalary(records []models.PlacementRecord) dto.StatsSalary {
	maxCtc := make(map[string]float64)
	for _, rec := range records {
		if !rec.Placed() || rec.CtcLpa <= 0 {
			continue
		}
		if rec.CtcLpa > maxCtc[rec.StudentID] {
			maxCtc[rec.StudentID] = rec.CtcLpa
		}
	}

	salary := dto.StatsSalary{Ranges: make([]dto.SalaryRange, 0, len(salaryBuckets))}
	if len(maxCtc) == 0 {
		for _, bucket := range salaryBuckets {
			salary.Ranges = append(salary.Ranges, dto.SalaryRange{Label: bucket.Label})
		}
		return salary
	}

	counts := make([]int, len(salaryBuckets))
	sum := 0.0
	for _, ctc := range maxCtc {
		sum += ctc
		for i, bucket := range salaryBuckets {
			if ctc >= bucket.Min && (bucket.Max == 0 || ctc < bucket.Max) {
				counts[i]++
				break
			}
		}
	}

	salary.Average = math.Round(sum/float64(len(maxCtc))*10) / 10
	for i, bucket := range salaryBuckets {
		salary.Ranges = append(salary.Ranges, dto.SalaryRange{
			Label:   bucket.Label,
			Count:   counts[i],
			Percent: int(math.Round(float64(counts[i]) * 100 / float64(len(maxCtc)))),
		})
	}

	return salary
}

// computeTrends buckets placements by offer month. Total stays flat at the
// filtered student count so every point shares a baseline. Month labels
// carry the two-digit year only when no year filter is active, since a
// single-year view would repeat it on every label.
func computeTrends(records []models.PlacementRecord, totalStudents int, withYearLabel bool) dto.StatsTrends {
	placedByMonth := make(map[time.Time]map[string]bool)
	for _, rec := range records {
		if !rec.Placed() || rec.OfferDate == nil {
			continue
		}
		month := time.Date(rec.OfferDate.Year(), rec.OfferDate.Month(), 1, 0, 0, 0, 0, time.UTC)
		if placedByMonth[month] == nil {
			placedByMonth[month] = make(map[string]bool)
		}
		placedByMonth[month][rec.StudentID] = true
	}

	months := make([]time.Time, 0, len(placedByMonth))
	for month := range placedByMonth {
		months = append(months, month)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	layout := "Jan"
	if withYearLabel {
		layout = "Jan 06"
	}

	trends := dto.StatsTrends{Months: make([]dto.TrendMonth, 0, len(months))}
	for _, month := range months {
		placed := len(placedByMonth[month])
		trends.Months = append(trends.Months, dto.TrendMonth{
			Label:    month.Format(layout),
			Placed:   placed,
			Unplaced: totalStudents - placed,
			Total:    totalStudents,
		})
	}

	return trends
}
