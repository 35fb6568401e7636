package dto

import (
	"github.com/burak/campusplace/internal/app/models"
	"github.com/burak/campusplace/internal/pkg/spreadsheet"
)

// ImportSummary reports the outcome of a placement upload. The counters are
// always populated, including on rejected uploads, so the client can show a
// per-reason breakdown.
type ImportSummary struct {
	Message  string `json:"message"`
	Imported int    `json:"imported"`
	Replaced bool   `json:"replaced"`
	spreadsheet.ImportCounters
}

// ImportConflict is returned with HTTP 409 when a partition already holds
// data and the upload did not set the replace flag.
type ImportConflict struct {
	Message       string `json:"message"`
	ExistingCount int    `json:"existingCount"`
}

// FiltersResponse lists the facet values known for a college, for populating
// UI selectors. Years are sorted descending numerically, departments
// ascending lexicographically.
type FiltersResponse struct {
	Years             []string            `json:"years"`
	Departments       []string            `json:"departments"`
	DepartmentsByYear map[string][]string `json:"departmentsByYear"`
}

// RecordsResponse is a filtered page of placement records.
type RecordsResponse struct {
	Total   int                      `json:"total"`
	Records []models.PlacementRecord `json:"records"`
}

// StatsTotals are the headline dashboard numbers.
type StatsTotals struct {
	TotalStudents  int `json:"totalStudents"`
	JobProfiles    int `json:"jobProfiles"`
	TotalOffers    int `json:"totalOffers"`
	PlacedStudents int `json:"placedStudents"`
}

// DepartmentBar is one eligible-vs-placed bar of the department chart. Bars
// outside an active department filter are zeroed but keep their labels so
// the chart axis stays stable.
type DepartmentBar struct {
	Department string `json:"department"`
	Eligible   int    `json:"eligible"`
	Placed     int    `json:"placed"`
}

// StatsAnalytics is the department breakdown plus the scaling maximum.
type StatsAnalytics struct {
	Departments []DepartmentBar `json:"departments"`
	Max         int             `json:"max"`
}

// SalaryRange is one bucket of the salary histogram.
type SalaryRange struct {
	Label   string `json:"label" example:"10 - 15 LPA"`
	Count   int    `json:"count"`
	Percent int    `json:"percent"`
}

// StatsSalary is the salary distribution over per-student maximum CTC.
type StatsSalary struct {
	Average float64       `json:"average"`
	Ranges  []SalaryRange `json:"ranges"`
}

// TrendMonth is one point of the monthly placement trend. Total stays equal
// to the filtered student count for every month so the UI can draw a flat
// baseline.
type TrendMonth struct {
	Label    string `json:"label" example:"Jan 25"`
	Placed   int    `json:"placed"`
	Unplaced int    `json:"unplaced"`
	Total    int    `json:"total"`
}

// StatsTrends holds the chronological monthly series.
type StatsTrends struct {
	Months []TrendMonth `json:"months"`
}

// DashboardStats is the full analytics payload for the dashboard.
type DashboardStats struct {
	AvailableData bool           `json:"availableData"`
	Totals        StatsTotals    `json:"totals"`
	Analytics     StatsAnalytics `json:"analytics"`
	Salary        StatsSalary    `json:"salary"`
	Trends        StatsTrends    `json:"trends"`
}

// CompanySummary is one row of the merged company rollup.
type CompanySummary struct {
	Name            string  `json:"name"`
	CompanyID       *int64  `json:"companyId,omitempty"`
	IsExternal      bool    `json:"isExternal"`
	HasRecords      bool    `json:"hasRecords"`
	HasDrives       bool    `json:"hasDrives"`
	IsActivePartner bool    `json:"isActivePartner"`
	TotalOffers     int     `json:"totalOffers"`
	PlacedStudents  int     `json:"placedStudents"`
	AverageCtc      float64 `json:"averageCtc"`
	MaxCtc          float64 `json:"maxCtc"`
	DriveCount      int     `json:"driveCount"`
	JobProfiles     int     `json:"jobProfiles"`
}

// CompaniesResponse wraps the rollup list.
type CompaniesResponse struct {
	Companies []CompanySummary `json:"companies"`
}
