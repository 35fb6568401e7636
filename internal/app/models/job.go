package models

import (
	"time"
)

// JobCriteria captures the eligibility criteria of a drive.
type JobCriteria struct {
	MinCgpa  float64  `json:"minCgpa" db:"min_cgpa"`
	Branches []string `json:"branches" db:"branches"`
}

// Job is a drive posting created by a company for a specific college.
// Read-only to the statistics and company rollup components.
type Job struct {
	ID          int64       `json:"id" db:"id"`
	CompanyID   int64       `json:"companyId" db:"company_id"`
	CollegeID   int64       `json:"collegeId" db:"college_id"`
	Title       string      `json:"title" db:"title"`
	Description string      `json:"description,omitempty" db:"description"`
	Location    string      `json:"location,omitempty" db:"location"`
	Ctc         string      `json:"ctc" db:"ctc"` // free text, e.g. "12 LPA"
	Deadline    time.Time   `json:"deadline" db:"deadline"`
	Criteria    JobCriteria `json:"criteria"`
	Rounds      []string    `json:"rounds" db:"rounds"`
	Status      JobStatus   `json:"status" db:"status"`
	CreatedAt   time.Time   `json:"createdAt" db:"created_at"`

	CompanyName string `json:"companyName,omitempty"` // joined from users, not stored
}
