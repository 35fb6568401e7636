package models

import (
	"time"
)

// PlacementRecord is one student-company-offer outcome, scoped to a single
// college. Records belong to exactly one (collegeId, classYear, department)
// partition; partitions are the unit of replace-or-append during import.
// Records are created in bulk during upload and deleted in bulk when a
// partition is replaced, never mutated individually.
type PlacementRecord struct {
	ID             int64        `json:"id" db:"id"`
	CollegeID      int64        `json:"collegeId" db:"college_id"`
	StudentID      string       `json:"studentId" db:"student_id"`
	StudentName    string       `json:"studentName" db:"student_name"`
	Department     string       `json:"department" db:"department"` // canonical upper case
	ClassYear      string       `json:"classYear" db:"class_year"`  // "Class of " prefix stripped
	CompanyName    string       `json:"companyName" db:"company_name"`
	JobProfile     string       `json:"jobProfile" db:"job_profile"`
	OffersReceived int          `json:"offersReceived" db:"offers_received"`
	CtcLpa         float64      `json:"ctcLpa" db:"ctc_lpa"` // lakhs per annum
	PlacedStatus   PlacedStatus `json:"placedStatus" db:"placed_status"`
	OfferDate      *time.Time   `json:"offerDate,omitempty" db:"offer_date"` // required when placed
	CreatedAt      time.Time    `json:"createdAt" db:"created_at"`
}

// Placed reports whether this record counts the student as placed.
func (r *PlacementRecord) Placed() bool {
	return r.OffersReceived > 0 || r.PlacedStatus == PlacedYes
}
