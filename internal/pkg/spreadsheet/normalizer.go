package spreadsheet

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/burak/campusplace/internal/app/models"
)

// headerFields maps normalized header text to canonical record fields.
// Headers are matched after lower-casing and stripping every non-alphanumeric
// character, so "Student_ID", "student id" and "STUDENTID" all resolve to the
// same column.
var headerFields = map[string]string{
	"studentid":      "studentId",
	"studentname":    "studentName",
	"department":     "department",
	"classyear":      "classYear",
	"companyname":    "companyName",
	"jobprofile":     "jobProfile",
	"offersreceived": "offersReceived",
	"ctclpa":         "ctcLpa",
	"placedstatus":   "placedStatus",
	"offerdate":      "offerDate",
}

var (
	nonAlnumRe   = regexp.MustCompile(`[^a-z0-9]`)
	nonNumericRe = regexp.MustCompile(`[^0-9.]`)
	classOfRe    = regexp.MustCompile(`(?i)^class\s+of\s+`)
)

// NormalizeHeader lower-cases header text and strips all non-alphanumeric
// characters, making header matching case and punctuation insensitive.
func NormalizeHeader(value string) string {
	return nonAlnumRe.ReplaceAllString(strings.ToLower(value), "")
}

// NormalizeText trims surrounding whitespace.
func NormalizeText(value string) string {
	return strings.TrimSpace(value)
}

// NormalizeDepartment trims and upper-cases a department name.
func NormalizeDepartment(value string) string {
	return strings.ToUpper(NormalizeText(value))
}

// NormalizeYear trims a class year and strips a leading "Class of " prefix.
func NormalizeYear(value string) string {
	return classOfRe.ReplaceAllString(NormalizeText(value), "")
}

// ParseNumber coerces arbitrary cell text to a number by stripping everything
// except digits and the decimal point. Non-numeric or empty input yields 0,
// so "12 LPA" parses as 12 and "N/A" as 0.
func ParseNumber(value string) float64 {
	cleaned := nonNumericRe.ReplaceAllString(value, "")
	parsed, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return parsed
}

// dateLayouts are tried in order for textual offer dates.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"01-02-06",
	"1/2/06",
	"01/02/2006",
	"2006/01/02",
	"2-Jan-06",
	"Jan 2, 2006",
	"January 2, 2006",
}

// ParseOfferDate accepts a spreadsheet numeric date serial or a parseable
// date string; unparseable input yields nil.
func ParseOfferDate(value string) *time.Time {
	trimmed := NormalizeText(value)
	if trimmed == "" {
		return nil
	}

	if serial, err := strconv.ParseFloat(trimmed, 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return nil
		}
		return &t
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return &t
		}
	}

	return nil
}

// ImportCounters report row-level rejections of one upload. Skipped is the
// sum of the three rejection reasons and is surfaced to the caller even on
// otherwise successful imports.
type ImportCounters struct {
	Skipped              int `json:"skipped"`
	MismatchedDepartment int `json:"mismatchedDepartment"`
	MismatchedYear       int `json:"mismatchedYear"`
	MissingFields        int `json:"missingFields"`
}

// Normalizer converts raw sheet rows into canonical placement records for a
// single target partition, counting rejected rows along the way.
type Normalizer struct {
	collegeID  int64
	classYear  string
	department string
	counters   ImportCounters
}

// NewNormalizer creates a normalizer for the given upload partition. The
// class year and department must already be in canonical form.
func NewNormalizer(collegeID int64, classYear, department string) *Normalizer {
	return &Normalizer{
		collegeID:  collegeID,
		classYear:  classYear,
		department: department,
	}
}

// Counters returns the rejection counters accumulated so far.
func (n *Normalizer) Counters() ImportCounters {
	c := n.counters
	c.Skipped = c.MismatchedDepartment + c.MismatchedYear + c.MissingFields
	return c
}

// NormalizeRow maps one raw row through the canonical header set, applies
// field coercion and the acceptance rules, and returns the resulting record.
// Rejected rows return nil and bump the matching counter.
func (n *Normalizer) NormalizeRow(row RawRow) *models.PlacementRecord {
	mapped := make(map[string]string, len(headerFields))
	for key, value := range row {
		if field, ok := headerFields[NormalizeHeader(key)]; ok {
			mapped[field] = value
		}
	}

	studentID := NormalizeText(mapped["studentId"])
	studentName := NormalizeText(mapped["studentName"])
	rowDepartment := NormalizeDepartment(mapped["department"])
	rowYear := NormalizeYear(mapped["classYear"])
	companyName := NormalizeText(mapped["companyName"])
	jobProfile := NormalizeText(mapped["jobProfile"])
	offersReceived := ParseNumber(mapped["offersReceived"])
	ctcLpa := ParseNumber(mapped["ctcLpa"])
	offerDate := ParseOfferDate(mapped["offerDate"])

	placedStatus := models.PlacedNo
	if strings.ToLower(NormalizeText(mapped["placedStatus"])) == "yes" {
		placedStatus = models.PlacedYes
	}

	if studentID == "" || studentName == "" || rowDepartment == "" || rowYear == "" {
		n.counters.MissingFields++
		return nil
	}

	// Placed rows must name the company and profile and carry an offer date.
	if placedStatus == models.PlacedYes {
		if companyName == "" || jobProfile == "" || offerDate == nil {
			n.counters.MissingFields++
			return nil
		}
	}

	if rowDepartment != n.department {
		n.counters.MismatchedDepartment++
		return nil
	}
	if rowYear != n.classYear {
		n.counters.MismatchedYear++
		return nil
	}

	record := &models.PlacementRecord{
		CollegeID:    n.collegeID,
		StudentID:    studentID,
		StudentName:  studentName,
		Department:   rowDepartment,
		ClassYear:    rowYear,
		CompanyName:  companyName,
		JobProfile:   jobProfile,
		PlacedStatus: placedStatus,
	}

	if placedStatus == models.PlacedYes {
		record.OffersReceived = int(offersReceived)
		record.CtcLpa = ctcLpa
		record.OfferDate = offerDate
	} else {
		// Unplaced rows never carry offers, compensation or a date,
		// regardless of what the sheet says.
		if record.CompanyName == "" {
			record.CompanyName = models.UnplacedSentinel
		}
		if record.JobProfile == "" {
			record.JobProfile = models.UnplacedSentinel
		}
	}

	return record
}

// NormalizeRows runs NormalizeRow over all rows and returns the survivors.
func (n *Normalizer) NormalizeRows(rows []RawRow) []models.PlacementRecord {
	records := make([]models.PlacementRecord, 0, len(rows))
	for _, row := range rows {
		if record := n.NormalizeRow(row); record != nil {
			records = append(records, *record)
		}
	}
	return records
}
