package spreadsheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/burak/campusplace/internal/app/models"
)

func TestNormalizeHeader(t *testing.T) {
	require.Equal(t, "studentid", NormalizeHeader("Student_ID"))
	require.Equal(t, "studentid", NormalizeHeader("student id"))
	require.Equal(t, "studentid", NormalizeHeader("STUDENTID"))
	require.Equal(t, "ctclpa", NormalizeHeader("CTC (LPA)"))
	require.Equal(t, "placedstatus", NormalizeHeader("Placed Status"))
}

func TestNormalizeYear(t *testing.T) {
	require.Equal(t, "2025", NormalizeYear("2025"))
	require.Equal(t, "2025", NormalizeYear("  2025  "))
	require.Equal(t, "2025", NormalizeYear("Class of 2025"))
	require.Equal(t, "2025", NormalizeYear("CLASS OF 2025"))
	require.Equal(t, "2025", NormalizeYear("class  of  2025"))
}

func TestParseNumber(t *testing.T) {
	require.Equal(t, 12.0, ParseNumber("12 LPA"))
	require.Equal(t, 12.5, ParseNumber("12.5"))
	require.Equal(t, 0.0, ParseNumber("N/A"))
	require.Equal(t, 0.0, ParseNumber(""))
	require.Equal(t, 3.0, ParseNumber("3 offers"))
}

func TestParseOfferDate(t *testing.T) {
	require.Nil(t, ParseOfferDate(""))
	require.Nil(t, ParseOfferDate("not a date"))

	textual := ParseOfferDate("2025-01-15")
	require.NotNil(t, textual)
	require.Equal(t, 2025, textual.Year())
	require.Equal(t, time.January, textual.Month())

	// 45658 is the spreadsheet serial for 2025-01-01.
	serial := ParseOfferDate("45658")
	require.NotNil(t, serial)
	require.Equal(t, 2025, serial.Year())
	require.Equal(t, time.January, serial.Month())
}

func placedRow(overrides map[string]string) RawRow {
	row := RawRow{
		"Student ID":      "S001",
		"Student Name":    "Asha Rao",
		"Department":      "CSE",
		"Class Year":      "2025",
		"Company Name":    "Globex",
		"Job Profile":     "SDE",
		"Offers Received": "1",
		"CTC (LPA)":       "12 LPA",
		"Placed Status":   "Yes",
		"Offer Date":      "2025-01-15",
	}
	for key, value := range overrides {
		row[key] = value
	}
	return row
}

func TestNormalizeRowAcceptsPlacedRow(t *testing.T) {
	n := NewNormalizer(1, "2025", "CSE")

	rec := n.NormalizeRow(placedRow(nil))
	require.NotNil(t, rec)
	require.Equal(t, int64(1), rec.CollegeID)
	require.Equal(t, "S001", rec.StudentID)
	require.Equal(t, "CSE", rec.Department)
	require.Equal(t, "2025", rec.ClassYear)
	require.Equal(t, models.PlacedYes, rec.PlacedStatus)
	require.Equal(t, 1, rec.OffersReceived)
	require.Equal(t, 12.0, rec.CtcLpa)
	require.NotNil(t, rec.OfferDate)
	require.Zero(t, n.Counters().Skipped)
}

func TestNormalizeRowHeaderVariantsResolve(t *testing.T) {
	n := NewNormalizer(1, "2025", "CSE")

	rec := n.NormalizeRow(RawRow{
		"STUDENT_ID":      "S002",
		"studentName":     "Vikram Shah",
		"DEPARTMENT":      "cse",
		"class-year":      "Class of 2025",
		"companyName":     "Initech",
		"job profile":     "Analyst",
		"offersReceived":  "1",
		"ctc lpa":         "8",
		"placed__status":  "YES",
		"OFFER DATE":      "2025-02-01",
	})
	require.NotNil(t, rec)
	require.Equal(t, "S002", rec.StudentID)
	require.Equal(t, "CSE", rec.Department)
	require.Equal(t, "2025", rec.ClassYear)
}

func TestNormalizeRowUnplacedDefaults(t *testing.T) {
	n := NewNormalizer(1, "2025", "CSE")

	rec := n.NormalizeRow(placedRow(map[string]string{
		"Placed Status":   "No",
		"Company Name":    "",
		"Job Profile":     "",
		"Offers Received": "2",
		"CTC (LPA)":       "15",
		"Offer Date":      "2025-01-15",
	}))
	require.NotNil(t, rec)
	require.Equal(t, models.PlacedNo, rec.PlacedStatus)
	require.Equal(t, models.UnplacedSentinel, rec.CompanyName)
	require.Equal(t, models.UnplacedSentinel, rec.JobProfile)
	require.Zero(t, rec.OffersReceived)
	require.Zero(t, rec.CtcLpa)
	require.Nil(t, rec.OfferDate)
}

func TestNormalizeRowStrictYesCheck(t *testing.T) {
	n := NewNormalizer(1, "2025", "CSE")

	for _, status := range []string{"yes", "YES", " Yes "} {
		rec := n.NormalizeRow(placedRow(map[string]string{"Placed Status": status}))
		require.NotNil(t, rec)
		require.Equal(t, models.PlacedYes, rec.PlacedStatus, "status %q", status)
	}

	for _, status := range []string{"Y", "true", "placed", ""} {
		rec := n.NormalizeRow(placedRow(map[string]string{"Placed Status": status}))
		require.NotNil(t, rec)
		require.Equal(t, models.PlacedNo, rec.PlacedStatus, "status %q", status)
	}
}

func TestNormalizeRowRejectsMissingFields(t *testing.T) {
	n := NewNormalizer(1, "2025", "CSE")

	require.Nil(t, n.NormalizeRow(placedRow(map[string]string{"Student ID": ""})))
	require.Nil(t, n.NormalizeRow(placedRow(map[string]string{"Student Name": "   "})))
	// Placed rows also need company, profile and offer date.
	require.Nil(t, n.NormalizeRow(placedRow(map[string]string{"Company Name": ""})))
	require.Nil(t, n.NormalizeRow(placedRow(map[string]string{"Offer Date": "garbage"})))

	require.Equal(t, 4, n.Counters().MissingFields)
	require.Equal(t, 4, n.Counters().Skipped)
}

func TestNormalizeRowPartitionMismatch(t *testing.T) {
	n := NewNormalizer(1, "2025", "CSE")

	require.Nil(t, n.NormalizeRow(placedRow(map[string]string{"Department": "ECE"})))
	require.Nil(t, n.NormalizeRow(placedRow(map[string]string{"Class Year": "2024"})))

	c := n.Counters()
	require.Equal(t, 1, c.MismatchedDepartment)
	require.Equal(t, 1, c.MismatchedYear)
	require.Equal(t, 2, c.Skipped)
}

func TestNormalizeRowsCountersBreakdown(t *testing.T) {
	n := NewNormalizer(1, "2025", "CSE")

	rows := []RawRow{
		placedRow(nil),
		placedRow(map[string]string{"Department": "ECE"}),
		placedRow(map[string]string{"Student ID": ""}),
	}

	records := n.NormalizeRows(rows)
	require.Len(t, records, 1)

	c := n.Counters()
	require.Equal(t, 2, c.Skipped)
	require.Equal(t, 1, c.MismatchedDepartment)
	require.Zero(t, c.MismatchedYear)
	require.Equal(t, 1, c.MissingFields)
}

func TestNormalizeRowMixedCasePartitionValues(t *testing.T) {
	n := NewNormalizer(1, "2025", "CSE")

	rec := n.NormalizeRow(placedRow(map[string]string{
		"Department": "  cse ",
		"Class Year": " Class of 2025 ",
	}))
	require.NotNil(t, rec)
	require.Zero(t, n.Counters().Skipped)
}
