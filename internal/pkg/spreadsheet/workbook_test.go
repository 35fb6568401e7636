package spreadsheet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestParseWorkbook(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{
		{"Student ID", "Student Name", "Department"},
		{"S001", "Asha Rao", "CSE"},
		{"S002", "Vikram Shah"},
	})

	rows, err := ParseWorkbook(buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.Equal(t, "S001", rows[0]["Student ID"])
	require.Equal(t, "Asha Rao", rows[0]["Student Name"])
	require.Equal(t, "CSE", rows[0]["Department"])

	// Missing trailing cells map to empty strings.
	require.Equal(t, "", rows[1]["Department"])
}

func TestParseWorkbookHeaderOnly(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{
		{"Student ID", "Student Name"},
	})

	rows, err := ParseWorkbook(buf)
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestParseWorkbookNotASpreadsheet(t *testing.T) {
	_, err := ParseWorkbook(bytes.NewBufferString("this is not a workbook"))
	require.Error(t, err)
}
