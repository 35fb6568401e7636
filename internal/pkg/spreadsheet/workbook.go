package spreadsheet

import (
	"errors"
	"io"

	"github.com/xuri/excelize/v2"
)

// Workbook parse errors
var (
	ErrNoWorksheet = errors.New("no worksheet found in file")
)

// RawRow maps header text (as it appears in the sheet) to the cell value of
// one data row. Missing trailing cells are present as empty strings.
type RawRow map[string]string

// ParseWorkbook reads an uploaded workbook and returns the data rows of its
// first sheet, keyed by the sheet's own header row. Only the first sheet is
// consulted; a workbook without sheets or without a header row yields
// ErrNoWorksheet.
func ParseWorkbook(r io.Reader) ([]RawRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, ErrNoWorksheet
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoWorksheet
	}

	headers := rows[0]
	out := make([]RawRow, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		row := make(RawRow, len(headers))
		for i, header := range headers {
			if i < len(cells) {
				row[header] = cells[i]
			} else {
				row[header] = ""
			}
		}
		out = append(out, row)
	}

	return out, nil
}
