// Package excel extracts the header and data rows from xlsx workbooks so
// spreadsheet uploads go through the same validation pipeline as delimited
// text.
package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Rows reads the first sheet of an xlsx workbook. The first non-empty row is
// the header; everything after it is data. Date cells that come back as
// spreadsheet serial numbers are left as-is, the date validator understands
// them.
func Rows(data []byte) (header []string, rows [][]string, err error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("workbook has no sheets")
	}

	all, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}

	for i, row := range all {
		if !emptyRow(row) {
			return row, dropEmpty(all[i+1:]), nil
		}
	}
	return nil, nil, fmt.Errorf("sheet %s has no header row", sheets[0])
}

// dropEmpty removes fully empty rows so they never consume a row number.
func dropEmpty(rows [][]string) [][]string {
	kept := rows[:0:0]
	for _, row := range rows {
		if !emptyRow(row) {
			kept = append(kept, row)
		}
	}
	return kept
}

func emptyRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
