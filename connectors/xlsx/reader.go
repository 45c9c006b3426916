// Package xlsx reads the raw activity workbook and writes the report bundles.
package xlsx

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"legion-stats/domain/legion"
)

// Required source columns, matched case-insensitively against the header row.
// Extra columns are ignored.
const (
	ColPlayer = "Joueur"
	ColLegion = "Legion"
	ColDate   = "Date"
	ColHour   = "Heure"
	ColScore  = "Score"
	ColResult = "Result"
)

// ErrMissingColumn is fatal for the whole ingest, per the input contract.
var ErrMissingColumn = errors.New("missing required column")

// ReadRecords extracts the raw rows from the named sheet of an xlsx/xlsm stream.
func ReadRecords(r io.Reader, sheet string) ([]legion.RawRecord, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return readSheet(f, sheet)
}

// ReadRecordsFile is ReadRecords for a file on disk.
func ReadRecordsFile(path, sheet string) ([]legion.RawRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readSheet(f, sheet)
}

func readSheet(f *excelize.File, sheet string) ([]legion.RawRecord, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q has no header row", sheet)
	}

	idx := indexMap(rows[0])
	for _, col := range []string{ColPlayer, ColLegion, ColDate, ColHour, ColScore, ColResult} {
		if _, ok := idx[strings.ToLower(col)]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	var out []legion.RawRecord
	for _, row := range rows[1:] {
		rec := legion.RawRecord{
			Player: cell(row, idx[strings.ToLower(ColPlayer)]),
			Legion: cell(row, idx[strings.ToLower(ColLegion)]),
			Date:   cell(row, idx[strings.ToLower(ColDate)]),
			Hour:   cell(row, idx[strings.ToLower(ColHour)]),
			Score:  cell(row, idx[strings.ToLower(ColScore)]),
			Result: cell(row, idx[strings.ToLower(ColResult)]),
		}
		if rec == (legion.RawRecord{}) {
			continue // blank padding rows at the bottom of the sheet
		}
		out = append(out, rec)
	}
	return out, nil
}

func indexMap(headers []string) map[string]int {
	m := map[string]int{}
	for i, h := range headers {
		m[strings.TrimSpace(strings.ToLower(h))] = i
	}
	return m
}

// cell tolerates the ragged rows excelize returns when trailing cells are empty.
func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
