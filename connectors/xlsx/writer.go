package xlsx

import (
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"

	"legion-stats/domain/legion"
)

// WriteWorkbook renders each table as one sheet, in order, and writes the
// workbook to w. The first table takes over the default sheet so the output
// has no stray "Sheet1". Row and column order are preserved exactly.
func WriteWorkbook(w io.Writer, tables []legion.Table) error {
	if len(tables) == 0 {
		return fmt.Errorf("write workbook: no tables")
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, table := range tables {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", table.Name); err != nil {
				return fmt.Errorf("sheet %q: %w", table.Name, err)
			}
		} else if _, err := f.NewSheet(table.Name); err != nil {
			return fmt.Errorf("sheet %q: %w", table.Name, err)
		}
		if err := writeSheet(f, table); err != nil {
			return fmt.Errorf("sheet %q: %w", table.Name, err)
		}
	}

	if idx, err := f.GetSheetIndex(tables[0].Name); err == nil {
		f.SetActiveSheet(idx)
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// WriteWorkbookFile is WriteWorkbook into a file on disk.
func WriteWorkbookFile(path string, tables []legion.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteWorkbook(f, tables); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeSheet(f *excelize.File, table legion.Table) error {
	header := make([]any, len(table.Headers))
	for i, h := range table.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(table.Name, "A1", &header); err != nil {
		return err
	}
	for ri, row := range table.Rows {
		ref, err := excelize.CoordinatesToCellName(1, ri+2)
		if err != nil {
			return err
		}
		cells := row
		if err := f.SetSheetRow(table.Name, ref, &cells); err != nil {
			return err
		}
	}
	return nil
}
