package transfer

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/julianstephens/mindlog/internal/models"
)

// SheetName is the worksheet written by exports
const SheetName = "Entries"

// ReadXLSX reads records from the first worksheet of a workbook. Cells are
// read raw so dates arrive either as text or as serial day numbers.
func ReadXLSX(r io.Reader) ([]models.Record, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return rowsToRecords(rows), nil
}

// WriteXLSX writes entries in date order to a single-sheet workbook.
// Numeric metrics are stored as numbers so spreadsheet formulas work on them.
func WriteXLSX(w io.Writer, entries []models.DailyEntry) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return err
	}

	header := make([]interface{}, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return err
	}
	if bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		last, _ := excelize.CoordinatesToCellName(len(Columns), 1)
		_ = f.SetCellStyle(SheetName, "A1", last, bold)
	}

	for i, e := range SortByDate(entries) {
		rec := e.ToRecord()
		row := make([]interface{}, len(Columns))
		for j, col := range Columns {
			row[j] = rec[col]
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SetPanes(SheetName, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return err
	}
	_, err := f.WriteTo(w)
	return err
}
