package transfer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/julianstephens/mindlog/internal/models"
)

// ReadCSV reads records from a CSV file whose first row is the header
func ReadCSV(r io.Reader) ([]models.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	return rowsToRecords(rows), nil
}

// WriteCSV writes entries in date order under the standard header
func WriteCSV(w io.Writer, entries []models.DailyEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, e := range SortByDate(entries) {
		if err := cw.Write(entryRow(e)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
