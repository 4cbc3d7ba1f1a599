// Package transfer moves daily entries in and out of spreadsheet and CSV
// files using the tabular column contract shared with other tools.
package transfer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/julianstephens/mindlog/internal/models"
)

// Columns is the export column order
var Columns = []string{
	models.FieldUser.Display,
	models.FieldDate.Display,
	models.FieldFocus.Display,
	models.FieldHyperactivity.Display,
	models.FieldImpulsivity.Display,
	models.FieldSleepHours.Display,
	models.FieldDistractions.Display,
	models.FieldTasksCompleted.Display,
	models.FieldMood.Display,
	models.FieldNotes.Display,
	models.FieldCognitiveScore.Display,
	models.FieldAdvice.Display,
	models.FieldScreenTime.Display,
}

// Format is a supported file format
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// DetectFormat picks the format from a file extension
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	case ".csv":
		return FormatCSV, nil
	}
	return "", fmt.Errorf("unsupported file type %q (use .xlsx or .csv)", filepath.Ext(path))
}

// rowsToRecords turns a header row plus data rows into records keyed by the
// trimmed header text. Fully blank rows are dropped.
func rowsToRecords(rows [][]string) []models.Record {
	if len(rows) == 0 {
		return nil
	}
	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	var records []models.Record
	for _, row := range rows[1:] {
		rec := models.Record{}
		blank := true
		for i, cell := range row {
			if i >= len(header) || header[i] == "" {
				continue
			}
			rec[header[i]] = cell
			if strings.TrimSpace(cell) != "" {
				blank = false
			}
		}
		if !blank {
			records = append(records, rec)
		}
	}
	return records
}

// entryRow renders an entry in Columns order as text cells. Absent metrics
// become empty cells.
func entryRow(e models.DailyEntry) []string {
	rec := e.ToRecord()
	row := make([]string, len(Columns))
	for i, col := range Columns {
		row[i] = cellText(rec[col])
	}
	return row
}
