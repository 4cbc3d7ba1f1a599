package transfer

import (
	"fmt"
	"os"
	"time"

	apperrors "github.com/julianstephens/mindlog/internal/errors"
	"github.com/julianstephens/mindlog/internal/models"
)

// ReadFile reads entries from an .xlsx or .csv file
func ReadFile(path string, now time.Time) ([]models.DailyEntry, error) {
	records, err := ReadRecords(path)
	if err != nil {
		return nil, err
	}
	return RecordsToEntries(records, now), nil
}

// ReadRecords reads the raw rows of an .xlsx or .csv file
func ReadRecords(path string) ([]models.Record, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.IO(path, err)
	}
	defer f.Close()

	var records []models.Record
	switch format {
	case FormatXLSX:
		records, err = ReadXLSX(f)
	case FormatCSV:
		records, err = ReadCSV(f)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return records, nil
}

// WriteFile writes entries to an .xlsx or .csv file, replacing it if present
func WriteFile(path string, entries []models.DailyEntry) error {
	format, err := DetectFormat(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return apperrors.IO(path, err)
	}

	switch format {
	case FormatXLSX:
		err = WriteXLSX(f, entries)
	case FormatCSV:
		err = WriteCSV(f, entries)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return apperrors.IO(path, err)
	}
	return nil
}
