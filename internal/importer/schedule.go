// Package importer reads external files into domain records: spreadsheet
// schedules into the associate roster, and golden-config JSON snapshots.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/lmercer/shiftdoc/internal/domain"
)

// ImportSchedule parses a schedule spreadsheet into associate records.
// Expects the first sheet with a header row, column 0 = name and column 1 =
// employee id. If the file cannot be opened as a workbook, falls back to
// comma-separated parsing; a corrupt file yields an empty result and an
// error, never partial state.
func ImportSchedule(path string) ([]domain.Associate, error) {
	associates, xlsxErr := importFromExcel(path)
	if xlsxErr == nil {
		return associates, nil
	}
	associates, csvErr := importFromCSV(path)
	if csvErr != nil {
		return nil, fmt.Errorf("reading schedule: %w", xlsxErr)
	}
	return associates, nil
}

func importFromExcel(path string) ([]domain.Associate, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}

	var associates []domain.Associate
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if a, ok := rowToAssociate(row); ok {
			associates = append(associates, a)
		}
	}
	return associates, nil
}

func importFromCSV(path string) ([]domain.Associate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var associates []domain.Associate
	first := true
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv: %w", err)
		}
		if first {
			first = false // header
			continue
		}
		if a, ok := rowToAssociate(row); ok {
			associates = append(associates, a)
		}
	}
	return associates, nil
}

// rowToAssociate converts one spreadsheet row, skipping rows missing either
// field. A trailing ".0" on the employee id is an artifact of spreadsheets
// storing ids as floats and is stripped.
func rowToAssociate(row []string) (domain.Associate, bool) {
	if len(row) < 2 {
		return domain.Associate{}, false
	}
	name := strings.TrimSpace(row[0])
	eeid := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(row[1]), ".0"))
	if name == "" || eeid == "" {
		return domain.Associate{}, false
	}
	return domain.Associate{
		ID:         uuid.New().String(),
		Name:       name,
		EmployeeID: eeid,
	}, true
}
