package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schedule.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestImportSchedule_CSVFallback(t *testing.T) {
	path := writeTempCSV(t, "Name,Employee ID\nAlice Smith,100\nBob Jones,200\n")

	got, err := ImportSchedule(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Alice Smith", got[0].Name)
	assert.Equal(t, "100", got[0].EmployeeID)
	assert.NotEmpty(t, got[0].ID, "each imported row gets a fresh UUID")
}

func TestImportSchedule_SkipsIncompleteRows(t *testing.T) {
	path := writeTempCSV(t, "Name,Employee ID\n,100\nBob,\nCarol,300\nshortrow\n")

	got, err := ImportSchedule(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Carol", got[0].Name)
}

func TestImportSchedule_StripsFloatArtifact(t *testing.T) {
	path := writeTempCSV(t, "Name,Employee ID\nAlice,100.0\n")

	got, err := ImportSchedule(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "100", got[0].EmployeeID)
}

func TestImportSchedule_Workbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]string{"Name", "Employee ID"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]string{"Alice Smith", "100.0"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]string{"Bob Jones", "200"}))
	require.NoError(t, f.SaveAs(path))

	got, err := ImportSchedule(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "100", got[0].EmployeeID)
	assert.Equal(t, "Bob Jones", got[1].Name)
}

func TestImportSchedule_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.xlsx")
	_, err := ImportSchedule(path)
	assert.Error(t, err)
}
