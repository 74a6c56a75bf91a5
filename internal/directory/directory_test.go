package directory

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/prepsheet-cli/internal/model"
)

func writeDataset(t *testing.T, rows [][]string) string {
	t.Helper()
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Sheet1")
	require.NoError(t, err)
	for _, rowData := range rows {
		row := sheet.AddRow()
		for _, cellData := range rowData {
			row.AddCell().SetString(cellData)
		}
	}
	path := filepath.Join(t.TempDir(), "data.xlsx")
	require.NoError(t, f.Save(path))
	return path
}

var header = []string{"Organization Name", "Website", "Monthly Website Visits", "App Downloads Last 30 Days"}

func loadTestDirectory(t *testing.T) *Directory {
	t.Helper()
	path := writeDataset(t, [][]string{
		header,
		{"Canva", "https://canva.com", "135,000,000", "500,000"},
		{"Tokopedia", "https://www.tokopedia.com", "96,400,000", "3,100,000"},
		{"Canva Enterprise", "https://canva.com/enterprise", "1,000", "0"},
		{"Grab Holdings", "https://grab.com", "nan", ""},
	})
	dir, err := Load(path, "")
	require.NoError(t, err)
	return dir
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.xlsx"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read dataset")
}

func TestLoad_MissingColumn(t *testing.T) {
	path := writeDataset(t, [][]string{
		{"Organization Name", "Website", "Monthly Website Visits"},
		{"Canva", "https://canva.com", "1"},
	})
	_, err := Load(path, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing required column "App Downloads Last 30 Days"`)
}

func TestResolve_Exact(t *testing.T) {
	dir := loadTestDirectory(t)

	rec := dir.Resolve("canva")
	assert.Equal(t, model.MatchExact, rec.Match)
	assert.Equal(t, "Canva", rec.Name)
	assert.Equal(t, int64(135000000), rec.MonthlyVisits)
	assert.Equal(t, int64(500000), rec.AppDownloads)
	assert.Equal(t, "canva.com", rec.Domain())
}

func TestResolve_ExactBeatsPartial(t *testing.T) {
	dir := loadTestDirectory(t)

	// "Canva" matches both rows as a substring; the exact row wins.
	rec := dir.Resolve("CANVA")
	assert.Equal(t, model.MatchExact, rec.Match)
	assert.Equal(t, "Canva", rec.Name)
}

func TestResolve_Partial(t *testing.T) {
	dir := loadTestDirectory(t)

	rec := dir.Resolve("tokoped")
	assert.Equal(t, model.MatchPartial, rec.Match)
	assert.Equal(t, "Tokopedia", rec.Name)
	assert.Equal(t, int64(96400000), rec.MonthlyVisits)
}

func TestResolve_PartialFirstRowWins(t *testing.T) {
	dir := loadTestDirectory(t)

	// "anva" is a substring of both Canva rows; the earlier row wins.
	rec := dir.Resolve("anva")
	assert.Equal(t, model.MatchPartial, rec.Match)
	assert.Equal(t, "Canva", rec.Name)
}

func TestResolve_None(t *testing.T) {
	dir := loadTestDirectory(t)

	rec := dir.Resolve("Acme Rockets")
	assert.Equal(t, model.MatchNone, rec.Match)
	assert.Equal(t, "Acme Rockets", rec.Name)
	assert.Equal(t, "https://www.acmerockets.com", rec.Website)
	assert.Zero(t, rec.MonthlyVisits)
	assert.Zero(t, rec.AppDownloads)
	assert.False(t, rec.Verified())
}

func TestResolve_MalformedNumericsDegradeToZero(t *testing.T) {
	dir := loadTestDirectory(t)

	rec := dir.Resolve("Grab Holdings")
	assert.Equal(t, model.MatchExact, rec.Match)
	assert.Zero(t, rec.MonthlyVisits)
	assert.Zero(t, rec.AppDownloads)
}

func TestNormalizeCount(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"1,234,000", 1234000},
		{"", 0},
		{"nan", 0},
		{"NaN", 0},
		{"42.9", 42},
		{" 500,000 ", 500000},
		{"not a number", 0},
		{"-10", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeCount(tt.in))
		})
	}
}

func TestCompanies(t *testing.T) {
	dir := loadTestDirectory(t)
	assert.Equal(t, 4, dir.Len())
	assert.Equal(t, "Canva", dir.Companies()[0].Name)
}
