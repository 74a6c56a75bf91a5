// Package directory loads the verified company dataset and resolves
// user-entered names against it.
package directory

import (
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/prepsheet-cli/internal/fetcher"
	"github.com/sells-group/prepsheet-cli/internal/model"
)

// Required dataset column headers.
const (
	colName      = "Organization Name"
	colWebsite   = "Website"
	colVisits    = "Monthly Website Visits"
	colDownloads = "App Downloads Last 30 Days"
)

// Directory is the company dataset, loaded once at startup and read-only for
// the process lifetime. Concurrent runs may share it without coordination.
type Directory struct {
	records []model.CompanyRecord
}

type columnIndex struct {
	name, website, visits, downloads int
}

// Load reads the XLSX dataset at path. A missing file, sheet, or required
// column fails the load; malformed numeric cells degrade to zero instead.
func Load(path, sheet string) (*Directory, error) {
	header, rows, err := fetcher.ReadXLSX(path, fetcher.XLSXOptions{SheetName: sheet})
	if err != nil {
		return nil, eris.Wrap(err, "directory: read dataset")
	}

	idx, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var records []model.CompanyRecord
	for _, cells := range rows {
		rec := model.CompanyRecord{
			Name:          strings.TrimSpace(cell(cells, idx.name)),
			Website:       strings.TrimSpace(cell(cells, idx.website)),
			MonthlyVisits: normalizeCount(cell(cells, idx.visits)),
			AppDownloads:  normalizeCount(cell(cells, idx.downloads)),
		}
		if rec.Name == "" {
			continue
		}
		records = append(records, rec)
	}

	zap.L().Info("directory: dataset loaded",
		zap.String("path", path),
		zap.Int("companies", len(records)),
	)

	return &Directory{records: records}, nil
}

func mapColumns(header []string) (columnIndex, error) {
	idx := columnIndex{name: -1, website: -1, visits: -1, downloads: -1}
	for i, h := range header {
		switch strings.TrimSpace(h) {
		case colName:
			idx.name = i
		case colWebsite:
			idx.website = i
		case colVisits:
			idx.visits = i
		case colDownloads:
			idx.downloads = i
		}
	}
	for col, i := range map[string]int{
		colName:      idx.name,
		colWebsite:   idx.website,
		colVisits:    idx.visits,
		colDownloads: idx.downloads,
	} {
		if i < 0 {
			return idx, eris.Errorf("directory: dataset missing required column %q", col)
		}
	}
	return idx, nil
}

func cell(cells []string, i int) string {
	if i >= len(cells) {
		return ""
	}
	return cells[i]
}

// Resolve maps a user-entered name to a record. It never fails: exact
// case-insensitive match first, then substring match, then a synthesized
// record with a guessed website and zeroed metrics. Ties go to row order.
func (d *Directory) Resolve(name string) model.CompanyRecord {
	needle := strings.ToLower(strings.TrimSpace(name))

	for _, rec := range d.records {
		if strings.ToLower(rec.Name) == needle {
			rec.Match = model.MatchExact
			return rec
		}
	}

	if needle != "" {
		for _, rec := range d.records {
			if strings.Contains(strings.ToLower(rec.Name), needle) {
				rec.Match = model.MatchPartial
				return rec
			}
		}
	}

	return model.CompanyRecord{
		Name:    strings.TrimSpace(name),
		Website: "https://www." + slug(name) + ".com",
		Match:   model.MatchNone,
	}
}

// Companies returns all loaded records in dataset order.
func (d *Directory) Companies() []model.CompanyRecord {
	return d.records
}

// Len returns the number of loaded records.
func (d *Directory) Len() int {
	return len(d.records)
}

func slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "")
}

// normalizeCount parses a possibly comma-formatted numeric cell. Missing,
// empty, "nan", or malformed values yield 0 so bad data never fails a lookup.
func normalizeCount(s string) int64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" || strings.EqualFold(s, "nan") {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return 0
	}
	return int64(f)
}
