// Package export writes finished prep sheets to disk for sharing.
package export

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rotisserie/eris"
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Filename returns the export filename for a company's prep sheet.
func Filename(companyName string) string {
	name := strings.Trim(unsafeChars.ReplaceAllString(strings.TrimSpace(companyName), "_"), "_")
	if name == "" {
		name = "company"
	}
	return name + "_prep_sheet.md"
}

// Write saves the document under dir using the company's export filename and
// returns the written path.
func Write(dir, companyName, document string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", eris.Wrap(err, "export: create output dir")
	}
	path := filepath.Join(dir, Filename(companyName))
	if err := os.WriteFile(path, []byte(document), 0o644); err != nil {
		return "", eris.Wrap(err, "export: write prep sheet")
	}
	return path, nil
}
