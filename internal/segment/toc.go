package segment

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dgallion1/manualkb/internal/manual"
)

// TOCConfig controls table-of-contents scraping.
type TOCConfig struct {
	MaxPages    int    // how many pages from the front to scan
	Marker      string // lowercase substring that marks a contents page
	MinTitleLen int    // entries with shorter titles are discarded
}

// DefaultTOCConfig returns the canonical scraping parameters.
func DefaultTOCConfig() TOCConfig {
	return TOCConfig{
		MaxPages:    10,
		Marker:      "contents",
		MinTitleLen: 4,
	}
}

// tocLinePattern matches "title ... page" lines with dotted leaders.
var tocLinePattern = regexp.MustCompile(`(.+?)\s+\.+\s+(\d+)`)

// ExtractTOC scrapes a best-effort table of contents from the early pages.
// The result is independent of the chapter/section structure and may be
// empty.
func ExtractTOC(pages []manual.Page, cfg TOCConfig) []manual.TOCEntry {
	var toc []manual.TOCEntry

	for i, page := range pages {
		if i >= cfg.MaxPages {
			break
		}
		if !strings.Contains(strings.ToLower(page.Text), cfg.Marker) {
			continue
		}
		for _, line := range strings.Split(page.Text, "\n") {
			m := tocLinePattern.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			title := strings.TrimSpace(m[1])
			if len(title) < cfg.MinTitleLen {
				continue
			}
			pageNum, err := strconv.Atoi(m[2])
			if err != nil {
				continue
			}
			toc = append(toc, manual.TOCEntry{Title: title, Page: pageNum})
		}
	}
	return toc
}
