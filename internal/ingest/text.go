package ingest

import (
	"io"

	"github.com/dgallion1/manualkb/internal/manual"
)

// TextIngestor handles plain text dumps. Form feeds mark page boundaries,
// matching the convention of pdftotext output; text without form feeds is
// a single page.
type TextIngestor struct{}

func (p *TextIngestor) Pages(r io.Reader, filename string) ([]manual.Page, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return pagesFromText(string(data)), nil
}
