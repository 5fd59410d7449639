package ingest

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dgallion1/manualkb/internal/manual"
	"github.com/fumiama/go-docx"
)

// DOCXIngestor handles .docx manuals. Paragraph text becomes one line per
// paragraph; DOCX has no reliable page boundaries, so the whole document is
// a single page.
type DOCXIngestor struct{}

func (p *DOCXIngestor) Pages(r io.Reader, filename string) ([]manual.Page, error) {
	// go-docx needs a ReadSeeker+size, so write to a temp file.
	tmp, err := os.CreateTemp("", "manualkb-docx-*.docx")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	size, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("seek temp file: %w", err)
	}

	doc, err := docx.Parse(tmp, int64(size))
	tmp.Close()
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	var text strings.Builder
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		if t := paragraphText(para); t != "" {
			if text.Len() > 0 {
				text.WriteString("\n")
			}
			text.WriteString(t)
		}
	}

	if text.Len() == 0 {
		return nil, nil
	}
	return []manual.Page{{Number: 1, Text: text.String()}}, nil
}

func paragraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
