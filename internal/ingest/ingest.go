package ingest

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dgallion1/manualkb/internal/manual"
)

// Ingestor converts raw document bytes into an ordered page sequence.
// Page numbers are 1-based and monotonically increasing.
type Ingestor interface {
	Pages(r io.Reader, filename string) ([]manual.Page, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".pdf":      true,
	".txt":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".docx":     true,
}

// ForFile returns the appropriate ingestor for a filename.
func ForFile(filename string) (Ingestor, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return &PDFIngestor{}, nil
	case ".txt":
		return &TextIngestor{}, nil
	case ".md", ".markdown":
		return &MarkdownIngestor{}, nil
	case ".html", ".htm":
		return &HTMLIngestor{}, nil
	case ".docx":
		return &DOCXIngestor{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// pagesFromText numbers form-feed separated page texts. Blank pages are
// kept so page numbering matches the source.
func pagesFromText(text string) []manual.Page {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	parts := strings.Split(text, "\f")
	pages := make([]manual.Page, 0, len(parts))
	for i, part := range parts {
		pages = append(pages, manual.Page{Number: i + 1, Text: part})
	}
	return pages
}
