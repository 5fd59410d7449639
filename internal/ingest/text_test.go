package ingest

import (
	"strings"
	"testing"
)

func TestTextIngestor_FormFeedPages(t *testing.T) {
	input := "COVER PAGE\fContents\nIntroduction ..... 4\fINTRODUCTION\nWelcome text."
	p := &TextIngestor{}
	pages, err := p.Pages(strings.NewReader(input), "manual.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(pages) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(pages))
	}
	for i, page := range pages {
		if page.Number != i+1 {
			t.Errorf("page[%d]: expected number %d, got %d", i, i+1, page.Number)
		}
	}
	if !strings.Contains(pages[1].Text, "Contents") {
		t.Errorf("expected contents on page 2, got %q", pages[1].Text)
	}
}

func TestTextIngestor_SinglePage(t *testing.T) {
	p := &TextIngestor{}
	pages, err := p.Pages(strings.NewReader("Just one page of text."), "manual.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pages))
	}
	if pages[0].Number != 1 {
		t.Errorf("expected page number 1, got %d", pages[0].Number)
	}
}

func TestTextIngestor_EmptyInput(t *testing.T) {
	p := &TextIngestor{}
	pages, err := p.Pages(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pages) != 0 {
		t.Errorf("expected no pages for empty input, got %d", len(pages))
	}
}

func TestTextIngestor_BlankInteriorPageKept(t *testing.T) {
	input := "PAGE ONE\f\fPAGE THREE"
	p := &TextIngestor{}
	pages, err := p.Pages(strings.NewReader(input), "manual.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pages) != 3 {
		t.Fatalf("expected 3 pages (blank page kept), got %d", len(pages))
	}
	if pages[2].Number != 3 {
		t.Errorf("expected page number 3, got %d", pages[2].Number)
	}
}

func TestForFile_Dispatch(t *testing.T) {
	tests := []struct {
		filename  string
		supported bool
	}{
		{"manual.pdf", true},
		{"manual.txt", true},
		{"manual.md", true},
		{"manual.html", true},
		{"manual.docx", true},
		{"manual.xlsx", false},
		{"manual", false},
	}
	for _, tt := range tests {
		_, err := ForFile(tt.filename)
		if tt.supported && err != nil {
			t.Errorf("ForFile(%q): unexpected error %v", tt.filename, err)
		}
		if !tt.supported && err == nil {
			t.Errorf("ForFile(%q): expected error", tt.filename)
		}
		if got := IsSupportedExtension(tt.filename); got != tt.supported {
			t.Errorf("IsSupportedExtension(%q): expected %v, got %v", tt.filename, tt.supported, got)
		}
	}
}
