package ingest

import (
	"strings"
	"testing"
)

func TestMarkdownIngestor_HeadingsOnOwnLines(t *testing.T) {
	input := `# Introduction

Welcome to the amplifier.

## Setup

Connect the speakers.
`
	p := &MarkdownIngestor{}
	pages, err := p.Pages(strings.NewReader(input), "manual.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pages))
	}
	lines := strings.Split(pages[0].Text, "\n")
	var found []string
	for _, line := range lines {
		if line == "Introduction" || line == "Setup" {
			found = append(found, line)
		}
	}
	if len(found) != 2 {
		t.Errorf("expected both headings on their own lines, got %v in %q", found, pages[0].Text)
	}
	if !strings.Contains(pages[0].Text, "Connect the speakers.") {
		t.Errorf("expected body text, got %q", pages[0].Text)
	}
}

func TestMarkdownIngestor_ThematicBreakStartsPage(t *testing.T) {
	input := "# Page One\n\nFirst page text.\n\n---\n\n# Page Two\n\nSecond page text.\n"
	p := &MarkdownIngestor{}
	pages, err := p.Pages(strings.NewReader(input), "manual.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(pages))
	}
	if !strings.Contains(pages[0].Text, "First page text.") {
		t.Errorf("page 1: %q", pages[0].Text)
	}
	if !strings.Contains(pages[1].Text, "Second page text.") {
		t.Errorf("page 2: %q", pages[1].Text)
	}
	if pages[1].Number != 2 {
		t.Errorf("expected page number 2, got %d", pages[1].Number)
	}
}

func TestMarkdownIngestor_EmptyInput(t *testing.T) {
	p := &MarkdownIngestor{}
	pages, err := p.Pages(strings.NewReader(""), "empty.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pages) != 0 {
		t.Errorf("expected no pages, got %d", len(pages))
	}
}
