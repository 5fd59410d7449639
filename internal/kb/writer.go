// Package kb renders parsed manuals into knowledge-base files: a JSON
// document plus per-section and index markdown. Writers are thin adapters
// over the in-memory document model and contain no parsing logic.
package kb

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgallion1/manualkb/internal/manual"
)

// previewCap limits chapter content previews in the JSON section listing.
const previewCap = 500

// Writer renders documents into a knowledge-base directory.
type Writer struct {
	dir string
}

func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Write renders all knowledge-base files for a document and returns the
// paths written.
func (w *Writer) Write(doc *manual.Document) ([]string, error) {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	base := fmt.Sprintf("%s-%s", doc.Model, manualType(doc))
	var written []string

	jsonPath := filepath.Join(w.dir, base+".json")
	if err := w.writeJSON(jsonPath, doc); err != nil {
		return written, err
	}
	written = append(written, jsonPath)

	for _, id := range manual.SectionOrder {
		section := doc.Sections[id]
		if section == nil || len(section.Chapters) == 0 {
			continue
		}
		path := filepath.Join(w.dir, fmt.Sprintf("%s-%s.md", base, id))
		if err := w.writeSectionMarkdown(path, doc, section); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	indexPath := filepath.Join(w.dir, base+"-index.md")
	if err := w.writeIndexMarkdown(indexPath, doc); err != nil {
		return written, err
	}
	written = append(written, indexPath)

	return written, nil
}

func manualType(doc *manual.Document) string {
	if doc.ManualType != "" {
		return doc.ManualType
	}
	return "owners"
}

// chapterSummary is a chapter without its body text.
type chapterSummary struct {
	Title     string `json:"title"`
	StartPage int    `json:"start_page"`
}

// sectionListing is a populated section with content previews.
type sectionListing struct {
	Title    string           `json:"title"`
	Chapters []previewChapter `json:"chapters"`
}

type previewChapter struct {
	Title     string `json:"title"`
	StartPage int    `json:"start_page"`
	Content   string `json:"content"`
}

func (w *Writer) writeJSON(path string, doc *manual.Document) error {
	summaries := make([]chapterSummary, 0, len(doc.Chapters))
	for _, ch := range doc.Chapters {
		summaries = append(summaries, chapterSummary{Title: ch.Title, StartPage: ch.StartPage})
	}

	sections := make(map[manual.SectionID]sectionListing)
	for _, id := range manual.SectionOrder {
		section := doc.Sections[id]
		if section == nil || len(section.Chapters) == 0 {
			continue
		}
		listing := sectionListing{Title: section.Title}
		for _, ch := range section.Chapters {
			content := ch.Content
			if len(content) > previewCap {
				content = content[:previewCap]
			}
			listing.Chapters = append(listing.Chapters, previewChapter{
				Title:     ch.Title,
				StartPage: ch.StartPage,
				Content:   content,
			})
		}
		sections[id] = listing
	}

	payload := map[string]any{
		"model":         doc.Model,
		"manual_type":   manualType(doc),
		"total_pages":   doc.TotalPages,
		"toc":           doc.TOC,
		"chapters":      summaries,
		"sections":      sections,
		"full_chapters": doc.Chapters,
	}
	if len(doc.Commands) > 0 {
		payload["commands"] = doc.Commands
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (w *Writer) writeSectionMarkdown(path string, doc *manual.Document, section *manual.Section) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s Owner's Manual - %s\n\n", doc.Model, section.Title)
	for _, ch := range section.Chapters {
		fmt.Fprintf(&b, "## %s\n\n", ch.Title)
		fmt.Fprintf(&b, "**Page %d**\n\n", ch.StartPage)
		b.WriteString(ch.Content)
		b.WriteString("\n\n---\n\n")
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (w *Writer) writeIndexMarkdown(path string, doc *manual.Document) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s Owner's Manual - Index\n\n", doc.Model)
	fmt.Fprintf(&b, "Total Pages: %d\n\n", doc.TotalPages)

	if len(doc.TOC) > 0 {
		b.WriteString("## Table of Contents\n\n")
		for _, entry := range doc.TOC {
			fmt.Fprintf(&b, "- %s (Page %d)\n", entry.Title, entry.Page)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Sections\n\n")
	for _, id := range manual.SectionOrder {
		section := doc.Sections[id]
		if section == nil || len(section.Chapters) == 0 {
			continue
		}
		fmt.Fprintf(&b, "### %s\n\n", section.Title)
		for _, ch := range section.Chapters {
			fmt.Fprintf(&b, "- %s (Page %d)\n", ch.Title, ch.StartPage)
		}
		b.WriteString("\n")
	}

	if len(doc.Commands) > 0 {
		b.WriteString("## Commands\n\n")
		for _, cmd := range doc.Commands {
			fmt.Fprintf(&b, "- `%s`: %s\n", cmd.Raw, cmd.Description)
		}
		b.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
