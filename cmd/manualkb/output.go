package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dgallion1/manualkb/internal/manual"
)

var (
	// titleStyle for bold headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// successStyle for success indicators
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// errorStyle for error indicators
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	// boxStyle for summary box with rounded border
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1)
)

// FormatParseSummary renders the result of parsing one manual.
func FormatParseSummary(w io.Writer, doc *manual.Document, filename string, files []string) {
	line1 := fmt.Sprintf("%s %s  %s %s",
		dimStyle.Render("Model:"), titleStyle.Render(string(doc.Model)),
		dimStyle.Render("Type:"), doc.ManualType,
	)
	line2 := fmt.Sprintf("%s %d  %s %d  %s %d  %s %d",
		dimStyle.Render("Pages:"), doc.TotalPages,
		dimStyle.Render("Chapters:"), len(doc.Chapters),
		dimStyle.Render("TOC:"), len(doc.TOC),
		dimStyle.Render("Commands:"), len(doc.Commands),
	)

	var sections []string
	for _, id := range manual.SectionOrder {
		if sec := doc.Sections[id]; sec != nil && len(sec.Chapters) > 0 {
			sections = append(sections, fmt.Sprintf("%s (%d)", id, len(sec.Chapters)))
		}
	}
	line3 := fmt.Sprintf("%s %s", dimStyle.Render("Sections:"), strings.Join(sections, ", "))

	content := titleStyle.Render(filename) + "\n" + line1 + "\n" + line2 + "\n" + line3
	if len(files) > 0 {
		content += "\n" + fmt.Sprintf("%s %s", dimStyle.Render("Written:"), successStyle.Render(fmt.Sprintf("%d files", len(files))))
	}
	fmt.Fprintln(w, boxStyle.Render(content))
}

// FormatError renders a failure line.
func FormatError(w io.Writer, err error) {
	fmt.Fprintln(w, errorStyle.Render("error:"), err)
}
