// Package commands scans manual text for inline control-protocol command
// references such as "!VOL(42)" or "!MUTEON?" and collects them with
// surrounding context.
package commands

import (
	"regexp"
	"strings"

	"github.com/dgallion1/manualkb/internal/manual"
)

// Config controls command extraction.
type Config struct {
	Pattern        *regexp.Regexp // command token pattern
	ContextLines   int            // lines of context gathered from the match line onward
	DescriptionCap int            // description length cap in bytes
}

// commandPattern matches "!NAME" optionally followed by a parameter list.
var commandPattern = regexp.MustCompile(`![\w]+(?:\([^\)]*\))?`)

// DefaultConfig returns the canonical extraction parameters.
func DefaultConfig() Config {
	return Config{
		Pattern:        commandPattern,
		ContextLines:   3,
		DescriptionCap: 200,
	}
}

// Extractor finds command references in raw manual text.
type Extractor struct {
	cfg Config
}

func NewExtractor(cfg Config) *Extractor {
	return &Extractor{cfg: cfg}
}

// Extract scans pages in order and returns command references in discovery
// order. The first occurrence of a command name wins; later duplicates are
// ignored.
func (e *Extractor) Extract(pages []manual.Page) []manual.CommandRef {
	var refs []manual.CommandRef
	seen := make(map[string]bool)

	for _, page := range pages {
		lines := strings.Split(page.Text, "\n")
		for i, line := range lines {
			for _, raw := range e.cfg.Pattern.FindAllString(line, -1) {
				name := raw
				if idx := strings.Index(raw, "("); idx >= 0 {
					name = raw[:idx]
				}
				if seen[name] {
					continue
				}
				seen[name] = true
				refs = append(refs, manual.CommandRef{
					Name:        name,
					Raw:         raw,
					Description: e.context(lines, i),
				})
			}
		}
	}
	return refs
}

// context joins up to ContextLines non-empty lines starting at the match
// line, capped at DescriptionCap bytes.
func (e *Extractor) context(lines []string, start int) string {
	var parts []string
	for j := start; j < len(lines) && j < start+e.cfg.ContextLines; j++ {
		if t := strings.TrimSpace(lines[j]); t != "" {
			parts = append(parts, t)
		}
	}
	desc := strings.Join(parts, " ")
	if len(desc) > e.cfg.DescriptionCap {
		desc = desc[:e.cfg.DescriptionCap]
	}
	return desc
}
