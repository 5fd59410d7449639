package segment

import (
	"regexp"
	"strings"

	"github.com/dgallion1/manualkb/internal/manual"
)

// HeadingRule is a single predicate in the ordered heading rule chain.
// Rules are evaluated top to bottom; the first match wins.
type HeadingRule struct {
	Name  string
	Match func(line string) bool
}

// ClassifierConfig holds the classification tables. Keeping these as data
// (rather than hardcoded branches) makes the classifier testable with
// substituted rule sets.
type ClassifierConfig struct {
	MinLineLen int // trimmed lines shorter than this are never headings
	MaxLineLen int // trimmed lines longer than this are never headings
	Rules      []HeadingRule
}

var (
	numberedChapterPattern = regexp.MustCompile(`^(CHAPTER \d+|Chapter \d+)`)
	numberedTitlePattern   = regexp.MustCompile(`^\d+\.\s+[A-Z][A-Za-z\s]+$`)
	allCapsPattern         = regexp.MustCompile(`^[A-Z][A-Z\s]{3,30}$`)
)

// DefaultHeadingKeywords are section titles commonly found in audio
// equipment manuals.
var DefaultHeadingKeywords = []string{
	"introduction", "getting started", "connections", "setup",
	"operation", "features", "roomperfect", "voicing",
	"troubleshooting", "specifications", "warranty",
	"safety", "installation", "configuration", "controls",
	"remote control", "front panel", "rear panel", "display",
}

// DefaultClassifierConfig returns the canonical heading tables.
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		MinLineLen: 3,
		MaxLineLen: 100,
		Rules: []HeadingRule{
			{Name: "numbered-chapter", Match: numberedChapterPattern.MatchString},
			{Name: "numbered-title", Match: numberedTitlePattern.MatchString},
			{Name: "all-caps", Match: allCapsPattern.MatchString},
			KeywordRule(DefaultHeadingKeywords, 5),
		},
	}
}

// KeywordRule builds a heading rule matching lines that contain any of the
// given keywords. The token-count guard keeps body sentences that merely
// mention a keyword from being misclassified as headings.
func KeywordRule(keywords []string, maxTokens int) HeadingRule {
	return HeadingRule{
		Name: "keyword",
		Match: func(line string) bool {
			if len(strings.Fields(line)) > maxTokens {
				return false
			}
			lower := strings.ToLower(line)
			for _, kw := range keywords {
				if strings.Contains(lower, kw) {
					return true
				}
			}
			return false
		},
	}
}

// Classifier scans manual pages line by line and groups body text under
// detected headings.
type Classifier struct {
	cfg ClassifierConfig
}

func NewClassifier(cfg ClassifierConfig) *Classifier {
	return &Classifier{cfg: cfg}
}

// IsHeading reports whether a trimmed line starts a new chapter.
func (c *Classifier) IsHeading(line string) bool {
	if len(line) < c.cfg.MinLineLen || len(line) > c.cfg.MaxLineLen {
		return false
	}
	for _, r := range c.cfg.Rules {
		if r.Match(line) {
			return true
		}
	}
	return false
}

// scanState is the fold state carried across lines: chapters sealed so far
// plus the chapter currently accumulating body text.
type scanState struct {
	sealed  []manual.Chapter
	current *manual.Chapter
}

// Classify consumes pages in order and returns the ordered chapter sequence.
// Body text before the first detected heading has no chapter to own it and
// is dropped.
func (c *Classifier) Classify(pages []manual.Page) []manual.Chapter {
	var st scanState
	for _, page := range pages {
		for _, line := range strings.Split(page.Text, "\n") {
			st = c.step(st, strings.TrimSpace(line), page.Number)
		}
	}
	if st.current != nil {
		st.sealed = append(st.sealed, *st.current)
	}
	return st.sealed
}

// step advances the fold by one trimmed line.
func (c *Classifier) step(st scanState, line string, pageNum int) scanState {
	if c.IsHeading(line) {
		if st.current != nil {
			st.sealed = append(st.sealed, *st.current)
		}
		st.current = &manual.Chapter{Title: line, StartPage: pageNum}
		return st
	}
	if st.current != nil {
		st.current.Content += line + "\n"
	}
	return st
}
