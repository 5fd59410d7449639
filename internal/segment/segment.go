// Package segment turns ordered pages of raw manual text into a structured
// document: chapters detected by heading heuristics, grouped into a fixed
// taxonomy of thematic sections, with a best-effort table of contents.
//
// Segmentation is a pure function over its input: no I/O, no shared state
// across invocations, and no failure mode. Degenerate input produces the
// smallest valid Document.
package segment

import "github.com/dgallion1/manualkb/internal/manual"

// Segmenter runs the full structural pass over ingested pages.
type Segmenter struct {
	classifier *Classifier
	grouper    *Grouper
	toc        TOCConfig
}

// New returns a Segmenter with the canonical classification tables.
func New() *Segmenter {
	return NewWithConfig(DefaultClassifierConfig(), DefaultGrouperConfig(), DefaultTOCConfig())
}

// NewWithConfig returns a Segmenter with substituted tables.
func NewWithConfig(cc ClassifierConfig, gc GrouperConfig, tc TOCConfig) *Segmenter {
	return &Segmenter{
		classifier: NewClassifier(cc),
		grouper:    NewGrouper(gc),
		toc:        tc,
	}
}

// Segment builds the document model from ordered pages. The union of all
// section chapter lists is exactly the chapter sequence.
func (s *Segmenter) Segment(pages []manual.Page) *manual.Document {
	chapters := s.classifier.Classify(pages)
	return &manual.Document{
		TotalPages: len(pages),
		TOC:        ExtractTOC(pages, s.toc),
		Chapters:   chapters,
		Sections:   s.grouper.Group(chapters),
	}
}
