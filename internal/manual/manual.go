package manual

// Page is one page of extracted manual text, as supplied by an ingestor.
type Page struct {
	Number int    // 1-based page number, monotonically increasing
	Text   string // raw extracted text for the page
}

// Chapter is a titled span of manual content between two headings.
type Chapter struct {
	Title     string `json:"title"`
	StartPage int    `json:"start_page"`
	Content   string `json:"content"`
}

// SectionID identifies one of the fixed thematic buckets.
type SectionID string

const (
	SectionIntroduction    SectionID = "introduction"
	SectionSetup           SectionID = "setup"
	SectionFeatures        SectionID = "features"
	SectionRoomPerfect     SectionID = "roomperfect"
	SectionTroubleshooting SectionID = "troubleshooting"
	SectionTechnical       SectionID = "technical"
)

// SectionOrder lists all section IDs in their canonical display order.
var SectionOrder = []SectionID{
	SectionIntroduction,
	SectionSetup,
	SectionFeatures,
	SectionRoomPerfect,
	SectionTroubleshooting,
	SectionTechnical,
}

// SectionTitles maps section IDs to their display titles.
var SectionTitles = map[SectionID]string{
	SectionIntroduction:    "Introduction & Getting Started",
	SectionSetup:           "Setup & Installation",
	SectionFeatures:        "Features & Operation",
	SectionRoomPerfect:     "RoomPerfect",
	SectionTroubleshooting: "Troubleshooting & Support",
	SectionTechnical:       "Technical Specifications",
}

// SectionTitle returns the display title for a section ID, falling back to
// the ID itself for unknown sections.
func SectionTitle(id SectionID) string {
	if t, ok := SectionTitles[id]; ok {
		return t
	}
	return string(id)
}

// Section is a thematic bucket of chapters. Chapter order preserves the
// original discovery order (stable partition, never sorted).
type Section struct {
	ID       SectionID `json:"id"`
	Title    string    `json:"title"`
	Chapters []Chapter `json:"chapters"`
}

// TOCEntry is a best-effort table-of-contents entry scraped from early pages.
type TOCEntry struct {
	Title string `json:"title"`
	Page  int    `json:"page"`
}

// CommandRef is an inline control-protocol command reference found in the
// manual text (e.g. "!VOL(42)").
type CommandRef struct {
	Name        string `json:"name"`        // command name without parameters
	Raw         string `json:"command"`     // command as it appeared, with parameters
	Description string `json:"description"` // surrounding context, capped
}

// Document is the structured result of parsing one manual.
type Document struct {
	Model      Model                  `json:"model"`
	ManualType string                 `json:"manual_type"`
	TotalPages int                    `json:"total_pages"`
	TOC        []TOCEntry             `json:"toc"`
	Chapters   []Chapter              `json:"chapters"`
	Sections   map[SectionID]*Section `json:"sections"`
	Commands   []CommandRef           `json:"commands,omitempty"`
}

// SectionChapters returns the chapters of a section, or nil if the section
// is absent (it never is for documents built by segment.Segmenter).
func (d *Document) SectionChapters(id SectionID) []Chapter {
	if s, ok := d.Sections[id]; ok {
		return s.Chapters
	}
	return nil
}

// ChapterSections returns the section bucket of each chapter, indexed like
// Chapters. Because the section mapping is a stable partition of the
// chapter sequence, a single merge pass over the per-section cursors
// recovers the assignment.
func (d *Document) ChapterSections() []SectionID {
	cursors := make(map[SectionID]int, len(d.Sections))
	out := make([]SectionID, len(d.Chapters))
	for i, ch := range d.Chapters {
		out[i] = SectionFeatures
		for _, id := range SectionOrder {
			s, ok := d.Sections[id]
			if !ok {
				continue
			}
			cur := cursors[id]
			if cur < len(s.Chapters) && s.Chapters[cur] == ch {
				out[i] = id
				cursors[id] = cur + 1
				break
			}
		}
	}
	return out
}
