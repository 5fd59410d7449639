package segment

import (
	"strings"

	"github.com/dgallion1/manualkb/internal/manual"
)

// KeywordGroup maps title keywords to one section bucket.
type KeywordGroup struct {
	ID       manual.SectionID
	Title    string
	Keywords []string
}

// GrouperConfig holds the section taxonomy. Groups are evaluated in
// priority order with first-match-wins semantics, mirroring the heading
// classifier; chapters matching no group fall into the default bucket.
type GrouperConfig struct {
	Groups       []KeywordGroup
	DefaultID    manual.SectionID
	DefaultTitle string
}

// DefaultGrouperConfig returns the canonical six-bucket taxonomy.
// Downstream consumers depend on this exact priority order.
func DefaultGrouperConfig() GrouperConfig {
	return GrouperConfig{
		Groups: []KeywordGroup{
			{
				ID:       manual.SectionIntroduction,
				Title:    manual.SectionTitle(manual.SectionIntroduction),
				Keywords: []string{"introduction", "getting started", "overview", "welcome"},
			},
			{
				ID:       manual.SectionSetup,
				Title:    manual.SectionTitle(manual.SectionSetup),
				Keywords: []string{"setup", "installation", "connection", "wiring"},
			},
			{
				ID:       manual.SectionRoomPerfect,
				Title:    manual.SectionTitle(manual.SectionRoomPerfect),
				Keywords: []string{"roomperfect", "room perfect", "calibration"},
			},
			{
				ID:       manual.SectionTroubleshooting,
				Title:    manual.SectionTitle(manual.SectionTroubleshooting),
				Keywords: []string{"troubleshoot", "problem", "support", "warranty"},
			},
			{
				ID:       manual.SectionTechnical,
				Title:    manual.SectionTitle(manual.SectionTechnical),
				Keywords: []string{"specification", "technical", "dimensions"},
			},
		},
		DefaultID:    manual.SectionFeatures,
		DefaultTitle: manual.SectionTitle(manual.SectionFeatures),
	}
}

// Grouper buckets chapters into the fixed section taxonomy.
type Grouper struct {
	cfg GrouperConfig
}

func NewGrouper(cfg GrouperConfig) *Grouper {
	return &Grouper{cfg: cfg}
}

// Group partitions the chapter sequence into sections. Every bucket is
// present in the result, possibly empty, and chapter order within a bucket
// preserves the original sequence order.
func (g *Grouper) Group(chapters []manual.Chapter) map[manual.SectionID]*manual.Section {
	sections := make(map[manual.SectionID]*manual.Section, len(g.cfg.Groups)+1)
	for _, grp := range g.cfg.Groups {
		sections[grp.ID] = &manual.Section{ID: grp.ID, Title: grp.Title}
	}
	sections[g.cfg.DefaultID] = &manual.Section{ID: g.cfg.DefaultID, Title: g.cfg.DefaultTitle}

	for _, ch := range chapters {
		id := g.ClassifyTitle(ch.Title)
		sections[id].Chapters = append(sections[id].Chapters, ch)
	}
	return sections
}

// ClassifyTitle returns the section bucket for a chapter title.
func (g *Grouper) ClassifyTitle(title string) manual.SectionID {
	lower := strings.ToLower(title)
	for _, grp := range g.cfg.Groups {
		for _, kw := range grp.Keywords {
			if strings.Contains(lower, kw) {
				return grp.ID
			}
		}
	}
	return g.cfg.DefaultID
}
