package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/dgallion1/manualkb/internal/manual"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "manualkb.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleDocument() *manual.Document {
	chapters := []manual.Chapter{
		{Title: "INTRODUCTION", StartPage: 2, Content: "Welcome.\n"},
		{Title: "Speaker Connections", StartPage: 5, Content: "Use banana plugs.\n"},
		{Title: "VOICING", StartPage: 9, Content: "Presets.\n"},
	}
	doc := &manual.Document{
		Model:      "TDAI-1120",
		ManualType: "owners",
		TotalPages: 40,
		TOC:        []manual.TOCEntry{{Title: "Introduction", Page: 2}},
		Chapters:   chapters,
		Sections:   make(map[manual.SectionID]*manual.Section),
		Commands:   []manual.CommandRef{{Name: "!VOL", Raw: "!VOL(42)", Description: "Sets the volume."}},
	}
	for _, id := range manual.SectionOrder {
		doc.Sections[id] = &manual.Section{ID: id, Title: manual.SectionTitle(id)}
	}
	doc.Sections[manual.SectionIntroduction].Chapters = chapters[0:1]
	doc.Sections[manual.SectionSetup].Chapters = chapters[1:2]
	doc.Sections[manual.SectionFeatures].Chapters = chapters[2:3]
	return doc
}

func sampleMeta() DocumentMeta {
	return DocumentMeta{
		DocID:       "abc123",
		Filename:    "TDAI-1120.pdf",
		Model:       "TDAI-1120",
		ManualType:  "owners",
		ContentHash: "deadbeef",
		CreatedAt:   time.Now(),
	}
}

func TestStore_SaveGetRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.SaveDocument(ctx, sampleMeta(), sampleDocument()); err != nil {
		t.Fatalf("save: %v", err)
	}

	meta, doc, err := s.GetDocument(ctx, "abc123")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if meta.Model != "TDAI-1120" || meta.TotalPages != 40 {
		t.Errorf("unexpected meta: %+v", meta)
	}
	if len(doc.Chapters) != 3 {
		t.Fatalf("expected 3 chapters, got %d", len(doc.Chapters))
	}
	if doc.Chapters[1].Title != "Speaker Connections" || doc.Chapters[1].StartPage != 5 {
		t.Errorf("chapter order lost: %+v", doc.Chapters[1])
	}
	if got := len(doc.Sections[manual.SectionSetup].Chapters); got != 1 {
		t.Errorf("expected 1 setup chapter, got %d", got)
	}
	// All buckets present even when empty.
	for _, id := range manual.SectionOrder {
		if _, ok := doc.Sections[id]; !ok {
			t.Errorf("section %q missing after round trip", id)
		}
	}
	if len(doc.TOC) != 1 || doc.TOC[0].Page != 2 {
		t.Errorf("unexpected toc: %+v", doc.TOC)
	}
	if len(doc.Commands) != 1 || doc.Commands[0].Name != "!VOL" {
		t.Errorf("unexpected commands: %+v", doc.Commands)
	}
}

func TestStore_SaveReplacesPriorVersion(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.SaveDocument(ctx, sampleMeta(), sampleDocument()); err != nil {
		t.Fatalf("first save: %v", err)
	}

	updated := sampleDocument()
	updated.Chapters = updated.Chapters[:1]
	for _, id := range manual.SectionOrder {
		updated.Sections[id].Chapters = nil
	}
	updated.Sections[manual.SectionIntroduction].Chapters = updated.Chapters
	if err := s.SaveDocument(ctx, sampleMeta(), updated); err != nil {
		t.Fatalf("second save: %v", err)
	}

	_, doc, err := s.GetDocument(ctx, "abc123")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(doc.Chapters) != 1 {
		t.Errorf("expected prior chapters replaced, got %d", len(doc.Chapters))
	}
}

func TestStore_ListAndDelete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.SaveDocument(ctx, sampleMeta(), sampleDocument()); err != nil {
		t.Fatalf("save: %v", err)
	}

	docs, err := s.ListDocuments(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != 1 || docs[0].DocID != "abc123" {
		t.Errorf("unexpected list: %+v", docs)
	}

	if err := s.DeleteDocument(ctx, "abc123"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, _, err := s.GetDocument(ctx, "abc123"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := s.DeleteDocument(ctx, "abc123"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound for missing doc, got %v", err)
	}
}

func TestStore_FindByHash(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.SaveDocument(ctx, sampleMeta(), sampleDocument()); err != nil {
		t.Fatalf("save: %v", err)
	}

	docID, err := s.FindByHash(ctx, "deadbeef")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if docID != "abc123" {
		t.Errorf("expected doc id %q, got %q", "abc123", docID)
	}

	docID, err = s.FindByHash(ctx, "unknown")
	if err != nil {
		t.Fatalf("find missing: %v", err)
	}
	if docID != "" {
		t.Errorf("expected empty doc id, got %q", docID)
	}
}
