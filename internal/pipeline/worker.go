package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dgallion1/manualkb/internal/commands"
	"github.com/dgallion1/manualkb/internal/ingest"
	"github.com/dgallion1/manualkb/internal/kb"
	"github.com/dgallion1/manualkb/internal/manual"
	"github.com/dgallion1/manualkb/internal/segment"
	"github.com/dgallion1/manualkb/internal/store"
)

// Worker processes a single manual ingestion job.
type Worker struct {
	segmenter *segment.Segmenter
	extractor *commands.Extractor
	store     *store.Store
	kb        *kb.Writer
	log       *slog.Logger

	pdfFallback bool
}

func NewWorker(st *store.Store, kbw *kb.Writer, log *slog.Logger, pdfFallback bool) *Worker {
	return &Worker{
		segmenter:   segment.New(),
		extractor:   commands.NewExtractor(commands.DefaultConfig()),
		store:       st,
		kb:          kbw,
		log:         log,
		pdfFallback: pdfFallback,
	}
}

// Process runs the full ingest pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "doc_id", job.DocID, "filename", job.Filename)

	// Phase 1: Parse into pages.
	job.SetStatus(StatusParsing, "parsing")
	ing, err := ingest.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	if pdf, ok := ing.(*ingest.PDFIngestor); ok {
		pdf.FallbackPdftotext = w.pdfFallback
	}

	pages, err := ing.Pages(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("parse failed", "error", err)
		job.AddError(fmt.Sprintf("parse: %s", err))
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	log.Info("parsed manual", "pages", len(pages), "nonblank_pages", nonBlankPages(pages))

	// Dedup check against stored manuals.
	job.ContentHash = ContentHashHex([]byte(flattenPages(pages)))
	if !job.force {
		existing, err := w.store.FindByHash(ctx, job.ContentHash)
		if err != nil {
			log.Warn("dedup check failed, proceeding", "error", err)
		} else if existing != "" {
			log.Info("duplicate manual, skipping", "existing_doc_id", existing)
			job.SetStatus(StatusDupSkipped, "dedup")
			return
		}
	}

	// Phase 2: Segment into chapters, sections and TOC.
	job.SetStatus(StatusSegmenting, "segmenting")
	doc := w.segmenter.Segment(pages)
	doc.Model = manual.DetectModel(job.Filename)
	doc.ManualType = "owners"
	doc.Commands = w.extractor.Extract(pages)
	job.SetModel(string(doc.Model))
	job.SetCounts(doc.TotalPages, len(doc.Chapters), len(doc.TOC), len(doc.Commands))
	log.Info("segmented manual",
		"model", doc.Model,
		"chapters", len(doc.Chapters),
		"toc_entries", len(doc.TOC),
		"commands", len(doc.Commands),
	)

	hadErrors := false

	// Phase 3: Persist.
	job.SetStatus(StatusStoring, "storing")
	meta := store.DocumentMeta{
		DocID:       job.DocID,
		Filename:    job.Filename,
		Model:       string(doc.Model),
		ManualType:  doc.ManualType,
		ContentHash: job.ContentHash,
		CreatedAt:   job.CreatedAt,
	}
	if err := w.store.SaveDocument(ctx, meta, doc); err != nil {
		log.Error("store failed", "error", err)
		job.AddError(fmt.Sprintf("store: %s", err))
		job.SetStatus(StatusFailed, "storing")
		return
	}

	// Phase 4: Render knowledge-base files.
	job.SetStatus(StatusRendering, "rendering")
	written, err := w.kb.Write(doc)
	job.SetFilesWritten(len(written))
	if err != nil {
		log.Error("render failed", "error", err, "written", len(written))
		job.AddError(fmt.Sprintf("render: %s", err))
		hadErrors = true
	}
	log.Info("rendered knowledge base", "files", len(written))

	if hadErrors {
		job.SetStatus(StatusPartial, "done")
	} else {
		job.SetStatus(StatusCompleted, "done")
	}
}

// flattenPages joins page text for content hashing.
func flattenPages(pages []manual.Page) string {
	var sb strings.Builder
	for _, p := range pages {
		if sb.Len() > 0 {
			sb.WriteString("\f")
		}
		sb.WriteString(p.Text)
	}
	return sb.String()
}

// nonBlankPages counts pages that carry text. Logging only.
func nonBlankPages(pages []manual.Page) int {
	n := 0
	for _, p := range pages {
		if strings.TrimSpace(p.Text) != "" {
			n++
		}
	}
	return n
}
