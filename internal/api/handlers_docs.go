package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dgallion1/manualkb/internal/manual"
	"github.com/dgallion1/manualkb/internal/store"
	"github.com/go-chi/chi/v5"
)

// cachedDocument pairs registry metadata with the full parsed document.
type cachedDocument struct {
	Meta *store.DocumentMeta
	Doc  *manual.Document
}

// getDocument loads a document through the read cache.
func (s *Server) getDocument(ctx context.Context, docID string) (*cachedDocument, error) {
	if v, ok := s.docCache.Get(docID); ok {
		return v.(*cachedDocument), nil
	}
	meta, doc, err := s.store.GetDocument(ctx, docID)
	if err != nil {
		return nil, err
	}
	cd := &cachedDocument{Meta: meta, Doc: doc}
	s.docCache.SetDefault(docID, cd)
	return cd, nil
}

// handleListDocuments lists all stored manuals, newest first.
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	metas, err := s.store.ListDocuments(r.Context())
	if err != nil {
		jsonError(w, "failed to list documents: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if metas == nil {
		metas = []store.DocumentMeta{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"documents": metas})
}

// handleGetDocument returns the full parsed document.
func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")
	cd, err := s.getDocument(r.Context(), docID)
	if err != nil {
		docError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"meta":     cd.Meta,
		"document": cd.Doc,
	})
}

// handleGetTOC returns just the published table of contents.
func (s *Server) handleGetTOC(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")
	cd, err := s.getDocument(r.Context(), docID)
	if err != nil {
		docError(w, err)
		return
	}
	toc := cd.Doc.TOC
	if toc == nil {
		toc = []manual.TOCEntry{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"doc_id": docID,
		"toc":    toc,
	})
}

// handleGetSection returns one of the six fixed sections.
func (s *Server) handleGetSection(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")
	sectionID := manual.SectionID(chi.URLParam(r, "sectionID"))

	cd, err := s.getDocument(r.Context(), docID)
	if err != nil {
		docError(w, err)
		return
	}
	section, ok := cd.Doc.Sections[sectionID]
	if !ok {
		jsonError(w, "unknown section: "+string(sectionID), http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"doc_id":  docID,
		"section": section,
	})
}

// handleGetCommands returns the control commands referenced by the manual.
func (s *Server) handleGetCommands(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")
	cd, err := s.getDocument(r.Context(), docID)
	if err != nil {
		docError(w, err)
		return
	}
	commands := cd.Doc.Commands
	if commands == nil {
		commands = []manual.CommandRef{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"doc_id":   docID,
		"commands": commands,
	})
}

// handleDeleteDocument removes a document and its derived rows.
func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")
	if err := s.store.DeleteDocument(r.Context(), docID); err != nil {
		docError(w, err)
		return
	}
	s.docCache.Delete(docID)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"deleted": docID})
}

func docError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}
	jsonError(w, err.Error(), http.StatusInternalServerError)
}
