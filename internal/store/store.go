// Package store persists parsed manuals in SQLite.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/dgallion1/manualkb/internal/manual"
)

// ErrNotFound is returned when a document does not exist.
var ErrNotFound = errors.New("document not found")

// DocumentMeta is the registry row for a parsed manual.
type DocumentMeta struct {
	DocID       string    `json:"doc_id"`
	Filename    string    `json:"filename"`
	Model       string    `json:"model"`
	ManualType  string    `json:"manual_type"`
	TotalPages  int       `json:"total_pages"`
	ContentHash string    `json:"content_hash"`
	CreatedAt   time.Time `json:"created_at"`
}

// Store wraps the SQLite database for all manualkb persistence.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) a SQLite database at the given path and applies
// the schema.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on&_busy_timeout=30000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveDocument stores a parsed manual, replacing any prior version with the
// same doc ID.
func (s *Store) SaveDocument(ctx context.Context, meta DocumentMeta, doc *manual.Document) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Cascade removes chapters, TOC entries and commands of the old version.
	if _, err := tx.ExecContext(ctx, `DELETE FROM documents WHERE doc_id = ?`, meta.DocID); err != nil {
		return fmt.Errorf("delete prior document: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO documents (doc_id, filename, model, manual_type, total_pages, content_hash, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		meta.DocID, meta.Filename, meta.Model, meta.ManualType, doc.TotalPages, meta.ContentHash, meta.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	rowID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("document row id: %w", err)
	}

	sections := doc.ChapterSections()
	for i, ch := range doc.Chapters {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO chapters (document_id, position, title, start_page, content, section_id)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			rowID, i, ch.Title, ch.StartPage, ch.Content, string(sections[i])); err != nil {
			return fmt.Errorf("insert chapter %d: %w", i, err)
		}
	}
	for i, entry := range doc.TOC {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO toc_entries (document_id, position, title, page) VALUES (?, ?, ?, ?)`,
			rowID, i, entry.Title, entry.Page); err != nil {
			return fmt.Errorf("insert toc entry %d: %w", i, err)
		}
	}
	for i, cmd := range doc.Commands {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO command_refs (document_id, position, name, raw, description) VALUES (?, ?, ?, ?, ?)`,
			rowID, i, cmd.Name, cmd.Raw, cmd.Description); err != nil {
			return fmt.Errorf("insert command %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// GetDocument loads a parsed manual by doc ID, rebuilding the section
// partition in stored chapter order.
func (s *Store) GetDocument(ctx context.Context, docID string) (*DocumentMeta, *manual.Document, error) {
	var meta DocumentMeta
	var rowID int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id, doc_id, filename, model, manual_type, total_pages, content_hash, created_at
		 FROM documents WHERE doc_id = ?`, docID).
		Scan(&rowID, &meta.DocID, &meta.Filename, &meta.Model, &meta.ManualType, &meta.TotalPages, &meta.ContentHash, &meta.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("query document: %w", err)
	}

	doc := &manual.Document{
		Model:      manual.Model(meta.Model),
		ManualType: meta.ManualType,
		TotalPages: meta.TotalPages,
		Sections:   make(map[manual.SectionID]*manual.Section, len(manual.SectionOrder)),
	}
	for _, id := range manual.SectionOrder {
		doc.Sections[id] = &manual.Section{ID: id, Title: manual.SectionTitle(id)}
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT title, start_page, content, section_id FROM chapters
		 WHERE document_id = ? ORDER BY position`, rowID)
	if err != nil {
		return nil, nil, fmt.Errorf("query chapters: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var ch manual.Chapter
		var sectionID string
		if err := rows.Scan(&ch.Title, &ch.StartPage, &ch.Content, &sectionID); err != nil {
			return nil, nil, fmt.Errorf("scan chapter: %w", err)
		}
		doc.Chapters = append(doc.Chapters, ch)
		id := manual.SectionID(sectionID)
		if _, ok := doc.Sections[id]; !ok {
			doc.Sections[id] = &manual.Section{ID: id, Title: manual.SectionTitle(id)}
		}
		doc.Sections[id].Chapters = append(doc.Sections[id].Chapters, ch)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate chapters: %w", err)
	}

	tocRows, err := s.db.QueryContext(ctx,
		`SELECT title, page FROM toc_entries WHERE document_id = ? ORDER BY position`, rowID)
	if err != nil {
		return nil, nil, fmt.Errorf("query toc: %w", err)
	}
	defer tocRows.Close()
	for tocRows.Next() {
		var entry manual.TOCEntry
		if err := tocRows.Scan(&entry.Title, &entry.Page); err != nil {
			return nil, nil, fmt.Errorf("scan toc entry: %w", err)
		}
		doc.TOC = append(doc.TOC, entry)
	}
	if err := tocRows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate toc: %w", err)
	}

	cmdRows, err := s.db.QueryContext(ctx,
		`SELECT name, raw, description FROM command_refs WHERE document_id = ? ORDER BY position`, rowID)
	if err != nil {
		return nil, nil, fmt.Errorf("query commands: %w", err)
	}
	defer cmdRows.Close()
	for cmdRows.Next() {
		var cmd manual.CommandRef
		if err := cmdRows.Scan(&cmd.Name, &cmd.Raw, &cmd.Description); err != nil {
			return nil, nil, fmt.Errorf("scan command: %w", err)
		}
		doc.Commands = append(doc.Commands, cmd)
	}
	if err := cmdRows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate commands: %w", err)
	}

	return &meta, doc, nil
}

// ListDocuments returns registry rows for all stored manuals, newest first.
func (s *Store) ListDocuments(ctx context.Context) ([]DocumentMeta, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT doc_id, filename, model, manual_type, total_pages, content_hash, created_at
		 FROM documents ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}
	defer rows.Close()

	var docs []DocumentMeta
	for rows.Next() {
		var meta DocumentMeta
		if err := rows.Scan(&meta.DocID, &meta.Filename, &meta.Model, &meta.ManualType, &meta.TotalPages, &meta.ContentHash, &meta.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, meta)
	}
	return docs, rows.Err()
}

// DeleteDocument removes a manual and all its dependent rows.
func (s *Store) DeleteDocument(ctx context.Context, docID string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE doc_id = ?`, docID)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// FindByHash returns the doc ID of a stored manual with the given content
// hash, or empty string if none exists.
func (s *Store) FindByHash(ctx context.Context, hash string) (string, error) {
	var docID string
	err := s.db.QueryRowContext(ctx,
		`SELECT doc_id FROM documents WHERE content_hash = ? LIMIT 1`, hash).Scan(&docID)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("query by hash: %w", err)
	}
	return docID, nil
}
