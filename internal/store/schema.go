package store

// schemaSQL is the DDL for all tables, applied on open.
const schemaSQL = `
-- Parsed manual registry with hash-based change detection
CREATE TABLE IF NOT EXISTS documents (
    id INTEGER PRIMARY KEY,
    doc_id TEXT NOT NULL UNIQUE,
    filename TEXT NOT NULL,
    model TEXT NOT NULL,
    manual_type TEXT NOT NULL DEFAULT 'owners',
    total_pages INTEGER NOT NULL,
    content_hash TEXT NOT NULL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_documents_hash ON documents(content_hash);

-- Chapters in discovery order; section_id records the taxonomy bucket so
-- the section partition is reconstructible on read.
CREATE TABLE IF NOT EXISTS chapters (
    id INTEGER PRIMARY KEY,
    document_id INTEGER NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    title TEXT NOT NULL,
    start_page INTEGER NOT NULL,
    content TEXT NOT NULL,
    section_id TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_chapters_document ON chapters(document_id, position);

-- Best-effort table of contents entries
CREATE TABLE IF NOT EXISTS toc_entries (
    id INTEGER PRIMARY KEY,
    document_id INTEGER NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    title TEXT NOT NULL,
    page INTEGER NOT NULL
);

-- Inline control-protocol command references
CREATE TABLE IF NOT EXISTS command_refs (
    id INTEGER PRIMARY KEY,
    document_id INTEGER NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    raw TEXT NOT NULL,
    description TEXT NOT NULL
);
`
