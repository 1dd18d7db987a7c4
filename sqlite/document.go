package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/TsuyoshiKashiwazaki/headscan"
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ headscan.DocumentService = (*DocumentService)(nil)

// DocumentService implements headscan.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// HashContent computes xxHash of content and returns a hex string.
func HashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// CreateDocument creates a new document. A missing status defaults to
// published and a zero PublishedAt defaults to now.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *headscan.Document) error {
	if doc.Status == "" {
		doc.Status = headscan.StatusPublished
	}
	if err := doc.Validate(); err != nil {
		return err
	}

	doc.ID = uuid.New().String()
	if doc.PublishedAt.IsZero() {
		doc.PublishedAt = time.Now()
	}
	// Stored timestamps are compared lexicographically by ORDER BY, so they
	// must all share the UTC offset.
	doc.PublishedAt = doc.PublishedAt.UTC()
	doc.ContentHash = HashContent(doc.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, title, content, doc_type, status, edit_link, content_hash, published_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.Title, doc.Content, doc.Type, doc.Status, doc.EditLink, doc.ContentHash,
		doc.PublishedAt.Format(time.RFC3339))

	return err
}

// FindDocumentByID retrieves a document by ID.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*headscan.Document, error) {
	var doc headscan.Document
	var publishedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, content, doc_type, status, edit_link, content_hash, published_at
		FROM documents
		WHERE id = ?
	`, id).Scan(&doc.ID, &doc.Title, &doc.Content, &doc.Type, &doc.Status,
		&doc.EditLink, &doc.ContentHash, &publishedAt)

	if err == sql.ErrNoRows {
		return nil, headscan.Errorf(headscan.ENOTFOUND, "document not found")
	}
	if err != nil {
		return nil, err
	}

	doc.PublishedAt, err = parseRFC3339(publishedAt, "published_at")
	if err != nil {
		return nil, err
	}

	return &doc, nil
}

// FindPublishedDocuments retrieves published documents matching the
// filter, most recently published first.
func (s *DocumentService) FindPublishedDocuments(ctx context.Context, filter headscan.DocumentFilter) ([]*headscan.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`
		SELECT id, title, content, doc_type, status, edit_link, content_hash, published_at
		FROM documents
		WHERE status = ?
	`)
	args = append(args, headscan.StatusPublished)

	if filter.ExcludeID != "" {
		query.WriteString(" AND id != ?")
		args = append(args, filter.ExcludeID)
	}
	if len(filter.Types) > 0 {
		query.WriteString(" AND doc_type IN (?" + strings.Repeat(", ?", len(filter.Types)-1) + ")")
		for _, t := range filter.Types {
			args = append(args, t)
		}
	}

	query.WriteString(" ORDER BY published_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*headscan.Document
	for rows.Next() {
		var doc headscan.Document
		var publishedAt string
		if err := rows.Scan(&doc.ID, &doc.Title, &doc.Content, &doc.Type, &doc.Status,
			&doc.EditLink, &doc.ContentHash, &publishedAt); err != nil {
			return nil, err
		}
		doc.PublishedAt, err = parseRFC3339(publishedAt, "published_at")
		if err != nil {
			return nil, err
		}
		docs = append(docs, &doc)
	}

	return docs, rows.Err()
}

// DeleteDocument permanently removes a document.
func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return headscan.Errorf(headscan.ENOTFOUND, "document not found")
	}

	return nil
}

// parseRFC3339 parses an RFC3339 formatted timestamp string.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}
