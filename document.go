package headscan

import (
	"context"
	"time"
)

// Document statuses.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Document represents one stored document in the corpus that
// cannibalization checks compare against.
type Document struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	EditLink    string    `json:"editLink"`
	ContentHash string    `json:"contentHash"`
	PublishedAt time.Time `json:"publishedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Title == "" {
		return Errorf(EINVALID, "document title required")
	}
	if d.Type == "" {
		return Errorf(EINVALID, "document type required")
	}
	switch d.Status {
	case StatusDraft, StatusPublished:
		return nil
	default:
		return Errorf(EINVALID, "invalid document status %q", d.Status)
	}
}

// DocumentFilter represents a filter for FindPublishedDocuments.
type DocumentFilter struct {
	// ExcludeID removes one document (typically the one being analyzed)
	// from the result set.
	ExcludeID string `json:"excludeId"`

	// Types restricts results to the given document types. Empty means
	// all types.
	Types []string `json:"types"`

	// Limit caps the result count. Zero means no cap.
	Limit int `json:"limit"`
}

// DocumentService represents a service for managing corpus documents.
type DocumentService interface {
	// CreateDocument creates a new document.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if the document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// FindPublishedDocuments retrieves published documents matching the
	// filter, most recently published first.
	FindPublishedDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// DeleteDocument permanently removes a document.
	// Returns ENOTFOUND if the document does not exist.
	DeleteDocument(ctx context.Context, id string) error
}
