// Package mock provides mock implementations of headscan interfaces for
// testing.
package mock

import (
	"context"

	"github.com/TsuyoshiKashiwazaki/headscan"
)

var _ headscan.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of headscan.DocumentService.
type DocumentService struct {
	CreateDocumentFn         func(ctx context.Context, doc *headscan.Document) error
	FindDocumentByIDFn       func(ctx context.Context, id string) (*headscan.Document, error)
	FindPublishedDocumentsFn func(ctx context.Context, filter headscan.DocumentFilter) ([]*headscan.Document, error)
	DeleteDocumentFn         func(ctx context.Context, id string) error
}

func (s *DocumentService) CreateDocument(ctx context.Context, doc *headscan.Document) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*headscan.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *DocumentService) FindPublishedDocuments(ctx context.Context, filter headscan.DocumentFilter) ([]*headscan.Document, error) {
	return s.FindPublishedDocumentsFn(ctx, filter)
}

func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	return s.DeleteDocumentFn(ctx, id)
}
