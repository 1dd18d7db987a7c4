package sqlite_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/TsuyoshiKashiwazaki/headscan"
	"github.com/TsuyoshiKashiwazaki/headscan/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentService_CreateDocument(t *testing.T) {
	t.Parallel()

	t.Run("creates document with generated ID and hash", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		doc := &headscan.Document{
			Title:   "Page 1",
			Content: "<h2>Section</h2><p>This is the content.</p>",
			Type:    "post",
		}

		err := svc.CreateDocument(ctx, doc)
		require.NoError(t, err)

		assert.NotEmpty(t, doc.ID, "ID should be generated")
		assert.NotEmpty(t, doc.ContentHash, "ContentHash should be generated")
		assert.Equal(t, headscan.StatusPublished, doc.Status, "status should default to published")
		assert.False(t, doc.PublishedAt.IsZero(), "PublishedAt should be set")
	})

	t.Run("returns error for invalid document", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)

		err := svc.CreateDocument(context.Background(), &headscan.Document{})

		require.Error(t, err)
		assert.Equal(t, headscan.EINVALID, headscan.ErrorCode(err))
	})
}

func TestDocumentService_FindDocumentByID(t *testing.T) {
	t.Parallel()

	t.Run("finds a created document", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		doc := &headscan.Document{Title: "Find Me", Content: "<h2>Hi</h2>", Type: "post"}
		require.NoError(t, svc.CreateDocument(ctx, doc))

		found, err := svc.FindDocumentByID(ctx, doc.ID)
		require.NoError(t, err)
		assert.Equal(t, "Find Me", found.Title)
		assert.Equal(t, "<h2>Hi</h2>", found.Content)
	})

	t.Run("returns ENOTFOUND for missing id", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)

		_, err := svc.FindDocumentByID(context.Background(), "missing")

		require.Error(t, err)
		assert.Equal(t, headscan.ENOTFOUND, headscan.ErrorCode(err))
	})
}

func TestDocumentService_FindPublishedDocuments(t *testing.T) {
	t.Parallel()

	t.Run("excludes the given document", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		current := &headscan.Document{Title: "Current", Type: "post"}
		other := &headscan.Document{Title: "Other", Type: "post"}
		require.NoError(t, svc.CreateDocument(ctx, current))
		require.NoError(t, svc.CreateDocument(ctx, other))

		docs, err := svc.FindPublishedDocuments(ctx, headscan.DocumentFilter{ExcludeID: current.ID})
		require.NoError(t, err)

		require.Len(t, docs, 1)
		assert.Equal(t, other.ID, docs[0].ID)
	})

	t.Run("omits drafts", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		draft := &headscan.Document{Title: "Draft", Type: "post", Status: headscan.StatusDraft}
		published := &headscan.Document{Title: "Published", Type: "post"}
		require.NoError(t, svc.CreateDocument(ctx, draft))
		require.NoError(t, svc.CreateDocument(ctx, published))

		docs, err := svc.FindPublishedDocuments(ctx, headscan.DocumentFilter{})
		require.NoError(t, err)

		require.Len(t, docs, 1)
		assert.Equal(t, "Published", docs[0].Title)
	})

	t.Run("filters by document type", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateDocument(ctx, &headscan.Document{Title: "A", Type: "post"}))
		require.NoError(t, svc.CreateDocument(ctx, &headscan.Document{Title: "B", Type: "page"}))
		require.NoError(t, svc.CreateDocument(ctx, &headscan.Document{Title: "C", Type: "recipe"}))

		docs, err := svc.FindPublishedDocuments(ctx, headscan.DocumentFilter{Types: []string{"post", "page"}})
		require.NoError(t, err)

		assert.Len(t, docs, 2)
	})

	t.Run("orders chronologically across time zones", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		// 23:00+09:00 is 14:00 UTC; stored with its offset it would sort
		// after the 20:00 UTC row.
		tokyo := time.FixedZone("JST", 9*60*60)
		earlier := &headscan.Document{
			Title:       "Earlier",
			Type:        "post",
			PublishedAt: time.Date(2026, 1, 1, 23, 0, 0, 0, tokyo),
		}
		later := &headscan.Document{
			Title:       "Later",
			Type:        "post",
			PublishedAt: time.Date(2026, 1, 1, 20, 0, 0, 0, time.UTC),
		}
		require.NoError(t, svc.CreateDocument(ctx, earlier))
		require.NoError(t, svc.CreateDocument(ctx, later))

		docs, err := svc.FindPublishedDocuments(ctx, headscan.DocumentFilter{})
		require.NoError(t, err)

		require.Len(t, docs, 2)
		assert.Equal(t, "Later", docs[0].Title)
		assert.Equal(t, "Earlier", docs[1].Title)
		assert.True(t, docs[1].PublishedAt.Equal(time.Date(2026, 1, 1, 14, 0, 0, 0, time.UTC)))
	})

	t.Run("orders most recently published first and respects the limit", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		for i := 0; i < 5; i++ {
			doc := &headscan.Document{
				Title:       fmt.Sprintf("Doc %d", i),
				Type:        "post",
				PublishedAt: base.Add(time.Duration(i) * time.Hour),
			}
			require.NoError(t, svc.CreateDocument(ctx, doc))
		}

		docs, err := svc.FindPublishedDocuments(ctx, headscan.DocumentFilter{Limit: 3})
		require.NoError(t, err)

		require.Len(t, docs, 3)
		assert.Equal(t, "Doc 4", docs[0].Title)
		assert.Equal(t, "Doc 3", docs[1].Title)
		assert.Equal(t, "Doc 2", docs[2].Title)
	})
}

func TestDocumentService_DeleteDocument(t *testing.T) {
	t.Parallel()

	t.Run("deletes a document", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		doc := &headscan.Document{Title: "Doomed", Type: "post"}
		require.NoError(t, svc.CreateDocument(ctx, doc))

		require.NoError(t, svc.DeleteDocument(ctx, doc.ID))

		_, err := svc.FindDocumentByID(ctx, doc.ID)
		assert.Equal(t, headscan.ENOTFOUND, headscan.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for missing id", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)

		err := svc.DeleteDocument(context.Background(), "missing")

		assert.Equal(t, headscan.ENOTFOUND, headscan.ErrorCode(err))
	})
}

func TestHashContent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, sqlite.HashContent("same"), sqlite.HashContent("same"))
	assert.NotEqual(t, sqlite.HashContent("same"), sqlite.HashContent("different"))
	assert.Len(t, sqlite.HashContent(""), 16)
}
