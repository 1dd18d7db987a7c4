package main

import (
	"fmt"
	"sync"

	"github.com/TsuyoshiKashiwazaki/headscan"
	"github.com/TsuyoshiKashiwazaki/headscan/bloom"
	"github.com/TsuyoshiKashiwazaki/headscan/sqlite"
	"golang.org/x/sync/errgroup"
)

// Run executes the ingest command.
func (c *IngestCmd) Run(deps *Dependencies) error {
	concurrency := c.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	// Seed the dedup filter with content hashes already in the corpus so
	// re-running ingest on the same files is a no-op.
	seen := bloom.NewFilter(10000, 0.01)
	existing, err := deps.Documents.FindPublishedDocuments(deps.Ctx, headscan.DocumentFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", headscan.ErrorMessage(err))
		return err
	}
	for _, doc := range existing {
		seen.Add(doc.ContentHash)
	}

	// mu guards the dedup filter, the counters, and the output writers.
	var mu sync.Mutex
	var stored, skipped, failed int

	g, gctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(concurrency)

	for _, path := range c.Paths {
		g.Go(func() error {
			content, err := loadContent(path, isMarkdownPath(path), deps.Converter)
			if err != nil {
				mu.Lock()
				failed++
				fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", path, err)
				mu.Unlock()
				return nil
			}

			hash := sqlite.HashContent(content)

			mu.Lock()
			duplicate := seen.Test(hash)
			if !duplicate {
				seen.Add(hash)
			} else {
				skipped++
				fmt.Fprintf(deps.Stdout, "  skip %s: already in corpus\n", path)
			}
			mu.Unlock()
			if duplicate {
				return nil
			}

			title, err := deps.Titles.ExtractTitle(content)
			if err != nil || title == "" {
				title = path
			}

			doc := &headscan.Document{
				Title:   title,
				Content: content,
				Type:    c.Type,
				Status:  c.Status,
			}
			if err := deps.Documents.CreateDocument(gctx, doc); err != nil {
				mu.Lock()
				failed++
				fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", path, headscan.ErrorMessage(err))
				mu.Unlock()
				return nil
			}

			mu.Lock()
			stored++
			fmt.Fprintf(deps.Stdout, "  %s  %s\n", doc.ID, title)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Stored %d documents (%d skipped, %d failed)\n", stored, skipped, failed)
	if failed > 0 {
		return headscan.Errorf(headscan.EINTERNAL, "%d of %d files failed", failed, len(c.Paths))
	}
	return nil
}
