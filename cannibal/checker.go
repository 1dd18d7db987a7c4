// Package cannibal detects keyword cannibalization: titles and headings of
// the current document that are near-duplicates of titles or headings in
// other published documents.
package cannibal

import (
	"context"
	"fmt"
	"sort"

	"github.com/TsuyoshiKashiwazaki/headscan"
)

// Compile-time interface verification.
var _ headscan.CannibalizationChecker = (*Checker)(nil)

// Checker compares the current document's texts against the published
// corpus. The corpus fetch is bounded by cfg.CorpusLimit, so each check is
// a single finite sweep with no state carried between calls.
type Checker struct {
	Documents headscan.DocumentService
}

// NewChecker creates a Checker backed by the given document service.
func NewChecker(documents headscan.DocumentService) *Checker {
	return &Checker{Documents: documents}
}

// currentText is one comparison source from the document under analysis.
type currentText struct {
	typ  string
	text string
}

// Check compares title and headlineTexts against every published
// document's title and extracted headings, emitting a match for each pair
// at or above cfg.CannibalizationThreshold. Matches are sorted by
// similarity descending; equal similarities keep discovery order.
func (c *Checker) Check(ctx context.Context, headlineTexts []string, title, excludeID string, cfg headscan.Config) ([]headscan.CannibalizationMatch, error) {
	cfg = cfg.Normalize()

	var current []currentText
	if title != "" {
		current = append(current, currentText{typ: headscan.TextTypeTitle, text: title})
	}
	for _, text := range headlineTexts {
		if text != "" {
			current = append(current, currentText{typ: headscan.TextTypeHeadline, text: text})
		}
	}
	if len(current) == 0 {
		return nil, nil
	}

	docs, err := c.Documents.FindPublishedDocuments(ctx, headscan.DocumentFilter{
		ExcludeID: excludeID,
		Types:     cfg.DocTypes,
		Limit:     cfg.CorpusLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch published documents: %w", err)
	}

	var matches []headscan.CannibalizationMatch
	for _, doc := range docs {
		headings := headscan.ExtractHeadings(doc.Content, cfg.HeadingLevels)

		for _, cur := range current {
			if similarity := headscan.Similarity(cur.text, doc.Title); similarity >= cfg.CannibalizationThreshold {
				matches = append(matches, headscan.CannibalizationMatch{
					CurrentText:  cur.text,
					CurrentType:  cur.typ,
					MatchedText:  doc.Title,
					MatchedType:  headscan.TextTypeTitle,
					MatchedDocID: doc.ID,
					MatchedTitle: doc.Title,
					EditLink:     doc.EditLink,
					Similarity:   similarity,
					Message: fmt.Sprintf("%q is similar to the title of %q (similarity: %d%%)",
						truncate(cur.text, 25), truncate(doc.Title, 25), similarity),
				})
			}

			for _, h := range headings {
				similarity := headscan.Similarity(cur.text, h.Text)
				if similarity < cfg.CannibalizationThreshold {
					continue
				}
				matches = append(matches, headscan.CannibalizationMatch{
					CurrentText:  cur.text,
					CurrentType:  cur.typ,
					MatchedText:  h.Text,
					MatchedType:  headscan.TextTypeHeadline,
					MatchedTag:   h.Tag,
					MatchedDocID: doc.ID,
					MatchedTitle: doc.Title,
					EditLink:     doc.EditLink,
					Similarity:   similarity,
					Message: fmt.Sprintf("%q is similar to the heading %q in %q (similarity: %d%%)",
						truncate(cur.text, 20), truncate(h.Text, 20), truncate(doc.Title, 20), similarity),
				})
			}
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})

	return matches, nil
}

// truncate shortens s to at most n characters, appending an ellipsis when
// anything was cut.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
