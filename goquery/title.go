// Package goquery provides CSS-selector-based HTML extraction for
// headscan's ingestion path.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/TsuyoshiKashiwazaki/headscan"
)

// Compile-time interface verification.
var _ headscan.TitleExtractor = (*TitleExtractor)(nil)

// TitleExtractor pulls a document title out of a full HTML page.
// The analysis core only ever sees content fragments; at ingestion time
// the title lives in page metadata, so it is extracted separately here.
type TitleExtractor struct{}

// NewTitleExtractor creates a new TitleExtractor.
func NewTitleExtractor() *TitleExtractor {
	return &TitleExtractor{}
}

// ExtractTitle returns the page's <title> text, falling back to the first
// <h1>. Returns an empty string when the page has neither.
func (e *TitleExtractor) ExtractTitle(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", headscan.Errorf(headscan.EINVALID, "failed to parse HTML: %v", err)
	}

	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return title, nil
	}

	return strings.TrimSpace(doc.Find("h1").First().Text()), nil
}
