package headscan

// TitleExtractor extracts a document title from a full HTML page.
// Used at ingestion time, where the title lives in page metadata rather
// than in the content fragment the analyzer sees.
type TitleExtractor interface {
	// ExtractTitle returns the page title from <title> or, failing that,
	// the first top-level heading. Returns an empty string when the page
	// has neither.
	ExtractTitle(html string) (string, error)
}
