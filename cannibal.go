package headscan

import "context"

// Text origin types for cannibalization matches.
const (
	TextTypeTitle    = "title"
	TextTypeHeadline = "headline"
)

// CannibalizationMatch reports that a text from the current document is
// similar to a title or heading of another published document.
type CannibalizationMatch struct {
	CurrentText  string `json:"currentText"`
	CurrentType  string `json:"currentType"`
	MatchedText  string `json:"matchedText"`
	MatchedType  string `json:"matchedType"`
	MatchedTag   string `json:"matchedTag,omitempty"`
	MatchedDocID string `json:"matchedDocId"`
	MatchedTitle string `json:"matchedTitle"`
	EditLink     string `json:"editLink,omitempty"`
	Similarity   int    `json:"similarity"`
	Message      string `json:"message"`
}

// CannibalizationChecker compares a document's title and heading texts
// against the published corpus and returns matches ranked by similarity
// descending. Ties keep discovery order.
type CannibalizationChecker interface {
	// Check accepts already-extracted heading texts rather than records,
	// so callers are free to source them from any extraction pass.
	// excludeID removes the current document from the corpus.
	Check(ctx context.Context, headlineTexts []string, title, excludeID string, cfg Config) ([]CannibalizationMatch, error)
}
