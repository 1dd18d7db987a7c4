package headscan

// InsertPosition selects where an auto-inserted TOC is placed in content.
type InsertPosition string

// Supported TOC insertion positions.
const (
	InsertBeforeFirstHeading  InsertPosition = "before_first_heading"
	InsertAfterFirstParagraph InsertPosition = "after_first_paragraph"
	InsertTop                 InsertPosition = "top"
)

// Config holds the analysis and TOC options for one request. It is a plain
// immutable value threaded explicitly into every core call; nothing in the
// package reads ambient configuration.
type Config struct {
	// HeadingLevels is the set of heading tags to extract (subset of h1-h6).
	HeadingLevels []string `json:"headingLevels"`

	// MinLength and MaxLength bound recommended heading text length in
	// characters (runes, not bytes).
	MinLength int `json:"minLength"`
	MaxLength int `json:"maxLength"`

	// DuplicateThreshold is the similarity percentage at or above which two
	// texts within one document are flagged as duplicates.
	DuplicateThreshold int `json:"duplicateThreshold"`

	// CannibalizationThreshold is the similarity percentage at or above
	// which a text matches another document's title or heading.
	CannibalizationThreshold int `json:"cannibalizationThreshold"`

	// DocTypes restricts which document types participate in
	// cannibalization checks.
	DocTypes []string `json:"docTypes"`

	// CorpusLimit caps how many published documents one cannibalization
	// check compares against.
	CorpusLimit int `json:"corpusLimit"`

	// TOC options.
	TOCTitle          string         `json:"tocTitle"`
	TOCMinHeadings    int            `json:"tocMinHeadings"`
	TOCNumbering      bool           `json:"tocNumbering"`
	TOCShowToggle     bool           `json:"tocShowToggle"`
	TOCDefaultOpen    bool           `json:"tocDefaultOpen"`
	TOCPreviewCount   int            `json:"tocPreviewCount"`
	TOCInsertPosition InsertPosition `json:"tocInsertPosition"`
}

// DefaultConfig returns the default analysis and TOC options.
func DefaultConfig() Config {
	return Config{
		HeadingLevels:            []string{"h2", "h3", "h4", "h5", "h6"},
		MinLength:                5,
		MaxLength:                60,
		DuplicateThreshold:       80,
		CannibalizationThreshold: 80,
		DocTypes:                 []string{"post", "page"},
		CorpusLimit:              500,
		TOCTitle:                 "Table of Contents",
		TOCMinHeadings:           2,
		TOCNumbering:             true,
		TOCShowToggle:            true,
		TOCDefaultOpen:           true,
		TOCPreviewCount:          3,
		TOCInsertPosition:        InsertBeforeFirstHeading,
	}
}

// Normalize returns a copy of the config with out-of-range values clamped
// to usable ones. Validation belongs to the configuration boundary; the
// core clamps defensively instead of failing mid-analysis.
func (c Config) Normalize() Config {
	if len(c.HeadingLevels) == 0 {
		c.HeadingLevels = []string{"h2", "h3", "h4", "h5", "h6"}
	}
	if c.MinLength < 1 {
		c.MinLength = 1
	}
	if c.MaxLength < c.MinLength {
		c.MaxLength = c.MinLength
	}
	c.DuplicateThreshold = clampPercent(c.DuplicateThreshold)
	c.CannibalizationThreshold = clampPercent(c.CannibalizationThreshold)
	if c.CorpusLimit < 1 {
		c.CorpusLimit = 500
	}
	if c.TOCMinHeadings < 1 {
		c.TOCMinHeadings = 1
	}
	if c.TOCPreviewCount < 0 {
		c.TOCPreviewCount = 0
	}
	switch c.TOCInsertPosition {
	case InsertBeforeFirstHeading, InsertAfterFirstParagraph, InsertTop:
	default:
		c.TOCInsertPosition = InsertBeforeFirstHeading
	}
	return c
}

func clampPercent(v int) int {
	if v < 1 {
		return 1
	}
	if v > 100 {
		return 100
	}
	return v
}
