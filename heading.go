package headscan

import (
	"html"
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"
)

// Heading represents one extracted heading in document order.
type Heading struct {
	// Index is the 0-based sequence number among matched headings.
	Index int `json:"index"`

	// Tag is the lowercase tag name (h1-h6).
	Tag string `json:"tag"`

	// Level is the numeric heading level (1-6).
	Level int `json:"level"`

	// Text is the inner content with markup stripped, entities decoded,
	// and surrounding whitespace trimmed.
	Text string `json:"text"`

	// CharCount is the number of characters in Text. Multi-byte
	// characters count as one unit each.
	CharCount int `json:"charCount"`

	// Position is the byte offset in the source where the match begins.
	Position int `json:"position"`
}

var (
	scriptRe = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleRe  = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	tagRe    = regexp.MustCompile(`<[^>]*>`)
)

// ExtractHeadings scans raw HTML for well-formed heading tags within the
// given tag set and returns them in document order. Levels outside h1-h6
// are ignored; an empty content string or empty tag set yields nil.
// Unclosed or improperly nested headings are simply not matched.
func ExtractHeadings(content string, levels []string) []Heading {
	if content == "" {
		return nil
	}

	var headings []Heading
	for i, m := range matchHeadings(content, levels) {
		text := CleanText(m.inner)
		headings = append(headings, Heading{
			Index:     i,
			Tag:       m.tag,
			Level:     m.level,
			Text:      text,
			CharCount: utf8.RuneCountInString(text),
			Position:  m.start,
		})
	}

	return headings
}

var (
	patternMu    sync.Mutex
	patternCache = map[string]*regexp.Regexp{}
)

// headingPattern builds one alternation pattern covering the whole tag
// set, so a single left-to-right scan matches each heading region exactly
// once and a heading nested inside another is never reported on its own.
// Each alternative requires the closing tag to name the same level;
// attributes and newlines inside the content are allowed, and matching is
// non-greedy so sibling headings don't merge. Compiled patterns are cached
// per tag set.
func headingPattern(tags []string) *regexp.Regexp {
	key := strings.Join(tags, ",")
	patternMu.Lock()
	defer patternMu.Unlock()
	if re, ok := patternCache[key]; ok {
		return re
	}
	parts := make([]string, len(tags))
	for i, tag := range tags {
		parts[i] = `<` + tag + `([^>]*)>(.*?)</` + tag + `>`
	}
	re := regexp.MustCompile(`(?is)` + strings.Join(parts, "|"))
	patternCache[key] = re
	return re
}

// CleanText strips markup from a fragment of heading HTML, decodes
// entities, and trims surrounding whitespace. Script and style blocks are
// removed with their contents.
func CleanText(s string) string {
	s = scriptRe.ReplaceAllString(s, "")
	s = styleRe.ReplaceAllString(s, "")
	s = tagRe.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	return strings.TrimSpace(s)
}

// normalizeLevels lowercases the requested tags and drops anything that is
// not h1-h6, preserving first-seen order without duplicates.
func normalizeLevels(levels []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, l := range levels {
		l = strings.ToLower(strings.TrimSpace(l))
		if len(l) != 2 || l[0] != 'h' || l[1] < '1' || l[1] > '6' || seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out
}
