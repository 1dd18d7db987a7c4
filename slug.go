package headscan

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Slug converts raw heading HTML into a URL-fragment-safe anchor id and
// registers it in used, which callers own and must instantiate fresh per
// logical pass (one TOC build, one id-injection run). Non-Latin letters
// and digits are preserved. An id that would otherwise be empty falls back
// to "heading", and collisions get -2, -3, ... suffixes.
func Slug(raw string, used map[string]bool) string {
	text := CleanText(raw)
	text = whitespaceRe.ReplaceAllString(text, "-")
	text = stripNonSlugRunes(text)
	text = collapseHyphens(text)
	text = strings.Trim(text, "-")
	text = strings.ToLower(text)

	if text == "" {
		text = "heading"
	}

	id := text
	for n := 2; used[id]; n++ {
		id = text + "-" + strconv.Itoa(n)
	}
	used[id] = true

	return id
}

// stripNonSlugRunes removes everything that is not a Unicode letter,
// Unicode digit, or hyphen.
func stripNonSlugRunes(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// collapseHyphens reduces runs of hyphens to a single one.
func collapseHyphens(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	prev := false
	for _, r := range s {
		if r == '-' {
			if prev {
				continue
			}
			prev = true
		} else {
			prev = false
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
