package headscan

import (
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"
)

var (
	idAttrRe       = regexp.MustCompile(`(?i)id=["']([^"']+)["']`)
	firstHeadingRe = regexp.MustCompile(`(?i)<h[2-6][^>]*>`)
	closeParaRe    = regexp.MustCompile(`(?i)</p>`)
)

// TOCHeading is one heading prepared for TOC rendering. ID comes from a
// pre-existing id attribute in the source markup when present, otherwise
// from Slug.
type TOCHeading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
	ID    string `json:"id"`
	Index int    `json:"index"`
}

// headingMatch is one raw regex match used by TOC collection and id
// injection.
type headingMatch struct {
	tag   string
	level int
	start int
	end   int
	attrs string
	inner string
}

// matchHeadings finds all well-formed heading matches for the given tag
// set in one scan and returns them in document order. The alternation
// pattern carries two capture groups (attrs, inner) per tag; the pair that
// participated identifies which tag matched.
func matchHeadings(content string, levels []string) []headingMatch {
	tags := normalizeLevels(levels)
	if len(tags) == 0 {
		return nil
	}

	re := headingPattern(tags)
	var matches []headingMatch
	for _, m := range re.FindAllStringSubmatchIndex(content, -1) {
		for i, tag := range tags {
			attrs := 2 * (1 + 2*i)
			if m[attrs] < 0 {
				continue
			}
			matches = append(matches, headingMatch{
				tag:   tag,
				level: int(tag[1] - '0'),
				start: m[0],
				end:   m[1],
				attrs: content[m[attrs]:m[attrs+1]],
				inner: content[m[attrs+2]:m[attrs+3]],
			})
			break
		}
	}
	return matches
}

// CollectTOCHeadings extracts the headings a TOC build renders, assigning
// each a unique anchor id. Ids already present in the markup are reused
// verbatim and registered against the collision set; the set is fresh for
// every call.
func CollectTOCHeadings(content string, levels []string) []TOCHeading {
	if content == "" {
		return nil
	}

	used := make(map[string]bool)
	var headings []TOCHeading

	for i, m := range matchHeadings(content, levels) {
		var id string
		if idm := idAttrRe.FindStringSubmatch(m.attrs); idm != nil {
			id = idm[1]
			used[id] = true
		} else {
			id = Slug(m.inner, used)
		}

		headings = append(headings, TOCHeading{
			Level: m.level,
			Text:  CleanText(m.inner),
			ID:    id,
			Index: i,
		})
	}

	return headings
}

// BuildTOC generates the TOC HTML fragment for content, or an empty string
// when fewer than cfg.TOCMinHeadings headings are present. An empty title
// falls back to cfg.TOCTitle.
func BuildTOC(content, title string, cfg Config) string {
	cfg = cfg.Normalize()

	headings := CollectTOCHeadings(content, cfg.HeadingLevels)
	if len(headings) < cfg.TOCMinHeadings {
		return ""
	}

	if title == "" {
		title = cfg.TOCTitle
	}

	showToggle := cfg.TOCShowToggle
	defaultOpen := cfg.TOCDefaultOpen
	if !showToggle {
		// Without a toggle the list has to start visible.
		defaultOpen = true
	}
	preview := cfg.TOCPreviewCount > 0

	var sb strings.Builder
	openClass := ""
	if defaultOpen {
		openClass = " is-open"
	}
	previewClass := " no-preview"
	if preview {
		previewClass = " has-preview"
	}

	sb.WriteString(`<div class="headscan-toc` + openClass + previewClass + `" data-preview-count="` + strconv.Itoa(cfg.TOCPreviewCount) + `">`)
	sb.WriteString(`<div class="headscan-toc-header"><span class="headscan-toc-title">` + html.EscapeString(title) + `</span></div>`)
	sb.WriteString(`<nav class="headscan-toc-content">`)
	sb.WriteString(BuildTOCList(headings, cfg.TOCNumbering))
	sb.WriteString(`</nav>`)

	if showToggle {
		openText := "Open"
		if preview {
			openText = "Show more"
		}
		sb.WriteString(`<div class="headscan-toc-footer">`)
		sb.WriteString(fmt.Sprintf(`<button type="button" class="headscan-toc-toggle" aria-expanded="%t">`, defaultOpen))
		sb.WriteString(`<span class="toggle-text-close">Close</span>`)
		sb.WriteString(`<span class="toggle-text-open">` + html.EscapeString(openText) + `</span>`)
		sb.WriteString(`</button></div>`)
	}

	sb.WriteString(`</div>`)

	if showToggle {
		sb.WriteString(toggleScript)
	}

	return sb.String()
}

// BuildTOCList renders headings as a nested list mirroring heading depth.
// Level jumps open multiple nested lists in one step and decreases close
// them; malformed hierarchies are tolerated, not normalized. Ordered lists
// with dotted numbering when numbering is enabled, unordered otherwise.
func BuildTOCList(headings []TOCHeading, numbering bool) string {
	if len(headings) == 0 {
		return ""
	}

	listTag := "ul"
	listClass := "headscan-toc-list no-numbering"
	sublistClass := "headscan-toc-sublist no-numbering"
	if numbering {
		listTag = "ol"
		listClass = "headscan-toc-list"
		sublistClass = "headscan-toc-sublist"
	}

	var sb strings.Builder
	sb.WriteString(`<` + listTag + ` class="` + listClass + `">`)

	firstLevel := headings[0].Level
	currentLevel := firstLevel
	var counters [6]int

	for _, h := range headings {
		for h.Level > currentLevel {
			sb.WriteString(`<` + listTag + ` class="` + sublistClass + `">`)
			currentLevel++
		}
		for h.Level < currentLevel {
			sb.WriteString(`</li></` + listTag + `>`)
			counters[currentLevel-1] = 0
			currentLevel--
		}

		counters[h.Level-1]++

		number := ""
		if numbering {
			var parts []string
			for i := firstLevel - 1; i < h.Level; i++ {
				parts = append(parts, strconv.Itoa(counters[i]))
			}
			number = `<span class="toc-number">` + strings.Join(parts, ".") + `</span> `
		}

		sb.WriteString(`<li class="headscan-toc-item level-` + strconv.Itoa(h.Level) + `">`)
		sb.WriteString(`<a href="#` + html.EscapeString(h.ID) + `">` + number + html.EscapeString(h.Text) + `</a>`)
	}

	for currentLevel >= firstLevel {
		sb.WriteString(`</li></` + listTag + `>`)
		currentLevel--
	}

	return sb.String()
}

// toggleScript drives the open/close toggle and the preview-limited item
// visibility. One code path: containers without has-preview simply show
// every item while closed state hides the whole list via CSS.
const toggleScript = `<script>
document.addEventListener("DOMContentLoaded", function(){
	var toc = document.querySelector(".headscan-toc");
	var toggle = document.querySelector(".headscan-toc-toggle");
	var content = document.querySelector(".headscan-toc-content");
	if(!toc || !content) return;
	var previewCount = parseInt(toc.getAttribute("data-preview-count")) || 0;
	var hasPreview = toc.classList.contains("has-preview");
	var items = content.querySelectorAll(".headscan-toc-item");
	function update(){
		var isOpen = toc.classList.contains("is-open");
		items.forEach(function(item, i){
			item.style.display = (isOpen || !hasPreview || i < previewCount) ? "" : "none";
		});
	}
	update();
	if(toggle){
		toggle.addEventListener("click", function(){
			var isOpen = toc.classList.toggle("is-open");
			this.setAttribute("aria-expanded", isOpen ? "true" : "false");
			update();
		});
	}
});
</script>`

// InsertTOC splices a precomputed TOC fragment into content at the given
// position. When the position's search pattern is not found, the TOC is
// prepended.
func InsertTOC(content, toc string, position InsertPosition) string {
	if toc == "" {
		return content
	}

	switch position {
	case InsertBeforeFirstHeading:
		if loc := firstHeadingRe.FindStringIndex(content); loc != nil {
			return content[:loc[0]] + toc + content[loc[0]:]
		}
	case InsertAfterFirstParagraph:
		if loc := closeParaRe.FindStringIndex(content); loc != nil {
			return content[:loc[1]] + toc + content[loc[1]:]
		}
	}

	return toc + content
}

// AddHeadingIDs injects stable anchor ids into the heading tags of
// content. Headings that already carry an id keep it untouched (their id
// is still registered for collision purposes), so the pass is idempotent.
// The collision namespace is independent from any TOC build.
func AddHeadingIDs(content string, levels []string) string {
	matches := matchHeadings(content, levels)
	if len(matches) == 0 {
		return content
	}

	used := make(map[string]bool)
	var sb strings.Builder
	last := 0

	for _, m := range matches {
		if idm := idAttrRe.FindStringSubmatch(m.attrs); idm != nil {
			used[idm[1]] = true
			continue
		}

		id := Slug(m.inner, used)
		sb.WriteString(content[last:m.start])
		sb.WriteString(`<` + m.tag + ` id="` + html.EscapeString(id) + `"` + m.attrs + `>` + m.inner + `</` + m.tag + `>`)
		last = m.end
	}

	sb.WriteString(content[last:])
	return sb.String()
}
