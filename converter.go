package headscan

// Converter converts markdown to HTML.
type Converter interface {
	// ToHTML renders markdown content as HTML so markdown sources can be
	// ingested into the corpus and analyzed like any other document.
	ToHTML(markdown string) (string, error)
}
