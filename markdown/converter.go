// Package markdown implements headscan.Converter using goldmark.
package markdown

import (
	"bytes"

	"github.com/TsuyoshiKashiwazaki/headscan"
	"github.com/yuin/goldmark"
)

// Ensure type implements interface.
var _ headscan.Converter = (*Converter)(nil)

// Converter renders Markdown source to HTML.
type Converter struct {
	md goldmark.Markdown
}

func NewConverter() *Converter {
	return &Converter{md: goldmark.New()}
}

func (c *Converter) ToHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(markdown), &buf); err != nil {
		return "", headscan.Errorf(headscan.EINVALID, "convert markdown: %v", err)
	}
	return buf.String(), nil
}
