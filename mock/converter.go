package mock

import "github.com/TsuyoshiKashiwazaki/headscan"

var _ headscan.Converter = (*Converter)(nil)

// Converter is a mock implementation of headscan.Converter.
type Converter struct {
	ToHTMLFn func(markdown string) (string, error)
}

func (c *Converter) ToHTML(markdown string) (string, error) {
	return c.ToHTMLFn(markdown)
}
