package mock

import "github.com/TsuyoshiKashiwazaki/headscan"

var _ headscan.TitleExtractor = (*TitleExtractor)(nil)

// TitleExtractor is a mock implementation of headscan.TitleExtractor.
type TitleExtractor struct {
	ExtractTitleFn func(html string) (string, error)
}

func (e *TitleExtractor) ExtractTitle(html string) (string, error) {
	return e.ExtractTitleFn(html)
}
