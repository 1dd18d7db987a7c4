package mock

import (
	"context"

	"github.com/TsuyoshiKashiwazaki/headscan"
)

var _ headscan.CannibalizationChecker = (*CannibalizationChecker)(nil)

// CannibalizationChecker is a mock implementation of
// headscan.CannibalizationChecker.
type CannibalizationChecker struct {
	CheckFn func(ctx context.Context, headlineTexts []string, title, excludeID string, cfg headscan.Config) ([]headscan.CannibalizationMatch, error)
}

func (c *CannibalizationChecker) Check(ctx context.Context, headlineTexts []string, title, excludeID string, cfg headscan.Config) ([]headscan.CannibalizationMatch, error) {
	return c.CheckFn(ctx, headlineTexts, title, excludeID, cfg)
}
