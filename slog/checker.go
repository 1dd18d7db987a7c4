package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/TsuyoshiKashiwazaki/headscan"
)

// Ensure LoggingChecker implements headscan.CannibalizationChecker.
var _ headscan.CannibalizationChecker = (*LoggingChecker)(nil)

// LoggingChecker wraps a CannibalizationChecker with timing and match-count logging.
type LoggingChecker struct {
	next   headscan.CannibalizationChecker
	logger *slog.Logger
}

// NewLoggingChecker creates a new LoggingChecker.
func NewLoggingChecker(next headscan.CannibalizationChecker, logger *slog.Logger) *LoggingChecker {
	return &LoggingChecker{next: next, logger: logger}
}

// Check delegates to the wrapped checker and logs the outcome.
func (c *LoggingChecker) Check(ctx context.Context, headlineTexts []string, title, excludeID string, cfg headscan.Config) ([]headscan.CannibalizationMatch, error) {
	begin := time.Now()
	matches, err := c.next.Check(ctx, headlineTexts, title, excludeID, cfg)
	if err != nil {
		c.logger.Error("cannibalization check",
			slog.Int("headlines", len(headlineTexts)),
			slog.Duration("duration", time.Since(begin)),
			slog.Any("err", err),
		)
		return nil, err
	}
	c.logger.Info("cannibalization check",
		slog.Int("headlines", len(headlineTexts)),
		slog.Int("matches", len(matches)),
		slog.Duration("duration", time.Since(begin)),
	)
	return matches, nil
}
