package main

import (
	"encoding/json"
	"fmt"

	"github.com/TsuyoshiKashiwazaki/headscan"
)

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	content, err := loadContent(c.Path, c.Markdown, deps.Converter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", headscan.ErrorMessage(err))
		return err
	}

	title, err := resolveTitle(c.Title, content, deps.Titles)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", headscan.ErrorMessage(err))
		return err
	}

	cfg := c.Config()
	headlines := headscan.ExtractHeadings(content, cfg.HeadingLevels)
	texts := make([]string, 0, len(headlines))
	for _, h := range headlines {
		texts = append(texts, h.Text)
	}

	matches, err := deps.Checker.Check(deps.Ctx, texts, title, c.Exclude, cfg)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", headscan.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(matches)
	}

	if len(matches) == 0 {
		fmt.Fprintln(deps.Stdout, "No cannibalization found.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Cannibalization matches (%d total):\n", len(matches))
	for _, m := range matches {
		fmt.Fprintf(deps.Stdout, "  %3d%%  %s\n        matches %q in %q (%s)\n",
			m.Similarity, m.CurrentText, m.MatchedText, m.MatchedTitle, m.MatchedDocID)
	}

	return nil
}
