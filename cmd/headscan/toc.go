package main

import (
	"fmt"

	"github.com/TsuyoshiKashiwazaki/headscan"
)

// Run executes the toc command.
func (c *TOCCmd) Run(deps *Dependencies) error {
	content, err := loadContent(c.Path, c.Markdown, deps.Converter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", headscan.ErrorMessage(err))
		return err
	}

	cfg := c.Config()
	cfg.TOCInsertPosition = headscan.InsertPosition(c.Position)

	content = headscan.AddHeadingIDs(content, cfg.HeadingLevels)
	toc := headscan.BuildTOC(content, cfg.TOCTitle, cfg)
	if toc == "" {
		fmt.Fprintf(deps.Stderr, "error: fewer than %d headings, no TOC built\n", cfg.TOCMinHeadings)
		return headscan.Errorf(headscan.EINVALID, "fewer than %d headings, no TOC built", cfg.TOCMinHeadings)
	}

	if c.TOCOnly {
		fmt.Fprintln(deps.Stdout, toc)
		return nil
	}

	fmt.Fprintln(deps.Stdout, headscan.InsertTOC(content, toc, cfg.TOCInsertPosition))
	return nil
}
