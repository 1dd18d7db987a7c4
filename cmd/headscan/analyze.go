package main

import (
	"encoding/json"
	"fmt"

	"github.com/TsuyoshiKashiwazaki/headscan"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
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

	analysis := headscan.Analyze(content, title, c.Config())

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(analysis)
	}

	printAnalysis(deps, analysis)
	return nil
}

func printAnalysis(deps *Dependencies, a *headscan.Analysis) {
	fmt.Fprintf(deps.Stdout, "Headings (%d total):\n", a.TotalCount)
	for _, h := range a.Headlines {
		fmt.Fprintf(deps.Stdout, "  %d. [%s] %s (%d chars)\n", h.Index+1, h.Tag, h.Text, h.CharCount)
	}

	if len(a.HierarchyWarnings) == 0 && len(a.LengthWarnings) == 0 && len(a.DuplicateWarnings) == 0 {
		fmt.Fprintln(deps.Stdout, "\nNo issues found.")
		return
	}

	if len(a.HierarchyWarnings) > 0 {
		fmt.Fprintln(deps.Stdout, "\nHierarchy warnings:")
		for _, w := range a.HierarchyWarnings {
			fmt.Fprintf(deps.Stdout, "  - %s\n", w.Message)
		}
	}

	if len(a.LengthWarnings) > 0 {
		fmt.Fprintln(deps.Stdout, "\nLength warnings:")
		for _, w := range a.LengthWarnings {
			for _, issue := range w.Issues {
				fmt.Fprintf(deps.Stdout, "  - %s\n", issue.Message)
			}
		}
	}

	if len(a.DuplicateWarnings) > 0 {
		fmt.Fprintln(deps.Stdout, "\nDuplicate warnings:")
		for _, w := range a.DuplicateWarnings {
			fmt.Fprintf(deps.Stdout, "  - %s\n", w.Message)
		}
	}
}
