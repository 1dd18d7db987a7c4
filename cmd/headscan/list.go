package main

import (
	"fmt"

	"github.com/TsuyoshiKashiwazaki/headscan"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	var filter headscan.DocumentFilter
	if c.Type != "" {
		filter.Types = []string{c.Type}
	}

	docs, err := deps.Documents.FindPublishedDocuments(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", headscan.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents found. Use 'headscan ingest' to add some.")
		return nil
	}

	for _, d := range docs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n", d.ID, d.Type, d.PublishedAt.Format("2006-01-02"), d.Title)
	}

	return nil
}
