package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/TsuyoshiKashiwazaki/headscan"
)

// isMarkdownPath reports whether a file should be treated as Markdown
// based on its extension.
func isMarkdownPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// loadContent reads a file and returns its content as HTML, converting
// Markdown input first.
func loadContent(path string, markdown bool, converter headscan.Converter) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if markdown || isMarkdownPath(path) {
		return converter.ToHTML(string(raw))
	}
	return string(raw), nil
}

// resolveTitle returns the explicit title when given, otherwise extracts
// one from the HTML content.
func resolveTitle(title, html string, titles headscan.TitleExtractor) (string, error) {
	if title != "" {
		return title, nil
	}
	return titles.ExtractTitle(html)
}
