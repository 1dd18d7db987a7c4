package headscan

import (
	"fmt"
	"strings"
)

// Length issue types.
const (
	LengthTooShort = "too_short"
	LengthTooLong  = "too_long"
)

// Analysis is the result of analyzing one document's heading structure.
type Analysis struct {
	Headlines         []Heading          `json:"headlines"`
	HierarchyWarnings []HierarchyWarning `json:"hierarchyWarnings"`
	LengthWarnings    []LengthWarning    `json:"lengthWarnings"`
	DuplicateWarnings []DuplicateWarning `json:"duplicateWarnings"`
	TotalCount        int                `json:"totalCount"`
}

// HierarchyWarning flags a heading whose level jumps more than one step
// past the previous extracted heading (e.g. an H2 followed by an H4).
type HierarchyWarning struct {
	Index       int     `json:"index"`
	Current     Heading `json:"current"`
	Previous    Heading `json:"previous"`
	SkippedFrom int     `json:"skippedFrom"`
	SkippedTo   int     `json:"skippedTo"`
	Message     string  `json:"message"`
}

// LengthIssue describes one way a heading's character count falls outside
// the recommended range.
type LengthIssue struct {
	Type      string `json:"type"`
	Current   int    `json:"current"`
	Threshold int    `json:"threshold"`
	Message   string `json:"message"`
}

// LengthWarning collects the length issues for one heading.
type LengthWarning struct {
	Index    int           `json:"index"`
	Headline Heading       `json:"headline"`
	Issues   []LengthIssue `json:"issues"`
}

// TextItem identifies one text participating in duplicate comparison: the
// document title (index -1, tag "title", level 0) or an extracted heading.
type TextItem struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
	Tag   string `json:"tag"`
	Level int    `json:"level"`
}

// DuplicateWarning flags a pair of texts within one document whose
// similarity meets the configured threshold.
type DuplicateWarning struct {
	Item1      TextItem `json:"item1"`
	Item2      TextItem `json:"item2"`
	Similarity int      `json:"similarity"`
	Message    string   `json:"message"`
}

// Analyze extracts headings from content and runs the hierarchy, length,
// and duplicate checks against the given options. The title, when
// non-empty, participates in the duplicate check but not in the count.
func Analyze(content, title string, cfg Config) *Analysis {
	cfg = cfg.Normalize()
	headlines := ExtractHeadings(content, cfg.HeadingLevels)

	return &Analysis{
		Headlines:         headlines,
		HierarchyWarnings: CheckHierarchy(headlines),
		LengthWarnings:    CheckLength(headlines, cfg.MinLength, cfg.MaxLength),
		DuplicateWarnings: CheckDuplicates(headlines, title, cfg.DuplicateThreshold),
		TotalCount:        len(headlines),
	}
}

// CheckHierarchy flags adjacent extracted headings whose level increases
// by more than one step. Level decreases of any size are never flagged.
func CheckHierarchy(headlines []Heading) []HierarchyWarning {
	var warnings []HierarchyWarning

	for i := 1; i < len(headlines); i++ {
		prev := headlines[i-1]
		curr := headlines[i]
		if curr.Level <= prev.Level+1 {
			continue
		}

		warnings = append(warnings, HierarchyWarning{
			Index:       curr.Index,
			Current:     curr,
			Previous:    prev,
			SkippedFrom: prev.Level,
			SkippedTo:   curr.Level,
			Message: fmt.Sprintf("%s is followed by %s (expected H%d)",
				strings.ToUpper(prev.Tag), strings.ToUpper(curr.Tag), prev.Level+1),
		})
	}

	return warnings
}

// CheckLength flags headings whose character count falls outside
// [minLength, maxLength]. Each heading is checked independently; with a
// pathological min > max both issues can fire for the same heading.
func CheckLength(headlines []Heading, minLength, maxLength int) []LengthWarning {
	var warnings []LengthWarning

	for _, h := range headlines {
		var issues []LengthIssue

		if h.CharCount < minLength {
			issues = append(issues, LengthIssue{
				Type:      LengthTooShort,
				Current:   h.CharCount,
				Threshold: minLength,
				Message:   fmt.Sprintf("Too short (%d chars / recommended: at least %d)", h.CharCount, minLength),
			})
		}
		if h.CharCount > maxLength {
			issues = append(issues, LengthIssue{
				Type:      LengthTooLong,
				Current:   h.CharCount,
				Threshold: maxLength,
				Message:   fmt.Sprintf("Too long (%d chars / recommended: at most %d)", h.CharCount, maxLength),
			})
		}

		if len(issues) > 0 {
			warnings = append(warnings, LengthWarning{
				Index:    h.Index,
				Headline: h,
				Issues:   issues,
			})
		}
	}

	return warnings
}

// CheckDuplicates compares every unordered pair among the title (when
// non-empty) and all non-empty heading texts, emitting a warning for each
// pair whose similarity meets threshold. Output follows enumeration
// order; it is not re-sorted.
func CheckDuplicates(headlines []Heading, title string, threshold int) []DuplicateWarning {
	var items []TextItem

	if title != "" {
		items = append(items, TextItem{Index: -1, Text: title, Tag: "title", Level: 0})
	}
	for _, h := range headlines {
		items = append(items, TextItem{Index: h.Index, Text: h.Text, Tag: h.Tag, Level: h.Level})
	}

	var warnings []DuplicateWarning
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if items[i].Text == "" || items[j].Text == "" {
				continue
			}

			similarity := Similarity(items[i].Text, items[j].Text)
			if similarity < threshold {
				continue
			}

			warnings = append(warnings, DuplicateWarning{
				Item1:      items[i],
				Item2:      items[j],
				Similarity: similarity,
				Message: fmt.Sprintf("%q and %q are similar (similarity: %d%%)",
					truncate(items[i].Text, 30), truncate(items[j].Text, 30), similarity),
			})
		}
	}

	return warnings
}

// truncate shortens s to at most n characters, appending an ellipsis when
// anything was cut.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
