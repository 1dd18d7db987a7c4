package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/TsuyoshiKashiwazaki/headscan"
	main "github.com/TsuyoshiKashiwazaki/headscan/cmd/headscan"
	"github.com/TsuyoshiKashiwazaki/headscan/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("passes extracted texts to the checker and prints matches", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "page.html")
		html := `<head><title>Pasta Guide</title></head><h2>Ingredients</h2><h3>Cooking Steps</h3>`
		require.NoError(t, os.WriteFile(path, []byte(html), 0644))

		var gotTexts []string
		var gotTitle, gotExclude string
		checker := &mock.CannibalizationChecker{
			CheckFn: func(_ context.Context, headlineTexts []string, title, excludeID string, _ headscan.Config) ([]headscan.CannibalizationMatch, error) {
				gotTexts = headlineTexts
				gotTitle = title
				gotExclude = excludeID
				return []headscan.CannibalizationMatch{{
					CurrentText:  "Ingredients",
					MatchedText:  "Ingredients List",
					MatchedTitle: "Other Pasta Post",
					MatchedDocID: "doc-2",
					Similarity:   89,
				}}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Titles: &mock.TitleExtractor{
				ExtractTitleFn: func(html string) (string, error) { return "Pasta Guide", nil },
			},
			Checker: checker,
		}

		cmd := &main.CheckCmd{Path: path, Exclude: "doc-1", ConfigFlags: defaultConfigFlags()}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []string{"Ingredients", "Cooking Steps"}, gotTexts)
		assert.Equal(t, "Pasta Guide", gotTitle)
		assert.Equal(t, "doc-1", gotExclude)
		output := stdout.String()
		assert.Contains(t, output, "Cannibalization matches (1 total)")
		assert.Contains(t, output, "89%")
		assert.Contains(t, output, "Other Pasta Post")
	})

	t.Run("explicit title flag wins over extraction", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "page.html")
		require.NoError(t, os.WriteFile(path, []byte(`<h2>Section Here</h2>`), 0644))

		var gotTitle string
		checker := &mock.CannibalizationChecker{
			CheckFn: func(_ context.Context, _ []string, title, _ string, _ headscan.Config) ([]headscan.CannibalizationMatch, error) {
				gotTitle = title
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Checker: checker,
			Titles: &mock.TitleExtractor{
				ExtractTitleFn: func(html string) (string, error) {
					t.Fatal("ExtractTitle should not be called when --title is set")
					return "", nil
				},
			},
		}

		cmd := &main.CheckCmd{Path: path, Title: "Explicit Title", ConfigFlags: defaultConfigFlags()}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "Explicit Title", gotTitle)
		assert.Contains(t, stdout.String(), "No cannibalization found.")
	})

	t.Run("checker errors propagate", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "page.html")
		require.NoError(t, os.WriteFile(path, []byte(`<h2>Section Here</h2>`), 0644))

		checker := &mock.CannibalizationChecker{
			CheckFn: func(_ context.Context, _ []string, _, _ string, _ headscan.Config) ([]headscan.CannibalizationMatch, error) {
				return nil, headscan.Errorf(headscan.EINTERNAL, "corpus query failed")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Checker: checker,
			Titles: &mock.TitleExtractor{
				ExtractTitleFn: func(html string) (string, error) { return "", nil },
			},
		}

		cmd := &main.CheckCmd{Path: path, ConfigFlags: defaultConfigFlags()}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "corpus query failed")
	})
}
