package main

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/TsuyoshiKashiwazaki/headscan"
	"github.com/TsuyoshiKashiwazaki/headscan/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	DB        *sqlite.DB
	Documents headscan.DocumentService
	Checker   headscan.CannibalizationChecker
	Titles    headscan.TitleExtractor
	Converter headscan.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Analyze AnalyzeCmd `cmd:"" help:"Analyze the heading structure of a document"`
	TOC     TOCCmd     `cmd:"" name:"toc" help:"Build and insert a table of contents"`
	Ingest  IngestCmd  `cmd:"" help:"Add documents to the corpus"`
	Check   CheckCmd   `cmd:"" help:"Check a document for keyword cannibalization against the corpus"`
	List    ListCmd    `cmd:"" help:"List corpus documents"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a corpus document"`
	Serve   ServeCmd   `cmd:"" help:"Run the HTTP API server"`
}

// ConfigFlags are the analysis options shared by several commands.
type ConfigFlags struct {
	Levels    string `help:"Comma-separated heading levels to extract" default:"h2,h3,h4,h5,h6"`
	MinLength int    `name:"min-length" help:"Minimum recommended heading length in characters" default:"5"`
	MaxLength int    `name:"max-length" help:"Maximum recommended heading length in characters" default:"60"`
	Threshold int    `help:"Similarity threshold percent" default:"80"`
}

// Config translates the flags into analysis options.
func (f ConfigFlags) Config() headscan.Config {
	cfg := headscan.DefaultConfig()
	cfg.HeadingLevels = strings.Split(f.Levels, ",")
	cfg.MinLength = f.MinLength
	cfg.MaxLength = f.MaxLength
	cfg.DuplicateThreshold = f.Threshold
	cfg.CannibalizationThreshold = f.Threshold
	return cfg.Normalize()
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	Path     string `arg:"" help:"HTML or Markdown file to analyze"`
	Title    string `help:"Document title (extracted from the content when omitted)"`
	Markdown bool   `short:"m" help:"Treat input as Markdown"`
	JSON     bool   `help:"Print the analysis as JSON"`

	ConfigFlags `embed:""`
}

// TOCCmd is the "toc" subcommand.
type TOCCmd struct {
	Path     string `arg:"" help:"HTML or Markdown file to process"`
	Position string `enum:"before_first_heading,after_first_paragraph,top" default:"before_first_heading" help:"Where to insert the TOC"`
	Markdown bool   `short:"m" help:"Treat input as Markdown"`
	TOCOnly  bool   `name:"toc-only" help:"Print only the TOC markup, not the full content"`

	ConfigFlags `embed:""`
}

// IngestCmd is the "ingest" subcommand.
type IngestCmd struct {
	Paths       []string `arg:"" help:"HTML or Markdown files to store"`
	Type        string   `short:"t" default:"post" help:"Document type"`
	Status      string   `default:"published" enum:"draft,published" help:"Document status"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent ingestion limit"`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	Path     string `arg:"" help:"HTML or Markdown file to check"`
	Title    string `help:"Document title (extracted from the content when omitted)"`
	Exclude  string `help:"Corpus document ID to exclude (the document itself)"`
	Markdown bool   `short:"m" help:"Treat input as Markdown"`
	JSON     bool   `help:"Print matches as JSON"`

	ConfigFlags `embed:""`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Type string `help:"Restrict to one document type"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Document ID"`
	Force bool   `help:"Confirm deletion"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8080" help:"Listen address"`
}
