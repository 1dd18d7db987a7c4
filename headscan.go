// Package headscan analyzes the heading structure of HTML documents for
// SEO problems and builds navigable tables of contents. It extracts H1-H6
// headings from raw HTML, validates their hierarchy, length, and mutual
// similarity, detects near-duplicate content across a corpus of documents
// (cannibalization), and generates nested, numbered TOC fragments with
// stable anchor ids.
//
// This package contains domain types, interfaces, and the pure analysis
// core following Ben Johnson's Standard Package Layout. Implementations
// with external dependencies live in subdirectories named after their
// primary dependency (e.g., sqlite/, goquery/, http/).
package headscan
