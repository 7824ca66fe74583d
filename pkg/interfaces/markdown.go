package interfaces

import (
	"context"
	"time"

	"github.com/goliatone/go-mdprogress/pkg/mdast"
)

// TreeParser converts Markdown bytes into an mdast tree with task-list
// checkboxes resolved onto list items.
type TreeParser interface {
	// Parse builds a tree using the parser's default settings.
	Parse(source []byte) (*mdast.Root, error)
	// ParseWithOptions builds a tree using the supplied overrides.
	ParseWithOptions(source []byte, opts ParseOptions) (*mdast.Root, error)
}

// ParseOptions customises Markdown parsing, keeping option names readable for
// configuration unmarshalling and CLI flags.
type ParseOptions struct {
	Extensions []string
}

// ProgressService parses Markdown documents and runs the progress passes over
// them, either from raw bytes or from files under a content root.
type ProgressService interface {
	Annotate(ctx context.Context, source []byte, opts ParseOptions) (*Document, error)
	AnnotateFile(ctx context.Context, path string, opts LoadOptions) (*Document, error)
	AnnotateDirectory(ctx context.Context, dir string, opts LoadOptions) ([]*Document, error)
}

// Document carries a Markdown source together with the three trees produced
// while annotating it. Trees are shared with the service cache and must be
// treated as read-only.
type Document struct {
	FilePath     string
	FrontMatter  FrontMatter
	Body         []byte
	LastModified time.Time
	// Checksum stores the SHA-256 digest of the original source.
	Checksum []byte

	// Tree is the parsed tree before aggregation.
	Tree *mdast.Root
	// Annotated has every reachable list replaced by an mdast.AnnotatedList.
	Annotated *mdast.Root
	// Display is Annotated with progress labels injected.
	Display *mdast.Root

	Lists   []ListProgress
	Summary ProgressSummary
}

// FrontMatter models metadata extracted from the document header.
type FrontMatter struct {
	Title   string         `yaml:"title" json:"title"`
	Summary string         `yaml:"summary" json:"summary"`
	Status  string         `yaml:"status" json:"status"`
	Tags    []string       `yaml:"tags" json:"tags"`
	Date    time.Time      `yaml:"date" json:"date"`
	Custom  map[string]any `yaml:",inline" json:"custom"`
	Raw     map[string]any `yaml:"-" json:"raw"`
}

// ListProgress reports the annotation of one list in document order.
type ListProgress struct {
	Depth          int     `json:"depth"`
	Ordered        bool    `json:"ordered"`
	Items          int     `json:"items"`
	TotalCheckable int     `json:"total_checkable"`
	CheckedCount   int     `json:"checked_count"`
	Percentage     float64 `json:"-"`
	Label          string  `json:"label"`
}

// ProgressSummary totals direct checkbox counts over every list.
type ProgressSummary struct {
	Lists     int `json:"lists"`
	Checkable int `json:"checkable"`
	Checked   int `json:"checked"`
}

// LoadOptions fine-tunes how documents are discovered and parsed from disk.
type LoadOptions struct {
	Recursive *bool
	Pattern   string
	Parser    ParseOptions
}
