package markdown

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/goliatone/go-mdprogress/pkg/interfaces"
	"github.com/goliatone/go-mdprogress/pkg/mdast"
)

// GoldmarkParser implements interfaces.TreeParser using the goldmark engine.
// The parser is stateless so callers can reuse a single instance across
// goroutines without additional locking.
type GoldmarkParser struct {
	defaultOptions interfaces.ParseOptions
}

var _ interfaces.TreeParser = (*GoldmarkParser)(nil)

// NewGoldmarkParser constructs a parser whose defaults enable GFM (tables,
// strikethrough, linkify and task lists) plus footnotes unless the supplied
// options name other extensions.
func NewGoldmarkParser(defaults interfaces.ParseOptions) *GoldmarkParser {
	return &GoldmarkParser{
		defaultOptions: defaults,
	}
}

// Parse builds an mdast tree using the parser's default configuration.
func (p *GoldmarkParser) Parse(source []byte) (*mdast.Root, error) {
	return p.ParseWithOptions(source, p.defaultOptions)
}

// ParseWithOptions builds an mdast tree using the provided options.
// Goldmark parsing itself cannot fail; the error is reserved for parsers
// that can.
func (p *GoldmarkParser) ParseWithOptions(source []byte, opts interfaces.ParseOptions) (*mdast.Root, error) {
	engine := newGoldmarkEngine(opts)
	doc := engine.Parser().Parse(text.NewReader(source))
	return convertDocument(doc, source), nil
}

// newGoldmarkEngine builds a goldmark.Markdown configured with the extensions
// named in opts. Unsupported extension names are ignored.
func newGoldmarkEngine(opts interfaces.ParseOptions) goldmark.Markdown {
	engineOptions := []goldmark.Option{}
	if exts := collectExtensions(opts.Extensions); len(exts) > 0 {
		engineOptions = append(engineOptions, goldmark.WithExtensions(exts...))
	}
	return goldmark.New(engineOptions...)
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"footnote":      extension.Footnote,
	"footnotes":     extension.Footnote,
}

// gfmMembers lists what extension.GFM registers so an explicit "gfm" can be
// deduplicated against the individual extensions it bundles.
var gfmMembers = []goldmark.Extender{
	extension.Linkify,
	extension.Table,
	extension.Strikethrough,
	extension.TaskList,
}

func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{
			extension.GFM,
			extension.Footnote,
		}
	}

	var extenders []goldmark.Extender
	seen := map[goldmark.Extender]struct{}{}

	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}

		ext, ok := extensionRegistry[key]
		if !ok {
			continue
		}
		members := []goldmark.Extender{ext}
		if ext == extension.GFM {
			members = gfmMembers
		}
		for _, member := range members {
			if _, dup := seen[member]; dup {
				continue
			}
			extenders = append(extenders, member)
			seen[member] = struct{}{}
		}
	}

	return extenders
}

// ValidateExtensions reports the first name that does not map to a registered
// goldmark extension.
func ValidateExtensions(names []string) error {
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if _, ok := extensionRegistry[key]; !ok {
			return fmt.Errorf("markdown parser: unknown extension %q", name)
		}
	}
	return nil
}
