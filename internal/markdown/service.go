package markdown

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/goliatone/go-mdprogress/internal/logging"
	"github.com/goliatone/go-mdprogress/internal/progress"
	"github.com/goliatone/go-mdprogress/pkg/interfaces"
	"github.com/goliatone/go-mdprogress/pkg/mdast"
)

// ErrNilDocument is returned when a caller hands the service a nil document.
var ErrNilDocument = errors.New("markdown service: document is nil")

// ErrPathOutsideBase is returned when an absolute path does not resolve below
// the configured base path.
var ErrPathOutsideBase = errors.New("markdown service: path outside base path")

// Config controls how the service discovers, parses and memoizes documents.
type Config struct {
	BasePath  string
	Pattern   string
	Recursive bool
	Parser    interfaces.ParseOptions
	// CacheSize bounds the number of memoized results; zero disables caching.
	CacheSize int
}

// Service implements interfaces.ProgressService for filesystem-backed documents.
type Service struct {
	cfg    Config
	parser interfaces.TreeParser
	loader *Loader
	cache  *lru.Cache[string, *annotation]
	logger interfaces.Logger
	clock  func() time.Time
}

var _ interfaces.ProgressService = (*Service)(nil)

// ServiceOption customises a Service.
type ServiceOption func(*Service)

// WithLogger sets the logger used for annotation events.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithFilesystem replaces the os.DirFS rooted at Config.BasePath.
func WithFilesystem(filesystem fs.FS) ServiceOption {
	return func(s *Service) {
		if filesystem != nil {
			s.loader = NewLoader(filesystem, s.loaderConfig())
		}
	}
}

// WithClock overrides the time source used to measure durations.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// annotation is the memoized outcome of running both passes over one source.
// Trees are immutable so cached values are handed out as is.
type annotation struct {
	tree      *mdast.Root
	annotated *mdast.Root
	display   *mdast.Root
	lists     []interfaces.ListProgress
	summary   interfaces.ProgressSummary
}

// NewService constructs a progress service. When parser is nil, a goldmark
// parser with the configured default options is created.
func NewService(cfg Config, parser interfaces.TreeParser, opts ...ServiceOption) (*Service, error) {
	if parser == nil {
		parser = NewGoldmarkParser(cfg.Parser)
	}

	svc := &Service{
		cfg:    cfg,
		parser: parser,
		logger: logging.NoOp(),
		clock:  time.Now,
	}

	if cfg.CacheSize > 0 {
		cache, err := lru.New[string, *annotation](cfg.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("markdown service: cache: %w", err)
		}
		svc.cache = cache
	}

	for _, opt := range opts {
		opt(svc)
	}

	if svc.loader == nil {
		filesystem, err := prepareFilesystem(cfg.BasePath)
		if err != nil {
			return nil, err
		}
		svc.loader = NewLoader(filesystem, svc.loaderConfig())
	}

	return svc, nil
}

// Annotate parses raw Markdown (front matter allowed) and runs both passes.
func (s *Service) Annotate(ctx context.Context, source []byte, opts interfaces.ParseOptions) (*interfaces.Document, error) {
	doc, err := BuildDocument("", source, time.Time{})
	if err != nil {
		return nil, err
	}
	doc.Checksum = checksum(source)
	if err := s.AnnotateDocument(ctx, doc, opts); err != nil {
		return nil, err
	}
	return doc, nil
}

// AnnotateFile loads a single document relative to the configured base path.
func (s *Service) AnnotateFile(ctx context.Context, path string, opts interfaces.LoadOptions) (*interfaces.Document, error) {
	rel, err := s.normalisePath(path)
	if err != nil {
		return nil, err
	}
	result, err := s.loader.LoadFile(ctx, rel)
	if err != nil {
		return nil, err
	}
	if err := s.AnnotateDocument(ctx, result.Document, opts.Parser); err != nil {
		return nil, err
	}
	return result.Document, nil
}

// AnnotateDirectory annotates every matching document within dir, sorted by path.
func (s *Service) AnnotateDirectory(ctx context.Context, dir string, opts interfaces.LoadOptions) ([]*interfaces.Document, error) {
	rel, err := s.normalisePath(dir)
	if err != nil {
		return nil, err
	}
	results, err := s.loader.LoadDirectory(ctx, rel, LoadParams{
		Pattern:   opts.Pattern,
		Recursive: opts.Recursive,
	})
	if err != nil {
		return nil, err
	}

	docs := make([]*interfaces.Document, 0, len(results))
	for _, result := range results {
		if err := s.AnnotateDocument(ctx, result.Document, opts.Parser); err != nil {
			return nil, fmt.Errorf("markdown annotate document %s: %w", result.Document.FilePath, err)
		}
		docs = append(docs, result.Document)
	}
	return docs, nil
}

// AnnotateDocument fills the trees and progress fields of an already loaded
// document from its Body.
func (s *Service) AnnotateDocument(ctx context.Context, doc *interfaces.Document, opts interfaces.ParseOptions) error {
	if doc == nil {
		return ErrNilDocument
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	logger := logging.WithDocumentContext(s.logger, doc.FilePath, "annotate")
	started := s.clock()
	effective := mergeParseOptions(s.cfg.Parser, opts)
	if len(doc.Checksum) == 0 {
		doc.Checksum = checksum(doc.Body)
	}
	key := cacheKey(doc.Checksum, effective)

	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			applyAnnotation(doc, cached)
			logger.Debug("markdown.annotate.cache_hit", "lists", cached.summary.Lists)
			return nil
		}
	}

	tree, err := s.parser.ParseWithOptions(doc.Body, effective)
	if err != nil {
		logger.Error("markdown.annotate.parse_failed", "error", err)
		return fmt.Errorf("markdown parse %s: %w", displayPath(doc.FilePath), err)
	}

	result := annotate(tree)
	if s.cache != nil {
		s.cache.Add(key, result)
	}
	applyAnnotation(doc, result)

	logger.Info("markdown.annotate.completed",
		"lists", result.summary.Lists,
		"checkable", result.summary.Checkable,
		"checked", result.summary.Checked,
		"duration_ms", s.clock().Sub(started).Milliseconds(),
	)
	return nil
}

func annotate(tree *mdast.Root) *annotation {
	annotated := progress.Aggregate(tree)
	stats := progress.Lists(annotated)
	summary := progress.Summarize(stats)

	lists := make([]interfaces.ListProgress, 0, len(stats))
	for _, stat := range stats {
		lists = append(lists, interfaces.ListProgress{
			Depth:          stat.Depth,
			Ordered:        stat.Ordered,
			Items:          stat.Items,
			TotalCheckable: stat.TotalCheckable,
			CheckedCount:   stat.CheckedCount,
			Percentage:     stat.Percentage,
			Label:          strings.TrimSpace(progress.Label(stat.Percentage)),
		})
	}

	return &annotation{
		tree:      tree,
		annotated: annotated,
		display:   progress.Inject(annotated),
		lists:     lists,
		summary: interfaces.ProgressSummary{
			Lists:     summary.Lists,
			Checkable: summary.Checkable,
			Checked:   summary.Checked,
		},
	}
}

func applyAnnotation(doc *interfaces.Document, result *annotation) {
	doc.Tree = result.tree
	doc.Annotated = result.annotated
	doc.Display = result.display
	doc.Lists = append([]interfaces.ListProgress(nil), result.lists...)
	doc.Summary = result.summary
}

// CacheLen reports the number of memoized results.
func (s *Service) CacheLen() int {
	if s.cache == nil {
		return 0
	}
	return s.cache.Len()
}

func (s *Service) loaderConfig() LoaderConfig {
	return LoaderConfig{
		BasePath:  s.cfg.BasePath,
		Pattern:   s.cfg.Pattern,
		Recursive: s.cfg.Recursive,
	}
}

func (s *Service) normalisePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ".", nil
	}
	clean := filepath.Clean(path)
	if !filepath.IsAbs(clean) {
		return filepath.ToSlash(clean), nil
	}

	base := s.cfg.BasePath
	if strings.TrimSpace(base) == "" {
		base = "."
	}
	absBase, err := filepath.Abs(base)
	if err != nil {
		return "", fmt.Errorf("markdown resolve base path %s: %w", base, err)
	}
	rel, err := filepath.Rel(absBase, clean)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s is not under %s", ErrPathOutsideBase, path, absBase)
	}
	return filepath.ToSlash(rel), nil
}

func mergeParseOptions(base, override interfaces.ParseOptions) interfaces.ParseOptions {
	result := base
	if len(override.Extensions) > 0 {
		result.Extensions = append([]string(nil), override.Extensions...)
	}
	return result
}

func cacheKey(sum []byte, opts interfaces.ParseOptions) string {
	exts := make([]string, 0, len(opts.Extensions))
	for _, name := range opts.Extensions {
		if key := strings.ToLower(strings.TrimSpace(name)); key != "" {
			exts = append(exts, key)
		}
	}
	return hex.EncodeToString(sum) + "|" + strings.Join(exts, ",")
}

func displayPath(path string) string {
	if path == "" {
		return "<input>"
	}
	return path
}

func prepareFilesystem(basePath string) (fs.FS, error) {
	if strings.TrimSpace(basePath) == "" {
		basePath = "."
	}
	if _, err := os.Stat(basePath); err != nil {
		return nil, fmt.Errorf("markdown service: stat base path %s: %w", basePath, err)
	}
	return os.DirFS(basePath), nil
}
