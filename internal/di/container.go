package di

import (
	"fmt"
	"io/fs"
	"strings"

	progresscmd "github.com/goliatone/go-mdprogress/internal/commands/progress"
	"github.com/goliatone/go-mdprogress/internal/logging"
	"github.com/goliatone/go-mdprogress/internal/logging/console"
	"github.com/goliatone/go-mdprogress/internal/logging/gologger"
	"github.com/goliatone/go-mdprogress/internal/markdown"
	"github.com/goliatone/go-mdprogress/internal/runtimeconfig"
	"github.com/goliatone/go-mdprogress/pkg/interfaces"
)

// Container wires configuration, logging, the progress service and the
// command handlers.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	filesystem     fs.FS
	parser         interfaces.TreeParser
	sink           progresscmd.Sink
	registry       progresscmd.CommandRegistry

	service  *markdown.Service
	handlers *progresscmd.HandlerSet
}

// Option mutates the container before services are built.
type Option func(*Container)

// WithLoggerProvider overrides the provider derived from Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithFilesystem replaces the os.DirFS rooted at Config.Markdown.ContentDir.
func WithFilesystem(filesystem fs.FS) Option {
	return func(c *Container) {
		c.filesystem = filesystem
	}
}

// WithTreeParser replaces the goldmark parser.
func WithTreeParser(parser interfaces.TreeParser) Option {
	return func(c *Container) {
		c.parser = parser
	}
}

// WithSink sets where command handlers deliver annotated documents.
func WithSink(sink progresscmd.Sink) Option {
	return func(c *Container) {
		c.sink = sink
	}
}

// WithCommandRegistry registers the command handlers with an external
// registry, e.g. a go-command dispatcher.
func WithCommandRegistry(reg progresscmd.CommandRegistry) Option {
	return func(c *Container) {
		c.registry = reg
	}
}

// NewContainer validates cfg and builds every collaborator.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := markdown.ValidateExtensions(cfg.Markdown.Parser.Extensions); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if err := c.configureLoggerProvider(); err != nil {
		return nil, err
	}
	if err := c.configureService(); err != nil {
		return nil, err
	}
	if err := c.configureCommands(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Container) configureLoggerProvider() error {
	if c.loggerProvider != nil || !c.Config.Features.Logger {
		return nil
	}

	switch strings.ToLower(strings.TrimSpace(c.Config.Logging.Provider)) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     c.Config.Logging.Level,
			Format:    c.Config.Logging.Format,
			AddSource: c.Config.Logging.AddSource,
			Focus:     c.Config.Logging.Focus,
		})
		if err != nil {
			return fmt.Errorf("di: configure go-logger provider: %w", err)
		}
		c.loggerProvider = provider
	default:
		opts := console.Options{}
		if level := strings.TrimSpace(c.Config.Logging.Level); level != "" {
			parsed, err := console.ParseLevel(level)
			if err != nil {
				return fmt.Errorf("di: configure console provider: %w", err)
			}
			opts.MinLevel = &parsed
		}
		c.loggerProvider = console.NewProvider(opts)
	}
	return nil
}

func (c *Container) configureService() error {
	mdCfg := c.Config.Markdown
	serviceOpts := []markdown.ServiceOption{
		markdown.WithLogger(logging.MarkdownLogger(c.loggerProvider)),
	}
	if c.filesystem != nil {
		serviceOpts = append(serviceOpts, markdown.WithFilesystem(c.filesystem))
	}

	service, err := markdown.NewService(markdown.Config{
		BasePath:  mdCfg.ContentDir,
		Pattern:   mdCfg.Pattern,
		Recursive: mdCfg.Recursive,
		Parser:    interfaces.ParseOptions{Extensions: append([]string(nil), mdCfg.Parser.Extensions...)},
		CacheSize: c.Config.EffectiveCacheSize(),
	}, c.parser, serviceOpts...)
	if err != nil {
		return fmt.Errorf("di: configure progress service: %w", err)
	}
	c.service = service

	logging.ModuleLogger(c.loggerProvider, "").Debug("progress.service.configured",
		"content_dir", mdCfg.ContentDir,
		"pattern", mdCfg.Pattern,
		"recursive", mdCfg.Recursive,
		"cache_size", c.Config.EffectiveCacheSize(),
	)
	return nil
}

func (c *Container) configureCommands() error {
	handlers, err := progresscmd.RegisterProgressCommands(c.registry, c.service, c.sink, c.loggerProvider)
	if err != nil {
		return fmt.Errorf("di: register progress commands: %w", err)
	}
	c.handlers = handlers
	return nil
}

// LoggerProvider returns the configured provider, nil when logging is off.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// ProgressService returns the annotation service.
func (c *Container) ProgressService() *markdown.Service {
	return c.service
}

// Commands returns the progress command handlers.
func (c *Container) Commands() *progresscmd.HandlerSet {
	return c.handlers
}
