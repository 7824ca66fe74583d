package bootstrap

import (
	"fmt"
	"os"
	"strings"

	"github.com/goliatone/go-mdprogress"
	progresscmd "github.com/goliatone/go-mdprogress/internal/commands/progress"
	"github.com/goliatone/go-mdprogress/internal/di"
	"github.com/goliatone/go-mdprogress/internal/logging"
	"github.com/goliatone/go-mdprogress/internal/runtimeconfig"
	"github.com/goliatone/go-mdprogress/pkg/interfaces"
)

// defaultLogLevel keeps stderr quiet unless a config file asks otherwise.
const defaultLogLevel = "warn"

// Options captures configuration for the progress CLI bootstrap.
// String fields left blank and nil pointers keep the configured value.
type Options struct {
	ConfigFile     string
	ContentDir     string
	Pattern        string
	Recursive      *bool
	Extensions     []string
	CacheSize      int
	LogProvider    string
	LogLevel       string
	LogFormat      string
	Sink           progresscmd.Sink
	LoggerProvider interfaces.LoggerProvider
}

// Module wraps the mdprogress module with the handles the CLI drives.
type Module struct {
	Module   *mdprogress.Module
	Service  interfaces.ProgressService
	Commands *progresscmd.HandlerSet
	Logger   interfaces.Logger
}

// BuildModule constructs a module configured for one CLI run.
func BuildModule(opts Options) (*Module, error) {
	configFile := strings.TrimSpace(opts.ConfigFile)
	cfg, err := runtimeconfig.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if configFile == "" {
		cfg.Features.Logger = true
		if _, ok := os.LookupEnv(runtimeconfig.EnvPrefix + "_LOGGING_LEVEL"); !ok {
			cfg.Logging.Level = defaultLogLevel
		}
	}

	if trimmed := strings.TrimSpace(opts.ContentDir); trimmed != "" {
		cfg.Markdown.ContentDir = trimmed
	}
	if trimmed := strings.TrimSpace(opts.Pattern); trimmed != "" {
		cfg.Markdown.Pattern = trimmed
	}
	if opts.Recursive != nil {
		cfg.Markdown.Recursive = *opts.Recursive
	}
	if len(opts.Extensions) > 0 {
		cfg.Markdown.Parser.Extensions = append([]string(nil), opts.Extensions...)
	}

	if opts.CacheSize > 0 {
		cfg.Features.Cache = true
		cfg.Cache.Enabled = true
		cfg.Cache.Size = opts.CacheSize
	}

	if provider := strings.TrimSpace(opts.LogProvider); provider != "" {
		cfg.Logging.Provider = provider
	}
	if level := strings.TrimSpace(opts.LogLevel); level != "" {
		cfg.Logging.Level = level
	}
	if format := strings.TrimSpace(opts.LogFormat); format != "" {
		cfg.Logging.Format = format
	}

	diOpts := []di.Option{}
	if opts.LoggerProvider != nil {
		diOpts = append(diOpts, di.WithLoggerProvider(opts.LoggerProvider))
	}
	if opts.Sink != nil {
		diOpts = append(diOpts, di.WithSink(opts.Sink))
	}

	module, err := mdprogress.New(cfg, diOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise mdprogress module: %w", err)
	}

	service := module.Progress()
	if service == nil {
		return nil, fmt.Errorf("progress service not configured")
	}

	return &Module{
		Module:   module,
		Service:  service,
		Commands: module.Commands(),
		Logger:   logging.ProgressLogger(module.LoggerProvider()),
	}, nil
}

// SplitList parses a comma separated list into a trimmed slice.
func SplitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
