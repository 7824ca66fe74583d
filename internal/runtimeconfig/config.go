package runtimeconfig

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

var ErrContentDirRequired = errors.New("mdprogress config: markdown content directory is required")
var ErrPatternInvalid = errors.New("mdprogress config: markdown pattern is invalid")

// ErrCacheSizeInvalid rejects a negative or missing size while the cache is enabled.
var ErrCacheSizeInvalid = errors.New("mdprogress config: cache size must be positive when cache is enabled")

// ErrCacheFeatureRequired keeps the cache section behind its feature flag.
var ErrCacheFeatureRequired = errors.New("mdprogress config: cache feature must be enabled to configure the cache")
var ErrLoggingProviderRequired = errors.New("mdprogress config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("mdprogress config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("mdprogress config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("mdprogress config: logging format is invalid")

// Config aggregates feature flags and adapter settings for the module.
type Config struct {
	Markdown MarkdownConfig
	Cache    CacheConfig
	Logging  LoggingConfig
	Features Features
}

// MarkdownConfig captures filesystem and parser behaviour for document discovery.
type MarkdownConfig struct {
	ContentDir string
	Pattern    string
	Recursive  bool
	Parser     MarkdownParserConfig
}

// MarkdownParserConfig mirrors interfaces.ParseOptions for runtime configuration.
type MarkdownParserConfig struct {
	Extensions []string
}

// CacheConfig bounds the annotation result cache.
type CacheConfig struct {
	Enabled bool
	Size    int
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// Features toggles optional functionality.
type Features struct {
	Logger bool
	Cache  bool
}

// DefaultConfig returns defaults suited to a one-shot CLI run over the
// current directory.
func DefaultConfig() Config {
	return Config{
		Markdown: MarkdownConfig{
			ContentDir: ".",
			Pattern:    "*.md",
			Recursive:  true,
		},
		Cache: CacheConfig{
			Size: 128,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Markdown.ContentDir) == "" {
		return ErrContentDirRequired
	}
	if pattern := strings.TrimSpace(cfg.Markdown.Pattern); pattern != "" {
		if _, err := path.Match(pattern, "probe.md"); err != nil {
			return fmt.Errorf("%w: %s", ErrPatternInvalid, pattern)
		}
	}
	if cfg.Cache.Enabled {
		if !cfg.Features.Cache {
			return ErrCacheFeatureRequired
		}
		if cfg.Cache.Size <= 0 {
			return fmt.Errorf("%w: %d", ErrCacheSizeInvalid, cfg.Cache.Size)
		}
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

// EffectiveCacheSize returns the number of results the service should keep,
// zero when caching is off.
func (cfg Config) EffectiveCacheSize() int {
	if !cfg.Features.Cache || !cfg.Cache.Enabled {
		return 0
	}
	return cfg.Cache.Size
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
