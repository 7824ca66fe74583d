package runtimeconfig

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. MDPROGRESS_LOGGING_LEVEL.
const EnvPrefix = "MDPROGRESS"

// Load reads a YAML or TOML config file on top of DefaultConfig. Environment
// variables prefixed with EnvPrefix override file values. An empty path
// applies defaults and environment overrides only.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, DefaultConfig())

	if path = strings.TrimSpace(path); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("runtimeconfig: read %s: %w", path, err)
		}
	}

	cfg := Config{
		Markdown: MarkdownConfig{
			ContentDir: v.GetString("markdown.content_dir"),
			Pattern:    v.GetString("markdown.pattern"),
			Recursive:  v.GetBool("markdown.recursive"),
			Parser: MarkdownParserConfig{
				Extensions: v.GetStringSlice("markdown.parser.extensions"),
			},
		},
		Cache: CacheConfig{
			Enabled: v.GetBool("cache.enabled"),
			Size:    v.GetInt("cache.size"),
		},
		Logging: LoggingConfig{
			Provider:  v.GetString("logging.provider"),
			Level:     v.GetString("logging.level"),
			Format:    v.GetString("logging.format"),
			AddSource: v.GetBool("logging.add_source"),
			Focus:     v.GetStringSlice("logging.focus"),
		},
		Features: Features{
			Logger: v.GetBool("features.logger"),
			Cache:  v.GetBool("features.cache"),
		},
	}
	if len(cfg.Markdown.Parser.Extensions) == 0 {
		cfg.Markdown.Parser.Extensions = nil
	}
	if len(cfg.Logging.Focus) == 0 {
		cfg.Logging.Focus = nil
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("markdown.content_dir", cfg.Markdown.ContentDir)
	v.SetDefault("markdown.pattern", cfg.Markdown.Pattern)
	v.SetDefault("markdown.recursive", cfg.Markdown.Recursive)
	v.SetDefault("markdown.parser.extensions", cfg.Markdown.Parser.Extensions)
	v.SetDefault("cache.enabled", cfg.Cache.Enabled)
	v.SetDefault("cache.size", cfg.Cache.Size)
	v.SetDefault("logging.provider", cfg.Logging.Provider)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("logging.add_source", cfg.Logging.AddSource)
	v.SetDefault("logging.focus", cfg.Logging.Focus)
	v.SetDefault("features.logger", cfg.Features.Logger)
	v.SetDefault("features.cache", cfg.Features.Cache)
}
