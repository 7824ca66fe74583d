package runtimeconfig_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-mdprogress/internal/runtimeconfig"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := runtimeconfig.DefaultConfig().Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

func TestConfigValidate_RequiresContentDir(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Markdown.ContentDir = " "

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrContentDirRequired) {
		t.Fatalf("expected ErrContentDirRequired, got %v", err)
	}
}

func TestConfigValidate_RejectsUnbalancedPattern(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Markdown.Pattern = "[*.md"

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrPatternInvalid) {
		t.Fatalf("expected ErrPatternInvalid, got %v", err)
	}
}

func TestConfigValidate_CacheRequiresFeature(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Cache.Enabled = true

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrCacheFeatureRequired) {
		t.Fatalf("expected ErrCacheFeatureRequired, got %v", err)
	}
}

func TestConfigValidate_CacheSizeMustBePositive(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Cache = true
	cfg.Cache.Enabled = true
	cfg.Cache.Size = 0

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrCacheSizeInvalid) {
		t.Fatalf("expected ErrCacheSizeInvalid, got %v", err)
	}
}

func TestConfigEffectiveCacheSize(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	if got := cfg.EffectiveCacheSize(); got != 0 {
		t.Fatalf("expected disabled cache to report 0, got %d", got)
	}

	cfg.Features.Cache = true
	cfg.Cache.Enabled = true
	cfg.Cache.Size = 16
	if got := cfg.EffectiveCacheSize(); got != 16 {
		t.Fatalf("expected cache size 16, got %d", got)
	}
}

func TestConfigValidate_RequiresLoggingProviderWhenFeatureEnabled(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = ""

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingProviderRequired) {
		t.Fatalf("expected ErrLoggingProviderRequired, got %v", err)
	}
}

func TestConfigValidate_RejectsUnknownLoggingProvider(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "syslog"

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}
}

func TestConfigValidate_RejectsInvalidLoggingLevel(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Level = "verbose"

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}
}

func TestConfigValidate_RejectsInvalidLoggingFormat(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Format = "xml"

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}
}

func TestConfigValidate_ConsoleIgnoresFormat(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Format = "xml"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected console provider to ignore format, got %v", err)
	}
}
