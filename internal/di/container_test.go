package di

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-mdprogress/internal/commands/fixtures"
	progresscmd "github.com/goliatone/go-mdprogress/internal/commands/progress"
	"github.com/goliatone/go-mdprogress/internal/logging/console"
	"github.com/goliatone/go-mdprogress/internal/logging/gologger"
	"github.com/goliatone/go-mdprogress/internal/runtimeconfig"
	"github.com/goliatone/go-mdprogress/pkg/interfaces"
)

func memoryFS() fstest.MapFS {
	return fstest.MapFS{
		"todo.md":       {Data: []byte("- [ ] Parent\n  - [x] Child1\n  - [ ] Child2\n")},
		"notes/done.md": {Data: []byte("- [x] shipped\n")},
	}
}

func TestConfigureLoggerProviderUsesGoLoggerAdapter(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Level = "debug"
	cfg.Logging.Format = "json"

	container, err := NewContainer(cfg, WithFilesystem(memoryFS()))
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}

	provider, ok := container.loggerProvider.(*gologger.Provider)
	if !ok {
		t.Fatalf("expected go-logger provider, got %T", container.loggerProvider)
	}
	if provider.GetLogger("mdprogress.test") == nil {
		t.Fatal("expected logger from go-logger provider, got nil")
	}
}

func TestConfigureLoggerProviderDefaultsToConsole(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true

	container, err := NewContainer(cfg, WithFilesystem(memoryFS()))
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}
	if _, ok := container.loggerProvider.(*console.Provider); !ok {
		t.Fatalf("expected console provider, got %T", container.loggerProvider)
	}
}

func TestLoggerDisabledLeavesProviderNil(t *testing.T) {
	container, err := NewContainer(runtimeconfig.DefaultConfig(), WithFilesystem(memoryFS()))
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}
	if container.LoggerProvider() != nil {
		t.Fatalf("expected nil provider, got %T", container.LoggerProvider())
	}
}

func TestNewContainerRejectsInvalidConfig(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Cache.Enabled = true

	if _, err := NewContainer(cfg); !errors.Is(err, runtimeconfig.ErrCacheFeatureRequired) {
		t.Fatalf("expected ErrCacheFeatureRequired, got %v", err)
	}

	cfg = runtimeconfig.DefaultConfig()
	cfg.Markdown.Parser.Extensions = []string{"mermaid"}
	if _, err := NewContainer(cfg); err == nil {
		t.Fatal("expected unknown extension error")
	}
}

func TestContainerCommandsRunAgainstService(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Cache = true
	cfg.Cache.Enabled = true

	sink := &progresscmd.Collector{}
	reg := fixtures.NewRecordingRegistry()
	container, err := NewContainer(cfg,
		WithFilesystem(memoryFS()),
		WithSink(sink),
		WithCommandRegistry(reg),
	)
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}
	if len(reg.Handlers) != 2 {
		t.Fatalf("expected handlers registered, got %d", len(reg.Handlers))
	}

	for i := 0; i < 2; i++ {
		if err := container.Commands().File.Execute(context.Background(), progresscmd.AnnotateFileCommand{Path: "todo.md"}); err != nil {
			t.Fatalf("annotate file run %d: %v", i, err)
		}
	}

	docs := sink.Documents()
	if len(docs) != 2 {
		t.Fatalf("expected two emitted documents, got %d", len(docs))
	}
	if docs[0].Summary != (interfaces.ProgressSummary{Lists: 2, Checkable: 3, Checked: 1}) {
		t.Fatalf("unexpected summary %+v", docs[0].Summary)
	}
	if container.ProgressService().CacheLen() != 1 {
		t.Fatalf("expected repeated file to hit the cache, len=%d", container.ProgressService().CacheLen())
	}
}
