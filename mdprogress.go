package mdprogress

import (
	progresscmd "github.com/goliatone/go-mdprogress/internal/commands/progress"
	"github.com/goliatone/go-mdprogress/internal/di"
	"github.com/goliatone/go-mdprogress/internal/progress"
	"github.com/goliatone/go-mdprogress/pkg/interfaces"
	"github.com/goliatone/go-mdprogress/pkg/mdast"
)

// ProgressService exports the annotation service contract.
type ProgressService = interfaces.ProgressService

// Document exports the annotated document DTO.
type Document = interfaces.Document

// ListProgress exports the per-list report carried by Document.
type ListProgress = interfaces.ListProgress

// ProgressSummary exports the per-document totals carried by Document.
type ProgressSummary = interfaces.ProgressSummary

// ParseOptions exports the parser overrides.
type ParseOptions = interfaces.ParseOptions

// LoadOptions exports the file discovery overrides.
type LoadOptions = interfaces.LoadOptions

// CommandHandlers exports the handler set built for the module.
type CommandHandlers = progresscmd.HandlerSet

// Module represents the top level runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a module using the provided configuration and optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Progress returns the configured annotation service.
func (m *Module) Progress() ProgressService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.ProgressService()
}

// Commands returns the command handlers bound to the annotation service.
func (m *Module) Commands() *CommandHandlers {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Commands()
}

// LoggerProvider returns the provider used by the module, nil when logging is disabled.
func (m *Module) LoggerProvider() interfaces.LoggerProvider {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.LoggerProvider()
}

// Aggregate returns a copy of root with every reachable list annotated with
// its checkbox counts and weighted completion.
func Aggregate(root *mdast.Root) *mdast.Root {
	return progress.Aggregate(root)
}

// Inject returns a copy of an aggregated tree with "[NN%] " labels prepended
// to items that own a sub-list.
func Inject(root *mdast.Root) *mdast.Root {
	return progress.Inject(root)
}

// Process runs Aggregate followed by Inject.
func Process(root *mdast.Root) *mdast.Root {
	return progress.Inject(progress.Aggregate(root))
}

// Label formats a percentage in [0,1] as it appears in list items.
func Label(percentage float64) string {
	return progress.Label(percentage)
}
