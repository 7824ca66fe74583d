package progresscmd

import (
	"errors"

	"github.com/goliatone/go-mdprogress/internal/commands"
	"github.com/goliatone/go-mdprogress/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract expected when wiring command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// HandlerSet groups the handlers produced by RegisterProgressCommands.
type HandlerSet struct {
	File      *AnnotateFileHandler
	Directory *AnnotateDirectoryHandler
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	fileHandlerOpts      []commands.HandlerOption[AnnotateFileCommand]
	directoryHandlerOpts []commands.HandlerOption[AnnotateDirectoryCommand]
}

// WithFileHandlerOptions forwards options to the AnnotateFileHandler constructor.
func WithFileHandlerOptions(opts ...commands.HandlerOption[AnnotateFileCommand]) Option {
	return func(cfg *options) {
		cfg.fileHandlerOpts = append(cfg.fileHandlerOpts, opts...)
	}
}

// WithDirectoryHandlerOptions forwards options to the AnnotateDirectoryHandler constructor.
func WithDirectoryHandlerOptions(opts ...commands.HandlerOption[AnnotateDirectoryCommand]) Option {
	return func(cfg *options) {
		cfg.directoryHandlerOpts = append(cfg.directoryHandlerOpts, opts...)
	}
}

// RegisterProgressCommands builds the progress handlers and registers them
// with reg when it is non-nil.
func RegisterProgressCommands(reg CommandRegistry, service interfaces.ProgressService, sink Sink, provider interfaces.LoggerProvider, opts ...Option) (*HandlerSet, error) {
	if service == nil {
		return nil, errors.New("progress command registration: service is nil")
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	logger := commands.CommandLogger(provider, "progress")

	set := &HandlerSet{
		File:      NewAnnotateFileHandler(service, sink, logger, cfg.fileHandlerOpts...),
		Directory: NewAnnotateDirectoryHandler(service, sink, logger, cfg.directoryHandlerOpts...),
	}

	if reg != nil {
		if err := reg.RegisterCommand(set.File); err != nil {
			return nil, err
		}
		if err := reg.RegisterCommand(set.Directory); err != nil {
			return nil, err
		}
	}

	return set, nil
}
