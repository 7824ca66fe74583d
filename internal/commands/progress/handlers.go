package progresscmd

import (
	"context"
	"fmt"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-mdprogress/internal/commands"
	"github.com/goliatone/go-mdprogress/internal/logging"
	"github.com/goliatone/go-mdprogress/pkg/interfaces"
)

const (
	annotateFileOperation      = "progress.annotate_file"
	annotateDirectoryOperation = "progress.annotate_directory"
)

var (
	_ command.Commander[AnnotateFileCommand]      = (*AnnotateFileHandler)(nil)
	_ command.Commander[AnnotateDirectoryCommand] = (*AnnotateDirectoryHandler)(nil)
)

// AnnotateFileHandler runs the progress passes over a single document and
// forwards the result to a Sink.
type AnnotateFileHandler struct {
	inner *commands.Handler[AnnotateFileCommand]
}

// NewAnnotateFileHandler creates a handler bound to the supplied progress service.
func NewAnnotateFileHandler(service interfaces.ProgressService, sink Sink, logger interfaces.Logger, opts ...commands.HandlerOption[AnnotateFileCommand]) *AnnotateFileHandler {
	baseLogger := commands.EnsureLogger(logger)
	if sink == nil {
		sink = discardSink{}
	}

	exec := func(ctx context.Context, msg AnnotateFileCommand) error {
		doc, err := service.AnnotateFile(ctx, msg.Path, interfaces.LoadOptions{
			Parser: interfaces.ParseOptions{Extensions: msg.Extensions},
		})
		if err != nil {
			return err
		}
		logSummary(baseLogger, "progress.command.annotate_file.completed", []*interfaces.Document{doc})
		return sink.Emit(ctx, doc)
	}

	handlerOpts := []commands.HandlerOption[AnnotateFileCommand]{
		commands.WithLogger[AnnotateFileCommand](baseLogger),
		commands.WithOperation[AnnotateFileCommand](annotateFileOperation),
		commands.WithMessageFields(func(msg AnnotateFileCommand) map[string]any {
			fields := map[string]any{"path": msg.Path}
			if len(msg.Extensions) > 0 {
				fields["extensions"] = msg.Extensions
			}
			return fields
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &AnnotateFileHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[AnnotateFileCommand].
func (h *AnnotateFileHandler) Execute(ctx context.Context, msg AnnotateFileCommand) error {
	return h.inner.Execute(ctx, msg)
}

// AnnotateDirectoryHandler annotates a directory of documents, emitting them
// to the Sink in path order.
type AnnotateDirectoryHandler struct {
	inner *commands.Handler[AnnotateDirectoryCommand]
}

// NewAnnotateDirectoryHandler creates a handler bound to the supplied progress service.
func NewAnnotateDirectoryHandler(service interfaces.ProgressService, sink Sink, logger interfaces.Logger, opts ...commands.HandlerOption[AnnotateDirectoryCommand]) *AnnotateDirectoryHandler {
	baseLogger := commands.EnsureLogger(logger)
	if sink == nil {
		sink = discardSink{}
	}

	exec := func(ctx context.Context, msg AnnotateDirectoryCommand) error {
		docs, err := service.AnnotateDirectory(ctx, msg.Directory, interfaces.LoadOptions{
			Pattern:   msg.Pattern,
			Recursive: msg.Recursive,
			Parser:    interfaces.ParseOptions{Extensions: msg.Extensions},
		})
		if err != nil {
			return err
		}
		logSummary(baseLogger, "progress.command.annotate_directory.completed", docs)

		for _, doc := range docs {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := sink.Emit(ctx, doc); err != nil {
				return fmt.Errorf("emit %s: %w", doc.FilePath, err)
			}
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[AnnotateDirectoryCommand]{
		commands.WithLogger[AnnotateDirectoryCommand](baseLogger),
		commands.WithOperation[AnnotateDirectoryCommand](annotateDirectoryOperation),
		commands.WithMessageFields(func(msg AnnotateDirectoryCommand) map[string]any {
			fields := map[string]any{"directory": msg.Directory}
			if msg.Pattern != "" {
				fields["pattern"] = msg.Pattern
			}
			if msg.Recursive != nil {
				fields["recursive"] = *msg.Recursive
			}
			if len(msg.Extensions) > 0 {
				fields["extensions"] = msg.Extensions
			}
			return fields
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &AnnotateDirectoryHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[AnnotateDirectoryCommand].
func (h *AnnotateDirectoryHandler) Execute(ctx context.Context, msg AnnotateDirectoryCommand) error {
	return h.inner.Execute(ctx, msg)
}

func logSummary(logger interfaces.Logger, event string, docs []*interfaces.Document) {
	var lists, checkable, checked int
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		lists += doc.Summary.Lists
		checkable += doc.Summary.Checkable
		checked += doc.Summary.Checked
	}
	logging.WithFields(logger, map[string]any{
		"document_count":  len(docs),
		"list_count":      lists,
		"checkable_count": checkable,
		"checked_count":   checked,
	}).Info(event)
}
