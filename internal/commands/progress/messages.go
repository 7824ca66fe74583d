package progresscmd

import (
	"path"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-mdprogress/internal/markdown"
)

const (
	annotateFileMessageType      = "mdprogress.progress.annotate_file"
	annotateDirectoryMessageType = "mdprogress.progress.annotate_directory"
)

// AnnotateFileCommand parses a single Markdown document and runs both
// progress passes over it.
type AnnotateFileCommand struct {
	// Path selects the document, relative to the service base path or absolute.
	Path string `json:"path"`
	// Extensions overrides the parser extensions for this run.
	Extensions []string `json:"extensions,omitempty"`
}

// Type implements command.Message.
func (AnnotateFileCommand) Type() string { return annotateFileMessageType }

// Validate ensures a path is present and every extension is known.
func (cmd AnnotateFileCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Path, validation.Required, validation.By(nonBlank(
			"mdprogress.progress.annotate_file.path_required", "path is required",
		))),
		validation.Field(&cmd.Extensions, validation.By(knownExtensions)),
	)
}

// AnnotateDirectoryCommand annotates every matching document under Directory.
type AnnotateDirectoryCommand struct {
	// Directory selects the filesystem path to walk.
	Directory string `json:"directory"`
	// Pattern overrides the configured glob, e.g. "*.md".
	Pattern string `json:"pattern,omitempty"`
	// Recursive overrides the configured recursion when non-nil.
	Recursive *bool `json:"recursive,omitempty"`
	// Extensions overrides the parser extensions for this run.
	Extensions []string `json:"extensions,omitempty"`
}

// Type implements command.Message.
func (AnnotateDirectoryCommand) Type() string { return annotateDirectoryMessageType }

// Validate ensures directory input is present and the pattern compiles.
func (cmd AnnotateDirectoryCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(nonBlank(
			"mdprogress.progress.annotate_directory.directory_required", "directory is required",
		))),
		validation.Field(&cmd.Pattern, validation.By(func(value any) error {
			pattern, _ := value.(string)
			if strings.TrimSpace(pattern) == "" {
				return nil
			}
			if _, err := path.Match(pattern, "probe.md"); err != nil {
				return validation.NewError("mdprogress.progress.annotate_directory.pattern_invalid", "pattern is not a valid glob")
			}
			return nil
		})),
		validation.Field(&cmd.Extensions, validation.By(knownExtensions)),
	)
}

func nonBlank(code, message string) validation.RuleFunc {
	return func(value any) error {
		if s, _ := value.(string); strings.TrimSpace(s) == "" {
			return validation.NewError(code, message)
		}
		return nil
	}
}

func knownExtensions(value any) error {
	names, _ := value.([]string)
	if err := markdown.ValidateExtensions(names); err != nil {
		return validation.NewError("mdprogress.progress.extension_unknown", err.Error())
	}
	return nil
}
