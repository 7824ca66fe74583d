package progresscmd

import "testing"

func TestAnnotateFileCommandValidateRequiresPath(t *testing.T) {
	cmd := AnnotateFileCommand{}
	if err := cmd.Validate(); err == nil {
		t.Fatal("expected error when path missing")
	}

	cmd.Path = "   "
	if err := cmd.Validate(); err == nil {
		t.Fatal("expected error when path is blank")
	}

	cmd.Path = "notes/todo.md"
	if err := cmd.Validate(); err != nil {
		t.Fatalf("unexpected error when path provided: %v", err)
	}
}

func TestAnnotateFileCommandValidateExtensions(t *testing.T) {
	cmd := AnnotateFileCommand{Path: "todo.md", Extensions: []string{"gfm", "mermaid"}}
	if err := cmd.Validate(); err == nil {
		t.Fatal("expected error for unknown extension")
	}

	cmd.Extensions = []string{"TaskList", " footnote "}
	if err := cmd.Validate(); err != nil {
		t.Fatalf("unexpected error for known extensions: %v", err)
	}
}

func TestAnnotateDirectoryCommandValidateRequiresDirectory(t *testing.T) {
	cmd := AnnotateDirectoryCommand{}
	if err := cmd.Validate(); err == nil {
		t.Fatal("expected error when directory missing")
	}

	cmd.Directory = "docs"
	if err := cmd.Validate(); err != nil {
		t.Fatalf("unexpected error when directory provided: %v", err)
	}
}

func TestAnnotateDirectoryCommandValidatePattern(t *testing.T) {
	cmd := AnnotateDirectoryCommand{Directory: "docs", Pattern: "[*.md"}
	if err := cmd.Validate(); err == nil {
		t.Fatal("expected error for malformed pattern")
	}

	cmd.Pattern = "*.markdown"
	if err := cmd.Validate(); err != nil {
		t.Fatalf("unexpected error for valid pattern: %v", err)
	}
}

func TestMessageTypes(t *testing.T) {
	if got := (AnnotateFileCommand{}).Type(); got != "mdprogress.progress.annotate_file" {
		t.Fatalf("unexpected file message type %q", got)
	}
	if got := (AnnotateDirectoryCommand{}).Type(); got != "mdprogress.progress.annotate_directory" {
		t.Fatalf("unexpected directory message type %q", got)
	}
}
