package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-mdprogress/cmd/mdprogress/internal/bootstrap"
	progresscmd "github.com/goliatone/go-mdprogress/internal/commands/progress"
	"github.com/goliatone/go-mdprogress/internal/progress"
	"github.com/goliatone/go-mdprogress/pkg/interfaces"
	"github.com/goliatone/go-mdprogress/pkg/mdast"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatalf("mdprogress: %v", err)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("mdprogress", flag.ExitOnError)
	configFile := fs.String("config", "", "YAML or TOML config file (MDPROGRESS_* variables override it)")
	file := fs.String("file", "", "Markdown file to annotate, relative to the content root")
	dir := fs.String("dir", "", "Directory to annotate, relative to the content root")
	tree := fs.String("tree", "", "mdast JSON file to process directly (- reads stdin)")
	contentDir := fs.String("content-dir", "", "Path to the markdown content root (default .)")
	pattern := fs.String("pattern", "", "Glob pattern applied when discovering markdown files (default *.md)")
	recursive := fs.Bool("recursive", true, "Descend into sub-directories when annotating a directory")
	extensions := fs.String("extensions", "", "Comma separated goldmark extensions (default gfm,footnote)")
	cacheSize := fs.Int("cache-size", 0, "Number of annotation results to memoise (0 disables the cache)")
	format := fs.String("format", "summary", "Output format: summary or json")
	stage := fs.String("stage", "display", "Tree emitted with -format json: raw, annotated or display")
	logProvider := fs.String("log-provider", "", "Logging provider: console or gologger (default console)")
	logLevel := fs.String("log-level", "", "Minimum log level (default warn)")
	logFormat := fs.String("log-format", "", "go-logger output format (json or console)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	var recursiveOverride *bool
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "recursive" {
			recursiveOverride = recursive
		}
	})

	selected := 0
	for _, value := range []string{*file, *dir, *tree} {
		if strings.TrimSpace(value) != "" {
			selected++
		}
	}
	if selected != 1 {
		return fmt.Errorf("exactly one of -file, -dir or -tree is required")
	}

	outFormat := strings.ToLower(strings.TrimSpace(*format))
	if outFormat != "summary" && outFormat != "json" {
		return fmt.Errorf("unknown format %q", *format)
	}
	outStage := strings.ToLower(strings.TrimSpace(*stage))
	if _, err := stageTree(&interfaces.Document{}, outStage); err != nil {
		return err
	}

	collector := &progresscmd.Collector{}
	module, err := moduleBuilder(bootstrap.Options{
		ConfigFile:  *configFile,
		ContentDir:  *contentDir,
		Pattern:     *pattern,
		Recursive:   recursiveOverride,
		Extensions:  bootstrap.SplitList(*extensions),
		CacheSize:   *cacheSize,
		LogProvider: *logProvider,
		LogLevel:    *logLevel,
		LogFormat:   *logFormat,
		Sink:        collector,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	if module == nil {
		return fmt.Errorf("progress module not configured")
	}

	if strings.TrimSpace(*tree) != "" {
		return runTree(module, *tree, stdin, stdout)
	}
	if module.Commands == nil {
		return fmt.Errorf("progress commands not configured")
	}

	ctx := context.Background()
	if strings.TrimSpace(*file) != "" {
		err = module.Commands.File.Execute(ctx, progresscmd.AnnotateFileCommand{Path: *file})
	} else {
		err = module.Commands.Directory.Execute(ctx, progresscmd.AnnotateDirectoryCommand{
			Directory: *dir,
			Pattern:   *pattern,
			Recursive: recursiveOverride,
		})
	}
	if err != nil {
		return fmt.Errorf("execute annotate command: %w", err)
	}

	docs := collector.Documents()
	if outFormat == "json" {
		return writeJSON(stdout, docs, outStage)
	}
	return writeSummary(stdout, docs)
}

func runTree(module *bootstrap.Module, path string, stdin io.Reader, stdout io.Writer) error {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("read tree: %w", err)
	}

	root, err := mdast.Decode(data)
	if err != nil {
		return fmt.Errorf("decode tree: %w", err)
	}

	processed := progress.Inject(progress.Aggregate(root))
	summary := progress.Summarize(progress.Lists(processed))
	if module.Logger != nil {
		module.Logger.Debug("progress.tree.processed",
			"source", path,
			"lists", summary.Lists,
			"checkable", summary.Checkable,
			"checked", summary.Checked,
		)
	}

	encoded, err := mdast.Marshal(processed)
	if err != nil {
		return fmt.Errorf("encode tree: %w", err)
	}
	if _, err := stdout.Write(append(encoded, '\n')); err != nil {
		return err
	}
	return nil
}

type documentReport struct {
	File        string                     `json:"file"`
	FrontMatter interfaces.FrontMatter     `json:"front_matter"`
	Summary     interfaces.ProgressSummary `json:"summary"`
	Lists       []interfaces.ListProgress  `json:"lists"`
	Tree        *mdast.Root                `json:"tree"`
}

func writeJSON(w io.Writer, docs []*interfaces.Document, stage string) error {
	reports := make([]documentReport, 0, len(docs))
	for _, doc := range docs {
		tree, err := stageTree(doc, stage)
		if err != nil {
			return err
		}
		reports = append(reports, documentReport{
			File:        doc.FilePath,
			FrontMatter: doc.FrontMatter,
			Summary:     doc.Summary,
			Lists:       doc.Lists,
			Tree:        tree,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}

func writeSummary(w io.Writer, docs []*interfaces.Document) error {
	for _, doc := range docs {
		name := doc.FilePath
		if name == "" {
			name = "-"
		}
		if title := strings.TrimSpace(doc.FrontMatter.Title); title != "" {
			name = fmt.Sprintf("%s (%s)", name, title)
		}
		if _, err := fmt.Fprintf(w, "%s: %d/%d checked in %d lists\n",
			name, doc.Summary.Checked, doc.Summary.Checkable, doc.Summary.Lists); err != nil {
			return err
		}
		for _, list := range doc.Lists {
			if _, err := fmt.Fprintf(w, "%s%s %d/%d checked, %d items\n",
				strings.Repeat("  ", list.Depth+1), list.Label, list.CheckedCount, list.TotalCheckable, list.Items); err != nil {
				return err
			}
		}
	}
	return nil
}

func stageTree(doc *interfaces.Document, stage string) (*mdast.Root, error) {
	switch stage {
	case "raw":
		return doc.Tree, nil
	case "annotated":
		return doc.Annotated, nil
	case "display", "":
		return doc.Display, nil
	default:
		return nil, fmt.Errorf("unknown stage %q", stage)
	}
}
