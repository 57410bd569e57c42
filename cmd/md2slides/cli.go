package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	md2slides "github.com/alnah/go-md2slides"
	"github.com/alnah/go-md2slides/internal/config"
	"github.com/alnah/go-md2slides/internal/fileutil"
	"github.com/alnah/go-md2slides/processors"
)

// Sentinel errors for CLI operations.
var (
	ErrInvalidArgs      = errors.New("usage: md2slides [flags] <input.md> <output.html>")
	ErrReadMarkdown     = errors.New("failed to read markdown file")
	ErrReadTemplate     = errors.New("failed to read template file")
	ErrWriteOutput      = errors.New("failed to write output file")
	ErrInvalidExtension = errors.New("input file must have .md or .markdown extension")
)

// Positional argument count.
const requiredArgs = 2

// run loads configuration, builds the processor pipeline, and drives the
// deck from input Markdown to output HTML.
func run(ctx context.Context, flags *cliFlags, args []string, stdout, stderr io.Writer) error {
	if len(args) < requiredArgs {
		return ErrInvalidArgs
	}
	inputPath := args[0]
	outputPath := args[1]

	if err := validateMarkdownExtension(inputPath); err != nil {
		return err
	}

	// Load configuration
	cfg := config.DefaultConfig()
	if flags.config != "" {
		loaded, err := config.LoadConfig(flags.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	// Merge CLI flags into config (CLI wins)
	if flags.delimiter != "" {
		cfg.Delimiter = flags.delimiter
	}
	if flags.template != "" {
		cfg.Template = flags.template
	}

	mdContent, err := os.ReadFile(inputPath) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	// Build the processor pipeline in configured order
	procs, err := processors.Build(cfg.Processors)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := processors.CloseAll(procs); cerr != nil {
			fmt.Fprintf(stderr, "closing processors: %v\n", cerr)
		}
	}()
	processors.Retarget(procs, flags.targetDir)

	// Create asset directories before any processor writes into them
	for _, dir := range processors.TargetDirs(procs) {
		if flags.verbose {
			fmt.Fprintf(stderr, "Preparing target directory %s\n", dir)
		}
		if err := fileutil.PrepareTargetDir(dir, flags.force); err != nil {
			return err
		}
	}

	if cfg.Output.DefaultDir != "" && !filepath.IsAbs(outputPath) {
		outputPath = filepath.Join(cfg.Output.DefaultDir, outputPath)
	}
	if err := fileutil.CheckOutputPath(outputPath, flags.force); err != nil {
		return err
	}

	deck, err := md2slides.NewDeck(string(mdContent),
		md2slides.WithDelimiter(cfg.Delimiter),
		md2slides.WithProcessors(procs...),
	)
	if err != nil {
		return err
	}

	if flags.verbose {
		fmt.Fprintf(stderr, "Processing %d slides with %d processors\n",
			len(deck.Slides()), len(procs))
	}
	if err := deck.Run(ctx); err != nil {
		return err
	}

	body, err := deck.HTML(ctx)
	if err != nil {
		return err
	}

	out := body
	if cfg.Template != "" {
		tmpl, err := os.ReadFile(cfg.Template) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("%w: %v", ErrReadTemplate, err)
		}
		out, err = md2slides.MergeIntoTemplate(string(tmpl), body)
		if err != nil {
			return err
		}
	}

	if err := os.WriteFile(outputPath, []byte(out), fileutil.FilePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	fmt.Fprintf(stdout, "Created %s\n", outputPath)
	return nil
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	ext := filepath.Ext(path)
	if ext != ".md" && ext != ".markdown" {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}
	return nil
}
