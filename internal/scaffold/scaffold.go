package scaffold

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/skelgen/skelgen/internal/fsmanager"
	"github.com/skelgen/skelgen/internal/manifest"
)

// Options holds the inputs of a single scaffold run.
type Options struct {
	Name        string // project name, also the root directory name
	Description string // may be empty
	OutputDir   string // base directory; empty means the current working directory
	Logger      *slog.Logger
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	Root     string
	Files    []string
	Warnings []string
}

// ResolveRoot returns the absolute project root for name under outputDir.
func ResolveRoot(outputDir, name string) (string, error) {
	base := outputDir
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("determining working directory: %w", err)
		}
		base = wd
	}

	abs, err := filepath.Abs(base)
	if err != nil {
		return "", fmt.Errorf("resolving output directory %s: %w", base, err)
	}
	return filepath.Join(abs, name), nil
}

// Generate creates a new project skeleton. It fails without touching the disk
// if the project root already exists; any later failure leaves the partially
// created tree in place.
func Generate(opts Options) (*Result, error) {
	if opts.Name == "" {
		return nil, fmt.Errorf("project name is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	root, err := ResolveRoot(opts.OutputDir, opts.Name)
	if err != nil {
		return nil, err
	}

	fm, err := fsmanager.Init(root, fsmanager.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("initializing project root: %w", err)
	}

	layout := Layout()
	if err := fm.CreateAll(layout); err != nil {
		return nil, fmt.Errorf("creating project layout: %w", err)
	}

	rendered := []struct {
		entry   fsmanager.Entry
		content string
	}{
		{mainEntry(), EntryPoint()},
		{manifestEntry(), RenderManifest(opts.Name, opts.Description)},
	}
	for _, r := range rendered {
		if err := fm.WriteFile(r.entry.Path(), []byte(r.content)); err != nil {
			return nil, fmt.Errorf("writing %s: %w", r.entry.Path(), err)
		}
	}

	result := &Result{Root: fm.Root()}
	for _, e := range layout {
		result.Files = append(result.Files, filepath.ToSlash(e.Path()))
	}

	// Validate the generated manifest; problems are reported, not fatal.
	valResult, valErr := manifest.ValidateFile(filepath.Join(root, manifestEntry().Path()))
	if valErr != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not validate manifest: %v", valErr))
	} else if !valResult.Valid {
		for _, issue := range valResult.Issues {
			result.Warnings = append(result.Warnings, manifestEntry().Path()+": "+issue.String())
		}
	}

	logger.Info("project created", "name", opts.Name, "root", result.Root, "files", len(result.Files))
	return result, nil
}
