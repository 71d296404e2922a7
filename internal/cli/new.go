package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/skelgen/skelgen/internal/config"
	"github.com/skelgen/skelgen/internal/fsmanager"
	"github.com/skelgen/skelgen/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	newProjectName    string
	newProjectDetails string
	newOutputDir      string
)

func init() {
	newCmd.Flags().StringVarP(&newProjectName, "project-name", "p", "", "Project name, also used as the root directory name (required)")
	newCmd.Flags().StringVarP(&newProjectDetails, "project-details", "d", "", "Short project description written to Cargo.toml (required, may be empty)")
	newCmd.Flags().StringVarP(&newOutputDir, "output", "o", "", "Directory to create the project in (default: output_dir setting, then the current directory)")
	_ = newCmd.MarkFlagRequired("project-name")
	_ = newCmd.MarkFlagRequired("project-details")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Scaffold a new project",
	Long: `Create <output>/<project-name> containing:

  Cargo.toml
  src/main.rs
  src/application/mod.rs
  src/domain/mod.rs
  src/infrastructure/mod.rs

The command refuses to run if <output>/<project-name> already exists.

Examples:
  skelgen new -p demo -d "a test" -o /tmp/work
  skelgen new --project-name demo --project-details ""`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name := newProjectName
		if err := validateProjectName(name); err != nil {
			return &projectError{name: name, err: err}
		}

		outputDir := newOutputDir
		if outputDir == "" {
			outputDir = config.OutputDir()
		}

		result, err := scaffold.Generate(scaffold.Options{
			Name:        name,
			Description: newProjectDetails,
			OutputDir:   outputDir,
			Logger:      logger,
		})
		if err != nil {
			return &projectError{name: name, err: err}
		}

		printResult(cmd.OutOrStdout(), name, result)
		return nil
	},
}

// projectError reports a failed scaffold run for a named project.
type projectError struct {
	name string
	err  error
}

func (e *projectError) Error() string {
	msg := e.err.Error()
	if errors.Is(e.err, fsmanager.ErrRootExists) {
		msg += ". Please choose a different location."
	}
	return fmt.Sprintf("Failed to create project '%s': %s", e.name, msg)
}

func (e *projectError) Unwrap() error { return e.err }

// validateProjectName requires a single path segment, since the name becomes
// the root directory.
func validateProjectName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("project name must not be empty")
	}
	if name == "." || name == ".." {
		return fmt.Errorf("invalid project name %q", name)
	}
	if strings.ContainsAny(name, `/\`) || filepath.IsAbs(name) {
		return fmt.Errorf("project name %q must not contain path separators", name)
	}
	return nil
}

func printResult(w io.Writer, name string, result *scaffold.Result) {
	fmt.Fprintln(w, successStyle.Render(
		fmt.Sprintf("The project '%s' was successfully created at %s.", name, result.Root)))
	for _, f := range result.Files {
		fmt.Fprintln(w, dimStyle.Render("  "+f))
	}
	if len(result.Warnings) > 0 {
		fmt.Fprintln(w, "\nWarnings:")
		for _, warning := range result.Warnings {
			fmt.Fprintln(w, warnStyle.Render("  - "+warning))
		}
	}
}
