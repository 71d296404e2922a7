package scaffold

import (
	_ "embed"
	"fmt"
)

// manifestTemplate has two slots: project name, then description.
//
//go:embed templates/Cargo.toml.tmpl
var manifestTemplate string

//go:embed templates/main.rs.tmpl
var entryPointTemplate string

// RenderManifest fills the manifest template with name and description.
func RenderManifest(name, description string) string {
	return fmt.Sprintf(manifestTemplate, name, description)
}

// EntryPoint returns the static entry-point source.
func EntryPoint() string {
	return entryPointTemplate
}
