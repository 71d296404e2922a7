// Package cli defines the Cobra command tree for the skelgen CLI. Each file in
// this package registers one top-level command with the root command. Commands
// delegate to internal packages for the real work and only handle flag parsing,
// output formatting and exit status.
package cli
