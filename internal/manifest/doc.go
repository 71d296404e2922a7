// Package manifest validates the Cargo.toml manifest generated for a new
// project. The manifest is decoded from TOML and checked against an embedded
// JSON Schema; the package version is additionally required to be strict semver.
package manifest
