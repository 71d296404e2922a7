// Package config manages user-level settings stored at ~/.skelgen/config.yaml.
// Values can be overridden with SKELGEN_-prefixed environment variables; the
// only setting consumed today is the default output directory for new projects.
package config
