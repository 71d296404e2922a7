// Package fsmanager creates the on-disk skeleton of a new project. A Manager is
// bound to a root directory that it creates itself and refuses to reuse; entries
// (files and folders relative to that root) are created idempotently for folders
// and exclusively for files, and file contents are written only to files that
// already exist.
package fsmanager
