// Package scaffold generates a new project skeleton. It powers the "skelgen new"
// command: the project root is created, the fixed layout of module files is laid
// down, and the manifest and entry-point templates are rendered into place. The
// generated manifest is validated and any problems are reported as warnings.
package scaffold
