package fsmanager

import "path/filepath"

// Kind distinguishes file entries from folder entries.
type Kind int

const (
	File Kind = iota
	Folder
)

func (k Kind) String() string {
	switch k {
	case File:
		return "file"
	case Folder:
		return "folder"
	default:
		return "unknown"
	}
}

// Entry describes one file or folder to create, relative to the manager root.
type Entry struct {
	Parent string // relative directory, empty means directly under the root
	Name   string
	Kind   Kind
}

// NewEntry returns an Entry for name under parent.
func NewEntry(parent, name string, kind Kind) Entry {
	return Entry{Parent: parent, Name: name, Kind: kind}
}

// Path returns the entry's path relative to the root.
func (e Entry) Path() string {
	return filepath.Join(e.Parent, e.Name)
}
