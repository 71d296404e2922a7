package fsmanager

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

const (
	dirPerm  os.FileMode = 0755
	filePerm os.FileMode = 0644
)

// Manager creates entries under a fixed root. It keeps no record of what it
// created; every call asks the filesystem.
type Manager struct {
	root string
	fs   billy.Filesystem
	log  *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used for per-entry debug output.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.log = l
		}
	}
}

// Init creates root (and any missing ancestors) and returns a Manager bound to it.
// It fails with ErrRootExists if anything is already present at root.
func Init(root string, opts ...Option) (*Manager, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, &IOError{Op: "resolve", Path: root, Err: err}
	}

	if _, err := os.Lstat(abs); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrRootExists, abs)
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, &IOError{Op: "stat", Path: abs, Err: err}
	}

	if err := os.MkdirAll(abs, dirPerm); err != nil {
		return nil, &IOError{Op: "mkdir", Path: abs, Err: err}
	}

	m := newManager(abs, osfs.New(abs, osfs.WithBoundOS()), opts)
	m.log.Debug("initialized root", "root", abs)
	return m, nil
}

// Open binds a Manager to an existing filesystem without the root guard.
func Open(fs billy.Filesystem, opts ...Option) *Manager {
	return newManager(fs.Root(), fs, opts)
}

func newManager(root string, fs billy.Filesystem, opts []Option) *Manager {
	m := &Manager{
		root: root,
		fs:   fs,
		log:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Root returns the directory all entries are created under.
func (m *Manager) Root() string { return m.root }

// Create materializes a single entry. Folders are created idempotently; files
// are created empty and fail with ErrDuplicateEntry if the target exists.
// Missing parent directories are created in both cases.
func (m *Manager) Create(e Entry) error {
	if err := checkRelative(e.Parent); err != nil {
		return err
	}
	if e.Name == "" {
		return fmt.Errorf("%w: empty %s name under %q", ErrInvalidPath, e.Kind, e.Parent)
	}
	if err := checkRelative(e.Name); err != nil {
		return err
	}

	rel := e.Path()
	switch e.Kind {
	case Folder:
		return m.ensureDir(rel)
	case File:
		return m.createFile(rel)
	default:
		return fmt.Errorf("%w: unknown entry kind %d for %s", ErrInvalidPath, e.Kind, rel)
	}
}

// CreateAll creates entries in order and stops at the first failure.
// Entries created before the failure are left in place.
func (m *Manager) CreateAll(entries []Entry) error {
	for _, e := range entries {
		if err := m.Create(e); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile replaces the content of an existing file with data and syncs it.
// It fails with ErrMissingTarget if rel was never created.
func (m *Manager) WriteFile(rel string, data []byte) error {
	if rel == "" {
		return fmt.Errorf("%w: empty write target", ErrInvalidPath)
	}
	if err := checkRelative(rel); err != nil {
		return err
	}

	path := m.abs(rel)
	info, err := m.fs.Stat(rel)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrMissingTarget, path)
	case err != nil:
		return &IOError{Op: "stat", Path: path, Err: err}
	case info.IsDir():
		return &IOError{Op: "write", Path: path, Err: errIsDir}
	}

	f, err := m.fs.OpenFile(rel, os.O_WRONLY|os.O_TRUNC, filePerm)
	if err != nil {
		return &IOError{Op: "open", Path: path, Err: err}
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if s, ok := f.(interface{ Sync() error }); ok {
		if err := s.Sync(); err != nil {
			f.Close()
			return &IOError{Op: "sync", Path: path, Err: err}
		}
	}
	if err := f.Close(); err != nil {
		return &IOError{Op: "close", Path: path, Err: err}
	}

	m.log.Debug("wrote file", "path", path, "bytes", len(data))
	return nil
}

func (m *Manager) ensureDir(rel string) error {
	path := m.abs(rel)
	info, err := m.fs.Stat(rel)
	switch {
	case err == nil && info.IsDir():
		m.log.Debug("folder exists", "path", path)
		return nil
	case err == nil:
		return &IOError{Op: "mkdir", Path: path, Err: errNotDir}
	case !errors.Is(err, os.ErrNotExist):
		return &IOError{Op: "stat", Path: path, Err: err}
	}

	if err := m.fs.MkdirAll(rel, dirPerm); err != nil {
		return &IOError{Op: "mkdir", Path: path, Err: err}
	}
	m.log.Debug("created folder", "path", path)
	return nil
}

func (m *Manager) createFile(rel string) error {
	path := m.abs(rel)
	if _, err := m.fs.Lstat(rel); err == nil {
		return fmt.Errorf("%w: %s", ErrDuplicateEntry, path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return &IOError{Op: "stat", Path: path, Err: err}
	}

	if dir := filepath.Dir(rel); dir != "." {
		if err := m.ensureDir(dir); err != nil {
			return err
		}
	}

	f, err := m.fs.OpenFile(rel, os.O_CREATE|os.O_WRONLY|os.O_EXCL, filePerm)
	if errors.Is(err, os.ErrExist) {
		return fmt.Errorf("%w: %s", ErrDuplicateEntry, path)
	}
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}

	m.log.Debug("created file", "path", path)
	return nil
}

func (m *Manager) abs(rel string) string {
	return filepath.Join(m.root, rel)
}

// checkRelative rejects absolute paths and any ".." segment.
func checkRelative(p string) error {
	if p == "" {
		return nil
	}
	slashed := filepath.ToSlash(p)
	if filepath.IsAbs(p) || strings.HasPrefix(slashed, "/") || filepath.VolumeName(p) != "" {
		return fmt.Errorf("%w: %q is absolute", ErrInvalidPath, p)
	}
	for _, seg := range strings.Split(slashed, "/") {
		if seg == ".." {
			return fmt.Errorf("%w: %q escapes the root", ErrInvalidPath, p)
		}
	}
	return nil
}
