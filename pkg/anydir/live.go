package anydir

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// LiveDir is a directory provider backed by the host filesystem. It holds
// a base path only; every operation issues a live OS call and nothing is
// cached between calls, so two consecutive listings may legitimately
// differ if the filesystem changed.
//
// LiveDir has no internal mutable state. Concurrent calls are safe but
// each pays its own I/O cost.
type LiveDir struct {
	path string
}

// NewLive creates a LiveDir over the given base path. The constructor
// performs no I/O; the path is not checked until the first operation.
func NewLive(path string) *LiveDir {
	return &LiveDir{path: path}
}

// Path returns the base path this provider queries.
func (d *LiveDir) Path() string { return d.path }

// ListFiles issues a directory-listing system call and returns the names
// of direct regular-file children, sorted lexicographically. Symlinks are
// resolved; those pointing at regular files are included, others skipped.
//
// A missing base path yields ErrNotFound and a base path that is not a
// directory yields ErrNotADirectory, never an empty list, so callers can
// distinguish "empty directory" from "directory missing".
func (d *LiveDir) ListFiles() ([]string, error) {
	entries, err := os.ReadDir(d.path)
	if err != nil {
		return nil, d.classify(err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		ok, err := isRegular(entry, d.path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve entry %s: %w", entry.Name(), err)
		}
		if ok {
			names = append(names, entry.Name())
		}
	}

	sort.Strings(names)
	return names, nil
}

// ReadFile reads the file at the given slash-separated path relative to
// the base path. Returns ErrNotFound if it does not exist.
func (d *LiveDir) ReadFile(name string) ([]byte, error) {
	if !fs.ValidPath(name) || name == "." {
		return nil, fmt.Errorf("file %s: %w", name, ErrNotFound)
	}

	content, err := os.ReadFile(filepath.Join(d.path, filepath.FromSlash(name)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("file %s: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return content, nil
}

// Entries returns the direct regular-file children as Entry values,
// sorted lexicographically by name.
func (d *LiveDir) Entries() ([]Entry, error) {
	names, err := d.ListFiles()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, &liveEntry{
			absPath: filepath.Join(d.path, name),
			relPath: name,
		})
	}
	return entries, nil
}

// Sub returns the named subdirectory as a new LiveDir. Like NewLive, this
// performs no I/O; existence is checked on first use.
func (d *LiveDir) Sub(name string) (Dir, error) {
	if !fs.ValidPath(name) || name == "." {
		return nil, fmt.Errorf("subdirectory %s: %w", name, ErrNotFound)
	}
	return NewLive(filepath.Join(d.path, filepath.FromSlash(name))), nil
}

// classify maps an OS listing error onto the anydir error taxonomy.
func (d *LiveDir) classify(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("directory %s: %w", d.path, ErrNotFound)
	}
	if info, statErr := os.Stat(d.path); statErr == nil && !info.IsDir() {
		return fmt.Errorf("path %s: %w", d.path, ErrNotADirectory)
	}
	return fmt.Errorf("failed to list directory %s: %w", d.path, err)
}

// isRegular reports whether a directory entry is a regular file,
// following symlinks to their target.
func isRegular(entry os.DirEntry, base string) (bool, error) {
	mode := entry.Type()
	if mode.IsRegular() {
		return true, nil
	}
	if mode&fs.ModeSymlink == 0 {
		return false, nil
	}

	// os.Stat follows the link; a dangling symlink is simply skipped.
	info, err := os.Stat(filepath.Join(base, entry.Name()))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// liveEntry implements Entry for host filesystem files. Reads are not
// cached; the underlying file can change between calls.
type liveEntry struct {
	absPath string
	relPath string
}

func (e *liveEntry) Name() string { return e.relPath }

func (e *liveEntry) AbsolutePath() (string, bool) { return e.absPath, true }

func (e *liveEntry) ReadBytes() ([]byte, error) {
	content, err := os.ReadFile(e.absPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("file %s: %w", e.relPath, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read %s: %w", e.relPath, err)
	}
	return content, nil
}

func (e *liveEntry) ReadString() (string, error) {
	content, err := e.ReadBytes()
	if err != nil {
		return "", err
	}
	return string(content), nil
}

func (e *liveEntry) String() string { return e.relPath }

// Verify interface conformance at compile time
var (
	_ Dir   = (*LiveDir)(nil)
	_ Entry = (*liveEntry)(nil)
)
