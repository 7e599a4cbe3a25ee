package anydir

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"unicode/utf8"
)

// EmbeddedDir is a directory whose contents were captured at build time.
// It owns an immutable mapping from slash-separated relative path to file
// content, fully resident in program memory. The set of paths and their
// byte content are fixed at construction and identical on every call.
//
// All operations are pure in-memory reads; EmbeddedDir is safe for
// concurrent use by multiple goroutines without synchronization.
type EmbeddedDir struct {
	files  map[string][]byte
	paths  []string // all embedded paths, sorted
	direct []string // direct children only, sorted
}

// NewEmbedded creates an EmbeddedDir from a mapping of slash-separated
// relative paths to file content. This is the constructor emitted by
// generated code; the same static data structure a hand-written call
// would produce.
//
// Keys must be valid slash-separated relative paths (no leading slash,
// no "." or ".." elements). NewEmbedded panics on an invalid key, since
// that indicates a corrupted generated file rather than a runtime
// condition. The provided content slices must not be mutated afterwards.
func NewEmbedded(files map[string][]byte) *EmbeddedDir {
	copied := make(map[string][]byte, len(files))
	paths := make([]string, 0, len(files))
	var direct []string

	for p, content := range files {
		if !fs.ValidPath(p) || p == "." {
			panic(fmt.Sprintf("anydir: invalid embedded path %q", p))
		}
		copied[p] = content
		paths = append(paths, p)
		if !strings.Contains(p, "/") {
			direct = append(direct, p)
		}
	}

	sort.Strings(paths)
	sort.Strings(direct)

	return &EmbeddedDir{
		files:  copied,
		paths:  paths,
		direct: direct,
	}
}

// ListFiles returns the names of the direct file children, sorted
// lexicographically. It performs no I/O and never fails.
func (d *EmbeddedDir) ListFiles() ([]string, error) {
	names := make([]string, len(d.direct))
	copy(names, d.direct)
	return names, nil
}

// ReadFile returns a copy of the embedded content for the given relative
// path. Any embedded path is addressable, including nested ones.
// Returns ErrNotFound if the path was not embedded.
func (d *EmbeddedDir) ReadFile(name string) ([]byte, error) {
	content, ok := d.files[name]
	if !ok {
		return nil, fmt.Errorf("embedded file %s: %w", name, ErrNotFound)
	}

	out := make([]byte, len(content))
	copy(out, content)
	return out, nil
}

// Entries returns the direct file children as Entry values, sorted
// lexicographically by name.
func (d *EmbeddedDir) Entries() ([]Entry, error) {
	entries := make([]Entry, 0, len(d.direct))
	for _, name := range d.direct {
		entries = append(entries, &embeddedEntry{
			name:    name,
			content: d.files[name],
		})
	}
	return entries, nil
}

// Sub returns the named embedded subdirectory as a Dir rooted at that
// subdirectory. Returns ErrNotFound if no embedded path lies under name.
func (d *EmbeddedDir) Sub(name string) (Dir, error) {
	if !fs.ValidPath(name) || name == "." {
		return nil, fmt.Errorf("embedded subdirectory %s: %w", name, ErrNotFound)
	}

	prefix := name + "/"
	sub := make(map[string][]byte)
	for p, content := range d.files {
		if strings.HasPrefix(p, prefix) {
			sub[strings.TrimPrefix(p, prefix)] = content
		}
	}

	if len(sub) == 0 {
		if _, isFile := d.files[name]; isFile {
			return nil, fmt.Errorf("embedded path %s: %w", name, ErrNotADirectory)
		}
		return nil, fmt.Errorf("embedded subdirectory %s: %w", name, ErrNotFound)
	}

	return NewEmbedded(sub), nil
}

// Paths returns every embedded relative path, sorted lexicographically.
// Unlike ListFiles, this includes files in nested subdirectories.
func (d *EmbeddedDir) Paths() []string {
	paths := make([]string, len(d.paths))
	copy(paths, d.paths)
	return paths
}

// embeddedEntry implements Entry for build-time captured files.
type embeddedEntry struct {
	name    string
	content []byte
}

func (e *embeddedEntry) Name() string { return e.name }

// AbsolutePath returns ("", false): embedded entries have no filesystem
// location at run time.
func (e *embeddedEntry) AbsolutePath() (string, bool) { return "", false }

func (e *embeddedEntry) ReadBytes() ([]byte, error) {
	out := make([]byte, len(e.content))
	copy(out, e.content)
	return out, nil
}

func (e *embeddedEntry) ReadString() (string, error) {
	if !utf8.Valid(e.content) {
		return "", fmt.Errorf("embedded file %s: %w", e.name, ErrNotUTF8)
	}
	return string(e.content), nil
}

func (e *embeddedEntry) String() string { return e.name }

// Verify interface conformance at compile time
var (
	_ Dir   = (*EmbeddedDir)(nil)
	_ Entry = (*embeddedEntry)(nil)
)
