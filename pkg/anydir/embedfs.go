package anydir

import (
	"fmt"
	"io/fs"
	"unicode/utf8"
)

// FromFS snapshots an fs.FS into an EmbeddedDir. The intended use is
// wrapping a go:embed filesystem, Go's native compile-time embedding:
//
//	//go:embed fixtures
//	var fixturesFS embed.FS
//
//	var fixtures = anydir.MustFromFS(fixturesFS, "fixtures")
//
// root selects the subdirectory of fsys to treat as the directory root;
// pass "." to use fsys itself. The snapshot is taken once, so later
// changes to a mutable fsys are not reflected; with embed.FS the source
// is immutable anyway.
//
// File names that are not valid UTF-8 fail the snapshot explicitly
// rather than being silently skipped.
func FromFS(fsys fs.FS, root string) (*EmbeddedDir, error) {
	if root != "." {
		sub, err := fs.Sub(fsys, root)
		if err != nil {
			return nil, fmt.Errorf("failed to open root %s: %w", root, err)
		}
		fsys = sub
	}

	files := make(map[string][]byte)
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to walk %s: %w", p, err)
		}
		if d.IsDir() {
			return nil
		}
		if !utf8.ValidString(p) {
			return fmt.Errorf("file name %q: %w", p, ErrNotUTF8)
		}

		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", p, err)
		}
		files[p] = content
		return nil
	})
	if err != nil {
		return nil, err
	}

	return NewEmbedded(files), nil
}

// MustFromFS is like FromFS but panics on error. It is intended for
// package-level variable initialization over a go:embed filesystem,
// where a failure is a defect in the build, not a runtime condition.
func MustFromFS(fsys fs.FS, root string) *EmbeddedDir {
	d, err := FromFS(fsys, root)
	if err != nil {
		panic(fmt.Sprintf("anydir: %v", err))
	}
	return d
}
