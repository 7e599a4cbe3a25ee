package embedgen

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"unicode/utf8"

	"github.com/vvka-141/anydir/internal/checksum"
	"github.com/vvka-141/anydir/pkg/anydir"
)

// SnapshotFile is one regular file captured by a traversal.
type SnapshotFile struct {
	// Path is the slash-separated path relative to the snapshot root.
	Path string

	// Content is the file's exact byte content at capture time.
	Content []byte

	// Digest is the SHA-256 hex digest of Content.
	Digest string
}

// Snapshot is the immutable result of walking a source tree. Files are
// sorted by Path, so the same tree always produces the same snapshot
// regardless of host OS listing order.
type Snapshot struct {
	Root           string
	Files          []SnapshotFile
	ManifestDigest string
}

// FileMap returns the snapshot as the path-to-content mapping accepted
// by anydir.NewEmbedded.
func (s *Snapshot) FileMap() map[string][]byte {
	m := make(map[string][]byte, len(s.Files))
	for _, f := range s.Files {
		m[f.Path] = f.Content
	}
	return m
}

// Walker performs the build-time traversal of a source directory.
// Walker is safe for concurrent use as long as the provided calculator
// and logger are also thread-safe.
type Walker struct {
	calculator checksum.Calculator
	logger     anydir.Logger
}

// NewWalker creates a new source-tree walker.
// Panics if calculator or logger is nil.
func NewWalker(calculator checksum.Calculator, logger anydir.Logger) *Walker {
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Walker{
		calculator: calculator,
		logger:     logger,
	}
}

// Snapshot recursively walks root and reads every regular file fully into
// memory. An empty directory yields an empty snapshot, not an error.
//
// Any failure (missing root, root not a directory, unreadable file,
// permission denied, a file name that is not valid UTF-8, a symlink
// pointing at a directory) is returned wrapped in anydir.ErrTraversal,
// since the caller has no runtime fallback path.
func (w *Walker) Snapshot(root string) (*Snapshot, error) {
	snap, err := w.walk(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", anydir.ErrTraversal, err)
	}
	return snap, nil
}

func (w *Walker) walk(root string) (*Snapshot, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("source path %s: %v", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source path %s is not a directory", root)
	}

	var files []SnapshotFile
	fsys := os.DirFS(root)

	err = fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("failed to walk %s: %v", p, walkErr)
		}
		if d.IsDir() {
			return nil
		}
		if !utf8.ValidString(p) {
			return fmt.Errorf("file name %q is not valid UTF-8", p)
		}

		hostPath := filepath.Join(root, filepath.FromSlash(p))

		// Symlinks are resolved to their target's content. A symlink whose
		// target is a directory has no byte content to embed and fails the
		// traversal.
		if d.Type()&fs.ModeSymlink != 0 {
			target, statErr := os.Stat(hostPath)
			if statErr != nil {
				return fmt.Errorf("failed to resolve symlink %s: %v", p, statErr)
			}
			if target.IsDir() {
				return fmt.Errorf("symlink %s points at a directory", p)
			}
		}

		content, readErr := os.ReadFile(hostPath)
		if readErr != nil {
			return fmt.Errorf("failed to read %s: %v", p, readErr)
		}

		w.logger.Verbose("captured %s (%d bytes)", p, len(content))
		files = append(files, SnapshotFile{
			Path:    p,
			Content: content,
			Digest:  w.calculator.CalculateRaw(content),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})

	entries := make([]checksum.ManifestEntry, 0, len(files))
	for _, f := range files {
		entries = append(entries, checksum.ManifestEntry{Path: f.Path, Digest: f.Digest})
	}

	return &Snapshot{
		Root:           root,
		Files:          files,
		ManifestDigest: w.calculator.CalculateManifest(entries),
	}, nil
}
