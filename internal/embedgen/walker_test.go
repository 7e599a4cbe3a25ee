package embedgen

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vvka-141/anydir/internal/checksum"
	"github.com/vvka-141/anydir/internal/logging"
	"github.com/vvka-141/anydir/pkg/anydir"
)

func newTestWalker() *Walker {
	return NewWalker(checksum.New(), logging.NewNullLogger())
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestWalker_Snapshot_SortedRelativePaths(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.txt", "world")
	writeFile(t, dir, "a.txt", "hello")
	writeFile(t, dir, "sub/c.txt", "nested")

	snap, err := newTestWalker().Snapshot(dir)
	require.NoError(t, err)

	var paths []string
	for _, f := range snap.Files {
		paths = append(paths, f.Path)
	}
	require.Equal(t, []string{"a.txt", "b.txt", "sub/c.txt"}, paths)
}

func TestWalker_Snapshot_Deterministic(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "hello")
	writeFile(t, dir, "b.txt", "world")
	writeFile(t, dir, "nested/deep/c.bin", "\x00\x01\x02")

	w := newTestWalker()

	first, err := w.Snapshot(dir)
	require.NoError(t, err)
	second, err := w.Snapshot(dir)
	require.NoError(t, err)

	require.Equal(t, first.ManifestDigest, second.ManifestDigest)
	require.Equal(t, first.Files, second.Files)
}

func TestWalker_Snapshot_EmptyDir(t *testing.T) {
	snap, err := newTestWalker().Snapshot(t.TempDir())

	require.NoError(t, err)
	require.Empty(t, snap.Files)
	require.NotEmpty(t, snap.ManifestDigest)
}

func TestWalker_Snapshot_MissingRoot(t *testing.T) {
	_, err := newTestWalker().Snapshot(filepath.Join(t.TempDir(), "nonexistent"))

	require.Error(t, err)
	require.True(t, errors.Is(err, anydir.ErrTraversal))
}

func TestWalker_Snapshot_RootIsFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "file.txt", "content")

	_, err := newTestWalker().Snapshot(filepath.Join(dir, "file.txt"))

	require.Error(t, err)
	require.True(t, errors.Is(err, anydir.ErrTraversal))
}

func TestWalker_Snapshot_ContentFidelity(t *testing.T) {
	dir := t.TempDir()

	// Fixed seed keeps the test reproducible while still exercising
	// arbitrary byte values.
	rng := rand.New(rand.NewSource(42))
	content := make([]byte, 4096)
	rng.Read(content)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "blob.bin"), content, 0644))

	snap, err := newTestWalker().Snapshot(dir)
	require.NoError(t, err)
	require.Len(t, snap.Files, 1)
	require.Equal(t, content, snap.Files[0].Content)
	require.Equal(t, checksum.New().CalculateRaw(content), snap.Files[0].Digest)
}

func TestWalker_Snapshot_SymlinkToFile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}

	dir := t.TempDir()
	writeFile(t, dir, "real.txt", "target content")
	require.NoError(t, os.Symlink(filepath.Join(dir, "real.txt"), filepath.Join(dir, "link.txt")))

	snap, err := newTestWalker().Snapshot(dir)
	require.NoError(t, err)

	m := snap.FileMap()
	require.Equal(t, []byte("target content"), m["link.txt"])
	require.Equal(t, []byte("target content"), m["real.txt"])
}

func TestWalker_Snapshot_SymlinkToDirectoryFails(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0755))
	require.NoError(t, os.Symlink(filepath.Join(dir, "sub"), filepath.Join(dir, "sublink")))

	_, err := newTestWalker().Snapshot(dir)

	require.Error(t, err)
	require.True(t, errors.Is(err, anydir.ErrTraversal))
}

func TestWalker_Snapshot_NonUTF8NameFails(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("non-UTF-8 file names are only constructible on linux filesystems")
	}

	dir := t.TempDir()
	badName := string([]byte{0xff, 0xfe}) + ".txt"
	if os.WriteFile(filepath.Join(dir, badName), []byte("x"), 0644) != nil {
		t.Skip("filesystem rejects non-UTF-8 names")
	}

	_, err := newTestWalker().Snapshot(dir)

	require.Error(t, err)
	require.True(t, errors.Is(err, anydir.ErrTraversal))
}

func TestSnapshot_FileMap(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "hello")
	writeFile(t, dir, "sub/b.txt", "world")

	snap, err := newTestWalker().Snapshot(dir)
	require.NoError(t, err)

	m := snap.FileMap()
	require.Len(t, m, 2)
	require.Equal(t, []byte("hello"), m["a.txt"])
	require.Equal(t, []byte("world"), m["sub/b.txt"])
}
