package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// ManifestEntry is one (path, content digest) pair of a snapshot manifest.
type ManifestEntry struct {
	Path   string
	Digest string
}

// Calculator is an interface for computing file and manifest checksums.
// This abstraction allows for different checksum strategies and algorithms.
type Calculator interface {
	// CalculateRaw computes a checksum of the raw, unmodified content.
	CalculateRaw(content []byte) string

	// CalculateManifest computes a single checksum over a set of manifest
	// entries. The result is independent of the order entries are passed
	// in, so the same directory tree always yields the same digest
	// regardless of host OS listing order.
	CalculateManifest(entries []ManifestEntry) string
}

// SHA256 implements checksum calculation using SHA-256.
//
// SHA256 is a zero-size type and is safe for concurrent use by multiple
// goroutines. Using value semantics (pass by value) eliminates heap
// allocations.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
// Returns by value to avoid heap allocation (SHA256 is a zero-size type).
func New() SHA256 {
	return SHA256{}
}

// CalculateRaw computes SHA-256 of raw content.
func (c SHA256) CalculateRaw(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// CalculateManifest computes SHA-256 over the sorted (path, digest) lines
// of the manifest. Paths are separated from digests by a NUL byte so no
// legal path can collide with another entry's framing.
func (c SHA256) CalculateManifest(entries []ManifestEntry) string {
	sorted := make([]ManifestEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Path < sorted[j].Path
	})

	var b strings.Builder
	for _, e := range sorted {
		b.WriteString(e.Path)
		b.WriteByte(0)
		b.WriteString(e.Digest)
		b.WriteByte('\n')
	}

	hash := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(hash[:])
}
