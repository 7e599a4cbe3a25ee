package anydir

import "fmt"

// Dir is the capability contract shared by every directory provider.
// Callers use it without knowing whether the contents were captured at
// build time (EmbeddedDir) or are read live from the host filesystem
// (LiveDir).
type Dir interface {
	// ListFiles returns the names of the direct regular-file children of
	// the directory root, sorted lexicographically. An existing empty
	// directory yields an empty slice, not an error.
	ListFiles() ([]string, error)

	// ReadFile returns the content of the file at the given slash-separated
	// path relative to the directory root. Nested paths (e.g. "sub/a.txt")
	// are accepted.
	ReadFile(name string) ([]byte, error)

	// Entries returns the direct regular-file children as Entry values,
	// sorted lexicographically by name.
	Entries() ([]Entry, error)

	// Sub returns the named subdirectory as a Dir rooted at that
	// subdirectory.
	Sub(name string) (Dir, error)
}

// Entry represents an individual file exposed by a Dir.
type Entry interface {
	// Name returns the file's slash-separated path relative to its Dir root.
	Name() string

	// AbsolutePath returns the file's location on the host filesystem.
	// Embedded entries have no filesystem location and return ("", false).
	AbsolutePath() (string, bool)

	// ReadBytes returns the file's content.
	ReadBytes() ([]byte, error)

	// ReadString returns the file's content as a string. Embedded entries
	// whose content is not valid UTF-8 return ErrNotUTF8.
	ReadString() (string, error)

	fmt.Stringer
}
