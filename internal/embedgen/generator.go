package embedgen

import (
	"fmt"
	"os"
	"strings"

	"github.com/vvka-141/anydir/internal/checksum"
	"github.com/vvka-141/anydir/pkg/anydir"
)

// anydirImport is the import path written into every generated file.
const anydirImport = "github.com/vvka-141/anydir/pkg/anydir"

// Target describes one generation unit: a source directory to snapshot
// and the Go source file to render it into.
type Target struct {
	// Source is the directory to snapshot. Resolved before generation;
	// environment indirection ($VAR) is the CLI's concern.
	Source string

	// Output is the path of the Go file to write.
	Output string

	// Package is the package clause of the generated file.
	Package string

	// Var is the package-level variable name declared by the generated file.
	Var string
}

// Validate checks that the target is complete and that its package and
// variable names are legal Go identifiers.
func (t Target) Validate() error {
	if t.Source == "" {
		return fmt.Errorf("%w: target source is empty", anydir.ErrInvalidConfig)
	}
	if t.Output == "" {
		return fmt.Errorf("%w: target output is empty", anydir.ErrInvalidConfig)
	}
	if err := ValidatePackageName(t.Package); err != nil {
		return fmt.Errorf("%w: %v", anydir.ErrInvalidConfig, err)
	}
	if err := ValidateIdentifier(t.Var); err != nil {
		return fmt.Errorf("%w: %v", anydir.ErrInvalidConfig, err)
	}
	return nil
}

// Generator turns snapshots into Go source files. The rendered output is
// deterministic: the same source tree always produces byte-identical
// generated code.
type Generator struct {
	walker *Walker
	logger anydir.Logger
}

// NewGenerator creates a Generator logging through the given logger.
// Panics if logger is nil.
func NewGenerator(logger anydir.Logger) *Generator {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Generator{
		walker: NewWalker(checksum.New(), logger),
		logger: logger,
	}
}

// Generate snapshots the target's source directory and writes the
// rendered Go file to the target's output path.
func (g *Generator) Generate(target Target) error {
	if err := target.Validate(); err != nil {
		return err
	}

	snap, err := g.walker.Snapshot(target.Source)
	if err != nil {
		return err
	}

	g.logger.Verbose("snapshot of %s: %d files, manifest %s",
		target.Source, len(snap.Files), snap.ManifestDigest)

	rendered := g.Render(snap, target.Package, target.Var)
	if err := os.WriteFile(target.Output, rendered, 0644); err != nil {
		return fmt.Errorf("%w: %v", anydir.ErrOutput, err)
	}

	g.logger.Info("wrote %s (%d files from %s)", target.Output, len(snap.Files), target.Source)
	return nil
}

// Render produces the generated Go source for a snapshot. The output
// declares a single package-level variable bound to a static
// anydir.NewEmbedded call, the same data structure a hand-written
// constructor call would produce.
func (g *Generator) Render(snap *Snapshot, pkg, varName string) []byte {
	var b strings.Builder

	b.WriteString(anydir.GeneratedFileHeader + "\n")
	b.WriteString("//\n")
	fmt.Fprintf(&b, "// Source: %s\n", snap.Root)
	fmt.Fprintf(&b, "// Manifest: sha256:%s\n", snap.ManifestDigest)
	b.WriteString("\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	fmt.Fprintf(&b, "import %q\n\n", anydirImport)

	fmt.Fprintf(&b, "// %s holds the build-time snapshot of %s.\n", varName, snap.Root)
	if len(snap.Files) == 0 {
		fmt.Fprintf(&b, "var %s = anydir.NewEmbedded(map[string][]byte{})\n", varName)
		return []byte(b.String())
	}

	fmt.Fprintf(&b, "var %s = anydir.NewEmbedded(map[string][]byte{\n", varName)
	for _, f := range snap.Files {
		fmt.Fprintf(&b, "\t%s: %s,\n", pathLiteral(f.Path), contentLiteral(f.Content))
	}
	b.WriteString("})\n")

	return []byte(b.String())
}
