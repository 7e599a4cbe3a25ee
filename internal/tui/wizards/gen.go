// Package wizards contains the interactive flows anydir falls back to
// when a human runs the CLI without enough flags to proceed.
package wizards

import (
	"fmt"
	"os"

	"github.com/vvka-141/anydir/internal/embedgen"
	"github.com/vvka-141/anydir/internal/tui"
	"github.com/vvka-141/anydir/internal/tui/components"
)

// GenResult holds the result of the generate wizard.
type GenResult struct {
	Cancelled bool
	Target    embedgen.Target
}

// RunGenWizard collects a generation target interactively. It is only
// called when the terminal is interactive and neither flags nor
// anydir.yaml provided a target.
func RunGenWizard() (GenResult, error) {
	form := components.NewForm("Generate an embedded directory",
		components.NewTextField("Source directory", "./fixtures").
			WithRequired(true).
			WithValidator(validateSourceDir),
		components.NewTextField("Output file", "./fixtures_gen.go").
			WithRequired(true),
		components.NewTextField("Package name", "main").
			WithValue("main").
			WithRequired(true).
			WithValidator(validatePackage),
		components.NewTextField("Variable name", "fixturesDir").
			WithRequired(true).
			WithValidator(validateVar),
	)

	final, err := tui.Run(form)
	if err != nil {
		return GenResult{}, fmt.Errorf("wizard failed: %w", err)
	}

	result, ok := final.(components.Form)
	if !ok || result.Cancelled() || !result.Submitted() {
		return GenResult{Cancelled: true}, nil
	}

	return GenResult{
		Target: embedgen.Target{
			Source:  result.FieldValue(0),
			Output:  result.FieldValue(1),
			Package: result.FieldValue(2),
			Var:     result.FieldValue(3),
		},
	}, nil
}

func validateSourceDir(value string) error {
	if value == "" {
		return nil // required check handles the empty case
	}
	info, err := os.Stat(os.ExpandEnv(value))
	if err != nil {
		return fmt.Errorf("directory not found")
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory")
	}
	return nil
}

func validatePackage(value string) error {
	if value == "" {
		return nil
	}
	return embedgen.ValidatePackageName(value)
}

func validateVar(value string) error {
	if value == "" {
		return nil
	}
	return embedgen.ValidateIdentifier(value)
}
