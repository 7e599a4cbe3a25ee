package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/anydir/internal/config"
	"github.com/vvka-141/anydir/internal/embedgen"
	"github.com/vvka-141/anydir/internal/logging"
	"github.com/vvka-141/anydir/internal/tui"
	"github.com/vvka-141/anydir/internal/tui/wizards"
	"github.com/vvka-141/anydir/pkg/anydir"
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Snapshot directories into generated Go source",
	Long: `Snapshot one or more source directories and render each as a Go
source file declaring a static embedded directory.

Resolution order for targets:
  1. --src (with --out, --package, --var; missing values are derived)
  2. anydir.yaml in the current directory
  3. an interactive wizard, when run from a terminal

Source paths may reference environment variables ($ASSET_ROOT/fixtures);
a .env file in the current directory is loaded first, matching the
build-time indirection available to go:generate directives.

Examples:
  anydir gen --src ./fixtures --out fixtures_gen.go --package main --var fixturesDir
  anydir gen --src ./assets            # out/package/var derived
  anydir gen                           # all targets from anydir.yaml

Traversal failures are build failures: the process exits non-zero and
go generate aborts.`,
	ValidArgsFunction: completeDirectories,
	RunE:              runGen,
}

var (
	genSrc     string
	genOut     string
	genPackage string
	genVar     string
	genEnvFile string
)

func init() {
	rootCmd.AddCommand(genCmd)

	genCmd.Flags().StringVarP(&genSrc, "src", "s", "", "Source directory to snapshot")
	genCmd.Flags().StringVarP(&genOut, "out", "o", "", "Output Go file (default <src>_gen.go)")
	genCmd.Flags().StringVarP(&genPackage, "package", "p", "main", "Package clause of the generated file")
	genCmd.Flags().StringVar(&genVar, "var", "", "Variable name to declare (default derived from src)")
	genCmd.Flags().StringVar(&genEnvFile, "env-file", "", "Env file to load before expanding source paths (default .env)")
}

func runGen(cmd *cobra.Command, args []string) error {
	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))

	if err := loadEnvFile(); err != nil {
		return err
	}

	targets, err := resolveTargets(logger)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		// Wizard cancelled; nothing to do.
		return nil
	}

	progress := tui.NewProgressDisplay()
	generator := embedgen.NewGenerator(logger)

	for _, target := range targets {
		progress.Start(fmt.Sprintf("embedding %s", target.Source))
		if err := generator.Generate(target); err != nil {
			progress.Error(fmt.Sprintf("%s: %v", target.Source, err))
			return err
		}
		progress.Success(fmt.Sprintf("%s → %s", target.Source, target.Output))
	}

	return nil
}

// loadEnvFile loads --env-file when given, otherwise a best-effort .env.
func loadEnvFile() error {
	if genEnvFile != "" {
		if err := godotenv.Load(genEnvFile); err != nil {
			return fmt.Errorf("%w: failed to load env file %s: %v", anydir.ErrInvalidConfig, genEnvFile, err)
		}
		return nil
	}
	_ = godotenv.Load()
	return nil
}

func resolveTargets(logger anydir.Logger) ([]embedgen.Target, error) {
	if genSrc != "" {
		return []embedgen.Target{targetFromFlags()}, nil
	}

	cfg, err := config.Load(".")
	if err == nil {
		logger.Verbose("using %d target(s) from %s", len(cfg.Targets), config.ConfigFileName)
		return targetsFromConfig(cfg), nil
	}
	if !errors.Is(err, config.ErrConfigNotFound) {
		return nil, err
	}

	if tui.IsInteractive() {
		result, err := wizards.RunGenWizard()
		if err != nil {
			return nil, err
		}
		if result.Cancelled {
			logger.Info("Cancelled.")
			return nil, nil
		}
		target := result.Target
		target.Source = os.ExpandEnv(target.Source)
		return []embedgen.Target{target}, nil
	}

	return nil, fmt.Errorf(`%w: no generation target

Provide --src, or an %s file in the current directory:

  targets:
    - source: ./fixtures
      output: ./fixtures_gen.go
      package: main
      var: fixturesDir`, anydir.ErrInvalidConfig, config.ConfigFileName)
}

// targetFromFlags builds a single target from --src and friends,
// deriving any value the user left out.
func targetFromFlags() embedgen.Target {
	src := os.ExpandEnv(genSrc)

	out := genOut
	if out == "" {
		base := filepath.Base(filepath.Clean(src))
		out = strings.ReplaceAll(base, "-", "_") + "_gen.go"
	}

	varName := genVar
	if varName == "" {
		varName = embedgen.DeriveVarName(src)
	}

	return embedgen.Target{
		Source:  src,
		Output:  out,
		Package: genPackage,
		Var:     varName,
	}
}

func targetsFromConfig(cfg *config.ProjectConfig) []embedgen.Target {
	targets := make([]embedgen.Target, 0, len(cfg.Targets))
	for _, tc := range cfg.Targets {
		source := os.ExpandEnv(tc.Source)

		varName := tc.Var
		if varName == "" {
			varName = embedgen.DeriveVarName(source)
		}
		pkg := tc.Package
		if pkg == "" {
			pkg = "main"
		}

		targets = append(targets, embedgen.Target{
			Source:  source,
			Output:  tc.Output,
			Package: pkg,
			Var:     varName,
		})
	}
	return targets
}
