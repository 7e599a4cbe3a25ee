package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vvka-141/anydir/internal/logging"
	"github.com/vvka-141/anydir/internal/scaffold"
	"github.com/vvka-141/anydir/internal/tui"
)

var initCmd = &cobra.Command{
	Use:   "init <target_path>",
	Short: "Initialize a new anydir project",
	Long: `Initialize an example anydir project into the specified directory.

The init command creates:
- an assets directory to embed
- anydir.yaml with a generation target
- a main.go wired for go generate, with a --live escape hatch
- a README with usage instructions

Target directory must be empty or non-existent.

Examples:
  anydir init .                  # Initialize in current directory
  anydir init ./myproject        # Initialize in ./myproject`,
	Args:              RequireTargetPath,
	ValidArgsFunction: completeDirectories,
	RunE:              runInit,
}

var initTemplate string

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVarP(&initTemplate, "template", "t", "basic", "Template to use")
	_ = initCmd.RegisterFlagCompletionFunc("template", completeTemplateNames)
}

func runInit(cmd *cobra.Command, args []string) error {
	targetPath := args[0]

	projectName := filepath.Base(targetPath)
	if projectName == "." || projectName == ".." {
		cwd, err := os.Getwd()
		if err == nil {
			projectName = filepath.Base(cwd)
		} else {
			projectName = "project"
		}
	}

	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))
	s := scaffold.NewScaffolder(logger)

	if err := s.CreateProject(projectName, initTemplate, targetPath); err != nil {
		return fmt.Errorf("failed to initialize project: %w", err)
	}

	fmt.Fprintf(os.Stderr, "%s\n\n", tui.TitleStyle.Render("Created project "+projectName))

	if tree, err := scaffold.BuildFileTree(targetPath); err == nil {
		fmt.Fprintln(os.Stderr, tree)
	}

	fmt.Fprintln(os.Stderr, tui.SubtitleStyle.Render("Next: cd "+targetPath+" && go generate ./..."))
	return nil
}
