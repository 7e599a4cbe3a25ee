package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const asciiLogo = `                        _ _
  __ _ _ __  _   _  __| (_)_ __
 / _` + "`" + ` | '_ \| | | |/ _` + "`" + ` | | '__|
| (_| | | | | |_| | (_| | | |
 \__,_|_| |_|\__, |\__,_|_|_|
             |___/`

var rootCmd = &cobra.Command{
	Use:   "anydir",
	Short: "Dual-mode directory provider for Go",
	Long: asciiLogo + `

anydir snapshots a directory tree at build time into a generated Go
source file, giving your program an embedded, immutable copy of the
directory. The same library also wraps the live filesystem behind the
same interface, so calling code never has to care which mode it got.

Put a go:generate directive next to the code that needs the snapshot
and run 'go generate ./...'; generation failures abort the build.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or target definition
  11 - Source directory traversal failed
  12 - Generated file could not be written`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for anydir")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
