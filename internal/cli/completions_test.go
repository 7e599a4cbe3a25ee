package cli

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestCompleteDirectories(t *testing.T) {
	cmd := &cobra.Command{}

	t.Run("returns FilterDirs directive for first arg", func(t *testing.T) {
		_, directive := completeDirectories(cmd, nil, "")
		if directive != cobra.ShellCompDirectiveFilterDirs {
			t.Errorf("expected ShellCompDirectiveFilterDirs, got %v", directive)
		}
	})

	t.Run("suppresses completion after first arg", func(t *testing.T) {
		_, directive := completeDirectories(cmd, []string{"./done"}, "")
		if directive != cobra.ShellCompDirectiveNoFileComp {
			t.Errorf("expected ShellCompDirectiveNoFileComp, got %v", directive)
		}
	})
}

func TestCompleteTemplateNames(t *testing.T) {
	cmd := &cobra.Command{}

	t.Run("includes basic template", func(t *testing.T) {
		completions, directive := completeTemplateNames(cmd, nil, "")
		if directive != cobra.ShellCompDirectiveNoFileComp {
			t.Errorf("expected ShellCompDirectiveNoFileComp, got %v", directive)
		}
		found := false
		for _, c := range completions {
			if c == "basic" {
				found = true
			}
		}
		if !found {
			t.Errorf("expected 'basic' in completions, got %v", completions)
		}
	})

	t.Run("filters by prefix", func(t *testing.T) {
		completions, _ := completeTemplateNames(cmd, nil, "zzz")
		if len(completions) != 0 {
			t.Errorf("expected 0 completions, got %d", len(completions))
		}
	})
}
