package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// PromptContinue asks for confirmation before proceeding. In
// non-interactive mode it answers yes without prompting.
func PromptContinue(message string) bool {
	if !IsInteractive() {
		return true
	}

	fmt.Printf("%s [Y/n]: ", message)

	var response string
	fmt.Scanln(&response)

	return response == "" || response == "y" || response == "Y"
}

// Run executes a bubbletea model and returns the final model state.
func Run(model tea.Model) (tea.Model, error) {
	return tea.NewProgram(model).Run()
}

// ProgressDisplay prints per-target progress. Interactive runs get
// glyph markers; non-interactive runs get plain lines.
type ProgressDisplay struct{}

func NewProgressDisplay() *ProgressDisplay {
	return &ProgressDisplay{}
}

func (p *ProgressDisplay) Start(message string) {
	if !IsInteractive() {
		fmt.Println(message)
		return
	}
	fmt.Printf("◐ %s\n", message)
}

func (p *ProgressDisplay) Success(message string) {
	fmt.Printf("%s %s\n", SuccessStyle.Render("✓"), message)
}

func (p *ProgressDisplay) Error(message string) {
	fmt.Printf("%s %s\n", ErrorStyle.Render("✗"), message)
}
