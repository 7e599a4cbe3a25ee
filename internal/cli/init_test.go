package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunInit_BasicTemplate(t *testing.T) {
	targetDir := t.TempDir()
	projectDir := filepath.Join(targetDir, "myapp")

	initTemplate = "basic"
	err := initCmd.RunE(initCmd, []string{projectDir})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	for _, name := range []string{"anydir.yaml", "main.go", "README.md", filepath.Join("assets", "greeting.txt")} {
		if _, err := os.Stat(filepath.Join(projectDir, name)); os.IsNotExist(err) {
			t.Errorf("Expected %s to exist", name)
		}
	}

	// Template suffix must be stripped on copy.
	if _, err := os.Stat(filepath.Join(projectDir, "main.go.tmpl")); err == nil {
		t.Error("Expected main.go.tmpl to be renamed to main.go")
	}

	mainGo, err := os.ReadFile(filepath.Join(projectDir, "main.go"))
	if err != nil {
		t.Fatalf("Failed to read main.go: %v", err)
	}
	if strings.Contains(string(mainGo), "{{PROJECT_NAME}}") {
		t.Error("Expected {{PROJECT_NAME}} to be substituted in main.go")
	}
}

func TestRunInit_InvalidTemplate(t *testing.T) {
	targetDir := t.TempDir()
	projectDir := filepath.Join(targetDir, "myapp")

	initTemplate = "nonexistent"
	defer func() { initTemplate = "basic" }()

	err := initCmd.RunE(initCmd, []string{projectDir})
	if err == nil {
		t.Fatal("Expected error for invalid template")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("Expected 'not found' error, got: %v", err)
	}
}

func TestRunInit_NonEmptyDirectory(t *testing.T) {
	targetDir := t.TempDir()
	os.WriteFile(filepath.Join(targetDir, "existing.txt"), []byte("data"), 0644)

	initTemplate = "basic"
	err := initCmd.RunE(initCmd, []string{targetDir})
	if err == nil {
		t.Fatal("Expected error for non-empty directory")
	}
	if !strings.Contains(err.Error(), "not empty") {
		t.Errorf("Expected 'not empty' error, got: %v", err)
	}
}
