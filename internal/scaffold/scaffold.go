// Package scaffold initializes example projects from embedded templates.
// The templates are read through the anydir library itself, so project
// initialization exercises the same embedded-directory path users get
// from generated code.
package scaffold

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vvka-141/anydir/pkg/anydir"
)

//go:embed all:templates
var templatesFS embed.FS

// templates exposes the embedded template tree as an anydir directory.
var templates = anydir.MustFromFS(templatesFS, "templates")

// tmplSuffix marks template files that must not look like Go source
// while they live inside this package. The suffix is stripped on copy.
const tmplSuffix = ".tmpl"

// Scaffolder handles project initialization from templates
type Scaffolder struct {
	logger anydir.Logger
}

// NewScaffolder creates a new Scaffolder instance
func NewScaffolder(logger anydir.Logger) *Scaffolder {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Scaffolder{logger: logger}
}

// CreateProject creates a new project from a template
func (s *Scaffolder) CreateProject(projectName, templateName, targetPath string) error {
	sub, err := templates.Sub(templateName)
	if err != nil {
		return fmt.Errorf("template '%s' not found: %w", templateName, err)
	}
	template := sub.(*anydir.EmbeddedDir)

	isEmpty, err := isDirectoryEmpty(targetPath)
	if err != nil {
		return fmt.Errorf("failed to check target directory: %w", err)
	}
	if !isEmpty {
		return fmt.Errorf("target directory '%s' is not empty\n\nanydir init requires an empty directory to avoid overwriting existing files.\n\nOptions:\n• Choose a different location\n• Remove existing files manually\n• Use a new directory name", targetPath)
	}

	if err := os.MkdirAll(targetPath, 0755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}

	s.logger.Verbose("Creating project '%s' at %s with template '%s'", projectName, targetPath, templateName)

	for _, relPath := range template.Paths() {
		content, err := template.ReadFile(relPath)
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", relPath, err)
		}

		outPath := strings.TrimSuffix(relPath, tmplSuffix)
		targetFilePath := filepath.Join(targetPath, filepath.FromSlash(outPath))
		if err := os.MkdirAll(filepath.Dir(targetFilePath), 0755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", outPath, err)
		}

		processed := s.processTemplate(string(content), projectName)

		s.logger.Verbose("Creating file: %s", outPath)
		if err := os.WriteFile(targetFilePath, []byte(processed), 0644); err != nil {
			return fmt.Errorf("failed to write file %s: %w", targetFilePath, err)
		}
	}

	s.logger.Verbose("Project created successfully")
	return nil
}

// processTemplate replaces template variables in content
func (s *Scaffolder) processTemplate(content, projectName string) string {
	content = strings.ReplaceAll(content, "{{PROJECT_NAME}}", projectName)
	return content
}

// ListTemplates returns available template names
func ListTemplates() ([]string, error) {
	entries, err := templatesFS.ReadDir("templates")
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}

	return names, nil
}

// isDirectoryEmpty checks if a directory is empty or doesn't exist.
// Returns (true, nil) if directory doesn't exist or is empty.
// Returns (false, nil) if directory exists and contains files/subdirectories.
// Returns (false, error) if there's an error checking the directory.
func isDirectoryEmpty(path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		// Doesn't exist yet - safe to create
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check directory: %w", err)
	}

	if !info.IsDir() {
		return false, fmt.Errorf("path exists but is not a directory")
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return false, fmt.Errorf("failed to read directory: %w", err)
	}

	return len(entries) == 0, nil
}

// BuildFileTree creates a visual tree representation of the directory
// structure, shown to the user after init completes.
func BuildFileTree(rootPath string) (string, error) {
	var sb strings.Builder

	absPath, err := filepath.Abs(rootPath)
	if err != nil {
		absPath = rootPath
	}

	sb.WriteString(absPath + "/\n")

	err = filepath.Walk(rootPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path == rootPath {
			return nil
		}

		relPath, err := filepath.Rel(rootPath, path)
		if err != nil {
			return err
		}

		depth := strings.Count(relPath, string(os.PathSeparator))
		indent := strings.Repeat("  ", depth)

		name := info.Name()
		if info.IsDir() {
			name += "/"
		}
		sb.WriteString(fmt.Sprintf("%s%s\n", indent, name))
		return nil
	})
	if err != nil {
		return "", err
	}

	return sb.String(), nil
}
