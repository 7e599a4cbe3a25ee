package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/anydir/pkg/anydir"
)

func TestLoad_AllFields(t *testing.T) {
	dir := t.TempDir()
	content := `targets:
  - source: ./fixtures
    output: ./fixtures_gen.go
    package: main
    var: fixturesDir
  - source: $ASSET_ROOT/templates
    output: ./internal/templates/templates_gen.go
    package: templates
    var: templatesDir
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	require.Len(t, cfg.Targets, 2)

	assert.Equal(t, "./fixtures", cfg.Targets[0].Source)
	assert.Equal(t, "./fixtures_gen.go", cfg.Targets[0].Output)
	assert.Equal(t, "main", cfg.Targets[0].Package)
	assert.Equal(t, "fixturesDir", cfg.Targets[0].Var)
	assert.Equal(t, "$ASSET_ROOT/templates", cfg.Targets[1].Source)
	assert.Equal(t, "templates", cfg.Targets[1].Package)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(t.TempDir())

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfigNotFound))
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("targets: [}"), 0644))

	_, err := Load(dir)

	require.Error(t, err)
	assert.True(t, errors.Is(err, anydir.ErrInvalidConfig))
}

func TestLoad_NoTargets(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("targets: []"), 0644))

	_, err := Load(dir)

	require.Error(t, err)
	assert.True(t, errors.Is(err, anydir.ErrInvalidConfig))
}
