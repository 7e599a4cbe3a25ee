package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/anydir/pkg/anydir"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// TargetConfig is one generation target as declared in anydir.yaml.
// Source may reference environment variables ($VAR or ${VAR}); expansion
// is the CLI's concern, after .env loading.
type TargetConfig struct {
	Source  string `yaml:"source"`
	Output  string `yaml:"output"`
	Package string `yaml:"package"`
	Var     string `yaml:"var"`
}

// ProjectConfig is the parsed anydir.yaml file.
type ProjectConfig struct {
	Targets []TargetConfig `yaml:"targets"`
}

// ConfigFileName is re-exported so callers need not import pkg/anydir
// just to name the file.
const ConfigFileName = anydir.ConfigFileName

// Load reads and parses anydir.yaml from the given directory.
func Load(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", anydir.ErrInvalidConfig, configPath, err)
	}

	if len(cfg.Targets) == 0 {
		return nil, fmt.Errorf("%w: %s declares no targets", anydir.ErrInvalidConfig, configPath)
	}

	return &cfg, nil
}
