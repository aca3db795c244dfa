package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/nadza/Yahtzee/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the workspace config file.
const FileName = "yahtzee.yaml"

// Load reads yahtzee.yaml from root, falls back to defaults when the file is
// missing, then applies YAHTZEE_* overrides and validates the result.
func Load(root string) (domain.Config, error) {
	path := filepath.Join(root, FileName)

	cfg, err := LoadFile(path)
	if err != nil && !domain.IsKind(err, domain.KindNotFound) {
		return cfg, err
	}

	cfg, err = ApplyEnv(cfg)
	if err != nil {
		return cfg, err
	}
	if err := Validate(path, cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadFile parses one config file on top of the defaults.
func LoadFile(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindExecution
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return cfg, &domain.OpError{Op: "config.load", Kind: kind, Path: path, Err: err}
	}

	var y YAMLConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{Op: "config.load", Kind: domain.KindInvalidConfig, Path: path, Err: err}
	}

	return MapConfig(cfg, y), nil
}
