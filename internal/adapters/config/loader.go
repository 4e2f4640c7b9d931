// Package config loads optional per-project defaults for the CLI from a
// .weft.yaml file, walking up from the working directory the way the
// teacher's Samefile/Workfile search does.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileName is the config file the loader searches for.
const FileName = ".weft.yaml"

// Config holds CLI defaults that flags may override.
type Config struct {
	Workers  int    `yaml:"workers"`
	DryRun   bool   `yaml:"dry_run"`
	LogLevel string `yaml:"log_level"`
}

// ErrNotFound is returned by Load when no config file is found between cwd
// and the filesystem root.
var ErrNotFound = zerr.New("no .weft.yaml found")

// Load searches cwd and its ancestors for FileName and parses it. It
// returns ErrNotFound (not a fatal error) when none exists — the CLI
// falls back to flag defaults in that case.
func Load(cwd string) (*Config, error) {
	path, err := find(cwd)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.Wrap(err, "read config")
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, zerr.Wrap(err, "parse config")
	}
	return &c, nil
}

func find(cwd string) (string, error) {
	dir := cwd
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotFound
		}
		dir = parent
	}
}
