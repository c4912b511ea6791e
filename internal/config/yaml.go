package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape of the config file. Timeout is a string so
// operators can write "45s" or "2m" rather than nanosecond counts.
type fileConfig struct {
	Name       string `yaml:"name"`
	ExePath    string `yaml:"tf_exe_path"`
	WorkingDir string `yaml:"working_directory"`
	Transport  string `yaml:"transport"`
	Host       string `yaml:"host"`
	Port       int    `yaml:"port"`
	Timeout    string `yaml:"timeout"`
}

// LoadFile reads a YAML config file into a partial Config. A missing file is
// not an error when required is false; it yields an empty overlay.
func LoadFile(path string, required bool) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the operator
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("read config %q: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("parse config %q: %w", path, err)
	}

	cfg := Config{
		Name:       fc.Name,
		ExePath:    fc.ExePath,
		WorkingDir: fc.WorkingDir,
		Transport:  Transport(fc.Transport),
		Host:       fc.Host,
		Port:       fc.Port,
	}
	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return Config{}, fmt.Errorf("parse config %q: invalid timeout %q: %w", path, fc.Timeout, err)
		}
		cfg.Timeout = d
	}
	return cfg, nil
}
