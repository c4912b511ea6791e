// Package config holds the immutable startup configuration for tfsmcp.
//
// Precedence, lowest to highest: built-in defaults, the optional YAML config
// file, environment variables, CLI flags. The merged Config is validated once
// at startup and passed by value into the translator and the MCP façade;
// nothing mutates it afterwards.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Transport selects how the MCP server talks to its client.
type Transport string

// Supported transports.
const (
	TransportStdio Transport = "stdio"
	TransportHTTP  Transport = "http"
	TransportSSE   Transport = "sse"
)

// FileName is the per-directory config file read when --config is not given.
const FileName = ".tfsmcp.yaml"

// Defaults.
const (
	DefaultName      = "TFS MCP Server"
	DefaultExePath   = "tf"
	DefaultTransport = TransportStdio
	DefaultHost      = "127.0.0.1"
	DefaultPort      = 8000
	DefaultTimeout   = 30 * time.Second
)

// Environment variable names. These provide defaults only; CLI flags win.
const (
	EnvExePath    = "TFS_EXE_PATH"
	EnvWorkingDir = "TFS_WORKING_DIR"
	EnvTransport  = "MCP_TRANSPORT"
	EnvHost       = "MCP_HOST"
	EnvPort       = "MCP_PORT"
	EnvTimeout    = "TFS_COMMAND_TIMEOUT"
)

// Config is the process-wide startup configuration.
type Config struct {
	// Name is the MCP server name advertised to clients.
	Name string

	// ExePath is the tf executable to invoke. A bare name is resolved
	// against PATH.
	ExePath string

	// WorkingDir is the default directory relative paths resolve against
	// when a tool call does not supply its own working_directory.
	WorkingDir string

	// Transport is one of stdio, http, sse.
	Transport Transport

	// Host and Port apply to the http and sse transports.
	Host string
	Port int

	// Timeout bounds each tf subprocess invocation.
	Timeout time.Duration
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Name:      DefaultName,
		ExePath:   DefaultExePath,
		Transport: DefaultTransport,
		Host:      DefaultHost,
		Port:      DefaultPort,
		Timeout:   DefaultTimeout,
	}
}

// FromEnv returns a partial Config holding only the values set in the
// environment. Unset variables leave zero values for Merge to skip.
func FromEnv() (Config, error) {
	var cfg Config
	cfg.ExePath = os.Getenv(EnvExePath)
	cfg.WorkingDir = os.Getenv(EnvWorkingDir)
	cfg.Transport = Transport(os.Getenv(EnvTransport))
	cfg.Host = os.Getenv(EnvHost)

	if raw := os.Getenv(EnvPort); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", EnvPort, raw, err)
		}
		cfg.Port = port
	}
	if raw := os.Getenv(EnvTimeout); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", EnvTimeout, raw, err)
		}
		cfg.Timeout = d
	}
	return cfg, nil
}

// Merge overlays non-zero fields of overlay onto base and returns the result.
func Merge(base, overlay Config) Config {
	merged := base
	if overlay.Name != "" {
		merged.Name = overlay.Name
	}
	if overlay.ExePath != "" {
		merged.ExePath = overlay.ExePath
	}
	if overlay.WorkingDir != "" {
		merged.WorkingDir = overlay.WorkingDir
	}
	if overlay.Transport != "" {
		merged.Transport = overlay.Transport
	}
	if overlay.Host != "" {
		merged.Host = overlay.Host
	}
	if overlay.Port != 0 {
		merged.Port = overlay.Port
	}
	if overlay.Timeout != 0 {
		merged.Timeout = overlay.Timeout
	}
	return merged
}

// Validate checks the merged configuration. It resolves an empty WorkingDir
// to the current directory, so the returned Config is complete.
func Validate(cfg Config) (Config, error) {
	switch cfg.Transport {
	case TransportStdio, TransportHTTP, TransportSSE:
	default:
		return Config{}, fmt.Errorf("invalid transport %q (expected stdio, http, or sse)", cfg.Transport)
	}

	if cfg.Transport != TransportStdio {
		if cfg.Port < 1 || cfg.Port > 65535 {
			return Config{}, fmt.Errorf("invalid port %d", cfg.Port)
		}
		if cfg.Host == "" {
			return Config{}, fmt.Errorf("host required for %s transport", cfg.Transport)
		}
	}

	if cfg.ExePath == "" {
		return Config{}, fmt.Errorf("tf executable path required")
	}
	if cfg.Timeout <= 0 {
		return Config{}, fmt.Errorf("command timeout must be positive, got %s", cfg.Timeout)
	}

	if cfg.WorkingDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("resolve current directory: %w", err)
		}
		cfg.WorkingDir = wd
	}
	info, err := os.Stat(cfg.WorkingDir)
	if err != nil {
		return Config{}, fmt.Errorf("working directory %q does not exist", cfg.WorkingDir)
	}
	if !info.IsDir() {
		return Config{}, fmt.Errorf("working directory %q is not a directory", cfg.WorkingDir)
	}

	return cfg, nil
}

// Addr returns the host:port listen address for the http and sse transports.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
