package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config defines runtime settings for the agent.
type Config struct {
	Port        int    `yaml:"port"`
	Token       string `yaml:"token"`
	SandboxRoot string `yaml:"sandboxRoot"`

	Generator GeneratorConfig `yaml:"generator"`

	// AllowedAddrs restricts incoming HTTP clients by remote address.
	// Empty means allow all.
	AllowedAddrs []string `yaml:"allowedAddrs"`

	LogLevel  string `yaml:"logLevel"`
	LogFormat string `yaml:"logFormat"`
}

// GeneratorConfig controls how the external data generator is invoked.
type GeneratorConfig struct {
	Command   string   `yaml:"command"`
	Timeout   string   `yaml:"timeout"`
	MaxOutput int      `yaml:"maxOutput"`
	Blocklist []string `yaml:"blocklist"`
}

// LoadConfig loads configuration from a YAML file and environment
// overrides. A missing path loads defaults plus environment.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Port:        8000,
		SandboxRoot: "/data",
		Generator: GeneratorConfig{
			Command:   "datagen",
			Timeout:   "60s",
			MaxOutput: 1 << 20,
		},
		LogLevel:  "info",
		LogFormat: "json",
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("parse PORT: %w", err)
		}
		cfg.Port = n
	}
	if token := os.Getenv("AIPROXY_TOKEN"); token != "" {
		cfg.Token = token
	}
	if root := os.Getenv("AGENT_SANDBOX_ROOT"); root != "" {
		cfg.SandboxRoot = root
	}
	if cmd := os.Getenv("AGENT_GENERATOR_CMD"); cmd != "" {
		cfg.Generator.Command = cmd
	}
	if level := os.Getenv("AGENT_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
	if format := os.Getenv("AGENT_LOG_FORMAT"); format != "" {
		cfg.LogFormat = format
	}

	return cfg, nil
}

// DefaultConfigPath returns the default location for the config file.
func DefaultConfigPath() string {
	if path := os.Getenv("AGENT_CONFIG"); path != "" {
		return path
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".opsagent", "config.yaml")
}
