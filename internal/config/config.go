package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

const (
	ShellLine = "line"
	ShellNav  = "nav"
)

// Shells lists the accepted values of Config.Shell
var Shells = []string{ShellLine, ShellNav}

// Config represents the application configuration
type Config struct {
	// Shell picks the input shell: "line" or "nav"
	Shell string `toml:"shell" env:"SCOUNDREL_SHELL"`
	// Seed fixes the shuffle; zero picks a random seed per game
	Seed uint64 `toml:"seed" env:"SCOUNDREL_SEED"`
	// NoColor turns off ANSI colours
	NoColor bool `toml:"no_color" env:"SCOUNDREL_NO_COLOR"`
	// LogFile receives the session log; empty disables logging
	LogFile string `toml:"log_file" env:"SCOUNDREL_LOG_FILE"`
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		Shell: ShellLine,
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetXDGStateHome returns XDG_STATE_HOME or default path
func GetXDGStateHome() string {
	if xdgState := os.Getenv("XDG_STATE_HOME"); xdgState != "" {
		return xdgState
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "state")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "scoundrel", "config.toml")
}

// GetDefaultLogPath returns the suggested location for the session log
func GetDefaultLogPath() string {
	return filepath.Join(GetXDGStateHome(), "scoundrel", "scoundrel.log")
}

// Load reads the config file and applies environment overrides
func Load() (*Config, error) {
	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	if err := ParseEnv(config); err != nil {
		return nil, err
	}
	return config, nil
}

// ParseEnv overrides fields of target from SCOUNDREL_* variables.
// Unset variables leave the field alone.
func ParseEnv(target *Config) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadConfig loads the config file
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := save(config); err != nil {
		return nil, err
	}
	return config, nil
}

// SetShell sets the default shell in the config
func SetShell(shell string) error {
	if !slices.Contains(Shells, shell) {
		return fmt.Errorf("unknown shell %q (expected one of %v)", shell, Shells)
	}

	config, err := LoadConfig()
	if err != nil {
		return err
	}

	config.Shell = shell
	return save(config)
}

func save(config *Config) error {
	configPath := GetConfigFilePath()

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error opening config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}
