package validator

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/scoundrel/internal/config"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	ConfigPath string
	Results    ValidationResults

	config config.Config
	meta   toml.MetaData
}

func NewValidator(configPath string) *Validator {
	return &Validator{
		ConfigPath: configPath,
		Results:    ValidationResults{},
	}
}

// Validate checks the config file. A file that cannot be read or parsed is
// an error return; problems with its contents are collected in the results.
func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.decode(); err != nil {
		return v.Results, err
	}

	v.validateKeys()
	v.validateShell()
	v.validateLogFile()

	return v.Results, nil
}

func (v *Validator) decode() error {
	if _, err := os.Stat(v.ConfigPath); os.IsNotExist(err) {
		return fmt.Errorf("config file not found: %s", v.ConfigPath)
	}

	meta, err := toml.DecodeFile(v.ConfigPath, &v.config)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", filepath.Base(v.ConfigPath), err)
	}
	v.meta = meta
	return nil
}

// validateKeys warns about keys the game does not read
func (v *Validator) validateKeys() {
	for _, key := range v.meta.Undecoded() {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("unknown key: %s", key.String()))
	}
}

// validateShell checks the shell name
func (v *Validator) validateShell() {
	if !v.meta.IsDefined("shell") {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("shell not set, %q will be used", config.ShellLine))
		return
	}
	if !slices.Contains(config.Shells, v.config.Shell) {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("unsupported shell: %q (supported: %s)", v.config.Shell, strings.Join(config.Shells, ", ")))
	}
}

// validateLogFile checks that the log file can be created
func (v *Validator) validateLogFile() {
	if v.config.LogFile == "" {
		return
	}

	dir := filepath.Dir(v.config.LogFile)
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("log directory does not exist yet: %s", dir))
		return
	}
	if err != nil {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("error reading log directory: %v", err))
		return
	}
	if !info.IsDir() {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("log_file parent is not a directory: %s", dir))
	}
}
