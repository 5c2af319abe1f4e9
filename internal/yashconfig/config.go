// Package yashconfig loads the shell's YAML configuration file, the
// "configuration variable (consumed): posixly_correct" input described
// alongside the rest of the job-control core's inputs, plus the handful of
// other ambient shell settings a complete implementation needs (prompt,
// history file). Shape and loading style follow
// ChuLiYu-raft-recovery/internal/cli.Config/loadConfig.
package yashconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the shell's on-disk configuration.
type Config struct {
	// PosixlyCorrect toggles strict POSIX output formatting (spec.md §4.7's
	// continuation-line column-width rule, among others).
	PosixlyCorrect bool `yaml:"posixly_correct"`
	// Prompt is the interactive primary prompt string.
	Prompt string `yaml:"prompt"`
	// HistoryFile is where command history is appended and reloaded from.
	HistoryFile string `yaml:"history_file"`
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		PosixlyCorrect: false,
		Prompt:         "$ ",
		HistoryFile:    home + "/.yash_history",
	}
}

// Load reads and parses the YAML configuration file at path. A missing
// file is not an error: the caller gets Default() back unchanged, matching
// the optional --config flag's "fine if absent" contract.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	return cfg, nil
}
