// Package config provides YAML-based configuration loading for levelscope.
package config

// Config holds tool-wide settings.
type Config struct {
	// DefaultLevel is the level file used when a command gets no path argument.
	DefaultLevel string `yaml:"default_level"`

	// HistoryDB is the path to the scan history database.
	HistoryDB string `yaml:"history_db"`

	// Color toggles styled output in the interactive browser.
	Color bool `yaml:"color"`
}
