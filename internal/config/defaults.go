package config

import (
	_ "embed"
)

//go:embed defaults/levelscope.yaml
var defaultYAML []byte

// Default returns the built-in configuration, used when no config file is
// found and as a last resort if the embedded YAML fails to parse.
func Default() Config {
	return Config{
		DefaultLevel: "public/assets/levels/level_0_1_sewer.json",
		HistoryDB:    "~/.levelscope/history.db",
		Color:        true,
	}
}
