// Package config handles configuration for the fbxinfo tool.
package config

// Config holds all tool settings.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Dump    DumpConfig    `yaml:"dump"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DumpConfig controls raw tree dump output.
type DumpConfig struct {
	// MaxDepth limits how deep the tree dump recurses; 0 means no limit.
	MaxDepth int `yaml:"max_depth"`
	// MaxAttrs limits attributes printed per node; 0 means no limit.
	MaxAttrs int `yaml:"max_attrs"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Dump: DumpConfig{
			MaxDepth: 0,
			MaxAttrs: 8,
		},
	}
}
