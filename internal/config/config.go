// Package config loads codemap settings from .codemap/config.yml with
// environment variable overrides.
package config

// Config represents the complete codemap configuration.
// It can be loaded from .codemap/config.yml with environment variable overrides.
type Config struct {
	Scan   ScanConfig   `yaml:"scan" mapstructure:"scan"`
	Limits LimitsConfig `yaml:"limits" mapstructure:"limits"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
}

// ScanConfig defines which files a mapping run considers.
type ScanConfig struct {
	Ignore       []string `yaml:"ignore" mapstructure:"ignore"`               // glob patterns to skip
	UseGitignore bool     `yaml:"use_gitignore" mapstructure:"use_gitignore"` // honor the root .gitignore
	Concurrency  int      `yaml:"concurrency" mapstructure:"concurrency"`     // parallel workers; 0 = GOMAXPROCS
}

// LimitsConfig bounds how much of each file is analyzed.
type LimitsConfig struct {
	MaxFileSize int64 `yaml:"max_file_size" mapstructure:"max_file_size"` // bytes; files above this are recorded as failed
}

// OutputConfig defines how reports are rendered.
type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format"` // "json" or "text"
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Scan: ScanConfig{
			Ignore: []string{
				"node_modules/**",
				"vendor/**",
				"dist/**",
				"build/**",
				"target/**",
				"__pycache__/**",
				"*.min.js",
				"*.pyc",
			},
			UseGitignore: true,
			Concurrency:  0,
		},
		Limits: LimitsConfig{
			MaxFileSize: 2 * 1024 * 1024,
		},
		Output: OutputConfig{
			Format: "json",
		},
	}
}
