package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// DefaultMaxFileSize is the content-read ceiling when no max_size is
// configured (1 MiB)
const DefaultMaxFileSize = 1024 * 1024

// Config represents the analyzer configuration
type Config struct {
	// Scan settings
	MaxSize        string   `mapstructure:"max_size"`        // maximum file size to read content from
	IncludeContent bool     `mapstructure:"include_content"` // materialize file contents into the report
	Exclude        []string `mapstructure:"exclude"`         // extra directory names to skip
	LanguagesPath  string   `mapstructure:"languages_path"`  // YAML language-table overrides

	// Report settings
	ReportFormat string `mapstructure:"report_format"` // json, md, html, txt
	OutputFile   string `mapstructure:"output_file"`   // output file path
}

// LoadConfig loads configuration from environment variables and defaults
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("max_size", "1M")
	v.SetDefault("include_content", true)
	v.SetDefault("exclude", []string{})
	v.SetDefault("languages_path", "")
	v.SetDefault("report_format", "")
	v.SetDefault("output_file", "")

	// Read environment variables
	v.SetEnvPrefix("REPO_ANALYZER")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// MaxFileSize returns the configured content-read ceiling in bytes
func (c *Config) MaxFileSize() int64 {
	size := ParseSize(c.MaxSize)
	if size <= 0 {
		return DefaultMaxFileSize
	}
	return size
}

// ParseSize parses size string (e.g., "650K", "1M") to bytes
func ParseSize(sizeStr string) int64 {
	if len(sizeStr) == 0 {
		return 0
	}

	// Get last character (unit)
	last := sizeStr[len(sizeStr)-1]
	var multiplier int64 = 1

	switch last {
	case 'K', 'k':
		multiplier = 1024
		sizeStr = sizeStr[:len(sizeStr)-1]
	case 'M', 'm':
		multiplier = 1024 * 1024
		sizeStr = sizeStr[:len(sizeStr)-1]
	case 'G', 'g':
		multiplier = 1024 * 1024 * 1024
		sizeStr = sizeStr[:len(sizeStr)-1]
	}

	// Parse number
	var size int64
	fmt.Sscanf(sizeStr, "%d", &size)

	return size * multiplier
}
