// Package config loads optional file-based defaults for the CLI. A
// .flatenv.yml in the working directory (or any parent) supplies default
// conversion and format options; CLI flags override it.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mcrawford/flatenv/internal/models"
)

// Config represents the complete file configuration.
type Config struct {
	Format     string           `yaml:"format"`
	Conversion ConversionConfig `yaml:"conversion"`
	Compose    ComposeConfig    `yaml:"compose"`
	EnvFile    EnvFileConfig    `yaml:"env_file"`
	Plain      PlainConfig      `yaml:"plain"`
	Dev        DevConfig        `yaml:"dev"`
}

// ConversionConfig mirrors the flattener options in YAML form.
type ConversionConfig struct {
	Prefix       string `yaml:"prefix"`
	Naming       string `yaml:"naming"`
	Separator    string `yaml:"separator"`
	NullHandling string `yaml:"null_handling"`
	TypeHints    bool   `yaml:"type_hints"`
	// JoinArrays collapses arrays to comma-joined values instead of
	// indexed variables.
	JoinArrays bool `yaml:"join_arrays"`
}

// ComposeConfig controls the Docker Compose renderer.
type ComposeConfig struct {
	Style  string `yaml:"style"`
	Indent int    `yaml:"indent"`
}

// EnvFileConfig controls the .env renderer.
type EnvFileConfig struct {
	Comments bool `yaml:"comments"`
	Quote    bool `yaml:"quote"`
}

// PlainConfig controls the plain-text renderer.
type PlainConfig struct {
	Separator string `yaml:"separator"`
	Export    bool   `yaml:"export"`
}

// DevConfig contains development/debug options.
type DevConfig struct {
	Debug bool `yaml:"debug"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Format: string(models.FormatCompose),
		Conversion: ConversionConfig{
			Naming:       string(models.NamingPreserve),
			Separator:    models.DefaultKeySeparator,
			NullHandling: string(models.NullAsEmpty),
		},
		Compose: ComposeConfig{
			Style:  string(models.ComposeArrayStyle),
			Indent: 2,
		},
		Plain: PlainConfig{
			Separator: "=",
		},
	}
}

// LoadConfig loads configuration from a YAML file over the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// FindConfigFile searches for a config file in the current directory and
// its parents. Returns "" when none is found.
func FindConfigFile() string {
	configNames := []string{".flatenv.yml", ".flatenv.yaml", "flatenv.yml", "flatenv.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return ""
}

// ConversionOptions converts the file config into flattener options.
func (c *Config) ConversionOptions() models.ConversionOptions {
	return models.ConversionOptions{
		Prefix:           c.Conversion.Prefix,
		NamingConvention: models.NamingConvention(c.Conversion.Naming),
		IncludeTypeHints: c.Conversion.TypeHints,
		KeySeparator:     c.Conversion.Separator,
		NullHandling:     models.NullHandling(c.Conversion.NullHandling),
		JoinArrays:       c.Conversion.JoinArrays,
	}
}

// FormatOptions converts the file config into renderer options.
func (c *Config) FormatOptions() models.FormatOptions {
	return models.FormatOptions{
		Compose: models.ComposeOptions{
			Style:  models.ComposeStyle(c.Compose.Style),
			Indent: c.Compose.Indent,
		},
		EnvFile: models.EnvFileOptions{
			IncludeComments: c.EnvFile.Comments,
			AlwaysQuote:     c.EnvFile.Quote,
			Separator:       c.Conversion.Separator,
		},
		Plain: models.PlainTextOptions{
			Separator:    c.Plain.Separator,
			ExportPrefix: c.Plain.Export,
		},
	}
}
