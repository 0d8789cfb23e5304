package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	md2xlsx "github.com/alnah/go-md2xlsx"
	"github.com/alnah/go-md2xlsx/internal/dateutil"
	"github.com/alnah/go-md2xlsx/internal/fileutil"
	"github.com/alnah/go-md2xlsx/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidWorkers  = errors.New("invalid workers value")
)

// Field length limits.
const (
	MaxDirLength        = 4096 // Directory paths
	MaxStyleLength      = 4096 // Style name or path (raw CSS goes through flags)
	MaxDateSuffixLength = dateutil.MaxDateFormatLength
)

// userConfigSubdir is the directory under os.UserConfigDir searched for
// config files.
const userConfigSubdir = "go-md2xlsx"

// Config holds all configuration for spreadsheet generation.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Sheet   SheetConfig   `yaml:"sheet"`
	Table   TableConfig   `yaml:"table"`
	Widths  WidthsConfig  `yaml:"widths"`
	Preview PreviewConfig `yaml:"preview"`
	Workers int           `yaml:"workers"` // Batch workers (0 = auto)
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
	DateSuffix string `yaml:"dateSuffix"` // Date appended to output names: preset or YYYY/MM/DD pattern (empty = off)
}

// SheetConfig defines worksheet options.
type SheetConfig struct {
	Name string `yaml:"name"` // Default sheet name (empty = front matter title, then "Table Data")
}

// TableConfig defines table parsing options.
type TableConfig struct {
	StrictColumns bool `yaml:"strictColumns"` // Reject ragged rows instead of padding/truncating
}

// WidthsConfig defines column width computation.
type WidthsConfig struct {
	Padding int     `yaml:"padding"` // Characters added to the longest line
	Scale   float64 `yaml:"scale"`   // Multiplier applied after padding
	Min     float64 `yaml:"min"`     // Lower clamp
	Max     float64 `yaml:"max"`     // Upper clamp
}

// PreviewConfig defines HTML preview options.
type PreviewConfig struct {
	HTML  bool   `yaml:"html"`  // Also write the HTML preview
	Style string `yaml:"style"` // Built-in style name or path to a CSS file
}

// Validate checks configured values against the library's rules.
// Called automatically by LoadConfig, but available for consumers who
// construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxDirLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxDirLength); err != nil {
		return err
	}
	if err := validateFieldLength("preview.style", c.Preview.Style, MaxStyleLength); err != nil {
		return err
	}

	if c.Sheet.Name != "" {
		if err := md2xlsx.ValidateSheetName(c.Sheet.Name); err != nil {
			return fmt.Errorf("sheet.name: %w", err)
		}
	}

	if err := c.WidthSettings().Validate(); err != nil {
		return fmt.Errorf("widths: %w", err)
	}

	if c.Output.DateSuffix != "" {
		if err := validateFieldLength("output.dateSuffix", c.Output.DateSuffix, MaxDateSuffixLength); err != nil {
			return err
		}
		if _, err := dateutil.ResolveFormat(c.Output.DateSuffix); err != nil {
			return fmt.Errorf("output.dateSuffix: %w", err)
		}
	}

	if c.Workers < 0 || c.Workers > md2xlsx.MaxWorkers {
		return fmt.Errorf("%w: %d (must be between 0 and %d, 0 = auto)", ErrInvalidWorkers, c.Workers, md2xlsx.MaxWorkers)
	}

	return nil
}

// WidthSettings converts the width fields to the library's settings type.
// Returns nil when every field is zero, which downstream code treats as
// "use library defaults".
func (c *Config) WidthSettings() *md2xlsx.WidthSettings {
	if c.Widths == (WidthsConfig{}) {
		return nil
	}
	return &md2xlsx.WidthSettings{
		Padding: c.Widths.Padding,
		Scale:   c.Widths.Scale,
		Min:     c.Widths.Min,
		Max:     c.Widths.Max,
	}
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration with library default widths and
// everything else neutral.
func DefaultConfig() *Config {
	return &Config{
		Widths: WidthsConfig{
			Padding: md2xlsx.DefaultWidthPadding,
			Scale:   md2xlsx.DefaultWidthScale,
			Min:     md2xlsx.DefaultWidthMin,
			Max:     md2xlsx.DefaultWidthMax,
		},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns error if the file is not found (no silent fallback).
//
// Values decode on top of DefaultConfig, so omitted fields keep their
// defaults while present fields override them.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-md2xlsx/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, userConfigSubdir, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
