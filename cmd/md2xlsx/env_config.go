package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-md2xlsx/internal/config"
)

// envConfigVar names the variable that points at a config file.
// Consulted when --config is not given.
const envConfigVar = "MD2XLSX_CONFIG"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	// Tier 1 - Essential
	ConfigPath string // MD2XLSX_CONFIG: config file path
	Style      string // MD2XLSX_STYLE: preview CSS style name or path
	Sheet      string // MD2XLSX_SHEET: fallback worksheet name

	// Tier 2 - I/O
	InputDir   string // MD2XLSX_INPUT_DIR: default input directory
	OutputDir  string // MD2XLSX_OUTPUT_DIR: default output directory
	DateSuffix string // MD2XLSX_DATE_SUFFIX: output name date suffix

	// Tier 3 - Extended
	Workers int // MD2XLSX_WORKERS: parallel workers
}

// knownEnvVars lists valid MD2XLSX_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	// Tier 1 - Essential
	"MD2XLSX_CONFIG": true,
	"MD2XLSX_STYLE":  true,
	"MD2XLSX_SHEET":  true,
	// Tier 2 - I/O
	"MD2XLSX_INPUT_DIR":   true,
	"MD2XLSX_OUTPUT_DIR":  true,
	"MD2XLSX_DATE_SUFFIX": true,
	// Tier 3 - Extended
	"MD2XLSX_WORKERS": true,
}

// loadEnvConfig reads configuration from environment variables.
// Returns a struct with all recognized MD2XLSX_* values.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		// Tier 1
		ConfigPath: os.Getenv("MD2XLSX_CONFIG"),
		Style:      os.Getenv("MD2XLSX_STYLE"),
		Sheet:      os.Getenv("MD2XLSX_SHEET"),
		// Tier 2
		InputDir:   os.Getenv("MD2XLSX_INPUT_DIR"),
		OutputDir:  os.Getenv("MD2XLSX_OUTPUT_DIR"),
		DateSuffix: os.Getenv("MD2XLSX_DATE_SUFFIX"),
	}

	// Parse int for workers
	if workers := os.Getenv("MD2XLSX_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MD2XLSX_* variables.
// Helps catch typos like MD2XLSX_SHEETS instead of MD2XLSX_SHEET.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "MD2XLSX_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty/zero,
// so a loaded config file keeps its values and CLI flags applied later via
// mergeFlags override both.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	// Tier 1 (config path handled separately in loadConfigWithEnv)
	if env.Style != "" && cfg.Preview.Style == "" {
		cfg.Preview.Style = env.Style
	}
	if env.Sheet != "" && cfg.Sheet.Name == "" {
		cfg.Sheet.Name = env.Sheet
	}

	// Tier 2 - I/O
	if env.InputDir != "" && cfg.Input.DefaultDir == "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.DateSuffix != "" && cfg.Output.DateSuffix == "" {
		cfg.Output.DateSuffix = env.DateSuffix
	}

	// Tier 3 - Workers
	if env.Workers > 0 && cfg.Workers == 0 {
		cfg.Workers = env.Workers
	}
}
