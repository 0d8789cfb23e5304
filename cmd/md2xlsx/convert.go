package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	md2xlsx "github.com/alnah/go-md2xlsx"
	"github.com/alnah/go-md2xlsx/internal/assets"
	"github.com/alnah/go-md2xlsx/internal/config"
	"github.com/alnah/go-md2xlsx/internal/dateutil"
	"github.com/alnah/go-md2xlsx/internal/hints"
)

// conversionParams groups parameters shared across batch/file conversion.
type conversionParams struct {
	sheetName string // explicit name applied to every file ("" = per-document)
	strict    bool
	html      bool
	htmlOnly  bool
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	// Load configuration
	cfg, err := loadConfigWithEnv(flags.common.config, env.Config)
	if err != nil {
		return err
	}

	// Environment variables fill gaps the config file left open
	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)
	applyEnvConfig(envCfg, cfg)

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)

	// Resolve the date suffix once for the entire batch
	suffix, err := resolveDateSuffix(cfg.Output.DateSuffix, env.Now)
	if err != nil {
		return err
	}

	// Resolve input path
	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}

	if err := validateOutputTarget(flags.output, flags.preview.htmlOnly); err != nil {
		return err
	}

	// Resolve output directory
	outputDir := resolveOutputDir(flags.output, cfg)

	// Discover files to convert
	files, err := discoverFiles(inputPath, outputDir, suffix)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}

	if len(files) == 0 {
		return fmt.Errorf("no markdown files found in %s", inputPath)
	}

	// Build the shared converter from merged settings
	conv, err := buildConverter(cfg)
	if err != nil {
		return err
	}

	workers := md2xlsx.ResolveWorkers(cfg.Workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Workers: %d\n", workers)
	}

	params := &conversionParams{
		sheetName: flags.sheet.name,
		strict:    cfg.Table.StrictColumns,
		html:      cfg.Preview.HTML,
		htmlOnly:  flags.preview.htmlOnly,
	}

	// Convert files
	results := convertBatch(ctx, conv, workers, files, params)

	// Print results
	failedCount := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)
	if failedCount > 0 {
		if first := firstError(results); first != nil {
			return fmt.Errorf("%d conversion(s) failed: %w", failedCount, first)
		}
		return fmt.Errorf("%d conversion(s) failed", failedCount)
	}

	return nil
}

// loadConfigWithEnv loads configuration named by the flag or the
// MD2XLSX_CONFIG environment variable, falling back to base.
func loadConfigWithEnv(flagConfig string, base *config.Config) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = os.Getenv(envConfigVar)
	}
	if name == "" {
		return base, nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
// The sheet name flag is deliberately not merged: cfg.Sheet.Name is the
// fallback used when a document has no front matter title, while the flag
// names the sheet explicitly for every file in the batch.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}
	if flags.dateSuffix != "" {
		cfg.Output.DateSuffix = flags.dateSuffix
	}

	// Table flags
	if flags.sheet.strictColumns {
		cfg.Table.StrictColumns = true
	}

	// Width flags. Partial overrides land on top of concrete defaults so a
	// lone --width-scale does not zero out the other settings.
	if widthFlagsSet(&flags.widths) {
		if cfg.Widths == (config.WidthsConfig{}) {
			cfg.Widths = config.WidthsConfig{
				Padding: md2xlsx.DefaultWidthPadding,
				Scale:   md2xlsx.DefaultWidthScale,
				Min:     md2xlsx.DefaultWidthMin,
				Max:     md2xlsx.DefaultWidthMax,
			}
		}
		if flags.widths.padding != widthPaddingSentinel {
			cfg.Widths.Padding = flags.widths.padding
		}
		if flags.widths.scale > 0 {
			cfg.Widths.Scale = flags.widths.scale
		}
		if flags.widths.min > 0 {
			cfg.Widths.Min = flags.widths.min
		}
		if flags.widths.max > 0 {
			cfg.Widths.Max = flags.widths.max
		}
	}

	// Preview flags
	if flags.preview.html {
		cfg.Preview.HTML = true
	}
	if flags.preview.style != "" {
		cfg.Preview.Style = flags.preview.style
	}
}

// widthFlagsSet reports whether any width flag was explicitly provided.
func widthFlagsSet(f *widthFlags) bool {
	return f.padding != widthPaddingSentinel || f.scale > 0 || f.min > 0 || f.max > 0
}

// resolveDateSuffix formats the output name suffix for the batch.
// An empty format means no suffix.
func resolveDateSuffix(format string, now func() time.Time) (string, error) {
	if format == "" {
		return "", nil
	}
	return dateutil.FormatSuffix(format, now())
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// buildConverter assembles the shared converter from merged settings.
// Invalid sheet names, widths, and styles surface here.
func buildConverter(cfg *config.Config) (*md2xlsx.Converter, error) {
	var opts []md2xlsx.Option
	if cfg.Sheet.Name != "" {
		opts = append(opts, md2xlsx.WithDefaultSheetName(cfg.Sheet.Name))
	}
	if ws := cfg.WidthSettings(); ws != nil {
		opts = append(opts, md2xlsx.WithDefaultWidths(*ws))
	}
	if cfg.Preview.Style != "" {
		opts = append(opts, md2xlsx.WithStyle(cfg.Preview.Style))
	}
	return md2xlsx.NewConverter(opts...)
}

// hintFor returns an actionable hint for known failure modes, formatted
// for appending to an error line. Unknown errors yield an empty string.
func hintFor(err error) string {
	switch {
	case errors.Is(err, md2xlsx.ErrNoTable):
		return hints.ForNoTable()
	case errors.Is(err, md2xlsx.ErrMalformedTable):
		return hints.ForMalformedTable()
	case errors.Is(err, md2xlsx.ErrInvalidSheetName):
		return hints.ForSheetName()
	case errors.Is(err, md2xlsx.ErrInvalidStyle):
		return hints.ForStyleNotFound(assets.ListStyles())
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(configSearchHint())
	case errors.Is(err, os.ErrPermission):
		return hints.ForOutputDirectory()
	default:
		return ""
	}
}

// configSearchHint lists the locations LoadConfig consults, for hint text.
func configSearchHint() []string {
	paths := []string{"./<name>.yaml", "./<name>.yml"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "go-md2xlsx", "<name>.yaml"))
	}
	return paths
}
