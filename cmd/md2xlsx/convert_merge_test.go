package main

// Notes:
// - mergeFlags: we test all flag override scenarios. Each flag category
//   (workers, date suffix, table, widths, preview) is tested for both
//   override and preserve behavior.
// - Width materialization: partial width flags must land on concrete
//   defaults so the merged config still validates.
// - The sheet name flag is deliberately not merged into config; we pin
//   that behavior here.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"testing"

	md2xlsx "github.com/alnah/go-md2xlsx"
	"github.com/alnah/go-md2xlsx/internal/config"
)

// baseFlags returns a flag struct with parse-time defaults. mergeFlags is
// only ever called with parsed flags, where unset width padding carries
// the sentinel rather than zero.
func baseFlags() *convertFlags {
	return &convertFlags{
		widths: widthFlags{padding: widthPaddingSentinel},
	}
}

// ---------------------------------------------------------------------------
// TestMergeFlags - CLI flags override config values
// ---------------------------------------------------------------------------

func TestMergeFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		flags func() *convertFlags
		cfg   *config.Config
		check func(t *testing.T, cfg *config.Config)
	}{
		{
			name:  "empty flags preserve config workers",
			flags: baseFlags,
			cfg:   &config.Config{Workers: 4},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Workers != 4 {
					t.Errorf("Workers = %d, want 4", cfg.Workers)
				}
			},
		},
		{
			name: "workers flag overrides config",
			flags: func() *convertFlags {
				f := baseFlags()
				f.workers = 2
				return f
			},
			cfg: &config.Config{Workers: 4},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Workers != 2 {
					t.Errorf("Workers = %d, want 2", cfg.Workers)
				}
			},
		},
		{
			name: "date suffix flag overrides config",
			flags: func() *convertFlags {
				f := baseFlags()
				f.dateSuffix = "iso"
				return f
			},
			cfg: &config.Config{Output: config.OutputConfig{DateSuffix: "compact"}},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Output.DateSuffix != "iso" {
					t.Errorf("Output.DateSuffix = %q, want %q", cfg.Output.DateSuffix, "iso")
				}
			},
		},
		{
			name:  "empty date suffix preserves config",
			flags: baseFlags,
			cfg:   &config.Config{Output: config.OutputConfig{DateSuffix: "compact"}},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Output.DateSuffix != "compact" {
					t.Errorf("Output.DateSuffix = %q, want %q", cfg.Output.DateSuffix, "compact")
				}
			},
		},
		{
			name: "strict-columns flag enables strict mode",
			flags: func() *convertFlags {
				f := baseFlags()
				f.sheet.strictColumns = true
				return f
			},
			cfg: &config.Config{},
			check: func(t *testing.T, cfg *config.Config) {
				if !cfg.Table.StrictColumns {
					t.Error("Table.StrictColumns should be true")
				}
			},
		},
		{
			name:  "unset strict-columns preserves config value",
			flags: baseFlags,
			cfg:   &config.Config{Table: config.TableConfig{StrictColumns: true}},
			check: func(t *testing.T, cfg *config.Config) {
				if !cfg.Table.StrictColumns {
					t.Error("Table.StrictColumns should stay true")
				}
			},
		},
		{
			name: "html flag enables preview",
			flags: func() *convertFlags {
				f := baseFlags()
				f.preview.html = true
				return f
			},
			cfg: &config.Config{},
			check: func(t *testing.T, cfg *config.Config) {
				if !cfg.Preview.HTML {
					t.Error("Preview.HTML should be true")
				}
			},
		},
		{
			name: "style flag overrides config",
			flags: func() *convertFlags {
				f := baseFlags()
				f.preview.style = "minimal"
				return f
			},
			cfg: &config.Config{Preview: config.PreviewConfig{Style: "default"}},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Preview.Style != "minimal" {
					t.Errorf("Preview.Style = %q, want %q", cfg.Preview.Style, "minimal")
				}
			},
		},
		{
			name:  "empty style preserves config",
			flags: baseFlags,
			cfg:   &config.Config{Preview: config.PreviewConfig{Style: "default"}},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Preview.Style != "default" {
					t.Errorf("Preview.Style = %q, want %q", cfg.Preview.Style, "default")
				}
			},
		},
		{
			name: "sheet name flag is not merged into config",
			flags: func() *convertFlags {
				f := baseFlags()
				f.sheet.name = "Explicit"
				return f
			},
			cfg: &config.Config{Sheet: config.SheetConfig{Name: "Fallback"}},
			check: func(t *testing.T, cfg *config.Config) {
				// The flag names sheets explicitly per input; the config value
				// stays the fallback for documents without a title.
				if cfg.Sheet.Name != "Fallback" {
					t.Errorf("Sheet.Name = %q, want %q", cfg.Sheet.Name, "Fallback")
				}
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := tt.cfg
			mergeFlags(tt.flags(), cfg)
			tt.check(t, cfg)
		})
	}
}

// ---------------------------------------------------------------------------
// TestMergeFlags_Widths - Width flag materialization
// ---------------------------------------------------------------------------

func TestMergeFlags_Widths(t *testing.T) {
	t.Parallel()

	t.Run("no width flags leave empty widths untouched", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{}
		mergeFlags(baseFlags(), cfg)
		if cfg.Widths != (config.WidthsConfig{}) {
			t.Errorf("Widths = %+v, want zero value", cfg.Widths)
		}
	})

	t.Run("lone scale flag materializes defaults for other fields", func(t *testing.T) {
		t.Parallel()

		f := baseFlags()
		f.widths.scale = 1.5

		cfg := &config.Config{}
		mergeFlags(f, cfg)

		if cfg.Widths.Scale != 1.5 {
			t.Errorf("Widths.Scale = %v, want 1.5", cfg.Widths.Scale)
		}
		if cfg.Widths.Padding != md2xlsx.DefaultWidthPadding {
			t.Errorf("Widths.Padding = %d, want default %d", cfg.Widths.Padding, md2xlsx.DefaultWidthPadding)
		}
		if cfg.Widths.Min != md2xlsx.DefaultWidthMin {
			t.Errorf("Widths.Min = %v, want default %v", cfg.Widths.Min, md2xlsx.DefaultWidthMin)
		}
		if cfg.Widths.Max != md2xlsx.DefaultWidthMax {
			t.Errorf("Widths.Max = %v, want default %v", cfg.Widths.Max, md2xlsx.DefaultWidthMax)
		}

		// The merged result must survive validation.
		if err := cfg.WidthSettings().Validate(); err != nil {
			t.Errorf("merged widths should validate, got %v", err)
		}
	})

	t.Run("explicit zero padding overrides config", func(t *testing.T) {
		t.Parallel()

		f := baseFlags()
		f.widths.padding = 0

		cfg := &config.Config{Widths: config.WidthsConfig{Padding: 3, Scale: 1.1, Min: 8, Max: 60}}
		mergeFlags(f, cfg)

		if cfg.Widths.Padding != 0 {
			t.Errorf("Widths.Padding = %d, want 0", cfg.Widths.Padding)
		}
		if cfg.Widths.Scale != 1.1 {
			t.Errorf("Widths.Scale = %v, want 1.1 (preserved)", cfg.Widths.Scale)
		}
	})

	t.Run("partial override preserves configured fields", func(t *testing.T) {
		t.Parallel()

		f := baseFlags()
		f.widths.max = 100

		cfg := &config.Config{Widths: config.WidthsConfig{Padding: 5, Scale: 1.3, Min: 12, Max: 40}}
		mergeFlags(f, cfg)

		if cfg.Widths.Max != 100 {
			t.Errorf("Widths.Max = %v, want 100", cfg.Widths.Max)
		}
		if cfg.Widths.Padding != 5 {
			t.Errorf("Widths.Padding = %d, want 5 (preserved)", cfg.Widths.Padding)
		}
		if cfg.Widths.Scale != 1.3 {
			t.Errorf("Widths.Scale = %v, want 1.3 (preserved)", cfg.Widths.Scale)
		}
		if cfg.Widths.Min != 12 {
			t.Errorf("Widths.Min = %v, want 12 (preserved)", cfg.Widths.Min)
		}
	})
}

// ---------------------------------------------------------------------------
// TestWidthFlagsSet - Explicit width flag detection
// ---------------------------------------------------------------------------

func TestWidthFlagsSet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		flags widthFlags
		want  bool
	}{
		{"all unset", widthFlags{padding: widthPaddingSentinel}, false},
		{"padding zero is set", widthFlags{padding: 0}, true},
		{"padding positive is set", widthFlags{padding: 4}, true},
		{"scale set", widthFlags{padding: widthPaddingSentinel, scale: 1.2}, true},
		{"min set", widthFlags{padding: widthPaddingSentinel, min: 10}, true},
		{"max set", widthFlags{padding: widthPaddingSentinel, max: 80}, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := widthFlagsSet(&tt.flags)
			if got != tt.want {
				t.Errorf("widthFlagsSet(%+v) = %v, want %v", tt.flags, got, tt.want)
			}
		})
	}
}
