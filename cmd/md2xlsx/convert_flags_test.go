package main

// Notes:
// - parseConvertFlags/parseWatchFlags: we test all flag combinations including
//   short/long forms, boolean flags, value flags, and positional arguments.
// - We don't test flag.Parse() internals (pflag library responsibility).
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"testing"

	flag "github.com/spf13/pflag"
)

// ---------------------------------------------------------------------------
// TestParseConvertFlags - CLI flag parsing
// ---------------------------------------------------------------------------

func TestParseConvertFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		args           []string
		wantConfig     string
		wantOutput     string
		wantSheet      string
		wantQuiet      bool
		wantVerbose    bool
		wantStrict     bool
		wantHTML       bool
		wantHTMLOnly   bool
		wantStyle      string
		wantWorkers    int
		wantDateSuffix string
		wantPositional []string
		wantErr        bool
	}{
		{
			name:           "no args",
			args:           []string{},
			wantPositional: []string{},
		},
		{
			name:           "single file",
			args:           []string{"doc.md"},
			wantPositional: []string{"doc.md"},
		},
		{
			name:           "config flag",
			args:           []string{"--config", "work"},
			wantConfig:     "work",
			wantPositional: []string{},
		},
		{
			name:           "output flag short",
			args:           []string{"-o", "./out/"},
			wantOutput:     "./out/",
			wantPositional: []string{},
		},
		{
			name:           "sheet flag",
			args:           []string{"--sheet", "Budget 2026"},
			wantSheet:      "Budget 2026",
			wantPositional: []string{},
		},
		{
			name:           "sheet flag short",
			args:           []string{"-s", "Data"},
			wantSheet:      "Data",
			wantPositional: []string{},
		},
		{
			name:           "quiet flag",
			args:           []string{"--quiet"},
			wantQuiet:      true,
			wantPositional: []string{},
		},
		{
			name:           "verbose flag",
			args:           []string{"--verbose"},
			wantVerbose:    true,
			wantPositional: []string{},
		},
		{
			name:           "strict-columns flag",
			args:           []string{"--strict-columns", "doc.md"},
			wantStrict:     true,
			wantPositional: []string{"doc.md"},
		},
		{
			name:           "html flag",
			args:           []string{"--html", "doc.md"},
			wantHTML:       true,
			wantPositional: []string{"doc.md"},
		},
		{
			name:           "html-only flag",
			args:           []string{"--html-only", "doc.md"},
			wantHTMLOnly:   true,
			wantPositional: []string{"doc.md"},
		},
		{
			name:           "style flag",
			args:           []string{"--style", "minimal"},
			wantStyle:      "minimal",
			wantPositional: []string{},
		},
		{
			name:           "workers flag short",
			args:           []string{"-w", "4", "doc.md"},
			wantWorkers:    4,
			wantPositional: []string{"doc.md"},
		},
		{
			name:           "date-suffix flag",
			args:           []string{"--date-suffix", "iso", "doc.md"},
			wantDateSuffix: "iso",
			wantPositional: []string{"doc.md"},
		},
		{
			name:           "all flags with file",
			args:           []string{"--config", "work", "-o", "out.xlsx", "--sheet", "Data", "--verbose", "doc.md"},
			wantConfig:     "work",
			wantOutput:     "out.xlsx",
			wantSheet:      "Data",
			wantVerbose:    true,
			wantPositional: []string{"doc.md"},
		},
		{
			name:    "unknown flag returns error",
			args:    []string{"--unknown"},
			wantErr: true,
		},
		{
			name:           "flags after positional argument",
			args:           []string{"doc.md", "-o", "./out/", "--verbose"},
			wantOutput:     "./out/",
			wantVerbose:    true,
			wantPositional: []string{"doc.md"},
		},
		{
			name:           "short flags",
			args:           []string{"-c", "work", "-q", "-v", "doc.md"},
			wantConfig:     "work",
			wantQuiet:      true,
			wantVerbose:    true,
			wantPositional: []string{"doc.md"},
		},
		{
			name:           "mixed long and short flags",
			args:           []string{"--config", "work", "-o", "./out/", "doc.md", "-v"},
			wantConfig:     "work",
			wantOutput:     "./out/",
			wantVerbose:    true,
			wantPositional: []string{"doc.md"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flags, positional, err := parseConvertFlags(tt.args)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if flags.common.config != tt.wantConfig {
				t.Errorf("configName = %q, want %q", flags.common.config, tt.wantConfig)
			}
			if flags.output != tt.wantOutput {
				t.Errorf("outputPath = %q, want %q", flags.output, tt.wantOutput)
			}
			if flags.sheet.name != tt.wantSheet {
				t.Errorf("sheet = %q, want %q", flags.sheet.name, tt.wantSheet)
			}
			if flags.common.quiet != tt.wantQuiet {
				t.Errorf("quiet = %v, want %v", flags.common.quiet, tt.wantQuiet)
			}
			if flags.common.verbose != tt.wantVerbose {
				t.Errorf("verbose = %v, want %v", flags.common.verbose, tt.wantVerbose)
			}
			if flags.sheet.strictColumns != tt.wantStrict {
				t.Errorf("strictColumns = %v, want %v", flags.sheet.strictColumns, tt.wantStrict)
			}
			if flags.preview.html != tt.wantHTML {
				t.Errorf("html = %v, want %v", flags.preview.html, tt.wantHTML)
			}
			if flags.preview.htmlOnly != tt.wantHTMLOnly {
				t.Errorf("htmlOnly = %v, want %v", flags.preview.htmlOnly, tt.wantHTMLOnly)
			}
			if flags.preview.style != tt.wantStyle {
				t.Errorf("style = %q, want %q", flags.preview.style, tt.wantStyle)
			}
			if flags.workers != tt.wantWorkers {
				t.Errorf("workers = %d, want %d", flags.workers, tt.wantWorkers)
			}
			if flags.dateSuffix != tt.wantDateSuffix {
				t.Errorf("dateSuffix = %q, want %q", flags.dateSuffix, tt.wantDateSuffix)
			}
			if len(positional) != len(tt.wantPositional) {
				t.Errorf("positional args = %v, want %v", positional, tt.wantPositional)
			}
			for i := range positional {
				if positional[i] != tt.wantPositional[i] {
					t.Errorf("positional[%d] = %q, want %q", i, positional[i], tt.wantPositional[i])
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestParseConvertFlags_WidthSentinel - Width padding sentinel behavior
// ---------------------------------------------------------------------------

func TestParseConvertFlags_WidthSentinel(t *testing.T) {
	t.Parallel()

	t.Run("padding defaults to sentinel when not set", func(t *testing.T) {
		t.Parallel()
		flags, _, err := parseConvertFlags([]string{"doc.md"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if flags.widths.padding != widthPaddingSentinel {
			t.Errorf("padding = %d, want sentinel %d", flags.widths.padding, widthPaddingSentinel)
		}
	})

	t.Run("explicit zero padding is distinguishable from unset", func(t *testing.T) {
		t.Parallel()
		flags, _, err := parseConvertFlags([]string{"--width-padding", "0", "doc.md"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if flags.widths.padding != 0 {
			t.Errorf("padding = %d, want 0", flags.widths.padding)
		}
		if flags.widths.padding == widthPaddingSentinel {
			t.Error("explicit 0 should not equal the sentinel")
		}
	})

	t.Run("width flags parse values", func(t *testing.T) {
		t.Parallel()
		flags, _, err := parseConvertFlags([]string{
			"--width-padding", "5",
			"--width-scale", "1.2",
			"--width-min", "10",
			"--width-max", "80",
			"doc.md",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if flags.widths.padding != 5 {
			t.Errorf("padding = %d, want 5", flags.widths.padding)
		}
		if flags.widths.scale != 1.2 {
			t.Errorf("scale = %v, want 1.2", flags.widths.scale)
		}
		if flags.widths.min != 10 {
			t.Errorf("min = %v, want 10", flags.widths.min)
		}
		if flags.widths.max != 80 {
			t.Errorf("max = %v, want 80", flags.widths.max)
		}
	})

	t.Run("width flags default to zero when not set", func(t *testing.T) {
		t.Parallel()
		flags, _, err := parseConvertFlags([]string{"doc.md"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if flags.widths.scale != 0 {
			t.Errorf("scale = %v, want 0", flags.widths.scale)
		}
		if flags.widths.min != 0 {
			t.Errorf("min = %v, want 0", flags.widths.min)
		}
		if flags.widths.max != 0 {
			t.Errorf("max = %v, want 0", flags.widths.max)
		}
	})
}

// ---------------------------------------------------------------------------
// TestParseConvertFlags_Help - Help flag returns pflag.ErrHelp
// ---------------------------------------------------------------------------

func TestParseConvertFlags_Help(t *testing.T) {
	t.Parallel()

	_, _, err := parseConvertFlags([]string{"--help"})
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("expected pflag.ErrHelp, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// TestParseWatchFlags - Watch command flag parsing
// ---------------------------------------------------------------------------

func TestParseWatchFlags(t *testing.T) {
	t.Parallel()

	t.Run("debounce flag", func(t *testing.T) {
		t.Parallel()
		flags, _, err := parseWatchFlags([]string{"--debounce", "500ms", "doc.md"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if flags.debounce != "500ms" {
			t.Errorf("debounce = %q, want %q", flags.debounce, "500ms")
		}
	})

	t.Run("inherits convert flags", func(t *testing.T) {
		t.Parallel()
		flags, positional, err := parseWatchFlags([]string{"-s", "Data", "--html", "-o", "./out/", "doc.md"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if flags.sheet.name != "Data" {
			t.Errorf("sheet = %q, want %q", flags.sheet.name, "Data")
		}
		if !flags.preview.html {
			t.Error("expected html=true")
		}
		if flags.output != "./out/" {
			t.Errorf("output = %q, want %q", flags.output, "./out/")
		}
		if len(positional) != 1 || positional[0] != "doc.md" {
			t.Errorf("positional = %v, want [doc.md]", positional)
		}
	})

	t.Run("debounce defaults to empty", func(t *testing.T) {
		t.Parallel()
		flags, _, err := parseWatchFlags([]string{"doc.md"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if flags.debounce != "" {
			t.Errorf("debounce = %q, want empty", flags.debounce)
		}
	})

	t.Run("unknown flag returns error", func(t *testing.T) {
		t.Parallel()
		_, _, err := parseWatchFlags([]string{"--unknown"})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

// ---------------------------------------------------------------------------
// TestParseConvertFlags_PositionalArgs - Positional argument handling
// ---------------------------------------------------------------------------

func TestParseConvertFlags_PositionalArgs(t *testing.T) {
	t.Parallel()

	flags, positional, err := parseConvertFlags([]string{"--sheet", "Data", "doc.md", "doc2.md"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if flags.sheet.name != "Data" {
		t.Errorf("sheet = %q, want %q", flags.sheet.name, "Data")
	}
	if len(positional) != 2 {
		t.Fatalf("positional count = %d, want 2", len(positional))
	}
	if positional[0] != "doc.md" {
		t.Errorf("positional[0] = %q, want %q", positional[0], "doc.md")
	}
	if positional[1] != "doc2.md" {
		t.Errorf("positional[1] = %q, want %q", positional[1], "doc2.md")
	}
}
