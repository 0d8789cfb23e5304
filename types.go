package md2xlsx

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Sheet naming rules imposed by the xlsx format.
const (
	// DefaultSheetName labels the sheet when no name is configured.
	DefaultSheetName = "Table Data"

	// MaxSheetNameLength is the format's hard limit on sheet names.
	MaxSheetNameLength = 31
)

// forbiddenSheetChars are rejected in sheet names by the xlsx format.
const forbiddenSheetChars = `:\/?*[]`

// Column width bounds in spreadsheet character units.
const (
	MinColumnWidth  = 1.0
	MaxColumnWidth  = 255.0
	MaxWidthPadding = 32
	MaxWidthScale   = 10.0
)

// Width defaults: three characters of padding, a 10% scale-up, and an
// 8..60 clamp keep typical tables readable without pathological columns.
const (
	DefaultWidthPadding = 3
	DefaultWidthScale   = 1.1
	DefaultWidthMin     = 8.0
	DefaultWidthMax     = 60.0
)

// WidthSettings controls how column text widths become spreadsheet column
// widths: width = (longestLine + Padding) * Scale, clamped to [Min, Max].
type WidthSettings struct {
	Padding int     // characters added to the longest line
	Scale   float64 // multiplier applied after padding
	Min     float64 // lower clamp, spreadsheet character units
	Max     float64 // upper clamp, spreadsheet character units
}

// DefaultWidthSettings returns width settings with default values.
func DefaultWidthSettings() *WidthSettings {
	return &WidthSettings{
		Padding: DefaultWidthPadding,
		Scale:   DefaultWidthScale,
		Min:     DefaultWidthMin,
		Max:     DefaultWidthMax,
	}
}

// Validate checks that width settings are valid.
// Returns nil if w is nil (nil means use defaults).
func (w *WidthSettings) Validate() error {
	if w == nil {
		return nil
	}

	if w.Padding < 0 || w.Padding > MaxWidthPadding {
		return fmt.Errorf("%w: padding %d (must be between 0 and %d)", ErrInvalidWidths, w.Padding, MaxWidthPadding)
	}

	if w.Scale <= 0 || w.Scale > MaxWidthScale {
		return fmt.Errorf("%w: scale %.2f (must be above 0 and at most %.1f)", ErrInvalidWidths, w.Scale, MaxWidthScale)
	}

	if w.Min < MinColumnWidth {
		return fmt.Errorf("%w: min %.2f (must be at least %.1f)", ErrInvalidWidths, w.Min, MinColumnWidth)
	}

	if w.Max < w.Min {
		return fmt.Errorf("%w: max %.2f is below min %.2f", ErrInvalidWidths, w.Max, w.Min)
	}

	if w.Max > MaxColumnWidth {
		return fmt.Errorf("%w: max %.2f (must be at most %.1f)", ErrInvalidWidths, w.Max, MaxColumnWidth)
	}

	return nil
}

// ValidateSheetName checks name against the xlsx sheet naming rules:
// non-empty, at most MaxSheetNameLength characters, none of :\/?*[],
// and no leading or trailing apostrophe.
func ValidateSheetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidSheetName)
	}
	if n := utf8.RuneCountInString(name); n > MaxSheetNameLength {
		return fmt.Errorf("%w: %q is %d characters (max %d)", ErrInvalidSheetName, name, n, MaxSheetNameLength)
	}
	if idx := strings.IndexAny(name, forbiddenSheetChars); idx >= 0 {
		return fmt.Errorf("%w: %q contains %q", ErrInvalidSheetName, name, name[idx])
	}
	if strings.HasPrefix(name, "'") || strings.HasSuffix(name, "'") {
		return fmt.Errorf("%w: %q starts or ends with an apostrophe", ErrInvalidSheetName, name)
	}
	return nil
}

// SanitizeSheetName coerces s into a valid sheet name by replacing forbidden
// characters with spaces and truncating to the length limit. Returns fallback
// when nothing usable remains. Used for names derived from document content,
// which should degrade rather than fail.
func SanitizeSheetName(s, fallback string) string {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(forbiddenSheetChars, r) {
			b.WriteRune(' ')
		} else {
			b.WriteRune(r)
		}
	}

	out := strings.TrimSpace(b.String())
	out = strings.Trim(out, "'")
	out = strings.TrimSpace(out)

	if utf8.RuneCountInString(out) > MaxSheetNameLength {
		runes := []rune(out)
		out = strings.TrimSpace(string(runes[:MaxSheetNameLength]))
	}

	if out == "" {
		return fallback
	}
	return out
}

// Input contains conversion parameters.
type Input struct {
	Markdown      string         // Markdown content (required)
	SheetName     string         // Sheet name (optional, overrides front matter title)
	Widths        *WidthSettings // Column width settings (optional, nil = defaults)
	StrictColumns bool           // Reject ragged rows instead of padding/truncating
	HTML          bool           // Also render the HTML preview
	HTMLOnly      bool           // Render only the HTML preview (skips the workbook)
}

// ConvertResult holds conversion outputs.
type ConvertResult struct {
	XLSX     []byte    // Workbook bytes (nil in HTMLOnly mode)
	HTML     []byte    // Preview page bytes (nil unless HTML or HTMLOnly)
	Warnings []Warning // Non-fatal parse diagnostics (ragged rows)
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	defaultSheet  string
	defaultWidths *WidthSettings
	styleInput    string
	resolvedStyle string
}

// MaxStyleSize limits preview stylesheet input to prevent memory abuse.
const MaxStyleSize = 256 << 10

// WithDefaultSheetName sets the sheet name used when neither the input nor
// the document front matter provides one. Validated by NewConverter.
func WithDefaultSheetName(name string) Option {
	return func(c *Converter) {
		c.cfg.defaultSheet = name
	}
}

// WithDefaultWidths sets the column width settings used when the input does
// not provide any. Validated by NewConverter.
func WithDefaultWidths(w WidthSettings) Option {
	return func(c *Converter) {
		ws := w
		c.cfg.defaultWidths = &ws
	}
}

// WithStyle sets the HTML preview stylesheet. Accepts a built-in style name,
// a path to a CSS file, or raw CSS content. Resolved by NewConverter.
func WithStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = style
	}
}
