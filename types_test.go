package md2xlsx

// Notes:
// - WidthSettings: tests validation boundaries for padding, scale, min, max
// - DefaultWidthSettings: tests default values and that they validate
// - ValidateSheetName: tests length limit, forbidden characters, apostrophes
// - SanitizeSheetName: tests coercion of arbitrary titles into legal names

import (
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestWidthSettings_Validate - WidthSettings Validation
// ---------------------------------------------------------------------------

func TestWidthSettings_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ws      *WidthSettings
		wantErr error
	}{
		{
			name:    "nil is valid (use defaults)",
			ws:      nil,
			wantErr: nil,
		},
		{
			name:    "defaults are valid",
			ws:      DefaultWidthSettings(),
			wantErr: nil,
		},
		{
			name:    "padding at zero",
			ws:      &WidthSettings{Padding: 0, Scale: 1.0, Min: 8, Max: 60},
			wantErr: nil,
		},
		{
			name:    "padding at maximum",
			ws:      &WidthSettings{Padding: MaxWidthPadding, Scale: 1.0, Min: 8, Max: 60},
			wantErr: nil,
		},
		{
			name:    "padding negative",
			ws:      &WidthSettings{Padding: -1, Scale: 1.0, Min: 8, Max: 60},
			wantErr: ErrInvalidWidths,
		},
		{
			name:    "padding above maximum",
			ws:      &WidthSettings{Padding: MaxWidthPadding + 1, Scale: 1.0, Min: 8, Max: 60},
			wantErr: ErrInvalidWidths,
		},
		{
			name:    "scale at maximum",
			ws:      &WidthSettings{Padding: 3, Scale: MaxWidthScale, Min: 8, Max: 60},
			wantErr: nil,
		},
		{
			name:    "scale small but positive",
			ws:      &WidthSettings{Padding: 3, Scale: 0.1, Min: 8, Max: 60},
			wantErr: nil,
		},
		{
			name:    "scale zero",
			ws:      &WidthSettings{Padding: 3, Scale: 0, Min: 8, Max: 60},
			wantErr: ErrInvalidWidths,
		},
		{
			name:    "scale negative",
			ws:      &WidthSettings{Padding: 3, Scale: -1.0, Min: 8, Max: 60},
			wantErr: ErrInvalidWidths,
		},
		{
			name:    "scale above maximum",
			ws:      &WidthSettings{Padding: 3, Scale: 10.1, Min: 8, Max: 60},
			wantErr: ErrInvalidWidths,
		},
		{
			name:    "min at column minimum",
			ws:      &WidthSettings{Padding: 3, Scale: 1.0, Min: MinColumnWidth, Max: 60},
			wantErr: nil,
		},
		{
			name:    "min below column minimum",
			ws:      &WidthSettings{Padding: 3, Scale: 1.0, Min: 0.5, Max: 60},
			wantErr: ErrInvalidWidths,
		},
		{
			name:    "min zero",
			ws:      &WidthSettings{Padding: 3, Scale: 1.0, Min: 0, Max: 60},
			wantErr: ErrInvalidWidths,
		},
		{
			name:    "max equals min",
			ws:      &WidthSettings{Padding: 3, Scale: 1.0, Min: 20, Max: 20},
			wantErr: nil,
		},
		{
			name:    "max below min",
			ws:      &WidthSettings{Padding: 3, Scale: 1.0, Min: 20, Max: 10},
			wantErr: ErrInvalidWidths,
		},
		{
			name:    "max at column maximum",
			ws:      &WidthSettings{Padding: 3, Scale: 1.0, Min: 8, Max: MaxColumnWidth},
			wantErr: nil,
		},
		{
			name:    "max above column maximum",
			ws:      &WidthSettings{Padding: 3, Scale: 1.0, Min: 8, Max: MaxColumnWidth + 1},
			wantErr: ErrInvalidWidths,
		},
		{
			name:    "padding checked before scale",
			ws:      &WidthSettings{Padding: -1, Scale: 0, Min: 0, Max: 0},
			wantErr: ErrInvalidWidths,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.ws.Validate()

			if tt.wantErr != nil {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestDefaultWidthSettings - Default WidthSettings Values
// ---------------------------------------------------------------------------

func TestDefaultWidthSettings(t *testing.T) {
	t.Parallel()

	ws := DefaultWidthSettings()

	if ws.Padding != DefaultWidthPadding {
		t.Errorf("Padding = %d, want %d", ws.Padding, DefaultWidthPadding)
	}
	if ws.Scale != DefaultWidthScale {
		t.Errorf("Scale = %v, want %v", ws.Scale, DefaultWidthScale)
	}
	if ws.Min != DefaultWidthMin {
		t.Errorf("Min = %v, want %v", ws.Min, DefaultWidthMin)
	}
	if ws.Max != DefaultWidthMax {
		t.Errorf("Max = %v, want %v", ws.Max, DefaultWidthMax)
	}

	// Ensure defaults are valid
	if err := ws.Validate(); err != nil {
		t.Errorf("DefaultWidthSettings() not valid: %v", err)
	}
}

// ---------------------------------------------------------------------------
// TestValidateSheetName - Sheet Name Validation
// ---------------------------------------------------------------------------

func TestValidateSheetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		sheet   string
		wantErr error
	}{
		{
			name:    "simple name is valid",
			sheet:   "Budget",
			wantErr: nil,
		},
		{
			name:    "default name is valid",
			sheet:   DefaultSheetName,
			wantErr: nil,
		},
		{
			name:    "name with spaces is valid",
			sheet:   "Q3 Budget Review",
			wantErr: nil,
		},
		{
			name:    "unicode name is valid",
			sheet:   "予算",
			wantErr: nil,
		},
		{
			name:    "name at length limit is valid",
			sheet:   strings.Repeat("x", MaxSheetNameLength),
			wantErr: nil,
		},
		{
			name:    "multibyte name at rune limit is valid",
			sheet:   strings.Repeat("é", MaxSheetNameLength),
			wantErr: nil,
		},
		{
			name:    "empty name",
			sheet:   "",
			wantErr: ErrInvalidSheetName,
		},
		{
			name:    "whitespace only name",
			sheet:   "   ",
			wantErr: ErrInvalidSheetName,
		},
		{
			name:    "name above length limit",
			sheet:   strings.Repeat("x", MaxSheetNameLength+1),
			wantErr: ErrInvalidSheetName,
		},
		{
			name:    "colon is forbidden",
			sheet:   "Budget: Q3",
			wantErr: ErrInvalidSheetName,
		},
		{
			name:    "backslash is forbidden",
			sheet:   `dir\file`,
			wantErr: ErrInvalidSheetName,
		},
		{
			name:    "slash is forbidden",
			sheet:   "2025/2026",
			wantErr: ErrInvalidSheetName,
		},
		{
			name:    "question mark is forbidden",
			sheet:   "Done?",
			wantErr: ErrInvalidSheetName,
		},
		{
			name:    "asterisk is forbidden",
			sheet:   "Top*Items",
			wantErr: ErrInvalidSheetName,
		},
		{
			name:    "opening bracket is forbidden",
			sheet:   "[Draft",
			wantErr: ErrInvalidSheetName,
		},
		{
			name:    "closing bracket is forbidden",
			sheet:   "Draft]",
			wantErr: ErrInvalidSheetName,
		},
		{
			name:    "leading apostrophe",
			sheet:   "'Budget",
			wantErr: ErrInvalidSheetName,
		},
		{
			name:    "trailing apostrophe",
			sheet:   "Budget'",
			wantErr: ErrInvalidSheetName,
		},
		{
			name:    "inner apostrophe is valid",
			sheet:   "Bob's List",
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateSheetName(tt.sheet)

			if tt.wantErr != nil {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateSheetName_ErrorMessageIncludesName(t *testing.T) {
	t.Parallel()

	err := ValidateSheetName("Budget: Q3")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	if !strings.Contains(err.Error(), "Budget: Q3") {
		t.Errorf("error message %q should contain the rejected name", err.Error())
	}
}

// ---------------------------------------------------------------------------
// TestSanitizeSheetName - Sheet Name Sanitization
// ---------------------------------------------------------------------------

func TestSanitizeSheetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		fallback string
		want     string
	}{
		{
			name:     "clean name unchanged",
			input:    "Budget",
			fallback: DefaultSheetName,
			want:     "Budget",
		},
		{
			name:     "forbidden characters become spaces",
			input:    "2025/2026 Plan",
			fallback: DefaultSheetName,
			want:     "2025 2026 Plan",
		},
		{
			name:     "colon becomes space",
			input:    "Budget: Q3",
			fallback: DefaultSheetName,
			want:     "Budget  Q3",
		},
		{
			name:     "leading and trailing whitespace trimmed",
			input:    "  Budget  ",
			fallback: DefaultSheetName,
			want:     "Budget",
		},
		{
			name:     "surrounding apostrophes trimmed",
			input:    "'Budget'",
			fallback: DefaultSheetName,
			want:     "Budget",
		},
		{
			name:     "inner apostrophe kept",
			input:    "Bob's List",
			fallback: DefaultSheetName,
			want:     "Bob's List",
		},
		{
			name:     "truncated to length limit",
			input:    strings.Repeat("x", 40),
			fallback: DefaultSheetName,
			want:     strings.Repeat("x", MaxSheetNameLength),
		},
		{
			name:     "truncation counts runes not bytes",
			input:    strings.Repeat("é", 40),
			fallback: DefaultSheetName,
			want:     strings.Repeat("é", MaxSheetNameLength),
		},
		{
			name:     "trailing space after truncation trimmed",
			input:    strings.Repeat("x", 30) + " yyyy",
			fallback: DefaultSheetName,
			want:     strings.Repeat("x", 30),
		},
		{
			name:     "only forbidden characters falls back",
			input:    "???",
			fallback: DefaultSheetName,
			want:     DefaultSheetName,
		},
		{
			name:     "empty input falls back",
			input:    "",
			fallback: DefaultSheetName,
			want:     DefaultSheetName,
		},
		{
			name:     "whitespace only falls back",
			input:    "   ",
			fallback: DefaultSheetName,
			want:     DefaultSheetName,
		},
		{
			name:     "apostrophes only falls back",
			input:    "''",
			fallback: DefaultSheetName,
			want:     DefaultSheetName,
		},
		{
			name:     "custom fallback",
			input:    "***",
			fallback: "Imported",
			want:     "Imported",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := SanitizeSheetName(tt.input, tt.fallback)
			if got != tt.want {
				t.Errorf("SanitizeSheetName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeSheetName_OutputValidates(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Budget: Q3",
		strings.Repeat("title ", 20),
		"'quoted title'",
		`a\b/c:d?e*f[g]h`,
		"normal title",
	}

	for _, input := range inputs {
		got := SanitizeSheetName(input, DefaultSheetName)
		if err := ValidateSheetName(got); err != nil {
			t.Errorf("SanitizeSheetName(%q) = %q failed validation: %v", input, got, err)
		}
	}
}
