// Package dateutil converts user-friendly date patterns into date strings
// suitable for output file name suffixes.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length to prevent abuse.
const MaxDateFormatLength = 50

// DefaultDateFormat is used when a suffix is requested without a format.
const DefaultDateFormat = "YYYY-MM-DD"

// dateTokens maps user-friendly tokens to Go time format components.
// Ordered by length descending for greedy matching.
var dateTokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// DatePresets provides named shortcuts for common suffix formats.
// All presets avoid path separators so the result can be embedded in
// a file name.
var DatePresets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD-MM-YYYY",
	"us":       "MM-DD-YYYY",
	"compact":  "YYYYMMDD",
}

// ParseDateFormat converts a user-friendly format string to Go's time format.
// Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D
// Use brackets to escape literal text: [Day] preserves "Day" literally.
// Any non-token characters outside brackets are preserved as literals.
// Returns ErrInvalidDateFormat if the format is empty, too long, or has unclosed brackets.
func ParseDateFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var result strings.Builder
	result.Grow(len(format) + 10) // Pre-allocate with some buffer

	i := 0
	for i < len(format) {
		// Handle bracket-escaped literal text
		if format[i] == '[' {
			end := strings.Index(format[i+1:], "]")
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			// Copy content inside brackets literally
			result.WriteString(format[i+1 : i+1+end])
			i += end + 2 // Skip past closing bracket
			continue
		}

		matched := false

		// Try to match tokens (longest first due to slice order)
		for _, t := range dateTokens {
			if strings.HasPrefix(format[i:], t.token) {
				result.WriteString(t.goFmt)
				i += len(t.token)
				matched = true
				break
			}
		}

		if !matched {
			// Preserve literal character
			result.WriteByte(format[i])
			i++
		}
	}

	return result.String(), nil
}

// ResolveFormat expands a preset name (iso, european, us, compact) to its
// pattern, then converts the pattern to Go's time layout. Formats containing
// path separators are rejected because the result lands in a file name.
func ResolveFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}

	if preset, ok := DatePresets[strings.ToLower(format)]; ok {
		format = preset
	}

	if strings.ContainsAny(format, `/\`) {
		return "", fmt.Errorf("%w: %q contains a path separator", ErrInvalidDateFormat, format)
	}

	return ParseDateFormat(format)
}

// FormatSuffix renders the given time using a preset name or pattern,
// producing the date portion of an output file name like report_2024-03-15.xlsx.
//
// The time parameter allows injecting a fixed time for testing.
func FormatSuffix(format string, t time.Time) (string, error) {
	layout, err := ResolveFormat(format)
	if err != nil {
		return "", err
	}
	return t.Format(layout), nil
}
