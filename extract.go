package md2xlsx

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// separatorSegment matches one column of a table separator line: dashes,
// colons, and whitespace, with at least one dash.
var separatorSegment = regexp.MustCompile(`^[:\s-]*-+[:\s-]*$`)

// ParseOptions controls table extraction.
type ParseOptions struct {
	// StrictColumns rejects rows whose cell count differs from the header
	// instead of padding or truncating them.
	StrictColumns bool
}

// Warning is a non-fatal diagnostic produced while parsing a table.
type Warning struct {
	Line    int // 1-based line number in the source document
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d: %s", w.Line, w.Message)
}

// Parse extracts the first Markdown table from content with the default
// lenient column policy: short rows are padded with empty cells, long rows
// are truncated, and both produce warnings.
func Parse(content string) (*Table, []Warning, error) {
	return ParseWithOptions(content, ParseOptions{})
}

// ParseWithOptions extracts the first Markdown table from content.
//
// A table starts at a line containing an unescaped pipe whose next non-blank
// line is a separator line (dashes, colons, whitespace per column). Data
// rows follow the separator until the first line without an unescaped pipe.
// Outer pipes are optional: "| a | b |" and "a | b" parse identically.
// Alignment markers in the separator are ignored.
//
// Returns ErrNoTable when the document contains no header+separator pair,
// and ErrMalformedTable for ragged rows when opts.StrictColumns is set.
func ParseWithOptions(content string, opts ParseOptions) (*Table, []Warning, error) {
	lines := strings.Split(content, "\n")

	headerIdx, sepIdx := findTableStart(lines)
	if headerIdx < 0 {
		return nil, nil, ErrNoTable
	}

	header := splitRow(lines[headerIdx])
	table := &Table{Header: formatRow(header)}

	var warnings []Warning
	for i := sepIdx + 1; i < len(lines); i++ {
		if !hasUnescapedPipe(lines[i]) {
			break
		}

		cells := splitRow(lines[i])
		switch {
		case len(cells) == len(header):
		case opts.StrictColumns:
			return nil, nil, fmt.Errorf("%w: line %d: row has %d cells, header has %d",
				ErrMalformedTable, i+1, len(cells), len(header))
		case len(cells) < len(header):
			warnings = append(warnings, Warning{
				Line:    i + 1,
				Message: fmt.Sprintf("row has %d cells, header has %d; padded with empty cells", len(cells), len(header)),
			})
			for len(cells) < len(header) {
				cells = append(cells, "")
			}
		default:
			warnings = append(warnings, Warning{
				Line:    i + 1,
				Message: fmt.Sprintf("row has %d cells, header has %d; extra cells dropped", len(cells), len(header)),
			})
			cells = cells[:len(header)]
		}

		table.Rows = append(table.Rows, formatRow(cells))
	}

	return table, warnings, nil
}

// findTableStart locates the first header line followed (next non-blank
// line) by a separator line. Returns -1, -1 when no table exists. A failed
// candidate does not stop the scan; the next line may still open a table.
func findTableStart(lines []string) (headerIdx, sepIdx int) {
	for i := 0; i < len(lines); i++ {
		if !hasUnescapedPipe(lines[i]) {
			continue
		}
		for j := i + 1; j < len(lines); j++ {
			if strings.TrimSpace(lines[j]) == "" {
				continue
			}
			if isSeparatorRow(lines[j]) {
				return i, j
			}
			break
		}
	}
	return -1, -1
}

// isSeparatorRow reports whether line is a table separator: at least one
// segment, each consisting only of dashes, colons, and whitespace with at
// least one dash. Segment count is not compared to the header's.
func isSeparatorRow(line string) bool {
	cells := splitRow(line)
	if len(cells) == 0 {
		return false
	}
	for _, c := range cells {
		if !separatorSegment.MatchString(c) {
			return false
		}
	}
	return true
}

// hasUnescapedPipe reports whether line contains a pipe not immediately
// preceded by a backslash.
func hasUnescapedPipe(line string) bool {
	for i := 0; i < len(line); i++ {
		if line[i] == '|' && (i == 0 || line[i-1] != '\\') {
			return true
		}
	}
	return false
}

// splitRow splits a table line into trimmed cell strings on unescaped pipes
// and drops the empty edge cells produced by optional outer pipes. Escape
// sequences inside cells are preserved for the formatter.
func splitRow(line string) []string {
	cells := splitUnescaped(line)
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}

	if len(cells) > 1 && cells[0] == "" {
		cells = cells[1:]
	}
	if len(cells) > 1 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}
	return cells
}

// tableParser defines the contract for first-table extraction.
type tableParser interface {
	ParseTable(ctx context.Context, content string, opts ParseOptions) (*Table, []Warning, error)
}

// pipeTableParser extracts tables written in pipe syntax.
type pipeTableParser struct{}

// ParseTable extracts the first table from content.
func (p *pipeTableParser) ParseTable(ctx context.Context, content string, opts ParseOptions) (*Table, []Warning, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	return ParseWithOptions(content, opts)
}

// splitUnescaped splits line on every pipe not immediately preceded by a
// backslash. The look-behind is a single character: \| never splits, even
// when that backslash is itself escaped.
func splitUnescaped(line string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(line); i++ {
		if line[i] == '|' && (i == 0 || line[i-1] != '\\') {
			parts = append(parts, line[start:i])
			start = i + 1
		}
	}
	return append(parts, line[start:])
}
