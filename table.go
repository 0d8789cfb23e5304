package md2xlsx

import (
	"strings"
	"unicode/utf8"
)

// SpanStyle identifies the formatting of a span of cell text.
type SpanStyle int

// Span styles.
const (
	SpanNone SpanStyle = iota
	SpanBold
	SpanItalic
)

// String returns the style name for diagnostics.
func (s SpanStyle) String() string {
	switch s {
	case SpanBold:
		return "bold"
	case SpanItalic:
		return "italic"
	default:
		return "none"
	}
}

// Span is a contiguous styled region of a cell's plain text.
// Start and End are byte offsets into Cell.Text, End exclusive.
// A cell's spans partition its text in order, with no gaps or overlaps.
type Span struct {
	Start int
	End   int
	Style SpanStyle

	// delim remembers the source marker ("**", "*" or "_") so Markdown
	// round-trips reproduce the original text. Empty falls back to the
	// canonical marker for the style.
	delim string
}

// Cell is one table cell: plain text plus the spans covering it.
// Text contains no residual emphasis markers; line breaks from <br> tags
// appear as \n. A cell with no spans is entirely unstyled.
type Cell struct {
	Text  string
	Spans []Span
}

// Lines splits the cell text on break markers.
func (c Cell) Lines() []string {
	return strings.Split(c.Text, "\n")
}

// longestLine returns the rune count of the widest line in the cell.
func (c Cell) longestLine() int {
	longest := 0
	for _, line := range c.Lines() {
		if n := utf8.RuneCountInString(line); n > longest {
			longest = n
		}
	}
	return longest
}

// styled reports whether any span carries bold or italic formatting.
func (c Cell) styled() bool {
	for _, s := range c.Spans {
		if s.Style != SpanNone {
			return true
		}
	}
	return false
}

// Markdown serializes the cell back to Markdown source: spans re-wrapped
// with their emphasis markers, literal pipes and backslashes re-escaped,
// and line breaks re-encoded as <br>. Inline code markers stripped during
// parsing are not restored.
func (c Cell) Markdown() string {
	if len(c.Spans) == 0 {
		return escapeCellText(c.Text)
	}

	var b strings.Builder
	for _, s := range c.Spans {
		seg := escapeCellText(c.Text[s.Start:s.End])
		if s.Style == SpanNone {
			b.WriteString(seg)
			continue
		}
		d := s.delim
		if d == "" {
			if s.Style == SpanBold {
				d = boldMarker
			} else {
				d = italicMarker
			}
		}
		b.WriteString(d)
		b.WriteString(seg)
		b.WriteString(d)
	}
	return b.String()
}

// escapeCellText makes plain cell text safe inside a pipe table row.
func escapeCellText(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\n", "<br>")
	return s
}

// Table is the parsed model of one Markdown table: an ordered header row
// plus ordered data rows, all with the same cell count.
type Table struct {
	Header []Cell
	Rows   [][]Cell
}

// ColCount returns the number of columns.
func (t *Table) ColCount() int {
	return len(t.Header)
}

// RowCount returns the number of data rows (header excluded).
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// TextWidths returns, per column, the rune count of the longest line across
// the header and all data cells. Multi-line cells count their widest line.
func (t *Table) TextWidths() []int {
	widths := make([]int, len(t.Header))
	measure := func(row []Cell) {
		for i, c := range row {
			if i >= len(widths) {
				break
			}
			if n := c.longestLine(); n > widths[i] {
				widths[i] = n
			}
		}
	}

	measure(t.Header)
	for _, row := range t.Rows {
		measure(row)
	}
	return widths
}

// ColWidths converts per-column text widths into spreadsheet column widths:
// (longestLine + Padding) * Scale, clamped to [Min, Max]. A nil settings
// value uses the defaults.
func (t *Table) ColWidths(w *WidthSettings) []float64 {
	if w == nil {
		w = DefaultWidthSettings()
	}

	text := t.TextWidths()
	widths := make([]float64, len(text))
	for i, n := range text {
		v := (float64(n) + float64(w.Padding)) * w.Scale
		if v < w.Min {
			v = w.Min
		}
		if v > w.Max {
			v = w.Max
		}
		widths[i] = v
	}
	return widths
}

// ToMarkdown serializes the table back to a GitHub-flavored pipe table with
// columns padded for alignment. Cells round-trip their recorded emphasis.
func (t *Table) ToMarkdown() string {
	cols := len(t.Header)
	if cols == 0 {
		return ""
	}

	header := renderMarkdownRow(t.Header, cols)
	rendered := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		rendered[i] = renderMarkdownRow(row, cols)
	}

	widths := make([]int, cols)
	for i := range widths {
		widths[i] = markdownColWidth(i, header, rendered)
	}

	var b strings.Builder
	writeMarkdownRow(&b, header, widths)
	writeMarkdownSeparator(&b, widths)
	for _, row := range rendered {
		writeMarkdownRow(&b, row, widths)
	}
	return b.String()
}

// renderMarkdownRow serializes one row of cells, padded or truncated to cols.
func renderMarkdownRow(row []Cell, cols int) []string {
	out := make([]string, cols)
	for i := 0; i < cols; i++ {
		if i < len(row) {
			out[i] = row[i].Markdown()
		}
	}
	return out
}

// minSeparatorWidth keeps separator segments recognizable as table syntax.
const minSeparatorWidth = 3

func markdownColWidth(col int, header []string, rows [][]string) int {
	w := utf8.RuneCountInString(header[col])
	for _, row := range rows {
		if n := utf8.RuneCountInString(row[col]); n > w {
			w = n
		}
	}
	if w < minSeparatorWidth {
		w = minSeparatorWidth
	}
	return w
}

func writeMarkdownRow(b *strings.Builder, cells []string, widths []int) {
	b.WriteString("|")
	for i, cell := range cells {
		b.WriteString(" ")
		b.WriteString(cell)
		b.WriteString(strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell)))
		b.WriteString(" |")
	}
	b.WriteString("\n")
}

func writeMarkdownSeparator(b *strings.Builder, widths []int) {
	b.WriteString("|")
	for _, w := range widths {
		b.WriteString(" ")
		b.WriteString(strings.Repeat("-", w))
		b.WriteString(" |")
	}
	b.WriteString("\n")
}
