package md2xlsx

import (
	"regexp"
	"strings"
)

// Emphasis markers recognized inside cells.
const (
	boldMarker       = "**"
	italicMarker     = "*"
	underscoreMarker = "_"
)

// Precompiled regex patterns for cell cleanup.
var (
	// <br> and <br/> tags, case-insensitive, optional whitespace inside
	breakTag = regexp.MustCompile(`(?i)<br\s*/?>`)

	// Paired backtick inline-code markers
	inlineCode = regexp.MustCompile("`([^`]*)`")
)

// segment is an intermediate styled slice of raw cell text.
type segment struct {
	text  string
	style SpanStyle
	delim string
}

// formatRow formats each raw cell of a row.
func formatRow(cells []string) []Cell {
	row := make([]Cell, len(cells))
	for i, c := range cells {
		row[i] = formatCell(c)
	}
	return row
}

// formatCell turns one raw cell string into a Cell.
//
// Order matters: break tags become \n first, then a single left-to-right
// scan claims emphasis spans (bold before italic at each position, first
// match wins, no nesting, * and _ are independent). Unmatched markers stay
// literal. Paired backticks and pipe escapes are cleaned per segment so
// span offsets land in the final text's coordinate space.
func formatCell(raw string) Cell {
	text := breakTag.ReplaceAllString(raw, "\n")

	var segs []segment
	plain := 0
	i := 0
	for i < len(text) {
		delim, content, next := matchEmphasis(text, i)
		if delim == "" {
			i++
			continue
		}

		if i > plain {
			segs = append(segs, segment{text: text[plain:i], style: SpanNone})
		}

		style := SpanItalic
		if delim == boldMarker {
			style = SpanBold
		}
		segs = append(segs, segment{text: content, style: style, delim: delim})

		plain = next
		i = next
	}
	if plain < len(text) {
		segs = append(segs, segment{text: text[plain:], style: SpanNone})
	}

	return assembleCell(segs)
}

// matchEmphasis tries to match an emphasis span opening at position i.
// Returns the marker, the enclosed content, and the position after the
// closing marker, or an empty marker when nothing matches at i.
func matchEmphasis(text string, i int) (delim, content string, next int) {
	if strings.HasPrefix(text[i:], boldMarker) && i+3 <= len(text) {
		// Closing ** must leave at least one content character.
		if rel := strings.Index(text[i+3:], boldMarker); rel >= 0 {
			end := i + 3 + rel
			return boldMarker, text[i+2 : end], end + 2
		}
	}

	switch text[i] {
	case '*':
		if content, next, ok := matchSingle(text, i, '*'); ok {
			return italicMarker, content, next
		}
	case '_':
		if content, next, ok := matchSingle(text, i, '_'); ok {
			return underscoreMarker, content, next
		}
	}

	return "", "", 0
}

// matchSingle matches a single-character emphasis pair opening at i: the
// nearest closing marker wins and the content must be non-empty and free
// of the marker character.
func matchSingle(text string, i int, marker byte) (content string, next int, ok bool) {
	k := i + 1
	for k < len(text) && text[k] != marker {
		k++
	}
	if k == i+1 || k >= len(text) {
		return "", 0, false
	}
	return text[i+1 : k], k + 1, true
}

// assembleCell builds the final Cell from scanned segments: each segment is
// cleaned, appended to the plain text, and covered by a span. Adjacent
// unstyled runs merge so spans partition the text without gaps.
func assembleCell(segs []segment) Cell {
	var b strings.Builder
	var spans []Span

	for _, s := range segs {
		clean := cleanInline(s.text)
		if clean == "" {
			continue
		}

		start := b.Len()
		b.WriteString(clean)

		if s.style == SpanNone && len(spans) > 0 && spans[len(spans)-1].Style == SpanNone {
			spans[len(spans)-1].End = b.Len()
			continue
		}
		spans = append(spans, Span{Start: start, End: b.Len(), Style: s.style, delim: s.delim})
	}

	return Cell{Text: b.String(), Spans: spans}
}

// cleanInline strips paired backticks and unescapes pipes in segment text.
// A lone backtick stays literal; content is never dropped.
func cleanInline(s string) string {
	s = inlineCode.ReplaceAllString(s, "$1")
	s = strings.ReplaceAll(s, `\|`, "|")
	s = strings.ReplaceAll(s, `\\`, `\`)
	return s
}
