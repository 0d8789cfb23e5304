package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	md2xlsx "github.com/alnah/go-md2xlsx"
	"github.com/alnah/go-md2xlsx/internal/config"
)

// inspectResult holds the dry-run report for one document.
type inspectResult struct {
	Status     string     `json:"status"` // "ok", "warnings", "errors"
	Source     sourceInfo `json:"source"`
	Sheet      sheetInfo  `json:"sheet"`
	Table      tableInfo  `json:"table"`
	TextWidths []int      `json:"text_widths,omitempty"` // longest line per column
	Widths     []float64  `json:"widths,omitempty"`      // effective column widths
	Warnings   []string   `json:"warnings,omitempty"`
	Errors     []string   `json:"errors,omitempty"`
}

// sourceInfo describes the input document.
type sourceInfo struct {
	Path  string `json:"path"`
	Bytes int    `json:"bytes"`
	Title string `json:"title,omitempty"` // front matter title, if any
}

// sheetInfo describes the worksheet a conversion would create.
type sheetInfo struct {
	Name   string `json:"name"`
	Origin string `json:"origin"` // "front matter", "config", "default"
}

// tableInfo describes the extracted table.
type tableInfo struct {
	Found       bool     `json:"found"`
	Rows        int      `json:"rows"` // data rows, header excluded
	Columns     int      `json:"columns"`
	Header      []string `json:"header,omitempty"`
	StyledCells int      `json:"styled_cells"`
}

// runInspectCmd executes the inspect command and returns an exit code.
// Exit codes: 0 = table found (warnings included), 4 = no usable table.
func runInspectCmd(args []string, env *Environment) int {
	jsonOutput := false
	path := ""
	for _, arg := range args {
		switch {
		case arg == "--json":
			jsonOutput = true
		case path == "":
			path = arg
		}
	}

	if path == "" {
		printInspectUsage(env.Stderr)
		return ExitUsage
	}

	content, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v: %v\n", ErrReadMarkdown, err)
		return ExitIO
	}

	result := runInspect(path, string(content), env.Config)

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printInspectResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitData
	}
	return ExitSuccess
}

// runInspect parses the document and assembles the report.
func runInspect(path, content string, cfg *config.Config) *inspectResult {
	result := &inspectResult{
		Status: "ok",
		Source: sourceInfo{Path: path, Bytes: len(content)},
	}

	doc := md2xlsx.Preprocess(content)
	result.Source.Title = doc.Title
	result.Sheet.Name, result.Sheet.Origin = resolveInspectSheet(doc.Title, cfg)

	table, warnings, err := md2xlsx.Parse(doc.Body)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		result.Status = "errors"
		return result
	}

	result.Table = tableInfo{
		Found:       true,
		Rows:        table.RowCount(),
		Columns:     table.ColCount(),
		Header:      headerTexts(table),
		StyledCells: countStyledCells(table),
	}
	result.TextWidths = table.TextWidths()
	result.Widths = roundWidths(table.ColWidths(cfg.WidthSettings()))

	for _, w := range warnings {
		result.Warnings = append(result.Warnings, w.String())
	}
	if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// resolveInspectSheet mirrors the converter's sheet name fallback chain:
// front matter title (sanitized), then config, then the library default.
func resolveInspectSheet(title string, cfg *config.Config) (name, origin string) {
	fallback := cfg.Sheet.Name
	if fallback == "" {
		fallback = md2xlsx.DefaultSheetName
	}

	if title != "" {
		return md2xlsx.SanitizeSheetName(title, fallback), "front matter"
	}
	if cfg.Sheet.Name != "" {
		return cfg.Sheet.Name, "config"
	}
	return md2xlsx.DefaultSheetName, "default"
}

// headerTexts returns the plain text of each header cell.
func headerTexts(t *md2xlsx.Table) []string {
	out := make([]string, 0, len(t.Header))
	for _, c := range t.Header {
		out = append(out, c.Text)
	}
	return out
}

// countStyledCells counts data cells carrying bold or italic spans.
func countStyledCells(t *md2xlsx.Table) int {
	n := 0
	for _, row := range t.Rows {
		for _, c := range row {
			for _, s := range c.Spans {
				if s.Style != md2xlsx.SpanNone {
					n++
					break
				}
			}
		}
	}
	return n
}

// roundWidths trims float noise for display.
func roundWidths(ws []float64) []float64 {
	out := make([]float64, len(ws))
	for i, w := range ws {
		out[i] = math.Round(w*10) / 10
	}
	return out
}

// printInspectResult outputs the human-readable report.
func printInspectResult(w io.Writer, r *inspectResult) {
	fmt.Fprintln(w, "md2xlsx inspect")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Source")
	fmt.Fprintf(w, "  [OK] %s (%d bytes)\n", r.Source.Path, r.Source.Bytes)
	if r.Source.Title != "" {
		fmt.Fprintf(w, "  [OK] Front matter title: %s\n", r.Source.Title)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Worksheet")
	fmt.Fprintf(w, "  [OK] Name: %q (%s)\n", r.Sheet.Name, r.Sheet.Origin)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Table")
	if r.Table.Found {
		fmt.Fprintf(w, "  [OK] %d columns x %d rows\n", r.Table.Columns, r.Table.Rows)
		if len(r.Table.Header) > 0 {
			fmt.Fprintf(w, "  [OK] Header: %s\n", strings.Join(r.Table.Header, " | "))
		}
		if r.Table.StyledCells > 0 {
			fmt.Fprintf(w, "  [OK] Styled cells: %d\n", r.Table.StyledCells)
		}
		if len(r.TextWidths) > 0 {
			fmt.Fprintf(w, "  [OK] Text widths: %v\n", r.TextWidths)
		}
		if len(r.Widths) > 0 {
			fmt.Fprintf(w, "  [OK] Column widths: %v\n", r.Widths)
		}
	} else {
		fmt.Fprintln(w, "  [ERROR] No table found")
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ok":
		fmt.Fprintln(w, "Status: Ready to convert")
	case "warnings":
		fmt.Fprintln(w, "Status: Converts with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Nothing to convert (see errors above)")
	}
}
