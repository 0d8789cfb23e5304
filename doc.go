// Package md2xlsx converts the first Markdown table in a document into a
// styled xlsx spreadsheet.
//
// # Quick Start
//
// Create a converter and convert markdown:
//
//	conv, err := md2xlsx.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, md2xlsx.Input{
//	    Markdown: "| Name | Status |\n|---|---|\n| **Hydra** | On Hold |",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.xlsx", result.XLSX, 0644)
//
// The result carries the workbook bytes (result.XLSX), parse warnings for
// ragged rows (result.Warnings), and optionally an HTML preview page
// (result.HTML) when Input.HTML or Input.HTMLOnly is set.
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Preprocessing (line ending normalization, YAML front matter title)
//  2. Table extraction (first header + separator pair, escaped-pipe aware)
//  3. Cell formatting (bold/italic spans, <br> line breaks, inline code)
//  4. Workbook rendering via excelize (rich text, wrapping, column widths)
//  5. Optional HTML preview via Goldmark (GFM table rendering)
//
// Bold and italic emphasis survives as styled spans: **text** becomes a
// bold rich-text run, *text* or _text_ an italic one. Unmatched markers
// stay literal. The header row is always bold. Column widths derive from
// the longest line per column, padded, scaled, and clamped.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := md2xlsx.NewConverter(
//	    md2xlsx.WithDefaultSheetName("Inventory"),
//	    md2xlsx.WithDefaultWidths(md2xlsx.WidthSettings{Padding: 2, Scale: 1.0, Min: 10, Max: 80}),
//	    md2xlsx.WithStyle("plain"),
//	)
//
// WithStyle accepts a built-in style name, a path to a CSS file, or raw CSS
// content; it only affects the HTML preview. Per-conversion options are
// passed via Input:
//
//	result, err := conv.Convert(ctx, md2xlsx.Input{
//	    Markdown:      content,
//	    SheetName:     "Q3 Roadmap",
//	    Widths:        &md2xlsx.WidthSettings{Padding: 3, Scale: 1.1, Min: 8, Max: 60},
//	    StrictColumns: true,
//	    HTML:          true,
//	})
//
// The sheet name falls back to the document's front matter title (sanitized
// for the xlsx naming rules), then to "Table Data".
//
// # Parsing Without Rendering
//
// Parse and ParseWithOptions expose the pure parsing core for callers that
// want the table model itself:
//
//	table, warnings, err := md2xlsx.Parse(content)
//	if errors.Is(err, md2xlsx.ErrNoTable) {
//	    // document has no header + separator pair
//	}
//
// The returned Table reports column text widths, converts back to Markdown
// with emphasis intact, and is safe to render with any backend.
//
// # Concurrency
//
// A Converter is safe for concurrent use. For batch conversion, share one
// Converter across workers and size the pool with ResolveWorkers:
//
//	workers := md2xlsx.ResolveWorkers(0) // GOMAXPROCS-based
package md2xlsx
