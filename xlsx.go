package md2xlsx

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// workbookRenderer abstracts Table to xlsx serialization.
type workbookRenderer interface {
	RenderWorkbook(ctx context.Context, t *Table, opts xlsxOptions) ([]byte, error)
}

// xlsxOptions carries per-conversion workbook parameters.
type xlsxOptions struct {
	sheetName string
	widths    *WidthSettings
}

// excelWriter renders a Table into workbook bytes using excelize.
// It is stateless; a fresh file is built per call.
type excelWriter struct{}

func newExcelWriter() *excelWriter {
	return &excelWriter{}
}

// RenderWorkbook serializes t into a single-sheet workbook: bold header
// row, bold/italic rich-text runs per span, wrapped top-left aligned cells,
// and column widths from the table's width hints. No file access.
func (w *excelWriter) RenderWorkbook(ctx context.Context, t *Table, opts xlsxOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := opts.sheetName
	if sheet == "" {
		sheet = DefaultSheetName
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("%w: naming sheet: %v", ErrWorkbookBuild, err)
	}

	if err := writeRow(f, sheet, 1, t.Header, true); err != nil {
		return nil, err
	}
	for i, row := range t.Rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := writeRow(f, sheet, i+2, row, false); err != nil {
			return nil, err
		}
	}

	if err := applyLayout(f, sheet, t, opts.widths); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWorkbookBuild, err)
	}
	return buf.Bytes(), nil
}

// writeRow writes one table row at rowNum (1-based). Cells with styled
// spans become rich text; plain cells are written as strings. Header bold
// comes from the row style, so unstyled header cells stay plain strings.
func writeRow(f *excelize.File, sheet string, rowNum int, row []Cell, header bool) error {
	for col, cell := range row {
		ref, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			return fmt.Errorf("%w: cell %d,%d: %v", ErrWorkbookBuild, col+1, rowNum, err)
		}

		if cell.styled() {
			if err := f.SetCellRichText(sheet, ref, richRuns(cell, header)); err != nil {
				return fmt.Errorf("%w: writing %s: %v", ErrWorkbookBuild, ref, err)
			}
			continue
		}
		if err := f.SetCellStr(sheet, ref, cell.Text); err != nil {
			return fmt.Errorf("%w: writing %s: %v", ErrWorkbookBuild, ref, err)
		}
	}
	return nil
}

// richRuns converts a cell's span partition into rich text runs. Header
// runs are always bold; italic spans stay italic on top of that.
func richRuns(c Cell, header bool) []excelize.RichTextRun {
	runs := make([]excelize.RichTextRun, 0, len(c.Spans))
	for _, s := range c.Spans {
		run := excelize.RichTextRun{Text: c.Text[s.Start:s.End]}

		bold := header || s.Style == SpanBold
		italic := s.Style == SpanItalic
		if bold || italic {
			run.Font = &excelize.Font{Bold: bold, Italic: italic}
		}
		runs = append(runs, run)
	}
	return runs
}

// applyLayout applies cell styles and column widths to the written range.
func applyLayout(f *excelize.File, sheet string, t *Table, widths *WidthSettings) error {
	cols := len(t.Header)
	if cols == 0 {
		return nil
	}

	wrap := &excelize.Alignment{Horizontal: "left", Vertical: "top", WrapText: true}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: wrap,
	})
	if err != nil {
		return fmt.Errorf("%w: header style: %v", ErrWorkbookBuild, err)
	}
	bodyStyle, err := f.NewStyle(&excelize.Style{Alignment: wrap})
	if err != nil {
		return fmt.Errorf("%w: body style: %v", ErrWorkbookBuild, err)
	}

	headerRight, err := excelize.CoordinatesToCellName(cols, 1)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWorkbookBuild, err)
	}
	if err := f.SetCellStyle(sheet, "A1", headerRight, headerStyle); err != nil {
		return fmt.Errorf("%w: styling header: %v", ErrWorkbookBuild, err)
	}

	if rows := len(t.Rows); rows > 0 {
		bottomRight, err := excelize.CoordinatesToCellName(cols, rows+1)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrWorkbookBuild, err)
		}
		if err := f.SetCellStyle(sheet, "A2", bottomRight, bodyStyle); err != nil {
			return fmt.Errorf("%w: styling rows: %v", ErrWorkbookBuild, err)
		}
	}

	for i, width := range t.ColWidths(widths) {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("%w: column %d: %v", ErrWorkbookBuild, i+1, err)
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return fmt.Errorf("%w: sizing column %s: %v", ErrWorkbookBuild, col, err)
		}
	}

	return nil
}
