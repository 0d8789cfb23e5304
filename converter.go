package md2xlsx

import (
	"context"
	"fmt"
	"os"

	"github.com/alnah/go-md2xlsx/internal/assets"
	"github.com/alnah/go-md2xlsx/internal/fileutil"
)

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ documentPreprocessor = (*frontMatterPreprocessor)(nil)
	_ tableParser          = (*pipeTableParser)(nil)
	_ workbookRenderer     = (*excelWriter)(nil)
	_ previewRenderer      = (*goldmarkPreview)(nil)
)

// Converter orchestrates the markdown-to-xlsx conversion pipeline.
// Create with NewConverter and use Convert for conversion. A Converter is
// safe for concurrent use; it holds no per-conversion state.
type Converter struct {
	cfg          converterConfig
	preprocessor documentPreprocessor
	parser       tableParser
	workbook     workbookRenderer
	preview      previewRenderer
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithDefaultSheetName, WithStyle).
// Returns an error if an option carries invalid settings or the preview
// style cannot be resolved.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		preprocessor: &frontMatterPreprocessor{},
		parser:       &pipeTableParser{},
		workbook:     newExcelWriter(),
		preview:      newGoldmarkPreview(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.cfg.defaultSheet != "" {
		if err := ValidateSheetName(c.cfg.defaultSheet); err != nil {
			return nil, err
		}
	}
	if err := c.cfg.defaultWidths.Validate(); err != nil {
		return nil, err
	}

	// Resolve style input (name, path, or CSS content) to CSS content
	if err := c.resolveStyle(); err != nil {
		return nil, err
	}

	return c, nil
}

// Convert runs the full pipeline and returns the result containing the
// workbook bytes and, when requested, the HTML preview. The context is used
// for cancellation. If input.HTMLOnly is true, workbook generation is
// skipped (for debugging).
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := c.validateInput(input); err != nil {
		return nil, err
	}

	// Normalize line endings and strip front matter
	doc := c.preprocessor.PreprocessDocument(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Extract and format the first table
	table, warnings, err := c.parser.ParseTable(ctx, doc.Body, ParseOptions{StrictColumns: input.StrictColumns})
	if err != nil {
		return nil, fmt.Errorf("parsing table: %w", err)
	}

	res := &ConvertResult{Warnings: warnings}
	sheet := c.resolveSheetName(input, doc)

	if !input.HTMLOnly {
		xlsxBytes, err := c.workbook.RenderWorkbook(ctx, table, xlsxOptions{
			sheetName: sheet,
			widths:    c.resolveWidths(input),
		})
		if err != nil {
			return nil, fmt.Errorf("rendering workbook: %w", err)
		}
		res.XLSX = xlsxBytes
	}

	if input.HTML || input.HTMLOnly {
		htmlBytes, err := c.preview.RenderPreview(ctx, table, previewOptions{
			title: sheet,
			css:   c.cfg.resolvedStyle,
		})
		if err != nil {
			return nil, fmt.Errorf("rendering preview: %w", err)
		}
		res.HTML = htmlBytes
	}

	return res, nil
}

// resolveSheetName picks the sheet name: explicit input first, then the
// front matter title (sanitized, since document content must degrade rather
// than fail), then the converter default.
func (c *Converter) resolveSheetName(input Input, doc Document) string {
	if input.SheetName != "" {
		return input.SheetName
	}

	fallback := c.cfg.defaultSheet
	if fallback == "" {
		fallback = DefaultSheetName
	}

	if doc.Title != "" {
		return SanitizeSheetName(doc.Title, fallback)
	}
	return fallback
}

// resolveWidths picks the width settings: explicit input first, then the
// converter default. Nil means renderer defaults.
func (c *Converter) resolveWidths(input Input) *WidthSettings {
	if input.Widths != nil {
		return input.Widths
	}
	return c.cfg.defaultWidths
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS
// content. Called during NewConverter after options are applied.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	if input == "" {
		css, err := assets.LoadStyle(assets.DefaultStyleName)
		if err != nil {
			return fmt.Errorf("%w: loading default style: %v", ErrInvalidStyle, err)
		}
		c.cfg.resolvedStyle = css
		return nil
	}

	// File path? (contains / or \)
	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("%w: loading style file %q: %v", ErrInvalidStyle, input, err)
		}
		if len(content) > MaxStyleSize {
			return fmt.Errorf("%w: style file %q exceeds %d bytes", ErrInvalidStyle, input, MaxStyleSize)
		}
		c.cfg.resolvedStyle = string(content)
		return nil
	}

	// CSS content? (contains {)
	if fileutil.IsCSS(input) {
		if len(input) > MaxStyleSize {
			return fmt.Errorf("%w: style content exceeds %d bytes", ErrInvalidStyle, MaxStyleSize)
		}
		c.cfg.resolvedStyle = input
		return nil
	}

	// Style name -> embedded loader
	css, err := assets.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidStyle, err)
	}
	c.cfg.resolvedStyle = css
	return nil
}

// validateInput checks that required fields are present and valid.
//
// This is a TRUST BOUNDARY for direct library users who build Input manually.
// CLI users have their options validated earlier by Config.Validate() at
// config load time. Both paths converge here, ensuring all inputs are
// validated before processing.
func (c *Converter) validateInput(input Input) error {
	if input.Markdown == "" {
		return ErrEmptyMarkdown
	}
	if input.SheetName != "" {
		if err := ValidateSheetName(input.SheetName); err != nil {
			return err
		}
	}
	if err := input.Widths.Validate(); err != nil {
		return err
	}
	return nil
}
