package md2xlsx

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// lineBreakPlaceholder stands in for <br> while goldmark runs, using a
// Private Use Area character that passes through as plain text. Rewriting
// it to <br/> afterwards avoids needing html.WithUnsafe().
const lineBreakPlaceholder = "\uE000"

// previewTemplate wraps goldmark's fragment output in a complete HTML5 page.
const previewTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
%s
</style>
</head>
<body>
<h1>%s</h1>
%s
</body>
</html>`

// previewOptions carries per-conversion preview parameters.
type previewOptions struct {
	title string
	css   string
}

// previewRenderer abstracts Table to HTML preview conversion.
type previewRenderer interface {
	RenderPreview(ctx context.Context, t *Table, opts previewOptions) ([]byte, error)
}

// goldmarkPreview renders the preview page using goldmark (pure Go).
type goldmarkPreview struct {
	md goldmark.Markdown
}

// newGoldmarkPreview creates a goldmarkPreview with GFM extensions.
func newGoldmarkPreview() *goldmarkPreview {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks
		),
		goldmark.WithRendererOptions(
			gmhtml.WithXHTML(), // Self-closing tags
		),
	)
	return &goldmarkPreview{md: md}
}

// RenderPreview serializes the table back to Markdown, converts it through
// goldmark, and wraps the fragment in a standalone page titled after the
// sheet. Supports context cancellation via goroutine + select pattern since
// goldmark doesn't natively support context.
func (p *goldmarkPreview) RenderPreview(ctx context.Context, t *Table, opts previewOptions) ([]byte, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	source := strings.ReplaceAll(t.ToMarkdown(), "<br>", lineBreakPlaceholder)

	type result struct {
		page []byte
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := p.md.Convert([]byte(source), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrPreviewRender, err)}
			return
		}

		fragment := strings.ReplaceAll(buf.String(), lineBreakPlaceholder, "<br/>")
		title := html.EscapeString(opts.title)
		page := fmt.Sprintf(previewTemplate, title, opts.css, title, fragment)
		done <- result{page: []byte(page)}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		return r.page, r.err
	}
}
