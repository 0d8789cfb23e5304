package md2xlsx

import (
	"context"
	"regexp"
	"strings"

	"github.com/adrg/frontmatter"
)

// crlfOrCR matches Windows and old-Mac line endings.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// Document is a preprocessed Markdown document: normalized body text plus
// the optional front matter title.
type Document struct {
	Body  string
	Title string
}

// docMeta is the front matter schema. Only the title is used; it becomes
// the default sheet name after sanitizing.
type docMeta struct {
	Title string `yaml:"title"`
}

// Preprocess normalizes line endings to \n and strips a leading YAML front
// matter block, capturing its title. A malformed front matter block is left
// in place and treated as ordinary content, so documents that merely start
// with --- still convert.
func Preprocess(content string) Document {
	normalized := crlfOrCR.ReplaceAllString(content, "\n")

	var meta docMeta
	rest, err := frontmatter.Parse(strings.NewReader(normalized), &meta)
	if err != nil {
		return Document{Body: normalized}
	}
	return Document{Body: string(rest), Title: strings.TrimSpace(meta.Title)}
}

// documentPreprocessor defines the contract for document preprocessing.
type documentPreprocessor interface {
	PreprocessDocument(ctx context.Context, content string) Document
}

// frontMatterPreprocessor applies transformations before table extraction.
type frontMatterPreprocessor struct{}

// PreprocessDocument prepares raw content for parsing.
func (p *frontMatterPreprocessor) PreprocessDocument(ctx context.Context, content string) Document {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return Document{Body: content}
	}
	return Preprocess(content)
}
