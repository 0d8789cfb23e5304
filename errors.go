package md2xlsx

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown  = errors.New("markdown content cannot be empty")
	ErrNoTable        = errors.New("no table found in document")
	ErrMalformedTable = errors.New("malformed table")
	ErrWorkbookBuild  = errors.New("workbook generation failed")
	ErrPreviewRender  = errors.New("preview rendering failed")

	// Sheet name validation errors.
	ErrInvalidSheetName = errors.New("invalid sheet name")

	// Width settings validation errors.
	ErrInvalidWidths = errors.New("invalid width settings")

	// Preview style resolution errors.
	ErrInvalidStyle = errors.New("invalid preview style")
)
