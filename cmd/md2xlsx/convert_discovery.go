package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	md2xlsx "github.com/alnah/go-md2xlsx"
)

// Sentinel errors for file discovery.
var (
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrInvalidOutput      = errors.New("invalid output target")
)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// discoverFiles finds all markdown files to convert. suffix, when
// non-empty, is inserted into generated output names.
func discoverFiles(inputPath, outputDir, suffix string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateMarkdownExtension(inputPath); err != nil {
			return nil, err
		}
		outPath := resolveOutputPath(inputPath, outputDir, "", suffix)
		return []FileToConvert{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		if ext != ".md" && ext != ".markdown" {
			return nil
		}
		outPath := resolveOutputPath(path, outputDir, inputPath, suffix)
		files = append(files, FileToConvert{InputPath: path, OutputPath: outPath})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the workbook output path for a markdown file.
// Explicit file targets are used verbatim and do not receive the suffix.
func resolveOutputPath(inputPath, outputDir, baseInputDir, suffix string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)
	if suffix != "" {
		base = base + "_" + suffix
	}

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base+".xlsx")
	}

	if strings.HasSuffix(outputDir, ".xlsx") {
		return outputDir
	}

	if strings.HasSuffix(outputDir, ".html") {
		// Explicit preview target; the workbook path stays canonical and
		// htmlOutputPath maps it back.
		return strings.TrimSuffix(outputDir, ".html") + ".xlsx"
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			relDir := filepath.Dir(relPath)
			return filepath.Join(outputDir, relDir, base+".xlsx")
		}
	}

	return filepath.Join(outputDir, base+".xlsx")
}

// validateOutputTarget rejects explicit output files with extensions the
// converter cannot produce. Existing directories pass regardless of name.
func validateOutputTarget(output string, htmlOnly bool) error {
	if output == "" {
		return nil
	}
	if info, err := os.Stat(output); err == nil && info.IsDir() {
		return nil
	}

	switch filepath.Ext(output) {
	case "", ".xlsx":
		return nil
	case ".html":
		if htmlOnly {
			return nil
		}
		return fmt.Errorf("%w: %s (.html targets require --html-only)", ErrInvalidOutput, output)
	default:
		return fmt.Errorf("%w: %s (output files must end in .xlsx)", ErrInvalidOutput, output)
	}
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	ext := filepath.Ext(path)
	if ext != ".md" && ext != ".markdown" {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > md2xlsx.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, md2xlsx.MaxWorkers)
	}
	return nil
}

// htmlOutputPath returns the HTML path corresponding to a workbook path.
func htmlOutputPath(xlsxPath string) string {
	return strings.TrimSuffix(xlsxPath, ".xlsx") + ".html"
}
