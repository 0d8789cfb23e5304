package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// widthPaddingSentinel detects if --width-padding was explicitly set.
// Since 0 is a valid padding, we use an out-of-range sentinel.
// Valid padding is non-negative; -1 is safely outside this range.
const widthPaddingSentinel = -1

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// sheetFlags holds worksheet flags.
type sheetFlags struct {
	name          string
	strictColumns bool
}

// widthFlags holds column width flags.
type widthFlags struct {
	padding int
	scale   float64
	min     float64
	max     float64
}

// previewFlags holds HTML preview flags.
type previewFlags struct {
	html     bool
	htmlOnly bool
	style    string
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common     commonFlags
	output     string
	workers    int
	dateSuffix string
	sheet      sheetFlags
	widths     widthFlags
	preview    previewFlags
}

// watchFlags holds all flags for the watch command.
type watchFlags struct {
	convertFlags
	debounce string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addSheetFlags adds worksheet flags to a FlagSet.
func addSheetFlags(fs *flag.FlagSet, f *sheetFlags) {
	fs.StringVarP(&f.name, "sheet", "s", "", "worksheet name (\"\" = auto from front matter title)")
	fs.BoolVar(&f.strictColumns, "strict-columns", false, "reject rows whose cell count differs from the header")
}

// addWidthFlags adds column width flags to a FlagSet.
func addWidthFlags(fs *flag.FlagSet, f *widthFlags) {
	fs.IntVar(&f.padding, "width-padding", widthPaddingSentinel, "characters added to each column width")
	fs.Float64Var(&f.scale, "width-scale", 0, "column width multiplier")
	fs.Float64Var(&f.min, "width-min", 0, "minimum column width in characters")
	fs.Float64Var(&f.max, "width-max", 0, "maximum column width in characters")
}

// addPreviewFlags adds HTML preview flags to a FlagSet.
func addPreviewFlags(fs *flag.FlagSet, f *previewFlags) {
	fs.BoolVar(&f.html, "html", false, "output HTML preview alongside XLSX")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "output HTML preview only, skip XLSX")
	fs.StringVar(&f.style, "style", "", "preview CSS style name or file path")
}

// registerConvertFlags wires the full convert flag surface onto fs.
// Shared with completion generation so generated scripts stay in sync.
func registerConvertFlags(fs *flag.FlagSet, f *convertFlags) {
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVar(&f.dateSuffix, "date-suffix", "", "date suffix for output names (preset or pattern)")

	addCommonFlags(fs, &f.common)
	addSheetFlags(fs, &f.sheet)
	addWidthFlags(fs, &f.widths)
	addPreviewFlags(fs, &f.preview)
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	f := &convertFlags{}

	registerConvertFlags(fs, f)

	fs.Usage = func() { printConvertUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parseWatchFlags parses watch command flags and returns positional args.
func parseWatchFlags(args []string) (*watchFlags, []string, error) {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	f := &watchFlags{}

	registerConvertFlags(fs, &f.convertFlags)
	fs.StringVar(&f.debounce, "debounce", "", "delay before reconverting after a change (e.g., 300ms)")

	fs.Usage = func() { printWatchUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
