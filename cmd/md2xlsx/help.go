package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2xlsx <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert     Convert markdown tables to XLSX workbooks")
	fmt.Fprintln(w, "  watch       Reconvert whenever watched files change")
	fmt.Fprintln(w, "  inspect     Report what a conversion would produce")
	fmt.Fprintln(w, "  completion  Generate shell completion scripts")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2xlsx help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2xlsx convert <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert the first markdown table of each input file to an XLSX workbook.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --date-suffix <s>     Date suffix for output names")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                            Presets (case-insensitive): iso, european, us, compact")
	fmt.Fprintln(w, "                            Use [text] to escape literals: [week]YYYY")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Worksheet:")
	fmt.Fprintln(w, "  -s, --sheet <name>        Worksheet name (\"\" = auto from front matter title)")
	fmt.Fprintln(w, "      --strict-columns      Reject rows whose cell count differs from the header")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Column Widths:")
	fmt.Fprintln(w, "      --width-padding <n>   Characters added to each column width")
	fmt.Fprintln(w, "      --width-scale <f>     Column width multiplier")
	fmt.Fprintln(w, "      --width-min <f>       Minimum column width in characters")
	fmt.Fprintln(w, "      --width-max <f>       Maximum column width in characters")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Preview:")
	fmt.Fprintln(w, "      --html                Output HTML preview alongside XLSX")
	fmt.Fprintln(w, "      --html-only           Output HTML preview only, skip XLSX")
	fmt.Fprintln(w, "      --style <s>           Preview CSS style name or file path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// printWatchUsage prints usage for the watch command.
func printWatchUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2xlsx watch <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert once, then reconvert whenever the watched file or directory changes.")
	fmt.Fprintln(w, "Accepts every convert flag, plus:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "      --debounce <dur>      Delay before reconverting after a change")
	fmt.Fprintln(w, "                            (default 300ms; e.g. 1s, 500ms)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Press Ctrl+C to stop watching.")
}

// printInspectUsage prints usage for the inspect command.
func printInspectUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2xlsx inspect <file> [--json]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Parse a markdown file and report what a conversion would produce:")
	fmt.Fprintln(w, "worksheet name, table dimensions, column widths, and any warnings.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --json                Output the report as JSON")
}

// runHelp prints help for a specific command.
func runHelp(args []string, deps *Dependencies) {
	if len(args) == 0 {
		printUsage(deps.Stdout)
		return
	}

	switch args[0] {
	case "convert":
		printConvertUsage(deps.Stdout)
	case "watch":
		printWatchUsage(deps.Stdout)
	case "inspect":
		printInspectUsage(deps.Stdout)
	case "completion":
		printCompletionUsage(deps.Stdout)
	case "version":
		fmt.Fprintln(deps.Stdout, "Usage: md2xlsx version")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(deps.Stdout, "Usage: md2xlsx help [command]")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(deps.Stderr, "Unknown command: %s\n", args[0])
		printUsage(deps.Stderr)
	}
}
