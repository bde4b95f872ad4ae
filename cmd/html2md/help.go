package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: html2md [flags] <input>...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert HTML to Markdown.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    HTML file, http(s) URL, or \"-\" for stdin")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>     Output file or directory (default: stdout)")
	fmt.Fprintln(w, "  -c, --config <name>     Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Conversion:")
	fmt.Fprintln(w, "      --gfm               Enable GitHub Flavored Markdown rules")
	fmt.Fprintln(w, "      --detect-lang       Guess fence languages for unlabeled code blocks")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Fetching:")
	fmt.Fprintln(w, "      --rendered          Fetch the JS-rendered DOM via headless Chrome")
	fmt.Fprintln(w, "  -t, --timeout <d>       Fetch timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Extraction:")
	fmt.Fprintln(w, "  -s, --select <css>      CSS selector for the fragment to convert")
	fmt.Fprintln(w, "      --extract           Isolate main content before converting")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "  -q, --quiet             Only show errors")
	fmt.Fprintln(w, "  -v, --verbose           Show detailed timing")
	fmt.Fprintln(w, "      --version           Show version and exit")
}
