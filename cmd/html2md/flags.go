package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across modes.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// convertFlags holds Markdown conversion flags.
type convertFlags struct {
	gfm        bool
	detectLang bool
}

// fetchFlags holds URL fetching flags.
type fetchFlags struct {
	rendered bool
	timeout  string
}

// extractFlags holds content extraction flags.
type extractFlags struct {
	selector string
	main     bool
}

// cliFlags holds all flags for the html2md command.
type cliFlags struct {
	common  commonFlags
	output  string
	convert convertFlags
	fetch   fetchFlags
	extract extractFlags
	version bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addConvertFlags adds conversion flags to a FlagSet.
func addConvertFlags(fs *flag.FlagSet, f *convertFlags) {
	fs.BoolVar(&f.gfm, "gfm", false, "enable GitHub Flavored Markdown rules")
	fs.BoolVar(&f.detectLang, "detect-lang", false, "guess fence languages for unlabeled code blocks")
}

// addFetchFlags adds URL fetching flags to a FlagSet.
func addFetchFlags(fs *flag.FlagSet, f *fetchFlags) {
	fs.BoolVar(&f.rendered, "rendered", false, "fetch the JS-rendered DOM via headless Chrome")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "fetch timeout (e.g., 30s, 2m)")
}

// addExtractFlags adds content extraction flags to a FlagSet.
func addExtractFlags(fs *flag.FlagSet, f *extractFlags) {
	fs.StringVarP(&f.selector, "select", "s", "", "CSS selector for the fragment to convert")
	fs.BoolVar(&f.main, "extract", false, "isolate main content before converting")
}

// parseFlags parses CLI flags and returns positional args (inputs).
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("html2md", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.BoolVar(&f.version, "version", false, "show version and exit")

	addCommonFlags(fs, &f.common)
	addConvertFlags(fs, &f.convert)
	addFetchFlags(fs, &f.fetch)
	addExtractFlags(fs, &f.extract)

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
