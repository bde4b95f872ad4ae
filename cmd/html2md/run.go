package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	html2md "github.com/alnah/go-html2md"
	"github.com/alnah/go-html2md/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput        = errors.New("no input specified")
	ErrReadInput      = errors.New("failed to read input")
	ErrWriteOutput    = errors.New("failed to write output")
	ErrInvalidTimeout = errors.New("invalid timeout")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

const defaultFetchTimeout = 30 * time.Second

// settings holds flags merged over config. CLI values win.
type settings struct {
	output      string
	gfm         bool
	detectLang  bool
	rendered    bool
	timeout     time.Duration
	selector    string
	extractMain bool
	quiet       bool
	verbose     bool
}

// resolveSettings loads the config file (if any) and merges CLI flags into it.
func resolveSettings(flags *cliFlags) (*settings, error) {
	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		loaded, err := config.LoadConfig(flags.common.config)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	s := &settings{
		output:      cfg.Output.DefaultDir,
		gfm:         cfg.Convert.GFM || flags.convert.gfm,
		detectLang:  cfg.Convert.DetectLanguages || flags.convert.detectLang,
		rendered:    cfg.Fetch.Rendered || flags.fetch.rendered,
		selector:    cfg.Extract.Selector,
		extractMain: cfg.Extract.Main || flags.extract.main,
		quiet:       flags.common.quiet,
		verbose:     flags.common.verbose,
	}

	if flags.output != "" {
		s.output = flags.output
	}
	if flags.extract.selector != "" {
		s.selector = flags.extract.selector
	}

	timeout := cfg.Fetch.Timeout
	if flags.fetch.timeout != "" {
		timeout = flags.fetch.timeout
	}
	s.timeout = defaultFetchTimeout
	if timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTimeout, timeout)
		}
		s.timeout = d
	}

	return s, nil
}

// run converts each input and writes the results per the output settings.
// Inputs are processed independently; one failure does not stop the rest.
func run(inputs []string, flags *cliFlags, stdout io.Writer) error {
	s, err := resolveSettings(flags)
	if err != nil {
		return err
	}

	if len(inputs) == 0 {
		return fmt.Errorf("%w: pass a file, URL, or \"-\" for stdin", ErrNoInput)
	}

	var opts []html2md.Option
	if s.gfm {
		opts = append(opts, html2md.WithGFM())
	}
	if s.detectLang {
		opts = append(opts, html2md.WithLanguageDetection())
	}
	conv, err := html2md.NewConverter(opts...)
	if err != nil {
		return err
	}

	// The browser is shared across URL inputs and started on first use.
	var f fetcher
	getFetcher := func() fetcher {
		if f == nil {
			if s.rendered {
				f = newRodFetcher(s.timeout)
			} else {
				f = newHTTPFetcher(s.timeout)
			}
		}
		return f
	}
	defer func() {
		if f != nil {
			_ = f.Close()
		}
	}()

	ctx := context.Background()

	var errs []error
	for _, input := range inputs {
		start := time.Now()

		if err := convertOne(ctx, conv, s, input, len(inputs), getFetcher, stdout); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", input, err))
			continue
		}

		if s.verbose {
			fmt.Fprintf(os.Stderr, "converted %s in %s\n", input, time.Since(start).Round(time.Millisecond))
		}
	}

	return errors.Join(errs...)
}

// convertOne reads, extracts, converts, and writes a single input.
func convertOne(ctx context.Context, conv *html2md.Converter, s *settings, input string, inputCount int, getFetcher func() fetcher, stdout io.Writer) error {
	src, err := readInput(ctx, input, getFetcher)
	if err != nil {
		return err
	}

	if s.selector != "" {
		src, err = extractSelection(src, s.selector)
		if err != nil {
			return err
		}
	} else if s.extractMain {
		src, err = extractMain(src)
		if err != nil {
			return err
		}
	}

	md, err := conv.Convert(src)
	if err != nil {
		return err
	}

	return writeOutput(s, input, inputCount, md, stdout)
}

// readInput returns the HTML source for a file path, URL, or stdin ("-").
func readInput(ctx context.Context, input string, getFetcher func() fetcher) (string, error) {
	switch {
	case input == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("%w: stdin: %v", ErrReadInput, err)
		}
		return string(data), nil
	case isURL(input):
		return getFetcher().Fetch(ctx, input)
	default:
		data, err := os.ReadFile(input) // #nosec G304 -- input path is user-provided
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrReadInput, err)
		}
		return string(data), nil
	}
}

// writeOutput writes markdown to stdout, a file, or a directory.
func writeOutput(s *settings, input string, inputCount int, md string, stdout io.Writer) error {
	if s.output == "" {
		if md != "" && !strings.HasSuffix(md, "\n") {
			md += "\n"
		}
		_, err := io.WriteString(stdout, md)
		return err
	}

	outPath := s.output
	if inputCount > 1 || isDirectory(outPath) || strings.HasSuffix(outPath, string(os.PathSeparator)) {
		if err := os.MkdirAll(outPath, dirPermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		outPath = filepath.Join(outPath, outputNameFor(input))
	} else if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
	}

	if err := os.WriteFile(outPath, []byte(md), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if !s.quiet {
		fmt.Fprintf(os.Stderr, "wrote %s\n", outPath)
	}
	return nil
}

// outputNameFor derives a Markdown filename from an input file, URL, or stdin.
func outputNameFor(input string) string {
	if input == "-" {
		return "stdin.md"
	}

	name := input
	if isURL(input) {
		name = urlBasename(input)
	} else {
		name = filepath.Base(input)
	}

	if ext := filepath.Ext(name); ext != "" {
		name = strings.TrimSuffix(name, ext)
	}
	if name == "" || name == "." {
		name = "output"
	}
	return name + ".md"
}

// urlBasename returns the last non-empty path segment of a URL, or its host.
func urlBasename(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "output"
	}

	trimmed := strings.Trim(u.Path, "/")
	if trimmed == "" {
		return u.Hostname()
	}
	segments := strings.Split(trimmed, "/")
	return segments[len(segments)-1]
}

// isURL returns true for http and https URLs.
func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// isDirectory returns true if the path exists and is a directory.
func isDirectory(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
