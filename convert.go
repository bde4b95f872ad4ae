package html2md

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// numberedText matches literal "1. like this" runs in the raw input.
// Escaping the period before parsing keeps Markdown renderers from
// reading such text as an ordered-list marker.
var numberedText = regexp.MustCompile(`(\d+)\. `)

// Final cleanup patterns, applied to the assembled output.
var (
	surroundingWhitespace = regexp.MustCompile(`^[\t\r\n]+|[\t\r\n\s]+$`)
	spacedBlankLine       = regexp.MustCompile(`\n\s+\n`)
	extraBlankLines       = regexp.MustCompile(`\n{3,}`)
)

// Converter turns HTML strings into Markdown. The rule registry is
// composed once, when the converter is built, and never mutated after,
// so a single Converter is safe for concurrent use.
type Converter struct {
	rules []Rule
}

// NewConverter builds a Converter from the base rule set plus any
// options. The whole registry is validated here, so a malformed rule
// fails construction rather than a later conversion.
func NewConverter(opts ...Option) (*Converter, error) {
	var cfg converterConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	rules := composeRules(cfg)
	if err := validateRules(rules); err != nil {
		return nil, err
	}
	return &Converter{rules: rules}, nil
}

// Convert renders an HTML string to Markdown. Malformed HTML is not
// rejected; the parser's recovery behavior decides the tree, and the
// conversion operates on that tree as-is.
func (c *Converter) Convert(input string) (string, error) {
	input = numberedText.ReplaceAllString(input, `$1\. `)

	doc, err := html.Parse(strings.NewReader(input))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLParse, err)
	}
	body := findBody(doc)
	if body == nil {
		return "", nil
	}
	collapseWhitespace(body, IsBlock)

	conv := newConversion(c.rules)
	nodes := breadthFirst(body)
	for i := len(nodes) - 1; i >= 0; i-- {
		conv.process(nodes[i])
	}

	return cleanup(conv.content(body)), nil
}

// Convert renders an HTML string to Markdown with a one-off converter.
// For repeated conversions, build a Converter once and reuse it.
func Convert(input string, opts ...Option) (string, error) {
	c, err := NewConverter(opts...)
	if err != nil {
		return "", err
	}
	return c.Convert(input)
}

// findBody locates the body element the parser guarantees for any input.
func findBody(doc *html.Node) *html.Node {
	var body *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if body != nil {
			return
		}
		if n.Type == html.ElementNode && n.DataAtom == atom.Body {
			body = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return body
}

// cleanup normalizes the assembled output: strip surrounding whitespace,
// reduce whitespace-only lines between blank lines, and cap blank-line
// runs at a single blank line.
func cleanup(out string) string {
	out = surroundingWhitespace.ReplaceAllString(out, "")
	out = spacedBlankLine.ReplaceAllString(out, "\n\n")
	out = extraBlankLines.ReplaceAllString(out, "\n\n")
	return out
}
