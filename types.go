package html2md

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/alnah/go-html2md/internal/domutil"
)

// ReplacementFunc produces the Markdown text for one node. content is the
// already-converted text of the node's children; ctx exposes the shared
// conversion helpers.
type ReplacementFunc func(content string, node *html.Node, ctx *Context) string

// Predicate decides whether a rule applies to a node.
type Predicate func(node *html.Node, ctx *Context) bool

// filterKind discriminates the three recognized filter shapes.
// The zero value is invalid and rejected when a converter is built.
type filterKind int

const (
	filterInvalid filterKind = iota
	filterTag
	filterTagSet
	filterPredicate
)

// Filter selects the nodes a rule applies to. Construct one with Tag,
// Tags, or Match; the zero Filter is invalid.
type Filter struct {
	kind filterKind
	tag  string
	tags map[string]bool
	pred Predicate
}

// Tag matches elements with exactly this tag name (case-insensitive).
func Tag(name string) Filter {
	return Filter{kind: filterTag, tag: strings.ToLower(name)}
}

// Tags matches elements whose tag name is any of names (case-insensitive).
func Tags(names ...string) Filter {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[strings.ToLower(name)] = true
	}
	return Filter{kind: filterTagSet, tags: set}
}

// Match matches elements for which pred returns true.
func Match(pred Predicate) Filter {
	return Filter{kind: filterPredicate, pred: pred}
}

// Rule pairs a filter with the replacement that renders matching nodes.
// Rules are totally ordered within a registry; the first match wins.
type Rule struct {
	Filter      Filter
	Replacement ReplacementFunc
}

// Context is the stable per-conversion value handed to predicates and
// replacement functions. It carries the classification and serialization
// helpers rules need, plus access to the replacement annotations of
// already-processed elements.
type Context struct {
	conv *conversion
}

// IsBlock reports whether n is a block-level element.
func (ctx *Context) IsBlock(n *html.Node) bool { return IsBlock(n) }

// IsVoid reports whether n is a void element.
func (ctx *Context) IsVoid(n *html.Node) bool { return IsVoid(n) }

// Trim strips boundary whitespace from converted content.
func (ctx *Context) Trim(s string) string { return Trim(s) }

// TextContent returns the rendered text of n's subtree.
func (ctx *Context) TextContent(n *html.Node) string { return domutil.TextContent(n) }

// OuterHTML serializes n's own tags around content, without descendants.
// Catch-all rules use it to pass unconvertible markup through verbatim.
func (ctx *Context) OuterHTML(n *html.Node, content string) string {
	return domutil.OuterHTML(n, content)
}

// Replacement returns the Markdown already computed for an element.
// It is only set for elements the processor has finished, which in
// bottom-up order means every descendant of the node currently being
// converted.
func (ctx *Context) Replacement(n *html.Node) string {
	return ctx.conv.replacements[n]
}

// converterConfig collects the options applied by NewConverter.
type converterConfig struct {
	gfm            bool
	detectLanguage bool
	rules          []Rule
}

// Option configures a Converter.
type Option func(*converterConfig)

// WithGFM layers the GitHub Flavored Markdown rule set over the base set.
// GFM rules take precedence over base rules; caller rules still win.
func WithGFM() Option {
	return func(cfg *converterConfig) {
		cfg.gfm = true
	}
}

// WithRules prepends caller rules to the registry. Caller rules take
// precedence over both the GFM and base sets, in the order given.
func WithRules(rules ...Rule) Option {
	return func(cfg *converterConfig) {
		cfg.rules = append(cfg.rules, rules...)
	}
}

// WithLanguageDetection enables fence-language guessing for code blocks
// that carry no language class. Only meaningful together with WithGFM,
// since fenced code blocks belong to the GFM rule set.
func WithLanguageDetection() Option {
	return func(cfg *converterConfig) {
		cfg.detectLanguage = true
	}
}
