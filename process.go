package html2md

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/alnah/go-html2md/internal/domutil"
)

// Precompiled boundary-whitespace checks.
var (
	allWhitespace      = regexp.MustCompile(`^\s*$`)
	leadingWhitespace  = regexp.MustCompile(`^[ \r\n\t]`)
	trailingWhitespace = regexp.MustCompile(`[ \r\n\t]$`)
)

// conversion is the per-call state of one document conversion. Each call
// gets its own annotation store, so converters can be shared between
// goroutines without interference.
type conversion struct {
	rules        []Rule
	replacements map[*html.Node]string
	ctx          *Context
}

func newConversion(rules []Rule) *conversion {
	c := &conversion{
		rules:        rules,
		replacements: make(map[*html.Node]string),
	}
	c.ctx = &Context{conv: c}
	return c
}

// content assembles the converted text of n from its children, in order:
// an element child contributes its replacement annotation, a text child
// its raw character data. Other node kinds contribute nothing.
func (c *conversion) content(n *html.Node) string {
	var sb strings.Builder
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		switch child.Type {
		case html.ElementNode:
			sb.WriteString(c.replacements[child])
		case html.TextNode:
			sb.WriteString(child.Data)
		}
	}
	return sb.String()
}

// process computes and stores the replacement annotation for one node.
// It must run after every element descendant of n has been processed.
func (c *conversion) process(n *html.Node) {
	content := c.content(n)

	// Blank nodes are elided so empty containers cannot inject spurious
	// blank lines. Void elements stay because their presence is their
	// meaning, and anchors stay because an empty named anchor is still a
	// link target.
	if !IsVoid(n) && domutil.NodeName(n) != "a" && allWhitespace.MatchString(content) {
		c.replacements[n] = ""
		return
	}

	rule, ok := findRule(c.rules, n, c.ctx)
	if !ok {
		// The base set ends in a catch-all predicate, so a miss can only
		// happen with a registry built without it. Pass content through.
		c.replacements[n] = content
		return
	}

	leading, trailing := c.flankingWhitespace(n)
	if leading != "" || trailing != "" {
		content = Trim(content)
	}
	c.replacements[n] = leading + rule.Replacement(content, n, c.ctx) + trailing
}

// flankingWhitespace decides whether the node's converted text needs a
// single padding space on either side. Only inline elements qualify:
// the side must have boundary whitespace in the node's own inner markup,
// and the adjacent sibling must not already supply it.
func (c *conversion) flankingWhitespace(n *html.Node) (leading, trailing string) {
	if IsBlock(n) {
		return "", ""
	}
	inner := domutil.InnerHTML(n)
	if leadingWhitespace.MatchString(inner) && !isFlankedByWhitespace(n, sideLeft) {
		leading = " "
	}
	if trailingWhitespace.MatchString(inner) && !isFlankedByWhitespace(n, sideRight) {
		trailing = " "
	}
	return leading, trailing
}

type side int

const (
	sideLeft side = iota
	sideRight
)

// isFlankedByWhitespace reports whether the sibling adjacent to the given
// side already supplies boundary whitespace. A text sibling is checked on
// its raw text, an inline element sibling on its rendered text. A block
// sibling never counts: its own line breaking makes inherited whitespace
// irrelevant.
func isFlankedByWhitespace(n *html.Node, s side) bool {
	var sibling *html.Node
	if s == sideLeft {
		sibling = n.PrevSibling
	} else {
		sibling = n.NextSibling
	}
	if sibling == nil {
		return false
	}

	var text string
	switch sibling.Type {
	case html.TextNode:
		text = sibling.Data
	case html.ElementNode:
		if IsBlock(sibling) {
			return false
		}
		text = domutil.TextContent(sibling)
	default:
		return false
	}

	if s == sideLeft {
		return strings.HasSuffix(text, " ")
	}
	return strings.HasPrefix(text, " ")
}
