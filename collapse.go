package html2md

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/alnah/go-html2md/internal/domutil"
)

// whitespaceRun matches any run of HTML-insignificant whitespace.
var whitespaceRun = regexp.MustCompile(`[ \r\n\t]+`)

// collapseWhitespace rewrites insignificant whitespace in the subtree
// under root before traversal begins. Runs inside text nodes collapse to
// a single space, spaces adjacent to block boundaries disappear, and text
// inside preformatted elements is left untouched. Comment and doctype
// nodes are dropped along the way. isBlock supplies the block/inline
// classification used as the collapse boundary.
func collapseWhitespace(root *html.Node, isBlock func(*html.Node) bool) {
	if root.FirstChild == nil || isPreformatted(root) {
		return
	}

	// prevText tracks the last text node seen, so a trailing space can be
	// removed once the walk hits a block boundary. keepLeadingWs protects
	// the space after void and preformatted elements, whose rendered output
	// supplies no whitespace of its own.
	var prevText *html.Node
	keepLeadingWs := false

	var prev *html.Node
	node := nextInWalk(prev, root)

	for node != root {
		switch node.Type {
		case html.TextNode:
			text := whitespaceRun.ReplaceAllString(node.Data, " ")
			if (prevText == nil || strings.HasSuffix(prevText.Data, " ")) &&
				!keepLeadingWs && strings.HasPrefix(text, " ") {
				text = text[1:]
			}
			if text == "" {
				node = removeInWalk(node)
				continue
			}
			node.Data = text
			prevText = node

		case html.ElementNode:
			if isBlock(node) || domutil.NodeName(node) == "br" {
				if prevText != nil {
					prevText.Data = strings.TrimSuffix(prevText.Data, " ")
				}
				prevText = nil
				keepLeadingWs = false
			} else if IsVoid(node) || isPreformatted(node) {
				prevText = nil
				keepLeadingWs = true
			} else if prevText != nil {
				keepLeadingWs = false
			}

		default:
			node = removeInWalk(node)
			continue
		}

		next := nextInWalk(prev, node)
		prev = node
		node = next
	}

	if prevText != nil {
		prevText.Data = strings.TrimSuffix(prevText.Data, " ")
		if prevText.Data == "" {
			domutil.Remove(prevText)
		}
	}
}

// isPreformatted reports whether whitespace inside n is significant.
func isPreformatted(n *html.Node) bool {
	return domutil.NodeName(n) == "pre"
}

// nextInWalk advances a depth-first walk. Descending is skipped when the
// walk is on its way back up (prev is a child of current) and below
// preformatted elements.
func nextInWalk(prev, current *html.Node) *html.Node {
	if (prev != nil && prev.Parent == current) || isPreformatted(current) {
		if current.NextSibling != nil {
			return current.NextSibling
		}
		return current.Parent
	}
	if current.FirstChild != nil {
		return current.FirstChild
	}
	if current.NextSibling != nil {
		return current.NextSibling
	}
	return current.Parent
}

// removeInWalk detaches node and returns the walk's next position.
func removeInWalk(node *html.Node) *html.Node {
	next := node.NextSibling
	if next == nil {
		next = node.Parent
	}
	domutil.Remove(node)
	return next
}
