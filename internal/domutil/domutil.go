// Package domutil provides small helpers over x/net/html nodes.
// It isolates tree inspection and serialization so the conversion core
// and the rule sets share one vocabulary for talking to the parser.
package domutil

import (
	"strings"

	"golang.org/x/net/html"
)

// NodeName returns the lowercase tag name of an element node.
// For non-element nodes it returns the empty string.
func NodeName(n *html.Node) string {
	if n == nil || n.Type != html.ElementNode {
		return ""
	}
	return strings.ToLower(n.Data)
}

// Attr returns the value of the named attribute, or "" if absent.
func Attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// HasAttr reports whether the named attribute is present, regardless of value.
func HasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

// TextContent returns the concatenated data of all text descendants,
// in document order.
func TextContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
			return
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// InnerHTML serializes the children of n back to markup, excluding the
// node's own tags.
func InnerHTML(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		// Render only fails on unrenderable node types; those never
		// occur in a parsed document subtree.
		_ = html.Render(&sb, c)
	}
	return sb.String()
}

// OuterHTML serializes the node's own tags with content in place of its
// children. Void elements render self-contained and ignore content.
func OuterHTML(n *html.Node, content string) string {
	shallow := &html.Node{
		Type:     n.Type,
		Data:     n.Data,
		DataAtom: n.DataAtom,
		Attr:     append([]html.Attribute(nil), n.Attr...),
	}
	var sb strings.Builder
	_ = html.Render(&sb, shallow)
	s := sb.String()
	if content == "" {
		return s
	}
	// Insert content between the open and close tags of the shallow render.
	if i := strings.Index(s, "><"); i >= 0 {
		return s[:i+1] + content + s[i+1:]
	}
	return s
}

// ElementIndex returns the position of n among its parent's element
// children, starting at 0. Returns 0 when n has no parent.
func ElementIndex(n *html.Node) int {
	i := 0
	if n.Parent == nil {
		return 0
	}
	for c := n.Parent.FirstChild; c != nil; c = c.NextSibling {
		if c == n {
			return i
		}
		if c.Type == html.ElementNode {
			i++
		}
	}
	return i
}

// ElementChildren returns the element children of n, in order.
func ElementChildren(n *html.Node) []*html.Node {
	var children []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			children = append(children, c)
		}
	}
	return children
}

// FirstElementChild returns the first element child of n, or nil.
func FirstElementChild(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

// Remove detaches n from its parent. It is a no-op for parentless nodes.
func Remove(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}
