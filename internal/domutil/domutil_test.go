package domutil

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// parseFirst parses a fragment and returns the first element with tag
// inside the body.
func parseFirst(t *testing.T, input, tag string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var found *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if NodeName(n) == tag {
			found = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	if found == nil {
		t.Fatalf("tag %q not found in %q", tag, input)
	}
	return found
}

func TestNodeName(t *testing.T) {
	t.Parallel()

	p := parseFirst(t, "<p>x</p>", "p")
	if got := NodeName(p); got != "p" {
		t.Errorf("NodeName() = %q, want %q", got, "p")
	}
	if got := NodeName(p.FirstChild); got != "" {
		t.Errorf("NodeName(text) = %q, want empty", got)
	}
	if got := NodeName(nil); got != "" {
		t.Errorf("NodeName(nil) = %q, want empty", got)
	}
}

func TestAttr(t *testing.T) {
	t.Parallel()

	a := parseFirst(t, `<a href="u" title="">x</a>`, "a")
	if got := Attr(a, "href"); got != "u" {
		t.Errorf("Attr(href) = %q, want %q", got, "u")
	}
	if got := Attr(a, "missing"); got != "" {
		t.Errorf("Attr(missing) = %q, want empty", got)
	}
	if !HasAttr(a, "title") {
		t.Error("HasAttr(title) = false, want true for empty-valued attribute")
	}
	if HasAttr(a, "missing") {
		t.Error("HasAttr(missing) = true, want false")
	}
}

func TestTextContent(t *testing.T) {
	t.Parallel()

	p := parseFirst(t, "<p>a<em>b<strong>c</strong></em>d</p>", "p")
	if got := TextContent(p); got != "abcd" {
		t.Errorf("TextContent() = %q, want %q", got, "abcd")
	}
}

func TestInnerHTML(t *testing.T) {
	t.Parallel()

	p := parseFirst(t, `<p>a <em>b</em></p>`, "p")
	if got := InnerHTML(p); got != "a <em>b</em>" {
		t.Errorf("InnerHTML() = %q, want %q", got, "a <em>b</em>")
	}
}

func TestOuterHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		tag     string
		content string
		want    string
	}{
		{
			name:    "content replaces children",
			input:   `<a name="top"><em>old</em></a>`,
			tag:     "a",
			content: "new",
			want:    `<a name="top">new</a>`,
		},
		{
			name:    "empty content keeps bare tags",
			input:   `<a name="top"></a>`,
			tag:     "a",
			content: "",
			want:    `<a name="top"></a>`,
		},
		{
			name:    "void element renders self-contained",
			input:   `<img src="x.png">`,
			tag:     "img",
			content: "",
			want:    `<img src="x.png"/>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := parseFirst(t, tt.input, tt.tag)
			if got := OuterHTML(n, tt.content); got != tt.want {
				t.Errorf("OuterHTML() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestElementIndex(t *testing.T) {
	t.Parallel()

	tr := parseFirst(t, "<table><tr><td>a</td><td>b</td><td>c</td></tr></table>", "tr")
	cells := ElementChildren(tr)
	if len(cells) != 3 {
		t.Fatalf("ElementChildren() returned %d nodes, want 3", len(cells))
	}
	for i, cell := range cells {
		if got := ElementIndex(cell); got != i {
			t.Errorf("ElementIndex(cell %d) = %d", i, got)
		}
	}
}

func TestFirstElementChild(t *testing.T) {
	t.Parallel()

	pre := parseFirst(t, "<pre>\n<code>x</code></pre>", "pre")
	first := FirstElementChild(pre)
	if NodeName(first) != "code" {
		t.Errorf("FirstElementChild() = %q, want code element", NodeName(first))
	}

	empty := parseFirst(t, "<p>just text</p>", "p")
	if FirstElementChild(empty) != nil {
		t.Error("FirstElementChild() on text-only element, want nil")
	}
}

func TestRemove(t *testing.T) {
	t.Parallel()

	p := parseFirst(t, "<p>a<em>b</em>c</p>", "p")
	em := FirstElementChild(p)
	Remove(em)
	if got := TextContent(p); got != "ac" {
		t.Errorf("after Remove, TextContent() = %q, want %q", got, "ac")
	}
	// Removing a detached node is a no-op.
	Remove(em)
}
