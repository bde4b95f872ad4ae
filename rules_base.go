package html2md

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/alnah/go-html2md/internal/domutil"
)

// leadingSpaceRun strips the whitespace a list item inherits from markup
// indentation before its marker is attached.
var leadingSpaceRun = regexp.MustCompile(`^\s+`)

// baseRules is the default rule table: conventional Markdown for the
// common tags, closed by two catch-alls so every element matches
// something. Order matters; the first match wins.
func baseRules() []Rule {
	return []Rule{
		{
			Filter: Tag("p"),
			Replacement: func(content string, _ *html.Node, _ *Context) string {
				return "\n\n" + content + "\n\n"
			},
		},
		{
			Filter: Tag("br"),
			Replacement: func(_ string, _ *html.Node, _ *Context) string {
				return "  \n"
			},
		},
		{
			Filter: Tags("h1", "h2", "h3", "h4", "h5", "h6"),
			Replacement: func(content string, node *html.Node, _ *Context) string {
				level := int(domutil.NodeName(node)[1] - '0')
				return "\n\n" + strings.Repeat("#", level) + " " + content + "\n\n"
			},
		},
		{
			Filter: Tag("hr"),
			Replacement: func(_ string, _ *html.Node, _ *Context) string {
				return "\n\n* * *\n\n"
			},
		},
		{
			Filter: Tags("em", "i"),
			Replacement: func(content string, _ *html.Node, _ *Context) string {
				return "_" + content + "_"
			},
		},
		{
			Filter: Tags("strong", "b"),
			Replacement: func(content string, _ *html.Node, _ *Context) string {
				return "**" + content + "**"
			},
		},
		{
			// Inline code only. A lone code child of a pre is the body of a
			// code block; it passes through so the pre rule formats it.
			Filter: Match(func(node *html.Node, _ *Context) bool {
				return domutil.NodeName(node) == "code"
			}),
			Replacement: func(content string, node *html.Node, _ *Context) string {
				if isCodeBlockBody(node) {
					return content
				}
				return "`" + content + "`"
			},
		},
		{
			Filter: Match(func(node *html.Node, _ *Context) bool {
				return domutil.NodeName(node) == "a" && domutil.Attr(node, "href") != ""
			}),
			Replacement: func(content string, node *html.Node, _ *Context) string {
				return "[" + content + "](" + domutil.Attr(node, "href") + titlePart(node) + ")"
			},
		},
		{
			Filter: Tag("img"),
			Replacement: func(_ string, node *html.Node, _ *Context) string {
				src := domutil.Attr(node, "src")
				if src == "" {
					return ""
				}
				return "![" + domutil.Attr(node, "alt") + "](" + src + titlePart(node) + ")"
			},
		},
		{
			Filter: Tag("pre"),
			Replacement: func(content string, _ *html.Node, _ *Context) string {
				return "\n\n    " + strings.ReplaceAll(content, "\n", "\n    ") + "\n\n"
			},
		},
		{
			Filter: Tag("blockquote"),
			Replacement: func(content string, _ *html.Node, ctx *Context) string {
				content = ctx.Trim(content)
				content = extraBlankLines.ReplaceAllString(content, "\n\n")
				var sb strings.Builder
				for i, line := range strings.Split(content, "\n") {
					if i > 0 {
						sb.WriteByte('\n')
					}
					sb.WriteString("> ")
					sb.WriteString(line)
				}
				return "\n\n" + sb.String() + "\n\n"
			},
		},
		{
			Filter: Tag("li"),
			Replacement: func(content string, node *html.Node, _ *Context) string {
				content = leadingSpaceRun.ReplaceAllString(content, "")
				content = strings.ReplaceAll(content, "\n", "\n    ")
				prefix := "*   "
				if domutil.NodeName(node.Parent) == "ol" {
					prefix = fmt.Sprintf("%d.  ", domutil.ElementIndex(node)+1)
				}
				return prefix + content
			},
		},
		{
			Filter: Tags("ul", "ol"),
			Replacement: func(_ string, node *html.Node, ctx *Context) string {
				items := make([]string, 0, 8)
				for _, li := range domutil.ElementChildren(node) {
					items = append(items, ctx.Replacement(li))
				}
				joined := strings.Join(items, "\n")
				// A list nested inside a list item continues the item.
				if domutil.NodeName(node.Parent) == "li" {
					return "\n" + joined
				}
				return "\n\n" + joined + "\n\n"
			},
		},
		{
			// Anchors without an href are link targets; their markup is kept
			// so the target survives the conversion.
			Filter: Tag("a"),
			Replacement: func(content string, node *html.Node, ctx *Context) string {
				return ctx.OuterHTML(node, content)
			},
		},
		{
			// Block-level catch-all: unknown containers contribute their
			// content on its own lines.
			Filter: Match(func(node *html.Node, ctx *Context) bool {
				return ctx.IsBlock(node)
			}),
			Replacement: func(content string, _ *html.Node, _ *Context) string {
				return "\n\n" + content + "\n\n"
			},
		},
		{
			// Inline catch-all: everything else contributes its content in
			// place. Together with the block catch-all this keeps the
			// registry total over all tags.
			Filter: Match(func(_ *html.Node, _ *Context) bool {
				return true
			}),
			Replacement: func(content string, _ *html.Node, _ *Context) string {
				return content
			},
		},
	}
}

// isCodeBlockBody reports whether node is the sole code child of a pre.
func isCodeBlockBody(node *html.Node) bool {
	return domutil.NodeName(node.Parent) == "pre" &&
		node.PrevSibling == nil && node.NextSibling == nil
}

// titlePart renders the optional quoted title of a link or image.
func titlePart(node *html.Node) string {
	if title := domutil.Attr(node, "title"); title != "" {
		return ` "` + title + `"`
	}
	return ""
}
