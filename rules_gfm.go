package html2md

import (
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
	"golang.org/x/net/html"

	"github.com/alnah/go-html2md/internal/domutil"
)

// languageClass extracts a fence language from the class attribute
// conventions code highlighters leave behind.
var languageClass = regexp.MustCompile(`(?:^|\s)(?:language|lang|highlight)-(\S+)`)

// gfmRules is the GitHub Flavored Markdown rule table: strikethrough,
// task lists, pipe tables, and fenced code blocks. It layers over the
// base set and takes precedence where both match.
func gfmRules(detectLanguage bool) []Rule {
	return []Rule{
		{
			Filter: Tag("br"),
			Replacement: func(_ string, _ *html.Node, _ *Context) string {
				return "\n"
			},
		},
		{
			Filter: Tags("del", "s", "strike"),
			Replacement: func(content string, _ *html.Node, _ *Context) string {
				return "~~" + content + "~~"
			},
		},
		{
			Filter: Match(func(node *html.Node, _ *Context) bool {
				return domutil.NodeName(node) == "input" &&
					domutil.Attr(node, "type") == "checkbox" &&
					domutil.NodeName(node.Parent) == "li"
			}),
			Replacement: func(_ string, node *html.Node, _ *Context) string {
				if domutil.HasAttr(node, "checked") {
					return "[x] "
				}
				return "[ ] "
			},
		},
		{
			Filter: Tags("th", "td"),
			Replacement: func(content string, node *html.Node, _ *Context) string {
				return tableCell(content, node)
			},
		},
		{
			Filter: Tag("tr"),
			Replacement: func(content string, node *html.Node, _ *Context) string {
				// The row under a thead gets the |---|---| border that makes
				// the table render; align attributes pick the border shape.
				border := ""
				if domutil.NodeName(node.Parent) == "thead" {
					for _, cell := range domutil.ElementChildren(node) {
						border += tableCell(borderFor(cell), cell)
					}
				}
				if border != "" {
					return "\n" + content + "\n" + border
				}
				return "\n" + content
			},
		},
		{
			Filter: Tag("table"),
			Replacement: func(content string, _ *html.Node, _ *Context) string {
				return "\n\n" + content + "\n\n"
			},
		},
		{
			Filter: Tags("thead", "tbody", "tfoot"),
			Replacement: func(content string, _ *html.Node, _ *Context) string {
				return content
			},
		},
		{
			// Fenced code blocks for pre > code.
			Filter: Match(func(node *html.Node, _ *Context) bool {
				first := domutil.FirstElementChild(node)
				return domutil.NodeName(node) == "pre" &&
					first != nil && domutil.NodeName(first) == "code"
			}),
			Replacement: func(_ string, node *html.Node, ctx *Context) string {
				code := domutil.FirstElementChild(node)
				text := ctx.TextContent(code)
				return "\n\n```" + fenceLanguage(code, text, detectLanguage) +
					"\n" + text + "\n```\n\n"
			},
		},
		{
			// Highlighter wrappers (e.g. GitHub's div.highlight-source-go)
			// carry the language for the pre they contain.
			Filter: Match(func(node *html.Node, _ *Context) bool {
				return domutil.NodeName(node) == "pre" &&
					domutil.NodeName(node.Parent) == "div" &&
					languageClass.MatchString(domutil.Attr(node.Parent, "class"))
			}),
			Replacement: func(_ string, node *html.Node, ctx *Context) string {
				lang := languageClass.FindStringSubmatch(domutil.Attr(node.Parent, "class"))[1]
				return "\n\n```" + lang + "\n" + ctx.TextContent(node) + "\n```\n\n"
			},
		},
		{
			Filter: Match(func(node *html.Node, _ *Context) bool {
				return domutil.NodeName(node) == "div" &&
					languageClass.MatchString(domutil.Attr(node, "class"))
			}),
			Replacement: func(content string, _ *html.Node, _ *Context) string {
				return "\n\n" + content + "\n\n"
			},
		},
	}
}

// tableCell renders one cell with its pipe separators. The opening pipe
// belongs to the first cell of the row.
func tableCell(content string, node *html.Node) string {
	prefix := " "
	if domutil.ElementIndex(node) == 0 {
		prefix = "| "
	}
	return prefix + content + " |"
}

// borderFor picks the header border matching a cell's align attribute.
func borderFor(cell *html.Node) string {
	switch domutil.Attr(cell, "align") {
	case "left":
		return ":--"
	case "right":
		return "--:"
	case "center":
		return ":-:"
	default:
		return "---"
	}
}

// fenceLanguage resolves the info string for a fenced code block: an
// explicit language class wins; otherwise, when detection is enabled,
// the code itself is analyzed.
func fenceLanguage(code *html.Node, text string, detect bool) string {
	if m := languageClass.FindStringSubmatch(domutil.Attr(code, "class")); m != nil {
		return m[1]
	}
	if !detect || strings.TrimSpace(text) == "" {
		return ""
	}
	lexer := lexers.Analyse(text)
	if lexer == nil {
		return ""
	}
	cfg := lexer.Config()
	if len(cfg.Aliases) > 0 {
		return cfg.Aliases[0]
	}
	return strings.ToLower(cfg.Name)
}
