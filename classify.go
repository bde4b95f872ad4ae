package html2md

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/alnah/go-html2md/internal/domutil"
)

// blockTags are the structural container tags. Block-level elements get
// their separation from blank lines, never from flanking whitespace.
var blockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "audio": true,
	"blockquote": true, "body": true, "canvas": true, "center": true,
	"dd": true, "dir": true, "div": true, "dl": true, "dt": true,
	"fieldset": true, "figcaption": true, "figure": true, "footer": true,
	"form": true, "frameset": true, "h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true, "header": true, "hgroup": true,
	"hr": true, "html": true, "isindex": true, "li": true, "main": true,
	"menu": true, "nav": true, "noframes": true, "noscript": true,
	"ol": true, "output": true, "p": true, "pre": true, "section": true,
	"table": true, "tbody": true, "td": true, "tfoot": true, "th": true,
	"thead": true, "tr": true, "ul": true,
}

// voidTags are tags whose content model forbids children.
var voidTags = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "command": true,
	"embed": true, "hr": true, "img": true, "input": true, "keygen": true,
	"link": true, "meta": true, "param": true, "source": true,
	"track": true, "wbr": true,
}

// IsBlock reports whether n is a block-level element.
func IsBlock(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode && blockTags[domutil.NodeName(n)]
}

// IsVoid reports whether n is a void element, one that never contains
// children (line breaks, images, and similar).
func IsVoid(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode && voidTags[domutil.NodeName(n)]
}

// Trim strips leading and trailing spaces, tabs, carriage returns, and
// newlines. Rule sets use it where converted content must not carry its
// own boundary whitespace.
func Trim(s string) string {
	return strings.Trim(s, " \r\n\t")
}
