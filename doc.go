// Package html2md converts HTML documents to Markdown.
//
// # Quick Start
//
// Create a converter and feed it HTML:
//
//	conv, err := html2md.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	md, err := conv.Convert("<p>Hello <strong>World</strong></p>")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(md) // Hello **World**
//
// For one-off conversions the package-level Convert does the same in one
// call. A Converter's rule registry is immutable after construction, so a
// single Converter is safe to share between goroutines; all per-call
// state lives inside Convert.
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Input escaping (literal "1. " runs are defused so they cannot be
//     re-read as ordered-list markers)
//  2. HTML parsing via x/net/html, with the parser's own error recovery
//  3. Whitespace collapsing over the parsed tree
//  4. Bottom-up rule application: every element is matched against the
//     rule registry and rendered from its already-rendered children
//  5. Output cleanup (surrounding whitespace stripped, blank-line runs
//     capped at one blank line)
//
// # Rules
//
// A Rule pairs a Filter with a replacement function. Filters come in
// three shapes: Tag("p") for one tag, Tags("em", "i") for a set, and
// Match(pred) for arbitrary predicates. Rules are consulted in order and
// the first match wins.
//
// The built-in registry covers the conventional tags and ends in two
// catch-alls that pass unknown markup through verbatim, so every element
// converts to something. WithGFM layers GitHub Flavored Markdown rules
// (tables, strikethrough, task lists, fenced code) over the base set, and
// WithRules prepends caller rules with the highest precedence:
//
//	md, err := html2md.Convert(input,
//	    html2md.WithGFM(),
//	    html2md.WithRules(html2md.Rule{
//	        Filter: html2md.Tag("mark"),
//	        Replacement: func(content string, node *html.Node, ctx *html2md.Context) string {
//	            return "==" + content + "=="
//	        },
//	    }),
//	)
//
// Replacement functions receive a Context with the helpers rule authors
// need: block/void classification, trimming, shallow outer-HTML
// serialization, and the Markdown already computed for child elements.
//
// # Code Block Languages
//
// With WithGFM, fenced code blocks take their language from the usual
// language-* class conventions. WithLanguageDetection additionally
// guesses a language for unlabeled blocks by analyzing the code itself.
package html2md
