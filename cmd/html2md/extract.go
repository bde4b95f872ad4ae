package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Sentinel errors for extraction operations.
var (
	ErrNoSelection = errors.New("selector matched no elements")
	ErrNoContent   = errors.New("no content container found")
)

// noiseSelectors are HTML elements removed before main-content extraction.
// These contribute no meaningful content to the converted Markdown.
// Images are kept: they convert to Markdown image syntax.
var noiseSelectors = []string{
	"script", "style", "noscript",
	"nav", "footer", "header", "aside",
	"iframe", "video", "audio",
	"svg", "canvas",
	"form", "button", "input", "select", "textarea",
	".sidebar", ".menu", ".navigation", ".ads", ".advertisement",
}

// extractSelection returns the first element matching selector as an HTML fragment.
func extractSelection(htmlSrc, selector string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlSrc))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	sel := doc.Find(selector)
	if sel.Length() == 0 {
		return "", fmt.Errorf("%w: %q", ErrNoSelection, selector)
	}

	fragment, err := goquery.OuterHtml(sel.First())
	if err != nil {
		return "", fmt.Errorf("serializing selection: %w", err)
	}

	return fragment, nil
}

// extractMain strips noise elements and returns the main content container
// as an HTML fragment. Containers are tried in priority order:
// <main> is the most semantically correct, then <article>, then <body>.
func extractMain(htmlSrc string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlSrc))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	// Remove noise elements first (operates on the whole document).
	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	var content *goquery.Selection
	for _, tag := range []string{"main", "article", "body"} {
		sel := doc.Find(tag)
		if sel.Length() > 0 {
			content = sel.First()
			break
		}
	}

	if content == nil {
		return "", ErrNoContent
	}

	fragment, err := goquery.OuterHtml(content)
	if err != nil {
		return "", fmt.Errorf("serializing content: %w", err)
	}

	return fragment, nil
}
