package html2md

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/alnah/go-html2md/internal/domutil"
)

// composeRules builds the ordered registry for one converter:
// caller rules, then the GFM set when enabled, then the base set.
// Earlier entries take precedence.
func composeRules(cfg converterConfig) []Rule {
	rules := make([]Rule, 0, len(cfg.rules)+32)
	rules = append(rules, cfg.rules...)
	if cfg.gfm {
		rules = append(rules, gfmRules(cfg.detectLanguage)...)
	}
	rules = append(rules, baseRules()...)
	return rules
}

// validateRules rejects malformed rules before any conversion runs, so a
// configuration error can never surface mid-document.
func validateRules(rules []Rule) error {
	for i, r := range rules {
		if r.Filter.kind == filterInvalid {
			return fmt.Errorf("%w: rule %d", ErrInvalidFilter, i)
		}
		if r.Replacement == nil {
			return fmt.Errorf("%w: rule %d", ErrNilReplacement, i)
		}
	}
	return nil
}

// matches reports whether the rule's filter selects n.
func matches(r Rule, n *html.Node, ctx *Context) bool {
	switch r.Filter.kind {
	case filterTag:
		return domutil.NodeName(n) == r.Filter.tag
	case filterTagSet:
		return r.Filter.tags[domutil.NodeName(n)]
	case filterPredicate:
		return r.Filter.pred(n, ctx)
	default:
		return false
	}
}

// findRule scans the registry in order and returns the first rule whose
// filter matches n.
func findRule(rules []Rule, n *html.Node, ctx *Context) (Rule, bool) {
	for _, r := range rules {
		if matches(r, n, ctx) {
			return r, true
		}
	}
	return Rule{}, false
}
