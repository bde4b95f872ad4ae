package html2md

import "errors"

// Sentinel errors for library operations.
var (
	// ErrInvalidFilter reports a rule whose filter is not one of the three
	// recognized shapes (tag, tag set, predicate).
	ErrInvalidFilter = errors.New("rule filter must be Tag, Tags, or Match")

	// ErrNilReplacement reports a rule without a replacement function.
	ErrNilReplacement = errors.New("rule replacement cannot be nil")

	// ErrHTMLParse reports a failure in the underlying HTML parser.
	ErrHTMLParse = errors.New("HTML parsing failed")
)
