package target

import (
	"fmt"
	"strings"

	"github.com/shapestone/shape-target/internal/tokenizer"
)

// ClassifyLenient performs best-effort classification of a request target.
// It never returns an error — instead it repairs what it can and reports
// every repair as a warning.
//
// The lenient classifier additionally accepts:
//   - Surrounding whitespace (trimmed, with a warning).
//   - Malformed schemes before "://" (e.g. "1a://b"), classified as
//     absolute-form.
//   - Slashes in non-origin targets (e.g. "http:/zombo.com"), classified as
//     origin-form on the grounds that a path is present.
//
// The returned Result has a nil Target only when nothing at all could be
// recovered (empty or all-whitespace input).
func ClassifyLenient(input string) *Result {
	result := &Result{}

	s := input
	if trimmed := strings.TrimSpace(s); trimmed != s {
		result.Warnings = append(result.Warnings, "surrounding whitespace trimmed from target")
		s = trimmed
	}

	if s == "" {
		result.Warnings = append(result.Warnings, "empty request target")
		return result
	}

	t, err := ClassifyTarget(s)
	if err == nil {
		result.Target = t
		return result
	}

	form, warning := recoverForm(s)
	result.Warnings = append(result.Warnings, warning)
	result.Target = &Target{Form: form, Raw: s}
	return result
}

// recoverForm picks the nearest form for a target the strict grammar
// rejects, based on which structural tokens it contains.
func recoverForm(s string) (Form, string) {
	tok := tokenizer.NewTokenizer()
	tok.Initialize(s)
	tokens, _ := tok.Tokenize()

	for _, tk := range tokens {
		if tk.Kind() == tokenizer.TokenSchemeSep {
			return AbsoluteForm, fmt.Sprintf("malformed scheme in %q, treating target as absolute-form", s)
		}
	}
	for _, tk := range tokens {
		if tk.Kind() == tokenizer.TokenSlash {
			return OriginForm, fmt.Sprintf("target %q does not begin with \"/\", treating as origin-form", s)
		}
	}
	return AuthorityForm, fmt.Sprintf("unrecognized target %q, treating as authority-form", s)
}
