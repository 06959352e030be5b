package target

import (
	"errors"

	"github.com/shapestone/shape-target/internal/scanner"
)

// Classify reports which of the four request-target forms s matches.
//
// s must be the target token only, already isolated from the request line:
// no surrounding whitespace, no method or version. Classification is a
// single forward scan, O(n) in the length of s, with no allocation.
//
// The scheme:// shape takes precedence over a host:port reading, so "a://b"
// is AbsoluteForm, never AuthorityForm.
//
// On failure the returned error is a *ParseError whose Kind distinguishes
// empty input from unrecognized input.
func Classify(s string) (Form, error) {
	res, err := scanner.Scan(s)
	if err != nil {
		return 0, wrapScanError(err)
	}
	return formOf(res.Form), nil
}

// ClassifyBytes is Classify for a byte slice input.
func ClassifyBytes(b []byte) (Form, error) {
	return Classify(string(b))
}

// ClassifyTarget classifies s and additionally extracts the components the
// matched form makes available: Scheme for absolute-form, Host and Port for
// authority-form. See Target for the extraction guarantees.
func ClassifyTarget(s string) (*Target, error) {
	res, err := scanner.Scan(s)
	if err != nil {
		return nil, wrapScanError(err)
	}
	return &Target{
		Form:   formOf(res.Form),
		Raw:    s,
		Scheme: res.Scheme,
		Host:   res.Host,
		Port:   res.Port,
	}, nil
}

// formOf converts the scanner's internal form tag to the public one.
func formOf(f scanner.Form) Form {
	switch f {
	case scanner.Origin:
		return OriginForm
	case scanner.Absolute:
		return AbsoluteForm
	case scanner.Authority:
		return AuthorityForm
	case scanner.Asterisk:
		return AsteriskForm
	default:
		// The scanner only produces the four forms above.
		panic("target: unknown scanner form")
	}
}

// wrapScanError converts a scanner error into a *ParseError.
func wrapScanError(err error) error {
	if errors.Is(err, scanner.ErrEmpty) {
		return newParseError(KindEmpty, "empty request target")
	}
	var inv *scanner.InvalidError
	if errors.As(err, &inv) {
		return newParseErrorAtPos(KindInvalid, inv.Reason, inv.Pos)
	}
	return newParseError(KindInvalid, err.Error())
}
