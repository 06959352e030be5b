// Package target classifies HTTP request targets per RFC 9112 §3.2.
//
// The request target is the second token of an HTTP request line. This
// package determines which of the four grammatical forms it takes — origin,
// absolute, authority or asterisk — with a single-pass scan and no full URI
// parsing, so a request handler can decide how to interpret the rest of the
// request.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by multiple
// goroutines. Classification is a pure computation with no shared mutable
// state. A Decoder is the one exception: it reads from a stream and is not
// safe for concurrent use.
//
// # Classification APIs
//
// The package provides multiple classification paths:
//
//   - Classify/ClassifyBytes/ClassifyTarget - Fast direct classification
//   - Parse/ParseReader - AST-based classification via shape-core
//   - ClassifyLenient - Best-effort classification with warnings
//   - NewDecoder - Streaming io.Reader-based classification
package target

import "fmt"

// Form identifies one of the four request-target forms.
//
// It gives a hint as to how the target should be interpreted but does not
// guarantee the matched string has well-formed syntax beyond the
// discriminating structure.
type Form int

const (
	// OriginForm is an absolute path, e.g. "/r/rust". Used for direct
	// requests targeting a resource on the origin server.
	OriginForm Form = iota
	// AbsoluteForm is a scheme-prefixed URI, e.g. "https://example.com".
	// Required when talking to proxies, but HTTP/1.1 servers must accept it
	// for other requests too.
	AbsoluteForm
	// AuthorityForm is a bare host[:port] token with no scheme or path.
	// Used only with the CONNECT method.
	AuthorityForm
	// AsteriskForm is the exact literal "*". Used only for server-wide
	// OPTIONS requests.
	AsteriskForm
)

// String returns the RFC 9112 name of the form, e.g. "origin-form".
func (f Form) String() string {
	switch f {
	case OriginForm:
		return "origin-form"
	case AbsoluteForm:
		return "absolute-form"
	case AuthorityForm:
		return "authority-form"
	case AsteriskForm:
		return "asterisk-form"
	default:
		return fmt.Sprintf("Form(%d)", int(f))
	}
}

// formFromName maps an RFC 9112 form name back to its Form value.
func formFromName(name string) (Form, bool) {
	switch name {
	case "origin-form":
		return OriginForm, true
	case "absolute-form":
		return AbsoluteForm, true
	case "authority-form":
		return AuthorityForm, true
	case "asterisk-form":
		return AsteriskForm, true
	default:
		return 0, false
	}
}

// Target represents a classified request target.
//
// Scheme, Host and Port are best-effort extractions: Scheme is set only for
// absolute-form targets, Host and Port only for authority-form targets.
// Extraction never affects classification and performs no validation of the
// extracted components.
type Target struct {
	Form   Form   // which of the four forms Raw matched
	Raw    string // the target exactly as supplied
	Scheme string // lowercased scheme for absolute-form ("https")
	Host   string // host (possibly with userinfo) for authority-form
	Port   string // decimal port for authority-form, "" if absent
}

// Result holds the result of lenient classification.
type Result struct {
	Target   *Target  // nil only if no form could be recovered at all
	Warnings []string // non-fatal issues
}
