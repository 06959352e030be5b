// Package scanner implements a single-pass classifier for HTTP request
// targets. It scans the target string directly without building a URI.
package scanner

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Form identifies one of the four request-target forms of RFC 9112 §3.2.
type Form int

const (
	// Origin is an absolute path, e.g. "/api/users?q=foo".
	Origin Form = iota
	// Absolute is a full URI with a scheme, e.g. "https://example.com".
	Absolute
	// Authority is a bare host[:port] token used with CONNECT.
	Authority
	// Asterisk is the literal "*" used with server-wide OPTIONS.
	Asterisk
)

// String returns the RFC 9112 name of the form.
func (f Form) String() string {
	switch f {
	case Origin:
		return "origin-form"
	case Absolute:
		return "absolute-form"
	case Authority:
		return "authority-form"
	case Asterisk:
		return "asterisk-form"
	default:
		return fmt.Sprintf("Form(%d)", int(f))
	}
}

// Result holds the classified form plus best-effort extracted components.
// Extraction never affects classification: Scheme is set only for
// absolute-form, Host and Port only for authority-form.
type Result struct {
	Form   Form
	Scheme string
	Host   string
	Port   string
}

// ErrEmpty is returned for a zero-length target.
var ErrEmpty = errors.New("empty request target")

// InvalidError reports a non-empty target that matches none of the four forms.
type InvalidError struct {
	Pos    int    // byte offset of the offending character
	Reason string // human-readable description
}

// Error implements the error interface.
func (e *InvalidError) Error() string {
	return fmt.Sprintf("invalid request target at offset %d: %s", e.Pos, e.Reason)
}

// Scan classifies s in a single forward pass. It allocates only for the
// extracted components on success; the error paths and the classification
// itself are allocation-free apart from the returned error value.
//
// The grammar boundaries, in match order:
//
//  1. empty input → ErrEmpty
//  2. surrounding whitespace → InvalidError (interior whitespace is left to
//     the forms themselves; authority-form tolerates it)
//  3. exactly "*" → Asterisk
//  4. leading "/" → Origin, rest unvalidated
//  5. first ":" followed by "//" after a valid scheme → Absolute, rest unvalidated
//  6. first ":" not followed by "//" → Authority, provided no "/" follows
//  7. no ":" and no "/" at all → Authority (bare host)
//
// The scheme://  shape wins over host:port when both readings are possible,
// so "a://b" is Absolute, never Authority.
func Scan(s string) (Result, error) {
	if len(s) == 0 {
		return Result{}, ErrEmpty
	}

	if trimmed := strings.TrimSpace(s); len(trimmed) != len(s) {
		pos := 0
		if r, _ := utf8.DecodeRuneInString(s); !unicode.IsSpace(r) {
			pos = len(trimmed)
		}
		return Result{}, &InvalidError{Pos: pos, Reason: "surrounding whitespace in target"}
	}

	if s == "*" {
		return Result{Form: Asterisk}, nil
	}

	if s[0] == '/' {
		return Result{Form: Origin}, nil
	}

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '/':
			return Result{}, &InvalidError{Pos: i, Reason: "slash in non-origin target"}
		case ':':
			if i+2 < len(s) && s[i+1] == '/' && s[i+2] == '/' {
				if !validScheme(s[:i]) {
					return Result{}, &InvalidError{Pos: 0, Reason: "malformed scheme before \"://\""}
				}
				return Result{Form: Absolute, Scheme: strings.ToLower(s[:i])}, nil
			}
			// host:port candidate. Authority-form may not contain a slash
			// anywhere, so "http:/zombo.com" and "a:/b" are rejected here.
			if j := strings.IndexByte(s[i+1:], '/'); j >= 0 {
				return Result{}, &InvalidError{Pos: i + 1 + j, Reason: "slash after authority"}
			}
			host, port := splitHostPort(s)
			return Result{Form: Authority, Host: host, Port: port}, nil
		}
	}

	// No colon, no slash: a bare host.
	return Result{Form: Authority, Host: s}, nil
}

// validScheme reports whether s is an RFC 3986 scheme:
// ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
func validScheme(s string) bool {
	if len(s) == 0 || !isAlpha(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if !isAlpha(c) && !isDigit(c) && c != '+' && c != '-' && c != '.' {
			return false
		}
	}
	return true
}

// splitHostPort splits an authority token at its last colon when the suffix
// is all digits. Anything else (IPv6 literals without a port, non-numeric
// suffixes) keeps the whole token as host. Best-effort only.
func splitHostPort(s string) (host, port string) {
	i := strings.LastIndexByte(s, ':')
	if i < 0 {
		return s, ""
	}
	suffix := s[i+1:]
	if !allDigits(suffix) {
		return s, ""
	}
	return s[:i], suffix
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
