package target

import "fmt"

// Kind discriminates the two ways classification can fail.
type Kind int

const (
	// KindEmpty means the input had zero length.
	KindEmpty Kind = iota
	// KindInvalid means the input was non-empty but matched none of the
	// four request-target grammars.
	KindInvalid
)

// String returns "empty" or "invalid".
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindInvalid:
		return "invalid"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseError represents a request target that matched none of the four forms.
type ParseError struct {
	Kind     Kind   // empty vs. invalid
	Message  string // human-readable error message
	Position int    // byte offset in input (0 if unknown)
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Position > 0 {
		return fmt.Sprintf("target: parse error at offset %d: %s", e.Position, e.Message)
	}
	return fmt.Sprintf("target: %s", e.Message)
}

func newParseError(kind Kind, msg string) *ParseError {
	return &ParseError{Kind: kind, Message: msg}
}

func newParseErrorAtPos(kind Kind, msg string, pos int) *ParseError {
	return &ParseError{Kind: kind, Message: msg, Position: pos}
}
