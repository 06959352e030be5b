// Package tokenizer provides request-target tokenization using Shape's
// tokenizer framework.
package tokenizer

// Token type constants for request-target tokens.
// A target is a short single-line token, so the tokens represent the
// structural characters that discriminate between the four target forms.
const (
	TokenAsterisk  = "Asterisk"  // literal *
	TokenSchemeSep = "SchemeSep" // :// separating scheme from authority
	TokenSlash     = "Slash"     // / path or authority boundary
	TokenColon     = "Colon"     // : host/port separator
	TokenText      = "Text"      // everything between structural characters

	// Special
	TokenEOF = "EOF" // End of input
)
