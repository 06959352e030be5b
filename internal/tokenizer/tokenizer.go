package tokenizer

import (
	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// NewTokenizer creates a tokenizer for HTTP request targets.
// Targets are single short tokens, so the matchers work at the character level:
// 1. "://" (scheme separator, highest priority — it must win over ":" and "/")
// 2. "*" (asterisk-form literal)
// 3. "/" (path separator)
// 4. ":" (host/port separator)
// 5. Generic text (scheme, host, path segments, etc.)
//
// Note: the default whitespace skipper is not used because a target may not
// carry surrounding whitespace and authority-form tolerates interior spaces,
// so whitespace is semantically significant and flows into text tokens.
func NewTokenizer() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		// Scheme separator first ("://" must not decompose into ":" "/" "/")
		tokenizer.StringMatcherFunc(TokenSchemeSep, "://"),

		// Asterisk-form literal
		tokenizer.StringMatcherFunc(TokenAsterisk, "*"),

		// Path separator
		tokenizer.StringMatcherFunc(TokenSlash, "/"),

		// Host/port separator
		tokenizer.StringMatcherFunc(TokenColon, ":"),

		// Generic text token (everything else until a structural character)
		TextMatcher(),
	)
}

// NewTokenizerWithStream creates a target tokenizer using a pre-configured stream.
func NewTokenizerWithStream(stream tokenizer.Stream) tokenizer.Tokenizer {
	tok := NewTokenizer()
	tok.InitializeFromStream(stream)
	return tok
}

// TextMatcher matches any sequence of characters until a structural
// character ("/", ":", "*") or EOS. Interior whitespace is part of the text.
func TextMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune

		for {
			r, ok := stream.PeekChar()
			if !ok {
				break
			}
			if r == '/' || r == ':' || r == '*' {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}

		if len(value) == 0 {
			return nil
		}

		return tokenizer.NewToken(TokenText, value)
	}
}
