package jast

// TokenKind classifies the type of a token in the Java source.
type TokenKind uint16

// Token kinds cover every byte in the source. Literal and comment kinds
// exist so that punctuation inside them is never mistaken for syntax.
const (
	TokWhitespace TokenKind = iota
	TokNewline

	TokLineComment  // // ... to end of line
	TokBlockComment // /* ... */ (including javadoc)
	TokString       // "..." string literal
	TokTextBlock    // """...""" text block
	TokChar         // '...' char literal
	TokNumber       // numeric literal
	TokIdent        // identifier
	TokKeyword      // reserved word (package, import, class, for, ...)
	TokAnnotation   // '@' introducing an annotation

	TokSemicolon // ';'
	TokLBrace    // '{'
	TokRBrace    // '}'
	TokLParen    // '('
	TokRParen    // ')'
	TokDot       // '.'
	TokStar      // '*'
	TokPunct     // any other operator or separator byte run

	TokOther
)

// Token represents a classified span of bytes in the Java source.
// Tokens are contiguous and non-overlapping, covering [0, len(Content)).
type Token struct {
	// Kind classifies what this token represents.
	Kind TokenKind

	// StartOffset is the byte index where this token begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where this token ends (exclusive).
	EndOffset int
}

// Text returns the source text of this token from the given content.
func (t Token) Text(content []byte) []byte {
	if t.StartOffset < 0 || t.EndOffset > len(content) || t.StartOffset > t.EndOffset {
		return nil
	}
	return content[t.StartOffset:t.EndOffset]
}

// Len returns the length of this token in bytes.
func (t Token) Len() int {
	return t.EndOffset - t.StartOffset
}

// IsEmpty returns true if this token has zero length.
func (t Token) IsEmpty() bool {
	return t.StartOffset == t.EndOffset
}

// IsTrivia returns true for tokens that carry no syntactic weight
// (whitespace, newlines, comments).
func (t Token) IsTrivia() bool {
	switch t.Kind {
	case TokWhitespace, TokNewline, TokLineComment, TokBlockComment:
		return true
	default:
		return false
	}
}

// ValidateTokens checks that a token slice is valid:
// - Tokens are contiguous and non-overlapping.
// - Tokens cover the full content range [0, contentLen).
// Returns true if valid, false otherwise.
func ValidateTokens(tokens []Token, contentLen int) bool {
	if len(tokens) == 0 {
		return contentLen == 0
	}

	// First token must start at 0.
	if tokens[0].StartOffset != 0 {
		return false
	}

	// Last token must end at contentLen.
	if tokens[len(tokens)-1].EndOffset != contentLen {
		return false
	}

	// Check contiguity.
	for i := 1; i < len(tokens); i++ {
		if tokens[i].StartOffset != tokens[i-1].EndOffset {
			return false
		}
	}

	return true
}
