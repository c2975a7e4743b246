package javaparse

import (
	"github.com/tkruer/jfmt/pkg/jast"
)

// tokenizer performs a single-pass tokenization of Java source content.
// It produces a contiguous, non-overlapping token stream covering [0, len(content)).
// Literal and comment spans are single tokens so punctuation inside them
// never reaches the structural layer.
type tokenizer struct {
	content []byte
	tokens  []jast.Token
	pos     int
}

// Tokenize performs a single-pass tokenization of the given content.
// Returns a slice of tokens that are contiguous, non-overlapping, and cover [0, len(content)).
func Tokenize(content []byte) []jast.Token {
	if len(content) == 0 {
		return nil
	}

	const initialCapacityDivisor = 4 // reasonable initial capacity estimate
	tok := &tokenizer{
		content: content,
		tokens:  make([]jast.Token, 0, len(content)/initialCapacityDivisor),
		pos:     0,
	}

	tok.tokenize()

	return tok.tokens
}

// tokenize performs the main tokenization loop.
func (t *tokenizer) tokenize() {
	for t.pos < len(t.content) {
		ch := t.content[t.pos]

		switch {
		case ch == '\n' || ch == '\r':
			t.consumeNewline()
		case ch == ' ' || ch == '\t' || ch == '\f':
			t.consumeWhitespace()
		case ch == '/':
			t.consumeSlash()
		case ch == '"':
			t.consumeStringOrTextBlock()
		case ch == '\'':
			t.consumeCharLiteral()
		case isDigit(ch):
			t.consumeNumber()
		case isIdentStart(ch):
			t.consumeIdentOrKeyword()
		case ch == '@':
			t.emitSingle(jast.TokAnnotation)
		case ch == ';':
			t.emitSingle(jast.TokSemicolon)
		case ch == '{':
			t.emitSingle(jast.TokLBrace)
		case ch == '}':
			t.emitSingle(jast.TokRBrace)
		case ch == '(':
			t.emitSingle(jast.TokLParen)
		case ch == ')':
			t.emitSingle(jast.TokRParen)
		case ch == '.':
			t.consumeDotOrNumber()
		case ch == '*':
			t.emitSingle(jast.TokStar)
		case isPunct(ch):
			t.consumePunctRun()
		default:
			t.emitSingle(jast.TokOther)
		}
	}
}

// consumeNewline consumes a newline (LF or CRLF).
func (t *tokenizer) consumeNewline() {
	start := t.pos

	switch t.content[t.pos] {
	case '\r':
		t.pos++
		if t.pos < len(t.content) && t.content[t.pos] == '\n' {
			t.pos++
		}
	case '\n':
		t.pos++
	default:
		return
	}

	t.emit(jast.TokNewline, start, t.pos)
}

// consumeWhitespace consumes a run of horizontal whitespace.
func (t *tokenizer) consumeWhitespace() {
	start := t.pos
	for t.pos < len(t.content) {
		ch := t.content[t.pos]
		if ch != ' ' && ch != '\t' && ch != '\f' {
			break
		}
		t.pos++
	}
	t.emit(jast.TokWhitespace, start, t.pos)
}

// consumeSlash handles '/': a line comment, a block comment, or an operator.
func (t *tokenizer) consumeSlash() {
	if t.pos+1 < len(t.content) {
		switch t.content[t.pos+1] {
		case '/':
			t.consumeLineComment()
			return
		case '*':
			t.consumeBlockComment()
			return
		}
	}

	t.emitSingle(jast.TokPunct)
}

// consumeLineComment consumes "//" through end of line (newline excluded).
func (t *tokenizer) consumeLineComment() {
	start := t.pos
	t.pos += 2 // consume "//"

	for t.pos < len(t.content) && t.content[t.pos] != '\n' && t.content[t.pos] != '\r' {
		t.pos++
	}

	t.emit(jast.TokLineComment, start, t.pos)
}

// consumeBlockComment consumes "/*" through the matching "*/".
// An unterminated comment runs to end of file.
func (t *tokenizer) consumeBlockComment() {
	start := t.pos
	t.pos += 2 // consume "/*"

	for t.pos < len(t.content) {
		if t.content[t.pos] == '*' && t.pos+1 < len(t.content) && t.content[t.pos+1] == '/' {
			t.pos += 2
			break
		}
		t.pos++
	}

	t.emit(jast.TokBlockComment, start, t.pos)
}

// consumeStringOrTextBlock dispatches on `"""` (text block) vs `"` (string).
func (t *tokenizer) consumeStringOrTextBlock() {
	if t.pos+2 < len(t.content) && t.content[t.pos+1] == '"' && t.content[t.pos+2] == '"' {
		t.consumeTextBlock()
		return
	}
	t.consumeStringLiteral()
}

// consumeTextBlock consumes a `"""..."""` text block, which may span lines.
// An unterminated block runs to end of file.
func (t *tokenizer) consumeTextBlock() {
	start := t.pos
	t.pos += 3 // consume opening `"""`

	for t.pos < len(t.content) {
		ch := t.content[t.pos]
		if ch == '\\' && t.pos+1 < len(t.content) {
			t.pos += 2
			continue
		}
		if ch == '"' && t.pos+2 < len(t.content) && t.content[t.pos+1] == '"' && t.content[t.pos+2] == '"' {
			t.pos += 3
			break
		}
		t.pos++
	}
	if t.pos > len(t.content) {
		t.pos = len(t.content)
	}

	t.emit(jast.TokTextBlock, start, t.pos)
}

// consumeStringLiteral consumes a `"..."` string literal.
// An unterminated literal ends at the newline.
func (t *tokenizer) consumeStringLiteral() {
	start := t.pos
	t.pos++ // consume opening '"'

	for t.pos < len(t.content) {
		ch := t.content[t.pos]
		if ch == '\\' && t.pos+1 < len(t.content) {
			t.pos += 2
			continue
		}
		if ch == '"' {
			t.pos++
			break
		}
		if ch == '\n' || ch == '\r' {
			break
		}
		t.pos++
	}

	t.emit(jast.TokString, start, t.pos)
}

// consumeCharLiteral consumes a `'...'` char literal.
// An unterminated literal ends at the newline.
func (t *tokenizer) consumeCharLiteral() {
	start := t.pos
	t.pos++ // consume opening '\''

	for t.pos < len(t.content) {
		ch := t.content[t.pos]
		if ch == '\\' && t.pos+1 < len(t.content) {
			t.pos += 2
			continue
		}
		if ch == '\'' {
			t.pos++
			break
		}
		if ch == '\n' || ch == '\r' {
			break
		}
		t.pos++
	}

	t.emit(jast.TokChar, start, t.pos)
}

// consumeDotOrNumber handles '.': a member access dot or a leading-dot
// float literal like .5.
func (t *tokenizer) consumeDotOrNumber() {
	if t.pos+1 < len(t.content) && isDigit(t.content[t.pos+1]) {
		t.consumeNumber()
		return
	}
	t.emitSingle(jast.TokDot)
}

// consumeNumber consumes a numeric literal: decimal, hex, octal, binary,
// float, underscored digits, suffixes, and signed exponents.
func (t *tokenizer) consumeNumber() {
	start := t.pos

	for t.pos < len(t.content) {
		ch := t.content[t.pos]
		if isDigit(ch) || isLetter(ch) || ch == '_' {
			t.pos++
			continue
		}
		if ch == '.' && t.pos+1 < len(t.content) && isDigit(t.content[t.pos+1]) {
			t.pos++
			continue
		}
		// Signed exponent: 1e-9, 0x1p+3.
		if (ch == '+' || ch == '-') && t.pos > start {
			prev := t.content[t.pos-1]
			if (prev == 'e' || prev == 'E' || prev == 'p' || prev == 'P') &&
				t.pos+1 < len(t.content) && isDigit(t.content[t.pos+1]) {
				t.pos++
				continue
			}
		}
		break
	}

	t.emit(jast.TokNumber, start, t.pos)
}

// consumeIdentOrKeyword consumes an identifier and classifies reserved words.
func (t *tokenizer) consumeIdentOrKeyword() {
	start := t.pos

	for t.pos < len(t.content) && isIdentPart(t.content[t.pos]) {
		t.pos++
	}

	kind := jast.TokIdent
	if javaKeywords[string(t.content[start:t.pos])] {
		kind = jast.TokKeyword
	}

	t.emit(kind, start, t.pos)
}

// consumePunctRun consumes a run of operator bytes.
// The run stops before any byte with a dedicated handler.
func (t *tokenizer) consumePunctRun() {
	start := t.pos
	for t.pos < len(t.content) && isPunct(t.content[t.pos]) {
		t.pos++
	}
	t.emit(jast.TokPunct, start, t.pos)
}

// emit adds a token to the token list.
func (t *tokenizer) emit(kind jast.TokenKind, start, end int) {
	t.tokens = append(t.tokens, jast.Token{
		Kind:        kind,
		StartOffset: start,
		EndOffset:   end,
	})
}

// emitSingle emits a single-byte token and advances position.
func (t *tokenizer) emitSingle(kind jast.TokenKind) {
	t.emit(kind, t.pos, t.pos+1)
	t.pos++
}

// isDigit returns true if the byte is an ASCII digit.
func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// isLetter returns true if the byte is an ASCII letter.
func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// isIdentStart returns true for bytes that can start a Java identifier.
// Bytes >= 0x80 are treated as identifier bytes so UTF-8 names stay intact.
func isIdentStart(b byte) bool {
	return isLetter(b) || b == '_' || b == '$' || b >= 0x80
}

// isIdentPart returns true for bytes that can continue a Java identifier.
func isIdentPart(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

// isPunct returns true for operator bytes without a dedicated handler.
func isPunct(b byte) bool {
	switch b {
	case '+', '-', '<', '>', '=', '!', '&', '|', '^', '%', '~', '?', ':', ',', '[', ']', '\\', '#', '`':
		return true
	default:
		return false
	}
}

// javaKeywords holds Java reserved words plus the contextual keywords the
// structural layer cares about (var, record, yield, sealed, permits).
var javaKeywords = map[string]bool{
	"abstract": true, "assert": true, "boolean": true, "break": true,
	"byte": true, "case": true, "catch": true, "char": true,
	"class": true, "const": true, "continue": true, "default": true,
	"do": true, "double": true, "else": true, "enum": true,
	"extends": true, "final": true, "finally": true, "float": true,
	"for": true, "goto": true, "if": true, "implements": true,
	"import": true, "instanceof": true, "int": true, "interface": true,
	"long": true, "native": true, "new": true, "package": true,
	"private": true, "protected": true, "public": true, "return": true,
	"short": true, "static": true, "strictfp": true, "super": true,
	"switch": true, "synchronized": true, "this": true, "throw": true,
	"throws": true, "transient": true, "try": true, "void": true,
	"volatile": true, "while": true,
	"true": true, "false": true, "null": true,
	"var": true, "record": true, "yield": true, "sealed": true, "permits": true,
}
