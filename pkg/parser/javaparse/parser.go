// Package javaparse provides a Parser implementation for Java source.
//
// The parser is deliberately shallow: it tokenizes every byte of the file
// and builds a structural tree of declarations, brace-nested blocks, and
// statement boundaries. Expression structure is not modeled. This is enough
// for the rules, which work from the token stream, the line index, and the
// declaration/statement skeleton.
package javaparse

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tkruer/jfmt/pkg/jast"
)

// Parser implements lint.Parser for Java source files.
type Parser struct{}

// New creates a new Java parser.
func New() *Parser {
	return &Parser{}
}

// Parse converts raw Java source bytes into a fully-populated FileSnapshot.
//
// The method:
//  1. Checks for context cancellation.
//  2. Builds a FileSnapshot shell with path, content, and lines.
//  3. Tokenizes the content.
//  4. Builds the structural jast.Node tree from the token stream.
//  5. Sets File back-references throughout the tree.
//  6. Validates the token stream.
//
// Returns nil and an error if the token stream is invalid or the context
// is cancelled.
func (p *Parser) Parse(ctx context.Context, path string, content []byte) (*jast.FileSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	snapshot := &jast.FileSnapshot{
		Path:    path,
		Content: copyContent(content),
		Lines:   jast.BuildLines(content),
	}

	snapshot.Tokens = Tokenize(snapshot.Content)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	snapshot.Root = buildTree(snapshot.Content, snapshot.Tokens)

	jast.SetFile(snapshot.Root, snapshot)

	if !jast.ValidateTokens(snapshot.Tokens, len(snapshot.Content)) {
		return nil, errors.New("invalid token stream: tokens do not cover content")
	}

	return snapshot, nil
}

// treeBuilder assembles the structural tree from the token stream.
//
// It tracks a stack of open container nodes (the compilation unit and any
// brace-nested blocks), the first token of the statement currently being
// accumulated, and the paren nesting depth. Semicolons inside parentheses
// (for headers, lambdas in arguments) never terminate a statement.
type treeBuilder struct {
	content []byte
	tokens  []jast.Token

	stack        []*Node
	pendingStart int
	parenDepth   int
	lastSig      int
}

// Node is a type alias for jast.Node for convenience.
type Node = jast.Node

// buildTree constructs the structural tree for a token stream.
func buildTree(content []byte, tokens []jast.Token) *Node {
	root := &Node{
		Kind:       jast.NodeCompilationUnit,
		FirstToken: -1,
		LastToken:  -1,
	}
	if len(tokens) > 0 {
		root.FirstToken = 0
		root.LastToken = len(tokens) - 1
	}

	b := &treeBuilder{
		content:      content,
		tokens:       tokens,
		stack:        []*Node{root},
		pendingStart: -1,
		lastSig:      -1,
	}
	b.build()

	return root
}

// build runs the structural pass over the token stream.
func (b *treeBuilder) build() {
	for i, tok := range b.tokens {
		if tok.IsTrivia() {
			continue
		}

		switch tok.Kind {
		case jast.TokLParen:
			b.parenDepth++
			b.markPending(i)
		case jast.TokRParen:
			if b.parenDepth > 0 {
				b.parenDepth--
			}
			b.markPending(i)
		case jast.TokLBrace:
			if b.parenDepth == 0 {
				b.openBlock(i)
			} else {
				b.markPending(i)
			}
		case jast.TokRBrace:
			if b.parenDepth == 0 {
				b.closeBlock(i)
			} else {
				b.markPending(i)
			}
		case jast.TokSemicolon:
			if b.parenDepth == 0 {
				b.closeStatement(i)
			} else {
				b.markPending(i)
			}
		default:
			b.markPending(i)
		}

		b.lastSig = i
	}

	b.finish()
}

// markPending records the first token of the statement being accumulated.
func (b *treeBuilder) markPending(i int) {
	if b.pendingStart < 0 {
		b.pendingStart = i
	}
}

// top returns the currently open container node.
func (b *treeBuilder) top() *Node {
	return b.stack[len(b.stack)-1]
}

// openBlock opens a Block node at the '{' token. If a statement header was
// accumulating (a type declaration's modifiers, an if/for/while header, an
// array initializer's left-hand side) it becomes the block's parent node.
func (b *treeBuilder) openBlock(i int) {
	if b.pendingStart >= 0 {
		kind := jast.NodeStatement
		if b.pendingIsTypeDecl(i) {
			kind = jast.NodeTypeDecl
		}
		header := &Node{
			Kind:       kind,
			FirstToken: b.pendingStart,
			LastToken:  -1,
		}
		b.top().AppendChild(header)
		b.stack = append(b.stack, header)
		b.pendingStart = -1
	}

	block := &Node{
		Kind:       jast.NodeBlock,
		FirstToken: i,
		LastToken:  -1,
	}
	b.top().AppendChild(block)
	b.stack = append(b.stack, block)
}

// closeBlock closes the innermost open Block at the '}' token, along with
// any statement or type declaration that owns it. A statement header stays
// open when the block is followed by a continuation keyword (else, catch,
// finally, the while of a do-while).
func (b *treeBuilder) closeBlock(i int) {
	// A stray pending run inside the block becomes a raw node.
	b.flushPending(jast.NodeRaw)

	if len(b.stack) == 1 || b.top().Kind != jast.NodeBlock {
		// Unbalanced '}'. Tolerated.
		return
	}

	block := b.top()
	block.LastToken = i
	b.stack = b.stack[:len(b.stack)-1]

	for len(b.stack) > 1 {
		header := b.top()
		if (header.Kind != jast.NodeStatement && header.Kind != jast.NodeTypeDecl) || header.LastToken >= 0 {
			break
		}
		if header.Kind == jast.NodeStatement && b.blockContinues(i) {
			break
		}
		header.LastToken = i
		b.stack = b.stack[:len(b.stack)-1]
	}
}

// blockContinues reports whether the significant token after index i keeps
// the enclosing statement open (else, catch, finally, while of do-while).
func (b *treeBuilder) blockContinues(i int) bool {
	for j := i + 1; j < len(b.tokens); j++ {
		tok := b.tokens[j]
		if tok.IsTrivia() {
			continue
		}
		if tok.Kind != jast.TokKeyword {
			return false
		}
		switch string(tok.Text(b.content)) {
		case "else", "catch", "finally", "while":
			return true
		default:
			return false
		}
	}
	return false
}

// closeStatement closes the accumulating statement at the ';' token.
// A ';' with nothing pending is an empty statement.
func (b *treeBuilder) closeStatement(i int) {
	// A statement header left open past its block (do-while, braceless
	// else) ends at this ';'. The pending tokens belong to it.
	if top := b.top(); top.Kind == jast.NodeStatement && top.LastToken < 0 {
		top.LastToken = i
		b.stack = b.stack[:len(b.stack)-1]
		b.pendingStart = -1
		return
	}

	if b.pendingStart < 0 {
		b.top().AppendChild(&Node{
			Kind:       jast.NodeEmptyStatement,
			FirstToken: i,
			LastToken:  i,
		})
		return
	}

	node := &Node{
		Kind:       b.statementKind(),
		FirstToken: b.pendingStart,
		LastToken:  i,
	}
	if node.Kind == jast.NodeImportDecl {
		node.Import = b.parseImportAttrs(b.pendingStart, i)
	}
	b.top().AppendChild(node)
	b.pendingStart = -1
}

// statementKind classifies the pending statement by its leading keyword.
func (b *treeBuilder) statementKind() jast.NodeKind {
	tok := b.tokens[b.pendingStart]
	if tok.Kind != jast.TokKeyword {
		return jast.NodeStatement
	}
	switch string(tok.Text(b.content)) {
	case "package":
		return jast.NodePackageDecl
	case "import":
		return jast.NodeImportDecl
	default:
		return jast.NodeStatement
	}
}

// pendingIsTypeDecl reports whether the pending header tokens before index
// end introduce a type declaration rather than a statement or initializer.
func (b *treeBuilder) pendingIsTypeDecl(end int) bool {
	sawNew := false
	for j := b.pendingStart; j < end; j++ {
		tok := b.tokens[j]
		if tok.Kind != jast.TokKeyword {
			continue
		}
		switch string(tok.Text(b.content)) {
		case "new":
			sawNew = true
		case "class", "interface", "enum", "record":
			return !sawNew
		}
	}
	return false
}

// parseImportAttrs extracts the dotted path and flags from an import
// declaration spanning tokens [start, end].
func (b *treeBuilder) parseImportAttrs(start, end int) *jast.ImportAttrs {
	attrs := &jast.ImportAttrs{}

	var path strings.Builder
	sawImport := false
	for j := start; j <= end && j < len(b.tokens); j++ {
		tok := b.tokens[j]
		if tok.IsTrivia() {
			continue
		}
		text := string(tok.Text(b.content))

		switch tok.Kind {
		case jast.TokKeyword:
			switch text {
			case "import":
				sawImport = true
			case "static":
				if sawImport && path.Len() == 0 {
					attrs.Static = true
				}
			}
		case jast.TokIdent, jast.TokDot, jast.TokStar:
			path.WriteString(text)
		}
	}

	attrs.Path = path.String()
	attrs.Wildcard = strings.HasSuffix(attrs.Path, "*")

	return attrs
}

// flushPending appends any accumulated tokens as a node of the given kind.
// Used for unterminated trailing content.
func (b *treeBuilder) flushPending(kind jast.NodeKind) {
	if b.pendingStart < 0 {
		return
	}
	last := b.lastSig
	if last < b.pendingStart {
		last = b.pendingStart
	}
	b.top().AppendChild(&Node{
		Kind:       kind,
		FirstToken: b.pendingStart,
		LastToken:  last,
	})
	b.pendingStart = -1
}

// finish closes any nodes left open at end of file.
func (b *treeBuilder) finish() {
	b.flushPending(jast.NodeRaw)

	last := len(b.tokens) - 1
	for len(b.stack) > 1 {
		node := b.top()
		if node.LastToken < 0 {
			node.LastToken = last
		}
		b.stack = b.stack[:len(b.stack)-1]
	}
}

// copyContent creates a copy of the content slice to ensure immutability.
func copyContent(content []byte) []byte {
	if content == nil {
		return nil
	}
	cp := make([]byte, len(content))
	copy(cp, content)
	return cp
}
