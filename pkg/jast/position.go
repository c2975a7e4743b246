package jast

// SourceRange represents a byte range in the source content.
type SourceRange struct {
	// StartOffset is the byte index where the range begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the range ends (exclusive).
	EndOffset int
}

// SourcePosition represents a range in terms of 1-based line/column positions.
type SourcePosition struct {
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}

// SourceRange returns the byte range for this node.
// Returns an empty range if the node has no associated file or tokens.
func (n *Node) SourceRange() SourceRange {
	if n.File == nil || n.FirstToken < 0 || n.LastToken < 0 {
		return SourceRange{}
	}

	tokens := n.File.Tokens
	if n.FirstToken >= len(tokens) || n.LastToken >= len(tokens) {
		return SourceRange{}
	}

	start := tokens[n.FirstToken].StartOffset
	end := tokens[n.LastToken].EndOffset

	return SourceRange{StartOffset: start, EndOffset: end}
}

// SourcePosition returns the line/column range for this node.
// Returns a zero position if the node has no associated file.
func (n *Node) SourcePosition() SourcePosition {
	if n.File == nil || n.FirstToken < 0 {
		return SourcePosition{}
	}

	r := n.SourceRange()

	startLine, startCol := n.File.LineAt(r.StartOffset)
	endLine, endCol := n.File.LineAt(r.EndOffset)

	return SourcePosition{
		StartLine:   startLine,
		StartColumn: startCol,
		EndLine:     endLine,
		EndColumn:   endCol,
	}
}

// Text returns the source text for this node.
// Returns nil if the node has no associated file.
func (n *Node) Text() []byte {
	if n.File == nil {
		return nil
	}

	r := n.SourceRange()
	if r.StartOffset < 0 || r.EndOffset > len(n.File.Content) {
		return nil
	}

	return n.File.Content[r.StartOffset:r.EndOffset]
}
