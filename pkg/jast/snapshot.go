// Package jast provides the core Java source representation for jfmt.
// It defines a lossless, immutable view of a Java file including:
// - FileSnapshot: the complete file representation
// - Token stream: every byte classified
// - Syntax nodes: structural representation referencing token spans
package jast

// FileSnapshot is an immutable, lossless view of a Java file at a specific time.
// It holds the raw content, line metadata, token stream, and syntax tree root.
type FileSnapshot struct {
	// Path is the file path (may be empty for in-memory content).
	Path string

	// Content is the full file bytes.
	Content []byte

	// Lines contains metadata for each line in the file.
	Lines []LineInfo

	// Tokens is the full token stream covering every byte.
	Tokens []Token

	// Root is the syntax tree root node (CompilationUnit).
	Root *Node
}

// LineInfo holds metadata for a single line in a file.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline (e.g., last line), this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of file).
	EndOffset int
}

// NewFileSnapshot creates a new FileSnapshot from content.
// It builds the line index but does not tokenize or parse (that requires a Parser).
func NewFileSnapshot(path string, content []byte) *FileSnapshot {
	return &FileSnapshot{
		Path:    path,
		Content: content,
		Lines:   BuildLines(content),
		Tokens:  nil,
		Root:    nil,
	}
}

// SetFile assigns the given snapshot as the File back-reference on every
// node reachable from root.
func SetFile(root *Node, file *FileSnapshot) {
	if root == nil {
		return
	}
	root.File = file
	for child := root.FirstChild; child != nil; child = child.Next {
		SetFile(child, file)
	}
}
