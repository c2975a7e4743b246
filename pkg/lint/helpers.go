package lint

import (
	"bytes"
	"unicode/utf8"

	"github.com/tkruer/jfmt/pkg/jast"
)

// Node query helpers.

// Imports returns all import declaration nodes in the compilation unit.
func Imports(root *jast.Node) []*jast.Node {
	return jast.FindByKind(root, jast.NodeImportDecl)
}

// EmptyStatements returns all empty statement nodes in the compilation unit.
func EmptyStatements(root *jast.Node) []*jast.Node {
	return jast.FindByKind(root, jast.NodeEmptyStatement)
}

// TypeDecls returns all type declaration nodes in the compilation unit.
func TypeDecls(root *jast.Node) []*jast.Node {
	return jast.FindByKind(root, jast.NodeTypeDecl)
}

// PackageDecl returns the package declaration node, or nil if absent.
func PackageDecl(root *jast.Node) *jast.Node {
	return jast.FindFirst(root, func(n *jast.Node) bool {
		return n.Kind == jast.NodePackageDecl
	})
}

// Line-based helpers.

// LineContent returns the content of the specified 1-based line number,
// excluding the newline. Returns nil if the line number is out of range.
func LineContent(file *jast.FileSnapshot, lineNum int) []byte {
	if file == nil || lineNum < 1 || lineNum > len(file.Lines) {
		return nil
	}
	line := file.Lines[lineNum-1]
	return file.Content[line.StartOffset:line.NewlineStart]
}

// LineLength returns the byte length of the specified 1-based line
// (excluding newline). Returns 0 if the line number is out of range.
func LineLength(file *jast.FileSnapshot, lineNum int) int {
	if file == nil || lineNum < 1 || lineNum > len(file.Lines) {
		return 0
	}
	line := file.Lines[lineNum-1]
	return line.NewlineStart - line.StartOffset
}

// LineLengthRunes returns the length of the specified 1-based line in
// characters rather than bytes.
func LineLengthRunes(file *jast.FileSnapshot, lineNum int) int {
	return utf8.RuneCount(LineContent(file, lineNum))
}

// LeadingWhitespace returns the run of leading spaces and tabs on a line
// and the byte offset where it starts. Returns (nil, -1) if the line is
// out of range.
func LeadingWhitespace(file *jast.FileSnapshot, lineNum int) ([]byte, int) {
	if file == nil || lineNum < 1 || lineNum > len(file.Lines) {
		return nil, -1
	}
	line := file.Lines[lineNum-1]
	content := file.Content[line.StartOffset:line.NewlineStart]

	end := 0
	for end < len(content) && (content[end] == ' ' || content[end] == '\t') {
		end++
	}
	return content[:end], line.StartOffset
}

// IsBlankLine returns true if the line contains only whitespace.
func IsBlankLine(file *jast.FileSnapshot, lineNum int) bool {
	content := LineContent(file, lineNum)
	return len(bytes.TrimSpace(content)) == 0
}

// OffsetForColumn returns the byte offset of the rune at 1-based character
// column col on the given line. Columns past the end map to the line end.
func OffsetForColumn(file *jast.FileSnapshot, lineNum, col int) int {
	if file == nil || lineNum < 1 || lineNum > len(file.Lines) {
		return -1
	}
	line := file.Lines[lineNum-1]
	content := file.Content[line.StartOffset:line.NewlineStart]

	offset := 0
	for n := 1; n < col && offset < len(content); n++ {
		_, size := utf8.DecodeRune(content[offset:])
		offset += size
	}
	return line.StartOffset + offset
}
