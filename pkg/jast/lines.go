package jast

import (
	"bytes"
	"sort"
)

// BuildLines constructs line metadata from file content.
// Both LF and CRLF line endings are recognized; NewlineStart points at the
// first byte of the line terminator so CRLF lines exclude the \r.
func BuildLines(content []byte) []LineInfo {
	if len(content) == 0 {
		return []LineInfo{}
	}

	lines := make([]LineInfo, 0, bytes.Count(content, []byte{'\n'})+1)
	start := 0

	for start <= len(content) {
		rel := bytes.IndexByte(content[start:], '\n')
		if rel < 0 {
			// Final line without a trailing newline, or the empty line
			// after a terminating newline.
			lines = append(lines, LineInfo{
				StartOffset:  start,
				NewlineStart: len(content),
				EndOffset:    len(content),
			})
			break
		}

		nl := start + rel
		term := nl
		if nl > start && content[nl-1] == '\r' {
			term = nl - 1
		}

		lines = append(lines, LineInfo{
			StartOffset:  start,
			NewlineStart: term,
			EndOffset:    nl + 1,
		})
		start = nl + 1
	}

	return lines
}

// LineCount returns the number of lines in the file.
func (f *FileSnapshot) LineCount() int {
	return len(f.Lines)
}

// LineAt converts a byte offset to 1-based line and column numbers.
// Column counts bytes, not runes, from the line start.
// Returns (0, 0) if the offset is out of range.
func (f *FileSnapshot) LineAt(offset int) (int, int) {
	if offset < 0 || len(f.Lines) == 0 {
		return 0, 0
	}

	// Offsets at or past the end of content map onto the last line so
	// end-exclusive spans still render a position.
	if offset >= len(f.Content) {
		last := len(f.Lines) - 1
		return last + 1, offset - f.Lines[last].StartOffset + 1
	}

	idx := sort.Search(len(f.Lines), func(i int) bool {
		return f.Lines[i].EndOffset > offset
	})
	if idx == len(f.Lines) {
		idx--
	}

	if offset < f.Lines[idx].StartOffset {
		return 0, 0
	}

	return idx + 1, offset - f.Lines[idx].StartOffset + 1
}

// Offset converts 1-based line and column numbers to a byte offset.
// Returns (offset, true) on success, or (0, false) if out of range.
// Column may point one past the last byte of the line.
func (f *FileSnapshot) Offset(line, col int) (int, bool) {
	if line < 1 || line > len(f.Lines) || col < 1 {
		return 0, false
	}

	info := f.Lines[line-1]
	offset := info.StartOffset + col - 1
	if offset > info.EndOffset {
		return 0, false
	}

	return offset, true
}

// LineContent returns the content of a 1-based line number, excluding the
// line terminator. Returns nil if the line number is out of range.
func (f *FileSnapshot) LineContent(line int) []byte {
	if line < 1 || line > len(f.Lines) {
		return nil
	}

	info := f.Lines[line-1]
	return f.Content[info.StartOffset:info.NewlineStart]
}
