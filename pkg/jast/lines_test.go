package jast_test

import (
	"testing"

	"github.com/tkruer/jfmt/pkg/jast"
)

func TestBuildLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected []jast.LineInfo
	}{
		{
			name:     "empty content",
			content:  "",
			expected: []jast.LineInfo{},
		},
		{
			name:    "single line no newline",
			content: "int x;",
			expected: []jast.LineInfo{
				{StartOffset: 0, NewlineStart: 6, EndOffset: 6},
			},
		},
		{
			name:    "single line with LF",
			content: "int x;\n",
			expected: []jast.LineInfo{
				{StartOffset: 0, NewlineStart: 6, EndOffset: 7},
				{StartOffset: 7, NewlineStart: 7, EndOffset: 7},
			},
		},
		{
			name:    "single line with CRLF",
			content: "int x;\r\n",
			expected: []jast.LineInfo{
				{StartOffset: 0, NewlineStart: 6, EndOffset: 8},
				{StartOffset: 8, NewlineStart: 8, EndOffset: 8},
			},
		},
		{
			name:    "multiple lines LF",
			content: "aaaaa\nbbbbb\nccccc",
			expected: []jast.LineInfo{
				{StartOffset: 0, NewlineStart: 5, EndOffset: 6},
				{StartOffset: 6, NewlineStart: 11, EndOffset: 12},
				{StartOffset: 12, NewlineStart: 17, EndOffset: 17},
			},
		},
		{
			name:    "only newline",
			content: "\n",
			expected: []jast.LineInfo{
				{StartOffset: 0, NewlineStart: 0, EndOffset: 1},
				{StartOffset: 1, NewlineStart: 1, EndOffset: 1},
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			lines := jast.BuildLines([]byte(testCase.content))

			if len(lines) != len(testCase.expected) {
				t.Fatalf("expected %d lines, got %d", len(testCase.expected), len(lines))
			}

			for i, exp := range testCase.expected {
				got := lines[i]
				if got.StartOffset != exp.StartOffset ||
					got.NewlineStart != exp.NewlineStart ||
					got.EndOffset != exp.EndOffset {
					t.Errorf("line %d: expected %+v, got %+v", i, exp, got)
				}
			}
		})
	}
}

func TestLineAtRoundTrip(t *testing.T) {
	t.Parallel()

	content := []byte("package demo;\n\nclass A {\n\tint x;\n}\n")
	file := jast.NewFileSnapshot("Demo.java", content)

	// Every valid offset must survive offset -> (line, col) -> offset.
	for offset := range len(content) {
		line, col := file.LineAt(offset)
		if line == 0 {
			t.Fatalf("offset %d: LineAt returned invalid position", offset)
		}

		back, ok := file.Offset(line, col)
		if !ok {
			t.Fatalf("offset %d: Offset(%d, %d) failed", offset, line, col)
		}
		if back != offset {
			t.Errorf("offset %d: round-tripped to %d via (%d, %d)", offset, back, line, col)
		}
	}
}

func TestLineAtOutOfRange(t *testing.T) {
	t.Parallel()

	file := jast.NewFileSnapshot("Demo.java", []byte("int x;\n"))

	if line, _ := file.LineAt(-1); line != 0 {
		t.Errorf("negative offset: expected line 0, got %d", line)
	}

	// Offset past end reports a position at the end of the last line.
	line, col := file.LineAt(100)
	if line != file.LineCount() {
		t.Errorf("past-end offset: expected last line %d, got %d", file.LineCount(), line)
	}
	if col < 1 {
		t.Errorf("past-end offset: expected positive column, got %d", col)
	}
}

func TestLineContent(t *testing.T) {
	t.Parallel()

	file := jast.NewFileSnapshot("Demo.java", []byte("first\nsecond\r\nthird"))

	cases := []struct {
		line int
		want string
	}{
		{1, "first"},
		{2, "second"},
		{3, "third"},
	}
	for _, c := range cases {
		if got := string(file.LineContent(c.line)); got != c.want {
			t.Errorf("line %d: expected %q, got %q", c.line, c.want, got)
		}
	}

	if file.LineContent(0) != nil || file.LineContent(4) != nil {
		t.Error("out-of-range line numbers should return nil")
	}
}
