package javaparse

import (
	"testing"

	"github.com/tkruer/jfmt/pkg/jast"
)

func TestTokenize_Empty(t *testing.T) {
	if tokens := Tokenize(nil); tokens != nil {
		t.Errorf("expected nil tokens for empty content, got %d", len(tokens))
	}
}

func TestTokenize_Coverage(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"simple class", "package com.example;\n\npublic class Main {\n}\n"},
		{"imports", "import java.util.List;\nimport static java.lang.Math.*;\n"},
		{"comments", "// line comment\n/* block\ncomment */\nclass A {}\n"},
		{"string literals", "class A { String s = \"hello; {} //\"; }\n"},
		{"char literals", "class A { char c = ';'; char b = '\\''; }\n"},
		{"text block", "class A {\n\tString s = \"\"\"\n\t\thello \"world\"\n\t\t\"\"\";\n}\n"},
		{"numbers", "class A { int x = 0xFF; double d = 1.5e-3; long l = 1_000_000L; }\n"},
		{"annotations", "@Override\npublic void run() {}\n"},
		{"crlf", "class A {\r\n\tint x;\r\n}\r\n"},
		{"unterminated string", "class A { String s = \"oops\n}\n"},
		{"unterminated block comment", "class A {} /* never closed"},
		{"unicode identifier", "class Café { int über; }\n"},
		{"no trailing newline", "class A {}"},
		{"operators", "int x = a >= b ? c << 2 : d % 3;\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := []byte(tt.content)
			tokens := Tokenize(content)

			if !jast.ValidateTokens(tokens, len(content)) {
				t.Fatalf("tokens do not cover content for %q", tt.content)
			}

			// Concatenated token text must reproduce the input exactly.
			var rebuilt []byte
			for _, tok := range tokens {
				rebuilt = append(rebuilt, tok.Text(content)...)
			}
			if string(rebuilt) != tt.content {
				t.Errorf("rebuilt content mismatch:\ngot  %q\nwant %q", rebuilt, tt.content)
			}
		})
	}
}

func TestTokenize_Kinds(t *testing.T) {
	content := []byte("import java.util.*;\n")
	tokens := Tokenize(content)

	want := []jast.TokenKind{
		jast.TokKeyword,    // import
		jast.TokWhitespace, // ' '
		jast.TokIdent,      // java
		jast.TokDot,        // .
		jast.TokIdent,      // util
		jast.TokDot,        // .
		jast.TokStar,       // *
		jast.TokSemicolon,  // ;
		jast.TokNewline,    // \n
	}

	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, kind := range want {
		if tokens[i].Kind != kind {
			t.Errorf("token %d (%q): Kind = %v, want %v", i, tokens[i].Text(content), tokens[i].Kind, kind)
		}
	}
}

func TestTokenize_SemicolonInsideLiteralsIsMasked(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"string", `String s = "a;b";` + "\n"},
		{"char", "char c = ';';\n"},
		{"line comment", "int x = 1; // trailing ; comment\n"},
		{"block comment", "/* a; b; c */ int x = 1;\n"},
		{"text block", "String s = \"\"\"\n;;;\n\"\"\";\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := []byte(tt.content)
			tokens := Tokenize(content)

			var semis int
			for _, tok := range tokens {
				if tok.Kind == jast.TokSemicolon {
					semis++
				}
			}
			if semis != 1 {
				t.Errorf("got %d semicolon tokens, want 1", semis)
			}
		})
	}
}

func TestTokenize_KeywordClassification(t *testing.T) {
	content := []byte("public class Main extends Base {}")
	tokens := Tokenize(content)

	kinds := map[string]jast.TokenKind{}
	for _, tok := range tokens {
		if tok.Kind == jast.TokIdent || tok.Kind == jast.TokKeyword {
			kinds[string(tok.Text(content))] = tok.Kind
		}
	}

	for _, kw := range []string{"public", "class", "extends"} {
		if kinds[kw] != jast.TokKeyword {
			t.Errorf("%q classified as %v, want TokKeyword", kw, kinds[kw])
		}
	}
	for _, id := range []string{"Main", "Base"} {
		if kinds[id] != jast.TokIdent {
			t.Errorf("%q classified as %v, want TokIdent", id, kinds[id])
		}
	}
}

func FuzzTokenize(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("class A {}"))
	f.Add([]byte("String s = \"unterminated"))
	f.Add([]byte("/* unterminated"))
	f.Add([]byte("\"\"\"\ntext block\n\"\"\""))
	f.Add([]byte("'\\u0041'"))
	f.Add([]byte{0x00, 0xFF, 0x80, '\n'})

	f.Fuzz(func(t *testing.T, content []byte) {
		tokens := Tokenize(content)

		if !jast.ValidateTokens(tokens, len(content)) {
			t.Fatalf("tokens do not cover content of length %d", len(content))
		}
		for i, tok := range tokens {
			if tok.IsEmpty() {
				t.Errorf("token %d is empty: %+v", i, tok)
			}
		}
	})
}
