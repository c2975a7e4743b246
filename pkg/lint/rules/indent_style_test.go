package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkruer/jfmt/pkg/config"
	"github.com/tkruer/jfmt/pkg/lint"
	"github.com/tkruer/jfmt/pkg/parser/javaparse"
)

func applyIndentRule(t *testing.T, input string, style config.IndentStyle, width int) ([]lint.Diagnostic, *lint.RuleContext) {
	t.Helper()

	parser := javaparse.New()
	snapshot, err := parser.Parse(context.Background(), "Test.java", []byte(input))
	require.NoError(t, err)

	cfg := config.NewConfig()
	cfg.Style.IndentStyle = style
	cfg.Style.IndentWidth = width

	ruleCtx := lint.NewRuleContext(context.Background(), snapshot, cfg, nil)
	rule := NewIndentStyleRule()
	diags, err := rule.Apply(ruleCtx)
	require.NoError(t, err)
	return diags, ruleCtx
}

func TestIndentStyleRule_SpacesMode(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantDiags int
		wantFix   string
	}{
		{
			name:      "spaces only",
			input:     "class A {\n    int x;\n}\n",
			wantDiags: 0,
			wantFix:   "class A {\n    int x;\n}\n",
		},
		{
			name:      "tab indentation",
			input:     "class A {\n\tint x;\n}\n",
			wantDiags: 1,
			wantFix:   "class A {\n    int x;\n}\n",
		},
		{
			name:      "nested tabs expand per level",
			input:     "class A {\n\tvoid run() {\n\t\tint x;\n\t}\n}\n",
			wantDiags: 3,
			wantFix:   "class A {\n    void run() {\n        int x;\n    }\n}\n",
		},
		{
			name:      "mixed run preserves spaces",
			input:     "class A {\n  \tint x;\n}\n",
			wantDiags: 1,
			wantFix:   "class A {\n      int x;\n}\n",
		},
		{
			name:      "blank lines are ignored",
			input:     "class A {\n\t\n}\n",
			wantDiags: 0,
			wantFix:   "class A {\n\t\n}\n",
		},
		{
			name:      "unindented lines are fine",
			input:     "class A {\nint x;\n}\n",
			wantDiags: 0,
			wantFix:   "class A {\nint x;\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags, _ := applyIndentRule(t, tt.input, config.IndentSpaces, 4)
			assert.Len(t, diags, tt.wantDiags)

			if tt.wantDiags > 0 {
				fixed := applyRuleFixes(t, tt.input, diags)
				assert.Equal(t, tt.wantFix, fixed)

				diags2, _ := applyIndentRule(t, fixed, config.IndentSpaces, 4)
				assert.Empty(t, diags2, "fix should be idempotent")
			}
		})
	}
}

func TestIndentStyleRule_TabsMode(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantDiags int
		wantFix   string
	}{
		{
			name:      "tabs only",
			input:     "class A {\n\tint x;\n}\n",
			wantDiags: 0,
			wantFix:   "class A {\n\tint x;\n}\n",
		},
		{
			name:      "aligned space run converts",
			input:     "class A {\n    int x;\n}\n",
			wantDiags: 1,
			wantFix:   "class A {\n\tint x;\n}\n",
		},
		{
			name:      "two levels convert to two tabs",
			input:     "class A {\n        int x;\n}\n",
			wantDiags: 1,
			wantFix:   "class A {\n\t\tint x;\n}\n",
		},
		{
			name:      "unaligned run is skipped",
			input:     "class A {\n   int x;\n}\n",
			wantDiags: 0,
			wantFix:   "class A {\n   int x;\n}\n",
		},
		{
			name:      "mixed run is skipped",
			input:     "class A {\n\t    int x;\n}\n",
			wantDiags: 0,
			wantFix:   "class A {\n\t    int x;\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags, _ := applyIndentRule(t, tt.input, config.IndentTabs, 4)
			assert.Len(t, diags, tt.wantDiags)

			if tt.wantDiags > 0 {
				fixed := applyRuleFixes(t, tt.input, diags)
				assert.Equal(t, tt.wantFix, fixed)

				diags2, _ := applyIndentRule(t, fixed, config.IndentTabs, 4)
				assert.Empty(t, diags2, "fix should be idempotent")
			}
		})
	}
}

func TestIndentStyleRule_IndentWidth(t *testing.T) {
	// Width 2: a 4-space run is two levels, a tab becomes 2 spaces.
	diags, _ := applyIndentRule(t, "class A {\n    int x;\n}\n", config.IndentTabs, 2)
	require.Len(t, diags, 1)
	fixed := applyRuleFixes(t, "class A {\n    int x;\n}\n", diags)
	assert.Equal(t, "class A {\n\t\tint x;\n}\n", fixed)

	diags, _ = applyIndentRule(t, "class A {\n\tint x;\n}\n", config.IndentSpaces, 2)
	require.Len(t, diags, 1)
	fixed = applyRuleFixes(t, "class A {\n\tint x;\n}\n", diags)
	assert.Equal(t, "class A {\n  int x;\n}\n", fixed)
}

func TestIndentStyleRule_DiagnosticPosition(t *testing.T) {
	// The diagnostic points at the first offending tab, not the line start.
	input := "class A {\n  \tint x;\n}\n"
	diags, _ := applyIndentRule(t, input, config.IndentSpaces, 4)
	require.Len(t, diags, 1)

	d := diags[0]
	assert.Equal(t, 2, d.StartLine)
	assert.Equal(t, 3, d.StartColumn)
	assert.Equal(t, "Use spaces for indentation", d.Message)
}

func TestIndentStyleRule_OneEditPerLine(t *testing.T) {
	input := "class A {\n\t\tint x;\n\tint y;\n}\n"
	diags, _ := applyIndentRule(t, input, config.IndentSpaces, 4)
	require.Len(t, diags, 2)

	for _, d := range diags {
		assert.Len(t, d.FixEdits, 1)
	}
}

func TestIndentStyleRule_Metadata(t *testing.T) {
	rule := NewIndentStyleRule()

	assert.Equal(t, "JF004", rule.ID())
	assert.Equal(t, "indent-style", rule.Name())
	assert.True(t, rule.CanFix())
}
