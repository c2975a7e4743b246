package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tkruer/jfmt/internal/cli"
)

func TestLintCommand_RuleFormatFlag(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}

	cmd := cli.NewRootCommand(info)
	lintCmd, _, err := cmd.Find([]string{"lint"})
	if err != nil {
		t.Fatalf("lint command not found: %v", err)
	}

	flag := lintCmd.Flags().Lookup("rule-format")
	assert.NotNil(t, flag, "rule-format flag should exist")
	assert.Equal(t, "name", flag.DefValue, "default value should be 'name'")
}

func TestLintCommand_FormatFlag(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}

	cmd := cli.NewRootCommand(info)
	lintCmd, _, err := cmd.Find([]string{"lint"})
	if err != nil {
		t.Fatalf("lint command not found: %v", err)
	}

	flag := lintCmd.Flags().Lookup("format")
	assert.NotNil(t, flag, "format flag should exist")
	assert.Equal(t, "text", flag.DefValue, "default value should be 'text'")
	assert.Contains(t, flag.Usage, "json")
	assert.Contains(t, flag.Usage, "diff")
}

func TestLintCommand_StyleOverrideFlags(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}

	cmd := cli.NewRootCommand(info)
	lintCmd, _, err := cmd.Find([]string{"lint"})
	if err != nil {
		t.Fatalf("lint command not found: %v", err)
	}

	indentStyle := lintCmd.Flags().Lookup("indent-style")
	assert.NotNil(t, indentStyle)
	assert.Equal(t, "", indentStyle.DefValue, "indent-style should default to unset")

	indentWidth := lintCmd.Flags().Lookup("indent-width")
	assert.NotNil(t, indentWidth)
	assert.Equal(t, "0", indentWidth.DefValue, "indent-width should default to unset")

	maxLineLength := lintCmd.Flags().Lookup("max-line-length")
	assert.NotNil(t, maxLineLength)
	assert.Equal(t, "0", maxLineLength.DefValue, "max-line-length should default to unset")
}
