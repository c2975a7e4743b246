package fix

import (
	"fmt"
	"strings"
)

// Diff represents a unified diff between original and modified content.
type Diff struct {
	// Path is the file path for the diff header.
	Path string

	// Hunks contains the diff hunks.
	Hunks []DiffHunk

	// Additions is the number of lines added.
	Additions int

	// Deletions is the number of lines deleted.
	Deletions int
}

// DiffHunk represents a single hunk in a unified diff.
type DiffHunk struct {
	// OriginalStart is the 1-based start line of the hunk in the original.
	OriginalStart int

	// OriginalCount is the number of original lines in this hunk.
	OriginalCount int

	// ModifiedStart is the 1-based start line of the hunk in the modified.
	ModifiedStart int

	// ModifiedCount is the number of modified lines in this hunk.
	ModifiedCount int

	// Lines contains the diff lines in this hunk.
	Lines []DiffLine
}

// DiffLine represents a single line in a diff hunk.
type DiffLine struct {
	// Kind indicates whether this is a context, add, or remove line.
	Kind DiffLineKind

	// Content is the line content (without the diff prefix).
	Content string
}

// DiffLineKind indicates the type of diff line.
type DiffLineKind int

const (
	// DiffLineContext is an unchanged context line.
	DiffLineContext DiffLineKind = iota

	// DiffLineAdd is a line added in the modified version.
	DiffLineAdd

	// DiffLineRemove is a line removed from the original version.
	DiffLineRemove
)

// contextLines is the number of context lines to show around changes.
const contextLines = 3

// GenerateDiff creates a unified diff between original and modified content.
// Returns nil if there are no changes.
func GenerateDiff(path string, original, modified []byte) *Diff {
	origLines := splitLines(original)
	modLines := splitLines(modified)

	ops := diffOps(origLines, modLines)

	changed := false
	for _, op := range ops {
		if op.kind != DiffLineContext {
			changed = true
			break
		}
	}
	if !changed {
		return nil
	}

	diff := &Diff{
		Path:  path,
		Hunks: groupIntoHunks(ops),
	}
	for _, op := range ops {
		switch op.kind {
		case DiffLineAdd:
			diff.Additions++
		case DiffLineRemove:
			diff.Deletions++
		}
	}

	return diff
}

// HasChanges returns true if the diff contains any changes.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

// String returns the diff in unified diff format.
func (d *Diff) String() string {
	if d == nil || len(d.Hunks) == 0 {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var builder strings.Builder
	fmt.Fprintf(&builder, "--- a/%s\n", path)
	fmt.Fprintf(&builder, "+++ b/%s\n", path)

	for _, hunk := range d.Hunks {
		fmt.Fprintf(&builder, "@@ -%d,%d +%d,%d @@\n",
			hunk.OriginalStart, hunk.OriginalCount,
			hunk.ModifiedStart, hunk.ModifiedCount)

		for _, line := range hunk.Lines {
			switch line.Kind {
			case DiffLineContext:
				fmt.Fprintf(&builder, " %s\n", line.Content)
			case DiffLineAdd:
				fmt.Fprintf(&builder, "+%s\n", line.Content)
			case DiffLineRemove:
				fmt.Fprintf(&builder, "-%s\n", line.Content)
			}
		}
	}

	return builder.String()
}

// splitLines splits content into lines, dropping the trailing newline if present.
func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}

	lines := strings.Split(string(content), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// diffOp represents a single line-level diff operation.
type diffOp struct {
	kind    DiffLineKind
	content string
}

// diffOps computes a line-level diff using an LCS table.
func diffOps(orig, mod []string) []diffOp {
	origLen, modLen := len(orig), len(mod)

	// dp[i][j] is the LCS length of orig[i:] and mod[j:].
	dp := make([][]int, origLen+1)
	for i := range dp {
		dp[i] = make([]int, modLen+1)
	}
	for i := origLen - 1; i >= 0; i-- {
		for j := modLen - 1; j >= 0; j-- {
			if orig[i] == mod[j] {
				dp[i][j] = dp[i+1][j+1] + 1
			} else {
				dp[i][j] = max(dp[i+1][j], dp[i][j+1])
			}
		}
	}

	var ops []diffOp
	i, j := 0, 0
	for i < origLen && j < modLen {
		switch {
		case orig[i] == mod[j]:
			ops = append(ops, diffOp{DiffLineContext, orig[i]})
			i++
			j++
		case dp[i+1][j] >= dp[i][j+1]:
			ops = append(ops, diffOp{DiffLineRemove, orig[i]})
			i++
		default:
			ops = append(ops, diffOp{DiffLineAdd, mod[j]})
			j++
		}
	}
	for ; i < origLen; i++ {
		ops = append(ops, diffOp{DiffLineRemove, orig[i]})
	}
	for ; j < modLen; j++ {
		ops = append(ops, diffOp{DiffLineAdd, mod[j]})
	}

	return ops
}

// groupIntoHunks groups diff operations into hunks with surrounding context.
func groupIntoHunks(ops []diffOp) []DiffHunk {
	// Find ranges of changed ops, merging ranges whose context would touch.
	type changeRange struct{ start, end int }

	var ranges []changeRange
	for idx := 0; idx < len(ops); idx++ {
		if ops[idx].kind == DiffLineContext {
			continue
		}
		end := idx + 1
		for end < len(ops) {
			if ops[end].kind != DiffLineContext {
				end++
				continue
			}
			// Peek past context: if another change starts within the merge
			// window, keep extending this range.
			next := end
			for next < len(ops) && ops[next].kind == DiffLineContext {
				next++
			}
			if next < len(ops) && next-end <= contextLines*2 {
				end = next + 1
				continue
			}
			break
		}
		ranges = append(ranges, changeRange{idx, end})
		idx = end
	}

	var hunks []DiffHunk
	for _, r := range ranges {
		start := max(r.start-contextLines, 0)
		end := min(r.end+contextLines, len(ops))

		hunk := DiffHunk{OriginalStart: 1, ModifiedStart: 1}
		for opIdx := range start {
			if ops[opIdx].kind != DiffLineAdd {
				hunk.OriginalStart++
			}
			if ops[opIdx].kind != DiffLineRemove {
				hunk.ModifiedStart++
			}
		}

		for _, op := range ops[start:end] {
			hunk.Lines = append(hunk.Lines, DiffLine{Kind: op.kind, Content: op.content})
			if op.kind != DiffLineAdd {
				hunk.OriginalCount++
			}
			if op.kind != DiffLineRemove {
				hunk.ModifiedCount++
			}
		}

		hunks = append(hunks, hunk)
	}

	return hunks
}
