package fix_test

import (
	"strings"
	"testing"

	"github.com/tkruer/jfmt/pkg/fix"
)

func TestGenerateDiffNoChanges(t *testing.T) {
	t.Parallel()

	content := []byte("class A {\n}\n")
	if diff := fix.GenerateDiff("A.java", content, content); diff != nil {
		t.Errorf("expected nil diff for identical content, got %+v", diff)
	}

	if diff := fix.GenerateDiff("A.java", nil, nil); diff != nil {
		t.Errorf("expected nil diff for empty content, got %+v", diff)
	}
}

func TestGenerateDiffSingleLineChange(t *testing.T) {
	t.Parallel()

	original := []byte("class A {\n\tint x;;\n}\n")
	modified := []byte("class A {\n\tint x;\n}\n")

	diff := fix.GenerateDiff("src/A.java", original, modified)
	if !diff.HasChanges() {
		t.Fatal("expected changes")
	}

	if diff.Additions != 1 || diff.Deletions != 1 {
		t.Errorf("expected 1 addition and 1 deletion, got +%d -%d", diff.Additions, diff.Deletions)
	}

	out := diff.String()
	if !strings.Contains(out, "--- a/src/A.java") || !strings.Contains(out, "+++ b/src/A.java") {
		t.Errorf("missing file headers:\n%s", out)
	}
	if !strings.Contains(out, "-\tint x;;") || !strings.Contains(out, "+\tint x;") {
		t.Errorf("missing change lines:\n%s", out)
	}
}

func TestGenerateDiffAddedLine(t *testing.T) {
	t.Parallel()

	original := []byte("a\nb\n")
	modified := []byte("a\nb\nc\n")

	diff := fix.GenerateDiff("x", original, modified)
	if diff.Additions != 1 || diff.Deletions != 0 {
		t.Errorf("expected +1 -0, got +%d -%d", diff.Additions, diff.Deletions)
	}
}

func TestGenerateDiffSeparateHunks(t *testing.T) {
	t.Parallel()

	// Two changes far enough apart for separate hunks.
	var origLines, modLines []string
	for i := range 30 {
		line := strings.Repeat("x", i%5+1)
		origLines = append(origLines, line)
		modLines = append(modLines, line)
	}
	origLines[2] = "first-change-original"
	modLines[2] = "first-change-modified"
	origLines[25] = "second-change-original"
	modLines[25] = "second-change-modified"

	diff := fix.GenerateDiff("x",
		[]byte(strings.Join(origLines, "\n")+"\n"),
		[]byte(strings.Join(modLines, "\n")+"\n"))

	if len(diff.Hunks) != 2 {
		t.Fatalf("expected 2 hunks, got %d", len(diff.Hunks))
	}
	for i, hunk := range diff.Hunks {
		if hunk.OriginalStart < 1 || hunk.ModifiedStart < 1 {
			t.Errorf("hunk %d has invalid start: %+v", i, hunk)
		}
	}
}

func FuzzGenerateDiff(f *testing.F) {
	f.Add([]byte(""), []byte(""))
	f.Add([]byte("class A {}"), []byte("class A {}"))
	f.Add([]byte("a\nb\nc\n"), []byte("a\nx\nc\n"))
	f.Add([]byte("line1\nline2\n"), []byte("line1\nline2\nline3\n"))
	f.Add([]byte("l1\nl2\nl3\n"), []byte("l1\nl3\n"))

	f.Fuzz(func(t *testing.T, original, modified []byte) {
		diff := fix.GenerateDiff("Fuzz.java", original, modified)
		if diff == nil {
			return
		}

		_ = diff.String()

		if !diff.HasChanges() && len(diff.Hunks) > 0 {
			t.Error("HasChanges inconsistent with Hunks")
		}

		for hunkIdx, hunk := range diff.Hunks {
			if hunk.OriginalStart < 1 || hunk.ModifiedStart < 1 {
				t.Errorf("hunk %d: starts must be 1-based: %+v", hunkIdx, hunk)
			}

			var origCount, modCount int
			for _, line := range hunk.Lines {
				if line.Kind != fix.DiffLineAdd {
					origCount++
				}
				if line.Kind != fix.DiffLineRemove {
					modCount++
				}
			}
			if origCount != hunk.OriginalCount || modCount != hunk.ModifiedCount {
				t.Errorf("hunk %d: counts do not match lines", hunkIdx)
			}
		}
	})
}
