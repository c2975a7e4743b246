package lint_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tkruer/jfmt/pkg/config"
	"github.com/tkruer/jfmt/pkg/fix"
	"github.com/tkruer/jfmt/pkg/fsutil"
	"github.com/tkruer/jfmt/pkg/lint"
)

// squeezeRule collapses every "aa" pair into a single "a". Content with runs
// of a's needs multiple passes to converge, which exercises the fix loop.
type squeezeRule struct {
	lint.BaseRule
}

func (r *squeezeRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	content := ctx.File.Content
	var diags []lint.Diagnostic

	for i := 0; i+1 < len(content); {
		if content[i] != 'a' || content[i+1] != 'a' {
			i++
			continue
		}
		builder := fix.NewEditBuilder(r.ID())
		builder.Delete(i, i+1)
		diags = append(diags, lint.Diagnostic{
			RuleID:      r.ID(),
			Message:     "doubled letter",
			StartOffset: i,
			EndOffset:   i + 2,
			FixEdits:    builder.Edits,
		})
		i += 2
	}
	return diags, nil
}

// spanEditRule reports a fixed replacement edit, used to provoke conflicts.
type spanEditRule struct {
	lint.BaseRule
	start, end int
	text       string
}

func (r *spanEditRule) Apply(_ *lint.RuleContext) ([]lint.Diagnostic, error) {
	builder := fix.NewEditBuilder(r.ID())
	builder.ReplaceRange(r.start, r.end, r.text)
	return []lint.Diagnostic{{
		RuleID:      r.ID(),
		Message:     "span issue",
		StartOffset: r.start,
		EndOffset:   r.end,
		FixEdits:    builder.Edits,
	}}, nil
}

func newTestPipeline(rules ...lint.Rule) *lint.Pipeline {
	registry := lint.NewRegistry()
	for _, r := range rules {
		registry.Register(r)
	}
	return lint.NewPipeline(lint.NewEngine(&mockParser{}, registry))
}

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write test file: %v", err)
	}
	return path
}

func TestPipeline_ProcessFile_NoIssues(t *testing.T) {
	t.Parallel()

	path := writeTestFile(t, t.TempDir(), "Main.java", "class Main {}\n")
	pipeline := newTestPipeline()

	cfg := config.NewConfig()
	opts := lint.DefaultPipelineOptions()

	result, err := pipeline.ProcessFile(context.Background(), path, cfg, opts)
	if err != nil {
		t.Fatalf("ProcessFile error: %v", err)
	}

	if result.Modified {
		t.Error("expected no modification")
	}
	if result.Written {
		t.Error("expected no write")
	}
	if result.Summary() != "ok" {
		t.Errorf("Summary = %q, want ok", result.Summary())
	}
}

func TestPipeline_ProcessFile_FixConvergesAndWrites(t *testing.T) {
	t.Parallel()

	path := writeTestFile(t, t.TempDir(), "Main.java", "aaaa")
	rule := &squeezeRule{BaseRule: lint.NewBaseRule(lint.RuleMeta{ID: "JF910", Name: "squeeze", Fixable: true})}
	pipeline := newTestPipeline(rule)

	cfg := config.NewConfig()
	cfg.Fix = true
	opts := lint.DefaultPipelineOptions()
	opts.Fix = true

	result, err := pipeline.ProcessFile(context.Background(), path, cfg, opts)
	if err != nil {
		t.Fatalf("ProcessFile error: %v", err)
	}

	if !result.Modified {
		t.Fatal("expected modification")
	}
	if !result.Written {
		t.Fatal("expected file to be written")
	}
	if result.FixPasses < 2 {
		t.Errorf("FixPasses = %d, want >= 2", result.FixPasses)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(got) != "a" {
		t.Errorf("fixed content = %q, want %q", got, "a")
	}
}

func TestPipeline_ProcessFile_FixIsIdempotent(t *testing.T) {
	t.Parallel()

	path := writeTestFile(t, t.TempDir(), "Main.java", "aabb")
	rule := &squeezeRule{BaseRule: lint.NewBaseRule(lint.RuleMeta{ID: "JF910", Name: "squeeze", Fixable: true})}
	pipeline := newTestPipeline(rule)

	cfg := config.NewConfig()
	cfg.Fix = true
	opts := lint.DefaultPipelineOptions()
	opts.Fix = true

	if _, err := pipeline.ProcessFile(context.Background(), path, cfg, opts); err != nil {
		t.Fatalf("first run: %v", err)
	}
	first, _ := os.ReadFile(path)

	result, err := pipeline.ProcessFile(context.Background(), path, cfg, opts)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if result.Modified {
		t.Error("second run should not modify")
	}

	second, _ := os.ReadFile(path)
	if !bytes.Equal(first, second) {
		t.Errorf("second run changed content: %q -> %q", first, second)
	}
}

func TestPipeline_ProcessFile_DryRun(t *testing.T) {
	t.Parallel()

	original := "aa"
	path := writeTestFile(t, t.TempDir(), "Main.java", original)
	rule := &squeezeRule{BaseRule: lint.NewBaseRule(lint.RuleMeta{ID: "JF910", Name: "squeeze", Fixable: true})}
	pipeline := newTestPipeline(rule)

	cfg := config.NewConfig()
	cfg.Fix = true
	opts := lint.DefaultPipelineOptions()
	opts.Fix = true
	opts.DryRun = true

	result, err := pipeline.ProcessFile(context.Background(), path, cfg, opts)
	if err != nil {
		t.Fatalf("ProcessFile error: %v", err)
	}

	if !result.Modified {
		t.Fatal("expected pending modification")
	}
	if result.Written {
		t.Error("dry run must not write")
	}
	if result.Diff == nil {
		t.Fatal("expected a diff")
	}
	if !result.Diff.HasChanges() {
		t.Error("expected diff to have changes")
	}

	got, _ := os.ReadFile(path)
	if string(got) != original {
		t.Errorf("dry run changed file on disk: %q", got)
	}
}

func TestPipeline_ProcessFile_BackupCreated(t *testing.T) {
	t.Parallel()

	original := "aa"
	path := writeTestFile(t, t.TempDir(), "Main.java", original)
	rule := &squeezeRule{BaseRule: lint.NewBaseRule(lint.RuleMeta{ID: "JF910", Name: "squeeze", Fixable: true})}
	pipeline := newTestPipeline(rule)

	cfg := config.NewConfig()
	cfg.Fix = true
	opts := lint.DefaultPipelineOptions()
	opts.Fix = true
	opts.Backup = fsutil.BackupConfig{Enabled: true, Mode: fsutil.BackupModeSidecar}

	result, err := pipeline.ProcessFile(context.Background(), path, cfg, opts)
	if err != nil {
		t.Fatalf("ProcessFile error: %v", err)
	}

	if !result.BackupCreated {
		t.Fatal("expected backup to be created")
	}

	backup, err := os.ReadFile(fsutil.BackupPath(path, fsutil.BackupModeSidecar))
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if string(backup) != original {
		t.Errorf("backup content = %q, want %q", backup, original)
	}
}

func TestPipeline_ProcessFile_NotFound(t *testing.T) {
	t.Parallel()

	pipeline := newTestPipeline()
	cfg := config.NewConfig()

	_, err := pipeline.ProcessFile(context.Background(),
		filepath.Join(t.TempDir(), "missing.java"), cfg, lint.DefaultPipelineOptions())

	if !errors.Is(err, lint.ErrFileNotFound) {
		t.Errorf("expected ErrFileNotFound, got %v", err)
	}
	if !lint.IsPipelineError(err) {
		t.Error("expected IsPipelineError to be true")
	}
}

func TestPipeline_ProcessContent_ConflictAbortsFix(t *testing.T) {
	t.Parallel()

	rule1 := &spanEditRule{
		BaseRule: lint.NewBaseRule(lint.RuleMeta{ID: "JF911", Name: "span-one", Fixable: true}),
		start:    0, end: 6, text: "xxx",
	}
	rule2 := &spanEditRule{
		BaseRule: lint.NewBaseRule(lint.RuleMeta{ID: "JF912", Name: "span-two", Fixable: true}),
		start:    3, end: 9, text: "yyy",
	}
	pipeline := newTestPipeline(rule1, rule2)

	cfg := config.NewConfig()
	cfg.Fix = true
	opts := lint.DefaultPipelineOptions()
	opts.Fix = true

	result, err := pipeline.ProcessContent(context.Background(),
		"Main.java", []byte("hello world"), cfg, opts)
	if err != nil {
		t.Fatalf("ProcessContent error: %v", err)
	}

	if result.Modified {
		t.Error("conflicting edits must not modify content")
	}
	if !result.EditConflicts {
		t.Error("expected EditConflicts")
	}
	if result.IssueCount() != 2 {
		t.Errorf("expected both diagnostics reported, got %d", result.IssueCount())
	}
	if result.Summary() != "issues found (fix aborted: conflicting edits)" {
		t.Errorf("Summary = %q", result.Summary())
	}
}

func TestPipeline_ProcessContent_NoFixMode(t *testing.T) {
	t.Parallel()

	rule := &squeezeRule{BaseRule: lint.NewBaseRule(lint.RuleMeta{ID: "JF910", Name: "squeeze", Fixable: true})}
	pipeline := newTestPipeline(rule)

	cfg := config.NewConfig()
	opts := lint.DefaultPipelineOptions()

	result, err := pipeline.ProcessContent(context.Background(), "Main.java", []byte("aa"), cfg, opts)
	if err != nil {
		t.Fatalf("ProcessContent error: %v", err)
	}

	if result.Modified {
		t.Error("expected no modification without fix mode")
	}
	if !result.HasIssues() {
		t.Error("expected diagnostics")
	}
	if result.FixPasses != 0 {
		t.Errorf("FixPasses = %d, want 0", result.FixPasses)
	}
}

func TestPipelineResult_Summary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result *lint.PipelineResult
		want   string
	}{
		{
			name:   "skipped",
			result: &lint.PipelineResult{Skipped: true, SkipReason: "file modified during processing"},
			want:   "skipped: file modified during processing",
		},
		{
			name:   "written",
			result: &lint.PipelineResult{Written: true},
			want:   "fixed",
		},
		{
			name:   "written with backup",
			result: &lint.PipelineResult{Written: true, BackupCreated: true},
			want:   "fixed (backup created)",
		},
		{
			name:   "pending",
			result: &lint.PipelineResult{Modified: true},
			want:   "changes pending",
		},
		{
			name: "issues",
			result: &lint.PipelineResult{
				FileResult: &lint.FileResult{Diagnostics: []lint.Diagnostic{{}}},
			},
			want: "issues found",
		},
		{
			name:   "clean",
			result: &lint.PipelineResult{FileResult: &lint.FileResult{}},
			want:   "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.result.Summary(); got != tt.want {
				t.Errorf("Summary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBackupConfigFromConfig(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	backup := lint.BackupConfigFromConfig(cfg)
	if !backup.Enabled {
		t.Error("expected backups enabled by default")
	}
	if backup.Mode != fsutil.BackupModeSidecar {
		t.Errorf("Mode = %q, want sidecar", backup.Mode)
	}

	cfg.NoBackups = true
	backup = lint.BackupConfigFromConfig(cfg)
	if backup.Enabled {
		t.Error("NoBackups should disable backups")
	}

	backup = lint.BackupConfigFromConfig(nil)
	if backup.Enabled {
		t.Error("nil config should use defaults")
	}
}

func TestPipelineOptionsFromConfig(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Fix = true
	cfg.DryRun = true

	opts := lint.PipelineOptionsFromConfig(cfg)
	if !opts.Fix {
		t.Error("expected Fix")
	}
	if !opts.DryRun {
		t.Error("expected DryRun")
	}
	if !opts.StrictRaceDetection {
		t.Error("expected strict race detection")
	}
}
