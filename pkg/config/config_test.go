package config

import "testing"

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Style.IndentStyle != IndentSpaces {
		t.Errorf("IndentStyle = %q, want %q", cfg.Style.IndentStyle, IndentSpaces)
	}
	if cfg.Style.IndentWidth != 4 {
		t.Errorf("IndentWidth = %d, want 4", cfg.Style.IndentWidth)
	}
	if cfg.Style.MaxLineLength != 100 {
		t.Errorf("MaxLineLength = %d, want 100", cfg.Style.MaxLineLength)
	}
	if cfg.SeverityDefault != string(SeverityWarning) {
		t.Errorf("SeverityDefault = %q, want %q", cfg.SeverityDefault, SeverityWarning)
	}
	if !cfg.Backups.Enabled || cfg.Backups.Mode != "sidecar" {
		t.Errorf("Backups = %+v, want enabled sidecar", cfg.Backups)
	}
	if cfg.Format != FormatText {
		t.Errorf("Format = %q, want %q", cfg.Format, FormatText)
	}
	if cfg.Rules == nil {
		t.Error("Rules map should be initialized")
	}
}

func TestEffectiveJobs(t *testing.T) {
	cfg := NewConfig()
	if got := cfg.EffectiveJobs(); got < 1 {
		t.Errorf("EffectiveJobs() = %d for default config, want >= 1", got)
	}

	cfg.Jobs = 3
	if got := cfg.EffectiveJobs(); got != 3 {
		t.Errorf("EffectiveJobs() = %d, want 3", got)
	}
}

func TestIndentStyleIsValid(t *testing.T) {
	tests := []struct {
		style IndentStyle
		want  bool
	}{
		{IndentSpaces, true},
		{IndentTabs, true},
		{"", false},
		{"smart", false},
	}

	for _, tt := range tests {
		if got := tt.style.IsValid(); got != tt.want {
			t.Errorf("IndentStyle(%q).IsValid() = %v, want %v", tt.style, got, tt.want)
		}
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	cfg := NewConfig()
	cfg.Style.IndentStyle = IndentTabs
	cfg.Style.MaxLineLength = 120
	enabled := false
	cfg.Rules["no-wildcard-imports"] = RuleConfig{Enabled: &enabled}
	cfg.Ignore = []string{"build/**"}

	data, err := cfg.ToYAML()
	if err != nil {
		t.Fatalf("ToYAML() error = %v", err)
	}

	parsed, err := FromYAML(data)
	if err != nil {
		t.Fatalf("FromYAML() error = %v", err)
	}

	if parsed.Style.IndentStyle != IndentTabs {
		t.Errorf("IndentStyle = %q, want %q", parsed.Style.IndentStyle, IndentTabs)
	}
	if parsed.Style.MaxLineLength != 120 {
		t.Errorf("MaxLineLength = %d, want 120", parsed.Style.MaxLineLength)
	}
	rc, ok := parsed.Rules["no-wildcard-imports"]
	if !ok || rc.Enabled == nil || *rc.Enabled {
		t.Errorf("rule config not preserved: %+v", parsed.Rules)
	}
	if len(parsed.Ignore) != 1 || parsed.Ignore[0] != "build/**" {
		t.Errorf("Ignore = %v, want [build/**]", parsed.Ignore)
	}
}

func TestCloneIsDeep(t *testing.T) {
	cfg := NewConfig()
	enabled := true
	cfg.Rules["indent-style"] = RuleConfig{Enabled: &enabled}
	cfg.Ignore = []string{"generated/**"}
	cfg.EnableRules = []string{"JF003"}

	clone := cfg.Clone()

	clone.Ignore[0] = "changed"
	clone.EnableRules[0] = "changed"
	*clone.Rules["indent-style"].Enabled = false

	if cfg.Ignore[0] != "generated/**" {
		t.Error("Clone shares Ignore slice")
	}
	if cfg.EnableRules[0] != "JF003" {
		t.Error("Clone shares EnableRules slice")
	}
	if !*cfg.Rules["indent-style"].Enabled {
		t.Error("Clone shares RuleConfig pointers")
	}
}

func TestFormatRuleID(t *testing.T) {
	tests := []struct {
		name   string
		format RuleFormat
		want   string
	}{
		{"name", RuleFormatName, "no-empty-statement"},
		{"id", RuleFormatID, "JF002"},
		{"combined", RuleFormatCombined, "JF002/no-empty-statement"},
		{"unknown defaults to name", RuleFormat("bogus"), "no-empty-statement"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatRuleID(tt.format, "JF002", "no-empty-statement")
			if got != tt.want {
				t.Errorf("FormatRuleID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatRuleIDEmptyName(t *testing.T) {
	if got := FormatRuleID(RuleFormatName, "JF001", ""); got != "JF001" {
		t.Errorf("FormatRuleID() = %q, want JF001", got)
	}
}
