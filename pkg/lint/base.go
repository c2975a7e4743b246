package lint

import "github.com/tkruer/jfmt/pkg/config"

// RuleMeta holds the static properties of a rule.
type RuleMeta struct {
	// ID is the unique identifier (e.g., "JF001").
	ID string

	// Name is the human-readable name.
	Name string

	// Description explains what the rule checks.
	Description string

	// Tags categorize the rule.
	Tags []string

	// Fixable marks rules that can auto-fix their findings.
	Fixable bool

	// Severity overrides the default severity of warning when set.
	Severity config.Severity
}

// BaseRule provides a default implementation of the Rule interface.
// Embed this in rule implementations and override methods as needed.
type BaseRule struct {
	meta RuleMeta
}

// NewBaseRule creates a BaseRule from the given metadata.
func NewBaseRule(meta RuleMeta) BaseRule {
	if meta.Severity == "" {
		meta.Severity = config.SeverityWarning
	}
	return BaseRule{meta: meta}
}

// ID returns the unique identifier for this rule.
func (r *BaseRule) ID() string {
	return r.meta.ID
}

// Name returns the human-readable name of the rule.
func (r *BaseRule) Name() string {
	return r.meta.Name
}

// Description returns a detailed description of what the rule checks.
func (r *BaseRule) Description() string {
	return r.meta.Description
}

// DefaultEnabled returns whether the rule is enabled by default.
// Override this method to change the default.
func (r *BaseRule) DefaultEnabled() bool {
	return true
}

// DefaultSeverity returns the severity from the rule metadata.
func (r *BaseRule) DefaultSeverity() config.Severity {
	return r.meta.Severity
}

// Tags returns categorization tags for this rule.
func (r *BaseRule) Tags() []string {
	return r.meta.Tags
}

// CanFix returns whether this rule can auto-fix issues.
func (r *BaseRule) CanFix() bool {
	return r.meta.Fixable
}

// Apply must be overridden by concrete rule implementations.
// The default implementation returns no diagnostics.
func (r *BaseRule) Apply(_ *RuleContext) ([]Diagnostic, error) {
	return nil, nil
}
