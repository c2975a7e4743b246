package lint

import "github.com/tkruer/jfmt/pkg/config"

// ResolvedRule pairs a Rule with its resolved configuration.
type ResolvedRule struct {
	// Rule is the underlying rule implementation.
	Rule Rule

	// Enabled indicates whether the rule should be run.
	Enabled bool

	// Severity is the resolved severity for diagnostics from this rule.
	Severity config.Severity

	// AutoFix indicates whether auto-fix is enabled for this rule.
	AutoFix bool

	// Config is the rule-specific configuration (may be nil).
	Config *config.RuleConfig
}

// ResolveRules determines which rules to run based on registry and config.
// Returns only enabled rules with their resolved configuration, in rule ID
// order.
func ResolveRules(registry *Registry, cfg *config.Config) []ResolvedRule {
	var resolved []ResolvedRule

	for _, rule := range registry.Rules() {
		rr := resolveRule(registry, rule, cfg)
		if rr.Enabled {
			resolved = append(resolved, rr)
		}
	}

	return resolved
}

// resolveRule resolves the configuration for a single rule.
func resolveRule(registry *Registry, rule Rule, cfg *config.Config) ResolvedRule {
	rr := ResolvedRule{
		Rule:     rule,
		Enabled:  rule.DefaultEnabled(),
		Severity: rule.DefaultSeverity(),
		AutoFix:  rule.CanFix(),
		Config:   nil,
	}

	if cfg == nil {
		return rr
	}

	if cfg.SeverityDefault != "" && config.Severity(cfg.SeverityDefault).IsValid() {
		rr.Severity = config.Severity(cfg.SeverityDefault)
	}

	// Check for explicit enable/disable from CLI. Keys may be IDs or names.
	for _, key := range cfg.EnableRules {
		if matchesRule(registry, rule, key) {
			rr.Enabled = true
			break
		}
	}
	for _, key := range cfg.DisableRules {
		if matchesRule(registry, rule, key) {
			rr.Enabled = false
			break
		}
	}

	// Apply rule-specific config, addressed by ID or name.
	ruleCfg, ok := cfg.Rules[rule.ID()]
	if !ok {
		ruleCfg, ok = cfg.Rules[rule.Name()]
	}
	if ok {
		rr.Config = &ruleCfg

		if ruleCfg.Enabled != nil {
			rr.Enabled = *ruleCfg.Enabled
		}
		if ruleCfg.Severity != nil {
			rr.Severity = config.Severity(*ruleCfg.Severity)
		}
		if ruleCfg.AutoFix != nil {
			rr.AutoFix = *ruleCfg.AutoFix && rule.CanFix()
		}
	}

	// Apply fix-rules filter from CLI.
	if len(cfg.FixRules) > 0 {
		rr.AutoFix = false
		for _, key := range cfg.FixRules {
			if matchesRule(registry, rule, key) && rule.CanFix() {
				rr.AutoFix = true
				break
			}
		}
	}

	// Disable auto-fix if --fix is not set.
	if !cfg.Fix {
		rr.AutoFix = false
	}

	return rr
}

// matchesRule reports whether key identifies rule by ID or name.
func matchesRule(registry *Registry, rule Rule, key string) bool {
	if key == rule.ID() || key == rule.Name() {
		return true
	}
	if registry != nil {
		if id, _, found := registry.Resolve(key); found {
			return id == rule.ID()
		}
	}
	return false
}
