// Package rules provides the built-in lint rules for jfmt.
//
// # Rule Domains
//
// This package contains rule implementations across several domains:
//
//   - Imports:
//
//   - JF001: no-wildcard-imports - Import declarations should name explicit classes
//
//   - Statements:
//
//   - JF002: no-empty-statement - Stray empty statements should be removed
//
//   - Layout:
//
//   - JF003: max-line-length - Line length should not exceed the configured maximum
//
//   - JF004: indent-style - Indentation should use the configured style
//
// # Registration
//
// All rules register themselves with lint.DefaultRegistry during init().
// Importing this package (typically with a blank import from the CLI)
// makes the full rule set available:
//
//	import _ "github.com/tkruer/jfmt/pkg/lint/rules"
//
// Alternatively, RegisterAll populates an explicit registry for callers
// that want to assemble their own rule set.
//
// # Fix Behavior
//
// JF002 and JF004 can auto-fix. Each fixable diagnostic carries edits
// computed against the original file content; the fix engine validates,
// orders, and applies them in a single reconstruction pass. A rule emits
// at most one edit per flagged construct, so edits from one rule never
// overlap each other.
package rules
