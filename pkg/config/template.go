package config

// StarterTOML is the commented jfmt.toml written by `jfmt init`.
const StarterTOML = `# jfmt configuration
# See: https://github.com/tkruer/jfmt

# Indentation style: "spaces" or "tabs"
indent_style = "spaces"

# Spaces per indent level (used when indent_style = "spaces",
# and for alignment checks when converting to tabs)
indent_width = 4

# Line length budget in characters
max_line_length = 100

# Per-rule settings. Rules may be addressed by ID or name.
# [rules.no-wildcard-imports]
# enabled = false
#
# [rules.max-line-length]
# severity = "error"
`
