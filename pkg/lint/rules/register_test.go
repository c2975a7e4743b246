package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkruer/jfmt/pkg/lint"
)

func TestRegisterAll(t *testing.T) {
	registry := lint.NewRegistry()
	RegisterAll(registry)

	wantIDs := []string{"JF001", "JF002", "JF003", "JF004"}
	assert.Equal(t, wantIDs, registry.IDs())

	wantNames := map[string]string{
		"JF001": "no-wildcard-imports",
		"JF002": "no-empty-statement",
		"JF003": "max-line-length",
		"JF004": "indent-style",
	}

	for id, name := range wantNames {
		rule, ok := registry.GetByID(id)
		require.True(t, ok, "rule %s should be registered", id)
		assert.Equal(t, name, rule.Name())

		byName, ok := registry.GetByName(name)
		require.True(t, ok, "rule %s should resolve by name", name)
		assert.Equal(t, id, byName.ID())
	}
}

func TestDefaultRegistryHasAllRules(t *testing.T) {
	for _, id := range []string{"JF001", "JF002", "JF003", "JF004"} {
		_, ok := lint.DefaultRegistry.GetByID(id)
		assert.True(t, ok, "rule %s should be in the default registry", id)
	}
}

func TestRuleMetadataConsistency(t *testing.T) {
	registry := lint.NewRegistry()
	RegisterAll(registry)

	for _, rule := range registry.Rules() {
		assert.NotEmpty(t, rule.ID())
		assert.NotEmpty(t, rule.Name())
		assert.NotEmpty(t, rule.Description())
		assert.True(t, rule.DefaultSeverity().IsValid(), "rule %s severity", rule.ID())
	}
}
