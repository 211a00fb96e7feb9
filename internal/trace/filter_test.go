package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsExcluded(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want bool
	}{
		{"plain union", `{"id": 1, "flags": ["Union"], "unionTypes": [2, 3]}`, false},
		{"node_modules", `{"id": 1, "flags": ["Object"], "firstDeclaration": {"path": "/p/node_modules/x/index.ts"}}`, true},
		{"test file", `{"id": 1, "flags": ["Object"], "firstDeclaration": {"path": "/p/src/foo.test.ts"}}`, true},
		{"test utils", `{"id": 1, "flags": ["Object"], "firstDeclaration": {"path": "/p/src/foo.test.utils.ts"}}`, true},
		{"integration", `{"id": 1, "flags": ["Object"], "firstDeclaration": {"path": "/p/src/api.integration.ts"}}`, true},
		{"config", `{"id": 1, "flags": ["Object"], "firstDeclaration": {"path": "/p/vite.config.ts"}}`, true},
		{"declaration file", `{"id": 1, "flags": ["Object"], "firstDeclaration": {"path": "/p/lib/dom.d.ts"}}`, true},
		{"source file", `{"id": 1, "flags": ["Object"], "firstDeclaration": {"path": "/p/src/testing.ts"}}`, false},
		{"reference location", `{"id": 1, "flags": ["Object"], "referenceLocation": {"path": "/p/types.d.ts"}}`, true},
		{"first declaration wins", `{"id": 1, "flags": ["Object"], "firstDeclaration": {"path": "/p/a.ts"}, "referenceLocation": {"path": "/p/a.d.ts"}}`, false},
		{"empty declaration path", `{"id": 1, "flags": ["Object"], "symbolName": "Foo", "firstDeclaration": {"path": ""}, "referenceLocation": {"path": "/p/node_modules/x/a.ts"}}`, false},
		{"destructuring pattern ignored", `{"id": 1, "flags": ["Object"], "destructuringPattern": {"path": "/p/a.d.ts"}}`, false},
		{"arrow function", `{"id": 1, "flags": ["Object"], "display": "(x) => x"}`, true},
		{"arrow anywhere", `{"id": 1, "flags": ["Union"], "display": "string | (() => void)"}`, true},
		{"globalThis", `{"id": 1, "flags": ["Object"], "symbolName": "globalThis"}`, true},
		{"globalThis prefix only", `{"id": 1, "flags": ["Object"], "symbolName": "globalThisish"}`, false},
		{"number literal", `{"id": 1, "flags": ["NumberLiteral"]}`, true},
		{"boolean literal", `{"id": 1, "flags": ["BooleanLiteral"]}`, true},
		{"enum literal", `{"id": 1, "flags": ["EnumLiteral", "Union"]}`, true},
		{"bigint literal", `{"id": 1, "flags": ["BigIntLiteral"]}`, true},
		{"string literal kept", `{"id": 1, "flags": ["StringLiteral"]}`, false},
		{"template literal kept", `{"id": 1, "flags": ["TemplateLiteral"]}`, false},
		{"string and number literal", `{"id": 1, "flags": ["StringLiteral", "NumberLiteral"]}`, true},
	}
	f := NewFilter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.IsExcluded(record(t, tt.src)))
		})
	}
}

func TestNodeModulesDeclarationExcludedByEitherRule(t *testing.T) {
	r := record(t, `{"id": 1, "flags": ["Object"], "firstDeclaration": {"path": "/project/node_modules/foo/index.d.ts"}}`)

	assert.True(t, NewFilter().IsExcluded(r))
	assert.True(t, NewFilter().Without(RuleNodeModules.Name).IsExcluded(r))
	assert.True(t, NewFilter().Without(RuleDeclFiles.Name).IsExcluded(r))
	assert.False(t, NewFilter().Without(RuleNodeModules.Name, RuleDeclFiles.Name).IsExcluded(r))
}

func TestWithoutLeavesOriginalUntouched(t *testing.T) {
	f := NewFilter()
	g := f.Without(RuleTestFiles.Name)
	assert.Len(t, f.Rules(), 4)
	assert.Len(t, g.Rules(), 3)
}
