package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"typetrace/internal/model"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want model.Category
	}{
		{"unstructured", `{"id": 1, "flags": ["Object"], "symbolName": "__type"}`, model.CategoryUnstructured},
		{"type alias", `{"id": 1, "flags": ["Object"], "aliasTypeArguments": [2]}`, model.CategoryTypeAlias},
		{"instantiation", `{"id": 1, "flags": ["Object"], "instantiatedType": 2, "typeArguments": [3]}`, model.CategoryTypeInstantiation},
		{"string literal", `{"id": 1, "flags": ["StringLiteral"], "display": "\"a\""}`, model.CategoryStringLiteral},
		{"union", `{"id": 1, "flags": ["Union"], "unionTypes": [2, 3]}`, model.CategoryUnion},
		{"intersection", `{"id": 1, "flags": ["Intersection"], "intersectionTypes": [2, 3]}`, model.CategoryIntersection},
		{"substitution", `{"id": 1, "flags": ["Substitution"], "substitutionBaseType": 2, "constraintType": 3}`, model.CategorySubstitution},
		{"type definition", `{"id": 1, "flags": ["Object"], "symbolName": "Foo", "firstDeclaration": {"path": "/src/foo.ts"}}`, model.CategoryTypeDefinition},
		{"conditional", `{"id": 1, "flags": ["Conditional"], "conditionalCheckType": 2, "conditionalExtendsType": 3}`, model.CategoryConditional},
		{"conditional without check type", `{"id": 1, "flags": ["Conditional"]}`, model.CategoryUnknown},
		{"intrinsic", `{"id": 1, "flags": ["String"], "intrinsicName": "string"}`, model.CategoryIntrinsic},
		{"intrinsic without flags", `{"id": 1, "flags": [], "intrinsicName": "any"}`, model.CategoryIntrinsic},
		{"template literal", `{"id": 1, "flags": ["TemplateLiteral"]}`, model.CategoryTemplateLiteral},
		{"empty object", `{"id": 1, "flags": ["Object"], "display": "{}"}`, model.CategoryEmptyObject},
		{"type parameter", `{"id": 1, "flags": ["TypeParameter"], "symbolName": "T"}`, model.CategoryTypeParameter},
		{"key type", `{"id": 1, "flags": ["Index"], "keyofType": 2}`, model.CategoryKeyType},
		{"property access", `{"id": 1, "flags": ["IndexedAccess"], "indexedAccessObjectType": 2, "indexedAccessIndexType": 3}`, model.CategoryPropertyAccess},
		{"opaque", `{"id": 1, "flags": ["Object"], "display": "{ a: string; }"}`, model.CategoryOpaqueType},
		{"evolving array", `{"id": 1, "flags": ["Object"], "evolvingArrayElementType": 2, "evolvingArrayFinalType": 3}`, model.CategoryEvolvingArray},
		{"unique symbol", `{"id": 1, "flags": ["UniqueESSymbol"], "symbolName": "sym"}`, model.CategoryUniqueSymbol},
		{"nothing matches", `{"id": 1, "flags": ["Never"]}`, model.CategoryUnknown},
		{"unknown flag", `{"id": 1, "flags": ["Bogus"]}`, model.CategoryUnknown},
		{"object without markers", `{"id": 1, "flags": ["Object"]}`, model.CategoryUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := record(t, tt.src)
			assert.Equal(t, tt.want, Categorize(r))
			assert.Equal(t, tt.want, Classify(r).Category())
		})
	}
}

func TestPriorityOrder(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want model.Category
	}{
		{
			"union beats intrinsic and other fields",
			`{"id": 1, "flags": ["Union"], "unionTypes": [2], "intrinsicName": "boolean", "display": "boolean"}`,
			model.CategoryUnion,
		},
		{
			"unstructured beats union",
			`{"id": 1, "flags": ["Union", "Object"], "unionTypes": [2], "symbolName": "__type"}`,
			model.CategoryUnstructured,
		},
		{
			"type alias beats instantiation",
			`{"id": 1, "flags": ["Object"], "aliasTypeArguments": [2], "instantiatedType": 3}`,
			model.CategoryTypeAlias,
		},
		{
			"instantiation beats type definition",
			`{"id": 1, "flags": ["Object"], "instantiatedType": 3, "symbolName": "Array", "firstDeclaration": {"path": "/a.ts"}}`,
			model.CategoryTypeInstantiation,
		},
		{
			"string literal beats union",
			`{"id": 1, "flags": ["StringLiteral", "Union"]}`,
			model.CategoryStringLiteral,
		},
		{
			"type definition beats empty object",
			`{"id": 1, "flags": ["Object"], "display": "{}", "symbolName": "Empty", "firstDeclaration": {"path": "/a.ts"}}`,
			model.CategoryTypeDefinition,
		},
		{
			"empty object beats opaque",
			`{"id": 1, "flags": ["Object"], "display": "{}"}`,
			model.CategoryEmptyObject,
		},
		{
			"opaque beats evolving array",
			`{"id": 1, "flags": ["Object"], "display": "any[]", "evolvingArrayElementType": 2, "evolvingArrayFinalType": 3}`,
			model.CategoryOpaqueType,
		},
		{
			"intrinsic beats template literal",
			`{"id": 1, "flags": ["TemplateLiteral"], "intrinsicName": "x"}`,
			model.CategoryIntrinsic,
		},
		{
			"type parameter beats key type",
			`{"id": 1, "flags": ["Index", "TypeParameter"]}`,
			model.CategoryTypeParameter,
		},
		{
			"opaque needs only the display key",
			`{"id": 1, "flags": ["Object"], "display": null}`,
			model.CategoryOpaqueType,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(record(t, tt.src)))
		})
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	r := record(t, `{"id": 5, "flags": ["Object"], "display": "Foo", "instantiatedType": 4}`)
	first := Classify(r)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(r))
	}
}

func TestClassifyNarrowsShape(t *testing.T) {
	shape := Classify(record(t, `{"id": 7, "flags": ["Union"], "recursionId": 3, "unionTypes": [8, 9], "display": "a | b"}`))
	union, ok := shape.(model.UnionType)
	require.True(t, ok)
	assert.Equal(t, model.TypeID(7), union.TypeID())
	assert.Equal(t, []model.TypeID{8, 9}, union.UnionTypes)
	require.NotNil(t, union.RecursionID)
	assert.Equal(t, int64(3), *union.RecursionID)

	shape = Classify(record(t, `{"id": 9, "flags": ["Object"], "symbolName": "Foo", "firstDeclaration": {"path": "/src/foo.ts"}}`))
	def, ok := shape.(model.TypeDefinition)
	require.True(t, ok)
	assert.Equal(t, "Foo", def.SymbolName)
	assert.Equal(t, "/src/foo.ts", def.FirstDeclaration.Path)

	shape = Classify(record(t, `{"id": 11, "flags": ["Never"]}`))
	unknown, ok := shape.(model.UnknownType)
	require.True(t, ok)
	assert.Equal(t, model.TypeID(11), unknown.TypeID())
	assert.True(t, unknown.Record.Has(model.FieldFlags))
}

func TestChainShapesReportTheirCategory(t *testing.T) {
	r := record(t, `{"id": 2, "flags": ["Object"], "symbolName": "__type"}`)
	seen := make(map[model.Category]bool)
	for _, step := range chain {
		assert.Equal(t, step.category, step.narrow(r).Category())
		assert.False(t, seen[step.category], "%s appears twice", step.category)
		seen[step.category] = true
	}
	assert.Len(t, seen, len(model.Categories)-1)
}
