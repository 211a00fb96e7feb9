package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want bool
	}{
		{"minimal", `{"id": 1, "flags": []}`, true},
		{"full", `{"id": 1, "flags": ["Union"], "recursionId": 2, "unionTypes": [3, 4]}`, true},
		{"id may be any value", `{"id": null, "flags": ["Object"]}`, true},
		{"null", `null`, false},
		{"array", `[{"id": 1, "flags": []}]`, false},
		{"string", `"types"`, false},
		{"missing id", `{"flags": []}`, false},
		{"missing flags", `{"id": 1}`, false},
		{"null flags", `{"id": 1, "flags": null}`, false},
		{"flags not an array", `{"id": 1, "flags": "Union"}`, false},
		{"flags object", `{"id": 1, "flags": {"0": "Union"}}`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValid(value(t, tt.src)))
		})
	}
}

func TestIsValidNonJSONValues(t *testing.T) {
	assert.False(t, IsValid(nil))
	assert.False(t, IsValid(map[string]any(nil)))
	assert.False(t, IsValid(42))
}
