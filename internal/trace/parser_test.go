package trace

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAll(t *testing.T) {
	values, err := NewParser().ParseAll(strings.NewReader(`[
		{"id": 1, "flags": ["Union"]},
		null,
		42,
		{"id": 9007199254740993, "flags": []}
	]`))
	require.NoError(t, err)
	require.Len(t, values, 4)
	assert.Nil(t, values[1])

	last := values[3].(map[string]any)
	assert.Equal(t, json.Number("9007199254740993"), last["id"])
}

func TestParseAllEmptyArray(t *testing.T) {
	values, err := NewParser().ParseAll(strings.NewReader(`[]`))
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestParseRejectsNonArray(t *testing.T) {
	_, err := NewParser().ParseAll(strings.NewReader(`{"id": 1, "flags": []}`))
	assert.True(t, errors.Is(err, ErrNotArray))
}

func TestParseReportsTruncatedInput(t *testing.T) {
	values, err := NewParser().ParseAll(strings.NewReader(`[{"id": 1, "flags": []}, {"id": 2,`))
	require.Error(t, err)
	assert.Len(t, values, 1)
}
