package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	doc, err := DecodeJSON(strings.NewReader(`{"pop":9007199254740993,"loc":[-72.5,42],"nested":{"n":1.25}}`))
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"pop":    int64(9007199254740993),
		"loc":    []any{-72.5, int64(42)},
		"nested": map[string]any{"n": 1.25},
	}, doc)
}

func TestDecodeJSON_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "trailing text", body: `{"city":"A"} trailing`},
		{name: "second document", body: `{"city":"A"}{"city":"B"}`},
		{name: "float overflow", body: `{"pop":1e400}`},
		{name: "truncated", body: `{"city":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeJSON(strings.NewReader(tt.body))
			assert.Error(t, err)
		})
	}
}

func TestDecodeJSON_TrailingWhitespace(t *testing.T) {
	doc, err := DecodeJSON(strings.NewReader("{\"pop\":1}\n\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"pop": int64(1)}, doc)
}

func TestDecodeJSON_ThenValidate(t *testing.T) {
	v := newTestValidator(t)

	doc, err := DecodeJSON(strings.NewReader(`{"city":"A","state":"MA","loc":[1,2.5],"pop":1.5}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"pop"}, fields(v.Validate(doc)))
}
