package schema

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw json.RawMessage) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestStringBuilder(t *testing.T) {
	raw, err := String().Desc("a name").Enum("a", "b").Build()
	require.NoError(t, err)
	got := decode(t, raw)
	assert.Equal(t, "string", got["type"])
	assert.Equal(t, "a name", got["description"])
	assert.Equal(t, []any{"a", "b"}, got["enum"])
}

func TestStringBuilderPattern(t *testing.T) {
	_, err := String().Pattern(`^[a-z]+$`).Build()
	assert.NoError(t, err)

	_, err = String().Pattern(`([`).Build()
	assert.ErrorIs(t, err, ErrInvalidPattern)
}

func TestNumberBuilder(t *testing.T) {
	raw, err := Number().Min(0).Max(10).Build()
	require.NoError(t, err)
	got := decode(t, raw)
	assert.Equal(t, "number", got["type"])
	assert.Equal(t, 0.0, got["minimum"])
	assert.Equal(t, 10.0, got["maximum"])

	_, err = Integer().Min(5).Max(1).Build()
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestArrayBuilder(t *testing.T) {
	raw, err := Array(String()).MinItems(1).Build()
	require.NoError(t, err)
	got := decode(t, raw)
	assert.Equal(t, "array", got["type"])
	items, ok := got["items"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "string", items["type"])
	assert.Equal(t, 1.0, got["minItems"])

	_, err = Array(nil).Build()
	assert.ErrorIs(t, err, ErrNilItems)
}

func TestObjectBuilder(t *testing.T) {
	raw, err := Object().
		Field("text", String().Desc("content").Required()).
		Field("wrap", Bool()).
		Field("children", Array(String())).
		AdditionalProperties(false).
		Build()
	require.NoError(t, err)

	got := decode(t, raw)
	assert.Equal(t, "object", got["type"])
	assert.Equal(t, []any{"text"}, got["required"])
	assert.Equal(t, false, got["additionalProperties"])

	props, ok := got["properties"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, props, 3)
	text, _ := props["text"].(map[string]any)
	assert.Equal(t, "content", text["description"])
}

func TestObjectBuilderNestedValidation(t *testing.T) {
	_, err := Object().
		Field("count", Integer().Min(10).Max(1)).
		Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRange))
}

func TestObjectBuilderRejectsBadField(t *testing.T) {
	assert.Panics(t, func() {
		Object().Field("oops", "not a builder")
	})
}

func TestMustBuild(t *testing.T) {
	assert.NotPanics(t, func() {
		Object().Field("ok", String()).MustBuild()
	})
	assert.Panics(t, func() {
		Array(nil).MustBuild()
	})
}
