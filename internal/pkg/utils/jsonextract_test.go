package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tour-planning-service/internal/pkg/utils"
)

func TestExtractJSONObject(t *testing.T) {
	t.Run("bare object", func(t *testing.T) {
		span, ok := utils.ExtractJSONObject(`{"a": 1}`)
		assert.True(t, ok)
		assert.Equal(t, `{"a": 1}`, span)
	})

	t.Run("object wrapped in prose", func(t *testing.T) {
		in := "Sure! Here is the plan you asked for:\n{\"ordered_ids\": [3, 1, 2]}\nLet me know if you need anything else."
		span, ok := utils.ExtractJSONObject(in)
		assert.True(t, ok)
		assert.Equal(t, `{"ordered_ids": [3, 1, 2]}`, span)
	})

	t.Run("object inside code fence", func(t *testing.T) {
		in := "```json\n{\"circuit_name\": \"Old Medina\", \"stops\": []}\n```"
		span, ok := utils.ExtractJSONObject(in)
		assert.True(t, ok)
		assert.Equal(t, `{"circuit_name": "Old Medina", "stops": []}`, span)
	})

	t.Run("nested objects", func(t *testing.T) {
		in := `prefix {"a": {"b": {"c": 2}}, "d": [1, 2]} suffix`
		span, ok := utils.ExtractJSONObject(in)
		assert.True(t, ok)
		assert.Equal(t, `{"a": {"b": {"c": 2}}, "d": [1, 2]}`, span)
	})

	t.Run("braces inside string values are ignored", func(t *testing.T) {
		in := `{"name": "Café {Central}", "note": "uses \" and }"}`
		span, ok := utils.ExtractJSONObject(in)
		assert.True(t, ok)
		assert.Equal(t, in, span)
	})

	t.Run("no object present", func(t *testing.T) {
		_, ok := utils.ExtractJSONObject("the model refused to answer")
		assert.False(t, ok)
	})

	t.Run("unterminated object", func(t *testing.T) {
		_, ok := utils.ExtractJSONObject(`{"a": [1, 2`)
		assert.False(t, ok)
	})
}

func TestExtractJSONArray(t *testing.T) {
	t.Run("array wrapped in prose", func(t *testing.T) {
		span, ok := utils.ExtractJSONArray("ids follow: [1, 2, 3] done")
		assert.True(t, ok)
		assert.Equal(t, "[1, 2, 3]", span)
	})

	t.Run("nested arrays", func(t *testing.T) {
		span, ok := utils.ExtractJSONArray(`[[1], [2, [3]]]`)
		assert.True(t, ok)
		assert.Equal(t, `[[1], [2, [3]]]`, span)
	})

	t.Run("no array", func(t *testing.T) {
		_, ok := utils.ExtractJSONArray("{}")
		assert.False(t, ok)
	})
}
