package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "bare array", input: `[{"title":"a"}]`, want: `[{"title":"a"}]`},
		{name: "json fence", input: "```json\n[{\"title\":\"a\"}]\n```", want: `[{"title":"a"}]`},
		{name: "plain fence", input: "```\n[1]\n```", want: `[1]`},
		{name: "leading chatter", input: "Sure! Here you go:\n[1, 2]\nHope that helps.", want: `[1, 2]`},
		{name: "no array", input: `{"title":"a"}`, want: `{"title":"a"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanJSON(tt.input))
		})
	}
}

func TestParseSuggestions(t *testing.T) {
	t.Run("drops untitled entries", func(t *testing.T) {
		got, err := parseSuggestions(`[{"title":"  Switch energy plan ","description":" Compare retailers. "},{"description":"no title"}]`)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Switch energy plan", got[0].Title)
		assert.Equal(t, "Compare retailers.", got[0].Description)
		assert.Nil(t, got[0].PotentialSavings)
	})

	t.Run("single object", func(t *testing.T) {
		got, err := parseSuggestions(`{"title":"Cook at home","potentialSavings":120.5}`)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "120.5", got[0].PotentialSavings.String())
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := parseSuggestions("no idea")
		require.Error(t, err)
	})
}
