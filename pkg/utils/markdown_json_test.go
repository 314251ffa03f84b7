package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fence(body string) string {
	return "Here is your itinerary:\n```json\n" + body + "\n```\nEnjoy!"
}

func TestExtractMarkdownJSON_WellFormed(t *testing.T) {
	value, err := ExtractMarkdownJSON(fence(`{"name": "Tokyo Adventure", "duration": 5}`))
	require.NoError(t, err)

	obj, ok := value.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Tokyo Adventure", obj["name"])
	assert.Equal(t, float64(5), obj["duration"])
}

func TestExtractMarkdownJSON_NoFence(t *testing.T) {
	_, err := ExtractMarkdownJSON(`{"name": "no fence around me"}`)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoFencedBlock)
	assert.ErrorIs(t, err, ErrInvalidAIOutput)
}

func TestExtractMarkdownJSON_PlainFenceIgnored(t *testing.T) {
	_, err := ExtractMarkdownJSON("```\n{\"name\": \"wrong fence language\"}\n```")
	assert.ErrorIs(t, err, ErrNoFencedBlock)
}

func TestExtractMarkdownJSON_RepairsCollapsedTimeObject(t *testing.T) {
	body := `{"activities": [{"time": "Morning": "Walk the old town"}]}`
	value, err := ExtractMarkdownJSON(fence(body))
	require.NoError(t, err)

	obj := value.(map[string]any)
	activities := obj["activities"].([]any)
	first := activities[0].(map[string]any)
	assert.Equal(t, "Morning", first["time"])
	assert.Equal(t, "Walk the old town", first["description"])
}

func TestExtractMarkdownJSON_RepairsBareTimePair(t *testing.T) {
	body := `{"activities": ["Evening": "Dinner by the river"]}`
	value, err := ExtractMarkdownJSON(fence(body))
	require.NoError(t, err)

	obj := value.(map[string]any)
	activities := obj["activities"].([]any)
	first := activities[0].(map[string]any)
	assert.Equal(t, "Evening", first["time"])
	assert.Equal(t, "Dinner by the river", first["description"])
}

func TestExtractMarkdownJSON_RepairsMissingComma(t *testing.T) {
	body := "{\"itinerary\": [{\"day\": 1}\n{\"day\": 2}]}"
	value, err := ExtractMarkdownJSON(fence(body))
	require.NoError(t, err)

	obj := value.(map[string]any)
	itinerary := obj["itinerary"].([]any)
	require.Len(t, itinerary, 2)
}

func TestExtractMarkdownJSON_Unrepairable(t *testing.T) {
	_, err := ExtractMarkdownJSON(fence(`{"name": totally broken [[[`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnrepairableJSON)
	assert.ErrorIs(t, err, ErrInvalidAIOutput)
}

func TestRepairJSON_Idempotent(t *testing.T) {
	inputs := []string{
		`{"time": "Morning": "Visit the castle"}`,
		`"Afternoon": "Museum tour"`,
		"{\"day\": 1}\n{\"day\": 2}",
		`"last activity" } ]`,
		`{"name": "already fine", "duration": 3}`,
	}
	for _, in := range inputs {
		once := RepairJSON(in)
		twice := RepairJSON(once)
		assert.Equal(t, once, twice, "repair must be stable for %q", in)
	}
}

func TestRepairJSON_LeavesValidActivityAlone(t *testing.T) {
	valid := `{"time": "Morning", "description": "Walk"}`
	assert.Equal(t, valid, RepairJSON(valid))
}
