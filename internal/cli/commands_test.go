package cli

import (
	"testing"

	"grocery_admin/internal/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitAction(t *testing.T) {
	action, rest := splitAction(nil, "list")
	assert.Equal(t, "list", action)
	assert.Empty(t, rest)

	action, rest = splitAction([]string{"RM", "4"}, "list")
	assert.Equal(t, "rm", action)
	assert.Equal(t, []string{"4"}, rest)
}

func TestParsePageArg(t *testing.T) {
	assert.Equal(t, 2, parsePageArg(nil, 2))
	assert.Equal(t, 5, parsePageArg([]string{"5"}, 2))
	assert.Equal(t, 2, parsePageArg([]string{"zero"}, 2))
	assert.Equal(t, 2, parsePageArg([]string{"-1"}, 2))
}

func TestParseID(t *testing.T) {
	id, err := parseID([]string{"7"})
	require.NoError(t, err)
	assert.Equal(t, 7, id)

	_, err = parseID(nil)
	assert.Error(t, err)
	_, err = parseID([]string{"abc"})
	assert.Error(t, err)
	_, err = parseID([]string{"0"})
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	date, err := parseDate("2024-11-05")
	require.NoError(t, err)
	assert.Equal(t, 2024, date.Year())

	_, err = parseDate("05/11/2024")
	assert.Error(t, err)
}

func TestFormatWeightsCollapsedAndExpanded(t *testing.T) {
	row := api.StockRow{
		WeightMeasurement: "g",
		Weights: []api.WeightOption{
			{Weight: "250", Price: 40, Quantity: 5},
			{Weight: "500", Price: 75, Quantity: 3},
			{Weight: "1000", Price: 140, Quantity: 1},
		},
	}

	collapsed := formatWeights(row, false)
	assert.Contains(t, collapsed, "250g @40.00 x5")
	assert.Contains(t, collapsed, "(+2 more)")
	assert.NotContains(t, collapsed, "500g")

	expanded := formatWeights(row, true)
	assert.Contains(t, expanded, "500g @75.00 x3")
	assert.Contains(t, expanded, "1000g @140.00 x1")
	assert.NotContains(t, expanded, "more)")

	assert.Equal(t, "-", formatWeights(api.StockRow{}, false))
}
