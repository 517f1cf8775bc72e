package conversion

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertRecipeToMetric(t *testing.T) {
	c := NewConverter(nil, Options{})

	recipe := strings.Join([]string{
		"1 cup sugar",
		"",
		"2 large eggs, beaten",
		"1 cup mashed bananas",
		"1 pinch salt",
		"Salt and pepper",
		"2 cups dragon fruit",
		"1/2 cup milk",
	}, "\n")

	got := c.ConvertRecipe(recipe, SystemUS, SystemMetric)
	require.Len(t, got, 7)

	assert.Equal(t, Record{Ingredient: "砂糖", Amount: Number(200), Unit: "g"}, got[0])
	assert.Equal(t, Record{Ingredient: "卵", Comment: "beaten", Amount: Number(2), Unit: "piece"}, got[1])
	assert.Equal(t, Record{Ingredient: "バナナ（つぶしたもの）", Amount: Number(200), Unit: "g"}, got[2])
	assert.Equal(t, Record{Ingredient: "salt", Unit: "pinch"}, got[3])
	assert.Equal(t, Record{Ingredient: "Salt and pepper"}, got[4])
	assert.Equal(t, Record{Ingredient: "dragon fruit", Amount: Number(2), Unit: "cup"}, got[5])
	assert.Equal(t, Record{Ingredient: "牛乳", Amount: Number(120), Unit: "ml"}, got[6])
}

func TestConvertRecipeKeepsRawLineWithoutName(t *testing.T) {
	c := NewConverter(nil, Options{})

	got := c.ConvertRecipe("2 cups\n3", SystemUS, SystemMetric)
	require.Len(t, got, 2)
	assert.Equal(t, Record{Ingredient: "2 cups", Amount: Number(2), Unit: "cup"}, got[0])
	assert.Equal(t, Record{Ingredient: "3", Amount: Number(3), Unit: "piece"}, got[1])
}

func TestConvertRecipeFromMetricToUS(t *testing.T) {
	c := NewConverter(nil, Options{})

	recipe := "バター 50g\n牛乳 120ml\n卵 2個\n塩 少々\n薄力粉 240ml"
	got := c.ConvertRecipe(recipe, SystemMetric, SystemUS)
	require.Len(t, got, 5)

	assert.Equal(t, Record{Ingredient: "butter", Amount: Number(1.8), Unit: "oz"}, got[0])
	assert.Equal(t, "milk", got[1].Ingredient)
	assert.Equal(t, "1/2", got[1].Amount.Fraction)
	assert.Equal(t, "cup", got[1].Unit)
	assert.Equal(t, Record{Ingredient: "egg", Amount: Number(2), Unit: ""}, got[2])
	assert.Equal(t, Record{Ingredient: "塩", Unit: "pinch"}, got[3])
	assert.Equal(t, Record{Ingredient: "flour", Amount: Number(1), Unit: "cup"}, got[4])
}

func TestConvertRecipeFromMetricToUK(t *testing.T) {
	c := NewConverter(nil, Options{})

	got := c.ConvertRecipe("砂糖 100g\n卵 3個", SystemMetric, SystemUK)
	require.Len(t, got, 2)
	assert.Equal(t, Record{Ingredient: "sugar", Amount: Number(100), Unit: "g"}, got[0])
	assert.Equal(t, Record{Ingredient: "egg", Amount: Number(3), Unit: ""}, got[1])
}

func TestConvertRecipeKeepsOrder(t *testing.T) {
	c := NewConverter(nil, Options{Workers: 8})

	var lines []string
	for i := 1; i <= 200; i++ {
		lines = append(lines, fmt.Sprintf("%d g item%d", i, i))
	}
	got := c.ConvertRecipe(strings.Join(lines, "\n"), SystemMetric, SystemMetric)
	require.Len(t, got, 200)
	for i, rec := range got {
		assert.Equal(t, fmt.Sprintf("item%d", i+1), rec.Ingredient)
		assert.InDelta(t, float64(i+1), rec.Amount.Value, 1e-9)
	}
}

func TestConvertRecipeEmpty(t *testing.T) {
	c := NewConverter(nil, Options{})
	got := c.ConvertRecipe(" \n\n \r\n", SystemUS, SystemMetric)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestResultJSON(t *testing.T) {
	c := NewConverter(nil, Options{})
	res := Result{ConvertedRecipe: c.ConvertRecipe("1 pinch salt\n1 cup sugar", SystemUS, SystemMetric)}

	data, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"converted_recipe":[
		{"ingredient":"salt","comment":"","amount":null,"unit":"pinch"},
		{"ingredient":"砂糖","comment":"","amount":200,"unit":"g"}
	]}`, string(data))
}
