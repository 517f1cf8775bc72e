package conversion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	c := NewConverter(nil, Options{})

	tests := map[string]string{
		"Sugar":                    "sugar",
		"  milk ":                  "milk",
		"Chocolate Chips":          "chocolate chunks",
		"caster sugar":             "sugar",
		"icing sugar":              "powdered sugar",
		"eggs":                     "egg",
		"unsalted butter":          "butter",
		"softened butter":          "butter",
		"extra virgin olive oil":   "olive oil",
		"dark brown sugar":         "brown sugar",
		"self-raising flour":       "flour",
		"strong white bread flour": "bread flour",
		"dragon fruit":             "dragon fruit",
		"薄力粉":                      "薄力粉",
		"":                         "",
	}
	for input, want := range tests {
		assert.Equal(t, want, c.Normalize(input), input)
	}
}

func TestNormalizeWholeWordOnly(t *testing.T) {
	c := NewConverter(nil, Options{})
	// "eggplant" 不應被當成 egg
	assert.Equal(t, "eggplant", c.Normalize("eggplant"))
	assert.Equal(t, "saltines", c.Normalize("saltines"))
}

func TestNormalizeFuzzy(t *testing.T) {
	strict := NewConverter(nil, Options{})
	assert.Equal(t, "buter", strict.Normalize("buter"))

	fuzzy := NewConverter(nil, Options{FuzzyThreshold: 0.8})
	assert.Equal(t, "butter", fuzzy.Normalize("buter"))
	assert.Equal(t, "vanilla extract", fuzzy.Normalize("vanila extract"))
	assert.Equal(t, "dragon fruit", fuzzy.Normalize("dragon fruit"))
}

func TestContainsWord(t *testing.T) {
	assert.True(t, containsWord("large egg", "egg"))
	assert.True(t, containsWord("egg, beaten", "egg"))
	assert.False(t, containsWord("eggs", "egg"))
	assert.False(t, containsWord("veggie", "egg"))
	assert.True(t, containsWord("veggie egg", "egg"))
}
