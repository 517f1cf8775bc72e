package conversion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		ok    bool
	}{
		{"integer", "2", 2, true},
		{"decimal", "1.25", 1.25, true},
		{"bare fraction", "3/4", 0.75, true},
		{"mixed number", "1 3/4", 1.75, true},
		{"glyph", "½", 0.5, true},
		{"glyph after digit", "2½", 2.5, true},
		{"glyph after digit with space", "2 ½", 2.5, true},
		{"fraction slash", "1⁄4", 0.25, true},
		{"japanese connector glyph", "1と½", 1.5, true},
		{"japanese connector fraction", "1と1/2", 1.5, true},
		{"full width digits", "２", 2, true},
		{"full width fraction", "１／２", 0.5, true},
		{"hyphen range", "1-2", 1.5, true},
		{"en dash range", "2–4", 3, true},
		{"wave dash range", "2〜3", 2.5, true},
		{"range with one side", "3-", 3, true},
		{"range of fractions", "1/2-1", 0.75, true},
		{"summed tokens", "1 1/2 1/4", 1.75, true},
		{"first number fallback", "about 3 cups", 3, true},
		{"leading zeros", "01/02", 0.5, true},
		{"empty", "", 0, false},
		{"blank", "   ", 0, false},
		{"no digits", "abc", 0, false},
		{"range without numbers", "a-b", 0, false},
		{"zero denominator", "1/0", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAmount(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestParseAmountGlyphMatchesASCII(t *testing.T) {
	for _, f := range fractionGlyphs {
		for _, whole := range []string{"1", "2", "10"} {
			glyph, ok := ParseAmount(whole + f.glyph)
			require.True(t, ok, whole+f.glyph)
			ascii, ok := ParseAmount(whole + " " + f.ascii)
			require.True(t, ok, whole+" "+f.ascii)
			assert.InDelta(t, ascii, glyph, 1e-9, whole+f.glyph)
		}
	}
}

func TestParseAmountRangeIsMean(t *testing.T) {
	values := []string{"1", "2", "1/2", "3/4", "1 1/2", "2.5", "10"}
	for _, a := range values {
		for _, b := range values {
			left, ok := ParseAmount(a)
			require.True(t, ok)
			right, ok := ParseAmount(b)
			require.True(t, ok)

			got, ok := ParseAmount(a + "-" + b)
			require.True(t, ok, a+"-"+b)
			assert.InDelta(t, (left+right)/2, got, 1e-9, a+"-"+b)
		}
	}
}
