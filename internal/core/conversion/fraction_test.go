package conversion

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundFraction(t *testing.T) {
	tests := []struct {
		value    float64
		maxDen   int64
		fraction string
		number   float64
	}{
		{value: 2, maxDen: 8, number: 2},
		{value: 0.5, maxDen: 8, fraction: "1/2"},
		{value: 1.5, maxDen: 8, fraction: "1 1/2"},
		{value: 0.333, maxDen: 8, fraction: "1/3"},
		{value: 0.6667, maxDen: 8, fraction: "2/3"},
		{value: 0.83, maxDen: 8, fraction: "5/6"},
		{value: 2.125, maxDen: 8, fraction: "2 1/8"},
		{value: 0.6, maxDen: 2, fraction: "1/2"},
		{value: 1.9, maxDen: 2, number: 2},
		{value: 0.26, maxDen: 2, fraction: "1/2"},
		{value: 1.99, maxDen: 8, number: 2},
	}

	for _, tt := range tests {
		got := RoundFraction(tt.value, tt.maxDen)
		require.True(t, got.Valid)
		if tt.fraction != "" {
			assert.Equal(t, tt.fraction, got.Fraction, "value %v", tt.value)
			continue
		}
		assert.Empty(t, got.Fraction, "value %v", tt.value)
		assert.Equal(t, tt.number, got.Value, "value %v", tt.value)
	}
}

func TestLimitDenominatorBound(t *testing.T) {
	for _, maxDen := range []int64{1, 2, 3, 8, 16} {
		for num := int64(1); num < 400; num += 7 {
			x := big.NewRat(num, 100)
			got := limitDenominator(x, maxDen)
			assert.LessOrEqual(t, got.Denom().Int64(), maxDen, "%s max %d", x, maxDen)
		}
	}
}

func TestAmountJSON(t *testing.T) {
	data, err := json.Marshal([]Amount{{}, Number(1.5), RoundFraction(0.5, 8)})
	require.NoError(t, err)
	assert.JSONEq(t, `[null, 1.5, "1/2"]`, string(data))

	var decoded []Amount
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 3)
	assert.False(t, decoded[0].Valid)
	assert.Equal(t, 1.5, decoded[1].Value)
	assert.Equal(t, "1/2", decoded[2].Fraction)
	v, ok := decoded[2].Float()
	assert.True(t, ok)
	assert.InDelta(t, 0.5, v, 1e-9)
}
