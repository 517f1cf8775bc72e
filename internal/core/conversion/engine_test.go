package conversion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToMetric(t *testing.T) {
	c := NewConverter(nil, Options{})

	tests := []struct {
		name     string
		key      string
		amount   float64
		unit     Unit
		from     System
		want     float64
		wantUnit Unit
	}{
		{"solid factor", "sugar", 1, UnitCup, SystemUS, 200, UnitGram},
		{"uk solid factor", "sugar", 1, UnitCup, SystemUK, 225, UnitGram},
		{"liquid factor", "milk", 2, UnitTablespoon, SystemUS, 30, UnitMillilitre},
		{"liquid generic fallback", "milk", 1, UnitCup, SystemUK, 250, UnitMillilitre},
		{"liquid fluid ounce fallback", "heavy cream", 2, UnitFluidOunce, SystemUK, 56.82, UnitMillilitre},
		{"countable", "egg", 3, UnitLarge, SystemUS, 3, UnitPiece},
		{"solid without factor", "sugar", 1, UnitStick, SystemUS, 1, UnitStick},
		{"solid no generic fallback", "flour", 1, UnitFluidOunce, SystemUS, 1, UnitFluidOunce},
		{"unknown ingredient", "dragon fruit", 2, UnitCup, SystemUS, 2, UnitCup},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, unit := c.ToMetric(tt.key, tt.amount, tt.unit, tt.from)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.Equal(t, tt.wantUnit, unit)
		})
	}
}

func TestToMetricRoundTrip(t *testing.T) {
	c := NewConverter(nil, Options{})
	tables := c.Tables()

	for _, key := range tables.ProfileKeys() {
		p, _ := tables.Profile(key)
		if p.Form == FormCountable {
			continue
		}
		for sys, factors := range p.Factors {
			for unit, f := range factors {
				for _, amount := range []float64{0.25, 1, 2.5, 12} {
					metric, _ := c.ToMetric(key, amount, unit, sys)
					assert.InDelta(t, amount, metric/f, 1e-9, "%s %s %s", key, sys, unit)
				}
			}
		}
	}
}

func TestMetricToUS(t *testing.T) {
	c := NewConverter(nil, Options{})

	tests := []struct {
		name     string
		key      string
		amount   float64
		unit     Unit
		want     Amount
		wantUnit Unit
	}{
		{"solid to ounces", "butter", 50, UnitGram, Number(1.8), UnitOunce},
		{"small solid stays grams", "butter", 10.04, UnitGram, Number(10), UnitGram},
		{"solid boundary", "salt", 15, UnitGram, Number(15), UnitGram},
		{"whole cup", "milk", 240, UnitMillilitre, Number(1), UnitCup},
		{"half cup", "milk", 120, UnitMillilitre, Amount{Value: 0.5, Fraction: "1/2", Valid: true}, UnitCup},
		{"fluid ounces", "milk", 60, UnitMillilitre, Number(2), UnitFluidOunce},
		{"tablespoons", "milk", 20, UnitMillilitre, Amount{Value: 1.5, Fraction: "1 1/2", Valid: true}, UnitTablespoon},
		{"teaspoons", "vanilla extract", 5, UnitMillilitre, Number(1), UnitTeaspoon},
		{"tiny liquid", "milk", 1, UnitMillilitre, Number(1), UnitMillilitre},
		{"liquid given in grams", "milk", 250, UnitGram, Number(250), UnitGram},
		{"solid measured by volume", "sugar", 240, UnitMillilitre, Number(1), UnitCup},
		{"countable", "egg", 100, UnitGram, Number(2), UnitPiece},
		{"not metric", "sugar", 1, UnitCup, Number(1), UnitCup},
		{"unknown ingredient", "dragon fruit", 300, UnitGram, Number(300), UnitGram},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, unit := c.MetricToUS(tt.key, tt.amount, tt.unit)
			assert.Equal(t, tt.wantUnit, unit)
			assert.Equal(t, tt.want.Fraction, got.Fraction)
			assert.InDelta(t, tt.want.Value, got.Value, 1e-9)
		})
	}
}

func TestMetricToUSDefaultPieceWeight(t *testing.T) {
	tables := NewTables(TableData{
		Profiles: map[string]Profile{"dumpling": {Form: FormCountable}},
		Volumes:  builtinVolumes,
	})

	c := NewConverter(tables, Options{})
	got, unit := c.MetricToUS("dumpling", 120, UnitGram)
	assert.Equal(t, UnitPiece, unit)
	assert.InDelta(t, 2, got.Value, 1e-9)

	heavy := NewConverter(tables, Options{DefaultPieceWeight: 40})
	got, _ = heavy.MetricToUS("dumpling", 120, UnitGram)
	assert.InDelta(t, 3, got.Value, 1e-9)
}

func TestHumanize(t *testing.T) {
	tests := []struct {
		name string
		in   Amount
		unit Unit
		want Amount
	}{
		{"none", Amount{}, UnitGram, Amount{}},
		{"large grams", Number(212.6), UnitGram, Number(213)},
		{"small grams", Number(14.24), UnitGram, Number(14.2)},
		{"large millilitres", Number(100), UnitMillilitre, Number(100)},
		{"pieces", Number(1.666), UnitPiece, Number(1.67)},
		{"piece fraction parsed", Amount{Fraction: "1 1/2", Valid: true}, UnitPiece, Number(1.5)},
		{"fraction passes", Amount{Value: 0.5, Fraction: "1/2", Valid: true}, UnitCup, Amount{Value: 0.5, Fraction: "1/2", Valid: true}},
		{"other units", Number(1.26), UnitOunce, Number(1.3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Humanize(tt.in, tt.unit))
		})
	}
}
