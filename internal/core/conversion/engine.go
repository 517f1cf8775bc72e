package conversion

import "math"

const gramsPerOunce = 28.35

// ToMetric 將數量換算成公克或毫升。
// 個數類食材維持原數量並改為 piece；查無係數時原樣回傳。
func (c *Converter) ToMetric(key string, amount float64, unit Unit, from System) (float64, Unit) {
	p, ok := c.tables.Profile(key)
	if !ok {
		return amount, unit
	}
	if p.Form == FormCountable {
		return amount, UnitPiece
	}
	if f, ok := p.Factor(from, unit); ok {
		return amount * f, p.Form.metricUnit()
	}
	if p.Form == FormLiquid && unit.IsGenericVolume() {
		if f, ok := c.tables.VolumeFactor(from, unit); ok {
			return amount * f, UnitMillilitre
		}
	}
	return amount, unit
}

// MetricToUS 將公克或毫升換算為美制顯示單位
func (c *Converter) MetricToUS(key string, amount float64, unit Unit) (Amount, Unit) {
	if unit != UnitGram && unit != UnitMillilitre {
		return Number(amount), unit
	}
	p, ok := c.tables.Profile(key)
	if !ok {
		return Number(amount), unit
	}

	switch p.Form {
	case FormLiquid:
		if unit != UnitMillilitre {
			return Number(amount), unit
		}
		return c.volumeToUS(amount, p.Factors[SystemUS])
	case FormSolid:
		if unit == UnitMillilitre {
			return c.volumeToUS(amount, nil)
		}
		if amount <= 15 {
			return Number(round1(amount)), UnitGram
		}
		return Number(round1(amount / gramsPerOunce)), UnitOunce
	case FormCountable:
		weight := p.UnitWeight
		if weight <= 0 {
			weight = c.opts.DefaultPieceWeight
		}
		return Number(round2(amount / weight)), UnitPiece
	}
	return Number(amount), unit
}

// volumeToUS 依杯、液量盎司、大匙、小匙的順序選擇第一個達門檻的單位
func (c *Converter) volumeToUS(ml float64, own map[Unit]float64) (Amount, Unit) {
	factor := func(u Unit) float64 {
		if f, ok := own[u]; ok && f > 0 {
			return f
		}
		f, _ := c.tables.VolumeFactor(SystemUS, u)
		return f
	}

	if f := factor(UnitCup); f > 0 && ml/f >= 0.5 {
		return RoundFraction(ml/f, 8), UnitCup
	}
	if f := factor(UnitFluidOunce); f > 0 && ml/f >= 1 {
		return Number(round1(ml / f)), UnitFluidOunce
	}
	if f := factor(UnitTablespoon); f > 0 && ml/f >= 1 {
		return RoundFraction(ml/f, 2), UnitTablespoon
	}
	if f := factor(UnitTeaspoon); f > 0 && ml/f >= 0.5 {
		return RoundFraction(ml/f, 2), UnitTeaspoon
	}
	return Number(round1(ml)), UnitMillilitre
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }
