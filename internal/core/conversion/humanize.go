package conversion

import "math"

// Humanize 依單位調整顯示精度。
// 個數類取兩位小數；已是分數者不變；公克與毫升滿 100 取整數，其餘一位小數。
func Humanize(a Amount, u Unit) Amount {
	if !a.Valid {
		return a
	}
	if u.IsCountable() {
		v, ok := a.Float()
		if !ok {
			return a
		}
		return Number(round2(v))
	}
	if a.Fraction != "" {
		return a
	}
	if (u == UnitGram || u == UnitMillilitre) && a.Value >= 100 {
		return Number(math.Round(a.Value))
	}
	return Number(round1(a.Value))
}
