package conversion

import (
	"math"
	"math/big"
	"strconv"
)

// RoundFraction 先四捨五入到小數兩位，再取分母不超過 maxDenominator 的最近分數。
// 整數結果回傳數字，其餘回傳 "n/d" 或 "w n/d" 字串。
func RoundFraction(value float64, maxDenominator int64) Amount {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Number(value)
	}
	if maxDenominator < 1 {
		maxDenominator = 1
	}
	r, ok := new(big.Rat).SetString(strconv.FormatFloat(value, 'f', 2, 64))
	if !ok {
		return Number(value)
	}
	return fractionAmount(limitDenominator(r, maxDenominator))
}

// limitDenominator 以連分數展開求分母上限內最接近的有理數
func limitDenominator(x *big.Rat, maxDenominator int64) *big.Rat {
	maxD := big.NewInt(maxDenominator)
	if x.Denom().Cmp(maxD) <= 0 {
		return new(big.Rat).Set(x)
	}
	if x.Sign() < 0 {
		neg := new(big.Rat).Neg(x)
		return neg.Neg(limitDenominator(neg, maxDenominator))
	}

	p0, q0 := big.NewInt(0), big.NewInt(1)
	p1, q1 := big.NewInt(1), big.NewInt(0)
	n, d := new(big.Int).Set(x.Num()), new(big.Int).Set(x.Denom())
	for {
		a := new(big.Int).Quo(n, d)
		q2 := new(big.Int).Add(q0, new(big.Int).Mul(a, q1))
		if q2.Cmp(maxD) > 0 {
			break
		}
		p2 := new(big.Int).Add(p0, new(big.Int).Mul(a, p1))
		p0, q0, p1, q1 = p1, q1, p2, q2
		n, d = d, new(big.Int).Sub(n, new(big.Int).Mul(a, d))
	}

	k := new(big.Int).Quo(new(big.Int).Sub(maxD, q0), q1)
	bound1 := new(big.Rat).SetFrac(
		new(big.Int).Add(p0, new(big.Int).Mul(k, p1)),
		new(big.Int).Add(q0, new(big.Int).Mul(k, q1)),
	)
	bound2 := new(big.Rat).SetFrac(p1, q1)
	if distance(bound2, x).Cmp(distance(bound1, x)) <= 0 {
		return bound2
	}
	return bound1
}

func distance(a, b *big.Rat) *big.Rat {
	diff := new(big.Rat).Sub(a, b)
	return diff.Abs(diff)
}

func fractionAmount(r *big.Rat) Amount {
	if r.IsInt() {
		f, _ := r.Float64()
		return Number(f)
	}
	num, den := r.Num(), r.Denom()
	whole, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	if whole.Sign() == 0 {
		f, _ := r.Float64()
		return Amount{Value: f, Fraction: rem.String() + "/" + den.String(), Valid: true}
	}
	f, _ := r.Float64()
	return Amount{
		Value:    f,
		Fraction: whole.String() + " " + new(big.Int).Abs(rem).String() + "/" + den.String(),
		Valid:    true,
	}
}
