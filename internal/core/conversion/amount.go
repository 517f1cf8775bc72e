package conversion

import (
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

// fractionGlyphs 分數字元對照，依序替換
var fractionGlyphs = []struct {
	glyph string
	ascii string
}{
	{"½", "1/2"},
	{"⅓", "1/3"},
	{"⅔", "2/3"},
	{"¼", "1/4"},
	{"¾", "3/4"},
	{"⅕", "1/5"},
	{"⅖", "2/5"},
	{"⅗", "3/5"},
	{"⅘", "4/5"},
	{"⅙", "1/6"},
	{"⅚", "5/6"},
	{"⅛", "1/8"},
	{"⅜", "3/8"},
	{"⅝", "5/8"},
	{"⅞", "7/8"},
}

var (
	glyphClass        = `[½⅓⅔¼¾⅕⅖⅗⅘⅙⅚⅛⅜⅝⅞]`
	digitBeforeGlyph  = regexp.MustCompile(`(\d)\s*(?:と\s*)?(` + glyphClass + `)`)
	connectorFraction = regexp.MustCompile(`(\d)\s*と\s*(\d+/\d+)`)
	rangeSeparator    = regexp.MustCompile(`[-–~〜]`)
	mixedNumber       = regexp.MustCompile(`^(\d+)\s+(\d+)/(\d+)$`)
	bareFraction      = regexp.MustCompile(`^(\d+)/(\d+)$`)
	decimalNumber     = regexp.MustCompile(`^\d+(?:\.\d+)?$`)
	signedNumber      = regexp.MustCompile(`^[+-]?\d+(?:\.\d+)?$`)
	signedFraction    = regexp.MustCompile(`^([+-]?\d+)/(\d+)$`)
	firstNumber       = regexp.MustCompile(`\d+\s+\d+/\d+|\d+/\d+|\d+\.\d+|\d+`)
)

// exactParsers 依序嘗試的精確格式：帶分數、分數、小數
var exactParsers = []func(string) (*big.Rat, bool){
	parseMixedNumber,
	parseBareFraction,
	parseDecimal,
}

// ParseAmount 解析數量文字，支援分數字元、帶分數、範圍（取平均）與日文連接詞「と」
func ParseAmount(text string) (float64, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, false
	}
	s = strings.TrimSpace(normalizeFractions(s))

	if rangeSeparator.MatchString(s) {
		return parseRange(s)
	}
	if r, ok := parseExact(s); ok {
		return ratFloat(r), true
	}
	if r, ok := sumRationals(s); ok {
		return ratFloat(r), true
	}
	if m := firstNumber.FindString(s); m != "" {
		if r, ok := parseExact(m); ok {
			return ratFloat(r), true
		}
	}
	return 0, false
}

// normalizeFractions 將全形字元、分數字元與「と」統一為 ASCII 分數寫法
func normalizeFractions(s string) string {
	s = width.Fold.String(s)
	s = strings.ReplaceAll(s, "⁄", "/")
	s = digitBeforeGlyph.ReplaceAllStringFunc(s, func(m string) string {
		sub := digitBeforeGlyph.FindStringSubmatch(m)
		return sub[1] + " " + sub[2]
	})
	s = connectorFraction.ReplaceAllString(s, "$1 $2")
	for _, f := range fractionGlyphs {
		s = strings.ReplaceAll(s, f.glyph, f.ascii)
	}
	return s
}

func parseRange(s string) (float64, bool) {
	var sum float64
	var n int
	for _, part := range rangeSeparator.Split(s, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if v, ok := ParseAmount(part); ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

func parseExact(s string) (*big.Rat, bool) {
	s = strings.TrimSpace(s)
	for _, parse := range exactParsers {
		if r, ok := parse(s); ok {
			return r, true
		}
	}
	return nil, false
}

func parseMixedNumber(s string) (*big.Rat, bool) {
	m := mixedNumber.FindStringSubmatch(s)
	if m == nil {
		return nil, false
	}
	whole, ok := ratFromParts(m[1], "1")
	if !ok {
		return nil, false
	}
	frac, ok := ratFromParts(m[2], m[3])
	if !ok {
		return nil, false
	}
	return whole.Add(whole, frac), true
}

func parseBareFraction(s string) (*big.Rat, bool) {
	m := bareFraction.FindStringSubmatch(s)
	if m == nil {
		return nil, false
	}
	return ratFromParts(m[1], m[2])
}

func parseDecimal(s string) (*big.Rat, bool) {
	if !decimalNumber.MatchString(s) {
		return nil, false
	}
	return new(big.Rat).SetString(s)
}

// sumRationals 以空白切分後逐段相加，總和為零視為失敗
func sumRationals(s string) (*big.Rat, bool) {
	total := new(big.Rat)
	for _, field := range strings.Fields(s) {
		var r *big.Rat
		var ok bool
		switch {
		case signedNumber.MatchString(field):
			r, ok = new(big.Rat).SetString(field)
		case signedFraction.MatchString(field):
			m := signedFraction.FindStringSubmatch(field)
			r, ok = ratFromParts(m[1], m[2])
		}
		if !ok {
			return nil, false
		}
		total.Add(total, r)
	}
	if total.Sign() == 0 {
		return nil, false
	}
	return total, true
}

// ratFromParts 以十進位解析分子分母，避免前導零被當作八進位
func ratFromParts(num, den string) (*big.Rat, bool) {
	n, err := strconv.ParseInt(num, 10, 64)
	if err != nil {
		return nil, false
	}
	d, err := strconv.ParseInt(den, 10, 64)
	if err != nil || d == 0 {
		return nil, false
	}
	return big.NewRat(n, d), true
}

func ratFloat(r *big.Rat) float64 {
	f, _ := r.Float64()
	return f
}
