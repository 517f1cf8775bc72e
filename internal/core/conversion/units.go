package conversion

import (
	"sort"
	"strings"
	"unicode"
)

// Unit 標準單位符號
type Unit string

const (
	UnitCup        Unit = "cup"
	UnitTablespoon Unit = "tbsp"
	UnitTeaspoon   Unit = "tsp"
	UnitFluidOunce Unit = "fl oz"
	UnitLitre      Unit = "l"
	UnitMillilitre Unit = "ml"
	UnitGram       Unit = "g"
	UnitKilogram   Unit = "kg"
	UnitOunce      Unit = "oz"
	UnitPound      Unit = "lb"
	UnitPiece      Unit = "piece"
	UnitSmall      Unit = "small"
	UnitMedium     Unit = "medium"
	UnitLarge      Unit = "large"
	UnitPinch      Unit = "pinch"
	UnitDash       Unit = "dash"
	UnitStick      Unit = "stick"
	UnitClove      Unit = "clove"
	UnitSlice      Unit = "slice"
	UnitSprig      Unit = "sprig"
	UnitHandful    Unit = "handful"
	UnitToTaste    Unit = "to taste"
)

// IsCountable 個數類單位（含尺寸）
func (u Unit) IsCountable() bool {
	switch u {
	case UnitPiece, UnitSmall, UnitMedium, UnitLarge:
		return true
	}
	return false
}

// IsMeasurable 不可量化的單位（少許、適量、一條、一瓣等）不參與換算
func (u Unit) IsMeasurable() bool {
	switch u {
	case UnitPinch, UnitDash, UnitHandful, UnitStick, UnitClove, UnitSlice, UnitSprig, UnitToTaste:
		return false
	}
	return true
}

// IsGenericVolume 可使用通用容量表換算的單位
func (u Unit) IsGenericVolume() bool {
	switch u {
	case UnitCup, UnitTablespoon, UnitTeaspoon, UnitFluidOunce, UnitLitre:
		return true
	}
	return false
}

type unitAlias struct {
	text          string
	unit          Unit
	caseSensitive bool
}

// unitAliases 單位別名表。每個標準符號都對應到自己。
var unitAliases = []unitAlias{
	{text: "cup", unit: UnitCup},
	{text: "cups", unit: UnitCup},
	{text: "c", unit: UnitCup},
	{text: "カップ", unit: UnitCup},

	{text: "tbsp", unit: UnitTablespoon},
	{text: "tbsps", unit: UnitTablespoon},
	{text: "tbs", unit: UnitTablespoon},
	{text: "tbl", unit: UnitTablespoon},
	{text: "tablespoon", unit: UnitTablespoon},
	{text: "tablespoons", unit: UnitTablespoon},
	{text: "T", unit: UnitTablespoon, caseSensitive: true},
	{text: "大さじ", unit: UnitTablespoon},
	{text: "大匙", unit: UnitTablespoon},

	{text: "tsp", unit: UnitTeaspoon},
	{text: "tsps", unit: UnitTeaspoon},
	{text: "teaspoon", unit: UnitTeaspoon},
	{text: "teaspoons", unit: UnitTeaspoon},
	{text: "t", unit: UnitTeaspoon, caseSensitive: true},
	{text: "小さじ", unit: UnitTeaspoon},
	{text: "小匙", unit: UnitTeaspoon},

	{text: "fl oz", unit: UnitFluidOunce},
	{text: "fl. oz", unit: UnitFluidOunce},
	{text: "fl.oz", unit: UnitFluidOunce},
	{text: "floz", unit: UnitFluidOunce},
	{text: "fluid ounce", unit: UnitFluidOunce},
	{text: "fluid ounces", unit: UnitFluidOunce},

	{text: "l", unit: UnitLitre},
	{text: "litre", unit: UnitLitre},
	{text: "litres", unit: UnitLitre},
	{text: "liter", unit: UnitLitre},
	{text: "liters", unit: UnitLitre},
	{text: "リットル", unit: UnitLitre},

	{text: "ml", unit: UnitMillilitre},
	{text: "millilitre", unit: UnitMillilitre},
	{text: "millilitres", unit: UnitMillilitre},
	{text: "milliliter", unit: UnitMillilitre},
	{text: "milliliters", unit: UnitMillilitre},
	{text: "cc", unit: UnitMillilitre},
	{text: "ミリリットル", unit: UnitMillilitre},

	{text: "g", unit: UnitGram},
	{text: "gram", unit: UnitGram},
	{text: "grams", unit: UnitGram},
	{text: "gramme", unit: UnitGram},
	{text: "grammes", unit: UnitGram},
	{text: "グラム", unit: UnitGram},

	{text: "kg", unit: UnitKilogram},
	{text: "kilogram", unit: UnitKilogram},
	{text: "kilograms", unit: UnitKilogram},
	{text: "キロ", unit: UnitKilogram},
	{text: "キログラム", unit: UnitKilogram},

	{text: "oz", unit: UnitOunce},
	{text: "ounce", unit: UnitOunce},
	{text: "ounces", unit: UnitOunce},

	{text: "lb", unit: UnitPound},
	{text: "lbs", unit: UnitPound},
	{text: "pound", unit: UnitPound},
	{text: "pounds", unit: UnitPound},

	{text: "piece", unit: UnitPiece},
	{text: "pieces", unit: UnitPiece},
	{text: "pc", unit: UnitPiece},
	{text: "pcs", unit: UnitPiece},
	{text: "個", unit: UnitPiece},

	{text: "small", unit: UnitSmall},
	{text: "medium", unit: UnitMedium},
	{text: "large", unit: UnitLarge},

	{text: "pinch", unit: UnitPinch},
	{text: "pinches", unit: UnitPinch},
	{text: "少々", unit: UnitPinch},
	{text: "ひとつまみ", unit: UnitPinch},

	{text: "dash", unit: UnitDash},
	{text: "dashes", unit: UnitDash},

	{text: "stick", unit: UnitStick},
	{text: "sticks", unit: UnitStick},

	{text: "clove", unit: UnitClove},
	{text: "cloves", unit: UnitClove},

	{text: "slice", unit: UnitSlice},
	{text: "slices", unit: UnitSlice},
	{text: "枚", unit: UnitSlice},

	{text: "sprig", unit: UnitSprig},
	{text: "sprigs", unit: UnitSprig},

	{text: "handful", unit: UnitHandful},
	{text: "handfuls", unit: UnitHandful},

	{text: "to taste", unit: UnitToTaste},
	{text: "適量", unit: UnitToTaste},
	{text: "お好みで", unit: UnitToTaste},
}

var units = newUnitMatcher(unitAliases)

// CanonicalizeUnit 將單位文字轉為標準符號
func CanonicalizeUnit(raw string) (Unit, bool) {
	return units.canonicalize(raw)
}

// UnitAliases 依標準單位分組的別名，供查詢端點使用
func UnitAliases() map[Unit][]string {
	out := make(map[Unit][]string)
	for _, a := range unitAliases {
		out[a.unit] = append(out[a.unit], a.text)
	}
	return out
}

type compiledAlias struct {
	runes         []rune
	lower         []rune
	unit          Unit
	caseSensitive bool
	boundLeft     bool
	boundRight    bool
}

// unitMatch 以 rune 位置與 byte 位置記錄的比對結果
type unitMatch struct {
	start, end         int
	byteStart, byteEnd int
	unit               Unit
}

type unitMatcher struct {
	aliases   []compiledAlias
	exact     map[string]Unit
	lowercase map[string]Unit
}

func newUnitMatcher(aliases []unitAlias) *unitMatcher {
	m := &unitMatcher{
		exact:     make(map[string]Unit, len(aliases)),
		lowercase: make(map[string]Unit, len(aliases)),
	}
	for _, a := range aliases {
		runes := []rune(a.text)
		m.aliases = append(m.aliases, compiledAlias{
			runes:         runes,
			lower:         lowerRunes(runes),
			unit:          a.unit,
			caseSensitive: a.caseSensitive,
			boundLeft:     isLatinLetter(runes[0]),
			boundRight:    isLatinLetter(runes[len(runes)-1]),
		})
		if a.caseSensitive {
			m.exact[a.text] = a.unit
		} else {
			m.lowercase[strings.ToLower(a.text)] = a.unit
		}
	}
	// 同一位置優先比對最長的別名
	sort.SliceStable(m.aliases, func(i, j int) bool {
		return len(m.aliases[i].runes) > len(m.aliases[j].runes)
	})
	return m
}

func (m *unitMatcher) canonicalize(raw string) (Unit, bool) {
	s := strings.Join(strings.Fields(raw), " ")
	s = strings.TrimSuffix(s, ".")
	if s == "" {
		return "", false
	}
	if u, ok := m.exact[s]; ok {
		return u, true
	}
	u, ok := m.lowercase[strings.ToLower(s)]
	return u, ok
}

// find 在 text[from:to) 內尋找最左邊的單位，邊界檢查以整段文字為準
func (m *unitMatcher) find(text []rune, from, to int) (unitMatch, bool) {
	if from < 0 {
		from = 0
	}
	if to > len(text) {
		to = len(text)
	}
	lower := lowerRunes(text)
	for i := from; i < to; i++ {
		for _, a := range m.aliases {
			end := i + len(a.runes)
			if end > to || !a.matchAt(text, lower, i) {
				continue
			}
			if a.boundLeft && i > 0 && isLatinLetter(text[i-1]) {
				continue
			}
			if a.boundRight && end < len(text) && isLatinLetter(text[end]) {
				continue
			}
			// 縮寫後的句點一併吃掉（"c." "tbsp."），小數點除外
			if a.boundRight && end < len(text) && text[end] == '.' &&
				(end+1 == len(text) || !unicode.IsDigit(text[end+1])) {
				end++
			}
			byteStart := len(string(text[:i]))
			return unitMatch{
				start:     i,
				end:       end,
				byteStart: byteStart,
				byteEnd:   byteStart + len(string(text[i:end])),
				unit:      a.unit,
			}, true
		}
	}
	return unitMatch{}, false
}

func (a compiledAlias) matchAt(text, lower []rune, at int) bool {
	src, pattern := lower, a.lower
	if a.caseSensitive {
		src, pattern = text, a.runes
	}
	for k, r := range pattern {
		if src[at+k] != r {
			return false
		}
	}
	return true
}

func lowerRunes(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[i] = unicode.ToLower(r)
	}
	return out
}

func isLatinLetter(r rune) bool {
	return unicode.IsLetter(r) && unicode.Is(unicode.Latin, r)
}
