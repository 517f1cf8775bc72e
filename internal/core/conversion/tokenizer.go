package conversion

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

var (
	parenGroup    = regexp.MustCompile(`[(（]([^()（）]*)[)）]`)
	amountPattern = regexp.MustCompile(
		`(?:\d+\s+\d+/\d+|\d+/\d+|\d+\.\d+|\d+)(?:\s*[-–~〜]\s*(?:\d+\s+\d+/\d+|\d+/\d+|\d+\.\d+|\d+))?`)
	fillerPattern = regexp.MustCompile(
		`(?i)\b(?:approximately|approx|about|plus extra|plus|or to taste|to taste|to serve|for frying|for dusting|free-range|ripe|of)\b|約`)
	commentSeparator = regexp.MustCompile(`,|、|\s-\s|\s—\s`)
)

// Tokenize 將一行食材文字拆成數量、單位、名稱與備註
func (c *Converter) Tokenize(line string) Token {
	raw := strings.TrimSpace(line)
	tok := Token{Raw: raw}
	if raw == "" {
		return tok
	}

	// 括號內容移入備註
	var comments []string
	for _, m := range parenGroup.FindAllStringSubmatch(raw, -1) {
		if note := strings.TrimSpace(m[1]); note != "" {
			comments = append(comments, note)
		}
	}
	text := normalizeFractions(parenGroup.ReplaceAllString(raw, " "))

	var cuts [][2]int
	runes := []rune(text)
	windowStart := 0
	windowEnd := len(runes)
	amountFound := false

	if loc := amountPattern.FindStringIndex(text); loc != nil {
		amountFound = true
		if v, ok := ParseAmount(text[loc[0]:loc[1]]); ok {
			tok.Amount = &v
		}
		cuts = append(cuts, [2]int{loc[0], loc[1]})
		windowStart = utf8.RuneCountInString(text[:loc[1]])
		windowEnd = windowStart + c.opts.UnitWindow
	}

	m, ok := units.find(runes, windowStart, windowEnd)
	if !ok && amountFound {
		m, ok = units.find(runes, 0, len(runes))
	}
	if ok {
		tok.Unit = m.unit
		cuts = append(cuts, [2]int{m.byteStart, m.byteEnd})
	}

	cleaned := removeRanges(text, cuts)
	cleaned = fillerPattern.ReplaceAllString(cleaned, " ")

	name := cleaned
	if parts := commentSeparator.Split(cleaned, 2); len(parts) == 2 {
		name = parts[0]
		if note := strings.TrimSpace(parts[1]); note != "" {
			comments = append(comments, note)
		}
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = strings.TrimSpace(cleaned)
	}

	// 有數量但尚未找到單位時，改在名稱中搜尋，仍無則視為個數
	if amountFound && tok.Unit == "" {
		nameRunes := []rune(name)
		if m, ok := units.find(nameRunes, 0, len(nameRunes)); ok {
			tok.Unit = m.unit
			name = removeRanges(name, [][2]int{{m.byteStart, m.byteEnd}})
		} else {
			tok.Unit = UnitPiece
		}
	}
	if strings.TrimSpace(name) == "" {
		name = raw
	}

	tok.Ingredient = collapseSpaces(name)
	if tok.Unit == UnitOunce {
		if _, p, ok := c.resolve(tok.Ingredient); ok && p.Form == FormLiquid {
			tok.Unit = UnitFluidOunce
		}
	}
	tok.Comment = collapseSpaces(strings.Join(comments, "; "))
	return tok
}

// removeRanges 以空白取代各 byte 區段
func removeRanges(s string, ranges [][2]int) string {
	if len(ranges) == 0 {
		return s
	}
	sorted := append([][2]int(nil), ranges...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i][0] < sorted[j][0] })

	var b strings.Builder
	prev := 0
	for _, r := range sorted {
		if r[0] < prev {
			continue
		}
		b.WriteString(s[prev:r[0]])
		b.WriteByte(' ')
		prev = r[1]
	}
	b.WriteString(s[prev:])
	return b.String()
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
