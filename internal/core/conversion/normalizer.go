package conversion

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Normalize 將食材名稱對應到標準名稱。
// 依序：完全相符、同義詞、整詞包含（最長者優先）、模糊比對（需啟用），否則回傳小寫原文。
func (c *Converter) Normalize(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return key
	}
	if _, ok := c.tables.Profile(key); ok {
		return key
	}
	if target, ok := c.tables.synonyms[key]; ok {
		return target
	}
	for _, candidate := range c.tables.profileKeys {
		if containsWord(key, candidate) {
			return candidate
		}
	}
	if c.opts.FuzzyThreshold > 0 {
		if candidate, ok := c.closestProfile(key); ok {
			return candidate
		}
	}
	return key
}

// resolve 正規化並取得食材資料
func (c *Converter) resolve(name string) (string, Profile, bool) {
	key := c.Normalize(name)
	p, ok := c.tables.Profile(key)
	return key, p, ok
}

// closestProfile 以編輯距離換算相似度，取最高且達門檻者
func (c *Converter) closestProfile(key string) (string, bool) {
	best, bestScore := "", 0.0
	keyLen := utf8.RuneCountInString(key)
	for _, candidate := range c.tables.profileKeys {
		longest := max(keyLen, utf8.RuneCountInString(candidate))
		score := 1 - float64(levenshtein.ComputeDistance(key, candidate))/float64(longest)
		if score > bestScore {
			best, bestScore = candidate, score
		}
	}
	if best == "" || bestScore < c.opts.FuzzyThreshold {
		return "", false
	}
	return best, true
}

// containsWord word 以完整詞的形式出現在 s 中
func containsWord(s, word string) bool {
	offset := 0
	for {
		idx := strings.Index(s[offset:], word)
		if idx < 0 {
			return false
		}
		start := offset + idx
		end := start + len(word)
		before, _ := utf8.DecodeLastRuneInString(s[:start])
		after, _ := utf8.DecodeRuneInString(s[end:])
		if (start == 0 || !isWordRune(before)) && (end == len(s) || !isWordRune(after)) {
			return true
		}
		offset = start + 1
	}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
