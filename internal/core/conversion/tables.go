package conversion

import (
	"sort"
	"strings"
	"sync"
)

// Profile 食材換算資料
type Profile struct {
	Form        Form                        `json:"form"`
	Factors     map[System]map[Unit]float64 `json:"factors,omitempty"`
	UnitWeight  float64                     `json:"unit_weight,omitempty"`
	SizeWeights map[Unit]float64            `json:"size_weights,omitempty"`
}

// Factor 取得某計量系統下每單位的公克（或毫升）數
func (p Profile) Factor(sys System, u Unit) (float64, bool) {
	f, ok := p.Factors[sys][u]
	return f, ok
}

// NamePair 公制（日文）與英文名稱對照
type NamePair struct {
	Metric  string
	Foreign string
}

// DisplayOverride 名稱包含所有片段時改用指定顯示名稱
type DisplayOverride struct {
	Contains []string
	Display  string
}

// TableData 建立查詢表的原始資料
type TableData struct {
	Profiles  map[string]Profile
	Synonyms  map[string]string
	Names     []NamePair
	Overrides []DisplayOverride
	Volumes   map[System]map[Unit]float64
}

// Tables 唯讀查詢表
type Tables struct {
	profiles    map[string]Profile
	profileKeys []string
	synonyms    map[string]string
	toForeign   map[string]string
	toMetric    map[string]string
	overrides   []DisplayOverride
	volumes     map[System]map[Unit]float64
}

// NewTables 由原始資料建立查詢表。名稱對照重複時以先出現者為準。
func NewTables(data TableData) *Tables {
	t := &Tables{
		profiles:  make(map[string]Profile, len(data.Profiles)),
		synonyms:  make(map[string]string, len(data.Synonyms)),
		toForeign: make(map[string]string, len(data.Names)),
		toMetric:  make(map[string]string, len(data.Names)),
		overrides: append([]DisplayOverride(nil), data.Overrides...),
		volumes:   make(map[System]map[Unit]float64, len(data.Volumes)),
	}
	for key, p := range data.Profiles {
		key = strings.ToLower(key)
		t.profiles[key] = p
		t.profileKeys = append(t.profileKeys, key)
	}
	sort.Slice(t.profileKeys, func(i, j int) bool {
		a, b := t.profileKeys[i], t.profileKeys[j]
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a < b
	})
	for from, to := range data.Synonyms {
		t.synonyms[strings.ToLower(from)] = strings.ToLower(to)
	}
	for _, pair := range data.Names {
		if _, ok := t.toForeign[pair.Metric]; !ok {
			t.toForeign[pair.Metric] = pair.Foreign
		}
		key := strings.ToLower(pair.Foreign)
		if _, ok := t.toMetric[key]; !ok {
			t.toMetric[key] = pair.Metric
		}
	}
	for sys, factors := range data.Volumes {
		copied := make(map[Unit]float64, len(factors))
		for u, f := range factors {
			copied[u] = f
		}
		t.volumes[sys] = copied
	}
	return t
}

var (
	defaultTables     *Tables
	defaultTablesOnce sync.Once
)

// DefaultTables 內建查詢表
func DefaultTables() *Tables {
	defaultTablesOnce.Do(func() {
		defaultTables = NewTables(TableData{
			Profiles:  builtinProfiles,
			Synonyms:  builtinSynonyms,
			Names:     builtinNames,
			Overrides: builtinOverrides,
			Volumes:   builtinVolumes,
		})
	})
	return defaultTables
}

// Profile 依標準名稱取得食材資料
func (t *Tables) Profile(key string) (Profile, bool) {
	p, ok := t.profiles[key]
	return p, ok
}

// ProfileKeys 所有標準名稱，長者在前
func (t *Tables) ProfileKeys() []string {
	return append([]string(nil), t.profileKeys...)
}

// VolumeFactor 通用容量表
func (t *Tables) VolumeFactor(sys System, u Unit) (float64, bool) {
	f, ok := t.volumes[sys][u]
	return f, ok
}

// Volumes 通用容量表副本
func (t *Tables) Volumes() map[System]map[Unit]float64 {
	out := make(map[System]map[Unit]float64, len(t.volumes))
	for sys, factors := range t.volumes {
		copied := make(map[Unit]float64, len(factors))
		for u, f := range factors {
			copied[u] = f
		}
		out[sys] = copied
	}
	return out
}

// ForeignName 公制（日文）名稱轉英文，找不到時原樣回傳
func (t *Tables) ForeignName(name string) string {
	if en, ok := t.toForeign[strings.TrimSpace(name)]; ok {
		return en
	}
	return name
}

// MetricName 公制顯示名稱：先套用特例，再以標準名稱查詢，最後退回原文
func (t *Tables) MetricName(key, literal string) string {
	lower := strings.ToLower(literal)
	for _, o := range t.overrides {
		if containsAll(lower, o.Contains) {
			return o.Display
		}
	}
	if ja, ok := t.toMetric[key]; ok {
		return ja
	}
	if ja, ok := t.toMetric[strings.ToLower(strings.TrimSpace(literal))]; ok {
		return ja
	}
	return literal
}

func containsAll(s string, parts []string) bool {
	for _, p := range parts {
		if !strings.Contains(s, p) {
			return false
		}
	}
	return len(parts) > 0
}
