// Package conversion 食材行解析與單位換算核心。
//
// 將自由文字的食材行拆解為數量、單位、食材名稱與備註，
// 再依食材密度表在公制（日式）、美制與英制之間換算。
// 所有查詢表在啟動時建立後即不再變動，Converter 可安全地被多個 goroutine 共用。
package conversion

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// System 計量系統
type System string

const (
	SystemMetric System = "metric"
	SystemUS     System = "us"
	SystemUK     System = "uk"
)

// systemAliases 接受的計量系統標籤（jp/ja 為公制的舊稱）
var systemAliases = map[string]System{
	"metric": SystemMetric,
	"jp":     SystemMetric,
	"ja":     SystemMetric,
	"us":     SystemUS,
	"uk":     SystemUK,
}

// ParseSystem 解析計量系統標籤，不區分大小寫
func ParseSystem(tag string) (System, bool) {
	sys, ok := systemAliases[strings.ToLower(strings.TrimSpace(tag))]
	return sys, ok
}

// Form 食材型態，決定換算分支
type Form int

const (
	FormSolid Form = iota + 1
	FormLiquid
	FormCountable
)

func (f Form) String() string {
	switch f {
	case FormSolid:
		return "solid"
	case FormLiquid:
		return "liquid"
	case FormCountable:
		return "countable"
	}
	return "unknown"
}

// MarshalText 以字串輸出型態
func (f Form) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText 解析 MarshalText 的輸出
func (f *Form) UnmarshalText(text []byte) error {
	switch string(text) {
	case "solid":
		*f = FormSolid
	case "liquid":
		*f = FormLiquid
	case "countable":
		*f = FormCountable
	default:
		return fmt.Errorf("unknown form %q", text)
	}
	return nil
}

// metricUnit 公制換算結果的單位
func (f Form) metricUnit() Unit {
	if f == FormLiquid {
		return UnitMillilitre
	}
	return UnitGram
}

// Token 單行解析結果，建立後不再修改
type Token struct {
	Raw        string
	Amount     *float64
	Unit       Unit
	Ingredient string
	Comment    string
}

// Record 換算結果中的一行
type Record struct {
	Ingredient string `json:"ingredient"`
	Comment    string `json:"comment"`
	Amount     Amount `json:"amount"`
	Unit       string `json:"unit"`
}

// Result 整份食譜的換算結果，順序與輸入行一致
type Result struct {
	ConvertedRecipe []Record `json:"converted_recipe"`
}

// Amount 顯示用數量：數字、分數字串（如 "1 1/2"）或空值
type Amount struct {
	Value    float64
	Fraction string
	Valid    bool
}

// Number 建立數字數量
func Number(v float64) Amount {
	return Amount{Value: v, Valid: true}
}

// Float 取得數值，分數字串會先解析
func (a Amount) Float() (float64, bool) {
	if !a.Valid {
		return 0, false
	}
	if a.Fraction != "" {
		return ParseAmount(a.Fraction)
	}
	return a.Value, true
}

func (a Amount) String() string {
	switch {
	case !a.Valid:
		return ""
	case a.Fraction != "":
		return a.Fraction
	default:
		return strconv.FormatFloat(a.Value, 'f', -1, 64)
	}
}

// MarshalJSON 空值輸出 null，分數輸出字串，其餘輸出數字
func (a Amount) MarshalJSON() ([]byte, error) {
	switch {
	case !a.Valid:
		return []byte("null"), nil
	case a.Fraction != "":
		return json.Marshal(a.Fraction)
	default:
		return []byte(strconv.FormatFloat(a.Value, 'f', -1, 64)), nil
	}
}

// UnmarshalJSON 解析 null、數字或分數字串
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = Amount{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, _ := ParseAmount(s)
		*a = Amount{Value: v, Fraction: s, Valid: true}
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid amount %s: %w", data, err)
	}
	*a = Number(v)
	return nil
}
