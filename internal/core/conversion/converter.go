package conversion

import (
	"runtime"
	"strings"

	"github.com/sourcegraph/conc/iter"
)

// Options 換算器設定
type Options struct {
	// Workers 並行處理的行數上限
	Workers int
	// UnitWindow 數量之後搜尋單位的字元數
	UnitWindow int
	// DefaultPieceWeight 個數類食材沒有單顆重量時使用的公克數
	DefaultPieceWeight float64
	// FuzzyThreshold 模糊比對的最低相似度，0 表示停用
	FuzzyThreshold float64
}

// DefaultOptions 預設設定
func DefaultOptions() Options {
	return Options{
		Workers:            runtime.GOMAXPROCS(0),
		UnitWindow:         30,
		DefaultPieceWeight: 60,
	}
}

// Converter 食譜換算器
type Converter struct {
	tables *Tables
	opts   Options
}

// NewConverter 建立換算器，未設定的選項套用預設值
func NewConverter(tables *Tables, opts Options) *Converter {
	if tables == nil {
		tables = DefaultTables()
	}
	defaults := DefaultOptions()
	if opts.Workers <= 0 {
		opts.Workers = defaults.Workers
	}
	if opts.UnitWindow <= 0 {
		opts.UnitWindow = defaults.UnitWindow
	}
	if opts.DefaultPieceWeight <= 0 {
		opts.DefaultPieceWeight = defaults.DefaultPieceWeight
	}
	if opts.FuzzyThreshold < 0 || opts.FuzzyThreshold > 1 {
		opts.FuzzyThreshold = 0
	}
	return &Converter{tables: tables, opts: opts}
}

// Tables 換算器使用的查詢表
func (c *Converter) Tables() *Tables {
	return c.tables
}

// ConvertRecipe 逐行換算食譜，略過空白行，輸出順序與輸入一致
func (c *Converter) ConvertRecipe(text string, from, to System) []Record {
	lines := splitLines(text)
	if len(lines) == 0 {
		return []Record{}
	}
	mapper := iter.Mapper[string, Record]{MaxGoroutines: c.opts.Workers}
	return mapper.Map(lines, func(line *string) Record {
		return c.ConvertLine(*line, from, to)
	})
}

// ConvertLine 換算單行。任何內部錯誤都會退回原文輸出。
func (c *Converter) ConvertLine(line string, from, to System) (rec Record) {
	defer func() {
		if r := recover(); r != nil {
			rec = Record{Ingredient: strings.TrimSpace(line)}
		}
	}()

	tok := c.Tokenize(line)
	if tok.Amount == nil && tok.Unit == "" {
		return Record{Ingredient: tok.Raw}
	}
	if !tok.Unit.IsMeasurable() {
		return Record{Ingredient: tok.Ingredient, Comment: tok.Comment, Unit: string(tok.Unit)}
	}

	if to == SystemMetric {
		return c.toMetricRecord(tok, from)
	}
	return c.toForeignRecord(tok, to)
}

func (c *Converter) toMetricRecord(tok Token, from System) Record {
	key := c.Normalize(tok.Ingredient)
	amount, unit := Amount{}, tok.Unit
	if tok.Amount != nil {
		var v float64
		v, unit = c.ToMetric(key, *tok.Amount, tok.Unit, from)
		amount = Number(v)
	}
	return Record{
		Ingredient: c.tables.MetricName(key, tok.Ingredient),
		Comment:    tok.Comment,
		Amount:     Humanize(amount, unit),
		Unit:       string(unit),
	}
}

func (c *Converter) toForeignRecord(tok Token, to System) Record {
	name := c.tables.ForeignName(tok.Ingredient)
	key := c.Normalize(name)
	amount, unit := Amount{}, tok.Unit
	if tok.Amount != nil {
		amount = Number(*tok.Amount)
		if to == SystemUS {
			amount, unit = c.MetricToUS(key, *tok.Amount, tok.Unit)
		}
	}
	amount = Humanize(amount, unit)

	display := string(unit)
	if unit == UnitPiece {
		display = ""
	}
	return Record{
		Ingredient: name,
		Comment:    tok.Comment,
		Amount:     amount,
		Unit:       display,
	}
}

func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
