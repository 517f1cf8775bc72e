package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"recipe-converter/internal/core/conversion"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	amountStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

const columnGap = "  "

// printRecordsJSON 輸出與 API 相同的 JSON 結構
func printRecordsJSON(w io.Writer, records []conversion.Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(conversion.Result{ConvertedRecipe: records})
}

// printRecords 以對齊的表格輸出換算結果
func printRecords(w io.Writer, records []conversion.Record, from, to conversion.System) {
	fmt.Fprintf(w, "%s %s\n\n",
		headerStyle.Render(fmt.Sprintf("%s → %s", strings.ToUpper(string(from)), strings.ToUpper(string(to)))),
		dimStyle.Render(fmt.Sprintf("(%d lines)", len(records))),
	)

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{r.Amount.String(), r.Unit, r.Ingredient, r.Comment})
	}
	printTable(w, []string{"AMOUNT", "UNIT", "INGREDIENT", "COMMENT"}, rows, map[int]lipgloss.Style{0: amountStyle, 3: dimStyle})
}

// printIngredients 列出食材表
func printIngredients(w io.Writer, profiles map[string]conversion.Profile) {
	keys := make([]string, 0, len(profiles))
	for k := range profiles {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		p := profiles[k]
		weight := ""
		if p.UnitWeight > 0 {
			weight = fmt.Sprintf("%g g", p.UnitWeight)
		}
		rows = append(rows, []string{k, p.Form.String(), strings.Join(systemsOf(p), ","), weight})
	}
	printTable(w, []string{"INGREDIENT", "FORM", "SYSTEMS", "PIECE"}, rows, map[int]lipgloss.Style{1: amountStyle})
}

// printIngredientsJSON 輸出與 API 相同的 JSON 結構
func printIngredientsJSON(w io.Writer, profiles map[string]conversion.Profile) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(map[string]interface{}{"ingredients": profiles})
}

func systemsOf(p conversion.Profile) []string {
	out := make([]string, 0, len(p.Factors))
	for sys := range p.Factors {
		out = append(out, string(sys))
	}
	sort.Strings(out)
	return out
}

// printTable 依顯示寬度對齊欄位，全形字元以兩格計算
func printTable(w io.Writer, header []string, rows [][]string, styles map[int]lipgloss.Style) {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if cw := lipgloss.Width(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	cells := make([]string, len(header))
	for i, h := range header {
		cells[i] = headerStyle.Render(pad(h, widths[i]))
	}
	fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, columnGap), " "))

	for _, row := range rows {
		for i, cell := range row {
			padded := pad(cell, widths[i])
			if style, ok := styles[i]; ok && cell != "" {
				padded = style.Render(cell) + strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
			}
			cells[i] = padded
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, columnGap), " "))
	}
}

func pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
