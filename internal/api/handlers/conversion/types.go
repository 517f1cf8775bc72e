package conversion

import engine "recipe-converter/internal/core/conversion"

// ConvertRecipeRequest 換算請求。recipe_text 為必填，缺少時與空字串區分。
type ConvertRecipeRequest struct {
	RecipeText     *string `json:"recipe_text"`
	FromUnitSystem string  `json:"from_unit_system"`
	ToUnitSystem   string  `json:"to_unit_system"`
}

// UnitTableResponse 單位別名與通用容量表
type UnitTableResponse struct {
	Aliases map[engine.Unit][]string                  `json:"aliases"`
	Volumes map[engine.System]map[engine.Unit]float64 `json:"volumes"`
}

// IngredientTableResponse 食材資料表
type IngredientTableResponse struct {
	Ingredients map[string]engine.Profile `json:"ingredients"`
}
