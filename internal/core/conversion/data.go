package conversion

// 內建換算資料。固體係數為每單位公克數，液體為每單位毫升數。

var builtinVolumes = map[System]map[Unit]float64{
	SystemMetric: {
		UnitTeaspoon:   5,
		UnitTablespoon: 15,
		UnitCup:        200,
		UnitGram:       1,
		UnitKilogram:   1000,
		UnitMillilitre: 1,
		UnitLitre:      1000,
	},
	SystemUS: {
		UnitTeaspoon:   4.93,
		UnitTablespoon: 14.79,
		UnitCup:        240,
		UnitFluidOunce: 29.57,
		UnitOunce:      28.35,
		UnitPound:      453.6,
		UnitGram:       1,
		UnitKilogram:   1000,
		UnitMillilitre: 1,
		UnitLitre:      1000,
	},
	SystemUK: {
		UnitTeaspoon:   5,
		UnitTablespoon: 15,
		UnitCup:        250,
		UnitFluidOunce: 28.41,
		UnitOunce:      28.35,
		UnitPound:      453.6,
		UnitGram:       1,
		UnitKilogram:   1000,
		UnitMillilitre: 1,
		UnitLitre:      1000,
	},
}

var flourFactors = map[System]map[Unit]float64{
	SystemUS:     {UnitCup: 120, UnitTablespoon: 7.5, UnitTeaspoon: 2.5},
	SystemUK:     {UnitCup: 125, UnitTablespoon: 7.8, UnitTeaspoon: 2.6},
	SystemMetric: {UnitCup: 120, UnitTablespoon: 7.5, UnitTeaspoon: 2.5},
}

var oilFactors = map[System]map[Unit]float64{
	SystemUS: {UnitTablespoon: 14.79, UnitTeaspoon: 4.93},
}

var builtinProfiles = map[string]Profile{
	"flour":             {Form: FormSolid, Factors: flourFactors},
	"all-purpose flour": {Form: FormSolid, Factors: map[System]map[Unit]float64{SystemUS: {UnitCup: 120}}},
	"bread flour":       {Form: FormSolid, Factors: map[System]map[Unit]float64{SystemUS: {UnitCup: 120, UnitTablespoon: 7.5}}},
	"cake flour":        {Form: FormSolid, Factors: map[System]map[Unit]float64{SystemUS: {UnitCup: 120, UnitTablespoon: 7.5}}},
	"cornstarch": {Form: FormSolid, Factors: map[System]map[Unit]float64{
		SystemUS:     {UnitCup: 128, UnitTablespoon: 8, UnitTeaspoon: 3},
		SystemUK:     {UnitCup: 128, UnitTablespoon: 8, UnitTeaspoon: 3},
		SystemMetric: {UnitCup: 110, UnitTablespoon: 8, UnitTeaspoon: 3},
	}},
	"sugar": {Form: FormSolid, Factors: map[System]map[Unit]float64{
		SystemUS: {UnitCup: 200, UnitTablespoon: 12.5, UnitTeaspoon: 4.2},
		SystemUK: {UnitCup: 225, UnitTablespoon: 14, UnitTeaspoon: 4.7},
	}},
	"granulated sugar": {Form: FormSolid, Factors: map[System]map[Unit]float64{
		SystemUS: {UnitCup: 200, UnitTablespoon: 12.5},
		SystemUK: {UnitCup: 225, UnitTablespoon: 14},
	}},
	"brown sugar":    {Form: FormSolid, Factors: map[System]map[Unit]float64{SystemUS: {UnitCup: 213, UnitTablespoon: 13.3, UnitTeaspoon: 4.4}}},
	"powdered sugar": {Form: FormSolid, Factors: map[System]map[Unit]float64{SystemUS: {UnitCup: 120, UnitTablespoon: 7.5}}},
	"baking powder": {Form: FormSolid, Factors: map[System]map[Unit]float64{
		SystemUS: {UnitTeaspoon: 4, UnitTablespoon: 12},
		SystemUK: {UnitTeaspoon: 5},
	}},
	"baking soda": {Form: FormSolid, Factors: map[System]map[Unit]float64{
		SystemUS: {UnitTeaspoon: 4.5, UnitTablespoon: 13.5},
		SystemUK: {UnitTeaspoon: 5},
	}},
	"salt": {Form: FormSolid, Factors: map[System]map[Unit]float64{
		SystemUS: {UnitTeaspoon: 5},
		SystemUK: {UnitTeaspoon: 5.8},
	}},
	"kosher salt": {Form: FormSolid, Factors: map[System]map[Unit]float64{SystemUS: {UnitTeaspoon: 2.8, UnitTablespoon: 8.4}}},
	"butter": {Form: FormSolid, Factors: map[System]map[Unit]float64{
		SystemUS: {UnitTablespoon: 14.2, UnitTeaspoon: 4.7, UnitCup: 225, UnitStick: 113},
	}},
	"cream cheese":            {Form: FormSolid, Factors: map[System]map[Unit]float64{SystemUS: {UnitCup: 240}}},
	"mashed bananas":          {Form: FormSolid, Factors: map[System]map[Unit]float64{SystemUS: {UnitCup: 200}}},
	"elbow macaroni":          {Form: FormSolid, Factors: map[System]map[Unit]float64{SystemUS: {UnitOunce: 28.35}}},
	"shredded cheddar cheese": {Form: FormSolid, Factors: map[System]map[Unit]float64{SystemUS: {UnitCup: 113}}},
	"blueberries":             {Form: FormSolid, Factors: map[System]map[Unit]float64{SystemUS: {UnitCup: 150}}},
	"tomato purée":            {Form: FormSolid, Factors: map[System]map[Unit]float64{SystemUK: {UnitTablespoon: 15}}},
	"golden syrup":            {Form: FormSolid, Factors: map[System]map[Unit]float64{SystemUK: {UnitTablespoon: 15}}},
	"chocolate chunks":        {Form: FormSolid, Factors: map[System]map[Unit]float64{SystemUS: {UnitCup: 170}}},

	"milk":          {Form: FormLiquid, Factors: map[System]map[Unit]float64{SystemUS: {UnitCup: 240, UnitTablespoon: 15, UnitTeaspoon: 5}}},
	"heavy cream":   {Form: FormLiquid, Factors: map[System]map[Unit]float64{SystemUS: {UnitCup: 240, UnitTablespoon: 15}}},
	"yogurt":        {Form: FormLiquid, Factors: map[System]map[Unit]float64{SystemUS: {UnitCup: 245}}},
	"water":         {Form: FormLiquid},
	"olive oil":     {Form: FormLiquid, Factors: oilFactors},
	"vegetable oil": {Form: FormLiquid, Factors: oilFactors},
	"vanilla extract": {Form: FormLiquid, Factors: map[System]map[Unit]float64{
		SystemUS: {UnitTeaspoon: 5, UnitFluidOunce: 29.57},
	}},
	"soy sauce": {Form: FormLiquid, Factors: map[System]map[Unit]float64{
		SystemUS:     {UnitTablespoon: 15},
		SystemMetric: {UnitTablespoon: 15},
	}},
	"fresh lemon juice": {Form: FormLiquid, Factors: map[System]map[Unit]float64{SystemUS: {UnitTablespoon: 15}}},

	"egg":    {Form: FormCountable, UnitWeight: 50, SizeWeights: map[Unit]float64{UnitSmall: 40, UnitMedium: 50, UnitLarge: 60}},
	"banana": {Form: FormCountable, UnitWeight: 120, SizeWeights: map[Unit]float64{UnitSmall: 100, UnitMedium: 120, UnitLarge: 150}},
	"apple":  {Form: FormCountable, UnitWeight: 125, SizeWeights: map[Unit]float64{UnitSmall: 100, UnitMedium: 125, UnitLarge: 150}},
	"onion":  {Form: FormCountable, UnitWeight: 150, SizeWeights: map[Unit]float64{UnitSmall: 110, UnitMedium: 150, UnitLarge: 200}},
	"carrot": {Form: FormCountable, UnitWeight: 70, SizeWeights: map[Unit]float64{UnitSmall: 50, UnitMedium: 70, UnitLarge: 100}},
	"potato": {Form: FormCountable, UnitWeight: 150, SizeWeights: map[Unit]float64{UnitSmall: 100, UnitMedium: 150, UnitLarge: 200}},
	"tomato": {Form: FormCountable, UnitWeight: 125, SizeWeights: map[Unit]float64{UnitSmall: 100, UnitMedium: 125, UnitLarge: 150}},
}

var builtinSynonyms = map[string]string{
	"chocolate chips":        "chocolate chunks",
	"chocolate chip":         "chocolate chunks",
	"dark chocolate chips":   "chocolate chunks",
	"dark chocolate chunks":  "chocolate chunks",
	"milk chocolate chips":   "chocolate chunks",
	"caster sugar":           "sugar",
	"white sugar":            "sugar",
	"granulated white sugar": "sugar",
	"icing sugar":            "powdered sugar",
	"confectioners sugar":    "powdered sugar",
	"plain flour":            "flour",
	"self-raising flour":     "flour",
	"self raising flour":     "flour",
	"all purpose flour":      "all-purpose flour",
	"veg oil":                "vegetable oil",
	"sunflower oil":          "vegetable oil",
	"free-range eggs":        "egg",
	"eggs":                   "egg",
	"unsalted butter":        "butter",
	"salted butter":          "butter",
	"vanilla essence":        "vanilla extract",
	"lemon juice":            "fresh lemon juice",
	"tomato puree":           "tomato purée",
	"bananas":                "banana",
	"apples":                 "apple",
	"onions":                 "onion",
	"carrots":                "carrot",
	"potatoes":               "potato",
	"tomatoes":               "tomato",
	"grated cheddar cheese":  "shredded cheddar cheese",
	"double cream":           "heavy cream",
	"whipping cream":         "heavy cream",
	"bicarbonate of soda":    "baking soda",
	"bicarbonate soda":       "baking soda",
	"bicarb":                 "baking soda",
	"corn starch":            "cornstarch",
	"cornflour":              "cornstarch",
}

var builtinNames = []NamePair{
	{Metric: "牛乳", Foreign: "milk"},
	{Metric: "薄力粉", Foreign: "flour"},
	{Metric: "中力粉", Foreign: "all-purpose flour"},
	{Metric: "強力粉", Foreign: "bread flour"},
	{Metric: "砂糖", Foreign: "sugar"},
	{Metric: "上白糖", Foreign: "sugar"},
	{Metric: "グラニュー糖", Foreign: "granulated sugar"},
	{Metric: "ブラウンシュガー", Foreign: "brown sugar"},
	{Metric: "粉砂糖", Foreign: "powdered sugar"},
	{Metric: "塩", Foreign: "salt"},
	{Metric: "コーシャーソルト", Foreign: "kosher salt"},
	{Metric: "卵", Foreign: "egg"},
	{Metric: "たまご", Foreign: "egg"},
	{Metric: "タマゴ", Foreign: "egg"},
	{Metric: "玉子", Foreign: "egg"},
	{Metric: "バター", Foreign: "butter"},
	{Metric: "水", Foreign: "water"},
	{Metric: "オリーブオイル", Foreign: "olive oil"},
	{Metric: "サラダ油", Foreign: "vegetable oil"},
	{Metric: "生クリーム", Foreign: "heavy cream"},
	{Metric: "ヨーグルト", Foreign: "yogurt"},
	{Metric: "クリームチーズ", Foreign: "cream cheese"},
	{Metric: "レモン汁", Foreign: "fresh lemon juice"},
	{Metric: "醤油", Foreign: "soy sauce"},
	{Metric: "ベーキングソーダ", Foreign: "baking soda"},
	{Metric: "重曹", Foreign: "baking soda"},
	{Metric: "ベーキングパウダー", Foreign: "baking powder"},
	{Metric: "コーンスターチ", Foreign: "cornstarch"},
	{Metric: "バニラエッセンス", Foreign: "vanilla extract"},
	{Metric: "チョコチップ", Foreign: "chocolate chips"},
	{Metric: "チョコレート", Foreign: "chocolate chunks"},
	{Metric: "エルボーマカロニ", Foreign: "elbow macaroni"},
	{Metric: "チェダーチーズ", Foreign: "cheddar cheese"},
	{Metric: "チェダーチーズ（シュレッド）", Foreign: "shredded cheddar cheese"},
	{Metric: "ブルーベリー", Foreign: "blueberries"},
	{Metric: "トマトピューレ", Foreign: "tomato purée"},
	{Metric: "ゴールデンシロップ", Foreign: "golden syrup"},
	{Metric: "バナナ", Foreign: "banana"},
	{Metric: "りんご", Foreign: "apple"},
	{Metric: "玉ねぎ", Foreign: "onion"},
	{Metric: "にんじん", Foreign: "carrot"},
	{Metric: "じゃがいも", Foreign: "potato"},
	{Metric: "トマト", Foreign: "tomato"},
}

var builtinOverrides = []DisplayOverride{
	{Contains: []string{"mashed", "banana"}, Display: "バナナ（つぶしたもの）"},
}
