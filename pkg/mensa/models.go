package mensa

// Price holds the two cost tiers printed on the menu plan
type Price struct {
	Student string // "INT" tier, e.g. "8.50"
	Regular string // "EXT" tier
}

// Nutrition is the optional per-meal nutrition table. Values are kept as
// printed (e.g. "653 kcal", "23 g"), percentages refer to the daily need.
type Nutrition struct {
	Energy     string
	Fat        string
	Carbs      string
	Protein    string
	EnergyPct  string
	FatPct     string
	CarbsPct   string
	ProteinPct string
}

// MenuItem is one offering for one day at the campus mensa
type MenuItem struct {
	Title       string
	Description string
	Price       Price
	Allergens   []int // Numeric allergen codes from the menu footnotes
	Vegan       bool
	Vegetarian  bool
	Nutrition   *Nutrition
	Provenance  string // Meat/fish origin, empty when not declared
}
