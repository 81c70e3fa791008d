package services

// teenPortionFactor is the fixed serving multiplier applied to every matched
// food: the app targets adolescent/young-adult IBD patients whose realistic
// portions run about 1.5 standard servings.
const teenPortionFactor = 1.5

// PortionScaler turns a matched food name into a sanitized, portion-scaled
// nutrient vector.
type PortionScaler struct {
	catalog *FoodCatalog
}

func NewPortionScaler(catalog *FoodCatalog) *PortionScaler {
	return &PortionScaler{catalog: catalog}
}

// ScaledNutrients multiplies the food's per-serving values by
// teenPortionFactor. Values are sanitized both before and after scaling so a
// corrupted catalog entry (NaN/Infinity) can never leak into aggregation.
func (p *PortionScaler) ScaledNutrients(foodName string) (Nutrients, bool) {
	item, ok := p.catalog.Find(foodName)
	if !ok {
		return Nutrients{}, false
	}
	base := NutrientsFromFood(item) // sanitizes
	return base.Scale(teenPortionFactor).Sanitized(), true
}
