package services

import (
	"math"
	"testing"

	"backend/models"
)

func TestScaledNutrientsAppliesTeenPortion(t *testing.T) {
	p := NewPortionScaler(testCatalog(t))

	vec, ok := p.ScaledNutrients("Chicken Breast")
	if !ok {
		t.Fatal("Chicken Breast not found")
	}
	if got, want := vec.Calories, 165*1.5; got != want {
		t.Errorf("Calories = %v, want %v", got, want)
	}
	if got, want := vec.Protein, 31*1.5; got != want {
		t.Errorf("Protein = %v, want %v", got, want)
	}

	if _, ok := p.ScaledNutrients("nonexistent"); ok {
		t.Error("expected not-found for unknown food")
	}
}

func TestScaledNutrientsSanitizesCorruptCatalog(t *testing.T) {
	// deliberately corrupted fixture: NaN/Inf/negative per-serving values
	c, err := NewFoodCatalog([]models.FoodItem{
		{
			Name:     "Corrupt",
			Calories: math.Inf(1),
			Protein:  math.NaN(),
			Carbs:    -12,
			Fiber:    3,
			Iron:     math.Inf(-1),
		},
	})
	if err != nil {
		t.Fatalf("NewFoodCatalog: %v", err)
	}
	p := NewPortionScaler(c)

	vec, ok := p.ScaledNutrients("Corrupt")
	if !ok {
		t.Fatal("Corrupt not found")
	}

	fields := map[string]float64{
		"calories": vec.Calories,
		"protein":  vec.Protein,
		"carbs":    vec.Carbs,
		"fiber":    vec.Fiber,
		"iron":     vec.Iron,
	}
	for name, v := range fields {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			t.Errorf("%s = %v, want finite and >= 0", name, v)
		}
	}
	if vec.Fiber != 4.5 {
		t.Errorf("Fiber = %v, want 4.5 (3 * 1.5)", vec.Fiber)
	}
}
