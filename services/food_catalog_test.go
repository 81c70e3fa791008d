package services

import (
	"testing"

	"backend/models"
)

func testCatalog(t *testing.T) *FoodCatalog {
	t.Helper()
	c, err := NewFoodCatalog([]models.FoodItem{
		{Name: "Chicken Breast", Category: "poultry", Calories: 165, Protein: 31, Fat: 3.6, Iron: 1.0, Zinc: 1.0},
		{Name: "Pasta", Category: "grain", Calories: 131, Protein: 5, Carbs: 25, Fiber: 1.8, Fat: 1.1},
		{Name: "Salmon", Category: "fish", Calories: 208, Protein: 20, Fat: 13, VitaminD: 11, VitaminB12: 3.2, Omega3: 2.3},
		{Name: "Spinach", Category: "vegetable", Calories: 23, Protein: 2.9, Fiber: 2.2, Iron: 2.7, Calcium: 99},
		{Name: "Greek Yogurt", Category: "dairy", Calories: 59, Protein: 10, Calcium: 110, VitaminB12: 0.8},
	})
	if err != nil {
		t.Fatalf("NewFoodCatalog: %v", err)
	}
	return c
}

func TestLoadFoodCatalog(t *testing.T) {
	c, err := LoadFoodCatalog()
	if err != nil {
		t.Fatalf("LoadFoodCatalog: %v", err)
	}
	if c.Len() == 0 {
		t.Fatal("embedded catalog is empty")
	}

	// the bundled order must be stable: matching is first-match-wins
	first := c.Foods()[0].Name
	again, _ := LoadFoodCatalog()
	if again.Foods()[0].Name != first {
		t.Fatalf("catalog order not stable: %q vs %q", first, again.Foods()[0].Name)
	}
}

func TestCatalogFindCaseInsensitive(t *testing.T) {
	c := testCatalog(t)

	for _, name := range []string{"Chicken Breast", "chicken breast", "CHICKEN BREAST", "  Chicken Breast  "} {
		if _, ok := c.Find(name); !ok {
			t.Errorf("Find(%q) = not found, want found", name)
		}
	}
	if _, ok := c.Find("dragonfruit"); ok {
		t.Error("Find(dragonfruit) found, want not found")
	}
}

func TestCatalogRejectsDuplicates(t *testing.T) {
	_, err := NewFoodCatalog([]models.FoodItem{
		{Name: "Oats"},
		{Name: "OATS"},
	})
	if err == nil {
		t.Fatal("expected error for case-insensitive duplicate names")
	}
}

func TestCatalogSearch(t *testing.T) {
	c := testCatalog(t)

	tests := []struct {
		query string
		want  int
	}{
		{"chicken", 1},
		{"grain", 1}, // category match
		{"a", 5},     // matches via names/categories broadly
		{"", 0},
		{"zzz", 0},
	}
	for _, tt := range tests {
		if got := len(c.Search(tt.query)); got != tt.want {
			t.Errorf("Search(%q) returned %d entries, want %d", tt.query, got, tt.want)
		}
	}
}
