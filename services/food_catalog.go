package services

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"backend/models"
)

//go:embed data/food_catalog.json
var foodCatalogJSON []byte

// FoodCatalog is the read-only reference table of foods with per-serving
// nutrient values. It is loaded once at process start, keeps the bundled file
// order (matching is first-match-wins, so the order must be stable), and is
// safe for unlimited concurrent readers.
type FoodCatalog struct {
	foods  []models.FoodItem
	byName map[string]int // lowercased name → index into foods
}

// LoadFoodCatalog parses the bundled catalog data.
func LoadFoodCatalog() (*FoodCatalog, error) {
	var foods []models.FoodItem
	if err := json.Unmarshal(foodCatalogJSON, &foods); err != nil {
		return nil, fmt.Errorf("food catalog: %w", err)
	}
	return NewFoodCatalog(foods)
}

// NewFoodCatalog builds a catalog from explicit entries. Entries keep their
// given order; names are unique case-insensitively.
func NewFoodCatalog(foods []models.FoodItem) (*FoodCatalog, error) {
	c := &FoodCatalog{
		foods:  make([]models.FoodItem, 0, len(foods)),
		byName: make(map[string]int, len(foods)),
	}
	for _, f := range foods {
		key := strings.ToLower(strings.TrimSpace(f.Name))
		if key == "" {
			return nil, fmt.Errorf("food catalog: entry with empty name")
		}
		if _, dup := c.byName[key]; dup {
			return nil, fmt.Errorf("food catalog: duplicate entry %q", f.Name)
		}
		c.byName[key] = len(c.foods)
		c.foods = append(c.foods, f)
	}
	return c, nil
}

// Foods returns all entries in stable catalog order. Callers must not mutate
// the returned slice.
func (c *FoodCatalog) Foods() []models.FoodItem {
	return c.foods
}

// Find looks up an entry by name, case-insensitively.
func (c *FoodCatalog) Find(name string) (models.FoodItem, bool) {
	i, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return models.FoodItem{}, false
	}
	return c.foods[i], true
}

// Search returns entries whose name or category contains the query as a
// case-insensitive substring, in catalog order.
func (c *FoodCatalog) Search(query string) []models.FoodItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []models.FoodItem
	for _, f := range c.foods {
		if strings.Contains(strings.ToLower(f.Name), q) || strings.Contains(strings.ToLower(f.Category), q) {
			out = append(out, f)
		}
	}
	return out
}

func (c *FoodCatalog) Len() int { return len(c.foods) }
