package models

// FoodItem is one catalog entry: per-serving macro and micronutrient values
// for a reference food. The catalog is bundled static data, loaded once at
// process start and never mutated.
type FoodItem struct {
	Name     string `json:"name"` // unique, case-insensitive key
	Category string `json:"category"`

	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fiber    float64 `json:"fiber"`
	Fat      float64 `json:"fat"`

	VitaminC   float64 `json:"vitaminC"`
	Iron       float64 `json:"iron"`
	Potassium  float64 `json:"potassium"`
	VitaminB12 float64 `json:"vitaminB12"`
	VitaminB9  float64 `json:"vitaminB9"`
	Zinc       float64 `json:"zinc"`
	Calcium    float64 `json:"calcium"`
	VitaminD   float64 `json:"vitaminD"`
	Magnesium  float64 `json:"magnesium"`
	Omega3     float64 `json:"omega3"`
}
