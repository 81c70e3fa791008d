package services

import (
	"backend/models"
	"backend/utils"
)

// Nutrients is the vector every engine stage passes around: macro fields plus
// the tracked micronutrients. All values are kept finite and non-negative.
type Nutrients struct {
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

// NutrientsFromFood copies a catalog entry's per-serving values, sanitized.
func NutrientsFromFood(f models.FoodItem) Nutrients {
	return Nutrients{
		Calories:   f.Calories,
		Protein:    f.Protein,
		Carbs:      f.Carbs,
		Fiber:      f.Fiber,
		Fat:        f.Fat,
		VitaminC:   f.VitaminC,
		Iron:       f.Iron,
		Potassium:  f.Potassium,
		VitaminB12: f.VitaminB12,
		VitaminB9:  f.VitaminB9,
		Zinc:       f.Zinc,
		Calcium:    f.Calcium,
		VitaminD:   f.VitaminD,
		Magnesium:  f.Magnesium,
		Omega3:     f.Omega3,
	}.Sanitized()
}

func (n Nutrients) Add(o Nutrients) Nutrients {
	return Nutrients{
		Calories:   n.Calories + o.Calories,
		Protein:    n.Protein + o.Protein,
		Carbs:      n.Carbs + o.Carbs,
		Fiber:      n.Fiber + o.Fiber,
		Fat:        n.Fat + o.Fat,
		VitaminC:   n.VitaminC + o.VitaminC,
		Iron:       n.Iron + o.Iron,
		Potassium:  n.Potassium + o.Potassium,
		VitaminB12: n.VitaminB12 + o.VitaminB12,
		VitaminB9:  n.VitaminB9 + o.VitaminB9,
		Zinc:       n.Zinc + o.Zinc,
		Calcium:    n.Calcium + o.Calcium,
		VitaminD:   n.VitaminD + o.VitaminD,
		Magnesium:  n.Magnesium + o.Magnesium,
		Omega3:     n.Omega3 + o.Omega3,
	}
}

func (n Nutrients) Scale(factor float64) Nutrients {
	return Nutrients{
		Calories:   n.Calories * factor,
		Protein:    n.Protein * factor,
		Carbs:      n.Carbs * factor,
		Fiber:      n.Fiber * factor,
		Fat:        n.Fat * factor,
		VitaminC:   n.VitaminC * factor,
		Iron:       n.Iron * factor,
		Potassium:  n.Potassium * factor,
		VitaminB12: n.VitaminB12 * factor,
		VitaminB9:  n.VitaminB9 * factor,
		Zinc:       n.Zinc * factor,
		Calcium:    n.Calcium * factor,
		VitaminD:   n.VitaminD * factor,
		Magnesium:  n.Magnesium * factor,
		Omega3:     n.Omega3 * factor,
	}
}

// Sanitized replaces any NaN/Infinity/negative field with 0.
func (n Nutrients) Sanitized() Nutrients {
	return Nutrients{
		Calories:   utils.SanitizeFloat(n.Calories),
		Protein:    utils.SanitizeFloat(n.Protein),
		Carbs:      utils.SanitizeFloat(n.Carbs),
		Fiber:      utils.SanitizeFloat(n.Fiber),
		Fat:        utils.SanitizeFloat(n.Fat),
		VitaminC:   utils.SanitizeFloat(n.VitaminC),
		Iron:       utils.SanitizeFloat(n.Iron),
		Potassium:  utils.SanitizeFloat(n.Potassium),
		VitaminB12: utils.SanitizeFloat(n.VitaminB12),
		VitaminB9:  utils.SanitizeFloat(n.VitaminB9),
		Zinc:       utils.SanitizeFloat(n.Zinc),
		Calcium:    utils.SanitizeFloat(n.Calcium),
		VitaminD:   utils.SanitizeFloat(n.VitaminD),
		Magnesium:  utils.SanitizeFloat(n.Magnesium),
		Omega3:     utils.SanitizeFloat(n.Omega3),
	}
}

func (n Nutrients) IsZero() bool {
	return n == Nutrients{}
}
