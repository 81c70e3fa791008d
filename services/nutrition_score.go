package services

import "backend/utils"

// Deduction per deficiency severity, applied to a 100-point base.
var severityDeduction = map[Severity]int{
	SeverityMild:     10,
	SeverityModerate: 20,
	SeveritySevere:   30,
	SeverityCritical: 40,
}

// "Good intake" thresholds for the balanced-day bonus: all three must hold
// simultaneously on the daily averages.
const (
	goodProteinG    = 60
	goodFiberG      = 20
	goodCaloriesMin = 1500
	balancedBonus   = 10
)

// NutritionScoreCalculator composes deficiency output into a single 0–100
// score: start at 100, subtract per deficiency severity, add a bonus when
// protein, fiber, and calorie averages are all good, clamp to [0, 100].
type NutritionScoreCalculator struct{}

func NewNutritionScoreCalculator() *NutritionScoreCalculator {
	return &NutritionScoreCalculator{}
}

func (n *NutritionScoreCalculator) Score(deficiencies []Deficiency, dailyAverages Nutrients) int {
	score := 100
	for _, def := range deficiencies {
		score -= severityDeduction[def.Severity]
	}

	avg := dailyAverages.Sanitized()
	if avg.Protein >= goodProteinG && avg.Fiber >= goodFiberG && avg.Calories >= goodCaloriesMin {
		score += balancedBonus
	}

	return utils.ClampInt(score, 0, 100)
}
