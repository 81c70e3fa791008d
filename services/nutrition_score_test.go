package services

import "testing"

func TestNutritionScore(t *testing.T) {
	n := NewNutritionScoreCalculator()

	good := Nutrients{Calories: 2000, Protein: 70, Fiber: 25}
	poor := Nutrients{Calories: 900, Protein: 30, Fiber: 8}

	tests := []struct {
		name         string
		deficiencies []Deficiency
		averages     Nutrients
		want         int
	}{
		{"perfect day", nil, good, 100}, // 100 + bonus, clamped
		{"no deficiencies without bonus", nil, poor, 100},
		{"one mild", []Deficiency{{Severity: SeverityMild}}, poor, 90},
		{"one of each severity", []Deficiency{
			{Severity: SeverityMild},
			{Severity: SeverityModerate},
			{Severity: SeveritySevere},
			{Severity: SeverityCritical},
		}, poor, 0},
		{"bonus offsets a mild deficiency", []Deficiency{{Severity: SeverityMild}}, good, 100},
		{"floor at zero", []Deficiency{
			{Severity: SeverityCritical},
			{Severity: SeverityCritical},
			{Severity: SeverityCritical},
		}, poor, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.Score(tt.deficiencies, tt.averages); got != tt.want {
				t.Errorf("Score = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNutritionScoreBonusNeedsAllThree(t *testing.T) {
	n := NewNutritionScoreCalculator()

	// each case misses exactly one threshold; with a moderate deficiency the
	// score stays at 80 because the bonus must not apply
	defs := []Deficiency{{Severity: SeverityModerate}}
	tests := []struct {
		name string
		avg  Nutrients
	}{
		{"protein short", Nutrients{Calories: 2000, Protein: 59, Fiber: 25}},
		{"fiber short", Nutrients{Calories: 2000, Protein: 70, Fiber: 19}},
		{"calories short", Nutrients{Calories: 1499, Protein: 70, Fiber: 25}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.Score(defs, tt.avg); got != 80 {
				t.Errorf("Score = %d, want 80 (no bonus)", got)
			}
		})
	}
}
