package services

import (
	"fmt"
	"sort"

	"backend/models"
	"backend/utils"
)

// NutrientStatus classifies intake as a percentage of the personalized target.
type NutrientStatus string

const (
	StatusDeficient  NutrientStatus = "deficient"  // < 50%
	StatusSuboptimal NutrientStatus = "suboptimal" // 50–79%
	StatusAdequate   NutrientStatus = "adequate"   // 80–120% (and the 120–150% high-normal band)
	StatusOptimal    NutrientStatus = "optimal"    // 90–110% mid-band
	StatusExcessive  NutrientStatus = "excessive"  // > 150%
)

// Severity grades how far intake sits from the target.
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
	SeverityCritical Severity = "critical"
)

// Deficiency records one nutrient below target. Percentage is always
// current/recommended*100 and stays ≤ 100 here; only Excess records exceed it.
type Deficiency struct {
	Nutrient         string   `json:"nutrient"`
	CurrentLevel     float64  `json:"current_level"`
	RecommendedLevel float64  `json:"recommended_level"`
	Percentage       float64  `json:"percentage"`
	Severity         Severity `json:"severity"`
	Unit             string   `json:"unit"`
}

type Excess struct {
	Nutrient         string   `json:"nutrient"`
	CurrentLevel     float64  `json:"current_level"`
	RecommendedLevel float64  `json:"recommended_level"`
	Percentage       float64  `json:"percentage"`
	Severity         Severity `json:"severity"`
	Unit             string   `json:"unit"`
}

// ImmediateAction is a prioritized recommendation generated from the worst
// deficiencies.
type ImmediateAction struct {
	Nutrient  string `json:"nutrient"`
	Action    string `json:"action"`
	Priority  string `json:"priority"` // critical|high|medium|low
	Timeframe string `json:"timeframe"`
}

// NutrientLevel is one row of the per-nutrient current/required view.
type NutrientLevel struct {
	Nutrient   string         `json:"nutrient"`
	Current    float64        `json:"current"`
	Required   float64        `json:"required"`
	Unit       string         `json:"unit"`
	Percentage float64        `json:"percentage"`
	Status     NutrientStatus `json:"status"`
}

// IBDMicronutrientAnalysis is the micronutrient-focused report consumed by
// the UI layer. Lab results ride along for display only; they carry no
// defined weight in the numeric classification and are not blended in.
type IBDMicronutrientAnalysis struct {
	Deficiencies         []Deficiency       `json:"deficiencies"` // worst first
	Excesses             []Excess           `json:"excesses"`
	IBDSpecificNutrients []NutrientLevel    `json:"ibdSpecificNutrients"`
	Recommendations      struct {
		ImmediateActions []ImmediateAction `json:"immediateActions"`
	} `json:"recommendations"`
	LabResults []models.LabResult `json:"lab_results,omitempty"`
}

// DeficiencyAnalyzer compares aggregated intake against personalized
// requirements. Stateless; safe for concurrent use.
type DeficiencyAnalyzer struct{}

func NewDeficiencyAnalyzer() *DeficiencyAnalyzer {
	return &DeficiencyAnalyzer{}
}

// ClassifyStatus maps a percentage-of-target to its status band.
func ClassifyStatus(pct float64) NutrientStatus {
	switch {
	case pct < 50:
		return StatusDeficient
	case pct < 80:
		return StatusSuboptimal
	case pct >= 90 && pct <= 110:
		return StatusOptimal
	case pct > 150:
		return StatusExcessive
	default:
		return StatusAdequate
	}
}

// DeficiencySeverity grades distance below target: mild ≥70%, moderate
// 40–69%, severe 20–39%, critical <20%.
func DeficiencySeverity(pct float64) Severity {
	switch {
	case pct >= 70:
		return SeverityMild
	case pct >= 40:
		return SeverityModerate
	case pct >= 20:
		return SeveritySevere
	default:
		return SeverityCritical
	}
}

// ExcessSeverity mirrors the deficiency bands on the far side of the target:
// ≤200% mild, ≤300% moderate, ≤500% severe, above that critical.
func ExcessSeverity(pct float64) Severity {
	switch {
	case pct <= 200:
		return SeverityMild
	case pct <= 300:
		return SeverityModerate
	case pct <= 500:
		return SeveritySevere
	default:
		return SeverityCritical
	}
}

type nutrientPair struct {
	name     string
	current  float64
	required float64
	unit     string
	micro    bool
}

func pairs(intake Nutrients, reqs DailyRequirements) []nutrientPair {
	return []nutrientPair{
		{"calories", intake.Calories, reqs.Calories, "kcal", false},
		{"protein", intake.Protein, reqs.Protein, "g", false},
		{"carbs", intake.Carbs, reqs.Carbs, "g", false},
		{"fiber", intake.Fiber, reqs.Fiber, "g", false},
		{"fat", intake.Fat, reqs.Fat, "g", false},
		{"vitaminD", intake.VitaminD, reqs.VitaminD, "µg", true},
		{"vitaminB12", intake.VitaminB12, reqs.VitaminB12, "µg", true},
		{"iron", intake.Iron, reqs.Iron, "mg", true},
		{"calcium", intake.Calcium, reqs.Calcium, "mg", true},
		{"zinc", intake.Zinc, reqs.Zinc, "mg", true},
		{"omega3", intake.Omega3, reqs.Omega3, "g", true},
	}
}

// Analyze classifies every tracked nutrient (macros and micronutrients).
// Nutrients with a non-positive requirement are skipped, never divided by.
// Deficiencies come back worst first; excesses highest first.
func (d *DeficiencyAnalyzer) Analyze(intake Nutrients, reqs DailyRequirements) ([]Deficiency, []Excess, []NutrientLevel) {
	intake = intake.Sanitized()

	var deficiencies []Deficiency
	var excesses []Excess
	var levels []NutrientLevel

	for _, p := range pairs(intake, reqs) {
		if p.required <= 0 {
			continue
		}
		pct := utils.Round2(utils.Pct(p.current, p.required))
		levels = append(levels, NutrientLevel{
			Nutrient:   p.name,
			Current:    utils.Round2(p.current),
			Required:   utils.Round2(p.required),
			Unit:       p.unit,
			Percentage: pct,
			Status:     ClassifyStatus(pct),
		})

		switch {
		case pct < 80:
			deficiencies = append(deficiencies, Deficiency{
				Nutrient:         p.name,
				CurrentLevel:     utils.Round2(p.current),
				RecommendedLevel: utils.Round2(p.required),
				Percentage:       pct,
				Severity:         DeficiencySeverity(pct),
				Unit:             p.unit,
			})
		case pct > 150:
			excesses = append(excesses, Excess{
				Nutrient:         p.name,
				CurrentLevel:     utils.Round2(p.current),
				RecommendedLevel: utils.Round2(p.required),
				Percentage:       pct,
				Severity:         ExcessSeverity(pct),
				Unit:             p.unit,
			})
		}
	}

	sort.SliceStable(deficiencies, func(i, j int) bool {
		return deficiencies[i].Percentage < deficiencies[j].Percentage
	})
	sort.SliceStable(excesses, func(i, j int) bool {
		return excesses[i].Percentage > excesses[j].Percentage
	})

	return deficiencies, excesses, levels
}

// AnalyzeMicronutrients builds the IBD-focused report over the six tracked
// micronutrients, with immediate actions from the worst 1–3 deficiencies.
func (d *DeficiencyAnalyzer) AnalyzeMicronutrients(intake Nutrients, reqs DailyRequirements, labs []models.LabResult) *IBDMicronutrientAnalysis {
	allDefs, allExcesses, allLevels := d.Analyze(intake, reqs)

	microNames := map[string]bool{}
	for _, p := range pairs(intake, reqs) {
		if p.micro {
			microNames[p.name] = true
		}
	}

	out := &IBDMicronutrientAnalysis{LabResults: labs}
	for _, def := range allDefs {
		if microNames[def.Nutrient] {
			out.Deficiencies = append(out.Deficiencies, def)
		}
	}
	for _, ex := range allExcesses {
		if microNames[ex.Nutrient] {
			out.Excesses = append(out.Excesses, ex)
		}
	}
	for _, lvl := range allLevels {
		if microNames[lvl.Nutrient] {
			out.IBDSpecificNutrients = append(out.IBDSpecificNutrients, lvl)
		}
	}
	out.Recommendations.ImmediateActions = ImmediateActions(out.Deficiencies)
	return out
}

// foodAdvice maps nutrients to IBD-friendly food suggestions.
var foodAdvice = map[string]string{
	"calories":   "add energy-dense, gut-tolerated foods such as smoothies, nut butters, and olive oil",
	"protein":    "add lean protein at each meal: chicken, fish, eggs, or tofu",
	"carbs":      "add well-tolerated carbohydrates such as rice, oatmeal, and potatoes",
	"fiber":      "increase soluble fiber gradually: oatmeal, bananas, and cooked vegetables",
	"fat":        "add healthy fats: olive oil, avocado, and fatty fish",
	"vitaminD":   "add fortified dairy or fatty fish (salmon), and discuss supplementation",
	"vitaminB12": "add fish, eggs, or fortified foods; B12 absorption is often impaired in ileal disease",
	"iron":       "add lean red meat, lentils, or spinach; pair plant iron with vitamin C",
	"calcium":    "add yogurt, kefir, lactose-free milk, or calcium-set tofu",
	"zinc":       "add lean beef, chickpeas, or pumpkin seeds",
	"omega3":     "add fatty fish twice a week, or walnuts and ground flaxseed",
}

var severityPriority = map[Severity]string{
	SeverityCritical: "critical",
	SeveritySevere:   "high",
	SeverityModerate: "medium",
	SeverityMild:     "low",
}

var severityTimeframe = map[Severity]string{
	SeverityCritical: "within 1 week",
	SeveritySevere:   "within 2 weeks",
	SeverityModerate: "within 1 month",
	SeverityMild:     "within 3 months",
}

// ImmediateActions turns the worst 1–3 deficiencies into prioritized actions.
// Input must already be sorted worst first.
func ImmediateActions(deficiencies []Deficiency) []ImmediateAction {
	limit := len(deficiencies)
	if limit > 3 {
		limit = 3
	}
	actions := make([]ImmediateAction, 0, limit)
	for _, def := range deficiencies[:limit] {
		advice, ok := foodAdvice[def.Nutrient]
		if !ok {
			advice = fmt.Sprintf("increase %s intake toward %.0f %s/day", def.Nutrient, def.RecommendedLevel, def.Unit)
		}
		actions = append(actions, ImmediateAction{
			Nutrient:  def.Nutrient,
			Action:    advice,
			Priority:  severityPriority[def.Severity],
			Timeframe: severityTimeframe[def.Severity],
		})
	}
	return actions
}
