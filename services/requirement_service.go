package services

import (
	"strings"

	"backend/models"
	"backend/utils"
)

// NutrientRequirement is a single personalized target.
type NutrientRequirement struct {
	Nutrient string  `json:"nutrient"`
	Amount   float64 `json:"required_amount"`
	Unit     string  `json:"unit"`
}

// DailyRequirements holds the full personalized target set for one profile.
type DailyRequirements struct {
	Calories float64 `json:"calories"` // kcal
	Protein  float64 `json:"protein"`  // g
	Carbs    float64 `json:"carbs"`    // g
	Fiber    float64 `json:"fiber"`    // g
	Fat      float64 `json:"fat"`      // g

	VitaminD   float64 `json:"vitaminD"`   // µg
	VitaminB12 float64 `json:"vitaminB12"` // µg
	Iron       float64 `json:"iron"`       // mg
	Calcium    float64 `json:"calcium"`    // mg
	Zinc       float64 `json:"zinc"`       // mg
	Omega3     float64 `json:"omega3"`     // g
}

// activityAdjustment raises targets with disease activity. Active disease
// increases protein turnover and micronutrient losses, so both scale up
// relative to remission. Single source of truth for the whole app, which is
// what keeps a trend chart and a recommendation card numerically identical.
type activityAdjustment struct {
	Calories float64
	Protein  float64
	Micros   float64
}

var activityAdjustments = map[models.DiseaseActivity]activityAdjustment{
	models.ActivityRemission: {Calories: 1.0, Protein: 1.0, Micros: 1.0},
	models.ActivityMild:      {Calories: 1.0, Protein: 1.1, Micros: 1.1},
	models.ActivityModerate:  {Calories: 1.05, Protein: 1.25, Micros: 1.25},
	models.ActivitySevere:    {Calories: 1.10, Protein: 1.5, Micros: 1.5},
}

// RequirementCalculator derives personalized daily/weekly nutrient targets
// from a health profile, from an NIH DRI baseline adjusted by age, weight,
// gender, and disease activity. Stateless and safe for concurrent use.
type RequirementCalculator struct{}

func NewRequirementCalculator() *RequirementCalculator {
	return &RequirementCalculator{}
}

// DailyRequirements computes the target set. A nil profile falls back to the
// documented default (30y, 70kg, 170cm, unknown gender, remission) rather
// than failing.
func (r *RequirementCalculator) DailyRequirements(profile *models.MicronutrientProfile) DailyRequirements {
	if profile == nil {
		p := models.DefaultProfile(0)
		profile = &p
	}

	age := profile.Age
	if age <= 0 || age > 130 {
		age = 30
	}
	weight := profile.WeightKg
	if weight <= 0 {
		weight = 70
	}
	height := profile.HeightCm
	if height <= 0 {
		height = 170
	}
	gender := strings.ToLower(strings.TrimSpace(profile.Gender))

	adj, ok := activityAdjustments[models.ParseDiseaseActivity(string(profile.DiseaseActivity))]
	if !ok {
		adj = activityAdjustments[models.ActivityRemission]
	}

	// BMR via Mifflin-St Jeor; unknown gender uses the midpoint of the
	// male (+5) and female (-161) constants.
	bmr := 10*weight + 6.25*height - 5*float64(age)
	switch gender {
	case "male", "m":
		bmr += 5
	case "female", "f":
		bmr -= 161
	default:
		bmr -= 78
	}
	// Light-activity factor; IBD patients in a flare are rarely training hard.
	calories := bmr * 1.4 * adj.Calories

	// 0.8 g/kg DRI baseline; older adults get a 1.2x sarcopenia bump.
	protein := 0.8 * weight
	if age >= 65 {
		protein *= 1.2
	}
	protein *= adj.Protein

	req := DailyRequirements{
		Calories: utils.Round2(calories),
		Protein:  utils.Round2(protein),
		Carbs:    utils.Round2(0.50 * calories / 4.0), // 50% of kcal at 4 kcal/g
		Fiber:    utils.Round2(14.0 * calories / 1000.0),
		Fat:      utils.Round2(0.30 * calories / 9.0), // 30% of kcal at 9 kcal/g

		VitaminD:   15,
		VitaminB12: 2.4,
		Iron:       ironBaseline(gender),
		Calcium:    1000,
		Zinc:       zincBaseline(gender),
		Omega3:     omega3Baseline(gender),
	}
	if age > 70 {
		req.VitaminD = 20
		req.Calcium = 1200
	}

	req.VitaminD = utils.Round2(req.VitaminD * adj.Micros)
	req.VitaminB12 = utils.Round2(req.VitaminB12 * adj.Micros)
	req.Iron = utils.Round2(req.Iron * adj.Micros)
	req.Calcium = utils.Round2(req.Calcium * adj.Micros)
	req.Zinc = utils.Round2(req.Zinc * adj.Micros)
	req.Omega3 = utils.Round2(req.Omega3 * adj.Micros)

	return req
}

// WeeklyRequirements is daily × 7.
func (r *RequirementCalculator) WeeklyRequirements(profile *models.MicronutrientProfile) DailyRequirements {
	d := r.DailyRequirements(profile)
	return DailyRequirements{
		Calories:   d.Calories * 7,
		Protein:    d.Protein * 7,
		Carbs:      d.Carbs * 7,
		Fiber:      d.Fiber * 7,
		Fat:        d.Fat * 7,
		VitaminD:   d.VitaminD * 7,
		VitaminB12: d.VitaminB12 * 7,
		Iron:       d.Iron * 7,
		Calcium:    d.Calcium * 7,
		Zinc:       d.Zinc * 7,
		Omega3:     d.Omega3 * 7,
	}
}

func ironBaseline(gender string) float64 {
	switch gender {
	case "male", "m":
		return 8
	case "female", "f":
		return 18
	default:
		return 13
	}
}

func zincBaseline(gender string) float64 {
	switch gender {
	case "male", "m":
		return 11
	case "female", "f":
		return 8
	default:
		return 9.5
	}
}

func omega3Baseline(gender string) float64 {
	switch gender {
	case "male", "m":
		return 1.6
	case "female", "f":
		return 1.1
	default:
		return 1.35
	}
}

// Requirements lists the target set as named records with units, in a fixed
// display order (macros first, then the tracked micronutrients).
func (d DailyRequirements) Requirements() []NutrientRequirement {
	return []NutrientRequirement{
		{Nutrient: "calories", Amount: d.Calories, Unit: "kcal"},
		{Nutrient: "protein", Amount: d.Protein, Unit: "g"},
		{Nutrient: "carbs", Amount: d.Carbs, Unit: "g"},
		{Nutrient: "fiber", Amount: d.Fiber, Unit: "g"},
		{Nutrient: "fat", Amount: d.Fat, Unit: "g"},
		{Nutrient: "vitaminD", Amount: d.VitaminD, Unit: "µg"},
		{Nutrient: "vitaminB12", Amount: d.VitaminB12, Unit: "µg"},
		{Nutrient: "iron", Amount: d.Iron, Unit: "mg"},
		{Nutrient: "calcium", Amount: d.Calcium, Unit: "mg"},
		{Nutrient: "zinc", Amount: d.Zinc, Unit: "mg"},
		{Nutrient: "omega3", Amount: d.Omega3, Unit: "g"},
	}
}
