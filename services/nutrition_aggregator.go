package services

import (
	"time"

	"backend/models"
	"backend/utils"
)

// DayNutrition is one journal entry's summed nutrition with a per-meal-type
// breakdown.
type DayNutrition struct {
	Date       time.Time            `json:"date"`
	Totals     Nutrients            `json:"totals"`
	ByMealType map[string]Nutrients `json:"by_meal_type"`
}

// WeeklyNutritionTotals sums per-day vectors across a date window. Averages
// divide by the number of logged entries, never the window length, so days
// without an entry neither look like zero intake nor inflate the denominator.
type WeeklyNutritionTotals struct {
	From        time.Time            `json:"from"`
	To          time.Time            `json:"to"`
	Totals      Nutrients            `json:"totals"`
	DaysLogged  int                  `json:"days_logged"`
	FoodSources map[string]Nutrients `json:"food_sources"` // food name → contribution, for display/audit
}

// NutritionAggregator derives and sums nutrient vectors per meal, per day,
// and per window. Pure and synchronous; safe for concurrent use.
type NutritionAggregator struct {
	matcher *FoodMatcher
	scaler  *PortionScaler
}

func NewNutritionAggregator(catalog *FoodCatalog) *NutritionAggregator {
	return &NutritionAggregator{
		matcher: NewFoodMatcher(catalog),
		scaler:  NewPortionScaler(catalog),
	}
}

// MealNutrients prefers the meal's stored macros when any is non-zero;
// otherwise it derives a vector from the description via match + scale.
func (a *NutritionAggregator) MealNutrients(meal models.MealEntry) Nutrients {
	if meal.HasStoredMacros() {
		return Nutrients{
			Calories: float64(meal.Calories),
			Protein:  float64(meal.Protein),
			Carbs:    float64(meal.Carbs),
			Fiber:    float64(meal.Fiber),
			Fat:      float64(meal.Fat),
		}.Sanitized()
	}
	total, _ := a.deriveFromDescription(meal.Description)
	return total
}

// MealFoodSources reports each matched food's scaled contribution for a
// derived meal. Meals with stored macros have no per-food breakdown.
func (a *NutritionAggregator) MealFoodSources(meal models.MealEntry) map[string]Nutrients {
	if meal.HasStoredMacros() {
		return nil
	}
	_, sources := a.deriveFromDescription(meal.Description)
	return sources
}

func (a *NutritionAggregator) deriveFromDescription(description string) (Nutrients, map[string]Nutrients) {
	var total Nutrients
	sources := make(map[string]Nutrients)
	for _, name := range a.matcher.Match(description) {
		vec, ok := a.scaler.ScaledNutrients(name)
		if !ok {
			continue
		}
		sources[name] = sources[name].Add(vec)
		total = total.Add(vec)
	}
	return total.Sanitized(), sources
}

// DayNutrition sums all meals of an entry, keeping a breakdown by meal type.
func (a *NutritionAggregator) DayNutrition(entry models.JournalEntry) DayNutrition {
	day := DayNutrition{
		Date:       entry.EntryDate,
		ByMealType: make(map[string]Nutrients),
	}
	for _, meal := range entry.Meals {
		vec := a.MealNutrients(meal)
		day.Totals = day.Totals.Add(vec)
		day.ByMealType[meal.MealType] = day.ByMealType[meal.MealType].Add(vec)
	}
	day.Totals = day.Totals.Sanitized()
	return day
}

// WindowTotals sums day vectors for entries whose calendar date falls in
// [from, to]. Membership is by date comparison, not insertion order. Zero
// entries yield a deterministic zero-valued result.
func (a *NutritionAggregator) WindowTotals(entries []models.JournalEntry, from, to time.Time) WeeklyNutritionTotals {
	out := WeeklyNutritionTotals{
		From:        utils.DayStart(from),
		To:          utils.DayStart(to),
		FoodSources: make(map[string]Nutrients),
	}
	for _, entry := range entries {
		d := utils.DayStart(entry.EntryDate)
		if d.Before(out.From) || d.After(out.To) {
			continue
		}
		day := a.DayNutrition(entry)
		out.Totals = out.Totals.Add(day.Totals)
		out.DaysLogged++

		for _, meal := range entry.Meals {
			for name, vec := range a.MealFoodSources(meal) {
				out.FoodSources[name] = out.FoodSources[name].Add(vec)
			}
		}
	}
	out.Totals = out.Totals.Sanitized()
	return out
}

// DailyAverages divides window totals by max(1, days logged). A week with a
// single logged entry averages to exactly that entry's totals.
func (a *NutritionAggregator) DailyAverages(totals WeeklyNutritionTotals) Nutrients {
	den := totals.DaysLogged
	if den < 1 {
		den = 1
	}
	return totals.Totals.Scale(1 / float64(den)).Sanitized()
}
