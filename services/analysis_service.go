package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"backend/logger"
	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

// NutrientTrend is one row of the weekly trend view: daily-average intake
// against the daily requirement.
type NutrientTrend struct {
	Nutrient    string         `json:"nutrient"`
	Actual      float64        `json:"actual"`
	Recommended float64        `json:"recommended"`
	Unit        string         `json:"unit"`
	Percentage  float64        `json:"percentage"`
	Status      NutrientStatus `json:"status"`
}

// NutritionAnalysis is the macro-level report consumed by the UI layer.
type NutritionAnalysis struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fiber    int `json:"fiber"`
	Fat      int `json:"fat"`

	AvgCalories float64 `json:"avg_calories"`
	AvgProtein  float64 `json:"avg_protein"`
	AvgCarbs    float64 `json:"avg_carbs"`
	AvgFiber    float64 `json:"avg_fiber"`
	AvgFat      float64 `json:"avg_fat"`

	Deficiencies    []Deficiency    `json:"deficiencies"`
	Recommendations []string        `json:"recommendations"`
	OverallScore    int             `json:"overallScore"`
	WeeklyTrends    []NutrientTrend `json:"weeklyTrends"`
	DaysLogged      int             `json:"days_logged"`
}

// DailyMicronutrientIntake bundles intake, requirements, and the per-food
// contributions used for display/audit.
type DailyMicronutrientIntake struct {
	TotalIntake  Nutrients            `json:"total_intake"`
	Requirements DailyRequirements    `json:"requirements"`
	FoodSources  map[string]Nutrients `json:"food_sources"`
}

// AnalysisService orchestrates the engine over journal entries. The Build*
// methods are pure over their inputs; the *ForUser methods fetch rows first
// and are the only ones that touch the database.
type AnalysisService struct {
	db       *gorm.DB
	agg      *NutritionAggregator
	reqs     *RequirementCalculator
	analyzer *DeficiencyAnalyzer
	flare    *FlareRiskScorer
	scorer   *NutritionScoreCalculator
}

func NewAnalysisService(db *gorm.DB, catalog *FoodCatalog) *AnalysisService {
	return &AnalysisService{
		db:       db,
		agg:      NewNutritionAggregator(catalog),
		reqs:     NewRequirementCalculator(),
		analyzer: NewDeficiencyAnalyzer(),
		flare:    NewFlareRiskScorer(),
		scorer:   NewNutritionScoreCalculator(),
	}
}

// ---------- Pure engine entry points ----------

// BuildNutritionAnalysis aggregates the window, classifies daily averages
// against the profile's daily requirements, and composes the overall score.
func (s *AnalysisService) BuildNutritionAnalysis(
	entries []models.JournalEntry, profile *models.MicronutrientProfile, from, to time.Time,
) *NutritionAnalysis {
	totals := s.agg.WindowTotals(entries, from, to)
	averages := s.agg.DailyAverages(totals)
	daily := s.reqs.DailyRequirements(profile)

	deficiencies, excesses, levels := s.analyzer.Analyze(averages, daily)

	out := &NutritionAnalysis{
		Calories: int(math.Round(totals.Totals.Calories)),
		Protein:  int(math.Round(totals.Totals.Protein)),
		Carbs:    int(math.Round(totals.Totals.Carbs)),
		Fiber:    int(math.Round(totals.Totals.Fiber)),
		Fat:      int(math.Round(totals.Totals.Fat)),

		AvgCalories: utils.Round2(averages.Calories),
		AvgProtein:  utils.Round2(averages.Protein),
		AvgCarbs:    utils.Round2(averages.Carbs),
		AvgFiber:    utils.Round2(averages.Fiber),
		AvgFat:      utils.Round2(averages.Fat),

		Deficiencies: deficiencies,
		OverallScore: s.scorer.Score(deficiencies, averages),
		DaysLogged:   totals.DaysLogged,
	}

	for _, lvl := range levels {
		out.WeeklyTrends = append(out.WeeklyTrends, NutrientTrend{
			Nutrient:    lvl.Nutrient,
			Actual:      lvl.Current,
			Recommended: lvl.Required,
			Unit:        lvl.Unit,
			Percentage:  lvl.Percentage,
			Status:      lvl.Status,
		})
	}

	for _, action := range ImmediateActions(deficiencies) {
		out.Recommendations = append(out.Recommendations,
			fmt.Sprintf("%s: %s (%s)", action.Nutrient, action.Action, action.Timeframe))
	}
	for _, ex := range excesses {
		out.Recommendations = append(out.Recommendations,
			fmt.Sprintf("%s intake is %s at %.0f%% of target; consider scaling back", ex.Nutrient, ex.Severity, ex.Percentage))
	}

	return out
}

// BuildMicronutrientAnalysis produces the IBD-specific report plus the
// intake bundle behind it.
func (s *AnalysisService) BuildMicronutrientAnalysis(
	entries []models.JournalEntry, profile *models.MicronutrientProfile, from, to time.Time,
) (*IBDMicronutrientAnalysis, DailyMicronutrientIntake) {
	totals := s.agg.WindowTotals(entries, from, to)
	averages := s.agg.DailyAverages(totals)
	daily := s.reqs.DailyRequirements(profile)

	var labs []models.LabResult
	if profile != nil {
		labs = profile.LabResults
	}

	analysis := s.analyzer.AnalyzeMicronutrients(averages, daily, labs)
	intake := DailyMicronutrientIntake{
		TotalIntake:  averages,
		Requirements: daily,
		FoodSources:  totals.FoodSources,
	}
	return analysis, intake
}

// FlareRisk scores the symptom history given (callers pass up to 7 days).
func (s *AnalysisService) FlareRisk(entries []models.JournalEntry) FlareRiskScore {
	return s.flare.Score(entries)
}

// ---------- DB-facing wrappers ----------

func (s *AnalysisService) profileForUser(ctx context.Context, userID uint) *models.MicronutrientProfile {
	var p models.MicronutrientProfile
	err := s.db.WithContext(ctx).
		Preload("LabResults").
		Preload("Supplements").
		Where("user_id = ?", userID).
		First(&p).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("profile fetch failed, using default", "user_id", userID, "err", err)
		}
		def := models.DefaultProfile(userID)
		return &def
	}
	return &p
}

func (s *AnalysisService) entriesInRange(ctx context.Context, userID uint, from, to time.Time) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	err := s.db.WithContext(ctx).
		Preload("Meals").
		Where("user_id = ? AND entry_date >= ? AND entry_date <= ?", userID, utils.DayStart(from), utils.DayEnd(to)).
		Order("entry_date ASC").
		Find(&entries).Error
	return entries, err
}

func (s *AnalysisService) NutritionAnalysisForUser(ctx context.Context, userID uint, from, to time.Time) (*NutritionAnalysis, error) {
	entries, err := s.entriesInRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	profile := s.profileForUser(ctx, userID)
	return s.BuildNutritionAnalysis(entries, profile, from, to), nil
}

func (s *AnalysisService) MicronutrientAnalysisForUser(ctx context.Context, userID uint, from, to time.Time) (*IBDMicronutrientAnalysis, error) {
	entries, err := s.entriesInRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	profile := s.profileForUser(ctx, userID)
	analysis, _ := s.BuildMicronutrientAnalysis(entries, profile, from, to)
	return analysis, nil
}

// FlareRiskForUser scores the last seven calendar days and emits a realtime
// alert when the risk lands High.
func (s *AnalysisService) FlareRiskForUser(ctx context.Context, userID uint) (FlareRiskScore, error) {
	to := time.Now()
	from := to.AddDate(0, 0, -6)
	entries, err := s.entriesInRange(ctx, userID, from, to)
	if err != nil {
		return FlareRiskScore{Level: FlareLevelLow}, err
	}
	risk := s.flare.Score(entries)
	if risk.Level == FlareLevelHigh {
		EmitAlert(userID, "flare_risk_high",
			fmt.Sprintf("Flare risk is high (%d/100) based on your last %d symptom logs. Consider contacting your care team.", risk.Score, len(entries)))
	}
	return risk, nil
}
