package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// DiseaseActivity is the clinician-style IBD activity grading used to adjust
// nutrient requirements.
type DiseaseActivity string

const (
	ActivityRemission DiseaseActivity = "remission"
	ActivityMild      DiseaseActivity = "mild"
	ActivityModerate  DiseaseActivity = "moderate"
	ActivitySevere    DiseaseActivity = "severe"
)

// ParseDiseaseActivity normalizes free-form input; anything unrecognized maps
// to remission rather than failing.
func ParseDiseaseActivity(s string) DiseaseActivity {
	switch DiseaseActivity(strings.ToLower(strings.TrimSpace(s))) {
	case ActivityMild:
		return ActivityMild
	case ActivityModerate:
		return ActivityModerate
	case ActivitySevere:
		return ActivitySevere
	default:
		return ActivityRemission
	}
}

// MicronutrientProfile carries the health attributes the requirement
// calculator personalizes against.
type MicronutrientProfile struct {
	gorm.Model
	UserID          uint            `gorm:"uniqueIndex;not null" json:"user_id"`
	Age             int             `json:"age"`
	WeightKg        float64         `json:"weight"`
	HeightCm        float64         `json:"height"`
	Gender          string          `json:"gender"`
	DiseaseActivity DiseaseActivity `json:"disease_activity"`
	LabResults      []LabResult     `json:"lab_results"`
	Supplements     []Supplement    `json:"supplements"`
}

type LabResult struct {
	gorm.Model
	MicronutrientProfileID uint      `gorm:"index" json:"-"`
	Nutrient               string    `json:"nutrient"`
	Value                  float64   `json:"value"`
	Unit                   string    `json:"unit"`
	TakenAt                time.Time `json:"taken_at"`
}

type Supplement struct {
	gorm.Model
	MicronutrientProfileID uint    `gorm:"index" json:"-"`
	Name                   string  `json:"name"`
	Dose                   float64 `json:"dose"`
	Unit                   string  `json:"unit"`
}

// DefaultProfile is used whenever no profile has been stored for a user.
// Downstream targets change materially with these values, so they are fixed
// here rather than scattered: 30y, 70kg, 170cm, unknown gender, remission.
func DefaultProfile(userID uint) MicronutrientProfile {
	return MicronutrientProfile{
		UserID:          userID,
		Age:             30,
		WeightKg:        70,
		HeightCm:        170,
		Gender:          "Unknown",
		DiseaseActivity: ActivityRemission,
	}
}
