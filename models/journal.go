package models

import (
	"time"

	"gorm.io/gorm"
)

// JournalEntry is one user's log for one calendar date: zero-or-more meals
// plus the day's symptom observations. The analysis engine treats it as
// read-only input.
type JournalEntry struct {
	gorm.Model
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	EntryDate time.Time `gorm:"index;not null" json:"entry_date"`
	Meals     []MealEntry `json:"meals"`

	// Symptom log (absent fields default to zero/false)
	BloodPresent bool `json:"blood_present"`
	MucusPresent bool `json:"mucus_present"`
	PainSeverity int  `json:"pain_severity"` // 0-5
	UrgencyLevel int  `json:"urgency_level"` // 0-5
	StressLevel  int  `json:"stress_level"`  // 0-5
	FatigueLevel int  `json:"fatigue_level"` // 0-5
	SleepQuality int  `json:"sleep_quality"` // 0-5, higher is better

	Notes string `json:"notes,omitempty"`
}

// MealEntry belongs to a JournalEntry. When the stored macro fields are all
// zero the engine derives nutrition from Description via the food matcher.
type MealEntry struct {
	gorm.Model
	JournalEntryID uint   `gorm:"index;not null" json:"journal_entry_id"`
	Description    string `json:"description"`
	MealType       string `json:"meal_type"` // breakfast|lunch|dinner|snack

	// Pre-stored macros; FlexFloat because clients send these as either
	// strings or numbers.
	Calories FlexFloat `json:"calories"`
	Protein  FlexFloat `json:"protein"`
	Carbs    FlexFloat `json:"carbs"`
	Fiber    FlexFloat `json:"fiber"`
	Fat      FlexFloat `json:"fat"`
}

// HasStoredMacros reports whether any pre-stored macro is non-zero. All-zero
// (or absent) macros mean "derive from description".
func (m *MealEntry) HasStoredMacros() bool {
	return m.Calories != 0 || m.Protein != 0 || m.Carbs != 0 || m.Fiber != 0 || m.Fat != 0
}
