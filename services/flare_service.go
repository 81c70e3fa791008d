package services

import (
	"backend/models"
	"backend/utils"
)

// FlareRiskScore is a heuristic 0–100 estimate of short-term flare
// likelihood, derived from the last week of symptom logs. Independent of
// nutrition.
type FlareRiskScore struct {
	Score int    `json:"score"`
	Level string `json:"level"` // Low|Medium|High
}

const (
	FlareLevelLow    = "Low"
	FlareLevelMedium = "Medium"
	FlareLevelHigh   = "High"
)

// FlareRiskScorer accumulates symptom points per entry and averages across
// the entries examined. Stateless; safe for concurrent use.
type FlareRiskScorer struct{}

func NewFlareRiskScorer() *FlareRiskScorer {
	return &FlareRiskScorer{}
}

// entryPoints accumulates the per-entry symptom score. Contributions are
// additive, not mutually exclusive.
func entryPoints(e models.JournalEntry) float64 {
	var pts float64

	if e.BloodPresent {
		pts += 40
	}
	if e.MucusPresent {
		pts += 20
	}

	switch {
	case e.PainSeverity >= 4:
		pts += 30
	case e.PainSeverity >= 3:
		pts += 15
	}

	switch {
	case e.UrgencyLevel >= 4:
		pts += 25
	case e.UrgencyLevel >= 3:
		pts += 10
	}

	switch {
	case e.StressLevel >= 4:
		pts += 20
	case e.StressLevel >= 3:
		pts += 10
	}

	switch {
	case e.FatigueLevel >= 4:
		pts += 15
	case e.FatigueLevel >= 3:
		pts += 5
	}

	// Sleep quality scores in reverse: lower is worse. Zero means "not
	// logged" and contributes nothing.
	switch {
	case e.SleepQuality > 0 && e.SleepQuality <= 2:
		pts += 15
	case e.SleepQuality == 3:
		pts += 5
	}

	return pts
}

// Score averages per-entry totals across the entries given (the caller
// supplies up to the last 7 days), capped at 100. Empty input yields 0/Low.
func (f *FlareRiskScorer) Score(entries []models.JournalEntry) FlareRiskScore {
	if len(entries) == 0 {
		return FlareRiskScore{Score: 0, Level: FlareLevelLow}
	}

	var total float64
	for _, e := range entries {
		total += entryPoints(e)
	}
	avg := utils.SanitizeFloat(total / float64(len(entries)))

	score := utils.ClampInt(int(avg+0.5), 0, 100)
	return FlareRiskScore{Score: score, Level: FlareLevel(score)}
}

// FlareLevel maps a score to its display band: ≥70 High, 40–69 Medium,
// below that Low.
func FlareLevel(score int) string {
	switch {
	case score >= 70:
		return FlareLevelHigh
	case score >= 40:
		return FlareLevelMedium
	default:
		return FlareLevelLow
	}
}
