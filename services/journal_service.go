package services

import (
	"context"
	"time"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type JournalService struct {
	db *gorm.DB
}

func NewJournalService(db *gorm.DB) *JournalService {
	return &JournalService{db: db}
}

// MealRequest mirrors what the mobile client sends for one meal. Macro
// fields arrive as either strings or numbers; FlexFloat normalizes them.
type MealRequest struct {
	Description string           `json:"description"`
	MealType    string           `json:"meal_type"`
	Calories    models.FlexFloat `json:"calories"`
	Protein     models.FlexFloat `json:"protein"`
	Carbs       models.FlexFloat `json:"carbs"`
	Fiber       models.FlexFloat `json:"fiber"`
	Fat         models.FlexFloat `json:"fat"`
}

// EntryRequest is one day's log. EntryDate is parsed leniently: an
// unparsable date gets the distant-past sentinel and simply never shows up
// in any date-range analysis.
type EntryRequest struct {
	EntryDate    string        `json:"entry_date"`
	Meals        []MealRequest `json:"meals"`
	BloodPresent bool          `json:"blood_present"`
	MucusPresent bool          `json:"mucus_present"`
	PainSeverity int           `json:"pain_severity"`
	UrgencyLevel int           `json:"urgency_level"`
	StressLevel  int           `json:"stress_level"`
	FatigueLevel int           `json:"fatigue_level"`
	SleepQuality int           `json:"sleep_quality"`
	Notes        string        `json:"notes"`
}

// UpsertEntry creates or replaces the user's entry for the request's
// calendar date. One entry per user per date.
func (s *JournalService) UpsertEntry(ctx context.Context, userID uint, req EntryRequest) (*models.JournalEntry, error) {
	date := utils.DayStart(utils.ParseEntryDate(req.EntryDate))

	entry := models.JournalEntry{
		UserID:       userID,
		EntryDate:    date,
		BloodPresent: req.BloodPresent,
		MucusPresent: req.MucusPresent,
		PainSeverity: req.PainSeverity,
		UrgencyLevel: req.UrgencyLevel,
		StressLevel:  req.StressLevel,
		FatigueLevel: req.FatigueLevel,
		SleepQuality: req.SleepQuality,
		Notes:        req.Notes,
	}

	var existing models.JournalEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND entry_date = ?", userID, date).
		First(&existing).Error
	switch {
	case err == nil:
		entry.ID = existing.ID
		entry.CreatedAt = existing.CreatedAt
		// replace the day's meals wholesale
		if err := s.db.WithContext(ctx).
			Where("journal_entry_id = ?", existing.ID).
			Delete(&models.MealEntry{}).Error; err != nil {
			return nil, err
		}
		if err := s.db.WithContext(ctx).Save(&entry).Error; err != nil {
			return nil, err
		}
	case err == gorm.ErrRecordNotFound:
		if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	for _, m := range req.Meals {
		meal := models.MealEntry{
			JournalEntryID: entry.ID,
			Description:    m.Description,
			MealType:       m.MealType,
			Calories:       m.Calories,
			Protein:        m.Protein,
			Carbs:          m.Carbs,
			Fiber:          m.Fiber,
			Fat:            m.Fat,
		}
		if err := s.db.WithContext(ctx).Create(&meal).Error; err != nil {
			return nil, err
		}
	}

	var populated models.JournalEntry
	if err := s.db.WithContext(ctx).Preload("Meals").First(&populated, entry.ID).Error; err != nil {
		return nil, err
	}
	return &populated, nil
}

func (s *JournalService) ListEntries(ctx context.Context, userID uint, from, to time.Time) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	err := s.db.WithContext(ctx).
		Preload("Meals").
		Where("user_id = ? AND entry_date >= ? AND entry_date <= ?", userID, utils.DayStart(from), utils.DayEnd(to)).
		Order("entry_date DESC").
		Find(&entries).Error
	return entries, err
}

func (s *JournalService) GetEntryByDate(ctx context.Context, userID uint, date time.Time) (*models.JournalEntry, error) {
	var entry models.JournalEntry
	err := s.db.WithContext(ctx).
		Preload("Meals").
		Where("user_id = ? AND entry_date = ?", userID, utils.DayStart(date)).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *JournalService) DeleteEntry(ctx context.Context, userID uint, date time.Time) error {
	var entry models.JournalEntry
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND entry_date = ?", userID, utils.DayStart(date)).
		First(&entry).Error; err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).
		Where("journal_entry_id = ?", entry.ID).
		Delete(&models.MealEntry{}).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&entry).Error
}
