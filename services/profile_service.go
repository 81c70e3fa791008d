package services

import (
	"context"
	"errors"

	"backend/models"

	"gorm.io/gorm"
)

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// Get returns the stored profile, or the documented default when none
// exists. The bool reports whether a stored profile was found.
func (s *ProfileService) Get(ctx context.Context, userID uint) (*models.MicronutrientProfile, bool, error) {
	var p models.MicronutrientProfile
	err := s.db.WithContext(ctx).
		Preload("LabResults").
		Preload("Supplements").
		Where("user_id = ?", userID).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			def := models.DefaultProfile(userID)
			return &def, false, nil
		}
		return nil, false, err
	}
	return &p, true, nil
}

type ProfileRequest struct {
	Age             int     `json:"age"`
	WeightKg        float64 `json:"weight"`
	HeightCm        float64 `json:"height"`
	Gender          string  `json:"gender"`
	DiseaseActivity string  `json:"disease_activity"`
}

// Upsert stores or updates the user's profile.
func (s *ProfileService) Upsert(ctx context.Context, userID uint, req ProfileRequest) (*models.MicronutrientProfile, error) {
	var p models.MicronutrientProfile
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	p.UserID = userID
	p.Age = req.Age
	p.WeightKg = req.WeightKg
	p.HeightCm = req.HeightCm
	p.Gender = req.Gender
	p.DiseaseActivity = models.ParseDiseaseActivity(req.DiseaseActivity)

	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
			return nil, err
		}
		return &p, nil
	}
	if err := s.db.WithContext(ctx).Save(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
