package controllers

import (
	"net/http"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	Svc  *services.ProfileService
	Reqs *services.RequirementCalculator
}

func NewProfileController(svc *services.ProfileService, reqs *services.RequirementCalculator) *ProfileController {
	return &ProfileController{Svc: svc, Reqs: reqs}
}

func (h *ProfileController) GetProfile(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	profile, stored, err := h.Svc.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{
		"profile":            profile,
		"stored":             stored,
		"daily_requirements": h.Reqs.DailyRequirements(profile),
	}
	if bmi, err := utils.CalculateBMI(profile.HeightCm, profile.WeightKg); err == nil {
		resp["bmi"] = bmi
		resp["bmi_category"] = utils.BMICategory(bmi)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileController) UpsertProfile(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req services.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.Svc.Upsert(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"profile":            profile,
		"daily_requirements": h.Reqs.DailyRequirements(profile),
	})
}
