package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type AnalysisController struct {
	Svc *services.AnalysisService
}

func NewAnalysisController(svc *services.AnalysisService) *AnalysisController {
	return &AnalysisController{Svc: svc}
}

// GetNutritionAnalysis reports window totals, daily averages, deficiencies,
// recommendations, and the overall score. Defaults to the last 7 days.
func (h *AnalysisController) GetNutritionAnalysis(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	from, to, err := rangeFromQuery(c, 7)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date range"})
		return
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "`to` must be on/after `from`"})
		return
	}

	out, err := h.Svc.NutritionAnalysisForUser(c.Request.Context(), userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetMicronutrientAnalysis reports the IBD-specific micronutrient view.
func (h *AnalysisController) GetMicronutrientAnalysis(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	from, to, err := rangeFromQuery(c, 7)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date range"})
		return
	}

	out, err := h.Svc.MicronutrientAnalysisForUser(c.Request.Context(), userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetFlareRisk scores the last 7 days of symptom logs.
func (h *AnalysisController) GetFlareRisk(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	risk, err := h.Svc.FlareRiskForUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, risk)
}

// GetWeeklyTrends returns just the trend rows of the nutrition analysis, for
// the chart view.
func (h *AnalysisController) GetWeeklyTrends(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	from, to, err := rangeFromQuery(c, 7)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date range"})
		return
	}

	out, err := h.Svc.NutritionAnalysisForUser(c.Request.Context(), userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"weeklyTrends": out.WeeklyTrends,
		"days_logged":  out.DaysLogged,
	})
}
