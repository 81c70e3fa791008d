package controllers

import (
	"net/http"
	"time"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type JournalController struct {
	Svc *services.JournalService
}

func NewJournalController(svc *services.JournalService) *JournalController {
	return &JournalController{Svc: svc}
}

func (h *JournalController) UpsertEntry(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req services.EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.Svc.UpsertEntry(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *JournalController) ListEntries(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	from, to, err := rangeFromQuery(c, 7)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entries, err := h.Svc.ListEntries(c.Request.Context(), userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *JournalController) GetEntry(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	date := utils.ParseEntryDate(c.Param("date"))
	if date.Equal(utils.DistantPast) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	entry, err := h.Svc.GetEntryByDate(c.Request.Context(), userID, date)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "no entry for date"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *JournalController) DeleteEntry(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	date := utils.ParseEntryDate(c.Param("date"))
	if date.Equal(utils.DistantPast) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	if err := h.Svc.DeleteEntry(c.Request.Context(), userID, date); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// rangeFromQuery reads from/to query params, defaulting to the last
// defaultDays days ending today.
func rangeFromQuery(c *gin.Context, defaultDays int) (time.Time, time.Time, error) {
	now := time.Now()
	from := now.AddDate(0, 0, -(defaultDays - 1))
	to := now

	if v := c.Query("from"); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, now.Location())
		if err != nil {
			return from, to, err
		}
		from = t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, now.Location())
		if err != nil {
			return from, to, err
		}
		to = t
	}
	return from, to, nil
}
