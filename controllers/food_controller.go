package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Catalog *services.FoodCatalog
}

func NewFoodController(catalog *services.FoodCatalog) *FoodController {
	return &FoodController{Catalog: catalog}
}

func (h *FoodController) SearchFoods(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'q' required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"foods": h.Catalog.Search(q)})
}

func (h *FoodController) ListFoods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"foods": h.Catalog.Foods()})
}
