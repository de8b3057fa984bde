package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pantrychef/backend/internal/service"
)

// RecipeHandler serves the catalog, matching, recommendation, and cooking
// endpoints.
type RecipeHandler struct {
	kitchen *service.KitchenService
	catalog service.RecipeCatalog
}

func NewRecipeHandler(kitchen *service.KitchenService, catalog service.RecipeCatalog) *RecipeHandler {
	return &RecipeHandler{kitchen: kitchen, catalog: catalog}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("/:id/cook", h.CookRecipe)
	}
	router.GET("/recommendations", h.GetRecommendations)
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	kitchen := h.kitchen.Kitchen()

	summaries := []RecipeSummary{}
	for _, recipe := range h.catalog.Recipes() {
		match := service.MatchRecipe(recipe, kitchen)
		summaries = append(summaries, RecipeSummary{
			Recipe:   recipe,
			Match:    match,
			Label:    match.Label(),
			Category: match.Category(),
		})
	}

	c.JSON(http.StatusOK, gin.H{"recipes": summaries})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipe, match, err := h.kitchen.Match(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	canCook, shortfalls := service.CanCookRecipe(recipe, h.kitchen.Kitchen())
	c.JSON(http.StatusOK, RecipeDetailResponse{
		RecipeSummary: RecipeSummary{
			Recipe:   recipe,
			Match:    match,
			Label:    match.Label(),
			Category: match.Category(),
		},
		CanCook:    canCook,
		Shortfalls: shortfalls,
	})
}

func (h *RecipeHandler) CookRecipe(c *gin.Context) {
	result, err := h.kitchen.Cook(c.Request.Context(), c.Param("id"))
	if err != nil {
		var notCookable *service.NotCookableError
		switch {
		case errors.Is(err, service.ErrRecipeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		case errors.As(err, &notCookable):
			c.JSON(http.StatusConflict, gin.H{
				"error":      "Recipe cannot be cooked with the current inventory",
				"shortfalls": notCookable.Shortfalls,
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cook recipe"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"kitchen":     newKitchenResponse(result.Kitchen, true),
		"added_items": result.AddedItems,
	})
}

func (h *RecipeHandler) GetRecommendations(c *gin.Context) {
	maxCount := service.DefaultMaxRecommendations
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		maxCount = parsed
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": h.kitchen.Recommendations(maxCount)})
}
