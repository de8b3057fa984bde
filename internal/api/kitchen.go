package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pantrychef/backend/internal/model"
	"github.com/pantrychef/backend/internal/service"
)

// KitchenHandler serves the inventory endpoints.
type KitchenHandler struct {
	kitchen *service.KitchenService
}

func NewKitchenHandler(kitchen *service.KitchenService) *KitchenHandler {
	return &KitchenHandler{kitchen: kitchen}
}

func (h *KitchenHandler) RegisterRoutes(router *gin.RouterGroup) {
	kitchen := router.Group("/kitchen")
	{
		kitchen.GET("", h.GetKitchen)
		kitchen.POST("/ingredients", h.AddIngredient)
		kitchen.PUT("/ingredients/:id", h.UpdateIngredient)
		kitchen.DELETE("/ingredients/:id", h.RemoveIngredient)
		kitchen.POST("/appliances", h.AddAppliance)
		kitchen.DELETE("/appliances/:id", h.RemoveAppliance)
		kitchen.POST("/undo", h.UndoLastCook)
	}
}

func (h *KitchenHandler) GetKitchen(c *gin.Context) {
	c.JSON(http.StatusOK, newKitchenResponse(h.kitchen.Kitchen(), h.kitchen.CanUndo()))
}

func (h *KitchenHandler) AddIngredient(c *gin.Context) {
	var ing model.Ingredient
	if err := c.ShouldBindJSON(&ing); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if ing.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ingredient name is required"})
		return
	}
	if ing.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ingredient quantity must be positive"})
		return
	}

	created, err := h.kitchen.AddIngredient(c.Request.Context(), ing)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add ingredient"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ingredient": newIngredientView(created)})
}

func (h *KitchenHandler) UpdateIngredient(c *gin.Context) {
	var ing model.Ingredient
	if err := c.ShouldBindJSON(&ing); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.kitchen.UpdateIngredient(c.Request.Context(), c.Param("id"), ing)
	if errors.Is(err, service.ErrIngredientNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ingredient not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update ingredient"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ingredient": newIngredientView(updated)})
}

func (h *KitchenHandler) RemoveIngredient(c *gin.Context) {
	err := h.kitchen.RemoveIngredient(c.Request.Context(), c.Param("id"))
	if errors.Is(err, service.ErrIngredientNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ingredient not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove ingredient"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *KitchenHandler) AddAppliance(c *gin.Context) {
	var app model.Appliance
	if err := c.ShouldBindJSON(&app); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if app.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Appliance name is required"})
		return
	}

	created, err := h.kitchen.AddAppliance(c.Request.Context(), app)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add appliance"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"appliance": created})
}

func (h *KitchenHandler) RemoveAppliance(c *gin.Context) {
	err := h.kitchen.RemoveAppliance(c.Request.Context(), c.Param("id"))
	if errors.Is(err, service.ErrApplianceNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appliance not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove appliance"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *KitchenHandler) UndoLastCook(c *gin.Context) {
	kitchen, err := h.kitchen.UndoLastCook(c.Request.Context())
	if errors.Is(err, service.ErrNothingToUndo) {
		c.JSON(http.StatusConflict, gin.H{"error": "Nothing to undo"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to undo"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"kitchen": newKitchenResponse(kitchen, false)})
}
