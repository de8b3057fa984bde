package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pantrychef/backend/internal/model"
	"github.com/pantrychef/backend/internal/service"
)

// ShoppingHandler serves the shopping list endpoints.
type ShoppingHandler struct {
	kitchen *service.KitchenService
}

func NewShoppingHandler(kitchen *service.KitchenService) *ShoppingHandler {
	return &ShoppingHandler{kitchen: kitchen}
}

func (h *ShoppingHandler) RegisterRoutes(router *gin.RouterGroup) {
	list := router.Group("/shopping-list")
	{
		list.GET("", h.GetList)
		list.POST("/items", h.AddItem)
		list.DELETE("/items/:id", h.RemoveItem)
		list.DELETE("", h.ClearList)
	}
}

func (h *ShoppingHandler) GetList(c *gin.Context) {
	items := h.kitchen.ShoppingList()

	groups := make(map[string][]model.ListItem)
	for _, item := range items {
		groups[item.SourceRecipe] = append(groups[item.SourceRecipe], item)
	}

	c.JSON(http.StatusOK, ShoppingListResponse{Items: items, Groups: groups})
}

func (h *ShoppingHandler) AddItem(c *gin.Context) {
	var item model.ListItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if item.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Item name is required"})
		return
	}

	created, err := h.kitchen.AddListItem(c.Request.Context(), item)
	if errors.Is(err, service.ErrDuplicateListItem) {
		c.JSON(http.StatusConflict, gin.H{"error": "Item is already on the shopping list"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"item": created})
}

func (h *ShoppingHandler) RemoveItem(c *gin.Context) {
	err := h.kitchen.RemoveListItem(c.Request.Context(), c.Param("id"))
	if errors.Is(err, service.ErrListItemNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ShoppingHandler) ClearList(c *gin.Context) {
	h.kitchen.ClearList(c.Request.Context())
	c.Status(http.StatusNoContent)
}
