package controllers

import (
	"net/http"
	"strconv"

	"restaurant-backend/models"
	"restaurant-backend/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	menuService *services.MenuService
}

func NewMenuController(menuService *services.MenuService) *MenuController {
	return &MenuController{menuService: menuService}
}

// @Summary Get menu
// @Description Get all menu items
// @Tags Menu
// @Produce json
// @Success 200 {array} models.MenuItem
// @Failure 500 {object} map[string]string
// @Router /menu/ [get]
func (ctrl *MenuController) GetAllMenuItems(c *gin.Context) {
	items, err := ctrl.menuService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// @Summary Get menu item
// @Tags Menu
// @Produce json
// @Param id path int true "Menu item ID"
// @Success 200 {object} models.MenuItem
// @Failure 404 {object} map[string]string
// @Router /menu/{id} [get]
func (ctrl *MenuController) GetMenuItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid menu item id"})
		return
	}

	item, err := ctrl.menuService.Get(c.Request.Context(), id)
	if err != nil {
		if err == models.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Menu item not found"})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// @Summary Add menu item
// @Tags Menu
// @Accept json
// @Produce json
// @Param item body models.CreateMenuItemRequest true "Menu item data"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /menu/ [post]
func (ctrl *MenuController) AddMenuItem(c *gin.Context) {
	var req models.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := ctrl.menuService.Create(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added successfully"})
}

// @Summary Update menu item
// @Tags Menu
// @Accept json
// @Produce json
// @Param id path int true "Menu item ID"
// @Param item body models.UpdateMenuItemRequest true "Fields to update"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /menu/{id} [put]
func (ctrl *MenuController) UpdateMenuItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid menu item id"})
		return
	}

	var req models.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := ctrl.menuService.Update(c.Request.Context(), id, req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated successfully"})
}

// @Summary Delete menu item
// @Tags Menu
// @Produce json
// @Param id path int true "Menu item ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /menu/{id} [delete]
func (ctrl *MenuController) DeleteMenuItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid menu item id"})
		return
	}

	if err := ctrl.menuService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted successfully"})
}
