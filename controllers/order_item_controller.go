package controllers

import (
	"net/http"
	"strconv"

	"restaurant-backend/models"
	"restaurant-backend/services"

	"github.com/gin-gonic/gin"
)

type OrderItemController struct {
	itemService *services.OrderItemService
}

func NewOrderItemController(itemService *services.OrderItemService) *OrderItemController {
	return &OrderItemController{itemService: itemService}
}

// @Summary Create order item
// @Description Add a line to an existing order
// @Tags Order Items
// @Accept json
// @Produce json
// @Param item body models.CreateOrderItemRequest true "Order item data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /order_items/ [post]
func (ctrl *OrderItemController) CreateOrderItem(c *gin.Context) {
	var req models.CreateOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := ctrl.itemService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":       "Order item created successfully",
		"order_item_id": item.ID,
	})
}

// @Summary Get order item
// @Tags Order Items
// @Produce json
// @Param id path int true "Order item ID"
// @Success 200 {object} models.OrderItem
// @Failure 404 {object} map[string]string
// @Router /order_items/{id} [get]
func (ctrl *OrderItemController) GetOrderItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order item id"})
		return
	}

	item, err := ctrl.itemService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order item not found"})
		return
	}

	c.JSON(http.StatusOK, item)
}

// @Summary Get order items by order
// @Tags Order Items
// @Produce json
// @Param order_id path int true "Order ID"
// @Success 200 {array} models.OrderItem
// @Router /order_items/order/{order_id} [get]
func (ctrl *OrderItemController) GetOrderItemsByOrder(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	items, err := ctrl.itemService.ListByOrder(c.Request.Context(), orderID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// @Summary Update order item
// @Description Update a line; the parent order total is recomputed
// @Tags Order Items
// @Accept json
// @Produce json
// @Param id path int true "Order item ID"
// @Param item body models.UpdateOrderItemRequest true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /order_items/{id} [put]
func (ctrl *OrderItemController) UpdateOrderItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order item id"})
		return
	}

	var req models.UpdateOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := ctrl.itemService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Order item updated successfully",
		"order_item_id": item.ID,
	})
}

// @Summary Delete order item
// @Description Delete a line; the parent order total is recomputed
// @Tags Order Items
// @Produce json
// @Param id path int true "Order item ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /order_items/{id} [delete]
func (ctrl *OrderItemController) DeleteOrderItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order item id"})
		return
	}

	if err := ctrl.itemService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order item deleted successfully"})
}
