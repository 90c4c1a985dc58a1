package controllers

import (
	"context"
	"net/http"
	"strconv"

	"restaurant-backend/models"

	"github.com/gin-gonic/gin"
)

type OrderService interface {
	Create(ctx context.Context, req models.CreateOrderRequest) (int, error)
	List(ctx context.Context) ([]models.Order, error)
	Details(ctx context.Context, id int) (*models.Order, error)
	UpdateStatus(ctx context.Context, id int, status string) (*models.Order, error)
	Delete(ctx context.Context, id int) error
}

type OrderController struct {
	orderService OrderService
}

func NewOrderController(orderService OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// @Summary Create order
// @Description Create a new order with its items
// @Tags Orders
// @Accept json
// @Produce json
// @Param order body models.CreateOrderRequest true "Order data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /order/create [post]
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	orderID, err := ctrl.orderService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Order created successfully",
		"order_id": orderID,
	})
}

// @Summary Get all orders
// @Description Get all orders, newest first
// @Tags Orders
// @Produce json
// @Success 200 {array} models.Order
// @Failure 500 {object} map[string]string
// @Router /order/ [get]
func (ctrl *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := ctrl.orderService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// @Summary Update order status
// @Description Update the status of an order
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param status body models.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /order/{id} [put]
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := ctrl.orderService.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Order status updated",
		"order_id":   order.ID,
		"new_status": order.Status,
	})
}

// @Summary Get order details
// @Description Get an order with its items
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Order
// @Failure 404 {object} map[string]string
// @Router /order/{id} [get]
func (ctrl *OrderController) GetOrderDetails(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	order, err := ctrl.orderService.Details(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, order)
}

// @Summary Delete order
// @Description Delete an order and all of its items
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /order/{id} [delete]
func (ctrl *OrderController) DeleteOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	if err := ctrl.orderService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}
