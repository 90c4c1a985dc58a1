package controllers

import (
	"net/http"
	"strconv"

	"restaurant-backend/models"
	"restaurant-backend/services"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	paymentService *services.PaymentService
}

func NewPaymentController(paymentService *services.PaymentService) *PaymentController {
	return &PaymentController{paymentService: paymentService}
}

// @Summary Create payment
// @Tags Payments
// @Accept json
// @Produce json
// @Param payment body models.CreatePaymentRequest true "Payment data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /payments/ [post]
func (ctrl *PaymentController) CreatePayment(c *gin.Context) {
	var req models.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment, err := ctrl.paymentService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Payment created successfully",
		"payment_id": payment.ID,
	})
}

// @Summary Get payment
// @Tags Payments
// @Produce json
// @Param id path int true "Payment ID"
// @Success 200 {object} models.Payment
// @Failure 404 {object} map[string]string
// @Router /payments/{id} [get]
func (ctrl *PaymentController) GetPayment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment id"})
		return
	}

	payment, err := ctrl.paymentService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if payment == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	}

	c.JSON(http.StatusOK, payment)
}

// @Summary Get payments by order
// @Tags Payments
// @Produce json
// @Param order_id path int true "Order ID"
// @Success 200 {array} models.Payment
// @Router /payments/order/{order_id} [get]
func (ctrl *PaymentController) GetPaymentsByOrder(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	payments, err := ctrl.paymentService.ListByOrder(c.Request.Context(), orderID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, payments)
}

// @Summary Update payment
// @Tags Payments
// @Accept json
// @Produce json
// @Param id path int true "Payment ID"
// @Param payment body models.UpdatePaymentRequest true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /payments/{id} [put]
func (ctrl *PaymentController) UpdatePayment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment id"})
		return
	}

	var req models.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment, err := ctrl.paymentService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Payment updated successfully",
		"payment_id": payment.ID,
	})
}

// @Summary Delete payment
// @Tags Payments
// @Produce json
// @Param id path int true "Payment ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /payments/{id} [delete]
func (ctrl *PaymentController) DeletePayment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment id"})
		return
	}

	if err := ctrl.paymentService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment deleted successfully"})
}
