package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"restaurant-backend/models"
	"restaurant-backend/services"

	"github.com/gin-gonic/gin"
)

type SalesController struct {
	salesService *services.SalesService
}

func NewSalesController(salesService *services.SalesService) *SalesController {
	return &SalesController{salesService: salesService}
}

// @Summary Get all sales
// @Tags Sales
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /sales/ [get]
func (ctrl *SalesController) GetAllSales(c *gin.Context) {
	sales, err := ctrl.salesService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to retrieve sales",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Sales retrieved successfully",
		Data:    sales,
	})
}

// @Summary Get sale by ID
// @Tags Sales
// @Security BearerAuth
// @Produce json
// @Param id path int true "Sale ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /sales/{id} [get]
func (ctrl *SalesController) GetSaleByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid sale ID",
		})
		return
	}

	sale, err := ctrl.salesService.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to retrieve sale",
			Error:   err.Error(),
		})
		return
	}
	if sale == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Sale not found",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Sale retrieved successfully",
		Data:    sale,
	})
}

// @Summary Create sale
// @Tags Sales
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param sale body models.CreateSaleRequest true "Sale data"
// @Success 201 {object} models.Response
// @Router /sales/ [post]
func (ctrl *SalesController) CreateSale(c *gin.Context) {
	var req models.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	sale, err := ctrl.salesService.Create(c.Request.Context(), req)
	if err != nil {
		var validationErr models.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Success: false,
				Message: validationErr.Message,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to create sale",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Sale created successfully",
		Data:    sale,
	})
}

// @Summary Update sale
// @Tags Sales
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Sale ID"
// @Param sale body models.UpdateSaleRequest true "Fields to update"
// @Success 200 {object} models.Response
// @Router /sales/{id} [put]
func (ctrl *SalesController) UpdateSale(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid sale ID",
		})
		return
	}

	var req models.UpdateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	sale, err := ctrl.salesService.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Success: false,
				Message: "Sale not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to update sale",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Sale updated successfully",
		Data:    sale,
	})
}

// @Summary Delete sale
// @Tags Sales
// @Security BearerAuth
// @Produce json
// @Param id path int true "Sale ID"
// @Success 200 {object} models.Response
// @Router /sales/{id} [delete]
func (ctrl *SalesController) DeleteSale(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid sale ID",
		})
		return
	}

	if err := ctrl.salesService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Success: false,
				Message: "Sale not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to delete sale",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Sale deleted successfully",
	})
}
