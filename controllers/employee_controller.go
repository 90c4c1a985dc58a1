package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"restaurant-backend/models"
	"restaurant-backend/services"

	"github.com/gin-gonic/gin"
)

type EmployeeController struct {
	employeeService *services.EmployeeService
}

func NewEmployeeController(employeeService *services.EmployeeService) *EmployeeController {
	return &EmployeeController{employeeService: employeeService}
}

// @Summary Get all employees
// @Tags Employees
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /employees/ [get]
func (ctrl *EmployeeController) GetAllEmployees(c *gin.Context) {
	employees, err := ctrl.employeeService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to retrieve employees",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Employees retrieved successfully",
		Data:    employees,
	})
}

// @Summary Get employee by ID
// @Tags Employees
// @Security BearerAuth
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /employees/{id} [get]
func (ctrl *EmployeeController) GetEmployeeByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid employee ID",
		})
		return
	}

	employee, err := ctrl.employeeService.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Employee not found",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Employee retrieved successfully",
		Data:    employee,
	})
}

// @Summary Create employee
// @Tags Employees
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param employee body models.CreateEmployeeRequest true "Employee data"
// @Success 201 {object} models.Response
// @Router /employees/ [post]
func (ctrl *EmployeeController) CreateEmployee(c *gin.Context) {
	var req models.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	employee, err := ctrl.employeeService.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to create employee",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Employee created successfully",
		Data:    employee,
	})
}

// @Summary Update employee
// @Tags Employees
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Employee ID"
// @Param employee body models.UpdateEmployeeRequest true "Fields to update"
// @Success 200 {object} models.Response
// @Router /employees/{id} [put]
func (ctrl *EmployeeController) UpdateEmployee(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid employee ID",
		})
		return
	}

	var req models.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	employee, err := ctrl.employeeService.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Success: false,
				Message: "Employee not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to update employee",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Employee updated successfully",
		Data:    employee,
	})
}

// @Summary Delete employee
// @Description Delete an employee; refused while orders reference them
// @Tags Employees
// @Security BearerAuth
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /employees/{id} [delete]
func (ctrl *EmployeeController) DeleteEmployee(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid employee ID",
		})
		return
	}

	if err := ctrl.employeeService.Delete(c.Request.Context(), id); err != nil {
		var validationErr models.ValidationError
		switch {
		case errors.Is(err, models.ErrNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Success: false,
				Message: "Employee not found",
			})
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Success: false,
				Message: validationErr.Message,
			})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Success: false,
				Message: "Failed to delete employee",
				Error:   err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Employee deleted successfully",
	})
}
