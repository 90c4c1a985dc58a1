package controllers

import (
	"errors"
	"net/http"

	"restaurant-backend/models"
	"restaurant-backend/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService *services.AuthService
}

func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// @Summary Register employee account
// @Description Create a staff account and return an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param register body models.RegisterRequest true "Registration data"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	result, err := ctrl.authService.Register(c.Request.Context(), req)
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
			Message: "Failed to register",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Registration successful",
		Data:    result,
	})
}

// @Summary Login
// @Description Authenticate with phone and password, returns a JWT
// @Tags Auth
// @Accept json
// @Produce json
// @Param login body models.LoginRequest true "Login credentials"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	result, err := ctrl.authService.Login(c.Request.Context(), req)
	if err != nil {
		var validationErr models.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: validationErr.Message,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to login",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Login successful",
		Data:    result,
	})
}
