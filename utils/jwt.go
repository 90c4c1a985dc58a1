package utils

import (
	"errors"
	"time"

	"restaurant-backend/config"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	EmployeeID int    `json:"employee_id"`
	Phone      string `json:"phone"`
	Role       string `json:"role"`
	jwt.RegisteredClaims
}

func GenerateToken(employeeID int, phone, role string) (string, error) {
	expiry, err := time.ParseDuration(config.AppConfig.JWTExpiry)
	if err != nil {
		expiry = 24 * time.Hour
	}

	claims := Claims{
		EmployeeID: employeeID,
		Phone:      phone,
		Role:       role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}

func ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
