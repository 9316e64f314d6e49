package utils

import (
	"errors"
	"os"
	"time"

	"gemstone-admin/config"
	"gemstone-admin/models"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the payload of the locally signed session token. It
// carries the admin identity plus the upstream access token so handlers can
// call the backend on the admin's behalf.
type SessionClaims struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Role        string `json:"role"`
	Address     string `json:"address"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
	AccessToken string `json:"access_token"`
	jwt.RegisteredClaims
}

func jwtSecret() []byte {
	if config.AppConfig != nil && config.AppConfig.JWTSecret != "" {
		return []byte(config.AppConfig.JWTSecret)
	}
	return []byte(os.Getenv("JWT_SECRET"))
}

func jwtExpiry() time.Duration {
	raw := "24h"
	if config.AppConfig != nil && config.AppConfig.JWTExpiry != "" {
		raw = config.AppConfig.JWTExpiry
	}
	expiry, err := time.ParseDuration(raw)
	if err != nil {
		return 24 * time.Hour
	}
	return expiry
}

// GenerateSessionToken signs a session JWT for the given admin.
func GenerateSessionToken(user *models.User, accessToken string) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		UserID:      user.ID,
		Email:       user.Email,
		Name:        user.Name,
		Phone:       user.Phone,
		Role:        user.Role,
		Address:     user.Address,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
		AccessToken: accessToken,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(jwtExpiry())),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// ValidateToken parses and verifies a session token.
func ValidateToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret(), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
