package utils

import (
	"os"
	"time"

	"github.com/TharunSree/taxi-fleet-backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// TokenLifetime is how long issued staff tokens stay valid.
const TokenLifetime = time.Hour * 24 * 7

func GenerateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"id":          user.ID,
		"username":    user.Username,
		"isSuperuser": user.IsSuperuser,
		"exp":         time.Now().Add(TokenLifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
}
