package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"lms/apperr"
	"lms/config"
	"lms/models"
	"lms/policy"
)

func GenerateJWTToken(user models.User, cfg *config.Config) (string, error) {
	claims := jwt.MapClaims{
		"userId": user.ID,
		"role":   user.Role,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(time.Hour * 72).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// ParseIdentity verifies the token and returns the caller identity embedded
// in its claims.
func ParseIdentity(tokenString string, cfg *config.Config) (policy.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperr.New(apperr.Unauthenticated, "invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return policy.Identity{}, apperr.New(apperr.Unauthenticated, "invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return policy.Identity{}, apperr.New(apperr.Unauthenticated, "invalid token claims")
	}

	userID, ok := claims["userId"].(float64)
	if !ok {
		return policy.Identity{}, apperr.New(apperr.Unauthenticated, "invalid user ID in token")
	}
	role, ok := claims["role"].(string)
	if !ok {
		return policy.Identity{}, apperr.New(apperr.Unauthenticated, "invalid role in token")
	}

	return policy.Identity{UserID: uint(userID), Role: role}, nil
}
