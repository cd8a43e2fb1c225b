package middlewares

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware requires a valid bearer token and puts userID/email
// into the gin context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, email, err := parseBearer(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.Set("userID", userID)
		c.Set("email", email)
		c.Next()
	}
}

// OptionalAuthMiddleware sets userID when a valid token is present and
// leaves the request anonymous otherwise. Used on public endpoints
// whose responses are personalized for logged-in viewers.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, email, err := parseBearer(c); err == nil {
			c.Set("userID", userID)
			c.Set("email", email)
		}
		c.Next()
	}
}

func parseBearer(c *gin.Context) (uint, string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return 0, "", errors.New("Authorization header required")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	secret := []byte(os.Getenv("JWT_SECRET"))
	if len(secret) == 0 {
		return 0, "", errors.New("server misconfigured: JWT_SECRET not set")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return 0, "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", errors.New("invalid claims")
	}

	id, ok := claims["userId"].(float64) // JSON numbers decode as float64
	if !ok || id < 1 {
		return 0, "", errors.New("userId claim missing")
	}
	email, _ := claims["email"].(string)

	return uint(id), email, nil
}
