package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	userIDKey   = "userId"
	userRoleKey = "userRole"
)

// RequireAuth validates the bearer token and stores the admin identity in
// the context for handlers and RequireRoles downstream.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "กรุณาเข้าสู่ระบบ"})
			return
		}
		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "โทเค็นไม่ถูกต้องหรือหมดอายุ"})
			return
		}

		if sub, ok := claims["user_id"].(string); ok {
			c.Set(userIDKey, sub)
		}
		if role, ok := claims["role"].(string); ok {
			c.Set(userRoleKey, role)
		}
		c.Next()
	}
}

// AuthUserID returns the authenticated admin id, "" when absent.
func AuthUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// AuthRole returns the authenticated admin role, "" when absent.
func AuthRole(c *gin.Context) string {
	return c.GetString(userRoleKey)
}
