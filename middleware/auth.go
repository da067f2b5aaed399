package middleware

import (
	"strings"

	"biblioteca-backend/helper"
	"biblioteca-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

var HTTPHelper = &helper.HTTPHelper{}

type Claims struct {
	UserID uint   `json:"usuario_id"`
	Role   string `json:"rol"`
	jwt.RegisteredClaims
}

// AuthMiddleware verifies the token carried in the Authorization header
// and attaches {user_id, role} to the request context. A missing,
// malformed or expired token is rejected with 403 before any handler
// or store call runs. The header value is taken verbatim; a
// conventional "Bearer " prefix is tolerated.
func AuthMiddleware(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			HTTPHelper.SendForbidden(c, "access denied")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return jwtSecret, nil
		})
		if err != nil || !token.Valid {
			HTTPHelper.SendForbidden(c, "invalid token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// RequireRole rejects with 401 when the authenticated role is not in
// the allowed set. An empty set lets any authenticated caller through.
func RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[string(r)] = struct{}{}
	}

	return func(c *gin.Context) {
		if len(allowed) == 0 {
			c.Next()
			return
		}

		role, exists := c.Get("role")
		if !exists {
			HTTPHelper.SendForbidden(c, "access denied")
			c.Abort()
			return
		}

		if _, ok := allowed[role.(string)]; !ok {
			HTTPHelper.SendUnauthorized(c, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
