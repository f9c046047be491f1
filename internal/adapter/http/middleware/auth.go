package middleware

import (
	"log"
	"net/http"
	"strings"

	"printworks/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

const callerContextKey = "caller"

type Claims struct {
	jwt.StandardClaims
	UserID string        `json:"user_id"`
	Role   entities.Role `json:"role"`
}

type AuthMiddleware struct {
	secret []byte
}

func NewAuthMiddleware(secret string) *AuthMiddleware {
	return &AuthMiddleware{secret: []byte(secret)}
}

// WithAuthCheck validates the bearer token and, when roles are given,
// requires the caller to hold one of them.
func (am *AuthMiddleware) WithAuthCheck(allowedRoles ...entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.GetHeader("Authorization")
		if tokenStr == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		tokenStr = strings.TrimPrefix(tokenStr, "Bearer ")

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return am.secret, nil
		})
		if err != nil || !token.Valid {
			log.Printf("[http][auth] token rejected err=%v", err)
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		if len(allowedRoles) > 0 && !roleAllowed(claims.Role, allowedRoles) {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		c.Set(callerContextKey, entities.Caller{UserID: claims.UserID, Role: claims.Role})
		c.Next()
	}
}

// CallerFrom returns the authenticated caller placed in the context by
// WithAuthCheck.
func CallerFrom(c *gin.Context) (entities.Caller, bool) {
	v, ok := c.Get(callerContextKey)
	if !ok {
		return entities.Caller{}, false
	}
	caller, ok := v.(entities.Caller)
	return caller, ok
}

func roleAllowed(r entities.Role, allowed []entities.Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}
