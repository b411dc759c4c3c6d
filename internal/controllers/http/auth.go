package http

import (
	"fmt"
	"net/http"

	"travel-pack/internal/domain"
	"travel-pack/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// userContextKey is where Authenticate stores the resolved user.
const userContextKey = "currentUser"

// Auth bundles the identity middlewares. Token issuance (login/logout) is
// handled by the separate auth service; this side only verifies the cookie it
// sets.
type Auth struct {
	Authenticate   gin.HandlerFunc
	AuthorizeAdmin gin.HandlerFunc
	AuthorizeAgent gin.HandlerFunc
}

func NewAuth(users *services.UserService, secret string) Auth {
	return Auth{
		Authenticate:   authenticate(users, secret),
		AuthorizeAdmin: authorizeAdmin(),
		AuthorizeAgent: authorizeAgent(),
	}
}

func authenticate(users *services.UserService, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie("jwt")
		if err != nil || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authorized, no token"})
			return
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authorized, token failed"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authorized, token failed"})
			return
		}
		userID, ok := claims["userId"].(float64)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authorized, token failed"})
			return
		}

		user, err := users.GetByID(c.Request.Context(), uint64(userID))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authorized, token failed"})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

func authorizeAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil || !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authorized as an admin"})
			return
		}
		c.Next()
	}
}

func authorizeAgent() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil || user.UserType != domain.TypeTravelAgent {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authorized as an agent"})
			return
		}
		c.Next()
	}
}

func currentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	user, _ := v.(*domain.User)
	return user
}
