package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthConfig - статические токены и/или секрет HS256 для JWT
type AuthConfig struct {
	StaticTokens []string
	JWTSecret    string
}

// Enabled сообщает, настроен ли хоть один способ входа
func (a AuthConfig) Enabled() bool {
	return len(a.StaticTokens) > 0 || a.JWTSecret != ""
}

// actorKey - ключ gin.Context с подписью клиента для журнала
const actorKey = "actor"

// AuthMiddleware принимает Bearer токен: JWT, подписанный JWTSecret, или один из статических
func AuthMiddleware(cfg AuthConfig) gin.HandlerFunc {
	secret := []byte(cfg.JWTSecret)

	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization"})
			return
		}
		parts := strings.Fields(auth)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format"})
			return
		}
		tokenStr := parts[1]

		if len(secret) > 0 {
			claims := jwt.MapClaims{}
			_, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
				return secret, nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}), jwt.WithLeeway(5*time.Second))
			if err == nil {
				subject, _ := claims.GetSubject()
				if subject == "" {
					subject = "jwt"
				}
				c.Set(actorKey, "api:"+subject)
				c.Next()
				return
			}
		}

		for i, t := range cfg.StaticTokens {
			if tokenStr == t {
				c.Set(actorKey, "api:token"+strconv.Itoa(i+1))
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
	}
}

// actor возвращает подпись клиента, выставленную AuthMiddleware
func actor(c *gin.Context) string {
	if v := c.GetString(actorKey); v != "" {
		return v
	}
	return "api"
}
