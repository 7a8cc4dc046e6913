package middleware

import "github.com/gin-gonic/gin"

// NoStore disables caching for everything in the group. Responses here
// carry passwords and password analyses; they must never land in a
// shared cache or be replayed from a browser cache.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.Header("Pragma", "no-cache")
		c.Next()
	}
}
