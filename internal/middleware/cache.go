package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CacheControl marks GET responses as publicly cacheable for maxAgeSeconds.
func CacheControl(maxAgeSeconds int) gin.HandlerFunc {
	value := fmt.Sprintf("public, max-age=%d", maxAgeSeconds)
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			c.Header("Cache-Control", value)
		}
		c.Next()
	}
}

// NoStore disables caching, used on admin and streaming routes.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.Next()
	}
}
