package delivery

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CronAuthMiddleware guards scheduler-facing endpoints with a shared
// bearer secret. An empty configured secret rejects everything, so a
// misconfigured deployment fails closed.
func CronAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if secret == "" || authHeader != "Bearer "+secret {
			log.Println("[Digest] Unauthorized cron access attempt")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}
