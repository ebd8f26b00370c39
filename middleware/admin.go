package middleware

import (
	"crypto/subtle"
	"net/http"
	"os"

	"github.com/aditbhattarai/Adit-ko-website/utils"

	"github.com/gin-gonic/gin"
)

// AdminKey guards the admin surface (contact listing/deletion, stats).
// When ADMIN_API_KEY is set, requests must carry it in the X-Admin-Key
// header. When it is not set the surface stays open, as the original site
// shipped it; the exposure is logged once at startup so it is a documented
// choice rather than a silent one.
func AdminKey() gin.HandlerFunc {
	key := os.Getenv("ADMIN_API_KEY")
	if key == "" {
		utils.LogWarning("ADMIN_API_KEY is not set: the admin endpoints (/api/contacts, /api/stats) are unauthenticated")
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		provided := c.GetHeader("X-Admin-Key")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Unauthorized",
			})
			return
		}
		c.Next()
	}
}
