package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"budgetbook/internal/models"
)

const actorKey = "actor"

// APIKeyAuth validates the X-API-Key header against the configured key. An
// empty key leaves the API open, which is the default for a ledger that only
// listens on the household network.
func APIKeyAuth(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			c.Next()
			return
		}
		key := c.GetHeader("X-API-Key")
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				gin.H{"error": gin.H{"code": "UNAUTHORIZED", "message": "Invalid or missing API key"}})
			return
		}
		c.Next()
	}
}

// HouseholdMember reads the optional X-Household-Member header and stores the
// acting member for audit records. Unknown members are rejected.
func HouseholdMember() gin.HandlerFunc {
	return func(c *gin.Context) {
		member := c.GetHeader("X-Household-Member")
		if member != "" && !models.Person(member).Valid() {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				gin.H{"error": gin.H{"code": "INVALID_INPUT", "message": "X-Household-Member must be Jeff, Vanessa or Joint"}})
			return
		}
		c.Set(actorKey, member)
		c.Next()
	}
}

// Actor returns the household member recorded by HouseholdMember, or "".
func Actor(c *gin.Context) string {
	return c.GetString(actorKey)
}
