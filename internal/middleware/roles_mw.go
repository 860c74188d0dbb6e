package middleware

import (
	"log"
	"net/http"

	"bakeapi/internal/model"
	"bakeapi/internal/repository"

	"github.com/gin-gonic/gin"
)

// AdminMiddleware restricts a route to administrators. The token carries no
// role claim, so the caller's persisted record is fetched on every request:
// a role change takes effect immediately instead of at token expiry.
func AdminMiddleware(userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get(AuthUserKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden access"})
			return
		}
		userID, ok := userIDVal.(int)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden access"})
			return
		}

		user, err := userRepo.FindByID(c.Request.Context(), userID)
		if err != nil {
			log.Printf("Error fetching user %d for role check: %v", userID, err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		if user == nil || user.Role != model.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden access"})
			return
		}

		c.Next()
	}
}
