package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"servehub/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// JWTAuthMiddleware validates the bearer token and, when requiredRole is
// non-empty, enforces the token's role claim. On success the subject id
// and role are stored on the gin context as "subjectID" and "role".
func JWTAuthMiddleware(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"message": "Internal server error",
				})
			}
		}()

		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		subject, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Insufficient authorization",
			})
			return
		}

		if requiredRole != "" && role != requiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Forbidden",
			})
			return
		}

		// Check the cached token hash. A mismatch means the token was
		// superseded by a newer sign-in; a cache miss falls through to the
		// signature check already done above.
		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + subject

		authCache := utils.GetAuthCacheClient()
		if authCache != nil {
			cachedHash, err := authCache.Get(ctx, cacheKey).Result()
			switch {
			case err == nil:
				if cachedHash != computedHash {
					c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
						"success": false,
						"message": "Token superseded",
					})
					return
				}
				_ = authCache.Expire(ctx, cacheKey, time.Hour).Err()
			case err == redis.Nil:
				_ = authCache.Set(ctx, cacheKey, computedHash, time.Hour).Err()
			default:
				log.Printf("WARNING: error retrieving auth cache key: %v", err)
			}
		}

		c.Set("subjectID", subject)
		c.Set("role", role)
		c.Next()
	}
}

// SubjectID returns the authenticated subject id set by JWTAuthMiddleware.
func SubjectID(c *gin.Context) string {
	if v, ok := c.Get("subjectID"); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
