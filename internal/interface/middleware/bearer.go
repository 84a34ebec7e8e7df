package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/thriftly-app/thriftly-api/pkg/response"
)

// CtxBearerToken is the context key the extracted token is stored under.
const CtxBearerToken = "bearerToken"

// BearerToken extracts the Authorization bearer token into the Gin context.
// It only checks presence; signature and ownership checks happen in the
// handler, which knows the claimed owner id.
func BearerToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(h, "Bearer ")
		if !ok || token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Set(CtxBearerToken, token)
		c.Next()
	}
}
