package middlewares

import (
	"github.com/Asian-Restaurant/backend/services"

	"github.com/gin-gonic/gin"
)

const cartKeyContext = "cartKey"

// CartKeyMiddleware resolves which cart a request addresses: the
// X-Cart-ID header, then the cart_id query parameter, then the legacy
// shared cart that every anonymous client ends up on.
func CartKeyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-Cart-ID")
		if key == "" {
			key = c.Query("cart_id")
		}
		if key == "" {
			key = services.DefaultCartKey
		}
		c.Set(cartKeyContext, key)
		c.Next()
	}
}

// CartKey reads the resolved cart key off the request context.
func CartKey(c *gin.Context) string {
	if key := c.GetString(cartKeyContext); key != "" {
		return key
	}
	return services.DefaultCartKey
}
