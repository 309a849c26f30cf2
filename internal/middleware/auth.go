package middleware

import (
	"net/http"
	"strings"

	"github.com/wb-go/wbf/ginext"
	"github.com/wilbyang/reserver/internal/auth"
)

// Context keys the handlers read the caller identity from.
const (
	CtxOwnerID = "owner_id"
	CtxIsAdmin = "is_admin"
)

// Auth validates the bearer token and places the caller identity in the
// request context. Everything behind it can assume an authenticated owner.
func Auth(tokens *auth.Manager) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "missing authorization header"},
			)
			return
		}

		claims, err := tokens.Parse(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "invalid token"},
			)
			return
		}

		c.Set(CtxOwnerID, claims.Sub)
		c.Set(CtxIsAdmin, claims.IsAdmin())

		c.Next()
	}
}
