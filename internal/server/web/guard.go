package web

import (
	"net/http"

	"github.com/dmitrijs2005/gophsecrets/internal/common"
	"github.com/dmitrijs2005/gophsecrets/internal/logging"
	"github.com/dmitrijs2005/gophsecrets/internal/server/auth"
	"github.com/gin-gonic/gin"
)

// ContextClaimsKey is the gin.Context key holding *auth.Claims after RequireAuth.
const ContextClaimsKey = "auth.claims"

// RequireAuth verifies the session cookie. Requests without a cookie, or with
// one that fails verification, are redirected to /login and the chain stops.
func RequireAuth(tokens auth.TokenVerifier, logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token, err := c.Cookie(common.TokenCookieName)
		if err != nil || token == "" {
			logger.Debug(ctx, "no session cookie", "path", c.Request.URL.Path)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			logger.Debug(ctx, "session rejected", "path", c.Request.URL.Path, "error", err.Error())
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(ContextClaimsKey, claims)
		c.Request = c.Request.WithContext(auth.WithClaims(ctx, claims))
		c.Next()
	}
}
