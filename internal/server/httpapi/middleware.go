package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/medportal/authsvc/internal/common"
	"github.com/medportal/authsvc/internal/server/auth"
	"github.com/medportal/authsvc/internal/server/models"
)

// claimsKey is the gin context key holding the verified *auth.Claims of the
// current request.
const claimsKey = "authClaims"

// Authenticate extracts and verifies the Bearer access token. Missing,
// expired, and otherwise invalid tokens get distinct 401 messages so
// clients know whether a refresh is worth attempting. Claims reach the
// context only through signature verification, never through an unverified
// decode.
func Authenticate(accessSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(common.AuthorizationHeaderName)
		if header == "" || !strings.HasPrefix(header, common.BearerPrefix) {
			respondError(c, http.StatusUnauthorized, "Unauthorized", "Access token is required")
			return
		}

		tokenString := strings.TrimPrefix(header, common.BearerPrefix)

		claims, err := auth.Verify(tokenString, accessSecret)
		if err != nil {
			if errors.Is(err, common.ErrTokenExpired) {
				respondError(c, http.StatusUnauthorized, "Unauthorized", "Access token has expired")
			} else {
				respondError(c, http.StatusUnauthorized, "Unauthorized", "Invalid access token")
			}
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireRole allows the request through only when the authenticated role is
// in the given set. It must run after Authenticate.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := claimsFrom(c)
		if claims == nil {
			respondError(c, http.StatusUnauthorized, "Unauthorized", "Authentication required")
			return
		}

		for _, role := range roles {
			if claims.Role == role {
				c.Next()
				return
			}
		}

		respondError(c, http.StatusForbidden, "Forbidden", "Insufficient permissions")
	}
}

// claimsFrom returns the verified claims set by Authenticate, or nil.
func claimsFrom(c *gin.Context) *auth.Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, ok := v.(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}
