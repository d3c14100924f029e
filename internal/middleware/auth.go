package middleware

import (
	"net/http"
	"strings"

	"github.com/Alaebelamkaddame/content-management/internal/modules/model"
	"github.com/Alaebelamkaddame/content-management/internal/modules/serializer"
	"github.com/Alaebelamkaddame/content-management/internal/modules/service"
	"github.com/Alaebelamkaddame/content-management/internal/pkg/token"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	claimsKey        = "claims"
	clientProjectKey = "client_project_id"
)

func bearerToken(c *gin.Context) (string, bool) {
	auth := c.GetHeader("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(auth, "Bearer "), true
}

// Auth authenticates requests with a session bearer token and stores the
// verified claims in the context as an immutable value.
func Auth(tm *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("missing token"))
			return
		}

		claims, err := tm.VerifySession(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("invalid token"))
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireRole rejects requests whose session role is not in the allowed set.
// Must run after Auth.
func RequireRole(allowed ...model.Role) gin.HandlerFunc {
	set := make(map[model.Role]struct{}, len(allowed))
	for _, r := range allowed {
		set[r] = struct{}{}
	}
	return func(c *gin.Context) {
		claims, ok := Claims(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("missing token"))
			return
		}
		if _, ok := set[claims.Role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, serializer.ForbiddenErr(""))
			return
		}
		c.Next()
	}
}

// ClientAuth authenticates client-view tokens and scopes the request to the
// token's project, regardless of anything else in the request. The token
// must also still be the active one for its project: issuing a new client
// token revokes prior ones.
func ClientAuth(tm *token.Manager, clientTokens service.ClientTokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("missing token"))
			return
		}

		claims, err := tm.VerifyClient(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("invalid token"))
			return
		}

		active, err := clientTokens.VerifyActive(c.Request.Context(), raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, serializer.DBErr("", err))
			return
		}
		if !active {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("invalid token"))
			return
		}

		c.Set(clientProjectKey, claims.ProjectID)
		c.Next()
	}
}

// Claims returns the verified session claims set by Auth.
func Claims(c *gin.Context) (*token.SessionClaims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*token.SessionClaims)
	return claims, ok
}

// ClientProjectID returns the project the client token is scoped to.
func ClientProjectID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(clientProjectKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
