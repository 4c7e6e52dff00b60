package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"bookreview-backend/internal/shared/auth"
	"bookreview-backend/internal/shared/response"
	"bookreview-backend/pkg/jwt"
)

const principalKey = "principal"

// RequireAuth validates the bearer token and stores the resolved Principal in
// the request context. Every route behind it can assume authentication has
// already passed; permission checks stay in the handlers.
func RequireAuth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authentication credentials were not provided.")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "Invalid authorization header format.")
			c.Abort()
			return
		}

		claims, err := manager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Given token not valid for any token type.")
			c.Abort()
			return
		}

		userID, err := claims.SubjectID()
		if err != nil {
			response.Unauthorized(c, "Given token not valid for any token type.")
			c.Abort()
			return
		}

		c.Set(principalKey, auth.Principal{
			ID:          userID,
			Username:    claims.Username,
			IsStaff:     claims.IsStaff,
			IsSuperuser: claims.IsSuperuser,
		})

		c.Next()
	}
}

// PrincipalFromContext returns the Principal stored by RequireAuth.
func PrincipalFromContext(c *gin.Context) (auth.Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return auth.Principal{}, false
	}
	p, ok := v.(auth.Principal)
	return p, ok
}
