package middleware

import (
	"net/http"

	"github.com/fumiya-dev/entrymarket-go/repositories"
	"github.com/fumiya-dev/entrymarket-go/response"
	"github.com/fumiya-dev/entrymarket-go/types"
	"github.com/gin-gonic/gin"
)

type Auth struct {
	repos *repositories.Repos
}

func NewAuth(repos *repositories.Repos) *Auth {
	return &Auth{repos: repos}
}

// Admin permits only callers whose stored role is admin. The user record is
// re-read so a role change takes effect before the token expires.
func (a *Auth) Admin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.MustGet("claims").(*types.Claims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token claims"})
			return
		}

		user, err := a.repos.User.GetUserByID(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unknown user"})
			return
		}
		if !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "admin only"})
			return
		}
		c.Next()
	}
}
