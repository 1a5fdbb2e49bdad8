package utils

import (
	"errors"

	"github.com/fumiya-dev/entrymarket-go/models"
	"github.com/fumiya-dev/entrymarket-go/types"
	"github.com/gin-gonic/gin"
)

var GetUserIDFromContext = func(c *gin.Context) (uint, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return 0, errors.New("user claims not found in context")
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return 0, errors.New("invalid user claims type")
	}

	return claims.UserID, nil
}

func GetClaimsFromContext(c *gin.Context) (*types.Claims, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return nil, errors.New("user claims not found in context")
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return nil, errors.New("invalid user claims type")
	}

	return claims, nil
}

// CanSetEntryStatus is the role gate on entry status changes: admins may
// request any status, regular users only PENDING and WITHDRAWN.
func CanSetEntryStatus(role models.UserRole, target models.EntryStatus) bool {
	if role == models.UserRoleAdmin {
		return true
	}
	return target == models.EntryStatusPending || target == models.EntryStatusWithdrawn
}

func RoleFromClaims(claims *types.Claims) models.UserRole {
	if claims.IsAdmin {
		return models.UserRoleAdmin
	}
	return models.UserRoleUser
}
