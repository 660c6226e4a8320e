package auth

import (
	"github.com/gin-gonic/gin"
	"github.com/tutorhub/backend/internal/app/models"
)

// IdentityKey is the gin context key the auth gate stores the resolved
// identity under.
const IdentityKey = "identity"

// Identity is the fully materialized caller identity attached to the
// request context by the authentication gate. Downstream guards and
// services read only this value and never reach back into token claims
// or raw user rows.
type Identity struct {
	UserID int64
	Role   models.RoleType
	// SpecializationID is the tutor or student row id for callers with
	// those roles; nil for admins.
	SpecializationID *int64
}

// IsAdmin reports whether the caller is an admin.
func (i Identity) IsAdmin() bool {
	return i.Role == models.RoleAdmin
}

// IdentityFromContext returns the identity attached by the auth gate.
func IdentityFromContext(c *gin.Context) (Identity, bool) {
	v, exists := c.Get(IdentityKey)
	if !exists {
		return Identity{}, false
	}
	identity, ok := v.(Identity)
	return identity, ok
}
