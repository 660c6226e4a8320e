package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	appauth "github.com/tutorhub/backend/internal/app/auth"
	"github.com/tutorhub/backend/internal/app/models"
	"github.com/tutorhub/backend/internal/app/models/dto"
	"github.com/tutorhub/backend/internal/app/repositories"
	"github.com/tutorhub/backend/internal/pkg/apperrors"
	"github.com/tutorhub/backend/internal/pkg/auth"
)

// AuthMiddleware authenticates requests and attaches the caller identity.
type AuthMiddleware struct {
	jwtService *auth.JWTService
	userRepo   *repositories.UserRepository
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, userRepo *repositories.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userRepo:   userRepo,
	}
}

// extractToken returns the access token from the request. The token
// cookie wins over the Authorization header when both are present.
func extractToken(c *gin.Context) (string, error) {
	if cookie, err := c.Cookie(auth.TokenCookieName); err == nil && cookie != "" {
		return cookie, nil
	}
	return auth.ExtractBearerToken(c.GetHeader("Authorization"))
}

// Authenticate validates the access token, resolves the account and
// attaches a fully materialized identity to the request context.
// Accounts whose role has not been approved yet are rejected.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := extractToken(c)
		if err != nil {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Authentication required")
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				abortUnauthorized(c, dto.ErrorCodeExpiredToken, "Token has expired")
				return
			}
			abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Invalid token")
			return
		}

		// Resolve the account so role changes take effect immediately,
		// not at the next token refresh.
		user, err := m.userRepo.GetUserByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, apperrors.ErrUserNotFound) {
				abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Account no longer exists")
				return
			}
			abortInternal(c)
			return
		}
		if user.Role == nil {
			abortUnauthorized(c, dto.ErrorCodeAccountPending, "Account has not been approved yet")
			return
		}

		identity := appauth.Identity{
			UserID: user.ID,
			Role:   *user.Role,
		}
		switch *user.Role {
		case models.RoleTutor:
			tutor, err := m.userRepo.GetTutorByUserID(c.Request.Context(), user.ID)
			if err != nil {
				abortInternal(c)
				return
			}
			identity.SpecializationID = &tutor.ID
		case models.RoleStudent:
			student, err := m.userRepo.GetStudentByUserID(c.Request.Context(), user.ID)
			if err != nil {
				abortInternal(c)
				return
			}
			identity.SpecializationID = &student.ID
		}

		c.Set(appauth.IdentityKey, identity)
		c.Next()
	}
}

// RequireRole restricts a route to callers holding one of the given
// roles. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := appauth.IdentityFromContext(c)
		if !ok {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Authentication required")
			return
		}

		for _, role := range roles {
			if identity.Role == role {
				c.Next()
				return
			}
		}

		errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied").
			WithDetails("You don't have sufficient permissions for this operation")
		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
	}
}

func abortUnauthorized(c *gin.Context, code dto.ErrorCode, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}

func abortInternal(c *gin.Context) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
}
