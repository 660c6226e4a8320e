package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tutorhub/backend/internal/app/models/dto"
	"github.com/tutorhub/backend/internal/app/services"
	"github.com/tutorhub/backend/internal/middleware"
	"github.com/tutorhub/backend/internal/pkg/auth"
)

// AuthController handles registration, login and token lifecycle
type AuthController struct {
	authService  *services.AuthService
	cookieMaxAge int
	cookieSecure bool
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, cookieMaxAge int, cookieSecure bool) *AuthController {
	return &AuthController{
		authService:  authService,
		cookieMaxAge: cookieMaxAge,
		cookieSecure: cookieSecure,
	}
}

// setTokenCookie stores the access token in an HTTP-only cookie
func (c *AuthController) setTokenCookie(ctx *gin.Context, accessToken string) {
	ctx.SetCookie(auth.TokenCookieName, accessToken, c.cookieMaxAge, "/", "", c.cookieSecure, true)
}

// Register handles self-service registration
// @Summary Register a new account
// @Description Creates a pending account with a requested role. The account cannot log in until an admin approves it.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration information"
// @Success 201 {object} dto.APIResponse{data=dto.UserResponse} "Account created, awaiting approval"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or email already in use"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(ctx, &req) {
		return
	}

	user, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(user))
}

// Login handles authentication
// @Summary Log in
// @Description Authenticates a user and issues a token pair. The access token is also set as an HTTP-only cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse} "Authenticated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials or account pending approval"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(ctx, &req) {
		return
	}

	tokens, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.setTokenCookie(ctx, tokens.AccessToken)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(tokens))
}

// RefreshToken handles token rotation
// @Summary Refresh tokens
// @Description Exchanges a refresh token for a new token pair; the old refresh token is revoked.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse} "New token pair"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Token invalid, expired or revoked"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/refresh [post]
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if !bindJSON(ctx, &req) {
		return
	}

	tokens, err := c.authService.RefreshToken(ctx.Request.Context(), req.RefreshToken)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.setTokenCookie(ctx, tokens.AccessToken)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(tokens))
}

// Logout revokes the caller's refresh token and clears the cookie
// @Summary Log out
// @Description Revokes the provided refresh token and clears the access token cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest false "Refresh token to revoke"
// @Success 200 {object} dto.APIResponse "Logged out"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	// Body is optional; an absent token still clears the cookie
	_ = ctx.ShouldBindJSON(&req)

	if err := c.authService.Logout(ctx.Request.Context(), req.RefreshToken); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.SetCookie(auth.TokenCookieName, "", -1, "/", "", c.cookieSecure, true)
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Logged out"))
}
