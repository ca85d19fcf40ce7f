package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/bukukas/bukukas_backend/internal/core/ports/services"
	"github.com/bukukas/bukukas_backend/internal/dto"
	"github.com/bukukas/bukukas_backend/internal/middleware"
	"github.com/bukukas/bukukas_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
)

const oauthStateCookie = "oauthstate"

// GoogleOAuthHandler handles the redirect-based Google sign-in flow plus the
// SPA variant where the frontend exchanges the authorization code itself.
type GoogleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
	userService        portssvc.UserSvcFacade
	tokenService       portssvc.TokenSvcFacade
	frontendBaseURL    string
}

// NewGoogleOAuthHandler creates a new instance of GoogleOAuthHandler.
func NewGoogleOAuthHandler(cfg *config.Config, services *portssvc.ServiceContainer) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		googleOAuthService: services.GoogleOAuth,
		userService:        services.User,
		tokenService:       services.Token,
		frontendBaseURL:    cfg.FrontendBaseURL,
	}
}

// ExchangeCodeRequest defines the expected JSON body for the /google/exchange-code endpoint.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// registerGoogleOAuthRoutes registers the Google OAuth routes.
func registerGoogleOAuthRoutes(rg *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewGoogleOAuthHandler(cfg, services)
	googleRoutes := rg.Group("/api/v1/auth/google")
	{
		googleRoutes.GET("/login", h.RedirectToGoogle)
		googleRoutes.GET("/callback", h.CallbackGoogle)
		googleRoutes.POST("/exchange-code", h.ExchangeCodeGoogle)
	}
}

// RedirectToGoogle starts the redirect flow: it stores a CSRF state cookie and
// sends the browser to Google's consent screen.
func (h *GoogleOAuthHandler) RedirectToGoogle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	state, err := h.googleOAuthService.GenerateStateString(c.Request.Context())
	if err != nil {
		logger.Error("Failed to generate OAuth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start Google sign-in"})
		return
	}

	// 10 minute lifetime covers the consent round trip.
	c.SetCookie(oauthStateCookie, state, 600, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, h.googleOAuthService.GetGoogleLoginURL(c.Request.Context(), state))
}

// CallbackGoogle completes the redirect flow: it verifies the state cookie,
// exchanges the code, signs in the matching provisioned account and sends the
// browser back to the dashboard with the access token.
func (h *GoogleOAuthHandler) CallbackGoogle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	cookieState, err := c.Cookie(oauthStateCookie)
	if err != nil || cookieState == "" || c.Query("state") != cookieState {
		logger.Warn("OAuth state mismatch on Google callback")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid OAuth state"})
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", false, true)

	resp, status, errMsg := h.signInWithCode(c, c.Query("code"))
	if errMsg != "" {
		c.JSON(status, ErrorResponse{Error: errMsg})
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, h.frontendBaseURL+"/login/callback#token="+resp.Token)
}

// ExchangeCodeGoogle handles the POST request from the frontend containing the
// authorization code from Google and returns the application JWT directly.
func (h *GoogleOAuthHandler) ExchangeCodeGoogle(c *gin.Context) {
	var req ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload: " + err.Error()})
		return
	}

	resp, status, errMsg := h.signInWithCode(c, req.Code)
	if errMsg != "" {
		c.JSON(status, ErrorResponse{Error: errMsg})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// signInWithCode exchanges an authorization code, validates the resulting ID
// token and signs in the provisioned account matching its email. Sign-in never
// creates accounts: provisioning is an admin operation.
func (h *GoogleOAuthHandler) signInWithCode(c *gin.Context, code string) (*dto.LoginResponse, int, string) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	if code == "" {
		return nil, http.StatusBadRequest, "Authorization code is required"
	}

	oauth2Token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, code)
	if err != nil {
		logger.Error("Failed to exchange authorization code with Google", slog.String("error", err.Error()))
		if strings.Contains(strings.ToLower(err.Error()), "invalid_grant") {
			return nil, http.StatusBadRequest, "Invalid or expired authorization code"
		}
		return nil, http.StatusBadGateway, "Failed to communicate with Google"
	}

	idTokenString, ok := oauth2Token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		logger.Error("ID token not found in Google's token response")
		return nil, http.StatusInternalServerError, "Failed to retrieve ID token from Google"
	}

	payload, err := h.googleOAuthService.ValidateGoogleIDToken(ctx, idTokenString)
	if err != nil {
		logger.Warn("Google ID token validation failed", slog.String("error", err.Error()))
		return nil, http.StatusUnauthorized, "Invalid Google ID token"
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, http.StatusUnauthorized, "Google token carries no email claim"
	}

	user, err := h.userService.GetUserByEmail(ctx, email)
	if err != nil {
		logger.Warn("No provisioned account for Google identity", slog.String("email", email))
		return nil, http.StatusUnauthorized, "No account is provisioned for this Google identity"
	}

	token, expiresAt, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		return nil, http.StatusInternalServerError, "Failed to generate access token"
	}

	logger.Info("User signed in via Google", slog.String("user_id", user.UserID))
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Role:      user.Role,
		StoreName: user.StoreName,
	}, http.StatusOK, ""
}
