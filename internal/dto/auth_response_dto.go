package dto

import (
	"time"

	"github.com/bukukas/bukukas_backend/internal/core/domain"
)

// LoginRequest defines the credentials for password login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// GoogleIDTokenRequest carries a Google-issued ID token for token-based sign-in.
type GoogleIDTokenRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// LoginResponse returns the access token plus the session's role and assigned
// store, so the dashboard can pick the right view without decoding the JWT.
type LoginResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	Role      domain.Role `json:"role"`
	StoreName *string     `json:"storeName,omitempty"`
}
