package dto

import (
	"time"

	"github.com/anmds2025/roomify/internal/domain/auth"
)

// --- Request DTOs ---

// RegisterRequest for operator registration.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"fullName,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// ToAuthRequest converts to domain request.
func (r *RegisterRequest) ToAuthRequest() auth.RegisterRequest {
	return auth.RegisterRequest{
		Email:    r.Email,
		Password: r.Password,
		FullName: r.FullName,
		Phone:    r.Phone,
	}
}

// LoginRequest for operator login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ToCredentials converts to domain credentials.
func (r *LoginRequest) ToCredentials() auth.Credentials {
	return auth.Credentials{
		Email:    r.Email,
		Password: r.Password,
	}
}

// RefreshTokenRequest for token refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// AssignRoleRequest for assigning a role to an operator.
type AssignRoleRequest struct {
	UserID   string `json:"userId" binding:"required,uuid"`
	RoleCode string `json:"roleCode" binding:"required"`
}

// AssignHomeRequest for granting an operator access to a home.
type AssignHomeRequest struct {
	UserID string `json:"userId" binding:"required,uuid"`
	HomeID string `json:"homeId" binding:"required,uuid"`
}

// --- Response DTOs ---

// TokenResponse represents token pair response.
type TokenResponse struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
	TokenType    string    `json:"tokenType"`
}

// FromTokenPair creates response from domain token pair.
func FromTokenPair(tp *auth.TokenPair) *TokenResponse {
	return &TokenResponse{
		AccessToken:  tp.AccessToken,
		RefreshToken: tp.RefreshToken,
		ExpiresAt:    tp.ExpiresAt,
		TokenType:    tp.TokenType,
	}
}

// UserResponse represents an operator in API response.
type UserResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	FullName    string     `json:"fullName,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	IsActive    bool       `json:"isActive"`
	IsAdmin     bool       `json:"isAdmin"`
	Roles       []string   `json:"roles,omitempty"`
	HomeIDs     []string   `json:"homeIds,omitempty"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// FromUser creates response from domain user.
func FromUser(u *auth.User) *UserResponse {
	return &UserResponse{
		ID:          u.ID.String(),
		Email:       u.Email,
		FullName:    u.FullName,
		Phone:       u.Phone,
		IsActive:    u.IsActive,
		IsAdmin:     u.IsAdmin,
		Roles:       u.Roles,
		HomeIDs:     u.HomeIDs,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}

// LoginResponse includes tokens and operator info.
type LoginResponse struct {
	Tokens *TokenResponse `json:"tokens"`
	User   *UserResponse  `json:"user"`
}
