// Package auth provides authentication and authorization domain logic:
// operator accounts, password login with lockout, JWT access tokens
// and rotating refresh tokens.
package auth

import (
	"context"
	"time"

	"github.com/anmds2025/roomify/internal/core/apperror"
	"github.com/anmds2025/roomify/internal/core/id"
)

// Well-known role codes.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
)

// User represents an operator account.
type User struct {
	ID                  id.ID      `db:"id" json:"id"`
	Email               string     `db:"email" json:"email"`
	PasswordHash        string     `db:"password_hash" json:"-"`
	FullName            string     `db:"full_name" json:"fullName,omitempty"`
	Phone               string     `db:"phone" json:"phone,omitempty"`
	IsActive            bool       `db:"is_active" json:"isActive"`
	IsAdmin             bool       `db:"is_admin" json:"isAdmin"`
	LastLoginAt         *time.Time `db:"last_login_at" json:"lastLoginAt,omitempty"`
	FailedLoginAttempts int        `db:"failed_login_attempts" json:"-"`
	LockedUntil         *time.Time `db:"locked_until" json:"-"`
	CreatedAt           time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt           time.Time  `db:"updated_at" json:"updatedAt"`
	DeletedAt           *time.Time `db:"deleted_at" json:"-"`
	Version             int        `db:"version" json:"version"`

	// Loaded relations
	Roles   []string `db:"-" json:"roles,omitempty"`
	HomeIDs []string `db:"-" json:"homeIds,omitempty"`
}

// NewUser creates a new operator account.
func NewUser(email, passwordHash string) *User {
	return &User{
		ID:           id.New(),
		Email:        email,
		PasswordHash: passwordHash,
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
		Version:      1,
	}
}

// Validate validates user data.
func (u *User) Validate(ctx context.Context) error {
	if u.Email == "" {
		return apperror.NewValidation("email is required").WithDetail("field", "email")
	}
	return nil
}

// IsLocked returns true if the account is locked.
func (u *User) IsLocked() bool {
	if u.LockedUntil == nil {
		return false
	}
	return time.Now().Before(*u.LockedUntil)
}

// CanLogin checks if the user can log in.
func (u *User) CanLogin() error {
	if !u.IsActive {
		return apperror.NewForbidden("account is disabled")
	}
	if u.IsLocked() {
		return apperror.NewForbidden("account is temporarily locked")
	}
	return nil
}

// RecordFailedLogin increments the failed login counter, locking the
// account once the limit is hit.
func (u *User) RecordFailedLogin(maxAttempts int, lockDuration time.Duration) {
	u.FailedLoginAttempts++
	if u.FailedLoginAttempts >= maxAttempts {
		lockUntil := time.Now().Add(lockDuration)
		u.LockedUntil = &lockUntil
	}
}

// RecordSuccessfulLogin resets the failed login counter.
func (u *User) RecordSuccessfulLogin() {
	u.FailedLoginAttempts = 0
	u.LockedUntil = nil
	now := time.Now()
	u.LastLoginAt = &now
}

// HasRole checks if the user carries a role.
func (u *User) HasRole(roleCode string) bool {
	for _, r := range u.Roles {
		if r == roleCode {
			return true
		}
	}
	return false
}

// RefreshToken represents a refresh token for JWT rotation.
type RefreshToken struct {
	ID            id.ID      `db:"id"`
	UserID        id.ID      `db:"user_id"`
	TokenHash     string     `db:"token_hash"`
	ExpiresAt     time.Time  `db:"expires_at"`
	CreatedAt     time.Time  `db:"created_at"`
	RevokedAt     *time.Time `db:"revoked_at"`
	RevokedReason string     `db:"revoked_reason"`
	UserAgent     string     `db:"user_agent"`
	IPAddress     string     `db:"ip_address"`
}

// IsValid checks if the refresh token is usable.
func (t *RefreshToken) IsValid() bool {
	if t.RevokedAt != nil {
		return false
	}
	return time.Now().Before(t.ExpiresAt)
}

// TokenPair contains access and refresh tokens.
type TokenPair struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
	TokenType    string    `json:"tokenType"`
}

// Credentials for login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest for operator registration.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName,omitempty"`
	Phone    string `json:"phone,omitempty"`
}
