package auth

import (
	"context"

	"github.com/anmds2025/roomify/internal/core/id"
)

// UserRepository defines user storage operations.
type UserRepository interface {
	// Create creates a new user.
	Create(ctx context.Context, user *User) error

	// GetByID retrieves user by ID.
	GetByID(ctx context.Context, userID id.ID) (*User, error)

	// GetByEmail retrieves user by email.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Update updates user data.
	Update(ctx context.Context, user *User) error

	// Delete soft-deletes a user.
	Delete(ctx context.Context, userID id.ID) error

	// List retrieves users with filtering.
	List(ctx context.Context, filter UserFilter) ([]User, int, error)

	// LoadRoles loads the user's role codes.
	LoadRoles(ctx context.Context, userID id.ID) ([]string, error)

	// LoadHomes loads the home IDs the user manages.
	LoadHomes(ctx context.Context, userID id.ID) ([]string, error)

	// AssignRole assigns a role to user.
	AssignRole(ctx context.Context, userID id.ID, roleCode string) error

	// RevokeRole revokes a role from user.
	RevokeRole(ctx context.Context, userID id.ID, roleCode string) error

	// AssignHome grants the user access to a home.
	AssignHome(ctx context.Context, userID, homeID id.ID) error

	// Exists checks if email is already registered.
	Exists(ctx context.Context, email string) (bool, error)
}

// TokenRepository defines token storage operations.
type TokenRepository interface {
	// SaveRefreshToken saves a refresh token.
	SaveRefreshToken(ctx context.Context, token *RefreshToken) error

	// GetRefreshToken retrieves refresh token by hash.
	GetRefreshToken(ctx context.Context, tokenHash string) (*RefreshToken, error)

	// RevokeRefreshToken revokes a refresh token.
	RevokeRefreshToken(ctx context.Context, tokenID id.ID, reason string) error

	// RevokeAllUserTokens revokes all tokens for a user.
	RevokeAllUserTokens(ctx context.Context, userID id.ID, reason string) error

	// CleanupExpiredTokens removes expired tokens.
	CleanupExpiredTokens(ctx context.Context) (int, error)
}

// UserFilter for listing users.
type UserFilter struct {
	Search   string
	IsActive *bool
	RoleCode string
	Limit    int
	Offset   int
}
