package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/anmds2025/roomify/internal/core/apperror"
	"github.com/anmds2025/roomify/internal/core/id"
	"github.com/anmds2025/roomify/internal/core/tx"
	"github.com/anmds2025/roomify/pkg/logger"
)

// ServiceConfig holds auth service configuration.
type ServiceConfig struct {
	MaxLoginAttempts   int
	LockDuration       time.Duration
	PasswordMinLength  int
	RefreshTokenExpiry time.Duration
}

// DefaultServiceConfig returns default configuration.
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{
		MaxLoginAttempts:   5,
		LockDuration:       15 * time.Minute,
		PasswordMinLength:  8,
		RefreshTokenExpiry: 7 * 24 * time.Hour,
	}
}

// Service provides authentication and authorization logic.
type Service struct {
	userRepo   UserRepository
	tokenRepo  TokenRepository
	txManager  tx.Manager
	jwtService *JWTService
	config     ServiceConfig
}

// NewService creates a new auth service.
func NewService(
	userRepo UserRepository,
	tokenRepo TokenRepository,
	txManager tx.Manager,
	jwtService *JWTService,
	config ServiceConfig,
) *Service {
	return &Service{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		txManager:  txManager,
		jwtService: jwtService,
		config:     config,
	}
}

// Register registers a new operator account.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	if req.Email == "" {
		return nil, apperror.NewValidation("email is required").WithDetail("field", "email")
	}

	if len(req.Password) < s.config.PasswordMinLength {
		return nil, apperror.NewValidation(
			fmt.Sprintf("password must be at least %d characters", s.config.PasswordMinLength),
		).WithDetail("field", "password")
	}

	exists, err := s.userRepo.Exists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email exists: %w", err)
	}
	if exists {
		return nil, apperror.NewConflict("email already registered").WithDetail("email", req.Email)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := NewUser(req.Email, string(passwordHash))
	user.FullName = req.FullName
	user.Phone = req.Phone

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.userRepo.Create(ctx, user); err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		// New operators start as managers; admins are promoted explicitly.
		if err := s.userRepo.AssignRole(ctx, user.ID, RoleManager); err != nil {
			logger.Warn(ctx, "failed to assign default role", "error", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "user registered",
		"user_id", user.ID,
		"email", user.Email)

	return user, nil
}

// Login authenticates an operator and returns tokens.
func (s *Service) Login(ctx context.Context, creds Credentials) (*TokenPair, *User, error) {
	user, err := s.userRepo.GetByEmail(ctx, creds.Email)
	if err != nil {
		return nil, nil, apperror.NewUnauthorized("invalid credentials")
	}

	if err := user.CanLogin(); err != nil {
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		user.RecordFailedLogin(s.config.MaxLoginAttempts, s.config.LockDuration)
		_ = s.userRepo.Update(ctx, user)
		return nil, nil, apperror.NewUnauthorized("invalid credentials")
	}

	if err := s.loadRelations(ctx, user); err != nil {
		return nil, nil, err
	}

	tokens, err := s.generateTokenPair(ctx, user)
	if err != nil {
		return nil, nil, fmt.Errorf("generate tokens: %w", err)
	}

	user.RecordSuccessfulLogin()
	_ = s.userRepo.Update(ctx, user)

	logger.Info(ctx, "user logged in",
		"user_id", user.ID,
		"email", user.Email)

	return tokens, user, nil
}

// RefreshToken rotates the refresh token and issues a new access token.
func (s *Service) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	tokenHash := hashToken(refreshToken)

	token, err := s.tokenRepo.GetRefreshToken(ctx, tokenHash)
	if err != nil {
		return nil, apperror.NewUnauthorized("invalid refresh token")
	}

	if !token.IsValid() {
		return nil, apperror.NewUnauthorized("refresh token expired or revoked")
	}

	user, err := s.userRepo.GetByID(ctx, token.UserID)
	if err != nil {
		return nil, apperror.NewUnauthorized("user not found")
	}

	if err := user.CanLogin(); err != nil {
		return nil, err
	}

	if err := s.loadRelations(ctx, user); err != nil {
		return nil, err
	}

	_ = s.tokenRepo.RevokeRefreshToken(ctx, token.ID, "refreshed")

	return s.generateTokenPair(ctx, user)
}

// Logout revokes all the user's refresh tokens.
func (s *Service) Logout(ctx context.Context, userID id.ID) error {
	return s.tokenRepo.RevokeAllUserTokens(ctx, userID, "logout")
}

// AssignRole assigns a role to a user.
func (s *Service) AssignRole(ctx context.Context, userID id.ID, roleCode string) error {
	if roleCode != RoleAdmin && roleCode != RoleManager {
		return apperror.NewValidation("unknown role").WithDetail("role", roleCode)
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return apperror.NewNotFound("user", userID.String())
	}

	if err := s.userRepo.AssignRole(ctx, userID, roleCode); err != nil {
		return fmt.Errorf("assign role: %w", err)
	}

	logger.Info(ctx, "role assigned",
		"user_id", userID,
		"role", roleCode)

	return nil
}

// RevokeRole revokes a role from a user.
func (s *Service) RevokeRole(ctx context.Context, userID id.ID, roleCode string) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return apperror.NewNotFound("user", userID.String())
	}
	return s.userRepo.RevokeRole(ctx, userID, roleCode)
}

// AssignHome grants the user access to a home.
func (s *Service) AssignHome(ctx context.Context, userID, homeID id.ID) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return apperror.NewNotFound("user", userID.String())
	}
	return s.userRepo.AssignHome(ctx, userID, homeID)
}

// GetUserByID retrieves a user with roles and home access.
func (s *Service) GetUserByID(ctx context.Context, userID id.ID) (*User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.NewNotFound("user", userID.String())
	}

	if err := s.loadRelations(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// ListUsers lists users with filtering.
func (s *Service) ListUsers(ctx context.Context, filter UserFilter) ([]User, int, error) {
	return s.userRepo.List(ctx, filter)
}

func (s *Service) loadRelations(ctx context.Context, user *User) error {
	roles, err := s.userRepo.LoadRoles(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("load roles: %w", err)
	}
	user.Roles = roles

	homeIDs, err := s.userRepo.LoadHomes(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("load homes: %w", err)
	}
	user.HomeIDs = homeIDs

	return nil
}

// generateTokenPair creates access and refresh tokens.
func (s *Service) generateTokenPair(ctx context.Context, user *User) (*TokenPair, error) {
	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(
		user.ID.String(), user.Email, user.Roles, user.HomeIDs, user.IsAdmin)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refreshTokenRaw, err := generateRandomToken(32)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	refreshToken := &RefreshToken{
		ID:        id.New(),
		UserID:    user.ID,
		TokenHash: hashToken(refreshTokenRaw),
		ExpiresAt: time.Now().Add(s.config.RefreshTokenExpiry),
		CreatedAt: time.Now(),
	}

	if err := s.tokenRepo.SaveRefreshToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("save refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenRaw,
		ExpiresAt:    expiresAt,
		TokenType:    "Bearer",
	}, nil
}

// hashToken creates a SHA256 hash of a token.
func hashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}

// generateRandomToken generates a random token string.
func generateRandomToken(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
