// Package auth_repo provides PostgreSQL implementations for auth
// repositories.
package auth_repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/anmds2025/roomify/internal/core/apperror"
	"github.com/anmds2025/roomify/internal/core/id"
	"github.com/anmds2025/roomify/internal/domain/auth"
	"github.com/anmds2025/roomify/internal/infrastructure/storage/postgres"
)

// UserRepo implements auth.UserRepository.
type UserRepo struct {
	txm *postgres.TxManager
}

// NewUserRepo creates a new user repository.
func NewUserRepo(txm *postgres.TxManager) *UserRepo {
	return &UserRepo{txm: txm}
}

// Create creates a new user.
func (r *UserRepo) Create(ctx context.Context, user *auth.User) error {
	q := r.txm.GetQuerier(ctx)

	query := `
		INSERT INTO users (
			id, email, password_hash, full_name, phone,
			is_active, is_admin, created_at, updated_at, version
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := q.Exec(ctx, query,
		user.ID, user.Email, user.PasswordHash,
		user.FullName, user.Phone, user.IsActive, user.IsAdmin,
		user.CreatedAt, user.UpdatedAt, user.Version,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

// GetByID retrieves user by ID.
func (r *UserRepo) GetByID(ctx context.Context, userID id.ID) (*auth.User, error) {
	q := r.txm.GetQuerier(ctx)

	query := `
		SELECT id, email, password_hash, full_name, phone,
			   is_active, is_admin, last_login_at,
			   failed_login_attempts, locked_until,
			   created_at, updated_at, deleted_at, version
		FROM users
		WHERE id = $1 AND deleted_at IS NULL
	`

	var user auth.User
	err := q.QueryRow(ctx, query, userID).Scan(
		&user.ID, &user.Email, &user.PasswordHash,
		&user.FullName, &user.Phone, &user.IsActive, &user.IsAdmin,
		&user.LastLoginAt, &user.FailedLoginAttempts, &user.LockedUntil,
		&user.CreatedAt, &user.UpdatedAt, &user.DeletedAt, &user.Version,
	)
	if err == pgx.ErrNoRows {
		return nil, apperror.NewNotFound("user", userID.String())
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}

	return &user, nil
}

// GetByEmail retrieves user by email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	q := r.txm.GetQuerier(ctx)

	query := `
		SELECT id, email, password_hash, full_name, phone,
			   is_active, is_admin, last_login_at,
			   failed_login_attempts, locked_until,
			   created_at, updated_at, deleted_at, version
		FROM users
		WHERE email = $1 AND deleted_at IS NULL
	`

	var user auth.User
	err := q.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.PasswordHash,
		&user.FullName, &user.Phone, &user.IsActive, &user.IsAdmin,
		&user.LastLoginAt, &user.FailedLoginAttempts, &user.LockedUntil,
		&user.CreatedAt, &user.UpdatedAt, &user.DeletedAt, &user.Version,
	)
	if err == pgx.ErrNoRows {
		return nil, apperror.NewNotFound("user", email)
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}

	return &user, nil
}

// Update updates user data.
func (r *UserRepo) Update(ctx context.Context, user *auth.User) error {
	q := r.txm.GetQuerier(ctx)

	query := `
		UPDATE users SET
			full_name = $2,
			phone = $3,
			is_active = $4,
			is_admin = $5,
			last_login_at = $6,
			failed_login_attempts = $7,
			locked_until = $8,
			updated_at = NOW(),
			version = version + 1
		WHERE id = $1 AND deleted_at IS NULL AND version = $9
	`

	result, err := q.Exec(ctx, query,
		user.ID, user.FullName, user.Phone, user.IsActive, user.IsAdmin,
		user.LastLoginAt, user.FailedLoginAttempts, user.LockedUntil,
		user.Version,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewConcurrentModification("user", user.ID)
	}

	user.Version++
	return nil
}

// Delete soft-deletes a user.
func (r *UserRepo) Delete(ctx context.Context, userID id.ID) error {
	q := r.txm.GetQuerier(ctx)

	query := `UPDATE users SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	result, err := q.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("user", userID.String())
	}

	return nil
}

// List retrieves users with filtering.
func (r *UserRepo) List(ctx context.Context, filter auth.UserFilter) ([]auth.User, int, error) {
	q := r.txm.GetQuerier(ctx)

	query := `
		SELECT id, email, password_hash, full_name, phone,
			   is_active, is_admin, last_login_at,
			   created_at, updated_at, version
		FROM users
		WHERE deleted_at IS NULL
	`
	countQuery := `SELECT COUNT(*) FROM users WHERE deleted_at IS NULL`

	var args []any
	argIdx := 1

	if filter.Search != "" {
		cond := fmt.Sprintf(" AND (email ILIKE $%d OR full_name ILIKE $%d)", argIdx, argIdx)
		query += cond
		countQuery += cond
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}

	if filter.IsActive != nil {
		cond := fmt.Sprintf(" AND is_active = $%d", argIdx)
		query += cond
		countQuery += cond
		args = append(args, *filter.IsActive)
		argIdx++
	}

	if filter.RoleCode != "" {
		cond := fmt.Sprintf(" AND id IN (SELECT user_id FROM user_roles WHERE role_code = $%d)", argIdx)
		query += cond
		countQuery += cond
		args = append(args, filter.RoleCode)
		argIdx++
	}

	var total int
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	query += " ORDER BY email ASC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", filter.Offset)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var users []auth.User
	for rows.Next() {
		var user auth.User
		err := rows.Scan(
			&user.ID, &user.Email, &user.PasswordHash,
			&user.FullName, &user.Phone, &user.IsActive, &user.IsAdmin,
			&user.LastLoginAt, &user.CreatedAt, &user.UpdatedAt, &user.Version,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, user)
	}

	return users, total, nil
}

// LoadRoles loads the user's role codes.
func (r *UserRepo) LoadRoles(ctx context.Context, userID id.ID) ([]string, error) {
	q := r.txm.GetQuerier(ctx)

	query := `SELECT role_code FROM user_roles WHERE user_id = $1 ORDER BY role_code`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query roles: %w", err)
	}
	defer rows.Close()

	var roles []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		roles = append(roles, code)
	}

	return roles, nil
}

// LoadHomes loads the home IDs the user manages.
func (r *UserRepo) LoadHomes(ctx context.Context, userID id.ID) ([]string, error) {
	q := r.txm.GetQuerier(ctx)

	query := `SELECT home_id FROM user_homes WHERE user_id = $1`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query homes: %w", err)
	}
	defer rows.Close()

	var homeIDs []string
	for rows.Next() {
		var homeID string
		if err := rows.Scan(&homeID); err != nil {
			return nil, fmt.Errorf("scan home: %w", err)
		}
		homeIDs = append(homeIDs, homeID)
	}

	return homeIDs, nil
}

// AssignRole assigns a role to user.
func (r *UserRepo) AssignRole(ctx context.Context, userID id.ID, roleCode string) error {
	q := r.txm.GetQuerier(ctx)

	query := `
		INSERT INTO user_roles (user_id, role_code)
		VALUES ($1, $2)
		ON CONFLICT (user_id, role_code) DO NOTHING
	`

	if _, err := q.Exec(ctx, query, userID, roleCode); err != nil {
		return fmt.Errorf("assign role: %w", err)
	}

	return nil
}

// RevokeRole revokes a role from user.
func (r *UserRepo) RevokeRole(ctx context.Context, userID id.ID, roleCode string) error {
	q := r.txm.GetQuerier(ctx)

	query := `DELETE FROM user_roles WHERE user_id = $1 AND role_code = $2`
	if _, err := q.Exec(ctx, query, userID, roleCode); err != nil {
		return fmt.Errorf("revoke role: %w", err)
	}

	return nil
}

// AssignHome grants the user access to a home.
func (r *UserRepo) AssignHome(ctx context.Context, userID, homeID id.ID) error {
	q := r.txm.GetQuerier(ctx)

	query := `
		INSERT INTO user_homes (user_id, home_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, home_id) DO NOTHING
	`

	if _, err := q.Exec(ctx, query, userID, homeID); err != nil {
		return fmt.Errorf("assign home: %w", err)
	}

	return nil
}

// Exists checks if email is already registered.
func (r *UserRepo) Exists(ctx context.Context, email string) (bool, error) {
	q := r.txm.GetQuerier(ctx)

	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 AND deleted_at IS NULL)`

	var exists bool
	if err := q.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("check exists: %w", err)
	}

	return exists, nil
}

// Ensure interface compliance
var _ auth.UserRepository = (*UserRepo)(nil)
