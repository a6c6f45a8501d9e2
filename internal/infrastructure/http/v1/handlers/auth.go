package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anmds2025/roomify/internal/core/apperror"
	appctx "github.com/anmds2025/roomify/internal/core/context"
	"github.com/anmds2025/roomify/internal/core/id"
	"github.com/anmds2025/roomify/internal/domain/auth"
	"github.com/anmds2025/roomify/internal/infrastructure/http/v1/dto"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	*BaseHandler
	service *auth.Service
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(base *BaseHandler, service *auth.Service) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.RegisterRequest
	if !h.BindJSON(c, &req) {
		return
	}

	user, err := h.service.Register(ctx, req.ToAuthRequest())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromUser(user))
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	tokens, user, err := h.service.Login(ctx, req.ToCredentials())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.LoginResponse{
		Tokens: dto.FromTokenPair(tokens),
		User:   dto.FromUser(user),
	})
}

// Refresh handles POST /auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.RefreshTokenRequest
	if !h.BindJSON(c, &req) {
		return
	}

	tokens, err := h.service.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromTokenPair(tokens))
}

func (h *AuthHandler) currentUserID(c *gin.Context) (id.ID, bool) {
	userCtx := appctx.GetUser(c.Request.Context())
	if userCtx == nil {
		h.Error(c, apperror.NewUnauthorized("not authenticated"))
		return id.Nil(), false
	}
	userID, err := id.Parse(userCtx.UserID)
	if err != nil {
		h.Error(c, apperror.NewUnauthorized("invalid user id"))
		return id.Nil(), false
	}
	return userID, true
}

// Logout handles POST /auth/logout - revokes all refresh tokens.
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	if err := h.service.Logout(c.Request.Context(), userID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	user, err := h.service.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromUser(user))
}

// AssignRole handles POST /auth/assign-role
func (h *AuthHandler) AssignRole(c *gin.Context) {
	var req dto.AssignRoleRequest
	if !h.BindJSON(c, &req) {
		return
	}

	userID, err := id.Parse(req.UserID)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid user id"))
		return
	}

	if err := h.service.AssignRole(c.Request.Context(), userID, req.RoleCode); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "role assigned")
}

// RevokeRole handles POST /auth/revoke-role
func (h *AuthHandler) RevokeRole(c *gin.Context) {
	var req dto.AssignRoleRequest
	if !h.BindJSON(c, &req) {
		return
	}

	userID, err := id.Parse(req.UserID)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid user id"))
		return
	}

	if err := h.service.RevokeRole(c.Request.Context(), userID, req.RoleCode); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "role revoked")
}

// AssignHome handles POST /auth/assign-home - grants an operator
// access to one home.
func (h *AuthHandler) AssignHome(c *gin.Context) {
	var req dto.AssignHomeRequest
	if !h.BindJSON(c, &req) {
		return
	}

	userID, err := id.Parse(req.UserID)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid user id"))
		return
	}
	homeID, err := id.Parse(req.HomeID)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid home id"))
		return
	}

	if err := h.service.AssignHome(c.Request.Context(), userID, homeID); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "home assigned")
}

// ListUsers handles GET /auth/users
func (h *AuthHandler) ListUsers(c *gin.Context) {
	filter := auth.UserFilter{
		Search:   c.Query("search"),
		RoleCode: c.Query("roleCode"),
		Limit:    h.ParseIntQuery(c, "limit", 50),
		Offset:   h.ParseIntQuery(c, "offset", 0),
	}

	if isActive := c.Query("isActive"); isActive != "" {
		val := isActive == "true"
		filter.IsActive = &val
	}

	users, total, err := h.service.ListUsers(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]*dto.UserResponse, len(users))
	for i := range users {
		items[i] = dto.FromUser(&users[i])
	}

	h.OK(c, dto.ListResponse{
		Items:      items,
		TotalCount: int64(total),
		Limit:      filter.Limit,
		Offset:     filter.Offset,
	})
}
