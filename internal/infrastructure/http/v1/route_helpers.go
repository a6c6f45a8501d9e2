package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/anmds2025/roomify/internal/domain/auth"
	"github.com/anmds2025/roomify/internal/infrastructure/http/v1/middleware"
)

// CatalogRouteHandler defines the interface for catalog handlers.
type CatalogRouteHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	SetDeletionMark(c *gin.Context)
}

// DocumentRouteHandler defines the interface for document handlers.
type DocumentRouteHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// RegisterCatalogRoutes registers standard CRUD routes for a catalog.
// Reads are open to any authenticated operator; mutations require the
// manager role (admins pass any role check).
func RegisterCatalogRoutes(group *gin.RouterGroup, handler CatalogRouteHandler) {
	manager := middleware.RequireRole(auth.RoleManager)

	group.GET("", handler.List)
	group.GET("/:id", handler.Get)
	group.POST("", manager, handler.Create)
	group.PUT("/:id", manager, handler.Update)
	group.DELETE("/:id", manager, handler.Delete)
	group.POST("/:id/deletion-mark", manager, handler.SetDeletionMark)
}

// RegisterDocumentRoutes registers standard CRUD routes for a document.
// Document-specific operations (finalize, payments, end) are wired by
// the caller next to these.
func RegisterDocumentRoutes(group *gin.RouterGroup, handler DocumentRouteHandler) {
	manager := middleware.RequireRole(auth.RoleManager)

	group.GET("", handler.List)
	group.GET("/:id", handler.Get)
	group.POST("", manager, handler.Create)
	group.PUT("/:id", manager, handler.Update)
	group.DELETE("/:id", manager, handler.Delete)
}
