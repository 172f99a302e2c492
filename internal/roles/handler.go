package roles

import (
	"github.com/gin-gonic/gin"

	"skillgap-backend/internal/shared/server/respond"
)

// Handler serves the static role catalog.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches role routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/roles", h.list)
}

func (h *Handler) list(c *gin.Context) {
	respond.OK(c, List())
}
