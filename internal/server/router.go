package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillgap-backend/internal/auth"
	"skillgap-backend/internal/report"
	"skillgap-backend/internal/roadmap"
	"skillgap-backend/internal/roles"
	"skillgap-backend/internal/shared/config"
	"skillgap-backend/internal/shared/server/middleware"
	"skillgap-backend/internal/shared/server/respond"
	"skillgap-backend/internal/uploads"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config         config.Config
	RolesHandler   *roles.Handler
	UploadHandler  *uploads.Handler
	RoadmapHandler *roadmap.Handler
	ReportHandler  *report.Handler
	GoogleAuth     *auth.GoogleService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	root := r.Group("")

	root.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{
			"status":  "ok",
			"message": "SkillGap AI Backend is running",
		})
	})

	deps.RolesHandler.RegisterRoutes(root)
	deps.UploadHandler.RegisterRoutes(root)
	deps.RoadmapHandler.RegisterRoutes(root)
	deps.ReportHandler.RegisterRoutes(root)
	deps.GoogleAuth.RegisterRoutes(root)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":3001"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
