package roadmap

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"skillgap-backend/internal/llm"
	"skillgap-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches roadmap routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate-roadmap", h.generate)
}

func (h *Handler) generate(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, ErrMissingFields.Error())
		return
	}

	result, err := h.Svc.Generate(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			respond.Error(c, http.StatusBadRequest, ErrMissingFields.Error())
		case errors.Is(err, llm.ErrNotConfigured), errors.Is(err, llm.ErrNotImplemented):
			respond.Error(c, http.StatusInternalServerError, "Gemini API key is not configured")
		case errors.Is(err, ErrMalformedResponse), errors.Is(err, ErrInvalidShape):
			respond.Error(c, http.StatusInternalServerError, err.Error())
		default:
			respond.Error(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	respond.OK(c, result)
}
