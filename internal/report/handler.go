package report

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"skillgap-backend/internal/mail"
	"skillgap-backend/internal/roadmap"
	"skillgap-backend/internal/sessions"
	"skillgap-backend/internal/shared/server/respond"
	"skillgap-backend/internal/shared/telemetry"
)

// Sender abstracts the mail transport for tests.
type Sender interface {
	Deliver(recipient, subject, body string, attachment *mail.Attachment) error
}

// Handler renders a roadmap report and emails it to the authenticated user.
type Handler struct {
	Sessions *sessions.Manager
	Sender   Sender
}

// NewHandler constructs a Handler. Sender may be nil when SMTP is not
// configured; requests then fail with a configuration error.
func NewHandler(sessionMgr *sessions.Manager, sender Sender) *Handler {
	return &Handler{Sessions: sessionMgr, Sender: sender}
}

// RegisterRoutes attaches report routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/email-report", h.emailReport)
}

type emailReportRequest struct {
	SelectedRole string          `json:"selectedRole"`
	RoadmapData  json.RawMessage `json:"roadmapData"`
}

func (h *Handler) emailReport(c *gin.Context) {
	user, ok := h.Sessions.CurrentUser(c)
	if !ok {
		respond.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req emailReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Both selectedRole and roadmapData are required")
		return
	}
	if req.SelectedRole == "" || len(req.RoadmapData) == 0 {
		respond.Error(c, http.StatusBadRequest, "Both selectedRole and roadmapData are required")
		return
	}

	// The client holds the analysis; it is re-validated here with the same
	// all-or-nothing contract applied to model output.
	result, err := roadmap.Validate(string(req.RoadmapData))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "roadmapData does not match the expected roadmap shape")
		return
	}

	if h.Sender == nil {
		respond.Error(c, http.StatusInternalServerError, "Email delivery is not configured")
		return
	}

	doc, err := Render(user.Name, req.SelectedRole, result)
	if err != nil {
		telemetry.Error("report.render.failed", map[string]any{
			"err":        err.Error(),
			"request_id": c.GetString("requestId"),
		})
		respond.Error(c, http.StatusInternalServerError, "Failed to render report")
		return
	}

	err = h.Sender.Deliver(
		user.Email,
		"Your SkillGap report: "+req.SelectedRole,
		"Hi "+user.Name+",\n\nAttached is your skill gap report for the "+req.SelectedRole+" role.\n",
		&mail.Attachment{
			FileName: "skillgap-report.pdf",
			MIMEType: "application/pdf",
			Content:  doc,
		},
	)
	if err != nil {
		telemetry.Error("report.deliver.failed", map[string]any{
			"err":        err.Error(),
			"request_id": c.GetString("requestId"),
		})
		respond.Error(c, http.StatusInternalServerError, "Failed to send report email")
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"success": true})
}
